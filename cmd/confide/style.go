package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unowned-ai/confide/pkg/diary"
	"github.com/unowned-ai/confide/pkg/moods"
)

var styleCmd = &cobra.Command{
	Use:   "style",
	Short: "Show or change the response style",
}

var getStyleCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current response style",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		printStyle(s.store.ResponseStyle())
		return nil
	},
}

var setStyleCmd = &cobra.Command{
	Use:       "set [friend|counselor|zen|gentle]",
	Short:     "Change the response style used for new entries",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(moods.Friend), string(moods.Counselor), string(moods.Zen), string(moods.Gentle)},
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := moods.LookupStyle(moods.StyleValue(args[0]))
		if err != nil {
			return fmt.Errorf("%w: %s", err, args[0])
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		err = s.store.SetResponseStyle(style)
		var warn *diary.PersistenceWarning
		if errors.As(err, &warn) {
			printWarning(warn)
		} else if err != nil {
			return err
		}
		printStyle(s.store.ResponseStyle())
		return nil
	},
}

func initStyleCmd() {
	styleCmd.AddCommand(getStyleCmd, setStyleCmd)
}
