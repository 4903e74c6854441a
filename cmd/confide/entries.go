package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unowned-ai/confide/pkg/diary"
	"github.com/unowned-ai/confide/pkg/moods"
)

var (
	moodFlag    string
	styleFlag   string
	contentFlag string
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Write and browse diary entries",
	Long:  `Write new entries, ask for a fresh reply, browse the diary by day and remove entries.`,
}

var submitEntryCmd = &cobra.Command{
	Use:   "submit",
	Short: "Write a new entry and get a reply",
	Long: `Records what you want to say together with a mood and prints the companion's reply.
Without --mood the entry is tagged as a complex feeling. Without --style the
current response style is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		var mood *moods.MoodTag
		if moodFlag != "" {
			m, err := moods.LookupMood(moods.MoodValue(moodFlag))
			if err != nil {
				return fmt.Errorf("%w: %s", err, moodFlag)
			}
			mood = &m
		}
		style, err := styleOrCurrent(s)
		if err != nil {
			return err
		}

		entry, err := s.orch.Submit(cmd.Context(), contentFlag, mood, style)
		var warn *diary.PersistenceWarning
		if errors.As(err, &warn) {
			printWarning(warn)
		} else if err != nil {
			return err
		}
		printEntry(entry)
		return nil
	},
}

var regenerateEntryCmd = &cobra.Command{
	Use:   "regenerate [entry-id]",
	Short: "Ask for a fresh reply to an existing entry",
	Long:  `Prints a new reply for the entry. The stored entry keeps its original reply.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		existing, ok := s.store.Entry(args[0])
		if !ok {
			return fmt.Errorf("entry not found: %s", args[0])
		}
		style, err := styleOrCurrent(s)
		if err != nil {
			return err
		}

		updated, err := s.orch.Regenerate(cmd.Context(), existing, style)
		if err != nil {
			return err
		}
		printEntry(updated)
		return nil
	},
}

var listEntriesCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries grouped by day, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if moodFlag != "" {
			if _, err := moods.LookupMood(moods.MoodValue(moodFlag)); err != nil {
				return fmt.Errorf("%w: %s", err, moodFlag)
			}
		}

		groups := s.store.EntriesGroupedByDate(moods.MoodValue(moodFlag))
		if len(groups) == 0 {
			fmt.Println("No entries yet.")
			return nil
		}
		for _, g := range groups {
			printDateHeader(g.Date)
			for _, e := range g.Entries {
				printEntrySummary(e)
			}
		}
		return nil
	},
}

var dayEntriesCmd = &cobra.Command{
	Use:   "day [YYYY-MM-DD]",
	Short: "Show every entry written on one day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		entries := s.store.EntriesByDate(args[0])
		if len(entries) == 0 {
			fmt.Printf("No entries on %s.\n", args[0])
			return nil
		}
		for i, e := range entries {
			if i > 0 {
				fmt.Println()
			}
			printEntry(e)
		}
		return nil
	},
}

var removeEntryCmd = &cobra.Command{
	Use:   "remove [entry-id]",
	Short: "Delete an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if _, ok := s.store.Entry(args[0]); !ok {
			return fmt.Errorf("entry not found: %s", args[0])
		}
		err = s.store.RemoveEntry(args[0])
		var warn *diary.PersistenceWarning
		if errors.As(err, &warn) {
			printWarning(warn)
		} else if err != nil {
			return err
		}
		fmt.Printf("Entry %s removed.\n", args[0])
		return nil
	},
}

var shareEntryCmd = &cobra.Command{
	Use:   "share [entry-id]",
	Short: "Print an entry as shareable text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, ok := s.store.Entry(args[0])
		if !ok {
			return fmt.Errorf("entry not found: %s", args[0])
		}
		fmt.Println(moods.ShareText(e.Content, e.AIResponse))
		return nil
	},
}

var statsEntriesCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count entries per mood",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		printMoodCounts(s.store.MoodCounts())
		return nil
	},
}

func styleOrCurrent(s *session) (moods.ResponseStyle, error) {
	if styleFlag == "" {
		return s.store.ResponseStyle(), nil
	}
	style, err := moods.LookupStyle(moods.StyleValue(styleFlag))
	if err != nil {
		return moods.ResponseStyle{}, fmt.Errorf("%w: %s", err, styleFlag)
	}
	return style, nil
}

func initEntriesCmd() {
	submitEntryCmd.Flags().StringVar(&contentFlag, "content", "", "What you want to say (required, at most 1000 characters)")
	submitEntryCmd.Flags().StringVar(&moodFlag, "mood", "", "Mood value, e.g. sad, happy, tired")
	submitEntryCmd.Flags().StringVar(&styleFlag, "style", "", "Response style for this entry: friend, counselor, zen or gentle")
	submitEntryCmd.MarkFlagRequired("content")

	regenerateEntryCmd.Flags().StringVar(&styleFlag, "style", "", "Response style for the new reply")

	listEntriesCmd.Flags().StringVar(&moodFlag, "mood", "", "Only list entries with this mood")

	entriesCmd.AddCommand(
		submitEntryCmd,
		regenerateEntryCmd,
		listEntriesCmd,
		dayEntriesCmd,
		removeEntryCmd,
		shareEntryCmd,
		statsEntriesCmd,
	)
}
