package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unowned-ai/confide/pkg/diary"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Daily quotes",
}

var todayQuoteCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's quote",
	Long:  `Shows the quote for today. The first quote fetched for a day is kept for the rest of it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		q, err := s.orch.QuoteOfTheDay(cmd.Context())
		var warn *diary.PersistenceWarning
		if errors.As(err, &warn) {
			printWarning(warn)
		} else if err != nil {
			return err
		}
		printQuote(q)
		return nil
	},
}

var likeQuoteCmd = &cobra.Command{
	Use:   "like [quote-id]",
	Short: "Like or unlike a stored quote",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		err = s.store.ToggleQuoteLike(args[0])
		var warn *diary.PersistenceWarning
		if errors.As(err, &warn) {
			printWarning(warn)
		} else if err != nil {
			return err
		}
		for _, q := range s.store.DailyQuotes() {
			if q.ID == args[0] {
				printQuote(q)
				return nil
			}
		}
		return fmt.Errorf("quote not found: %s", args[0])
	},
}

var likedQuotesCmd = &cobra.Command{
	Use:   "liked",
	Short: "List the quotes you liked",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		liked := s.store.LikedQuotes()
		if len(liked) == 0 {
			fmt.Println("No liked quotes yet.")
			return nil
		}
		for i, q := range liked {
			if i > 0 {
				fmt.Println()
			}
			printQuote(q)
		}
		return nil
	},
}

func initQuoteCmd() {
	quoteCmd.AddCommand(todayQuoteCmd, likeQuoteCmd, likedQuotesCmd)
}
