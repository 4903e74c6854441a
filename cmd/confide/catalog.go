package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"github.com/unowned-ai/confide/pkg/moods"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the available moods and response styles",
}

var catalogMoodsCmd = &cobra.Command{
	Use:   "moods",
	Short: "List mood tags",
	Run: func(cmd *cobra.Command, args []string) {
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow(bold("Value"), bold("Emoji"), bold("Label"))
		for _, m := range moods.Moods() {
			tbl.AddRow(m.Value, m.Emoji, m.Label)
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
	},
}

var catalogStylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List response styles",
	Run: func(cmd *cobra.Command, args []string) {
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.Wrap = true
		tbl.AddRow(bold("Value"), bold("Name"), bold("Description"))
		for _, s := range moods.Styles() {
			tbl.AddRow(s.Value, s.Name, s.Description)
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
	},
}

func initCatalogCmd() {
	catalogCmd.AddCommand(catalogMoodsCmd, catalogStylesCmd)
}
