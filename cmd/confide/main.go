package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	confide "github.com/unowned-ai/confide/pkg"
	pkgdb "github.com/unowned-ai/confide/pkg/db"
	"github.com/unowned-ai/confide/pkg/persist"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "confide",
	Short:   "A private mood diary with a gentle AI companion.",
	Long:    ``,
	Version: fmt.Sprintf("v%s", confide.Version),
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

var completionCmd = &cobra.Command{
	Use:   fmt.Sprintf("completion %s", strings.Join(completionShells, "|")),
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for confide.

The command prints a completion script to stdout. You can source it in your shell
or install it to the appropriate location for your shell to enable completions permanently.

Examples:

  Bash (current shell):
    $ source <(confide completion bash)

  Zsh:
    $ confide completion zsh > "${fpath[1]}/_confide"

  Fish:
    $ confide completion fish > ~/.config/fish/completions/confide.fish

  PowerShell:
    PS> confide completion powershell | Out-String | Invoke-Expression`,
	DisableFlagsInUseLine: true,
	ValidArgs:             completionShells,
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell: %s", args[0])
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of confide",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(confide.Version)
	},
}

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the confide database",
	Long:  `Provides commands for managing the SQLite database behind the sqlite store.`,
}

var dbUpgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade the database schema to the latest version",
	Long: `Opens confide.db inside the data directory and applies any pending schema
migrations for the key/value store component. A missing database is created
and initialized with the latest schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if persist.Kind(cfg.Store) != persist.KindSQLite {
			return errors.New("db upgrade only applies to the sqlite store")
		}

		opts := storeOptions(cfg, logger)
		path := opts.SQLitePath()
		fmt.Printf("Upgrading database at: %s (WAL: %t, Sync: %s)\n", path, cfg.SQLiteWAL, cfg.SQLiteSync)

		dbConn, err := pkgdb.OpenDBConnection(path, cfg.SQLiteWAL, cfg.SQLiteSync)
		if err != nil {
			return err
		}
		defer dbConn.Close()

		return pkgdb.UpgradeDB(dbConn, path, pkgdb.TargetSchemaVersion, logger)
	},
}

func initCmd() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "db", "", "Data directory (default: system-specific, or CONFIDE_DATA_PATH)")
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "", "Storage backend: sqlite, diskv or memory (default: CONFIDE_STORE or sqlite)")
	rootCmd.PersistentFlags().BoolVar(&walMode, "wal", false, "Enable SQLite WAL (Write-Ahead Logging) mode")
	rootCmd.PersistentFlags().StringVar(&syncMode, "sync", "FULL", "SQLite synchronous pragma (OFF, NORMAL, FULL, EXTRA)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (default: CONFIDE_LOG_LEVEL or info)")

	dbCmd.AddCommand(dbUpgradeCmd)

	initEntriesCmd()
	initQuoteCmd()
	initStyleCmd()
	initCatalogCmd()
	initServeCmd()
	rootCmd.AddCommand(completionCmd, versionCmd, dbCmd, entriesCmd, quoteCmd, styleCmd, catalogCmd, serveCmd, mcpCmd)
}

func main() {
	initCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
