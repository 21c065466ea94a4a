package main

import (
	"github.com/spf13/cobra"

	"github.com/listenupapp/catalog-insights/internal/config"
)

// newRootCmd builds the command tree. Flags land in a fresh config.Flags per call
// so tests can execute the tree repeatedly.
func newRootCmd() *cobra.Command {
	flags := &config.Flags{}

	root := &cobra.Command{
		Use:   "insights",
		Short: "Answer the catalog questions and render their charts",
		Long: `insights loads a streaming catalog CSV, normalizes its categorical fields
(countries, ratings, people, genres, free text) and answers ten fixed questions,
printing result tables and writing one PNG chart per result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.EnvFile, "env-file", "", "dotenv file to read (default .env)")
	pf.StringVar(&flags.Env, "env", "", "environment: development, staging or production (ENV)")
	pf.StringVar(&flags.LogLevel, "log-level", "", "log level: debug, info, warn or error (LOG_LEVEL)")
	pf.StringVar(&flags.TablesPath, "tables", "", "YAML lookup table overrides (TABLES_PATH)")

	root.AddCommand(newReportCmd(flags))
	root.AddCommand(newNormalizeCmd(flags))
	root.AddCommand(newRunsCmd())

	return root
}
