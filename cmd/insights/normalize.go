package main

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/listenupapp/catalog-insights/internal/config"
	"github.com/listenupapp/catalog-insights/internal/normalize"
)

// newNormalizeCmd groups the ad-hoc normalizer checks. They read only the
// lookup tables, so no catalog or output directory is needed.
func newNormalizeCmd(flags *config.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Normalize raw field values the way the report does",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "country <field>...",
		Short:   "Split and normalize country fields",
		Example: `  insights normalize country "usa, Untied States" "Perú"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			norm, err := loadNormalizer(flags.TablesPath)
			if err != nil {
				return err
			}
			return writePairs(cmd, args, func(field string) string {
				return strings.Join(norm.Countries(field), ", ")
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "rating <field>...",
		Short:   "Split and normalize rating fields",
		Example: `  insights normalize rating "tv ma" "pg 13, R"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			norm, err := loadNormalizer(flags.TablesPath)
			if err != nil {
				return err
			}
			return writePairs(cmd, args, func(field string) string {
				return strings.Join(norm.Ratings(field), ", ")
			})
		},
	})

	var mode string
	audience := &cobra.Command{
		Use:   "audience <rating>...",
		Short: "Map ratings to audience labels",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := normalize.ParseAudienceMode(mode)
			if err != nil {
				return err
			}
			norm, err := loadNormalizer(flags.TablesPath)
			if err != nil {
				return err
			}
			return writePairs(cmd, args, func(raw string) string {
				code := norm.Rating(raw)
				label := norm.Audience(code, m)
				if !norm.IsKnownRating(code) {
					label += " (unknown code)"
				}
				return code + "\t" + label
			})
		},
	}
	audience.Flags().StringVar(&mode, "mode", string(normalize.ModeAdultKids), "adult_kids or family")
	cmd.AddCommand(audience)

	var topN, minLen int
	words := &cobra.Command{
		Use:   "words <text>...",
		Short: "Count the most frequent words across the given texts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			norm, err := loadNormalizer(flags.TablesPath)
			if err != nil {
				return err
			}
			ranked := norm.TopWords(args, topN, minLen)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			// TopWords orders ascending for plotting; print most frequent first.
			slices.SortStableFunc(ranked, func(a, b normalize.WordCount) int { return b.Count - a.Count })
			for _, wc := range ranked {
				fmt.Fprintf(tw, "%s\t%d\n", wc.Word, wc.Count)
			}
			return tw.Flush()
		},
	}
	words.Flags().IntVar(&topN, "top-n", 20, "words to print")
	words.Flags().IntVar(&minLen, "min-word-len", normalize.DefaultMinWordLen, "shortest counted word")
	cmd.AddCommand(words)

	return cmd
}

func loadNormalizer(tablesPath string) (*normalize.Normalizer, error) {
	if tablesPath == "" {
		return normalize.New(nil), nil
	}
	tables, err := normalize.LoadTables(tablesPath)
	if err != nil {
		return nil, err
	}
	return normalize.New(tables), nil
}

// writePairs prints one "input<TAB>result" line per argument.
func writePairs(cmd *cobra.Command, args []string, fn func(string) string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, arg := range args {
		fmt.Fprintf(tw, "%s\t%s\n", arg, fn(arg))
	}
	return tw.Flush()
}
