package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minho-song/kitdex/internal/config"
	"github.com/minho-song/kitdex/internal/output"
	"github.com/minho-song/kitdex/internal/session"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search kits by name, id, model number, grade, or series",
	Long: `Search the catalog with a free-text query.

A query written entirely in Korean leading consonants (choseong) matches
kit names by their consonant prefixes.

Examples:
  kitdex search rx78
  kitdex search "mobile suit"
  kitdex search ㄱㄷ`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	sess, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	sess.SetQuery(query)

	page := sess.Results(session.Options{PerPage: cfg.Catalog.PageSize})
	if page.Total == 0 {
		fmt.Printf("No kits found matching: %s\n", query)
		return nil
	}

	if outputFmt != "json" {
		fmt.Printf("Found %d kit(s) matching: %s\n\n", page.Total, query)
	}

	rows := output.KitRows(page.Items, cfg.Catalog.Locale, true)
	return output.Output(outputFmt, rows)
}
