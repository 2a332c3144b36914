package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minho-song/kitdex/internal/config"
	"github.com/minho-song/kitdex/internal/output"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <prefix>",
	Short: "Suggest kit names for a partial query",
	Long: `Print autocomplete suggestions for a partial query.

Suggestions match display names only, unlike 'kitdex search' which also
looks at ids, model numbers, grades, and series.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	prefix := strings.Join(args, " ")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	sess, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	names := sess.Suggest(prefix, cfg.Search.SuggestLimit)

	if outputFmt == "json" {
		return output.JSON(names)
	}

	if len(names) == 0 {
		fmt.Printf("No suggestions for: %s\n", prefix)
		return nil
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}
