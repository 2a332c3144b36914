package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minho-song/kitdex/internal/catalog"
	"github.com/minho-song/kitdex/internal/config"
	"github.com/minho-song/kitdex/internal/output"
	"github.com/minho-song/kitdex/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show <kit-id>",
	Short: "Show kit details",
	Long: `Show the detail record for one kit.

The detail document is read from the configured details directory; when
it is missing the index entry is shown instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	kitID := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	_, products, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	entry := catalog.FindProduct(products, kitID)
	if entry == nil {
		return fmt.Errorf("kit not found: %s", kitID)
	}

	detail := catalog.LoadDetail(cfg.Data.DetailsDir, entry)

	isFav := false
	if db, err := store.Open(cfg.Store.Path); err == nil {
		isFav, _ = db.IsFavorite(ctx, kitID)
		db.Close()
	}

	return output.Output(outputFmt, &output.KitDetail{
		Product: detail,
		Locale:  cfg.Catalog.Locale,
		IsFav:   isFav,
	})
}
