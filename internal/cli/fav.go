package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minho-song/kitdex/internal/catalog"
	"github.com/minho-song/kitdex/internal/config"
	"github.com/minho-song/kitdex/internal/output"
	"github.com/minho-song/kitdex/internal/store"
)

var favCmd = &cobra.Command{
	Use:   "fav",
	Short: "Manage saved kits",
	Long: `Manage the favorites list.

Favorites are stored locally and survive between runs.`,
}

var favAddCmd = &cobra.Command{
	Use:   "add <kit-id>",
	Short: "Save a kit",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavAdd,
}

var favRemoveCmd = &cobra.Command{
	Use:     "rm <kit-id>",
	Aliases: []string{"remove"},
	Short:   "Remove a saved kit",
	Args:    cobra.ExactArgs(1),
	RunE:    runFavRemove,
}

var favListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved kits",
	RunE:  runFavList,
}

func init() {
	rootCmd.AddCommand(favCmd)
	favCmd.AddCommand(favAddCmd)
	favCmd.AddCommand(favRemoveCmd)
	favCmd.AddCommand(favListCmd)
}

func runFavAdd(cmd *cobra.Command, args []string) error {
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
	if catalog.FindProduct(products, kitID) == nil {
		return fmt.Errorf("kit not found: %s", kitID)
	}

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer db.Close()

	if err := db.AddFavorite(ctx, kitID); err != nil {
		return fmt.Errorf("failed to save favorite: %w", err)
	}

	fmt.Printf("Saved %s\n", kitID)
	return nil
}

func runFavRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	kitID := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer db.Close()

	if err := db.RemoveFavorite(ctx, kitID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	fmt.Printf("Removed %s\n", kitID)
	return nil
}

func runFavList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	_, products, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer db.Close()

	favorites, err := db.ListFavorites(ctx)
	if err != nil {
		return fmt.Errorf("failed to list favorites: %w", err)
	}

	rows := make([]output.FavoriteRow, 0, len(favorites))
	for _, f := range favorites {
		name := f.ProductID
		if p := catalog.FindProduct(products, f.ProductID); p != nil {
			name = p.Name(cfg.Catalog.Locale)
		}
		rows = append(rows, output.FavoriteRow{
			ProductID: f.ProductID,
			Name:      name,
			AddedAt:   f.CreatedAt.Format("Jan 02, 2006"),
		})
	}

	return output.Output(outputFmt, rows)
}
