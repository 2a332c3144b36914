package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/minho-song/kitdex/internal/config"
	"github.com/minho-song/kitdex/internal/mcp"
	"github.com/minho-song/kitdex/internal/store"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server for AI assistant integration",
	Long: `Run an MCP (Model Context Protocol) server over stdio.

The server exposes the kit catalog to AI assistants:
  - search_kits: filter and rank kits by query and filter state
  - get_kit: fetch the full detail record for one kit
  - list_categories: list the filterable categories
  - get_favorites: list saved kits

Add to your assistant's MCP configuration:
  {
    "mcpServers": {
      "kitdex": {
        "command": "kitdex",
        "args": ["mcp"]
      }
    }
  }`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	tax, products, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.Health(ctx); err != nil {
		return fmt.Errorf("store health check failed: %w", err)
	}

	server := mcp.New(tax, products, db, cfg)

	fmt.Fprintln(os.Stderr, "kitdex MCP server running on stdio")
	return server.Start(ctx)
}
