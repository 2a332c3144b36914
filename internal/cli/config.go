package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "kitdex")
	dataDir := filepath.Join(home, ".local", "share", "kitdex")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.toml")

	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("Config file already exists at %s\n", configFile)
		fmt.Println("Use 'kitdex config show' to view current configuration")
		return nil
	}

	if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  1. Copy taxonomy.json and products.json to %s/\n", dataDir)
	fmt.Println("  2. Run 'kitdex list' to browse the catalog")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No config file found. Run 'kitdex config init' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}

const defaultConfig = `# kitdex configuration

[data]
taxonomy_path = "~/.local/share/kitdex/taxonomy.json"
products_path = "~/.local/share/kitdex/products.json"
details_dir = "~/.local/share/kitdex/details"

[catalog]
locale = "en"       # display locale for kit names (en, ko, ja, ...)
page_size = 12

[store]
path = "~/.local/share/kitdex/kitdex.db"

[search]
debounce_ms = 150   # delay before a re-filter fires; newest request wins
suggest_limit = 8

# Per-category score weights. Unlisted categories weigh 1.0.
[weights]
difficulty = 3.0
mobility = 2.5
grade = 2.0
scale = 1.5
series = 1.5
weaponCount = 1.0
ledUnit = 0.5
`
