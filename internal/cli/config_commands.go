// Package cli provides configuration management commands.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gameshelf/gameshelf/internal/api"
	"github.com/gameshelf/gameshelf/internal/config"
	"github.com/gameshelf/gameshelf/internal/http"
	"github.com/gameshelf/gameshelf/internal/models"
)

// newConfigCmd creates the 'config' command group.
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage gameshelf configuration",
		Long: `Configuration management commands for gameshelf.

Commands:
  init  - Interactive configuration setup
  show  - Display current configuration
  set   - Set a single configuration value
  test  - Test the catalog connection
  path  - Show configuration file path`,
	}

	configCmd.AddCommand(newConfigInitCmd())
	configCmd.AddCommand(newConfigShowCmd())
	configCmd.AddCommand(newConfigSetCmd())
	configCmd.AddCommand(newConfigTestCmd())
	configCmd.AddCommand(newConfigPathCmd())

	return configCmd
}

// configPath resolves the config file location from the global flag or the
// per-user default.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultConfigPath()
}

// newConfigInitCmd creates the 'config init' command.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration interactively",
		Long: `Interactive configuration setup for gameshelf.

The configuration will be saved to ~/.config/gameshelf/config

Use --force to overwrite existing configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					fmt.Printf("Configuration already exists at: %s\n", path)
					fmt.Println("Use --force to overwrite or run 'config show' to view current config.")
					return nil
				}
			}

			fmt.Println("GameShelf Configuration Setup")
			fmt.Println("=============================")
			fmt.Println()

			reader := bufio.NewReader(os.Stdin)
			cfg := config.NewConfig()

			for cfg.APIBaseURL == "" {
				cfg.APIBaseURL = promptString(reader, "Catalog API base URL (required)", "")
				if cfg.APIBaseURL == "" {
					fmt.Println("  Error: base URL is required")
				}
			}
			cfg.APIBaseURL = strings.TrimSuffix(cfg.APIBaseURL, "/")

			key, err := promptSecret("API key (leave empty for anonymous access)")
			if err != nil {
				return err
			}
			cfg.APIKey = key

			fmt.Println()
			fmt.Println("Browse Defaults (press Enter for defaults)")
			fmt.Println("------------------------------------------")

			sizeInput := promptString(reader, "Page size",
				strconv.Itoa(cfg.Browse.PageSize))
			if v, err := strconv.Atoi(sizeInput); err == nil && models.IsPageSize(v) {
				cfg.Browse.PageSize = v
			}

			sortInput := promptString(reader, "Sort field", cfg.Browse.SortBy)
			if models.IsSortField(sortInput) {
				cfg.Browse.SortBy = sortInput
			}

			fmt.Println()
			if promptConfirm(reader, "Configure proxy?") {
				mode := promptString(reader, "Proxy mode (no-proxy, system, basic, ntlm)", cfg.Proxy.Mode)
				cfg.Proxy.Mode = strings.ToLower(mode)
				if cfg.Proxy.Mode == "basic" || cfg.Proxy.Mode == "ntlm" {
					cfg.Proxy.Host = promptString(reader, "Proxy host", cfg.Proxy.Host)
					portInput := promptString(reader, "Proxy port", strconv.Itoa(cfg.Proxy.Port))
					if v, err := strconv.Atoi(portInput); err == nil && v > 0 {
						cfg.Proxy.Port = v
					}
					cfg.Proxy.User = promptString(reader, "Proxy user", cfg.Proxy.User)
					if cfg.Proxy.User != "" {
						pw, err := promptSecret("Proxy password")
						if err != nil {
							return err
						}
						cfg.Proxy.Password = pw
					}
				}
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration invalid: %w", err)
			}
			if err := cfg.Save(path); err != nil {
				return err
			}

			fmt.Printf("\n✓ Configuration saved to: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	return cmd
}

// newConfigShowCmd creates the 'config show' command.
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			fmt.Println("Current Configuration:")
			fmt.Printf("  API Base URL: %s\n", cfg.APIBaseURL)
			fmt.Printf("  API Key: %s\n", maskKey(cfg.APIKey))
			fmt.Printf("  Page Size: %d\n", cfg.Browse.PageSize)
			fmt.Printf("  Sort: %s", cfg.Browse.SortBy)
			if cfg.Browse.SortDescending {
				fmt.Print(" (descending)")
			}
			fmt.Println()
			fmt.Printf("  Proxy Mode: %s\n", cfg.Proxy.Mode)
			if cfg.Proxy.Host != "" {
				fmt.Printf("  Proxy: %s:%d\n", cfg.Proxy.Host, cfg.Proxy.Port)
			}
			return nil
		},
	}
}

// newConfigSetCmd creates the 'config set' command.
func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a single configuration value",
		Long: `Set one configuration value and save the file.

Keys:
  api-url, api-key, page-size, sort-by, sort-desc,
  proxy-mode, proxy-host, proxy-port, proxy-user`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			key, value := strings.ToLower(args[0]), args[1]
			switch key {
			case "api-url":
				cfg.APIBaseURL = strings.TrimSuffix(value, "/")
			case "api-key":
				cfg.APIKey = value
			case "page-size":
				v, err := strconv.Atoi(value)
				if err != nil || !models.IsPageSize(v) {
					return fmt.Errorf("page-size must be one of %v", models.PageSizes)
				}
				cfg.Browse.PageSize = v
			case "sort-by":
				if !models.IsSortField(value) {
					return fmt.Errorf("sort-by must be one of %s", strings.Join(models.SortFields, ", "))
				}
				cfg.Browse.SortBy = value
			case "sort-desc":
				v, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("sort-desc must be true or false")
				}
				cfg.Browse.SortDescending = v
			case "proxy-mode":
				cfg.Proxy.Mode = strings.ToLower(value)
			case "proxy-host":
				cfg.Proxy.Host = value
			case "proxy-port":
				v, err := strconv.Atoi(value)
				if err != nil || v <= 0 {
					return fmt.Errorf("proxy-port must be a positive number")
				}
				cfg.Proxy.Port = v
			case "proxy-user":
				cfg.Proxy.User = value
			default:
				return fmt.Errorf("unknown configuration key %q", key)
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration invalid: %w", err)
			}
			if err := cfg.Save(path); err != nil {
				return err
			}
			fmt.Printf("✓ Set %s\n", key)
			return nil
		},
	}
}

// newConfigTestCmd creates the 'config test' command.
func newConfigTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Test the catalog connection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if http.NeedsProxyPassword(cfg) {
				pw, err := promptSecret("Proxy password")
				if err != nil {
					return err
				}
				cfg.Proxy.Password = pw
			}

			client, err := api.NewClient(cfg)
			if err != nil {
				return err
			}

			fmt.Printf("Testing connection to %s ...\n", cfg.APIBaseURL)
			page, err := client.Query(GetContext(), "", cfg.Browse.SortBy, false, 1, models.PageSizes[0])
			if err != nil {
				return fmt.Errorf("connection test failed: %w", err)
			}

			fmt.Printf("✓ Connected. Catalog has %d games across %d pages.\n",
				page.TotalCount, page.TotalPages)
			return nil
		},
	}
}

// newConfigPathCmd creates the 'config path' command.
func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			if _, err := os.Stat(path); os.IsNotExist(err) {
				fmt.Println("(file does not exist yet; run 'config init' to create it)")
			}
			return nil
		},
	}
}

// maskKey hides all but a short prefix of the API key.
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + strings.Repeat("*", len(key)-4)
}
