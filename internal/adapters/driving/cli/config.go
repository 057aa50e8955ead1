package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change settings stored in config.toml.

Known keys:
  fetch.max_retries       retries after a failed request (default 2)
  fetch.retry_wait_ms     pause between attempts in milliseconds (default 500)
  fetch.timeout_seconds   timeout for a single request (default 30)
  fetch.rate_per_second   request rate cap, 0 for none (default 2)
  fetch.user_agent        User-Agent header (default quotient/<version>)
  log.json                write logs as JSON lines (default false)`,
	RunE: runConfigList,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configured values",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long:  `Set a configuration value. Integers, floats and true/false are stored typed.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	store, err := resolveConfigStore()
	if err != nil {
		return err
	}

	keys := store.Keys()
	if len(keys) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No configuration set.")
		return nil
	}

	for _, key := range keys {
		val, _ := store.Get(key)
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", key, val)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	store, err := resolveConfigStore()
	if err != nil {
		return err
	}

	val, ok := store.Get(args[0])
	if !ok {
		return fmt.Errorf("config key %q is not set", args[0])
	}

	fmt.Fprintln(cmd.OutOrStdout(), val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	store, err := resolveConfigStore()
	if err != nil {
		return err
	}

	if err := store.Set(args[0], parseConfigValue(args[1])); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s updated\n", args[0])
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	store, err := resolveConfigStore()
	if err != nil {
		return err
	}

	if err := store.Delete(args[0]); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s removed\n", args[0])
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	store, err := resolveConfigStore()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), store.Path())
	return nil
}

// parseConfigValue stores numbers and booleans with their TOML type.
func parseConfigValue(raw string) any {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	return raw
}
