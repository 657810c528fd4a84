// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/checktica/checktica-go/internal/config"
)

// Config command flags.
var configGlobal bool

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and modify checktica configuration",
	Long: `View and modify checktica configuration.

Checktica reads .checktica.yaml (or .checktica.toml) from the current
directory. A global config at ~/.config/checktica/config.yaml provides
defaults. Local settings override global settings, CHECKTICA_API_URL and
CHECKTICA_METHOD override both, and command-line flags override everything.

Note: config set does a YAML round-trip and will not preserve comments.`,
}

// configGetCmd retrieves a configuration value by key.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get the effective value of a configuration key.

Examples:
  checktica config get method
  checktica config get --global threshold`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets a configuration value.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the config file.

Values are auto-detected as bool, int, float, or string; extensions takes a
comma-separated list. By default, writes to .checktica.yaml in the current
directory. Use --global to write to ~/.config/checktica/config.yaml.

Examples:
  checktica config set method balanced
  checktica config set threshold 0.8
  checktica config set timeout 45s
  checktica config set extensions .txt,.md,.rst
  checktica config set --global api_url https://staging.checktica.com`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

// configListCmd lists all configuration values with their source.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Long: `List all configuration values with their source annotation: global
(~/.config/checktica/config.yaml), local (.checktica.yaml or .checktica.toml),
or env.`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

func init() {
	configGetCmd.Flags().BoolVar(&configGlobal, "global", false, "use global config (~/.config/checktica/config.yaml)")
	configSetCmd.Flags().BoolVar(&configGlobal, "global", false, "write to global config (~/.config/checktica/config.yaml)")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
}

// resetConfigFlags resets config command flags for testing.
func resetConfigFlags() {
	configGlobal = false
	if f := configGetCmd.Flags().Lookup("global"); f != nil {
		_ = f.Value.Set("false")
		f.Changed = false
	}
	if f := configSetCmd.Flags().Lookup("global"); f != nil {
		_ = f.Value.Set("false")
		f.Changed = false
	}
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	keyPath := args[0]
	if err := config.ValidateKeyPath(keyPath); err != nil {
		return exitError(ExitInvalidArgs, "checktica: %v", err)
	}

	var cfg *config.Config
	var err error
	if configGlobal {
		cfg, err = config.LoadGlobal()
	} else {
		cfg, err = config.LoadLayered(".")
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	val, err := config.GetValue(cfg, keyPath)
	if err != nil {
		return err
	}
	return printValue(cmd, val)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	keyPath := args[0]
	rawValue := args[1]

	if err := config.ValidateKeyPath(keyPath); err != nil {
		return exitError(ExitInvalidArgs, "checktica: %v", err)
	}

	targetPath := filepath.Join(".", config.FileName)
	if configGlobal {
		targetPath = config.GlobalConfigPath()
	}

	data, err := config.LoadRaw(targetPath)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}
	if err := config.SetValue(data, keyPath, rawValue); err != nil {
		return fmt.Errorf("setting value: %w", err)
	}

	// Round-trip validate before touching the file.
	validCfg, err := config.FromMap(data)
	if err != nil {
		return exitError(ExitInvalidArgs, "checktica: invalid config after set: %v", err)
	}
	if err := config.Validate(validCfg); err != nil {
		return exitError(ExitInvalidArgs, "checktica: %v", err)
	}

	if err := config.WriteFile(targetPath, data); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", keyPath, rawValue)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return fmt.Errorf("loading global config: %w", err)
	}
	localCfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("loading local config: %w", err)
	}
	envCfg := &config.Config{}
	config.ApplyEnv(envCfg)

	type entry struct {
		value  any
		source string
	}
	seen := make(map[string]entry)
	for _, layer := range []struct {
		cfg    *config.Config
		source string
	}{
		{globalCfg, "global"},
		{localCfg, "local"},
		{envCfg, "env"},
	} {
		m, err := config.ToMap(layer.cfg)
		if err != nil {
			return err
		}
		for k, v := range config.FlattenMap(m, "") {
			seen[k] = entry{value: v, source: layer.source}
		}
	}

	if len(seen) == 0 {
		_, _ = fmt.Fprintln(w, "No configuration set.")
		_, _ = fmt.Fprintln(w, "Run 'checktica config set <key> <value>' to set values.")
		return nil
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		e := seen[k]
		_, _ = fmt.Fprintf(w, "%s = %v %s\n", k, e.value, formatSource(e.source))
	}
	return nil
}

// printValue outputs a value: scalars as plain text, maps/slices as YAML.
func printValue(cmd *cobra.Command, val any) error {
	switch v := val.(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
	default:
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

var sourceColors = map[string]*color.Color{
	"global": color.New(color.FgCyan),
	"local":  color.New(color.FgGreen),
	"env":    color.New(color.FgYellow),
}

// formatSource returns a colorized source annotation.
func formatSource(source string) string {
	if c, ok := sourceColors[source]; ok {
		return c.Sprintf("(%s)", source)
	}
	return fmt.Sprintf("(%s)", source)
}

