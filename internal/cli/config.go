package cli

import (
	"fmt"

	"github.com/ojji/Resub/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect resub configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, resolved, exists, err := config.Load(configPath)
		if err != nil {
			return err
		}
		data, err := cfg.Encode()
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}

		out := cmd.OutOrStdout()
		state := "not found, using defaults"
		if exists {
			state = "loaded"
		}
		fmt.Fprintf(out, "# %s (%s)\n", resolved, state)
		_, err = out.Write(data)
		return err
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
