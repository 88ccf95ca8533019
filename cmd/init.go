package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/courseql/courseql/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Creates a courseql.toml with default settings in the current directory
(or at the path given with --config).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeDefaultConfig(configPath, initForce)
	},
}

// writeDefaultConfig saves the default config to path, refusing to overwrite
// an existing file unless force is set.
func writeDefaultConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.Default().Save(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
