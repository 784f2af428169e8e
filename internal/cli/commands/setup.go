package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlint/internal/config"
)

// LoadConfig loads the project configuration using the root command's
// persistent flags (--config, --dialect, --log-level) as overrides.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgFile, _ := cmd.Root().PersistentFlags().GetString("config")
	return config.Load(cfgFile, cmd.Root().PersistentFlags())
}
