package cmd

import (
	"fmt"
	"os"

	"dirsync/core/apperr"
	"dirsync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "dirsync",
	Short: "Directory to MDM inventory synchronizer",
	Long: `dirsync mirrors the departments and buildings found on staff records in
the LDAP directory into the department and building catalogs of the MDM
inventory. The directory is authoritative: missing names are created and
extra names are deleted.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Connection-level failures get the short message operators expect
		if msg := apperr.Message(err); msg != "" {
			fmt.Println(msg)
		}

		// We default to console format to match user expectations (CLI tool)
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
