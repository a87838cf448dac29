package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dirsync/core/config"
	"dirsync/core/directory"
	"dirsync/core/inventory"
	"dirsync/core/logger"
	"dirsync/core/reconcile"
	"dirsync/feature/orgsync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for sync command
	dryRunSync         bool
	insecureSkipVerify bool
	baseOU             string
	pageSize           int
)

// syncCmd performs one directory to inventory sync.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync departments and buildings from LDAP into the inventory",
	Long: `Read staff records under the base OU, then create and delete departments
and buildings in the inventory until both catalogs match the directory.

Settings come from the environment (or a .env file); anything missing is
prompted for: LDAP server, inventory URL, username and password.

Examples:
  # Interactive
  dirsync sync

  # Show what would change without touching the inventory
  dirsync sync --dry-run

  # Non-interactive
  DIRECTORY_SERVER=dc01 INVENTORY_URL=https://jss:8443 \
  INVENTORY_USERNAME=jane.doe INVENTORY_PASSWORD=... dirsync sync`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Plan only; make no changes to the inventory")
	syncCmd.Flags().BoolVar(&insecureSkipVerify, "insecure-skip-verify", false, "Skip LDAP server certificate validation")
	syncCmd.Flags().StringVar(&baseOU, "base-ou", "", "Organizational unit holding staff records")
	syncCmd.Flags().IntVar(&pageSize, "page-size", 0, "LDAP paged search size (0 disables paging)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applySyncFlags(cmd, cfg)

	// Fill blanks interactively, then validate
	p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	if err := p.complete(cfg); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = l.Sync() }()
	l = logger.WithRunID(l, logger.NewRunID())

	l.Info("Starting sync",
		zap.String("directory", cfg.Directory.Server),
		zap.String("base_ou", cfg.Directory.BaseOU),
		zap.String("inventory", cfg.Inventory.URL),
		zap.Bool("dry_run", dryRunSync),
	)

	out := cmd.OutOrStdout()
	inv := inventory.NewClient(cfg.Inventory, out, l)
	connect := func() (orgsync.DirectoryReader, error) {
		client, err := directory.Connect(cfg.Directory, l)
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	svc := orgsync.NewService(connect, inv, out, l)
	if _, err := svc.Run(ctx, reconcile.ReconcileOptions{DryRun: dryRunSync}); err != nil {
		return err
	}

	return nil
}

// applySyncFlags overrides configuration with flags set on the command line.
func applySyncFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("insecure-skip-verify") {
		cfg.Directory.InsecureSkipVerify = insecureSkipVerify
	}
	if flags.Changed("base-ou") {
		cfg.Directory.BaseOU = baseOU
	}
	if flags.Changed("page-size") {
		cfg.Directory.PageSize = pageSize
	}
}
