package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Simplici0/savings/internal/assumptions"
	"github.com/Simplici0/savings/internal/config"
	"github.com/Simplici0/savings/internal/db"
	"github.com/Simplici0/savings/internal/migrations"
	"github.com/Simplici0/savings/internal/savings"
	"github.com/Simplici0/savings/internal/seed"
)

type MigrateOptions struct {
	GlobalOptions
}

func NewCmdMigrate(cfg config.Config) *cobra.Command {
	o := &MigrateOptions{GlobalOptions: DefaultGlobalOptions(cfg)}
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the assumptions store and seed it",
		Long: "Apply pending schema migrations to the SQLite store. When --assumptions is set the " +
			"file is validated and seeded on first run, otherwise the built-in defaults are used.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context())
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *MigrateOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
}

func (o *MigrateOptions) Validate(args []string) error {
	if o.DBPath == "" {
		return fmt.Errorf("--db or DB_PATH is required")
	}
	return o.GlobalOptions.Validate(args)
}

func (o *MigrateOptions) Run(ctx context.Context) error {
	logger, err := o.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	table := savings.DefaultAssumptions()
	if o.AssumptionsFile != "" {
		if table, err = assumptions.LoadFile(o.AssumptionsFile); err != nil {
			return err
		}
	}

	database, err := db.Open(o.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer database.Close()

	applied, err := migrations.UpContext(ctx, database)
	if err != nil {
		return err
	}
	stats, err := seed.Run(ctx, database, seed.Config{Assumptions: table})
	if err != nil {
		return err
	}

	logger.Info("store migrated",
		zap.String("path", o.DBPath),
		zap.Int("migrations", applied),
		zap.Int("inserts", stats.Inserts))
	return nil
}
