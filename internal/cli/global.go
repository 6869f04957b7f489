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
	"github.com/Simplici0/savings/internal/logging"
	"github.com/Simplici0/savings/internal/savings"
)

// GlobalOptions are shared by every savingsctl command. Defaults come from the
// environment, flags override them.
type GlobalOptions struct {
	AssumptionsFile string
	DBPath          string
	LogLevel        string
}

func DefaultGlobalOptions(cfg config.Config) GlobalOptions {
	return GlobalOptions{
		AssumptionsFile: cfg.AssumptionsFile,
		DBPath:          cfg.DBPath,
		LogLevel:        cfg.LogLevel,
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.AssumptionsFile, "assumptions", "a", o.AssumptionsFile, "Path to a YAML or JSON assumptions file")
	fs.StringVar(&o.DBPath, "db", o.DBPath, "Path to the SQLite assumptions store")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level (debug, info, warn, error)")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	return nil
}

// Logger writes to stderr so command output on stdout stays clean.
func (o *GlobalOptions) Logger() (*zap.Logger, error) {
	return logging.New(o.LogLevel, "stderr")
}

// Assumptions resolves the effective table: file, then store, then defaults.
func (o *GlobalOptions) Assumptions(ctx context.Context) (savings.Assumptions, assumptions.Origin, error) {
	src := assumptions.Source{File: o.AssumptionsFile}

	if o.DBPath != "" && o.AssumptionsFile == "" {
		database, err := db.Open(o.DBPath)
		if err != nil {
			return savings.Assumptions{}, "", fmt.Errorf("open store: %w", err)
		}
		defer database.Close()
		src.DB = database
	}

	return assumptions.Resolve(ctx, src)
}
