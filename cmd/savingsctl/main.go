package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Simplici0/savings/internal/cli"
	"github.com/Simplici0/savings/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	command := NewSavingsCtlCommand(cfg)
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewSavingsCtlCommand(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "savingsctl [command] [flags]",
		Short: "savingsctl computes fulfillment savings and exports reports.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdReport(cfg))
	cmd.AddCommand(cli.NewCmdPackages())
	cmd.AddCommand(cli.NewCmdAssumptions(cfg))
	cmd.AddCommand(cli.NewCmdMigrate(cfg))

	return cmd
}
