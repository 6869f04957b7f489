package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Simplici0/savings/internal/assumptions"
	"github.com/Simplici0/savings/internal/config"
)

type AssumptionsOptions struct {
	GlobalOptions
}

func NewCmdAssumptions(cfg config.Config) *cobra.Command {
	o := &AssumptionsOptions{GlobalOptions: DefaultGlobalOptions(cfg)}
	cmd := &cobra.Command{
		Use:   "assumptions",
		Short: "Print the effective assumptions table as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *AssumptionsOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
}

func (o *AssumptionsOptions) Run(ctx context.Context, out io.Writer) error {
	table, _, err := o.Assumptions(ctx)
	if err != nil {
		return err
	}

	content, err := assumptions.Marshal(table)
	if err != nil {
		return err
	}
	_, err = out.Write(content)
	return err
}
