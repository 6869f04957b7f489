package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Simplici0/savings/internal/savings"
)

func NewCmdPackages() *cobra.Command {
	return &cobra.Command{
		Use:   "packages",
		Short: "List the service packages and the services each one covers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPackages(cmd.Context(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
}

func printPackages(_ context.Context, out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSERVICES")
	for _, p := range savings.Packages() {
		labels := make([]string, 0, 4)
		for _, s := range p.Services() {
			labels = append(labels, s.Label())
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", p, p.Label(), strings.Join(labels, ", "))
	}
	return w.Flush()
}
