package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Simplici0/savings/internal/config"
	"github.com/Simplici0/savings/internal/form"
	"github.com/Simplici0/savings/internal/report"
	"github.com/Simplici0/savings/internal/savings"
)

type ReportOptions struct {
	GlobalOptions

	WarehouseSize        float64
	OrdersPerMonth       float64
	AverageItemsPerOrder float64
	Package              string
	Format               string
	Output               string

	Locale         string
	CurrencySymbol string
	ProviderName   string
	Contact        string

	request form.Request
	format  report.Format
	now     func() time.Time
}

func DefaultReportOptions(cfg config.Config) *ReportOptions {
	return &ReportOptions{
		GlobalOptions:  DefaultGlobalOptions(cfg),
		Package:        string(savings.Fulfillment),
		Format:         string(report.FormatText),
		Locale:         cfg.ReportLocale,
		CurrencySymbol: cfg.CurrencySymbol,
		ProviderName:   cfg.ProviderName,
		Contact:        cfg.ReportContact,
		now:            time.Now,
	}
}

func NewCmdReport(cfg config.Config) *cobra.Command {
	o := DefaultReportOptions(cfg)
	cmd := &cobra.Command{
		Use:     "report [FLAGS]",
		Short:   "Render a savings report",
		Example: "report --warehouse-size 500 --orders 1000 --items 2 -p store-pack -f xlsx -o report.xlsx",
		Args:    cobra.NoArgs,
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

func (o *ReportOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	fs.Float64Var(&o.WarehouseSize, "warehouse-size", 0, "Warehouse size in square meters")
	fs.Float64Var(&o.OrdersPerMonth, "orders", 0, "Orders per month")
	fs.Float64Var(&o.AverageItemsPerOrder, "items", 0, "Average items per order")
	fs.StringVarP(&o.Package, "package", "p", o.Package, "Service package (fulfillment, store-pack, sort-pack)")
	fs.StringVarP(&o.Format, "format", "f", o.Format, "Report format (text, xlsx, html)")
	fs.StringVarP(&o.Output, "output", "o", "", "Output file path. Defaults to stdout")
	fs.StringVar(&o.Locale, "locale", o.Locale, "Locale used to format numbers")
	fs.StringVar(&o.CurrencySymbol, "currency-symbol", o.CurrencySymbol, "Currency symbol")
	fs.StringVar(&o.ProviderName, "provider", o.ProviderName, "Name of the alternate provider")
}

func (o *ReportOptions) Complete(cmd *cobra.Command, args []string) error {
	o.request = form.Request{
		WarehouseSize:        o.WarehouseSize,
		OrdersPerMonth:       o.OrdersPerMonth,
		AverageItemsPerOrder: o.AverageItemsPerOrder,
		Package:              savings.Package(o.Package),
	}
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *ReportOptions) Validate(args []string) error {
	if err := o.request.Validate(); err != nil {
		return err
	}
	if !o.request.CanCalculate() {
		return fmt.Errorf("--warehouse-size, --orders and --items must all be greater than 0")
	}

	format, err := report.ParseFormat(o.Format)
	if err != nil {
		return err
	}
	o.format = format

	if o.format == report.FormatXLSX && o.Output == "" {
		return fmt.Errorf("xlsx reports need an --output file")
	}
	return o.GlobalOptions.Validate(args)
}

func (o *ReportOptions) Run(ctx context.Context, stdout io.Writer) error {
	logger, err := o.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	table, origin, err := o.Assumptions(ctx)
	if err != nil {
		return err
	}
	logger.Debug("assumptions loaded", zap.String("origin", string(origin)))

	formatter, err := report.NewFormatter(o.Locale, o.CurrencySymbol)
	if err != nil {
		return err
	}

	doc := report.Document{
		Result:       savings.Compute(o.request.Input(), o.request.Package, table),
		ProviderName: o.ProviderName,
		Contact:      o.Contact,
		GeneratedAt:  o.now(),
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, o.format, doc, formatter); err != nil {
		return err
	}

	if o.Output == "" {
		_, err = buf.WriteTo(stdout)
		return err
	}

	size := uint64(buf.Len())
	if err := os.WriteFile(o.Output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", o.Output, err)
	}
	logger.Info("report written",
		zap.String("path", o.Output),
		zap.String("format", string(o.format)),
		zap.String("size", humanize.Bytes(size)))
	return nil
}
