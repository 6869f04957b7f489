package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Simplici0/savings/internal/assumptions"
	"github.com/Simplici0/savings/internal/config"
	"github.com/Simplici0/savings/internal/savings"
)

func testConfig() config.Config {
	return config.Config{
		LogLevel:       "error",
		ReportLocale:   "en-US",
		CurrencySymbol: "$",
		ProviderName:   "Roots",
		ReportContact:  "Contact hello@roots.example",
	}
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var scenarioArgs = []string{"--warehouse-size", "500", "--orders", "1000", "--items", "2"}

func TestReportWritesTextToStdout(t *testing.T) {
	out, err := execute(t, NewCmdReport(testConfig()), append(scenarioArgs, "-p", "store-pack")...)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Fulfillment Savings Report\n"))
	assert.Contains(t, out, "Package: Store & Pack")
	assert.Contains(t, out, "Your total cost: $14,400")
	assert.Contains(t, out, "Contact hello@roots.example")
	assert.NotContains(t, out, "Delivery")
}

func TestReportWritesXLSXFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	out, err := execute(t, NewCmdReport(testConfig()), append(scenarioArgs, "-f", "xlsx", "-o", path)...)
	require.NoError(t, err)
	assert.Empty(t, out)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Report")
	require.NoError(t, err)
	assert.Equal(t, "Fulfillment Savings Report", rows[0][0])
}

func TestReportValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing input", args: []string{"--warehouse-size", "500"}, want: "must all be greater than 0"},
		{name: "negative input", args: []string{"--warehouse-size", "-1", "--orders", "1", "--items", "1"}, want: "warehouseSize must be greater than or equal to 0"},
		{name: "unknown package", args: append(scenarioArgs, "-p", "gold"), want: "package must be one of"},
		{name: "unknown format", args: append(scenarioArgs, "-f", "pdf"), want: "unknown report format"},
		{name: "xlsx to stdout", args: append(scenarioArgs, "-f", "xlsx"), want: "--output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, NewCmdReport(testConfig()), tt.args...)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestReportUsesAssumptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assumptions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  costPerSqm: 10\n"), 0o600))

	out, err := execute(t, NewCmdReport(testConfig()), append(scenarioArgs, "-p", "store-pack", "-a", path)...)
	require.NoError(t, err)
	// 500 sqm at 10 with the 1.25 merchant multiplier.
	assert.Contains(t, out, "Your cost: $6,250")
}

func TestPackagesListsEveryPackage(t *testing.T) {
	out, err := execute(t, NewCmdPackages())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "SERVICES")
	assert.Contains(t, lines[2], "store-pack")
	assert.Contains(t, lines[2], "Storage, Handling In, Handling Out")
	assert.Contains(t, lines[3], "Sort & Pack")
}

func TestAssumptionsPrintsDefaults(t *testing.T) {
	out, err := execute(t, NewCmdAssumptions(testConfig()))
	require.NoError(t, err)

	table, err := assumptions.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, savings.DefaultAssumptions(), table)
}

func TestMigrateSeedsStoreThenAssumptionsReadsIt(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "savings.db")
	file := filepath.Join(dir, "assumptions.yaml")
	require.NoError(t, os.WriteFile(file, []byte("delivery:\n  alternateCostPerOrder: 1.5\n"), 0o600))

	_, err := execute(t, NewCmdMigrate(testConfig()), "--db", dbPath, "-a", file)
	require.NoError(t, err)

	// Re-running keeps the seeded row.
	_, err = execute(t, NewCmdMigrate(testConfig()), "--db", dbPath)
	require.NoError(t, err)

	out, err := execute(t, NewCmdAssumptions(testConfig()), "--db", dbPath)
	require.NoError(t, err)
	table, err := assumptions.Parse([]byte(out))
	require.NoError(t, err)
	assert.InDelta(t, 1.5, table.Delivery.AlternateCostPerOrder, 1e-9)
	assert.InDelta(t, 12, table.Storage.CostPerSqm, 1e-9)
}

func TestMigrateRequiresDB(t *testing.T) {
	_, err := execute(t, NewCmdMigrate(testConfig()))
	assert.ErrorContains(t, err, "--db or DB_PATH is required")
}
