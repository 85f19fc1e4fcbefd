package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), out.String())
	return out.String()
}

func TestQuoteCommandJSON(t *testing.T) {
	out := run(t, "quote",
		"--usage", "private_passenger",
		"--value", "200000000",
		"--manufacture-year", "2015",
		"--tier", "basic",
		"--liability",
		"--format", "json",
	)

	var rec struct {
		ID    string `json:"id"`
		Quote struct {
			HullFee      int64 `json:"hull_fee"`
			FloorApplied bool  `json:"floor_applied"`
			LiabilityFee int64 `json:"liability_fee"`
			GrandTotal   int64 `json:"grand_total"`
		} `json:"quote"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, int64(5_500_000), rec.Quote.HullFee)
	assert.True(t, rec.Quote.FloorApplied)
	assert.Equal(t, int64(437_000), rec.Quote.LiabilityFee)
	assert.Equal(t, int64(5_937_000), rec.Quote.GrandTotal)
}

func TestQuoteCommandTable(t *testing.T) {
	out := run(t, "quote",
		"--usage", "private_passenger",
		"--value", "200000000",
		"--manufacture-year", "2015",
		"--tier", "basic",
		"--format", "cli",
		"--no-color",
	)
	assert.Contains(t, out, "GRAND TOTAL")
	assert.Contains(t, out, "(minimum fee)")
}

func TestRatesCommand(t *testing.T) {
	out := run(t, "rates", "--usage", "dump_trailer", "--manufacture-year", "2000", "--value", "900000000", "--format", "cli")
	assert.Contains(t, out, "dump_trailer")
	assert.Contains(t, out, "3.25%")
	assert.Contains(t, out, "premium")
}

func TestTablesCommand(t *testing.T) {
	out := run(t, "tables", "--format", "cli")
	assert.Contains(t, out, "Snapshot: tariff-")
	assert.Contains(t, out, "cargo_3_8t")
	assert.Contains(t, out, "nntx-10m")
}

func TestBatchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- usage: private_passenger
  value: 200000000
  manufacture_year: 2015
  seats: 5
  liability: true
- usage: private_passenger
  value: -1
  manufacture_year: 2015
`), 0o644))

	out := run(t, "batch", path, "--format", "json", "--workers", "2")

	var report struct {
		Items []struct {
			Index  int             `json:"index"`
			Record json.RawMessage `json:"record"`
			Error  string          `json:"error"`
		} `json:"items"`
		Quoted   int   `json:"quoted"`
		Rejected int   `json:"rejected"`
		Total    int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Items, 2)
	assert.NotEmpty(t, report.Items[0].Record)
	assert.Empty(t, report.Items[0].Error)
	assert.Contains(t, report.Items[1].Error, "value")
	assert.Equal(t, 1, report.Quoted)
	assert.Equal(t, 1, report.Rejected)
	assert.Equal(t, int64(5_937_000), report.Total)
}

func TestReadRequestsRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.csv")
	require.NoError(t, os.WriteFile(path, []byte("usage,value\n"), 0o644))
	_, err := readRequests(path)
	assert.Error(t, err)
}
