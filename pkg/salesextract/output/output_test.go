package output

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/salesextract-go/pkg/salesextract"
	"github.com/xuri/excelize/v2"
)

// extractSample runs the sample workbook through a batch of one file.
func extractSample(t *testing.T) *salesextract.Result {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, WriteSample(&buf))

	opts := salesextract.DefaultOptions()
	opts.Logger = slog.New(slog.DiscardHandler)
	opts.RunID = "test-run"

	res, err := salesextract.Extract(context.Background(), []salesextract.Input{
		{Name: "Sample_Sales_Summary_Format.xlsx", Data: buf.Bytes()},
	}, opts)
	require.NoError(t, err)
	return res
}

func TestSampleRoundTrip(t *testing.T) {
	res := extractSample(t)
	require.Empty(t, res.Failures)
	require.Len(t, res.Stores(), 1)

	rec := res.Stores()[0]
	assert.Equal(t, "10519", rec.StoreNumber)
	assert.Equal(t, "400 N Foxridge Raymore MO", rec.StoreAddress)
	assert.Equal(t, "April 2025", rec.Month)
	assert.Equal(t, int64(8678), rec.TransactionCount)
	assert.Equal(t, "113551.47", rec.NetSalesWithDonations.String())
	assert.Equal(t, "1193.05", rec.Beverages.String())
	assert.Equal(t, "7165.08", rec.Cakes.String())
	assert.Equal(t, "42843.43", rec.DQFood.String())
	assert.Equal(t, "62349.91", rec.DairyQueen.String())
	assert.Equal(t, "113551.47", rec.TotalSales.String())
	assert.Contains(t, res.Log, "Found sheets: Sales Summary")
}

func TestToJSON(t *testing.T) {
	res := extractSample(t)

	data, err := ToJSON(res, false)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
	assert.Contains(t, string(data), `"run_id":"test-run"`)
	assert.Contains(t, string(data), `"store_number":"10519"`)
	assert.Contains(t, string(data), `"month":"TOTAL"`)
	assert.NotContains(t, string(data), `"failures"`)

	pretty, err := ToJSON(res, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"records\": [")
}

func TestWriteCSV(t *testing.T) {
	res := extractSample(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, res.Records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Headers, rows[0])
	assert.Equal(t, []string{
		"10519", "400 N Foxridge Raymore MO",
		"62349.91", "42843.43", "1193.05", "0.00", "7165.08", "0.00",
		"8678", "113551.47", "113551.47",
		"April 2025", "Sample_Sales_Summary_Format.xlsx",
	}, rows[1])
	assert.Equal(t, "All Stores Combined", rows[2][1])
	assert.Equal(t, "TOTAL", rows[2][11])
	assert.Equal(t, "TOTALS", rows[2][12])
}

func TestWriteXLSX(t *testing.T) {
	res := extractSample(t)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, res.Records))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet}, f.GetSheetList())

	header, err := f.GetCellValue(SummarySheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Store #", header)

	store, err := f.GetCellValue(SummarySheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "10519", store)

	dq, err := f.GetCellValue(SummarySheet, "C2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "62349.91", dq)

	month, err := f.GetCellValue(SummarySheet, "L3")
	require.NoError(t, err)
	assert.Equal(t, "TOTAL", month)
}
