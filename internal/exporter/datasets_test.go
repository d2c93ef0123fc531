package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remcli/internal/dataprocessing"
	"remcli/internal/esop"
)

func readDataset(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := strings.TrimPrefix(string(data), "\xEF\xBB\xBF")
	rows, err := csv.NewReader(strings.NewReader(content)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteGrowthSummaries(t *testing.T) {
	w := NewCSVWriter(t.TempDir())
	summaries := []dataprocessing.DirectorSummary{
		{
			CompanyID: "500325", CompanyName: "Acme Ltd",
			DirectorID: "D1", DirectorName: "A Sharma", Designation: "MD",
			YearsDisclosed: 3, LatestFY: "FY2023",
			LatestTotal: 12_100_000, LatestDisplay: "₹1.21 Cr",
			CompGrowth: 0.1, CompGrowthOK: true, CompGrowthDisplay: "10.0%",
		},
		{
			CompanyID: "500325", CompanyName: "Acme Ltd",
			DirectorID: "D2", DirectorName: "B Rao",
			YearsDisclosed: 1, LatestFY: "FY2023",
			LatestTotal: 8_000_000, LatestDisplay: "₹80 L",
			CompGrowthOK: false, CompGrowthDisplay: "N/A",
		},
	}

	require.NoError(t, w.WriteGrowthSummaries(summaries, "growth.csv"))
	rows := readDataset(t, filepath.Join(w.baseDir, "growth.csv"))

	require.Len(t, rows, 3)
	assert.Equal(t, growthSummaryHeaders, rows[0])

	grown := rows[1]
	assert.Equal(t, "A Sharma", grown[3])
	assert.Equal(t, "12100000.00", grown[7])
	assert.Equal(t, "0.100000", grown[9])
	assert.Equal(t, "true", grown[10])
	assert.Equal(t, "10.0%", grown[11])

	sentinel := rows[2]
	assert.Equal(t, "", sentinel[9], "sentinel growth must export as empty")
	assert.Equal(t, "false", sentinel[10])
	assert.Equal(t, "N/A", sentinel[11])
}

func TestWriteEsopSeries(t *testing.T) {
	w := NewCSVWriter(t.TempDir())
	summaries := []dataprocessing.DirectorSummary{
		{
			CompanyID: "500325", DirectorID: "D1", DirectorName: "A Sharma",
			EsopSeries: []esop.Point{
				{Year: 2021, FairValue: 100000, MarketValue: 150000},
				{Year: 2022, FairValue: 120000, MarketValue: 180000},
			},
		},
		{
			// director with no ESOP grants contributes no rows
			CompanyID: "500325", DirectorID: "D2", DirectorName: "B Rao",
		},
	}

	require.NoError(t, w.WriteEsopSeries(summaries, "esop.csv"))
	rows := readDataset(t, filepath.Join(w.baseDir, "esop.csv"))

	require.Len(t, rows, 3)
	assert.Equal(t, esopSeriesHeaders, rows[0])
	assert.Equal(t, []string{"500325", "D1", "A Sharma", "2021", "100000.00", "150000.00"}, rows[1])
	assert.Equal(t, []string{"500325", "D1", "A Sharma", "2022", "120000.00", "180000.00"}, rows[2])
}
