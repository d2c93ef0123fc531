package dataprocessing

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeDisclosureWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet(sheet)
	require.NoError(t, err)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}

	path := filepath.Join(t.TempDir(), "dirconsol.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func disclosureHeader() []interface{} {
	return []interface{}{
		"Company Name", "BSE Scrip Code", "Sector", "Industry", "Index",
		"DIN", "Director Name", "Designation", "Appointment Date",
		"Year 1", "Total Remuneration", "Fair Value", "Aggregate Value",
		"Year 2", "Total Remuneration", "Fair Value", "Aggregate Value",
	}
}

func TestParseDirConsol(t *testing.T) {
	path := writeDisclosureWorkbook(t, "Dir Consol", [][]interface{}{
		disclosureHeader(),
		{
			"Acme Ltd", "500325", "IT", "Software", "NIFTY 50",
			"00012345", "A Sharma", "Managing Director", "2015-04-01",
			"2022-03-31", "₹1.2 Cr", "₹10,00,000", "₹15,00,000",
			"2023-03-31", "₹1.5 Cr", "₹12,00,000", "₹18,00,000",
		},
		{
			// no company identifier at all: must be skipped, not fatal
			"", "", "", "", "",
			"", "Orphan Director", "", "",
			"2023-03-31", "₹50 L", "", "",
		},
	})

	set, err := ParseDirConsol(path, slog.Default())
	require.NoError(t, err)

	assert.Equal(t, path, set.SourceFile)
	assert.Equal(t, 1, set.RowsSkipped)
	require.Len(t, set.Disclosures, 1)

	d := set.Disclosures[0]
	assert.Equal(t, "500325", d.Company.CompanyID)
	assert.Equal(t, "Acme Ltd", d.Company.Name)
	assert.Equal(t, "IT", d.Company.Sector)
	assert.Equal(t, "00012345", d.Director.DirectorID)
	assert.Equal(t, "A Sharma", d.Director.Name)
	assert.Equal(t, 2015, d.Director.AppointmentDate.Year())

	require.Len(t, d.Records, 2)
	first, second := d.Records[0], d.Records[1]

	assert.Equal(t, "FY2022", first.FYLabel)
	assert.InDelta(t, 12_000_000, first.TotalRemuneration, 1e-9)
	assert.Equal(t, "₹10,00,000", first.FairValue)
	assert.Equal(t, "₹15,00,000", first.AggregateValue)

	assert.Equal(t, "FY2023", second.FYLabel)
	assert.InDelta(t, 15_000_000, second.TotalRemuneration, 1e-9)
	assert.Equal(t, "₹12,00,000", second.FairValue)
}

func TestParseDirConsolFindsRenamedSheet(t *testing.T) {
	path := writeDisclosureWorkbook(t, "Consolidated FY24", [][]interface{}{
		disclosureHeader(),
		{
			"Beta Corp", "", "Pharma", "", "",
			"", "B Rao", "CFO", "",
			"2023-03-31", "₹80 L", "", "",
		},
	})

	set, err := ParseDirConsol(path, nil)
	require.NoError(t, err)
	require.Len(t, set.Disclosures, 1)

	d := set.Disclosures[0]
	// falls back to the company name as identifier, and to the composite
	// director key when there is no DIN
	assert.Equal(t, "Beta Corp", d.Company.CompanyID)
	assert.Contains(t, d.Director.DirectorID, "Beta Corp")
	require.Len(t, d.Records, 1)
	assert.InDelta(t, 8_000_000, d.Records[0].TotalRemuneration, 1e-9)
}

func TestParseDirConsolMissingSheet(t *testing.T) {
	path := writeDisclosureWorkbook(t, "Totally Unrelated", [][]interface{}{
		{"just", "some", "cells"},
	})

	_, err := ParseDirConsol(path, nil)
	assert.Error(t, err)
}

func TestParseDirConsolMissingFile(t *testing.T) {
	_, err := ParseDirConsol(filepath.Join(t.TempDir(), "missing.xlsx"), nil)
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"iso", "2023-03-31", time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC)},
		{"iso_datetime", "2023-03-31 00:00:00", time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC)},
		{"us_slash", "03/31/2023", time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC)},
		{"excel_serial", "45016", time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC)},
		{"empty", "", time.Time{}},
		{"garbage", "next year", time.Time{}},
		{"tiny_serial", "7", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, parseDate(tt.input).Equal(tt.want),
				"parseDate(%q) = %v, want %v", tt.input, parseDate(tt.input), tt.want)
		})
	}
}
