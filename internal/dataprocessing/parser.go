package dataprocessing

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"remcli/internal/currency"
	"remcli/pkg/contracts/domain"
)

// yearSlots is the number of fiscal-year column blocks in a Dir Consol row.
const yearSlots = 5

// excelEpoch is the zero day of Excel's serial date system.
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts are the string date formats observed across filings.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"02-01-2006",
	"02/01/2006",
	"01-02-06",
	"1/2/06",
}

// ParseDirConsol reads a director-remuneration consolidation workbook and
// extracts one DirectorDisclosure per row. Rows without a company
// identifier are counted in RowsSkipped and ignored; cell-level problems
// degrade to zero values rather than failing the parse.
func ParseDirConsol(filePath string, logger *slog.Logger) (*domain.DisclosureSet, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, sheetName, err := findDisclosureSheet(f)
	if err != nil {
		return nil, err
	}
	logger.Info("found disclosure sheet",
		slog.String("file", filePath),
		slog.String("sheet", sheetName),
		slog.Int("rows", len(rows)))

	headerRow, columns := mapHeader(rows)
	if headerRow < 0 {
		return nil, fmt.Errorf("no header row with company and director columns in sheet %q", sheetName)
	}

	set := &domain.DisclosureSet{
		SourceFile: filePath,
		ParsedAt:   time.Now().UTC(),
	}

	for i := headerRow + 1; i < len(rows); i++ {
		disclosure, ok := parseRow(rows[i], columns)
		if !ok {
			if !rowEmpty(rows[i]) {
				set.RowsSkipped++
				logger.Debug("skipping row without company identifier", slog.Int("row", i))
			}
			continue
		}
		set.Disclosures = append(set.Disclosures, disclosure)
	}

	logger.Info("parsed disclosure workbook",
		slog.Int("disclosures", len(set.Disclosures)),
		slog.Int("rows_skipped", set.RowsSkipped))
	return set, nil
}

// findDisclosureSheet locates the Dir Consol sheet, tolerating renamed and
// padded variants, and falls back to scanning every sheet for the expected
// header columns.
func findDisclosureSheet(f *excelize.File) ([][]string, string, error) {
	candidates := []string{"Dir Consol", "Dir Consol ", "DirConsol", "Dir_Consol", "Directors"}
	for _, name := range candidates {
		if rows, err := f.GetRows(name); err == nil && len(rows) > 1 {
			return rows, name, nil
		}
	}

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) < 2 {
			continue
		}
		limit := len(rows)
		if limit > 5 {
			limit = 5
		}
		for _, row := range rows[:limit] {
			text := strings.ToLower(strings.Join(row, " "))
			if strings.Contains(text, "company name") && strings.Contains(text, "director name") {
				return rows, name, nil
			}
		}
	}
	return nil, "", fmt.Errorf("no director disclosure sheet found")
}

// mapHeader finds the header row and maps lower-cased header names to
// column indexes. Filings repeat the same remuneration headers once per
// year slot; repeats are disambiguated as "name", "name__2", … in
// encounter order, mirroring how the slot blocks are laid out.
func mapHeader(rows [][]string) (int, map[string]int) {
	for i, row := range rows {
		text := strings.ToLower(strings.Join(row, " "))
		if !strings.Contains(text, "company") || !strings.Contains(text, "director") {
			continue
		}

		columns := make(map[string]int, len(row))
		seen := make(map[string]int, len(row))
		for j, header := range row {
			name := strings.ToLower(strings.TrimSpace(header))
			if name == "" {
				continue
			}
			seen[name]++
			if seen[name] > 1 {
				name = fmt.Sprintf("%s__%d", name, seen[name])
			}
			columns[name] = j
		}
		return i, columns
	}
	return -1, nil
}

func parseRow(row []string, columns map[string]int) (domain.DirectorDisclosure, bool) {
	companyID := firstNonEmpty(
		cell(row, columns, "bse scrip code"),
		cell(row, columns, "company id"),
		cell(row, columns, "company name"),
	)
	if companyID == "" {
		return domain.DirectorDisclosure{}, false
	}

	company := domain.Company{
		CompanyID: companyID,
		Name:      cell(row, columns, "company name"),
		Sector:    cell(row, columns, "sector"),
		Industry:  cell(row, columns, "industry"),
		Index:     cell(row, columns, "index"),
		Employees: parseInt(cell(row, columns, "employees")),
	}
	if company.Name == "" {
		company.Name = companyID
	}

	directorName := cell(row, columns, "director name")
	appointmentRaw := cell(row, columns, "appointment date")
	directorID := cell(row, columns, "din")
	if directorID == "" {
		// Stable composite key for directors without a DIN, as the source
		// backend derived it.
		directorID = fmt.Sprintf("%s_%s_%s", companyID, directorName, appointmentRaw)
	}

	director := domain.Director{
		DirectorID:      directorID,
		Name:            directorName,
		Designation:     cell(row, columns, "designation"),
		Category:        cell(row, columns, "category"),
		Qualification:   cell(row, columns, "qualification"),
		PromoterStatus:  cell(row, columns, "promoter status"),
		Gender:          cell(row, columns, "gender"),
		AppointmentDate: parseDate(appointmentRaw),
	}

	var records []domain.RemunerationRecord
	for slot := 1; slot <= yearSlots; slot++ {
		fyEnd := parseDate(cell(row, columns, fmt.Sprintf("year %d", slot)))
		if fyEnd.IsZero() {
			continue
		}
		records = append(records, domain.RemunerationRecord{
			FYEndDate:          fyEnd,
			FYLabel:            fmt.Sprintf("FY%d", fyEnd.Year()),
			BasicSalary:        slotMoney(row, columns, "basic salary", slot),
			PF:                 slotMoney(row, columns, "pf", slot),
			Perqs:              slotMoney(row, columns, "perqs", slot),
			Bonus:              slotMoney(row, columns, "bonus", slot),
			PayExclEsops:       slotMoney(row, columns, "pay excl esops", slot),
			Esops:              slotMoney(row, columns, "esops", slot),
			TotalRemuneration:  slotMoney(row, columns, "total remuneration", slot),
			OptionsGranted:     slotMoney(row, columns, "options granted", slot),
			Discount:           slotMoney(row, columns, "discount", slot),
			FairValue:          slotCell(row, columns, "fair value", slot),
			AggregateValue:     slotCell(row, columns, "aggregate value", slot),
			RemunerationStatus: slotCell(row, columns, "remuneration status", slot),
		})
	}

	return domain.DirectorDisclosure{
		Company:  company,
		Director: director,
		Records:  records,
	}, true
}

// slotKey maps a base header to its per-slot disambiguated form: the first
// slot keeps the bare name, later slots carry the __N suffix.
func slotKey(base string, slot int) string {
	if slot == 1 {
		return base
	}
	return fmt.Sprintf("%s__%d", base, slot)
}

func slotCell(row []string, columns map[string]int, base string, slot int) string {
	return cell(row, columns, slotKey(base, slot))
}

func slotMoney(row []string, columns map[string]int, base string, slot int) float64 {
	return currency.ParseAmount(slotCell(row, columns, base, slot))
}

func cell(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseInt(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// parseDate accepts Excel serial numbers and the string layouts seen in
// filings. Anything unrecognized yields the zero time.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	if !strings.ContainsAny(s, "-/: ") {
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			// Serial 60 and below fall inside Excel's fictitious leap-year
			// window; real filing dates are decades later.
			if serial > 60 {
				return excelEpoch.Add(time.Duration(serial * 24 * float64(time.Hour)))
			}
			return time.Time{}
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
