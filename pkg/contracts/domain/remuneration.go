package domain

import (
	"time"
)

// Company represents a listed company as disclosed in the Dir Consol sheet.
type Company struct {
	CompanyID string `json:"company_id" validate:"required,min=1,max=32"`
	Name      string `json:"name" validate:"required,min=1,max=255"`
	Sector    string `json:"sector,omitempty"`
	Industry  string `json:"industry,omitempty"`
	Index     string `json:"index,omitempty"`
	Employees int    `json:"employees,omitempty" validate:"gte=0"`
}

// Director represents a board member or key managerial person of a company.
type Director struct {
	DirectorID      string    `json:"director_id" validate:"required,min=1,max=64"`
	Name            string    `json:"name" validate:"required,min=1,max=255"`
	Designation     string    `json:"designation,omitempty"`
	Category        string    `json:"category,omitempty"`
	Qualification   string    `json:"qualification,omitempty"`
	PromoterStatus  string    `json:"promoter_status,omitempty"`
	Gender          string    `json:"gender,omitempty"`
	AppointmentDate time.Time `json:"appointment_date,omitempty"`
}

// RemunerationRecord is one fiscal year's remuneration disclosure for a
// director. Monetary fields are in the filing's base unit; FairValue and
// AggregateValue arrive as currency-formatted strings from the source sheet
// and are parsed downstream.
type RemunerationRecord struct {
	FYEndDate time.Time `json:"fy_end_date" validate:"required"`
	FYLabel   string    `json:"fy_label" validate:"required,min=4,max=16"`

	BasicSalary       float64 `json:"basic_salary,omitempty"`
	PF                float64 `json:"pf,omitempty"`
	Perqs             float64 `json:"perqs,omitempty"`
	Bonus             float64 `json:"bonus,omitempty"`
	PayExclEsops      float64 `json:"pay_excl_esops,omitempty"`
	Esops             float64 `json:"esops,omitempty"`
	TotalRemuneration float64 `json:"total_remuneration,omitempty"`

	// ESOP grant details for the year
	OptionsGranted float64 `json:"options_granted,omitempty"`
	Discount       float64 `json:"discount,omitempty"`
	FairValue      string  `json:"fair_value,omitempty"`
	AggregateValue string  `json:"aggregate_value,omitempty"`

	RemunerationStatus string `json:"remuneration_status,omitempty"`
	Comments           string `json:"comments,omitempty"`
}

// FiscalYear returns the reporting year of the record. The source labels
// years as "FY2023"; the FY end date is authoritative when present.
func (r RemunerationRecord) FiscalYear() int {
	if !r.FYEndDate.IsZero() {
		return r.FYEndDate.Year()
	}
	return 0
}

// DirectorDisclosure groups a director with their per-year remuneration rows
// for one company.
type DirectorDisclosure struct {
	Company  Company              `json:"company" validate:"required"`
	Director Director             `json:"director" validate:"required"`
	Records  []RemunerationRecord `json:"records" validate:"dive"`
}

// DisclosureSet is the parsed content of one Dir Consol workbook.
type DisclosureSet struct {
	SourceFile  string               `json:"source_file"`
	ParsedAt    time.Time            `json:"parsed_at"`
	Disclosures []DirectorDisclosure `json:"disclosures"`
	RowsSkipped int                  `json:"rows_skipped"`
}

// Companies returns the distinct companies in the set, in first-seen order.
func (ds *DisclosureSet) Companies() []Company {
	seen := make(map[string]bool)
	var out []Company
	for _, d := range ds.Disclosures {
		if seen[d.Company.CompanyID] {
			continue
		}
		seen[d.Company.CompanyID] = true
		out = append(out, d.Company)
	}
	return out
}

// ByCompany returns the disclosures belonging to the given company id.
func (ds *DisclosureSet) ByCompany(companyID string) []DirectorDisclosure {
	var out []DirectorDisclosure
	for _, d := range ds.Disclosures {
		if d.Company.CompanyID == companyID {
			out = append(out, d)
		}
	}
	return out
}
