package dataprocessing

import (
	"log/slog"
	"sort"

	"github.com/go-playground/validator/v10"

	"remcli/internal/currency"
	"remcli/internal/esop"
	"remcli/internal/growth"
	"remcli/pkg/contracts/domain"
)

// Summarizer derives per-director summary figures from a disclosure set.
// It is the single source of truth for the numbers shown on company and
// director dashboards, so rendering conventions are fixed at construction.
type Summarizer struct {
	logger        *slog.Logger
	formatter     currency.Formatter
	maxYears      int
	percentDigits int
	validate      *validator.Validate
}

// SummarizerConfig holds the knobs a Summarizer is built from.
type SummarizerConfig struct {
	Formatter     currency.Formatter
	MaxYears      int // growth window in fiscal years
	PercentDigits int // fraction digits on percentage strings
}

// DefaultSummarizerConfig mirrors the dashboards' default presentation.
func DefaultSummarizerConfig() SummarizerConfig {
	return SummarizerConfig{
		Formatter:     currency.DefaultFormatter(),
		MaxYears:      growth.DefaultMaxYears,
		PercentDigits: growth.DefaultPercentDigits,
	}
}

// DirectorSummary is one director's dashboard row.
type DirectorSummary struct {
	CompanyID    string `json:"company_id" csv:"CompanyID"`
	CompanyName  string `json:"company_name" csv:"CompanyName"`
	DirectorID   string `json:"director_id" csv:"DirectorID"`
	DirectorName string `json:"director_name" csv:"DirectorName"`
	Designation  string `json:"designation,omitempty" csv:"Designation"`

	YearsDisclosed int     `json:"years_disclosed" csv:"YearsDisclosed"`
	LatestFY       string  `json:"latest_fy" csv:"LatestFY"`
	LatestTotal    float64 `json:"latest_total" csv:"LatestTotal"`
	LatestDisplay  string  `json:"latest_display" csv:"LatestDisplay"`

	CompGrowth        float64 `json:"comp_growth"`
	CompGrowthOK      bool    `json:"comp_growth_ok"`
	CompGrowthDisplay string  `json:"comp_growth_display" csv:"CompGrowth"`

	EsopSeries []esop.Point `json:"esop_series,omitempty"`
}

// NewSummarizer creates a summarizer with the given configuration. Zero
// config fields fall back to defaults.
func NewSummarizer(logger *slog.Logger, cfg SummarizerConfig) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxYears < 2 {
		cfg.MaxYears = growth.DefaultMaxYears
	}
	if cfg.PercentDigits < 0 {
		cfg.PercentDigits = growth.DefaultPercentDigits
	}
	if cfg.Formatter.Symbol == "" {
		cfg.Formatter = currency.DefaultFormatter()
	}

	return &Summarizer{
		logger:        logger,
		formatter:     cfg.Formatter,
		maxYears:      cfg.MaxYears,
		percentDigits: cfg.PercentDigits,
		validate:      validator.New(),
	}
}

// Summarize builds one summary per disclosure, ordered by company then
// director name. Disclosures that fail contract validation are logged and
// skipped; a degenerate compensation history is not an error, it renders
// the growth sentinel.
func (s *Summarizer) Summarize(set *domain.DisclosureSet) []DirectorSummary {
	summaries := make([]DirectorSummary, 0, len(set.Disclosures))
	for _, d := range set.Disclosures {
		if err := s.validate.Struct(d); err != nil {
			s.logger.Warn("skipping invalid disclosure",
				slog.String("company", d.Company.CompanyID),
				slog.String("director", d.Director.Name),
				slog.Any("error", err))
			continue
		}
		summaries = append(summaries, s.summarize(d))
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].CompanyName != summaries[j].CompanyName {
			return summaries[i].CompanyName < summaries[j].CompanyName
		}
		return summaries[i].DirectorName < summaries[j].DirectorName
	})
	return summaries
}

func (s *Summarizer) summarize(d domain.DirectorDisclosure) DirectorSummary {
	summary := DirectorSummary{
		CompanyID:    d.Company.CompanyID,
		CompanyName:  d.Company.Name,
		DirectorID:   d.Director.DirectorID,
		DirectorName: d.Director.Name,
		Designation:  d.Director.Designation,
		EsopSeries:   esop.BuildSeries(d.Records),
	}

	entries := make([]growth.YearValue, 0, len(d.Records))
	var latest *domain.RemunerationRecord
	for i, rec := range d.Records {
		if year := rec.FiscalYear(); year > 0 {
			entries = append(entries, growth.YearValue{Year: year, Value: rec.TotalRemuneration})
			if latest == nil || rec.FYEndDate.After(latest.FYEndDate) {
				latest = &d.Records[i]
			}
		}
	}
	summary.YearsDisclosed = len(growth.Normalize(entries))

	if latest != nil {
		summary.LatestFY = latest.FYLabel
		summary.LatestTotal = latest.TotalRemuneration
		summary.LatestDisplay = s.formatter.FormatCompact(latest.TotalRemuneration)
	}

	rate, ok := growth.Compute(entries, s.maxYears)
	summary.CompGrowth = rate
	summary.CompGrowthOK = ok
	summary.CompGrowthDisplay = growth.FormatPercent(rate, ok, s.percentDigits)
	return summary
}
