package api

import (
	"fmt"
	"time"

	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/rgehrsitz/ley73/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// AnalysisRequest is the body of POST /v1/analysis. Dates are YYYY-MM-DD.
type AnalysisRequest struct {
	BirthDate            string          `json:"birthDate"`
	ContributionWeeks    int             `json:"contributionWeeks"`
	LastContributionDate string          `json:"lastContributionDate"`
	SalaryUMA            decimal.Decimal `json:"salaryUMA"`
	RetirementAge        int             `json:"retirementAge"`
	Now                  string          `json:"now,omitempty"` // Overrides the server clock
}

// Profile converts the request into a domain profile and the optional
// evaluation date. Range checks are left to the config validator.
func (r AnalysisRequest) Profile() (domain.Profile, time.Time, error) {
	if r.BirthDate == "" {
		return domain.Profile{}, time.Time{}, fmt.Errorf("birthDate is required")
	}
	birth, err := dateutil.ParseDate(r.BirthDate)
	if err != nil {
		return domain.Profile{}, time.Time{}, fmt.Errorf("birthDate: %w", err)
	}
	if r.LastContributionDate == "" {
		return domain.Profile{}, time.Time{}, fmt.Errorf("lastContributionDate is required")
	}
	last, err := dateutil.ParseDate(r.LastContributionDate)
	if err != nil {
		return domain.Profile{}, time.Time{}, fmt.Errorf("lastContributionDate: %w", err)
	}

	var now time.Time
	if r.Now != "" {
		if now, err = dateutil.ParseDate(r.Now); err != nil {
			return domain.Profile{}, time.Time{}, fmt.Errorf("now: %w", err)
		}
	}

	return domain.Profile{
		BirthDate:            birth,
		ContributionWeeks:    r.ContributionWeeks,
		LastContributionDate: last,
		SalaryUMA:            r.SalaryUMA,
		RetirementAge:        r.RetirementAge,
	}, now, nil
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// HealthResponse is the body of GET /healthz
type HealthResponse struct {
	Status string `json:"status"`
}
