package breakeven

import (
	"errors"
	"testing"

	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConstraints(t *testing.T) {
	c := DefaultConstraints(domain.DefaultParameters())

	require.NotNil(t, c.MinSalaryUMA)
	assert.Equal(t, "1", c.MinSalaryUMA.String())
	assert.Equal(t, "25", c.MaxSalaryUMA.String())
	assert.Equal(t, 60, *c.MinRetirementAge)
	assert.Equal(t, 70, *c.MaxRetirementAge)
	assert.Nil(t, c.TargetPension)
	assert.NoError(t, c.Validate())
}

func TestConstraints_Validate(t *testing.T) {
	low := decimal.NewFromInt(5)
	high := decimal.NewFromInt(20)
	zero := decimal.Zero
	young, old := 60, 70

	tests := []struct {
		name    string
		c       Constraints
		wantErr string
	}{
		{"salary bounds inverted", Constraints{MinSalaryUMA: &high, MaxSalaryUMA: &low}, "min_salary_uma cannot be greater"},
		{"zero salary", Constraints{MinSalaryUMA: &zero}, "min_salary_uma must be positive"},
		{"age bounds inverted", Constraints{MinRetirementAge: &old, MaxRetirementAge: &young}, "min_retirement_age cannot be greater"},
		{"zero target", Constraints{TargetPension: &zero}, "target_pension must be positive"},
		{"valid", Constraints{MinSalaryUMA: &low, MaxSalaryUMA: &high, MinRetirementAge: &young, MaxRetirementAge: &old}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBreakEvenError(t *testing.T) {
	cause := errors.New("boom")
	err := &BreakEvenError{Operation: "evaluate", Message: "failed", Cause: cause}

	assert.Equal(t, "evaluate: failed: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "evaluate: failed", (&BreakEvenError{Operation: "evaluate", Message: "failed"}).Error())
}
