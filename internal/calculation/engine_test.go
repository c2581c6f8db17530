package calculation

import (
	"fmt"
	"testing"
	"time"

	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtureNow = time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC)

func fixtureProfile() domain.Profile {
	return domain.Profile{
		BirthDate:            time.Date(1973, 10, 7, 0, 0, 0, 0, time.UTC),
		ContributionWeeks:    539,
		LastContributionDate: time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC),
		SalaryUMA:            dec("25"),
		RetirementAge:        65,
	}
}

func fixtureEngine() *PensionEngine {
	e := NewPensionEngine(domain.DefaultParameters())
	e.Clock = func() time.Time { return fixtureNow }
	return e
}

type recordingLogger struct {
	debug []string
}

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.debug = append(l.debug, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Infof(format string, args ...any)  {}
func (l *recordingLogger) Warnf(format string, args ...any)  {}
func (l *recordingLogger) Errorf(format string, args ...any) {}

func TestPensionEngine_Calculate(t *testing.T) {
	e := fixtureEngine()
	r := e.Calculate(fixtureProfile(), fixtureNow)

	assert.Equal(t, 52, r.CurrentAge)
	assert.Equal(t, 13, r.YearsUntilRetirement)
	assert.Equal(t, 1215, r.WeeksAtRetirement)
	assert.Equal(t, time.Date(2038, 10, 7, 0, 0, 0, 0, time.UTC), r.JubilationDate)
	assertDecimal(t, "2828.5", r.DailySalary)
	assertDecimal(t, "85986.4", r.MonthlySalaryBase)
	assertDecimal(t, "80.625", r.ReplacementPercent)
	assertDecimal(t, "1", r.AgeFactor)
	assertDecimal(t, "80.625", r.EffectiveReplacement)
	assertDecimal(t, "69326.535", r.MonthlyPension)

	assert.Equal(t, 2033, r.VoluntaryPlan.StartYear)
	assert.Equal(t, 5, r.VoluntaryPlan.Years)
	assertDecimal(t, "969926.592", r.VoluntaryPlan.TotalCost)
	assertDecimal(t, "16165.4432", r.VoluntaryPlan.AverageMonthlyCost)

	assert.True(t, r.Recovery.Applicable)
	assert.Equal(t, "13.9907", r.Recovery.Months.StringFixed(4))
	assert.Equal(t, "1.17", r.Recovery.Years.StringFixed(2))
	assert.Equal(t, "1.1659", r.Recovery.Years.StringFixed(4))

	require.Len(t, r.Milestones, 3)
	expectedDates := []time.Time{
		time.Date(2034, 10, 23, 0, 0, 0, 0, time.UTC),
		time.Date(2039, 8, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2044, 5, 23, 0, 0, 0, 0, time.UTC),
	}
	for i, m := range r.Milestones {
		assert.False(t, m.Reached)
		require.NotNil(t, m.Date)
		assert.Equal(t, expectedDates[i], *m.Date)
	}
}

func TestPensionEngine_Calculate_MilestonesReached(t *testing.T) {
	p := fixtureProfile()
	p.ContributionWeeks = 1250

	r := fixtureEngine().Calculate(p, fixtureNow)
	require.Len(t, r.Milestones, 3)
	assert.True(t, r.Milestones[0].Reached)
	assert.Nil(t, r.Milestones[0].Date)
	assert.True(t, r.Milestones[1].Reached, "reaching the target exactly counts as reached")
	assert.Nil(t, r.Milestones[1].Date)
	assert.False(t, r.Milestones[2].Reached)
	require.NotNil(t, r.Milestones[2].Date)
}

func TestPensionEngine_Calculate_Degenerate(t *testing.T) {
	p := fixtureProfile()
	p.RetirementAge = 50 // below the current age

	r := fixtureEngine().Calculate(p, fixtureNow)
	assert.Equal(t, -2, r.YearsUntilRetirement)
	assert.Equal(t, 435, r.WeeksAtRetirement)
	assert.True(t, r.MonthlyPension.IsZero())
	assert.Equal(t, 0, r.VoluntaryPlan.Years)
	assert.False(t, r.Recovery.Applicable)
	assert.True(t, r.Recovery.Months.IsZero())
}

func TestPensionEngine_Project(t *testing.T) {
	points := fixtureEngine().Project(fixtureProfile(), fixtureNow)
	require.Len(t, points, 11)

	expected := []struct {
		age     int
		weeks   int
		pension string
	}{
		{60, 955, "45143"},
		{61, 1007, "46513"},
		{62, 1059, "51076"},
		{63, 1111, "55821"},
		{64, 1163, "60749"},
		{65, 1215, "69327"},
		{66, 1267, "71154"},
		{67, 1319, "72981"},
		{68, 1371, "74808"},
		{69, 1423, "76635"},
		{70, 1475, "78463"},
	}
	for i, exp := range expected {
		assert.Equal(t, exp.age, points[i].Age)
		assert.Equal(t, exp.weeks, points[i].Weeks)
		assertDecimal(t, exp.pension, points[i].MonthlyPension, "age %d", exp.age)
	}
}

func TestPensionEngine_CompareAges(t *testing.T) {
	rows := fixtureEngine().CompareAges(fixtureProfile(), fixtureNow)
	require.Len(t, rows, 7)

	optimal := 0
	for _, row := range rows {
		if row.IsOptimal {
			optimal++
			assert.Equal(t, 65, row.Age)
		}
	}
	assert.Equal(t, 1, optimal, "exactly one optimal row")

	byAge := map[int]int{}
	for i, row := range rows {
		byAge[row.Age] = i
	}

	t.Run("early ages lose nothing to deferral and never recover", func(t *testing.T) {
		row := rows[byAge[60]]
		assert.Equal(t, 955, row.Weeks)
		assert.Equal(t, time.Date(2033, 10, 7, 0, 0, 0, 0, time.UTC), row.JubilationDate)
		assertDecimal(t, "0.75", row.AgeFactor)
		assertDecimal(t, "45142.86", row.MonthlyPension)
		assert.True(t, row.TotalForegone.IsZero())
		assertDecimal(t, "-24183.675", row.MonthlyDifference)
		assert.False(t, row.Recovery.Applicable)
		assertDecimal(t, "10834286.4", row.CumulativeBenefit)

		assertDecimal(t, "12258221.184", rows[byAge[62]].CumulativeBenefit)
		assertDecimal(t, "13397111.052", rows[byAge[63]].CumulativeBenefit)
		assertDecimal(t, "14579853.984", rows[byAge[64]].CumulativeBenefit)
	})

	t.Run("normal age", func(t *testing.T) {
		row := rows[byAge[65]]
		assertDecimal(t, "69326.535", row.MonthlyPension)
		assert.True(t, row.MonthlyDifference.IsZero())
		assert.False(t, row.Recovery.Applicable)
		assertDecimal(t, "16638368.4", row.CumulativeBenefit)
	})

	t.Run("deferral", func(t *testing.T) {
		row67 := rows[byAge[67]]
		assertDecimal(t, "1663836.84", row67.TotalForegone)
		assertDecimal(t, "3654.422", row67.MonthlyDifference)
		assert.True(t, row67.Recovery.Applicable)
		assert.Equal(t, "455.2941", row67.Recovery.Months.StringFixed(4))
		assert.Equal(t, "37.9412", row67.Recovery.Years.StringFixed(4))
		assertDecimal(t, "15851592.84", row67.CumulativeBenefit)

		row70 := rows[byAge[70]]
		assertDecimal(t, "4159592.1", row70.TotalForegone)
		assertDecimal(t, "9136.055", row70.MonthlyDifference)
		assert.Equal(t, "455.2941", row70.Recovery.Months.StringFixed(4))
		assertDecimal(t, "14671429.5", row70.CumulativeBenefit)
	})

	t.Run("policy optimum ignores the numbers", func(t *testing.T) {
		// Age 65 stays optimal even though 70 pays more per month
		assert.True(t, rows[byAge[70]].MonthlyPension.GreaterThan(rows[byAge[65]].MonthlyPension))
		assert.True(t, rows[byAge[65]].IsOptimal)
	})
}

func TestPensionEngine_Analyze(t *testing.T) {
	e := fixtureEngine()
	log := &recordingLogger{}
	e.SetLogger(log)

	a := e.Analyze(fixtureProfile())
	assert.Equal(t, fixtureNow, a.GeneratedAt)
	assertDecimal(t, "69326.535", a.Result.MonthlyPension)
	assert.Len(t, a.Projection, 11)
	assert.Len(t, a.Comparison, 7)
	row, ok := a.OptimalRow()
	assert.True(t, ok)
	assert.Equal(t, 65, row.Age)
	require.Len(t, log.debug, 1)
	assert.Contains(t, log.debug[0], "retirement at 65")

	e.SetLogger(nil)
	assert.IsType(t, NopLogger{}, e.Logger)
}

func TestPensionEngine_AnalyzeAt_TruncatesClock(t *testing.T) {
	e := fixtureEngine()
	late := time.Date(2025, 12, 22, 23, 59, 0, 0, time.UTC)
	a := e.AnalyzeAt(fixtureProfile(), late)
	assert.Equal(t, fixtureNow, a.GeneratedAt)
	assert.Equal(t, 52, a.Result.CurrentAge)
}

func TestPensionEngine_Repeatable(t *testing.T) {
	e := fixtureEngine()
	first := e.AnalyzeAt(fixtureProfile(), fixtureNow)
	second := e.AnalyzeAt(fixtureProfile(), fixtureNow)
	assert.Equal(t, first, second)
}

func TestPensionEngine_PensionAt(t *testing.T) {
	e := fixtureEngine()
	assertDecimal(t, "69326.535", e.PensionAt(fixtureProfile(), fixtureNow, 65))
	assertDecimal(t, "45142.86", e.PensionAt(fixtureProfile(), fixtureNow, 60))
}
