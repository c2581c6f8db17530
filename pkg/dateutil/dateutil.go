package dateutil

import (
	"fmt"
	"time"
)

// DaysPerWeek is the calendar length of one contribution week.
const DaysPerWeek = 7

// Age calculates the age at a given date (last-birthday age)
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// JubilationDate returns the date on which a person born on birthDate turns age.
// A Feb 29 birthday lands on Mar 1 in non-leap years.
func JubilationDate(birthDate time.Time, age int) time.Time {
	return time.Date(birthDate.Year()+age, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, birthDate.Location())
}

// DateReachingWeekCount projects the date on which targetWeeks is reached when
// weeksNow were credited as of lastContributionDate and one week accrues every
// seven days.
func DateReachingWeekCount(lastContributionDate time.Time, weeksNow, targetWeeks int) time.Time {
	return lastContributionDate.AddDate(0, 0, (targetWeeks-weeksNow)*DaysPerWeek)
}

// HasReached reports whether weeksNow already satisfies targetWeeks.
func HasReached(weeksNow, targetWeeks int) bool {
	return weeksNow >= targetWeeks
}

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	return t, nil
}

// Truncate drops the clock portion of t, keeping its calendar date in UTC.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
