package dateutil

import (
	"time"

	"github.com/goodsign/monday"
)

// SpanishLocale supplies the Spanish weekday and month names used in reports.
const SpanishLocale = monday.LocaleEsES

// FormatLongDateES renders t as "jueves, 7 de octubre de 2038".
func FormatLongDateES(t time.Time) string {
	return monday.Format(t, "Monday, 2 de January de 2006", SpanishLocale)
}

// FormatShortDateES renders t as "7 oct 2038".
func FormatShortDateES(t time.Time) string {
	return monday.Format(t, "2 Jan 2006", SpanishLocale)
}
