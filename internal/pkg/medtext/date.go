package medtext

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateTokenPattern matches any textual date form the engine understands.
// It is reused by the field rule tables to capture date candidates next to
// label keywords.
const dateTokenPattern = `(\d{1,2}/\d{1,2}/\d{4}|\d{1,2}-\d{1,2}-\d{4}|\d{4}-\d{1,2}-\d{1,2}|[A-Za-z]+\.?\s+\d{1,2},?\s+\d{4})`

var (
	dateSlashMDY = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	dateDashMDY  = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`)
	dateISO      = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	dateMonthDY  = regexp.MustCompile(`^([A-Za-z]+)\.?\s+(\d{1,2}),?\s+(\d{4})$`)
)

var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June, "july": time.July,
	"august": time.August, "september": time.September, "october": time.October,
	"november": time.November, "december": time.December,
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November,
	"dec": time.December,
}

// Layouts for the generic fallback parse. All carry 4-digit years; 2-digit
// years are not recognized anywhere in the engine.
var fallbackLayouts = []string{
	"2006/01/02",
	"02 January 2006",
	"02 Jan 2006",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
}

// ParseDate normalizes a textual date into a canonical Date. Formats are
// tried in a fixed priority order: MM/DD/YYYY, MM-DD-YYYY, YYYY-MM-DD,
// "Month DD, YYYY", then the generic fallback layouts. The first format that
// parses wins, so an ambiguous "03-04-2020" is always month 3, day 4.
// Unparseable input returns ok=false.
func ParseDate(text string) (Date, bool) {
	s := strings.TrimSpace(text)
	s = strings.Trim(s, ".,;")
	if s == "" {
		return Date{}, false
	}

	if m := dateSlashMDY.FindStringSubmatch(s); m != nil {
		return makeDate(m[3], m[1], m[2])
	}
	if m := dateDashMDY.FindStringSubmatch(s); m != nil {
		return makeDate(m[3], m[1], m[2])
	}
	if m := dateISO.FindStringSubmatch(s); m != nil {
		return makeDate(m[1], m[2], m[3])
	}
	if m := dateMonthDY.FindStringSubmatch(s); m != nil {
		month, ok := monthsByName[strings.ToLower(m[1])]
		if ok {
			return makeDateNumeric(atoi(m[3]), month, atoi(m[2]))
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil && t.Year() >= 1000 {
			return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, true
		}
	}
	return Date{}, false
}

func makeDate(year, month, day string) (Date, bool) {
	return makeDateNumeric(atoi(year), time.Month(atoi(month)), atoi(day))
}

// makeDateNumeric rejects impossible calendar dates (month 13, Feb 30) by
// round-tripping through time.Date, which silently rolls invalid components
// forward.
func makeDateNumeric(year int, month time.Month, day int) (Date, bool) {
	if year < 1000 || month < time.January || month > time.December || day < 1 || day > 31 {
		return Date{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func parseDateToken(text string) *Date {
	d, ok := ParseDate(text)
	if !ok {
		return nil
	}
	return &d
}
