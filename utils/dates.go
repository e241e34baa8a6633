package utils

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a value is not an ISO-8601 date.
var ErrInvalidDate = errors.New("supplied date is not valid")

const dateMedLayout = "Jan 2, 2006"

var (
	// calendar then ordinal forms
	isoDateLayouts = []string{"2006-01-02", "20060102", "2006-002", "2006002"}
	isoTimeLayouts = []string{"", "T15", "T15:04", "T15:04:05"}
	isoZoneLayouts = []string{"Z07:00", "Z0700", "Z07"}
	// reduced precision forms never carry a time of day
	isoReducedLayouts = []string{"2006-01", "2006"}

	isoWeekExtended = regexp.MustCompile(`^(\d{4})-W(\d{2})(?:-([1-7]))?$`)
	isoWeekBasic    = regexp.MustCompile(`^(\d{4})W(\d{2})([1-7])?$`)
)

// ParseISODate parses an ISO-8601 date with optional time of day and offset.
// Values without an offset are read in loc.
func ParseISODate(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return time.Time{}, ErrInvalidDate
	}
	if loc == nil {
		loc = time.Local
	}
	value, err := weekToCalendar(value)
	if err != nil {
		return time.Time{}, err
	}
	for _, d := range isoDateLayouts {
		for _, tm := range isoTimeLayouts {
			if t, err := time.ParseInLocation(d+tm, value, loc); err == nil {
				return t, nil
			}
			if tm == "" {
				continue
			}
			for _, z := range isoZoneLayouts {
				if t, err := time.Parse(d+tm+z, value); err == nil {
					return t, nil
				}
			}
		}
	}
	for _, layout := range isoReducedLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// weekToCalendar rewrites a leading ISO week date ("2024-W10-2", "2024W102",
// "2024-W10") as the calendar date it names, keeping any time suffix. Other
// values are returned unchanged.
func weekToCalendar(value string) (string, error) {
	date, rest := value, ""
	if i := strings.IndexByte(value, 'T'); i >= 0 {
		date, rest = value[:i], value[i:]
	}
	m := isoWeekExtended.FindStringSubmatch(date)
	if m == nil {
		m = isoWeekBasic.FindStringSubmatch(date)
	}
	if m == nil {
		return value, nil
	}

	year, _ := strconv.Atoi(m[1])
	week, _ := strconv.Atoi(m[2])
	day := 1
	if m[3] != "" {
		day, _ = strconv.Atoi(m[3])
	}
	if week < 1 || week > isoWeeksInYear(year) {
		return "", ErrInvalidDate
	}

	// week 1 holds January 4th
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7
	}
	d := jan4.AddDate(0, 0, 1-wd+(week-1)*7+(day-1))
	return d.Format("2006-01-02") + rest, nil
}

func isoWeeksInYear(year int) int {
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}

// FormatDateMed renders t the way a medium locale date reads, "Oct 14, 1983".
func FormatDateMed(t time.Time) string {
	return t.In(time.Local).Format(dateMedLayout)
}
