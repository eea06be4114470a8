package cellparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/football-stats/internal/platform/sheet"
	"github.com/xuri/excelize/v2"
)

// Order decides how the first two components of "5.3.2024" are read.
type Order uint8

const (
	DayFirst Order = iota
	MonthFirst
)

func (o Order) String() string {
	if o == MonthFirst {
		return "mdy"
	}
	return "dmy"
}

func ParseOrder(v string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "dmy", "day-first", "dayfirst":
		return DayFirst, nil
	case "mdy", "month-first", "monthfirst":
		return MonthFirst, nil
	default:
		return DayFirst, fmt.Errorf("unsupported date order %q (want dmy or mdy)", v)
	}
}

// Date is a parsed cell. Ambiguous is set when a numeric pattern could be
// read both day-first and month-first and the two readings differ.
type Date struct {
	Time      time.Time
	Valid     bool
	Ambiguous bool
}

func (d Date) Ptr() *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

type DateParser struct {
	Order Order
}

var (
	isoLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		time.DateOnly,
		"2006/01/02",
	}
	numericDatePattern = regexp.MustCompile(`(\d{1,2})[./-](\d{1,2})[./-](\d{4}|\d{2})(?:\D|$)`)
)

// Excel serials outside this range are not dates (9999-12-31 is 2958465).
const maxExcelSerial = 2958466

// Parse tries a native date cell, an Excel serial, ISO-like text and finally
// the D.M.YYYY family in the configured order.
func (p DateParser) Parse(v sheet.Value) Date {
	switch v.Kind {
	case sheet.KindDate:
		if v.Time.IsZero() {
			return Date{}
		}
		return Date{Time: v.Time.UTC(), Valid: true}
	case sheet.KindNumber:
		if v.Number < 1 || v.Number >= maxExcelSerial {
			return Date{}
		}
		t, err := excelize.ExcelDateToTime(v.Number, false)
		if err != nil {
			return Date{}
		}
		return Date{Time: t.UTC(), Valid: true}
	case sheet.KindText:
		return p.parseText(strings.TrimSpace(v.Text))
	default:
		return Date{}
	}
}

func (p DateParser) parseText(s string) Date {
	if s == "" {
		return Date{}
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t.UTC(), Valid: true}
		}
	}

	m := numericDatePattern.FindStringSubmatch(s)
	if m == nil {
		return Date{}
	}
	first, _ := strconv.Atoi(m[1])
	second, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if len(m[3]) == 2 {
		if year < 31 {
			year += 2000
		} else {
			year += 1900
		}
	}

	day, month := first, second
	if p.Order == MonthFirst {
		day, month = second, first
	}

	t, ok := calendarDate(year, month, day)
	if !ok {
		// Only the swapped reading is a real date, so it is not ambiguous.
		t, ok = calendarDate(year, day, month)
		if !ok {
			return Date{}
		}
		return Date{Time: t, Valid: true}
	}

	return Date{
		Time:      t,
		Valid:     true,
		Ambiguous: first <= 12 && second <= 12 && first != second,
	}
}

func calendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}
