package sheet

import (
	"strconv"
	"strings"
	"time"
)

type Kind uint8

const (
	KindEmpty Kind = iota
	KindText
	KindNumber
	KindDate
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindBool:
		return "bool"
	default:
		return "empty"
	}
}

// Value is one typed spreadsheet cell. A cell that is missing, or whose text
// is blank, is KindEmpty.
type Value struct {
	Kind   Kind
	Text   string
	Number float64
	Time   time.Time
	Bool   bool
}

func Empty() Value { return Value{} }

func Text(s string) Value {
	if strings.TrimSpace(s) == "" {
		return Value{}
	}
	return Value{Kind: KindText, Text: s}
}

func Number(f float64) Value { return Value{Kind: KindNumber, Number: f} }

func Date(t time.Time) Value { return Value{Kind: KindDate, Time: t} }

func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

func (v Value) IsEmpty() bool { return v.Kind == KindEmpty }

// String renders the cell the way it would be stored in a text column.
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindDate:
		if v.Time.Hour() == 0 && v.Time.Minute() == 0 && v.Time.Second() == 0 {
			return v.Time.Format(time.DateOnly)
		}
		return v.Time.Format(time.RFC3339)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}
