package sheet

import (
	"iter"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// Reader streams the first worksheet of an .xlsx workbook as header-keyed
// rows. The first non-blank worksheet row is the header.
type Reader struct {
	file       *excelize.File
	sheetName  string
	headers    []string
	headerLine int
	date1904   bool
	dateStyles map[int]bool
}

func Open(path string) (*Reader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "open workbook %s", path)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		_ = f.Close()
		return nil, crerr.Newf("workbook %s has no worksheets", path)
	}

	r := &Reader{
		file:       f,
		sheetName:  sheets[0],
		dateStyles: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}
	if err := r.readHeaders(); err != nil {
		_ = f.Close()
		return nil, err
	}

	return r, nil
}

func (r *Reader) SheetName() string { return r.sheetName }

func (r *Reader) Headers() []string {
	return append([]string(nil), r.headers...)
}

func (r *Reader) Close() error {
	return r.file.Close()
}

func (r *Reader) readHeaders() error {
	rows, err := r.file.Rows(r.sheetName)
	if err != nil {
		return crerr.Wrapf(err, "iterate sheet %s", r.sheetName)
	}
	defer func() { _ = rows.Close() }()

	line := 0
	for rows.Next() {
		line++
		cols, err := rows.Columns()
		if err != nil {
			return crerr.Wrapf(err, "read header row %d", line)
		}
		headers := make([]string, len(cols))
		blank := true
		for i, c := range cols {
			headers[i] = normalizeText(strings.TrimSpace(c))
			if headers[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		r.headers = headers
		r.headerLine = line
		return nil
	}
	if err := rows.Error(); err != nil {
		return crerr.Wrapf(err, "iterate sheet %s", r.sheetName)
	}

	return crerr.Newf("sheet %s has no header row", r.sheetName)
}

// Rows yields the data rows below the header in worksheet order, skipping
// blank rows. Iteration stops at the first read error.
func (r *Reader) Rows() iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		rows, err := r.file.Rows(r.sheetName)
		if err != nil {
			yield(Row{}, crerr.Wrapf(err, "iterate sheet %s", r.sheetName))
			return
		}
		defer func() { _ = rows.Close() }()

		line := 0
		number := 0
		for rows.Next() {
			line++
			if line <= r.headerLine {
				continue
			}

			raw, err := rows.Columns(excelize.Options{RawCellValue: true})
			if err != nil {
				yield(Row{}, crerr.Wrapf(err, "read row %d", line))
				return
			}

			cells := make(map[string]Value, len(r.headers))
			for i, header := range r.headers {
				if header == "" || i >= len(raw) || strings.TrimSpace(raw[i]) == "" {
					continue
				}
				v, err := r.typedValue(i+1, line, raw[i])
				if err != nil {
					yield(Row{}, err)
					return
				}
				if !v.IsEmpty() {
					cells[header] = v
				}
			}

			row := Row{Number: number + 1, Line: line, cells: cells}
			if row.IsBlank() {
				continue
			}
			number++
			if !yield(row, nil) {
				return
			}
		}
		if err := rows.Error(); err != nil {
			yield(Row{}, crerr.Wrapf(err, "iterate sheet %s", r.sheetName))
		}
	}
}

func (r *Reader) typedValue(col, line int, raw string) (Value, error) {
	axis, err := excelize.CoordinatesToCellName(col, line)
	if err != nil {
		return Value{}, crerr.Wrapf(err, "cell name col=%d row=%d", col, line)
	}

	cellType, err := r.file.GetCellType(r.sheetName, axis)
	if err != nil {
		return Value{}, crerr.Wrapf(err, "cell type %s", axis)
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return Text(normalizeText(raw)), nil
	case excelize.CellTypeBool:
		return Bool(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeError:
		return Empty(), nil
	case excelize.CellTypeDate:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly} {
			if t, err := time.Parse(layout, raw); err == nil {
				return Date(t.UTC()), nil
			}
		}
		return Text(normalizeText(raw)), nil
	}

	num, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return Text(normalizeText(raw)), nil
	}

	isDate, err := r.isDateCell(axis)
	if err != nil {
		return Value{}, err
	}
	if isDate {
		t, err := excelize.ExcelDateToTime(num, r.date1904)
		if err == nil {
			return Date(t.UTC()), nil
		}
	}

	return Number(num), nil
}

func (r *Reader) isDateCell(axis string) (bool, error) {
	styleID, err := r.file.GetCellStyle(r.sheetName, axis)
	if err != nil {
		return false, crerr.Wrapf(err, "cell style %s", axis)
	}
	if isDate, ok := r.dateStyles[styleID]; ok {
		return isDate, nil
	}

	style, err := r.file.GetStyle(styleID)
	if err != nil {
		return false, crerr.Wrapf(err, "style %d", styleID)
	}
	isDate := false
	if style != nil {
		isDate = isDateNumFmt(style.NumFmt)
		if style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		}
	}
	r.dateStyles[styleID] = isDate

	return isDate, nil
}

func isDateNumFmt(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	default:
		return false
	}
}

// isDateFormatCode inspects a custom number format, ignoring quoted literals,
// escaped characters and bracketed sections such as [Red] or [$-409].
func isDateFormatCode(code string) bool {
	var stripped strings.Builder
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case inBracket:
			if c == ']' {
				inBracket = false
			}
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\' || c == '_' || c == '*':
			i++
		default:
			stripped.WriteByte(c)
		}
	}

	lower := strings.ToLower(stripped.String())
	if strings.Contains(lower, "general") {
		return false
	}
	if strings.ContainsAny(lower, "dy") {
		return true
	}
	return strings.Contains(lower, "m") && strings.ContainsAny(lower, "hs")
}

func normalizeText(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
