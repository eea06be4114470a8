package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// InsertModel builds an INSERT from the db-tagged exported fields of model.
// Imports insert the same few model types thousands of times per run, so
// the tag scan runs once per type.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

type modelColumn struct {
	name  string
	index int
}

var modelColumns sync.Map // reflect.Type -> []modelColumn

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	columns := columnsOf(value.Type())
	if len(columns) == 0 {
		return nil, nil, fmt.Errorf("model %s has no db columns", value.Type())
	}

	cols := make([]string, len(columns))
	vals := make([]any, len(columns))
	for i, c := range columns {
		cols[i] = c.name
		vals[i] = value.Field(c.index).Interface()
	}
	return cols, vals, nil
}

func columnsOf(typ reflect.Type) []modelColumn {
	if cached, ok := modelColumns.Load(typ); ok {
		return cached.([]modelColumn)
	}

	columns := make([]modelColumn, 0, typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		columns = append(columns, modelColumn{name: name, index: i})
	}

	actual, _ := modelColumns.LoadOrStore(typ, columns)
	return actual.([]modelColumn)
}
