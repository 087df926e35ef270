package utils

import (
	"fmt"
	"reflect"
)

// ColumnList returns the list of "db" tags of T's fields, optionally
// prefixed, for use in select clauses alongside pgx.RowToStructByName.
func ColumnList[T any](prefix ...string) []string {
	var value T
	tpe := reflect.TypeOf(value)
	if tpe.Kind() != reflect.Struct {
		panic(fmt.Sprintf("ColumnList: %T is not a struct", value))
	}

	columns := make([]string, 0, tpe.NumField())
	for i := 0; i < tpe.NumField(); i++ {
		tag, ok := tpe.Field(i).Tag.Lookup("db")
		if !ok || tag == "-" {
			continue
		}
		if len(prefix) > 0 {
			tag = fmt.Sprintf("%s.%s", prefix[0], tag)
		}
		columns = append(columns, tag)
	}
	return columns
}
