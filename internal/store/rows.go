// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"
)

// Row is a single result row keyed by column name.
//
// Values keep the shape produced by the driver, except that []byte is
// converted to string during scanning. Use the typed accessors to read
// values independently of the driver in use.
type Row map[string]any

// rowTimeLayouts are tried when a driver returns a timestamp as text.
var rowTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Int64 returns column as an int64.
func (r Row) Int64(column string) (int64, error) {
	v, ok := r[column]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrColumnNotFound, column)
	}

	switch value := v.(type) {
	case int64:
		return value, nil
	case int32:
		return int64(value), nil
	case int:
		return int64(value), nil
	case uint64:
		return int64(value), nil
	case float64:
		return int64(value), nil
	case string:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s is %q", ErrUnexpectedColumnType, column, value)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %s is %T", ErrUnexpectedColumnType, column, v)
	}
}

// String returns column as a string. NULL and missing columns yield "".
func (r Row) String(column string) string {
	switch value := r[column].(type) {
	case nil:
		return ""
	case string:
		return value
	case time.Time:
		return value.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(value)
	}
}

// Time returns column as a time.Time. NULL yields the zero time.
func (r Row) Time(column string) (time.Time, error) {
	v, ok := r[column]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %s", ErrColumnNotFound, column)
	}

	switch value := v.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return value, nil
	case string:
		for _, layout := range rowTimeLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("%w: %s is %q", ErrUnexpectedColumnType, column, value)
	default:
		return time.Time{}, fmt.Errorf("%w: %s is %T", ErrUnexpectedColumnType, column, v)
	}
}

// scanRows drains rows into a slice of [Row].
func scanRows(rows *sql.Rows) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	result := make([]Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err = rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		row := make(Row, len(columns))
		for i, column := range columns {
			if b, ok := values[i].([]byte); ok {
				row[column] = string(b)
				continue
			}
			row[column] = values[i]
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}
