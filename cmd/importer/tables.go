package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// tableSpec describes how one CSV file maps onto a reference table.
type tableSpec struct {
	name    string
	columns []string
	convert func(record []string) ([]any, error)
}

var tables = map[string]tableSpec{
	"prefectures": {
		name:    "prefecture",
		columns: []string{"prefecture_id", "prefecture_name"},
		convert: func(r []string) ([]any, error) {
			return []any{r[0], r[1]}, nil
		},
	},
	"prefecture_distances": {
		name:    "prefecture_distance",
		columns: []string{"prefecture_id_from", "prefecture_id_to", "distance"},
		convert: func(r []string) ([]any, error) {
			distance, err := strconv.ParseFloat(r[2], 64)
			if err != nil || distance < 0 {
				return nil, fmt.Errorf("invalid distance: %s", r[2])
			}
			return []any{r[0], r[1], distance}, nil
		},
	},
	"package_boxes": {
		name:    "package_box",
		columns: []string{"package_id", "package_name", "box"},
		convert: func(r []string) ([]any, error) {
			id, err := strconv.Atoi(r[0])
			if err != nil {
				return nil, fmt.Errorf("invalid package id: %s", r[0])
			}
			box, err := strconv.Atoi(r[2])
			if err != nil || box < 0 {
				return nil, fmt.Errorf("invalid box count: %s", r[2])
			}
			return []any{id, r[1], box}, nil
		},
	},
	"truck_capacities": {
		name:    "truck_capacity",
		columns: []string{"truck_id", "max_box", "price"},
		convert: func(r []string) ([]any, error) {
			return atoiAll(r, "truck id", "max box", "price")
		},
	},
	"optional_services": {
		name:    "optional_service",
		columns: []string{"service_id", "service_name", "price"},
		convert: func(r []string) ([]any, error) {
			id, err := strconv.Atoi(r[0])
			if err != nil {
				return nil, fmt.Errorf("invalid service id: %s", r[0])
			}
			price, err := strconv.Atoi(r[2])
			if err != nil || price < 0 {
				return nil, fmt.Errorf("invalid price: %s", r[2])
			}
			return []any{id, r[1], price}, nil
		},
	},
}

func tableNames() string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func atoiAll(record []string, labels ...string) ([]any, error) {
	out := make([]any, len(labels))
	for i, label := range labels {
		n, err := strconv.Atoi(record[i])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid %s: %s", label, record[i])
		}
		out[i] = n
	}
	return out, nil
}

// parseCSV reads a CSV with a header row and converts every record for spec.
func parseCSV(r io.Reader, spec tableSpec) ([][]any, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow trailing columns
	reader.TrimLeadingSpace = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows [][]any
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < len(spec.columns) {
			return nil, fmt.Errorf("line %d: invalid record length: %d, expected at least %d columns", line, len(record), len(spec.columns))
		}

		row, err := spec.convert(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
