package scenario

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/optakt/rangelp/position"
)

// Scenario is a named parameter set.
type Scenario struct {
	Name   string
	Params position.Params
}

// columns of a scenario file, after the header row:
// name,lower,upper,entry,current,amount,withdraw
const columns = 7

// Load reads scenarios from a CSV file with a header row.
func Load(file string) ([]Scenario, error) {

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read scenario file: %w", err)
	}

	return Parse(data)
}

// Parse reads scenarios from CSV data with a header row.
func Parse(data []byte) ([]Scenario, error) {

	csvr := csv.NewReader(bytes.NewReader(data))
	csvr.FieldsPerRecord = columns
	csvr.TrimLeadingSpace = true
	records, err := csvr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read scenario records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("could not find scenario header")
	}

	scenarios := make([]Scenario, 0, len(records)-1)
	for i, record := range records[1:] {

		values := make([]float64, columns-1)
		for j, field := range record[1:] {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("could not parse scenario value (row: %d, column: %d): %w", i+2, j+2, err)
			}
			values[j] = value
		}

		s := Scenario{
			Name: record[0],
			Params: position.Params{
				Lower:    values[0],
				Upper:    values[1],
				Entry:    values[2],
				Current:  values[3],
				Amount:   values[4],
				Withdraw: values[5],
			},
		}
		scenarios = append(scenarios, s)
	}

	return scenarios, nil
}
