package main

import (
	"github.com/jordanwade90/csvgen"
)

// group is the column pattern the demo tables repeat.
var group = []struct {
	typ      csvgen.ColumnType
	size     uint8
	exponent uint8
}{
	{csvgen.String, 10, 0},
	{csvgen.Date, 0, 0},
	{csvgen.Long, 10, 0},
	{csvgen.Double, 10, 2},
}

// demoColumns returns the first n columns of the repeated group pattern.
func demoColumns(n int) ([]csvgen.Column, error) {
	columns := make([]csvgen.Column, n)
	for i := range columns {
		g := group[i%len(group)]
		c, err := csvgen.NewColumn(g.typ, g.size, g.exponent)
		if err != nil {
			return nil, err
		}
		columns[i] = c
	}
	return columns, nil
}

// demoSchema returns three tables taking 40%, 30% and 30% of each file:
// a wide table A with 24 columns, and narrower tables B and C.
func demoSchema(delimiter string) ([]*csvgen.Table, error) {
	specs := []struct {
		id      string
		columns int
		share   float64
	}{
		{"A", 24, 0.4},
		{"B", 3, 0.3},
		{"C", 5, 0.3},
	}

	tables := make([]*csvgen.Table, len(specs))
	for i, s := range specs {
		columns, err := demoColumns(s.columns)
		if err != nil {
			return nil, err
		}
		if tables[i], err = csvgen.NewTable(s.id, columns, delimiter, s.share); err != nil {
			return nil, err
		}
	}
	return tables, nil
}
