// Package query builds SQL queries from logical field names using a fluent API.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps logical field names to columns of a single table.
// Field order is preserved for stable SELECT column lists.
type ProjectionMap struct {
	table   string
	fields  []string
	columns map[string]string
}

// NewProjectionMap creates a ProjectionMap for the given table.
func NewProjectionMap(table string) *ProjectionMap {
	return &ProjectionMap{
		table:   table,
		columns: make(map[string]string),
	}
}

// Project registers a column under a logical field name and returns the map
// for chaining.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	if _, ok := p.columns[field]; !ok {
		p.fields = append(p.fields, field)
	}
	p.columns[field] = column
	return p
}

// Column returns the column for a logical field name.
// Panics on unknown fields; projections are static program data and an
// unknown field is a programming error.
func (p *ProjectionMap) Column(field string) string {
	col, ok := p.columns[field]
	if !ok {
		panic(fmt.Sprintf("query: unknown field %q for table %s", field, p.table))
	}
	return col
}

// Columns returns the comma-separated SELECT column list in registration order.
func (p *ProjectionMap) Columns() string {
	cols := make([]string, len(p.fields))
	for i, field := range p.fields {
		cols[i] = p.columns[field]
	}
	return strings.Join(cols, ", ")
}

// From returns the table name for the FROM clause.
func (p *ProjectionMap) From() string {
	return p.table
}
