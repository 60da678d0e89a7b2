package pg

import (
	"fmt"
	"strings"
)

// Filter accumulates parameter-bound conditions. Column names come from code,
// values are always passed as placeholders.
type Filter struct {
	conds []string
	args  []any
}

func NewFilter() *Filter {
	return &Filter{}
}

// Arg binds value and returns its placeholder.
func (f *Filter) Arg(value any) string {
	f.args = append(f.args, value)
	return fmt.Sprintf("$%d", len(f.args))
}

func (f *Filter) Eq(column string, value any) *Filter {
	f.conds = append(f.conds, column+" = "+f.Arg(value))
	return f
}

// EqIfSet adds the condition only for a non-empty string value.
func (f *Filter) EqIfSet(column, value string) *Filter {
	if value == "" {
		return f
	}
	return f.Eq(column, value)
}

// EqIfPositive adds the condition only for a positive id.
func (f *Filter) EqIfPositive(column string, value int) *Filter {
	if value <= 0 {
		return f
	}
	return f.Eq(column, value)
}

func (f *Filter) Between(column string, from, to any) *Filter {
	f.conds = append(f.conds, fmt.Sprintf("%s BETWEEN %s AND %s", column, f.Arg(from), f.Arg(to)))
	return f
}

// Where renders " WHERE a AND b", or "" when no condition was added.
func (f *Filter) Where() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conds, " AND ")
}

// And renders " AND a AND b" for queries that already have a WHERE clause.
func (f *Filter) And() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " AND " + strings.Join(f.conds, " AND ")
}

func (f *Filter) Args() []any {
	return f.args
}
