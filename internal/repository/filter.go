package repository

import (
	"strings"

	"navio/internal/models"
)

// Filter builds the WHERE/ORDER BY/LIMIT tail of a list query. Column names
// and orderings come from repository code; request values only ever travel as
// bind arguments.
type Filter struct {
	conds   []string
	args    []any
	orderBy string
	page    *models.Page
}

func NewFilter() *Filter {
	return &Filter{}
}

// Eq adds "column = ?" unless value is empty.
func (f *Filter) Eq(column, value string) *Filter {
	if value == "" {
		return f
	}
	f.conds = append(f.conds, column+" = ?")
	f.args = append(f.args, value)
	return f
}

// Where adds a fixed predicate with its own arguments.
func (f *Filter) Where(cond string, args ...any) *Filter {
	f.conds = append(f.conds, cond)
	f.args = append(f.args, args...)
	return f
}

func (f *Filter) OrderBy(clause string) *Filter {
	f.orderBy = clause
	return f
}

func (f *Filter) Paginate(p models.Page) *Filter {
	f.page = &p
	return f
}

// Build appends the rendered clauses to base and returns the statement with
// "?" placeholders together with its arguments.
func (f *Filter) Build(base string) (string, []any) {
	var sb strings.Builder
	sb.WriteString(base)
	args := append([]any(nil), f.args...)

	if len(f.conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(f.conds, " AND "))
	}
	if f.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(f.orderBy)
	}
	if f.page != nil {
		sb.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, f.page.Limit, f.page.Offset)
	}
	return sb.String(), args
}
