package repository

import (
	"fmt"
	"strings"

	"github.com/609harsh/realtor-app/internal/models"
)

// HomeFilter narrows the public home listing. Zero values mean "no filter".
type HomeFilter struct {
	City         string
	MinPrice     *float64
	MaxPrice     *float64
	PropertyType models.PropertyType
	Limit        int
	Offset       int
}

// Clauses builds the WHERE fragment and its positional args.
func (f HomeFilter) Clauses() (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if s := strings.TrimSpace(f.City); s != "" {
		args = append(args, s)
		clauses = append(clauses, fmt.Sprintf("city ILIKE $%d", len(args)))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		clauses = append(clauses, fmt.Sprintf("price >= $%d", len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		clauses = append(clauses, fmt.Sprintf("price <= $%d", len(args)))
	}
	if f.PropertyType != "" {
		args = append(args, string(f.PropertyType))
		clauses = append(clauses, fmt.Sprintf("property_type = $%d", len(args)))
	}
	return strings.Join(clauses, " AND "), args
}

func (f HomeFilter) Page() (limit, offset int) {
	limit, offset = f.Limit, f.Offset
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
