package persistence

import (
	"fmt"
	"strings"

	"github.com/fingestor/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// allowedSortColumns is the allowlist for user-supplied ordering. Anything
// else falls back to the default ordering instead of reaching the SQL.
var allowedSortColumns = map[string]bool{
	"created_at":  true,
	"updated_at":  true,
	"name":        true,
	"description": true,
	"amount":      true,
	"due_date":    true,
	"issue_date":  true,
	"status":      true,
}

const defaultOrder = "created_at DESC"

// orderClause builds a safe ORDER BY clause from the filter
func orderClause(filter shared.Filter) string {
	column := filter.OrderBy
	if !allowedSortColumns[column] {
		return defaultOrder
	}
	dir := "DESC"
	if strings.EqualFold(filter.OrderDir, "asc") {
		dir = "ASC"
	}
	return fmt.Sprintf("%s %s", column, dir)
}

// applyFilter applies search, ordering and pagination to a query.
// Search matches case-insensitively against the given columns; LOWER/LIKE
// is used instead of ILIKE so the same SQL runs on postgres and sqlite.
func applyFilter(db *gorm.DB, filter shared.Filter, searchColumns ...string) *gorm.DB {
	if filter.Search != "" && len(searchColumns) > 0 {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		conditions := make([]string, len(searchColumns))
		args := make([]interface{}, len(searchColumns))
		for i, col := range searchColumns {
			conditions[i] = fmt.Sprintf("LOWER(%s) LIKE ?", col)
			args[i] = pattern
		}
		db = db.Where(strings.Join(conditions, " OR "), args...)
	}

	return db.Order(orderClause(filter)).
		Offset(filter.Offset()).
		Limit(filter.Limit())
}
