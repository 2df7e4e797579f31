package persistence

import (
	"gorm.io/gorm"

	"github.com/sportshop/backend/internal/domain/shared"
)

// applyPagination applies page/ordering options to a query. OrderBy is
// validated against the entity's allowlist; anything else falls back
// to defaultOrder.
func applyPagination(query *gorm.DB, filter shared.Filter, allowedFields map[string]bool, defaultOrder string) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if field := ValidateSortField(filter.OrderBy, allowedFields); field != "" {
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	} else if defaultOrder != "" {
		query = query.Order(defaultOrder)
	}

	return query
}
