package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByPriceAsc  = "price_asc"
	orderByPriceDesc = "price_desc"
	orderByNameAsc   = "name_asc"
	orderByCreatedAt = "created_at"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByPriceAsc:  "price ASC",
	orderByPriceDesc: "price DESC",
	orderByNameAsc:   "lower(name) ASC",
	orderByCreatedAt: "created_at DESC",
}

const defaultOrderBy = "created_at DESC"

const baseProductsSelect = `SELECT id, name, price, COALESCE(description, ''), category,
	COALESCE(images, '{}'), COALESCE(manufacturer, ''), COALESCE(model, ''), COALESCE(series, ''),
	stock, in_stock, COALESCE(specs, '{}'), created_at, COALESCE(created_by, ''), updated_at
FROM products`

const countProductsSelect = "SELECT COUNT(*) FROM products"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a product query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *ProductQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Category != nil {
		conditions = append(conditions, fmt.Sprintf("lower(category) = lower($%d)", paramIdx))
		args = append(args, *q.Category)
		paramIdx++
	}

	if q.Manufacturer != nil {
		conditions = append(conditions, fmt.Sprintf("manufacturer = $%d", paramIdx))
		args = append(args, *q.Manufacturer)
		paramIdx++
	}

	if q.MinPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price >= $%d", paramIdx))
		args = append(args, *q.MinPrice)
		paramIdx++
	}

	if q.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price <= $%d", paramIdx))
		args = append(args, *q.MaxPrice)
		paramIdx++
	}

	if q.InStock != nil {
		conditions = append(conditions, fmt.Sprintf("in_stock = $%d", paramIdx))
		args = append(args, *q.InStock)
		paramIdx++
	}

	if q.NameLike != nil {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", paramIdx))
		args = append(args, "%"+*q.NameLike+"%")
		paramIdx++
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Order by
	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	// Limit
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseProductsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countProductsSelect + whereClause

	return dataSQL, countSQL, args
}
