package filter

import "github.com/loganlanou/dealerpost/internal/types"

// Products matches the term against title and description and the
// selector against category.
func Products(items []types.Product, c Criteria) []types.Product {
	return Apply(items, c,
		func(p types.Product) []string { return []string{p.Title, p.Description} },
		func(p types.Product) string { return p.Category },
	)
}

// Posts matches the term against content and the selector against platform.
func Posts(items []types.Post, c Criteria) []types.Post {
	return Apply(items, c,
		func(p types.Post) []string { return []string{p.Content} },
		func(p types.Post) string { return p.Platform },
	)
}
