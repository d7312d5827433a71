// Package listing implements the shared filter → sort → paginate pipeline
// used by the deal, collection and restaurant listings.
package listing

import (
	"sort"
	"strings"

	"github.com/foodtour/foodtour-backend-go/internal/models"
	"github.com/foodtour/foodtour-backend-go/internal/spatial"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

// ClampPage normalizes page/pageSize the same way for every listing
func ClampPage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

// Paginate slices one page out of items. In accumulate mode (load-more
// semantics) it returns pages 1..page concatenated, so the result length is
// min(page*size, len(items)) with no duplicates.
func Paginate[T any](items []T, page, size int, accumulate bool) []T {
	page, size = ClampPage(page, size)

	start := (page - 1) * size
	if accumulate {
		start = 0
	}
	end := page * size

	if start >= len(items) {
		return []T{}
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// matchSearch reports whether the needle occurs in any field, case-insensitively
func matchSearch(needle string, fields ...string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// FilterDeals applies the deal filter predicates. The result is a fresh
// slice; filtering is idempotent for a fixed filter state.
func FilterDeals(deals []models.Deal, f models.DealFilter) []models.Deal {
	out := make([]models.Deal, 0, len(deals))
	for _, d := range deals {
		if f.District != "" && d.District != f.District {
			continue
		}
		if f.MinOff > 0 && d.PercentOff < f.MinOff {
			continue
		}
		if !matchSearch(f.Search, d.Title, d.Description, d.Tags) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// SortDeals orders deals by the given key. Unknown keys fall back to
// discount. Ties keep their incoming order.
func SortDeals(deals []models.Deal, key string) {
	var less func(a, b models.Deal) bool

	switch key {
	case "priceAsc":
		less = func(a, b models.Deal) bool { return a.Price < b.Price }
	case "priceDesc":
		less = func(a, b models.Deal) bool { return a.Price > b.Price }
	case "newest":
		less = func(a, b models.Deal) bool { return a.CreatedAt > b.CreatedAt }
	default: // discount
		less = func(a, b models.Deal) bool { return a.PercentOff > b.PercentOff }
	}

	sort.SliceStable(deals, func(i, j int) bool { return less(deals[i], deals[j]) })
}

// FilterCollections applies the collection filter predicates
func FilterCollections(cols []models.Collection, f models.CollectionFilter) []models.Collection {
	out := make([]models.Collection, 0, len(cols))
	for _, c := range cols {
		if f.Category != "" && c.Category != f.Category {
			continue
		}
		if !matchSearch(f.Search, c.Title, c.Description) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SortCollections orders collections; only recency is meaningful here
func SortCollections(cols []models.Collection, key string) {
	sort.SliceStable(cols, func(i, j int) bool { return cols[i].CreatedAt > cols[j].CreatedAt })
}

// FilterRestaurants applies the restaurant filter predicates
func FilterRestaurants(rs []models.Restaurant, f models.RestaurantFilter) []models.Restaurant {
	out := make([]models.Restaurant, 0, len(rs))
	for _, r := range rs {
		if f.District != "" && r.District != f.District {
			continue
		}
		if f.MinRating > 0 && r.Rating < f.MinRating {
			continue
		}
		if f.PriceLevel > 0 && r.PriceLevel != f.PriceLevel {
			continue
		}
		if f.Category != "" && !hasCategory(r, f.Category) {
			continue
		}
		if !matchSearch(f.Search, r.Name, r.Address, r.Tags) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func hasCategory(r models.Restaurant, slug string) bool {
	for _, c := range r.Categories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}

// ComputeDistances fills DistanceM on each restaurant that has coordinates
func ComputeDistances(rs []models.Restaurant, lat, lng float64) {
	for i := range rs {
		if rs[i].Latitude == nil || rs[i].Longitude == nil {
			rs[i].DistanceM = nil
			continue
		}
		d := spatial.HaversineDistance(lat, lng, *rs[i].Latitude, *rs[i].Longitude)
		rs[i].DistanceM = &d
	}
}

// SortRestaurants orders restaurants by the given key. The distance key
// requires ComputeDistances to have run; restaurants without a distance sink
// to the end. Unknown keys fall back to rating.
func SortRestaurants(rs []models.Restaurant, key string) {
	var less func(a, b models.Restaurant) bool

	switch key {
	case "priceAsc":
		less = func(a, b models.Restaurant) bool { return a.AvgPrice < b.AvgPrice }
	case "priceDesc":
		less = func(a, b models.Restaurant) bool { return a.AvgPrice > b.AvgPrice }
	case "newest":
		less = func(a, b models.Restaurant) bool { return a.CreatedAt > b.CreatedAt }
	case "distance":
		less = func(a, b models.Restaurant) bool {
			if a.DistanceM == nil {
				return false
			}
			if b.DistanceM == nil {
				return true
			}
			return *a.DistanceM < *b.DistanceM
		}
	default: // rating
		less = func(a, b models.Restaurant) bool { return a.Rating > b.Rating }
	}

	sort.SliceStable(rs, func(i, j int) bool { return less(rs[i], rs[j]) })
}
