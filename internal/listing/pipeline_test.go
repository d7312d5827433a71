package listing

import (
	"reflect"
	"testing"

	"github.com/foodtour/foodtour-backend-go/internal/models"
)

func sampleDeals() []models.Deal {
	return []models.Deal{
		{ID: "d1", Title: "Hotpot Night", PercentOff: 36, Price: 120, District: "D1", CreatedAt: "2026-08-01"},
		{ID: "d2", Title: "Pho Special", PercentOff: 29, Price: 45, District: "D3", CreatedAt: "2026-08-10"},
		{ID: "d3", Title: "Sushi Combo", PercentOff: 36, Price: 200, District: "D1", CreatedAt: "2026-07-20"},
		{ID: "d4", Title: "Banh Mi Morning", PercentOff: 15, Price: 25, District: "D1", CreatedAt: "2026-08-15"},
	}
}

func dealIDs(deals []models.Deal) []string {
	ids := make([]string, len(deals))
	for i, d := range deals {
		ids[i] = d.ID
	}
	return ids
}

func TestFilterDealsIsIdempotent(t *testing.T) {
	t.Parallel()

	f := models.DealFilter{MinOff: 20, District: "D1"}
	once := FilterDeals(sampleDeals(), f)
	twice := FilterDeals(once, f)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filtering twice changed the result: %v vs %v", dealIDs(once), dealIDs(twice))
	}
}

func TestFilterDealsMinOffExcludes(t *testing.T) {
	t.Parallel()

	deals := []models.Deal{
		{ID: "d1", PercentOff: 36},
		{ID: "d2", PercentOff: 29},
	}
	got := FilterDeals(deals, models.DealFilter{MinOff: 30})
	if !reflect.DeepEqual(dealIDs(got), []string{"d1"}) {
		t.Errorf("expected only d1, got %v", dealIDs(got))
	}
}

func TestFilterDealsSearchCaseInsensitive(t *testing.T) {
	t.Parallel()

	got := FilterDeals(sampleDeals(), models.DealFilter{Search: "HOTPOT"})
	if len(got) != 1 || got[0].ID != "d1" {
		t.Errorf("expected d1, got %v", dealIDs(got))
	}
}

func TestSortDealsDiscountOrder(t *testing.T) {
	t.Parallel()

	deals := []models.Deal{
		{ID: "d1", PercentOff: 36},
		{ID: "d2", PercentOff: 29},
	}
	SortDeals(deals, "discount")
	if !reflect.DeepEqual(dealIDs(deals), []string{"d1", "d2"}) {
		t.Errorf("expected [d1 d2], got %v", dealIDs(deals))
	}

	// Non-increasing percentOff across a larger set
	all := sampleDeals()
	SortDeals(all, "discount")
	for i := 1; i < len(all); i++ {
		if all[i].PercentOff > all[i-1].PercentOff {
			t.Fatalf("percentOff not non-increasing at %d: %v", i, all)
		}
	}
}

func TestSortDealsStableTies(t *testing.T) {
	t.Parallel()

	all := sampleDeals()
	SortDeals(all, "discount")
	// d1 and d3 tie at 36; incoming order must hold
	if all[0].ID != "d1" || all[1].ID != "d3" {
		t.Errorf("tie order not stable: %v", dealIDs(all))
	}
}

func TestSortDealsPriceAscNonDecreasing(t *testing.T) {
	t.Parallel()

	all := sampleDeals()
	SortDeals(all, "priceAsc")
	for i := 1; i < len(all); i++ {
		if all[i].Price < all[i-1].Price {
			t.Fatalf("price not non-decreasing at %d: %v", i, all)
		}
	}
}

func TestSortDealsUnknownKeyFallsBackToDiscount(t *testing.T) {
	t.Parallel()

	all := sampleDeals()
	SortDeals(all, "bogus")
	if all[0].PercentOff < all[1].PercentOff {
		t.Errorf("unknown key did not fall back to discount: %v", dealIDs(all))
	}
}

func TestPaginatePlainPages(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5, 6, 7}

	got := Paginate(items, 2, 3, false)
	if !reflect.DeepEqual(got, []int{4, 5, 6}) {
		t.Errorf("page 2 wrong: %v", got)
	}

	got = Paginate(items, 3, 3, false)
	if !reflect.DeepEqual(got, []int{7}) {
		t.Errorf("final partial page wrong: %v", got)
	}

	got = Paginate(items, 4, 3, false)
	if len(got) != 0 {
		t.Errorf("past-the-end page should be empty, got %v", got)
	}
}

func TestPaginateAccumulate(t *testing.T) {
	t.Parallel()

	items := make([]int, 10)
	for i := range items {
		items[i] = i
	}

	for page := 1; page <= 5; page++ {
		got := Paginate(items, page, 3, true)

		want := page * 3
		if want > len(items) {
			want = len(items)
		}
		if len(got) != want {
			t.Fatalf("page %d: expected len %d, got %d", page, want, len(got))
		}

		// No duplicates across accumulated pages
		seen := make(map[int]bool, len(got))
		for _, v := range got {
			if seen[v] {
				t.Fatalf("page %d: duplicate item %d", page, v)
			}
			seen[v] = true
		}
	}
}

func TestClampPage(t *testing.T) {
	t.Parallel()

	page, size := ClampPage(0, 0)
	if page != 1 || size != defaultPageSize {
		t.Errorf("expected defaults, got page=%d size=%d", page, size)
	}

	_, size = ClampPage(1, 9999)
	if size != maxPageSize {
		t.Errorf("expected size capped at %d, got %d", maxPageSize, size)
	}
}

func TestFilterAndSortRestaurants(t *testing.T) {
	t.Parallel()

	lat1, lng1 := 10.77, 106.70
	lat2, lng2 := 10.80, 106.75
	rs := []models.Restaurant{
		{ID: "r1", Name: "Quan Ngon", District: "D1", Rating: 4.5, AvgPrice: 150, Latitude: &lat1, Longitude: &lng1,
			Categories: []models.Category{{Slug: "vietnamese"}}},
		{ID: "r2", Name: "Sushi Ba", District: "D3", Rating: 4.8, AvgPrice: 400, Latitude: &lat2, Longitude: &lng2,
			Categories: []models.Category{{Slug: "japanese"}}},
		{ID: "r3", Name: "Ngon Garden", District: "D1", Rating: 3.9, AvgPrice: 220},
	}

	got := FilterRestaurants(rs, models.RestaurantFilter{District: "D1", Search: "ngon"})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %v", got)
	}

	got = FilterRestaurants(rs, models.RestaurantFilter{Category: "japanese"})
	if len(got) != 1 || got[0].ID != "r2" {
		t.Fatalf("category filter wrong: %v", got)
	}

	ComputeDistances(rs, 10.77, 106.70)
	SortRestaurants(rs, "distance")
	if rs[0].ID != "r1" {
		t.Errorf("expected r1 nearest, got %s", rs[0].ID)
	}
	if rs[2].ID != "r3" {
		t.Errorf("expected restaurant without coords last, got %s", rs[2].ID)
	}

	SortRestaurants(rs, "rating")
	if rs[0].ID != "r2" {
		t.Errorf("expected highest rating first, got %s", rs[0].ID)
	}
}
