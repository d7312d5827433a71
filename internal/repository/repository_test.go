package repository

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/foodtour/foodtour-backend-go/internal/database"
	"github.com/foodtour/foodtour-backend-go/internal/models"
)

// newTestDB opens an in-memory database with the full schema applied
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func insertUser(t *testing.T, db *sql.DB, id, role string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO users (id, email, password_hash, display_name, role)
		VALUES (?, ?, 'x', ?, ?)`, id, id+"@test.local", "User "+id, role)
	if err != nil {
		t.Fatalf("insert user %s: %v", id, err)
	}
}

func insertCategory(t *testing.T, db *sql.DB, id, name, slug string) {
	t.Helper()
	if _, err := db.Exec("INSERT INTO categories (id, name, slug) VALUES (?, ?, ?)", id, name, slug); err != nil {
		t.Fatalf("insert category %s: %v", id, err)
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestRestaurantCreateGetWithCategories(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)
	insertUser(t, db, "owner-1", models.RoleOwner)
	insertCategory(t, db, "c-1", "粤菜", "cantonese")
	insertCategory(t, db, "c-2", "点心", "dim-sum")

	rst := &models.Restaurant{
		ID:         "r-1",
		OwnerID:    "owner-1",
		Name:       "莲香楼",
		District:   "中环",
		Latitude:   floatPtr(22.2837),
		Longitude:  floatPtr(114.1530),
		PriceLevel: 2,
		Status:     "active",
	}
	if err := repo.Create(rst, []string{"c-1", "c-2"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID("r-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil {
		t.Fatal("GetByID returned nil")
	}
	if got.Name != "莲香楼" || got.District != "中环" || got.OwnerID != "owner-1" {
		t.Errorf("unexpected restaurant: %+v", got)
	}
	if got.Latitude == nil || *got.Latitude != 22.2837 {
		t.Errorf("latitude = %v, want 22.2837", got.Latitude)
	}

	cats, err := repo.GetCategories("r-1")
	if err != nil {
		t.Fatalf("GetCategories: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("got %d categories, want 2", len(cats))
	}
}

func TestRestaurantGetByIDMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)

	got, err := repo.GetByID("nope")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil", got)
	}
}

func TestRestaurantNilCoordinatesRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)

	rst := &models.Restaurant{ID: "r-1", Name: "无座标小店", Status: "active"}
	if err := repo.Create(rst, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID("r-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Latitude != nil || got.Longitude != nil {
		t.Errorf("coordinates = %v/%v, want nil/nil", got.Latitude, got.Longitude)
	}
	if got.OwnerID != "" {
		t.Errorf("ownerID = %q, want empty", got.OwnerID)
	}
}

func TestRestaurantUpdateReplacesCategories(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)
	insertCategory(t, db, "c-1", "粤菜", "cantonese")
	insertCategory(t, db, "c-2", "点心", "dim-sum")

	rst := &models.Restaurant{ID: "r-1", Name: "A", Status: "active"}
	if err := repo.Create(rst, []string{"c-1"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rst.Name = "B"
	if err := repo.Update(rst, []string{"c-2"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, _ := repo.GetByID("r-1")
	if got.Name != "B" {
		t.Errorf("name = %q, want B", got.Name)
	}
	cats, err := repo.GetCategories("r-1")
	if err != nil {
		t.Fatalf("GetCategories: %v", err)
	}
	if len(cats) != 1 || cats[0].ID != "c-2" {
		t.Errorf("categories = %+v, want [c-2]", cats)
	}

	// nil category list means "leave links alone"
	if err := repo.Update(rst, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}
	cats, _ = repo.GetCategories("r-1")
	if len(cats) != 1 {
		t.Errorf("categories after nil update = %+v, want unchanged", cats)
	}
}

func TestRestaurantListActiveFiltersDistrictAndStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)

	for _, r := range []models.Restaurant{
		{ID: "r-1", Name: "A", District: "中环", Status: "active"},
		{ID: "r-2", Name: "B", District: "中环", Status: "hidden"},
		{ID: "r-3", Name: "C", District: "旺角", Status: "active"},
	} {
		rst := r
		if err := repo.Create(&rst, nil); err != nil {
			t.Fatalf("Create %s: %v", r.ID, err)
		}
	}

	all, err := repo.ListActive("")
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("active count = %d, want 2 (hidden excluded)", len(all))
	}

	central, err := repo.ListActive("中环")
	if err != nil {
		t.Fatalf("ListActive district: %v", err)
	}
	if len(central) != 1 || central[0].ID != "r-1" {
		t.Errorf("central = %+v, want [r-1]", central)
	}
}

func TestRestaurantListInBounds(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)

	for _, r := range []models.Restaurant{
		{ID: "r-in", Name: "In", Latitude: floatPtr(22.30), Longitude: floatPtr(114.17), Status: "active"},
		{ID: "r-out", Name: "Out", Latitude: floatPtr(23.50), Longitude: floatPtr(114.17), Status: "active"},
		{ID: "r-nocoord", Name: "NoCoord", Status: "active"},
	} {
		rst := r
		if err := repo.Create(&rst, nil); err != nil {
			t.Fatalf("Create %s: %v", r.ID, err)
		}
	}

	got, err := repo.ListInBounds(22.25, 22.35, 114.10, 114.25)
	if err != nil {
		t.Fatalf("ListInBounds: %v", err)
	}
	if len(got) != 1 || got[0].ID != "r-in" {
		t.Errorf("in bounds = %+v, want [r-in]", got)
	}
}

func TestRestaurantDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)
	insertCategory(t, db, "c-1", "粤菜", "cantonese")

	rst := &models.Restaurant{ID: "r-1", Name: "A", Status: "active"}
	if err := repo.Create(rst, []string{"c-1"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete("r-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, _ := repo.GetByID("r-1")
	if got != nil {
		t.Errorf("restaurant still present after delete")
	}
	var links int
	db.QueryRow("SELECT COUNT(*) FROM restaurant_categories WHERE restaurant_id = 'r-1'").Scan(&links)
	if links != 0 {
		t.Errorf("category links = %d, want 0", links)
	}
}

func TestReviewUpsertRecomputesAggregate(t *testing.T) {
	db := newTestDB(t)
	restaurants := NewRestaurantRepository(db)
	reviews := NewReviewRepository(db)
	insertUser(t, db, "u-1", models.RoleUser)
	insertUser(t, db, "u-2", models.RoleUser)

	rst := &models.Restaurant{ID: "r-1", Name: "A", Status: "active"}
	if err := restaurants.Create(rst, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := reviews.Upsert(&models.Review{ID: "rv-1", RestaurantID: "r-1", UserID: "u-1", Rating: 5}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := reviews.Upsert(&models.Review{ID: "rv-2", RestaurantID: "r-1", UserID: "u-2", Rating: 2}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, _ := restaurants.GetByID("r-1")
	if got.Rating != 3.5 || got.ReviewCount != 2 {
		t.Errorf("aggregate = %.2f/%d, want 3.50/2", got.Rating, got.ReviewCount)
	}

	// Same user again: last write wins, count stays at 2.
	if err := reviews.Upsert(&models.Review{ID: "rv-3", RestaurantID: "r-1", UserID: "u-1", Rating: 1, Comment: "改主意了"}); err != nil {
		t.Fatalf("Upsert update: %v", err)
	}

	got, _ = restaurants.GetByID("r-1")
	if got.ReviewCount != 2 {
		t.Errorf("review count = %d, want 2 after same-user rewrite", got.ReviewCount)
	}
	if got.Rating != 1.5 {
		t.Errorf("rating = %.2f, want 1.50", got.Rating)
	}

	rv, err := reviews.GetByUser("r-1", "u-1")
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if rv == nil || rv.Rating != 1 || rv.Comment != "改主意了" {
		t.Errorf("review = %+v, want rewritten rating 1", rv)
	}
}

func TestReviewDeleteRefreshesAggregate(t *testing.T) {
	db := newTestDB(t)
	restaurants := NewRestaurantRepository(db)
	reviews := NewReviewRepository(db)
	insertUser(t, db, "u-1", models.RoleUser)

	rst := &models.Restaurant{ID: "r-1", Name: "A", Status: "active"}
	if err := restaurants.Create(rst, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := reviews.Upsert(&models.Review{ID: "rv-1", RestaurantID: "r-1", UserID: "u-1", Rating: 4}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := reviews.Delete("rv-1", "r-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, _ := restaurants.GetByID("r-1")
	if got.Rating != 0 || got.ReviewCount != 0 {
		t.Errorf("aggregate = %.2f/%d, want 0/0 after delete", got.Rating, got.ReviewCount)
	}
}

func TestReviewListByRestaurantPagination(t *testing.T) {
	db := newTestDB(t)
	restaurants := NewRestaurantRepository(db)
	reviews := NewReviewRepository(db)

	rst := &models.Restaurant{ID: "r-1", Name: "A", Status: "active"}
	if err := restaurants.Create(rst, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}
	for i, uid := range []string{"u-1", "u-2", "u-3"} {
		insertUser(t, db, uid, models.RoleUser)
		rv := &models.Review{ID: "rv-" + uid, RestaurantID: "r-1", UserID: uid, Rating: i + 1}
		if err := reviews.Upsert(rv); err != nil {
			t.Fatalf("Upsert %s: %v", uid, err)
		}
	}

	page, total, err := reviews.ListByRestaurant("r-1", 2, 0)
	if err != nil {
		t.Fatalf("ListByRestaurant: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(page) != 2 {
		t.Errorf("page len = %d, want 2", len(page))
	}
	if len(page) > 0 && page[0].UserName == "" {
		t.Errorf("user name not joined: %+v", page[0])
	}
}

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	u := &models.User{
		ID:           "u-1",
		Email:        "demo@test.local",
		PasswordHash: "hash",
		DisplayName:  "Demo",
		Role:         models.RoleUser,
	}
	if err := repo.Create(u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	byEmail, err := repo.GetByEmail("demo@test.local")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail == nil || byEmail.ID != "u-1" {
		t.Errorf("byEmail = %+v", byEmail)
	}

	missing, err := repo.GetByEmail("nobody@test.local")
	if err != nil {
		t.Fatalf("GetByEmail missing: %v", err)
	}
	if missing != nil {
		t.Errorf("missing = %+v, want nil", missing)
	}

	byID, err := repo.GetByID("u-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID == nil || byID.Email != "demo@test.local" {
		t.Errorf("byID = %+v", byID)
	}
}

func TestCollectionMembersInPositionOrder(t *testing.T) {
	db := newTestDB(t)
	restaurants := NewRestaurantRepository(db)
	collections := NewCollectionRepository(db)

	for _, id := range []string{"r-1", "r-2", "r-3"} {
		rst := &models.Restaurant{ID: id, Name: id, Status: "active"}
		if err := restaurants.Create(rst, nil); err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}
	col := &models.Collection{ID: "col-1", Title: "老字号"}
	if err := collections.Create(col, []string{"r-3", "r-1", "r-2"}); err != nil {
		t.Fatalf("Create collection: %v", err)
	}

	members, err := restaurants.ListByCollection("col-1")
	if err != nil {
		t.Fatalf("ListByCollection: %v", err)
	}
	want := []string{"r-3", "r-1", "r-2"}
	if len(members) != len(want) {
		t.Fatalf("got %d members, want %d", len(members), len(want))
	}
	for i, id := range want {
		if members[i].ID != id {
			t.Errorf("members[%d] = %s, want %s", i, members[i].ID, id)
		}
	}
}
