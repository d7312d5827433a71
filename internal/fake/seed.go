package fake

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/foodtour/foodtour-backend-go/internal/logging"
)

// Seed 填充演示数据。插入使用固定 ID 并且幂等,重启不会产生重复行。
func Seed(db *sql.DB) error {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM restaurants").Scan(&n); err != nil {
		return fmt.Errorf("failed to probe seed state: %w", err)
	}
	if n > 0 {
		logging.Debug().Msg("fake mode: data already seeded")
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := seedUsers(tx); err != nil {
		return err
	}
	if err := seedCategories(tx); err != nil {
		return err
	}
	if err := seedRestaurants(tx); err != nil {
		return err
	}
	if err := seedMenus(tx); err != nil {
		return err
	}
	if err := seedDeals(tx); err != nil {
		return err
	}
	if err := seedCollections(tx); err != nil {
		return err
	}
	if err := seedBlog(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	logging.Info().Msg("fake mode: demo data seeded")
	return nil
}

func seedUsers(tx *sql.Tx) error {
	users := []struct {
		id, email, password, name, role string
	}{
		{"u-demo", "demo@foodtour.local", "demo-pass-123", "Demo Diner", "user"},
		{"u-owner", "owner@foodtour.local", "owner-pass-123", "Chan Siu Ming", "owner"},
		{"u-admin", "admin@foodtour.local", "admin-pass-123", "FoodTour Admin", "admin"},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		_, err = tx.Exec(`INSERT OR IGNORE INTO users (id, email, password_hash, display_name, role)
			VALUES (?, ?, ?, ?, ?)`,
			u.id, u.email, string(hash), u.name, u.role)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedCategories(tx *sql.Tx) error {
	cats := [][3]string{
		{"c-cantonese", "粤菜", "cantonese"},
		{"c-dimsum", "点心", "dim-sum"},
		{"c-japanese", "日本菜", "japanese"},
		{"c-western", "西餐", "western"},
		{"c-dessert", "甜品", "dessert"},
		{"c-noodles", "粉面", "noodles"},
	}
	for _, c := range cats {
		_, err := tx.Exec(`INSERT OR IGNORE INTO categories (id, name, slug) VALUES (?, ?, ?)`,
			c[0], c[1], c[2])
		if err != nil {
			return err
		}
	}
	return nil
}

func seedRestaurants(tx *sql.Tx) error {
	type rst struct {
		id, name, desc, addr, district string
		lat, lng                       float64
		priceLevel                     int
		avgPrice, rating               float64
		reviews                        int
		tags                           string
		categories                     []string
	}
	rows := []rst{
		{"r-lotus", "莲香楼", "老式茶楼,推车点心", "中环威灵顿街160号", "中环",
			22.2837, 114.1530, 2, 120, 4.3, 182, "茶楼,怀旧", []string{"c-cantonese", "c-dimsum"}},
		{"r-mak", "麦奀云吞面世家", "云吞面老字号", "中环永吉街37号", "中环",
			22.2845, 114.1547, 1, 60, 4.1, 240, "云吞面,老字号", []string{"c-noodles", "c-cantonese"}},
		{"r-sushi", "寿司広", "板前寿司 omakase", "铜锣湾登龙街28号", "铜锣湾",
			22.2783, 114.1829, 4, 680, 4.6, 96, "寿司,omakase", []string{"c-japanese"}},
		{"r-grill", "Harbour Grill", "海景扒房", "尖沙咀梳士巴利道18号", "尖沙咀",
			22.2940, 114.1722, 4, 850, 4.5, 121, "牛扒,海景", []string{"c-western"}},
		{"r-mammy", "妈咪甜品", "街坊糖水铺", "深水埗北河街118号", "深水埗",
			22.3303, 114.1622, 1, 45, 4.0, 310, "糖水,宵夜", []string{"c-dessert"}},
		{"r-kau", "九记牛腩", "清汤牛腩驰名", "上环歌赋街21号", "上环",
			22.2849, 114.1520, 2, 90, 4.4, 405, "牛腩,排队", []string{"c-noodles", "c-cantonese"}},
		{"r-tim", "添好运", "平民米芝莲点心", "深水埗福荣街9-11号", "深水埗",
			22.3280, 114.1615, 1, 70, 4.2, 520, "点心,米芝莲", []string{"c-dimsum", "c-cantonese"}},
		{"r-teppan", "铁板烧 KOBE", "神户牛铁板烧", "铜锣湾波斯富街99号", "铜锣湾",
			22.2790, 114.1840, 3, 480, 4.3, 74, "铁板烧,和牛", []string{"c-japanese", "c-western"}},
	}
	for _, r := range rows {
		_, err := tx.Exec(`INSERT OR IGNORE INTO restaurants
			(id, owner_id, name, description, address, district, latitude, longitude,
			 price_level, avg_price, rating, review_count, tags, status)
			VALUES (?, 'u-owner', ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'active')`,
			r.id, r.name, r.desc, r.addr, r.district, r.lat, r.lng,
			r.priceLevel, r.avgPrice, r.rating, r.reviews, r.tags)
		if err != nil {
			return err
		}
		for _, cid := range r.categories {
			_, err = tx.Exec(`INSERT OR IGNORE INTO restaurant_categories (restaurant_id, category_id)
				VALUES (?, ?)`, r.id, cid)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func seedMenus(tx *sql.Tx) error {
	items := []struct {
		id, rid, name, desc string
		price               float64
	}{
		{"m-lotus-1", "r-lotus", "虾饺皇", "每日新鲜手包", 42},
		{"m-lotus-2", "r-lotus", "叉烧包", "蜜汁叉烧", 32},
		{"m-mak-1", "r-mak", "云吞面(细)", "大地鱼汤底", 48},
		{"m-sushi-1", "r-sushi", "主厨 Omakase", "12 件,时令鱼获", 680},
		{"m-grill-1", "r-grill", "肉眼扒 10oz", "配自选酱汁", 388},
		{"m-mammy-1", "r-mammy", "杨枝甘露", "", 38},
		{"m-kau-1", "r-kau", "清汤牛腩面", "", 58},
		{"m-tim-1", "r-tim", "酥皮焗叉烧包", "三件", 28},
	}
	for _, it := range items {
		_, err := tx.Exec(`INSERT OR IGNORE INTO menu_items (id, restaurant_id, name, description, price)
			VALUES (?, ?, ?, ?, ?)`, it.id, it.rid, it.name, it.desc, it.price)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedDeals(tx *sql.Tx) error {
	deals := []struct {
		id, rid, title, desc          string
		percentOff, price, original   float64
		district, tags                string
	}{
		{"d-sushi-36", "r-sushi", "午市 Omakase 36 折优惠", "星期一至五午市限定",
			36, 435, 680, "铜锣湾", "午市,寿司"},
		{"d-grill-29", "r-grill", "双人扒餐 29% off", "附餐酒两杯",
			29, 880, 1240, "尖沙咀", "晚市,牛扒"},
		{"d-tim-20", "r-tim", "点心套餐 8 折", "四人同行",
			20, 224, 280, "深水埗", "点心"},
		{"d-mammy-15", "r-mammy", "糖水第二份半价", "堂食限定",
			15, 57, 67, "深水埗", "甜品,宵夜"},
		{"d-teppan-40", "r-teppan", "铁板烧和牛套餐 6 折", "限量每日十份",
			40, 288, 480, "铜锣湾", "和牛,晚市"},
	}
	for _, d := range deals {
		_, err := tx.Exec(`INSERT OR IGNORE INTO deals
			(id, restaurant_id, title, description, percent_off, price, original_price,
			 district, tags, starts_at, ends_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now', '-1 day'), datetime('now', '+30 day'))`,
			d.id, d.rid, d.title, d.desc, d.percentOff, d.price, d.original, d.district, d.tags)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedCollections(tx *sql.Tx) error {
	cols := []struct {
		id, title, desc, category string
		members                   []string
	}{
		{"col-classics", "港式老字号巡礼", "几十年如一日的老味道", "本地",
			[]string{"r-lotus", "r-mak", "r-kau"}},
		{"col-datenight", "约会之选", "气氛与味道并重", "西餐",
			[]string{"r-grill", "r-sushi", "r-teppan"}},
		{"col-budget", "百元食好西", "人均一百以内", "抵食",
			[]string{"r-tim", "r-mammy", "r-mak"}},
	}
	for _, col := range cols {
		_, err := tx.Exec(`INSERT OR IGNORE INTO collections (id, title, description, category)
			VALUES (?, ?, ?, ?)`, col.id, col.title, col.desc, col.category)
		if err != nil {
			return err
		}
		for i, rid := range col.members {
			_, err = tx.Exec(`INSERT OR IGNORE INTO collection_restaurants (collection_id, restaurant_id, position)
				VALUES (?, ?, ?)`, col.id, rid, i)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func seedBlog(tx *sql.Tx) error {
	posts := []struct {
		id, title, slug, excerpt, author string
	}{
		{"b-dimsum", "一盅两件:点心入门指南", "dim-sum-guide",
			"从虾饺烧卖说起,带你读懂茶楼点心纸。", "阿明"},
		{"b-ssp", "深水埗扫街地图", "sham-shui-po-street-food",
			"一条北河街,从糖水吃到云吞面。", "Foodie Kay"},
		{"b-omakase", "Omakase 第一次怎么点", "first-omakase",
			"预算、礼仪与时令,新手常见问题一次过解答。", "阿明"},
	}
	for _, p := range posts {
		_, err := tx.Exec(`INSERT OR IGNORE INTO blog_posts (id, title, slug, excerpt, body, author, published_at)
			VALUES (?, ?, ?, ?, ?, ?, datetime('now', '-7 day'))`,
			p.id, p.title, p.slug, p.excerpt, p.excerpt, p.author)
		if err != nil {
			return err
		}
	}
	return nil
}
