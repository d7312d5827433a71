package models

// RestaurantFilter represents filter parameters for querying restaurants
type RestaurantFilter struct {
	Search     string   `form:"search"`     // 名称/地址/标签子串（不区分大小写）
	District   string   `form:"district"`   // 精确匹配
	Category   string   `form:"category"`   // 分类 slug，精确匹配
	MinRating  float64  `form:"minRating"`  // 0-5
	PriceLevel int      `form:"priceLevel"` // 1-4，0 表示不限
	Sort       string   `form:"sort"`       // rating, priceAsc, priceDesc, distance, newest
	Lat        *float64 `form:"lat"`        // distance 排序的参考点
	Lng        *float64 `form:"lng"`
	Session    string   `form:"session"` // 未传 lat/lng 时从位置会话取参考点
	Page       int      `form:"page"`
	PageSize   int      `form:"pageSize"`
	Accumulate bool     `form:"accumulate"` // load-more 语义：返回 1..page 的累积结果
}

// DealFilter represents filter parameters for querying deals
type DealFilter struct {
	Search     string  `form:"search"`
	District   string  `form:"district"`
	MinOff     float64 `form:"minOff"` // 最低折扣百分比
	Sort       string  `form:"sort"`   // discount, priceAsc, priceDesc, newest
	Page       int     `form:"page"`
	PageSize   int     `form:"pageSize"`
	Accumulate bool    `form:"accumulate"`
}

// CollectionFilter represents filter parameters for querying collections
type CollectionFilter struct {
	Search     string `form:"search"`
	Category   string `form:"category"`
	Sort       string `form:"sort"` // newest
	Page       int    `form:"page"`
	PageSize   int    `form:"pageSize"`
	Accumulate bool   `form:"accumulate"`
}

// NearbyFilter represents parameters for the nearby restaurant search.
// Lat/Lng are pointers: required-presence must not reject the zero value.
type NearbyFilter struct {
	Lat    *float64 `form:"lat" binding:"required"`
	Lng    *float64 `form:"lng" binding:"required"`
	Radius float64  `form:"radius"` // 米，默认 3000
	Limit  int      `form:"limit"`
}
