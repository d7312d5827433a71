package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foodtour/foodtour-backend-go/internal/config"
	"github.com/foodtour/foodtour-backend-go/internal/database"
	"github.com/foodtour/foodtour-backend-go/internal/handler"
	"github.com/foodtour/foodtour-backend-go/internal/location"
	"github.com/foodtour/foodtour-backend-go/internal/mapbox"
	"github.com/foodtour/foodtour-backend-go/internal/middleware"
	"github.com/foodtour/foodtour-backend-go/internal/repository"
	"github.com/foodtour/foodtour-backend-go/internal/service"
)

// sessionTTL 会话位置状态的过期时间
const sessionTTL = 24 * time.Hour

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	db := database.GetDB()

	// 仓库层
	userRepo := repository.NewUserRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	dealRepo := repository.NewDealRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	// 共享组件
	locationStore := location.NewStore(sessionTTL)
	mapboxClient := mapbox.NewClient(cfg.MapboxBaseURL, cfg.MapboxToken)

	// 服务层
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	restaurantService := service.NewRestaurantService(restaurantRepo, locationStore)
	reviewService := service.NewReviewService(reviewRepo, restaurantRepo)
	menuService := service.NewMenuService(menuRepo, restaurantService)
	dealService := service.NewDealService(dealRepo)
	collectionService := service.NewCollectionService(collectionRepo, restaurantRepo)
	blogService := service.NewBlogService(blogRepo)
	directionsService := service.NewDirectionsService(mapboxClient, locationStore)

	// 处理器
	authHandler := handler.NewAuthHandler(authService)
	restaurantHandler := handler.NewRestaurantHandler(restaurantService, menuService, reviewService, authService)
	ownerHandler := handler.NewOwnerHandler(restaurantService, menuService, authService)
	dealHandler := handler.NewDealHandler(dealService)
	collectionHandler := handler.NewCollectionHandler(collectionService)
	categoryHandler := handler.NewCategoryHandler(categoryRepo)
	blogHandler := handler.NewBlogHandler(blogService)
	locationHandler := handler.NewLocationHandler(locationStore, mapboxClient)
	directionsHandler := handler.NewDirectionsHandler(directionsService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Session-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "FoodTour API is running",
		})
	})

	authRequired := middleware.Auth(cfg.JWTSecret)

	// API 路由组
	api := r.Group("/api/v1")
	{
		// 账号接口
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authRequired, authHandler.Me)
		}

		// 餐厅接口
		restaurants := api.Group("/restaurants")
		{
			restaurants.GET("", restaurantHandler.List)
			restaurants.GET("/nearby", restaurantHandler.Nearby)
			restaurants.GET("/:id", restaurantHandler.Get)
			restaurants.GET("/:id/menu", restaurantHandler.Menu)
			restaurants.GET("/:id/reviews", restaurantHandler.Reviews)
			restaurants.POST("/:id/reviews", authRequired, restaurantHandler.SubmitReview)
		}

		// 商家管理接口
		owner := api.Group("/owner", authRequired, middleware.RequireRole("owner", "admin"))
		{
			owner.GET("/restaurants", ownerHandler.ListRestaurants)
			owner.POST("/restaurants", ownerHandler.CreateRestaurant)
			owner.PUT("/restaurants/:id", ownerHandler.UpdateRestaurant)
			owner.DELETE("/restaurants/:id", ownerHandler.DeleteRestaurant)
			owner.POST("/restaurants/:id/menu", ownerHandler.CreateMenuItem)
			owner.PUT("/restaurants/:id/menu/:itemId", ownerHandler.UpdateMenuItem)
			owner.DELETE("/restaurants/:id/menu/:itemId", ownerHandler.DeleteMenuItem)
		}

		// 优惠接口
		deals := api.Group("/deals")
		{
			deals.GET("", dealHandler.List)
			deals.GET("/:id", dealHandler.Get)
		}

		// 合集接口
		collections := api.Group("/collections")
		{
			collections.GET("", collectionHandler.List)
			collections.GET("/:id", collectionHandler.Get)
		}

		// 分类与博客
		api.GET("/categories", categoryHandler.List)
		blog := api.Group("/blog")
		{
			blog.GET("", blogHandler.List)
			blog.GET("/:key", blogHandler.Get)
		}

		// 位置状态接口
		loc := api.Group("/location")
		{
			loc.GET("", locationHandler.Get)
			loc.POST("/gps", locationHandler.SetGPS)
			loc.POST("/manual", locationHandler.SetManual)
			loc.POST("/autodetect/begin", locationHandler.BeginAutoDetect)
			loc.POST("/autodetect/fail", locationHandler.FailAutoDetect)
			loc.POST("/unsupported", locationHandler.Unsupported)
			loc.POST("/watch", locationHandler.StartWatch)
			loc.POST("/watch/:watchId/update", locationHandler.WatchUpdate)
			loc.DELETE("/watch/:watchId", locationHandler.StopWatch)
			loc.POST("/reset", locationHandler.Reset)
		}

		// 路线接口
		api.GET("/directions", directionsHandler.GetRoute)
	}

	return r
}
