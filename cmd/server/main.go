package main

import (
	"github.com/foodtour/foodtour-backend-go/internal/api"
	"github.com/foodtour/foodtour-backend-go/internal/config"
	"github.com/foodtour/foodtour-backend-go/internal/database"
	"github.com/foodtour/foodtour-backend-go/internal/fake"
	"github.com/foodtour/foodtour-backend-go/internal/logging"
)

func main() {
	logging.Init()

	// 加载配置
	cfg := config.Load()

	// 初始化数据库
	dbConfig := database.Config{
		Path: cfg.DBPath,
	}
	if err := database.Init(dbConfig); err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer database.Close()

	// FAKE_MODE 下填充演示数据
	if cfg.FakeMode {
		if err := fake.Seed(database.GetDB()); err != nil {
			logging.Fatal().Err(err).Msg("failed to seed demo data")
		}
	}

	// 初始化路由
	router := api.SetupRouter(cfg)

	// 启动服务器
	logging.Info().Str("port", cfg.Port).Msg("server starting")
	if err := router.Run(cfg.Port); err != nil {
		logging.Fatal().Err(err).Msg("failed to start server")
	}
}
