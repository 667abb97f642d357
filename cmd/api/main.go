package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/handlers"
	"blogapi/internal/monitoring"
	"blogapi/internal/repositories"
	"blogapi/internal/routes"
	"blogapi/internal/utils"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Invalid configuration: ", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	if err := database.CreateTables(db); err != nil {
		logrus.Fatal("Failed to create tables: ", err)
	}

	tokens := utils.NewTokenManager(cfg.JWTSecret)
	users := repositories.NewUserStore(db, cfg.TrackModifications)
	blogs := repositories.NewBlogStore(db, cfg.TrackModifications)
	monitor := monitoring.NewService(db, time.Now())

	gin.SetMode(gin.ReleaseMode)
	router := routes.Setup(
		handlers.NewAuthHandler(users, tokens),
		handlers.NewBlogHandler(blogs, users),
		handlers.NewSystemHandler(monitor, cfg.MonitoringAPIKey),
		tokens,
	)

	logrus.Info("Blog API starting on :", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Server failed to start: ", err)
	}
}
