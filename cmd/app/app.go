package main

import (
	"os"

	"github.com/akshop/go-backend/internal/app"
	config "github.com/akshop/go-backend/internal/cfg"
	"github.com/akshop/go-backend/pkg/logger"
)

// @title			Ak Shop API
// @version		1.0
// @description	Бэкенд витрины Ak Shop: каталог, корзина, заказы, чат-ассистент
// @host			localhost:8080
// @BasePath		/api/v1
func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
