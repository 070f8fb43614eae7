package main

import (
	"context"
	"log"

	_ "gestao_compras/docs"
	"gestao_compras/internal/adapter/http/routes"
	"gestao_compras/internal/app"
	"gestao_compras/internal/config"
	"gestao_compras/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Gestão de Compras API
// @version         1.0
// @description     Purchase requests, suppliers, price maps and thermal analyses.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	flush, err := logger.Init(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer flush()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := app.New(ctx, cfg)
	if err != nil {
		zap.L().Fatal("[app] failed to start", zap.Error(err))
	}
	defer a.Close()
	a.Start(ctx)

	if err := routes.Run(a); err != nil {
		zap.L().Error("[http][server] stopped with error", zap.Error(err))
	}
}
