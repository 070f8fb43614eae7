package routes

import (
	"gestao_compras/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth  = "/auth"
	PathSetup = "/setup"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, setupHandler *handlers.SetupHandler, auth gin.HandlerFunc) {
	authGroup := rg.Group(PathAuth)
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", auth, authHandler.Me)
	}

	// Sem autenticação: usado antes de existir qualquer usuário.
	setup := rg.Group(PathSetup)
	{
		setup.GET("/status", setupHandler.Status)
		setup.GET("/script", setupHandler.Script)
	}
}
