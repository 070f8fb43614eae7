package routes

import (
	"gestao_compras/internal/adapter/http/handlers"
	"gestao_compras/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathStatuses   = "/statuses"
	PathSectors    = "/sectors"
	PathFormFields = "/form-fields"
	PathUsers      = "/users"
)

// addCatalogRoutes exposes the lists to every user; changes are admin only.
func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	adminOnly := middleware.RequireAdmin()

	statuses := rg.Group(PathStatuses)
	{
		statuses.GET("", h.ListStatuses)
		statuses.POST("", adminOnly, h.CreateStatus)
		statuses.PUT("/:id", adminOnly, h.UpdateStatus)
		statuses.DELETE("/:id", adminOnly, h.DeleteStatus)
	}

	sectors := rg.Group(PathSectors)
	{
		sectors.GET("", h.ListSectors)
		sectors.POST("", adminOnly, h.CreateSector)
		sectors.PUT("/:id", adminOnly, h.UpdateSector)
		sectors.DELETE("/:id", adminOnly, h.DeleteSector)
	}

	fields := rg.Group(PathFormFields)
	{
		fields.GET("", h.ListFormFields)
		fields.POST("", adminOnly, h.CreateFormField)
		fields.PUT("/order", adminOnly, h.ReorderFormFields)
		fields.PATCH("/visibility", adminOnly, h.SetListVisibility)
		fields.PUT("/:id", adminOnly, h.UpdateFormField)
		fields.DELETE("/:id", adminOnly, h.DeleteFormField)
	}
}

func addUserRoutes(rg *gin.RouterGroup, h *handlers.UserHandler) {
	users := rg.Group(PathUsers, middleware.RequireAdmin())
	{
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)
		users.GET("/:id", h.GetUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}
