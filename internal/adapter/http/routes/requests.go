package routes

import (
	"gestao_compras/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests    = "/requests"
	PathDashboard   = "/dashboard"
	PathPreferences = "/preferences"
	PathReports     = "/reports"
	PathEvents      = "/events"
)

func addRequestRoutes(
	rg *gin.RouterGroup,
	requestHandler *handlers.RequestHandler,
	dashboardHandler *handlers.DashboardHandler,
	reportHandler *handlers.ReportHandler,
	eventsHandler *handlers.EventsHandler,
) {
	requests := rg.Group(PathRequests)
	{
		requests.GET("", requestHandler.ListRequests)
		requests.POST("", requestHandler.CreateRequest)
		requests.GET("/state", requestHandler.SyncState)
		requests.GET("/:id", requestHandler.GetRequest)
		requests.PATCH("/:id", requestHandler.UpdateRequest)
		requests.DELETE("/:id", requestHandler.DeleteRequest)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/summary", dashboardHandler.Summary)
		dashboard.GET("/performance", dashboardHandler.Performance)
	}

	rg.GET(PathPreferences, dashboardHandler.GetPreferences)
	rg.PUT(PathPreferences, dashboardHandler.UpdatePreferences)

	rg.GET(PathReports+"/requests", reportHandler.ExportRequests)

	// EventSource não envia cabeçalhos: o token vem em ?token=.
	rg.GET(PathEvents, eventsHandler.Stream)
}
