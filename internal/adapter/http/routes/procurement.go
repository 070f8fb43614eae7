package routes

import (
	"gestao_compras/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSuppliers       = "/suppliers"
	PathPriceMaps       = "/price-maps"
	PathThermalAnalyses = "/thermal-analyses"
)

func addProcurementRoutes(
	rg *gin.RouterGroup,
	supplierHandler *handlers.SupplierHandler,
	priceMapHandler *handlers.PriceMapHandler,
	thermalHandler *handlers.ThermalHandler,
) {
	suppliers := rg.Group(PathSuppliers)
	{
		suppliers.GET("", supplierHandler.ListSuppliers)
		suppliers.POST("", supplierHandler.CreateSupplier)
		suppliers.GET("/:id", supplierHandler.GetSupplier)
		suppliers.PUT("/:id", supplierHandler.UpdateSupplier)
		suppliers.DELETE("/:id", supplierHandler.DeleteSupplier)
		suppliers.GET("/:id/stats", supplierHandler.SupplierStats)
	}

	priceMaps := rg.Group(PathPriceMaps)
	{
		priceMaps.GET("", priceMapHandler.ListPriceMaps)
		priceMaps.POST("", priceMapHandler.CreatePriceMap)
		priceMaps.GET("/:id", priceMapHandler.GetPriceMap)
		priceMaps.PUT("/:id", priceMapHandler.UpdatePriceMap)
		priceMaps.DELETE("/:id", priceMapHandler.DeletePriceMap)
		priceMaps.PUT("/:id/prices", priceMapHandler.SetPrice)
		priceMaps.PUT("/:id/freight", priceMapHandler.SetFreight)
		priceMaps.PUT("/:id/deadline", priceMapHandler.SetDeliveryDeadline)
		priceMaps.GET("/:id/comparison", priceMapHandler.Compare)
	}

	thermal := rg.Group(PathThermalAnalyses)
	{
		thermal.GET("", thermalHandler.ListAnalyses)
		thermal.POST("", thermalHandler.CreateAnalysis)
		thermal.GET("/:id", thermalHandler.GetAnalysis)
		thermal.PUT("/:id", thermalHandler.UpdateAnalysis)
		thermal.DELETE("/:id", thermalHandler.DeleteAnalysis)
		thermal.POST("/:id/measurements", thermalHandler.AddMeasurement)
	}
}
