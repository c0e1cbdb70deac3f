package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без аутентификации
	api.GET("/system/health", h.healthCheck)

	secured := api.Group("", AuthMiddleware(h.cfg, h.logger))

	// Реестр стационаров
	hospitals := secured.Group("/hospitals")
	{
		hospitals.POST("", h.createHospital)
		hospitals.GET("", h.listHospitals)
		hospitals.GET("/comparison", h.compareHospitals)
		hospitals.GET("/:hospital_id", h.getHospital)
		hospitals.GET("/:hospital_id/trends", h.getTrends)
		hospitals.GET("/:hospital_id/latest", h.getLatestAnalysis)
	}

	// Снимки и сохраненные анализы
	snapshots := secured.Group("/snapshots")
	{
		snapshots.POST("", h.submitSnapshot)
		snapshots.GET("", h.listHistory)
		snapshots.GET("/:id", h.getSnapshot)
		snapshots.DELETE("/:id", RequireRole(RoleAdmin), h.deleteSnapshot)
	}

	// Анализ без сохранения
	analysis := secured.Group("/analysis")
	{
		analysis.POST("/quick-check", h.quickCheck)
		analysis.POST("/full", h.fullAnalysis)
	}

	secured.GET("/demo/snapshot", h.demoSnapshot)

	// Поток тревог высокого риска (WebSocket)
	secured.GET("/alerts/stream", h.streamAlerts)
}
