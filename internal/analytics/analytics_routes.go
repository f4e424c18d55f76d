package analytics

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	analytics := r.Group("/analytics")
	{
		analytics.GET("/health", handler.Health)
		analytics.GET("/resumo/:ano", handler.ResumoGeral)
		analytics.GET("/insights/:ano", handler.Insights)
		analytics.GET("/relatorio/:ano", handler.RelatorioCompleto)
		analytics.GET("/comparativo/:ano1/:ano2", handler.Comparativo)
		analytics.GET("/estatisticas/:ano", handler.EstatisticasCSV)
		analytics.GET("/excel/:ano", handler.Excel)
	}
}
