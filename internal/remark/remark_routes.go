package remark

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	observacoes := r.Group("/observacoes")
	{
		observacoes.PUT("/importar", handler.Import)
		observacoes.GET("", handler.GetAll)
	}
}
