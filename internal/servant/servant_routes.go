package servant

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	servidores := r.Group("/servidores")
	{
		servidores.PUT("/importar", handler.Import)
		servidores.GET("", handler.GetAll)
		servidores.GET("/:id", handler.GetByID)
		servidores.DELETE("/:id", handler.Delete)
	}
}
