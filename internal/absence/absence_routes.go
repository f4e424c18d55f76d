package absence

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	afastamentos := r.Group("/afastamentos")
	{
		afastamentos.PUT("/importar", handler.Import)
		afastamentos.GET("", handler.GetAll)
	}
}
