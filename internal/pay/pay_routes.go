package pay

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	remuneracoes := r.Group("/remuneracoes")
	{
		remuneracoes.PUT("/importar", handler.Import)
		remuneracoes.GET("", handler.GetAll)
	}
}
