package role

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	cargos := r.Group("/cargosfuncoes")
	{
		cargos.PUT("/importar", handler.ImportCatalog)
		cargos.GET("", handler.GetCatalog)
	}

	vinculos := r.Group("/funcoescargos")
	{
		vinculos.PUT("/importar", handler.ImportAssignments)
		vinculos.GET("", handler.GetAssignments)
	}
}
