package pay

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/buildsbyrafael/datapersistence/internal/shared/apperror"
	"github.com/buildsbyrafael/datapersistence/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Import(c *gin.Context) {
	total, err := h.service.Import(c.Request.Context(), c.Request.Body)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"processados": total,
		"mensagem":    fmt.Sprintf("%d remunerações importadas com sucesso!", total),
	}, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	ano, _ := strconv.Atoi(c.Query("ano"))
	mes, _ := strconv.Atoi(c.Query("mes"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	registros, total, err := h.service.GetAll(c.Request.Context(), ano, mes, page, pageSize)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, registros, &meta)
}
