package role

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

func (h *Handler) ImportCatalog(c *gin.Context) {
	total, err := h.service.ImportCatalog(c.Request.Context(), c.Request.Body)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"processados": total,
		"mensagem":    fmt.Sprintf("%d cargos/funções importados com sucesso!", total),
	}, nil)
}

func (h *Handler) ImportAssignments(c *gin.Context) {
	total, err := h.service.ImportAssignments(c.Request.Context(), c.Request.Body)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"processados": total,
		"mensagem":    fmt.Sprintf("%d vínculos importados com sucesso!", total),
	}, nil)
}

func (h *Handler) GetCatalog(c *gin.Context) {
	page, pageSize := pagination(c)

	resp, total, err := h.service.GetCatalog(c.Request.Context(), page, pageSize)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetAssignments(c *gin.Context) {
	page, pageSize := pagination(c)
	servidorID, _ := strconv.ParseInt(c.Query("id_servidor"), 10, 64)

	resp, total, err := h.service.GetAssignments(c.Request.Context(), servidorID, page, pageSize)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}
	return page, pageSize
}
