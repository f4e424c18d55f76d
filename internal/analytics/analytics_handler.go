package analytics

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/buildsbyrafael/datapersistence/internal/shared/apperror"
	"github.com/buildsbyrafael/datapersistence/internal/shared/contextutil"
	"github.com/buildsbyrafael/datapersistence/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const csvCacheTTL = 10 * time.Minute

type Handler struct {
	service Service
	cache   *redis.Client
	group   singleflight.Group
}

// NewHandler wires the analytics endpoints. cache may be nil; the rendered
// statistics CSV is then rebuilt on every request.
func NewHandler(service Service, cache *redis.Client) *Handler {
	return &Handler{service: service, cache: cache}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"mensagem":  "Serviço de analytics operacional",
		"timestamp": time.Now().Format(time.RFC3339),
	}, nil)
}

func (h *Handler) ResumoGeral(c *gin.Context) {
	ano, ok := h.yearParam(c, "ano")
	if !ok {
		return
	}

	resumo, err := h.service.ResumoGeral(c.Request.Context(), ano)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resumo, nil)
}

func (h *Handler) Insights(c *gin.Context) {
	ano, ok := h.yearParam(c, "ano")
	if !ok {
		return
	}

	insights, err := h.service.Insights(c.Request.Context(), ano)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, insights, nil)
}

// RelatorioCompleto collapses concurrent requests for the same year into a
// single engine run. The flight runs on a detached context: it serves
// piggybacked callers too, so the first caller disconnecting must not
// cancel it.
func (h *Handler) RelatorioCompleto(c *gin.Context) {
	ano, ok := h.yearParam(c, "ano")
	if !ok {
		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	resultado, err, _ := h.group.Do(fmt.Sprintf("relatorio:%d", ano), func() (interface{}, error) {
		return h.service.RelatorioCompleto(ctx, ano)
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resultado.(RelatorioCompleto), nil)
}

func (h *Handler) Comparativo(c *gin.Context) {
	ano1, ok := h.yearParam(c, "ano1")
	if !ok {
		return
	}
	ano2, ok := h.yearParam(c, "ano2")
	if !ok {
		return
	}

	comparativo, err := h.service.Comparativo(c.Request.Context(), ano1, ano2)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comparativo, nil)
}

func (h *Handler) EstatisticasCSV(c *gin.Context) {
	ctx := c.Request.Context()
	logger := contextutil.GetLogger(ctx)

	ano, ok := h.yearParam(c, "ano")
	if !ok {
		return
	}
	agruparPor := c.DefaultQuery("agrupar_por", GroupByCargo)
	incluirDetalhes := c.DefaultQuery("incluir_detalhes", "true") == "true"

	cacheKey := fmt.Sprintf("analytics:estatisticas:%d:%s:%t", ano, agruparPor, incluirDetalhes)
	if h.cache != nil {
		if cached, err := h.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			h.writeCSV(c, ano, agruparPor, cached)
			return
		}
	}

	estatisticas, err := h.service.Estatisticas(ctx, ano, agruparPor, incluirDetalhes)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	payload, err := RenderEstatisticasCSV(estatisticas)
	if err != nil {
		h.writeServiceError(c, apperror.Wrap(err, apperror.CodeReportError, "report generation error", http.StatusInternalServerError))
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, cacheKey, payload, csvCacheTTL).Err(); err != nil {
			logger.Warn("statistics csv cache write failed", zap.Error(err))
		}
	}

	h.writeCSV(c, ano, agruparPor, payload)
}

func (h *Handler) Excel(c *gin.Context) {
	ano, ok := h.yearParam(c, "ano")
	if !ok {
		return
	}

	relatorio, err := h.service.RelatorioCompleto(c.Request.Context(), ano)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	payload, err := RenderExcel(relatorio)
	if err != nil {
		h.writeServiceError(c, apperror.Wrap(err, apperror.CodeReportError, "report generation error", http.StatusInternalServerError))
		return
	}

	nome := fmt.Sprintf("relatorio_servidores_%d_%s.xlsx", ano, time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", nome))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", payload)
}

func (h *Handler) writeCSV(c *gin.Context, ano int, agruparPor string, payload []byte) {
	nome := fmt.Sprintf("estatisticas_servidores_%d_%s_%s.csv", ano, agruparPor, time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", nome))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", payload)
}

func (h *Handler) yearParam(c *gin.Context, nome string) (int, bool) {
	ano, err := strconv.Atoi(c.Param(nome))
	if err != nil || ano < 1900 || ano > 2100 {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
			fmt.Sprintf("ano inválido: %s", c.Param(nome)), nil)
		return 0, false
	}
	return ano, true
}
