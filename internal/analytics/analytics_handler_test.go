package analytics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	relatorioFn func(ctx context.Context, ano int) (RelatorioCompleto, error)
}

func (f *fakeService) ResumoGeral(ctx context.Context, ano int) (ResumoGeral, error) {
	return ResumoGeral{}, nil
}
func (f *fakeService) Insights(ctx context.Context, ano int) ([]Insight, error) {
	return nil, nil
}
func (f *fakeService) RelatorioCompleto(ctx context.Context, ano int) (RelatorioCompleto, error) {
	return f.relatorioFn(ctx, ano)
}
func (f *fakeService) Comparativo(ctx context.Context, ano1, ano2 int) (Comparativo, error) {
	return Comparativo{}, nil
}
func (f *fakeService) Estatisticas(ctx context.Context, ano int, agruparPor string, incluirDetalhes bool) (Estatisticas, error) {
	return Estatisticas{}, nil
}

func TestRelatorioCompleto_SurvivesCallerCancellation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		relatorioFn: func(ctx context.Context, ano int) (RelatorioCompleto, error) {
			// The flight serves piggybacked callers; the triggering caller's
			// cancellation must not reach it.
			if err := ctx.Err(); err != nil {
				return RelatorioCompleto{}, err
			}
			return RelatorioCompleto{Periodo: strconv.Itoa(ano)}, nil
		},
	}

	router := gin.New()
	handler := NewHandler(svc, nil)
	router.GET("/analytics/relatorio/:ano", handler.RelatorioCompleto)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/analytics/relatorio/2023", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2023")
}

func TestYearParam_RejectsOutOfRange(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		relatorioFn: func(ctx context.Context, ano int) (RelatorioCompleto, error) {
			t.Fatal("service should not be reached")
			return RelatorioCompleto{}, nil
		},
	}

	router := gin.New()
	handler := NewHandler(svc, nil)
	router.GET("/analytics/relatorio/:ano", handler.RelatorioCompleto)

	for _, ano := range []string{"1899", "2101", "abc"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/analytics/relatorio/"+ano, nil)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "ano %s", ano)
	}
}
