package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeRepo answers every aggregate from plain fields, so each test arranges
// just the data its scenario needs.
type fakeRepo struct {
	totalServidores int64
	ativos          map[int]int64
	soma            map[int]float64
	media           map[int]float64
	payStats        payStatsRow
	top             []topPayRow
	porCargo        []payByRoleRow
	topCargos       []payByRoleRow
	afastamentos    int64
	dias            int64
	topAfastados    []absenceByServantRow
	porMes          []absenceByMonthRow
	distribuicoes   map[string][]distributionRow
	mensal          []monthlyPayRow
	scatter         []scatterRow
	resumoExec      executiveSummaryRow
	valores         []float64
	grupos          []groupStatsRow
	detalhes        []detailRow
	corrRows        []correlationRow
}

func (f *fakeRepo) CountServidores(context.Context) (int64, error) { return f.totalServidores, nil }
func (f *fakeRepo) CountServidoresAtivos(_ context.Context, ano int) (int64, error) {
	return f.ativos[ano], nil
}
func (f *fakeRepo) SomaRemuneracao(_ context.Context, ano int) (float64, error) {
	return f.soma[ano], nil
}
func (f *fakeRepo) MediaRemuneracao(_ context.Context, ano int) (float64, error) {
	return f.media[ano], nil
}
func (f *fakeRepo) PayStats(context.Context, int) (payStatsRow, error) { return f.payStats, nil }
func (f *fakeRepo) TopRemuneracoes(context.Context, int, int) ([]topPayRow, error) {
	return f.top, nil
}
func (f *fakeRepo) RemuneracaoPorCargo(context.Context, int) ([]payByRoleRow, error) {
	return f.porCargo, nil
}
func (f *fakeRepo) TopCargosPorMedia(context.Context, int, int, int) ([]payByRoleRow, error) {
	return f.topCargos, nil
}
func (f *fakeRepo) CountAfastamentos(context.Context, int) (int64, error) {
	return f.afastamentos, nil
}
func (f *fakeRepo) SomaDiasAfastamento(context.Context, int) (int64, error) { return f.dias, nil }
func (f *fakeRepo) TopAfastamentos(context.Context, int, int) ([]absenceByServantRow, error) {
	return f.topAfastados, nil
}
func (f *fakeRepo) AfastamentosPorMes(context.Context, int) ([]absenceByMonthRow, error) {
	return f.porMes, nil
}
func (f *fakeRepo) Distribuicao(_ context.Context, dimensao string, _ int) ([]distributionRow, error) {
	return f.distribuicoes[dimensao], nil
}
func (f *fakeRepo) EvolucaoMensal(context.Context, int) ([]monthlyPayRow, error) {
	return f.mensal, nil
}
func (f *fakeRepo) RemuneracaoVsAfastamentos(context.Context, int) ([]scatterRow, error) {
	return f.scatter, nil
}
func (f *fakeRepo) ResumoExecutivo(context.Context, int) (executiveSummaryRow, error) {
	return f.resumoExec, nil
}
func (f *fakeRepo) ValoresRemuneracao(context.Context, int) ([]float64, error) {
	return f.valores, nil
}
func (f *fakeRepo) AnalisePorGrupo(context.Context, int, string, int) ([]groupStatsRow, error) {
	return f.grupos, nil
}
func (f *fakeRepo) DadosDetalhados(context.Context, int, int) ([]detailRow, error) {
	return f.detalhes, nil
}
func (f *fakeRepo) LinhasCorrelacao(context.Context, int, int) ([]correlationRow, error) {
	return f.corrRows, nil
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		ativos:        map[int]int64{},
		soma:          map[int]float64{},
		media:         map[int]float64{},
		distribuicoes: map[string][]distributionRow{},
	}
}

func TestRelatorioCompleto_DisparityInsight(t *testing.T) {
	repo := newFakeRepo()
	repo.totalServidores = 100
	repo.ativos[2023] = 80
	repo.payStats = payStatsRow{Minima: 1500, Maxima: 9000, Media: 4000, TotalRegistros: 960}

	svc := NewService(repo, NewNoopChartRenderer())
	relatorio, err := svc.RelatorioCompleto(context.Background(), 2023)

	assert.NoError(t, err)

	var disparidade *Insight
	for i := range relatorio.Insights {
		if relatorio.Insights[i].Titulo == "Disparidade Salarial" {
			disparidade = &relatorio.Insights[i]
		}
	}
	if assert.NotNil(t, disparidade) {
		assert.Equal(t, "6.0x", disparidade.Valor)
		assert.Contains(t, disparidade.Descricao, "6.0")
	}
}

func TestRelatorioCompleto_NoDisparityInsightWhenMinIsZero(t *testing.T) {
	repo := newFakeRepo()
	repo.payStats = payStatsRow{Minima: 0, Maxima: 9000}

	svc := NewService(repo, NewNoopChartRenderer())
	relatorio, err := svc.RelatorioCompleto(context.Background(), 2023)

	assert.NoError(t, err)
	for _, insight := range relatorio.Insights {
		assert.NotEqual(t, "Disparidade Salarial", insight.Titulo)
	}
}

func TestRelatorioCompleto_AbsenceRateZeroActive(t *testing.T) {
	repo := newFakeRepo()
	repo.afastamentos = 40

	svc := NewService(repo, NewNoopChartRenderer())
	relatorio, err := svc.RelatorioCompleto(context.Background(), 2023)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, relatorio.AnaliseAfastamentos.TaxaAfastamento)
}

func TestRelatorioCompleto_ChartArtifactsFromRenderer(t *testing.T) {
	repo := newFakeRepo()
	repo.mensal = []monthlyPayRow{{Mes: 1, Media: 5000, Quantidade: 10}}
	repo.porMes = []absenceByMonthRow{{Mes: 1, Quantidade: 2, TotalDias: 9}}
	repo.distribuicoes["org_superior"] = []distributionRow{{Categoria: "MINISTERIO X", Quantidade: 10}}

	svc := NewService(repo, NewNoopChartRenderer())
	relatorio, err := svc.RelatorioCompleto(context.Background(), 2023)

	assert.NoError(t, err)
	assert.Contains(t, relatorio.GraficosGerados, "evolucao_remuneracao_mensal.png")
	assert.Contains(t, relatorio.GraficosGerados, "afastamentos_por_mes.png")
	assert.Contains(t, relatorio.GraficosGerados, "distribuicao_organizacional.png")
	// The scatter needs at least 10 points and the role chart needs data.
	assert.NotContains(t, relatorio.GraficosGerados, "remuneracao_vs_afastamentos.png")
	assert.NotContains(t, relatorio.GraficosGerados, "remuneracao_por_cargo.png")
}

func TestComparativo_IndependentInsightsAndDeltas(t *testing.T) {
	repo := newFakeRepo()
	repo.totalServidores = 100
	repo.ativos[2022] = 50
	repo.ativos[2023] = 60
	repo.media[2022] = 4000
	repo.media[2023] = 5000

	svc := NewService(repo, NewNoopChartRenderer())
	comparativo, err := svc.Comparativo(context.Background(), 2022, 2023)

	assert.NoError(t, err)
	assert.Equal(t, "2022 vs 2023", comparativo.PeriodoComparacao)
	assert.Equal(t, int64(10), comparativo.ResumoComparativo.DiferencaServidoresAtivos)
	assert.Equal(t, 1000.0, comparativo.ResumoComparativo.DiferencaRemuneracaoMedia)
	assert.Equal(t, 25.0, comparativo.ResumoComparativo.PercentualVariacaoRemuneracao)
}

func TestComparativo_ZeroBaselineMeanYieldsZeroVariation(t *testing.T) {
	repo := newFakeRepo()
	repo.media[2023] = 5000

	svc := NewService(repo, NewNoopChartRenderer())
	comparativo, err := svc.Comparativo(context.Background(), 2022, 2023)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, comparativo.ResumoComparativo.PercentualVariacaoRemuneracao)
}

func TestEstatisticas_InvalidGroupBy(t *testing.T) {
	svc := NewService(newFakeRepo(), NewNoopChartRenderer())
	_, err := svc.Estatisticas(context.Background(), 2023, "departamento", false)
	assert.Error(t, err)
}

func TestEstatisticas_DescriptivesAndPercentiles(t *testing.T) {
	repo := newFakeRepo()
	repo.resumoExec = executiveSummaryRow{ServidoresAtivos: 3, TotalRegistros: 10}
	repo.valores = []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

	svc := NewService(repo, NewNoopChartRenderer())
	estatisticas, err := svc.Estatisticas(context.Background(), 2023, GroupByCargo, false)

	assert.NoError(t, err)
	if assert.NotNil(t, estatisticas.Descritivas) {
		assert.Equal(t, 55.0, estatisticas.Descritivas.MediaRemuneracao)
		assert.Equal(t, 55.0, estatisticas.Descritivas.MedianaRemuneracao)
		assert.Nil(t, estatisticas.Descritivas.ModaRemuneracao)
		assert.Equal(t, 90.0, estatisticas.Descritivas.Amplitude)
	}

	if assert.Len(t, estatisticas.Percentis, 7) {
		assert.Equal(t, "Q2 (P50 - Mediana)", estatisticas.Percentis[2].Rotulo)
		assert.Equal(t, 55.0, estatisticas.Percentis[2].Valor)
	}

	assert.Empty(t, estatisticas.Detalhes)
	assert.Empty(t, estatisticas.Correlacoes)
}

func TestEstatisticas_CorrelationsRequireTenRows(t *testing.T) {
	repo := newFakeRepo()
	repo.resumoExec = executiveSummaryRow{TotalRegistros: 5}
	repo.valores = []float64{1, 2, 3}
	repo.corrRows = []correlationRow{
		{RemuneracaoFinal: 1000, Mes: 1}, {RemuneracaoFinal: 2000, Mes: 2},
	}

	svc := NewService(repo, NewNoopChartRenderer())
	estatisticas, err := svc.Estatisticas(context.Background(), 2023, GroupByMes, false)

	assert.NoError(t, err)
	assert.Empty(t, estatisticas.Correlacoes)
}

func TestEstatisticas_Correlations(t *testing.T) {
	repo := newFakeRepo()
	repo.resumoExec = executiveSummaryRow{TotalRegistros: 12}
	repo.valores = []float64{1, 2, 3}
	rows := make([]correlationRow, 12)
	for i := range rows {
		rows[i] = correlationRow{
			RemuneracaoFinal:  float64(1000 * (i + 1)),
			Mes:               i + 1,
			TotalAfastamentos: 0,
		}
	}
	repo.corrRows = rows

	svc := NewService(repo, NewNoopChartRenderer())
	estatisticas, err := svc.Estatisticas(context.Background(), 2023, GroupByMes, false)

	assert.NoError(t, err)
	// Pay grows with month, so the month pair is perfectly positive; the
	// absence column is constant and its pair is omitted.
	if assert.Len(t, estatisticas.Correlacoes, 1) {
		assert.Equal(t, "Mês", estatisticas.Correlacoes[0].Variavel2)
		assert.InDelta(t, 1.0, estatisticas.Correlacoes[0].Coeficiente, 0.0001)
		assert.Equal(t, "Correlação muito forte positiva", estatisticas.Correlacoes[0].Interpretacao)
	}
}

func TestEstatisticas_GroupAmplitude(t *testing.T) {
	repo := newFakeRepo()
	repo.resumoExec = executiveSummaryRow{TotalRegistros: 1}
	repo.valores = []float64{100}
	repo.grupos = []groupStatsRow{
		{Grupo: "ANALISTA", MenorRemuneracao: 3000, MaiorRemuneracao: 9000},
		{Grupo: ""},
	}

	svc := NewService(repo, NewNoopChartRenderer())
	estatisticas, err := svc.Estatisticas(context.Background(), 2023, GroupByCargo, false)

	assert.NoError(t, err)
	if assert.Len(t, estatisticas.PorGrupo, 2) {
		assert.Equal(t, 6000.0, estatisticas.PorGrupo[0].AmplitudeSalarial)
		assert.Equal(t, "N/A", estatisticas.PorGrupo[1].Grupo)
	}
}
