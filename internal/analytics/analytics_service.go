package analytics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/buildsbyrafael/datapersistence/internal/shared/apperror"
	"github.com/buildsbyrafael/datapersistence/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	ResumoGeral(ctx context.Context, ano int) (ResumoGeral, error)
	Insights(ctx context.Context, ano int) ([]Insight, error)
	RelatorioCompleto(ctx context.Context, ano int) (RelatorioCompleto, error)
	Comparativo(ctx context.Context, ano1, ano2 int) (Comparativo, error)
	Estatisticas(ctx context.Context, ano int, agruparPor string, incluirDetalhes bool) (Estatisticas, error)
}

type service struct {
	repo     Repository
	renderer ChartRenderer
}

func NewService(repo Repository, renderer ChartRenderer) Service {
	return &service{repo: repo, renderer: renderer}
}

// reportRun accumulates the insights of one report generation. Each report
// gets its own run, so two reports over different years never share state.
type reportRun struct {
	insights []Insight
}

func (run *reportRun) add(tipo, titulo, valor, descricao string, ano int) {
	run.insights = append(run.insights, Insight{
		Tipo:      tipo,
		Titulo:    titulo,
		Valor:     valor,
		Descricao: descricao,
		Periodo:   fmt.Sprintf("%d", ano),
	})
}

func reportError(err error) error {
	return apperror.Wrap(err, apperror.CodeReportError, "report generation error", http.StatusInternalServerError)
}

func (s *service) ResumoGeral(ctx context.Context, ano int) (ResumoGeral, error) {
	run := &reportRun{}
	resumo, err := s.resumoGeral(ctx, ano, run)
	if err != nil {
		return ResumoGeral{}, reportError(err)
	}
	return resumo, nil
}

func (s *service) Insights(ctx context.Context, ano int) ([]Insight, error) {
	relatorio, err := s.RelatorioCompleto(ctx, ano)
	if err != nil {
		return nil, err
	}
	return relatorio.Insights, nil
}

func (s *service) RelatorioCompleto(ctx context.Context, ano int) (RelatorioCompleto, error) {
	run := &reportRun{}

	resumo, err := s.resumoGeral(ctx, ano, run)
	if err != nil {
		return RelatorioCompleto{}, reportError(err)
	}

	remuneracao, err := s.analiseRemuneracao(ctx, ano, run)
	if err != nil {
		return RelatorioCompleto{}, reportError(err)
	}

	afastamentos, err := s.analiseAfastamentos(ctx, ano, resumo.ServidoresAtivos, run)
	if err != nil {
		return RelatorioCompleto{}, reportError(err)
	}

	distribuicao, err := s.distribuicaoOrganizacional(ctx)
	if err != nil {
		return RelatorioCompleto{}, reportError(err)
	}

	return RelatorioCompleto{
		Periodo:                    fmt.Sprintf("Ano %d", ano),
		DataGeracao:                time.Now(),
		ResumoGeral:                resumo,
		AnaliseRemuneracao:         remuneracao,
		AnaliseAfastamentos:        afastamentos,
		DistribuicaoOrganizacional: distribuicao,
		Insights:                   run.insights,
		GraficosGerados:            s.gerarGraficos(ctx, ano),
	}, nil
}

// Comparativo builds two independent yearly reports and derives the deltas.
// When the first year has a zero mean pay the percentage variation is
// reported as 0 instead of dividing by zero.
func (s *service) Comparativo(ctx context.Context, ano1, ano2 int) (Comparativo, error) {
	run1 := &reportRun{}
	resumo1, err := s.resumoGeral(ctx, ano1, run1)
	if err != nil {
		return Comparativo{}, reportError(err)
	}

	run2 := &reportRun{}
	resumo2, err := s.resumoGeral(ctx, ano2, run2)
	if err != nil {
		return Comparativo{}, reportError(err)
	}

	diferencaServidores := resumo2.ServidoresAtivos - resumo1.ServidoresAtivos
	diferencaRemuneracao := resumo2.MediaRemuneracao - resumo1.MediaRemuneracao

	var percentual float64
	if resumo1.MediaRemuneracao != 0 {
		percentual = (diferencaRemuneracao / resumo1.MediaRemuneracao) * 100
	}

	return Comparativo{
		PeriodoComparacao: fmt.Sprintf("%d vs %d", ano1, ano2),
		ResumoComparativo: ResumoComparativo{
			DiferencaServidoresAtivos:     diferencaServidores,
			DiferencaRemuneracaoMedia:     round2(diferencaRemuneracao),
			PercentualVariacaoRemuneracao: round2(percentual),
		},
		Ano1: ResumoAno{Ano: ano1, Resumo: resumo1},
		Ano2: ResumoAno{Ano: ano2, Resumo: resumo2},
	}, nil
}

func (s *service) resumoGeral(ctx context.Context, ano int, run *reportRun) (ResumoGeral, error) {
	total, err := s.repo.CountServidores(ctx)
	if err != nil {
		return ResumoGeral{}, err
	}

	ativos, err := s.repo.CountServidoresAtivos(ctx, ano)
	if err != nil {
		return ResumoGeral{}, err
	}

	soma, err := s.repo.SomaRemuneracao(ctx, ano)
	if err != nil {
		return ResumoGeral{}, err
	}

	media, err := s.repo.MediaRemuneracao(ctx, ano)
	if err != nil {
		return ResumoGeral{}, err
	}

	var taxa float64
	if total > 0 {
		taxa = float64(ativos) / float64(total) * 100
	}

	run.add("geral", "Total de Servidores Ativos",
		fmt.Sprintf("%d", ativos),
		fmt.Sprintf("De %d servidores cadastrados, %d estiveram ativos em %d", total, ativos, ano),
		ano,
	)

	return ResumoGeral{
		TotalServidores:  total,
		ServidoresAtivos: ativos,
		TotalRemuneracao: round2(soma),
		MediaRemuneracao: round2(media),
		TaxaAtividade:    round2(taxa),
	}, nil
}

func (s *service) analiseRemuneracao(ctx context.Context, ano int, run *reportRun) (AnaliseRemuneracao, error) {
	stats, err := s.repo.PayStats(ctx, ano)
	if err != nil {
		return AnaliseRemuneracao{}, err
	}

	topRows, err := s.repo.TopRemuneracoes(ctx, ano, 10)
	if err != nil {
		return AnaliseRemuneracao{}, err
	}

	cargoRows, err := s.repo.RemuneracaoPorCargo(ctx, ano)
	if err != nil {
		return AnaliseRemuneracao{}, err
	}

	if stats.Maxima != 0 && stats.Minima > 0 {
		disparidade := stats.Maxima / stats.Minima
		run.add("remuneracao", "Disparidade Salarial",
			fmt.Sprintf("%.1fx", disparidade),
			fmt.Sprintf("A maior remuneração é %.1f vezes maior que a menor", disparidade),
			ano,
		)
	}

	top := make([]TopRemuneracao, len(topRows))
	for i, r := range topRows {
		top[i] = TopRemuneracao{Nome: r.Nome, Cargo: r.DescrCargo, MediaAnual: round2(r.MediaAnual)}
	}

	porCargo := make([]RemuneracaoCargo, len(cargoRows))
	for i, r := range cargoRows {
		porCargo[i] = RemuneracaoCargo{Cargo: r.DescrCargo, Quantidade: r.Quantidade, MediaRemuneracao: round2(r.MediaRemuneracao)}
	}

	return AnaliseRemuneracao{
		Estatisticas: EstatisticasRemuneracao{
			Minima:         round2(stats.Minima),
			Maxima:         round2(stats.Maxima),
			Media:          round2(stats.Media),
			TotalRegistros: stats.TotalRegistros,
		},
		TopRemuneracoes:     top,
		RemuneracaoPorCargo: porCargo,
	}, nil
}

func (s *service) analiseAfastamentos(ctx context.Context, ano int, ativos int64, run *reportRun) (AnaliseAfastamentos, error) {
	total, err := s.repo.CountAfastamentos(ctx, ano)
	if err != nil {
		return AnaliseAfastamentos{}, err
	}

	dias, err := s.repo.SomaDiasAfastamento(ctx, ano)
	if err != nil {
		return AnaliseAfastamentos{}, err
	}

	topRows, err := s.repo.TopAfastamentos(ctx, ano, 10)
	if err != nil {
		return AnaliseAfastamentos{}, err
	}

	mesRows, err := s.repo.AfastamentosPorMes(ctx, ano)
	if err != nil {
		return AnaliseAfastamentos{}, err
	}

	var taxa float64
	if ativos > 0 {
		taxa = float64(total) / float64(ativos) * 100
	}

	run.add("afastamento", "Taxa de Afastamento",
		fmt.Sprintf("%.1f%%", taxa),
		"Taxa de afastamentos em relação aos servidores ativos",
		ano,
	)

	maisAfastados := make([]ServidorAfastado, len(topRows))
	for i, r := range topRows {
		maisAfastados[i] = ServidorAfastado{
			Nome:         r.Nome,
			Cargo:        r.DescrCargo,
			Afastamentos: r.TotalAfastamentos,
			DiasTotal:    r.TotalDias,
		}
	}

	porMes := make([]AfastamentoMes, len(mesRows))
	for i, r := range mesRows {
		porMes[i] = AfastamentoMes{Mes: r.Mes, Quantidade: r.Quantidade, TotalDias: r.TotalDias}
	}

	return AnaliseAfastamentos{
		TotalAfastamentos:       total,
		TotalDiasAfastamento:    dias,
		TaxaAfastamento:         round2(taxa),
		ServidoresMaisAfastados: maisAfastados,
		AfastamentosPorMes:      porMes,
	}, nil
}

func (s *service) distribuicaoOrganizacional(ctx context.Context) (DistribuicaoOrganizacional, error) {
	type dimensao struct {
		coluna string
		limit  int
		dest   *[]Distribuicao
	}

	var dist DistribuicaoOrganizacional
	dimensoes := []dimensao{
		{"org_superior", 0, &dist.PorOrgSuperior},
		{"org_exercicio", 15, &dist.PorOrgExercicio},
		{"regime", 0, &dist.PorRegime},
		{"jornada_trabalho", 0, &dist.PorJornada},
	}

	for _, d := range dimensoes {
		rows, err := s.repo.Distribuicao(ctx, d.coluna, d.limit)
		if err != nil {
			return DistribuicaoOrganizacional{}, err
		}
		out := make([]Distribuicao, len(rows))
		for i, r := range rows {
			out[i] = Distribuicao{Categoria: r.Categoria, Quantidade: r.Quantidade}
		}
		*d.dest = out
	}

	return dist, nil
}

// gerarGraficos computes the series for the five fixed chart types and hands
// them to the renderer. A chart that cannot be built is skipped with a log
// line; the report carries whatever artifacts succeeded.
func (s *service) gerarGraficos(ctx context.Context, ano int) []string {
	logger := contextutil.GetLogger(ctx)
	gerados := make([]string, 0, 5)

	render := func(chart Chart) {
		nome, err := s.renderer.Render(ctx, chart)
		if err != nil {
			logger.Error("chart render failed", zap.String("tipo", string(chart.Tipo)), zap.Error(err))
			return
		}
		gerados = append(gerados, nome)
	}

	if mensal, err := s.repo.EvolucaoMensal(ctx, ano); err != nil {
		logger.Error("monthly pay series failed", zap.Error(err))
	} else if len(mensal) > 0 {
		serie := make([]ChartPoint, len(mensal))
		for i, m := range mensal {
			serie[i] = ChartPoint{X: float64(m.Mes), Y: m.Media}
		}
		render(Chart{
			Tipo:   ChartEvolucaoMensal,
			Titulo: fmt.Sprintf("Evolução da Remuneração Média Mensal - %d", ano),
			Serie:  serie,
		})
	}

	if cargos, err := s.repo.TopCargosPorMedia(ctx, ano, 5, 10); err != nil {
		logger.Error("pay by role series failed", zap.Error(err))
	} else if len(cargos) > 0 {
		serie := make([]ChartPoint, len(cargos))
		for i, c := range cargos {
			serie[i] = ChartPoint{Rotulo: c.DescrCargo, Y: c.MediaRemuneracao}
		}
		render(Chart{
			Tipo:   ChartRemuneracaoCargo,
			Titulo: "Top 10 Cargos - Remuneração Média",
			Serie:  serie,
		})
	}

	if meses, err := s.repo.AfastamentosPorMes(ctx, ano); err != nil {
		logger.Error("absence by month series failed", zap.Error(err))
	} else if len(meses) > 0 {
		quantidade := make([]ChartPoint, len(meses))
		dias := make([]ChartPoint, len(meses))
		for i, m := range meses {
			quantidade[i] = ChartPoint{X: float64(m.Mes), Y: float64(m.Quantidade)}
			dias[i] = ChartPoint{X: float64(m.Mes), Y: float64(m.TotalDias)}
		}
		render(Chart{
			Tipo:            ChartAfastamentosMes,
			Titulo:          fmt.Sprintf("Afastamentos por Mês - %d", ano),
			Serie:           quantidade,
			SerieSecundaria: dias,
		})
	}

	if orgaos, err := s.repo.Distribuicao(ctx, "org_superior", 10); err != nil {
		logger.Error("org distribution series failed", zap.Error(err))
	} else if len(orgaos) > 0 {
		serie := make([]ChartPoint, len(orgaos))
		for i, o := range orgaos {
			serie[i] = ChartPoint{Rotulo: o.Categoria, Y: float64(o.Quantidade)}
		}
		render(Chart{
			Tipo:   ChartDistribuicaoOrgs,
			Titulo: "Distribuição de Servidores por Órgão Superior",
			Serie:  serie,
		})
	}

	if pontos, err := s.repo.RemuneracaoVsAfastamentos(ctx, ano); err != nil {
		logger.Error("pay vs absence series failed", zap.Error(err))
	} else if len(pontos) >= 10 {
		serie := make([]ChartPoint, len(pontos))
		for i, p := range pontos {
			serie[i] = ChartPoint{X: p.MediaRemuneracao, Y: float64(p.TotalDias)}
		}
		render(Chart{
			Tipo:   ChartRemuneracaoVsDias,
			Titulo: "Relação entre Remuneração e Dias de Afastamento",
			Serie:  serie,
		})
	}

	return gerados
}

// Estatisticas computes the full statistics bundle for a year and grouping
// dimension. Correlation failures never fail the bundle; the list comes
// back empty instead.
func (s *service) Estatisticas(ctx context.Context, ano int, agruparPor string, incluirDetalhes bool) (Estatisticas, error) {
	if !ValidGroupBy(agruparPor) {
		return Estatisticas{}, apperror.New(
			apperror.CodeInvalidInput,
			fmt.Sprintf("agrupamento inválido: %s (use: cargo, orgao, mes, servidor)", agruparPor),
			http.StatusBadRequest,
		)
	}

	resumo, err := s.repo.ResumoExecutivo(ctx, ano)
	if err != nil {
		return Estatisticas{}, reportError(err)
	}

	resultado := Estatisticas{
		Ano:        ano,
		AgruparPor: agruparPor,
		GeradoEm:   time.Now(),
		ResumoExecutivo: ResumoExecutivo{
			ServidoresAtivos: resumo.ServidoresAtivos,
			TotalRegistros:   resumo.TotalRegistros,
			TotalRemuneracao: resumo.TotalRemuneracao,
			MediaRemuneracao: resumo.MediaRemuneracao,
			MenorRemuneracao: resumo.MenorRemuneracao,
			MaiorRemuneracao: resumo.MaiorRemuneracao,
		},
		TotalRegistros: resumo.TotalRegistros,
	}

	if resumo.TotalRegistros > 0 {
		valores, err := s.repo.ValoresRemuneracao(ctx, ano)
		if err != nil {
			return Estatisticas{}, reportError(err)
		}
		if len(valores) > 0 {
			descritivas := EstatisticasDescritivas{
				MediaRemuneracao:    mean(valores),
				MedianaRemuneracao:  median(valores),
				DesvioPadrao:        stdDev(valores),
				Variancia:           variance(valores),
				Amplitude:           valores[len(valores)-1] - valores[0],
				CoeficienteVariacao: coefVariation(valores),
			}
			if moda, ok := mode(valores); ok {
				descritivas.ModaRemuneracao = &moda
			}
			resultado.Descritivas = &descritivas

			resultado.Percentis = []Percentil{
				{Rotulo: "P10", Valor: percentile(valores, 10)},
				{Rotulo: "Q1 (P25)", Valor: percentile(valores, 25)},
				{Rotulo: "Q2 (P50 - Mediana)", Valor: percentile(valores, 50)},
				{Rotulo: "Q3 (P75)", Valor: percentile(valores, 75)},
				{Rotulo: "P90", Valor: percentile(valores, 90)},
				{Rotulo: "P95", Valor: percentile(valores, 95)},
				{Rotulo: "P99", Valor: percentile(valores, 99)},
			}
		}
	}

	grupos, err := s.repo.AnalisePorGrupo(ctx, ano, agruparPor, 50)
	if err != nil {
		return Estatisticas{}, reportError(err)
	}
	resultado.PorGrupo = make([]GrupoEstatistica, len(grupos))
	for i, g := range grupos {
		grupo := g.Grupo
		if grupo == "" {
			grupo = "N/A"
		}
		resultado.PorGrupo[i] = GrupoEstatistica{
			Grupo:             grupo,
			ServidoresUnicos:  g.ServidoresUnicos,
			TotalRegistros:    g.TotalRegistros,
			MediaRemuneracao:  g.MediaRemuneracao,
			MenorRemuneracao:  g.MenorRemuneracao,
			MaiorRemuneracao:  g.MaiorRemuneracao,
			TotalRemuneracao:  g.TotalRemuneracao,
			AmplitudeSalarial: g.MaiorRemuneracao - g.MenorRemuneracao,
		}
	}

	if incluirDetalhes {
		detalhes, err := s.repo.DadosDetalhados(ctx, ano, 1000)
		if err != nil {
			return Estatisticas{}, reportError(err)
		}
		resultado.Detalhes = make([]DetalheRemuneracao, len(detalhes))
		for i, d := range detalhes {
			resultado.Detalhes[i] = DetalheRemuneracao{
				IDServidor:       d.IDServidor,
				NomeServidor:     orNA(d.Nome),
				Cargo:            orNA(d.DescrCargo),
				Orgao:            orNA(d.OrgExercicio),
				Mes:              d.Mes,
				RemuneracaoFinal: d.RemuneracaoFinal,
				Ano:              d.Ano,
			}
		}
	}

	resultado.Correlacoes = s.correlacoes(ctx, ano)

	return resultado, nil
}

func (s *service) correlacoes(ctx context.Context, ano int) []Correlacao {
	logger := contextutil.GetLogger(ctx)

	rows, err := s.repo.LinhasCorrelacao(ctx, ano, 500)
	if err != nil {
		logger.Error("correlation sample failed", zap.Error(err))
		return []Correlacao{}
	}
	if len(rows) < 10 {
		return []Correlacao{}
	}

	remuneracoes := make([]float64, len(rows))
	meses := make([]float64, len(rows))
	afastamentos := make([]float64, len(rows))
	for i, row := range rows {
		remuneracoes[i] = row.RemuneracaoFinal
		meses[i] = float64(row.Mes)
		afastamentos[i] = float64(row.TotalAfastamentos)
	}

	correlacoes := []Correlacao{}

	if distinct(meses) > 1 {
		if r, ok := pearson(remuneracoes, meses); ok {
			correlacoes = append(correlacoes, Correlacao{
				Variavel1:     "Remuneração",
				Variavel2:     "Mês",
				Coeficiente:   r,
				Interpretacao: interpretCorrelation(r),
			})
		}
	}

	if distinct(afastamentos) > 1 {
		if r, ok := pearson(remuneracoes, afastamentos); ok {
			correlacoes = append(correlacoes, Correlacao{
				Variavel1:     "Remuneração",
				Variavel2:     "Afastamentos",
				Coeficiente:   r,
				Interpretacao: interpretCorrelation(r),
			})
		}
	}

	return correlacoes
}

func distinct(valores []float64) int {
	set := make(map[float64]struct{}, len(valores))
	for _, v := range valores {
		set[v] = struct{}{}
	}
	return len(set)
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
