package analytics

import "context"

type ChartType string

const (
	ChartEvolucaoMensal     ChartType = "evolucao_remuneracao_mensal"
	ChartRemuneracaoCargo   ChartType = "remuneracao_por_cargo"
	ChartAfastamentosMes    ChartType = "afastamentos_por_mes"
	ChartDistribuicaoOrgs   ChartType = "distribuicao_organizacional"
	ChartRemuneracaoVsDias  ChartType = "remuneracao_vs_afastamentos"
)

type ChartPoint struct {
	Rotulo string  `json:"rotulo,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Chart is the numeric series handed to the rendering collaborator. The
// dual-panel absence chart carries its second series in SerieSecundaria.
type Chart struct {
	Tipo            ChartType    `json:"tipo"`
	Titulo          string       `json:"titulo"`
	Serie           []ChartPoint `json:"serie"`
	SerieSecundaria []ChartPoint `json:"serie_secundaria,omitempty"`
}

// ChartRenderer turns a computed series into an artifact and returns its
// name. The engine's responsibility ends at producing the series.
type ChartRenderer interface {
	Render(ctx context.Context, chart Chart) (string, error)
}

type noopChartRenderer struct{}

// NewNoopChartRenderer names the artifact without rendering anything,
// for deployments without a plotting sidecar.
func NewNoopChartRenderer() ChartRenderer {
	return noopChartRenderer{}
}

func (noopChartRenderer) Render(_ context.Context, chart Chart) (string, error) {
	return string(chart.Tipo) + ".png", nil
}
