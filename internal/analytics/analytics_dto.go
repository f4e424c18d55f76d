package analytics

import "time"

// Insight is a short human-readable derived statistic attached to a report.
type Insight struct {
	Tipo      string `json:"tipo"`
	Titulo    string `json:"titulo"`
	Valor     string `json:"valor"`
	Descricao string `json:"descricao"`
	Periodo   string `json:"periodo"`
}

type ResumoGeral struct {
	TotalServidores  int64   `json:"total_servidores"`
	ServidoresAtivos int64   `json:"servidores_ativos"`
	TotalRemuneracao float64 `json:"total_remuneracao"`
	MediaRemuneracao float64 `json:"media_remuneracao"`
	TaxaAtividade    float64 `json:"taxa_atividade"`
}

type EstatisticasRemuneracao struct {
	Minima         float64 `json:"minima"`
	Maxima         float64 `json:"maxima"`
	Media          float64 `json:"media"`
	TotalRegistros int64   `json:"total_registros"`
}

type TopRemuneracao struct {
	Nome       string  `json:"nome"`
	Cargo      string  `json:"cargo"`
	MediaAnual float64 `json:"media_anual"`
}

type RemuneracaoCargo struct {
	Cargo            string  `json:"cargo"`
	Quantidade       int64   `json:"quantidade"`
	MediaRemuneracao float64 `json:"media_remuneracao"`
}

type AnaliseRemuneracao struct {
	Estatisticas        EstatisticasRemuneracao `json:"estatisticas"`
	TopRemuneracoes     []TopRemuneracao        `json:"top_remuneracoes"`
	RemuneracaoPorCargo []RemuneracaoCargo      `json:"remuneracao_por_cargo"`
}

type ServidorAfastado struct {
	Nome         string `json:"nome"`
	Cargo        string `json:"cargo"`
	Afastamentos int64  `json:"afastamentos"`
	DiasTotal    int64  `json:"dias_total"`
}

type AfastamentoMes struct {
	Mes        int   `json:"mes"`
	Quantidade int64 `json:"quantidade"`
	TotalDias  int64 `json:"total_dias"`
}

type AnaliseAfastamentos struct {
	TotalAfastamentos       int64              `json:"total_afastamentos"`
	TotalDiasAfastamento    int64              `json:"total_dias_afastamento"`
	TaxaAfastamento         float64            `json:"taxa_afastamento"`
	ServidoresMaisAfastados []ServidorAfastado `json:"servidores_mais_afastados"`
	AfastamentosPorMes      []AfastamentoMes   `json:"afastamentos_por_mes"`
}

type Distribuicao struct {
	Categoria  string `json:"categoria"`
	Quantidade int64  `json:"quantidade"`
}

type DistribuicaoOrganizacional struct {
	PorOrgSuperior  []Distribuicao `json:"por_org_superior"`
	PorOrgExercicio []Distribuicao `json:"por_org_exercicio"`
	PorRegime       []Distribuicao `json:"por_regime"`
	PorJornada      []Distribuicao `json:"por_jornada"`
}

type RelatorioCompleto struct {
	Periodo                    string                     `json:"periodo"`
	DataGeracao                time.Time                  `json:"data_geracao"`
	ResumoGeral                ResumoGeral                `json:"resumo_geral"`
	AnaliseRemuneracao         AnaliseRemuneracao         `json:"analise_remuneracao"`
	AnaliseAfastamentos        AnaliseAfastamentos        `json:"analise_afastamentos"`
	DistribuicaoOrganizacional DistribuicaoOrganizacional `json:"distribuicao_organizacional"`
	Insights                   []Insight                  `json:"insights"`
	GraficosGerados            []string                   `json:"graficos_gerados"`
}

type ResumoComparativo struct {
	DiferencaServidoresAtivos     int64   `json:"diferenca_servidores_ativos"`
	DiferencaRemuneracaoMedia     float64 `json:"diferenca_remuneracao_media"`
	PercentualVariacaoRemuneracao float64 `json:"percentual_variacao_remuneracao"`
}

type ResumoAno struct {
	Ano    int         `json:"ano"`
	Resumo ResumoGeral `json:"resumo"`
}

type Comparativo struct {
	PeriodoComparacao string            `json:"periodo_comparacao"`
	ResumoComparativo ResumoComparativo `json:"resumo_comparativo"`
	Ano1              ResumoAno         `json:"ano1"`
	Ano2              ResumoAno         `json:"ano2"`
}

type ResumoExecutivo struct {
	ServidoresAtivos int64   `json:"servidores_ativos"`
	TotalRegistros   int64   `json:"total_registros"`
	TotalRemuneracao float64 `json:"total_remuneracao"`
	MediaRemuneracao float64 `json:"media_remuneracao"`
	MenorRemuneracao float64 `json:"menor_remuneracao"`
	MaiorRemuneracao float64 `json:"maior_remuneracao"`
}

// ModaRemuneracao is nil when no value repeats.
type EstatisticasDescritivas struct {
	MediaRemuneracao    float64  `json:"media_remuneracao"`
	MedianaRemuneracao  float64  `json:"mediana_remuneracao"`
	ModaRemuneracao     *float64 `json:"moda_remuneracao"`
	DesvioPadrao        float64  `json:"desvio_padrao"`
	Variancia           float64  `json:"variancia"`
	Amplitude           float64  `json:"amplitude"`
	CoeficienteVariacao float64  `json:"coeficiente_variacao"`
}

type Percentil struct {
	Rotulo string  `json:"rotulo"`
	Valor  float64 `json:"valor"`
}

type GrupoEstatistica struct {
	Grupo             string  `json:"grupo"`
	ServidoresUnicos  int64   `json:"servidores_unicos"`
	TotalRegistros    int64   `json:"total_registros"`
	MediaRemuneracao  float64 `json:"media_remuneracao"`
	MenorRemuneracao  float64 `json:"menor_remuneracao"`
	MaiorRemuneracao  float64 `json:"maior_remuneracao"`
	TotalRemuneracao  float64 `json:"total_remuneracao"`
	AmplitudeSalarial float64 `json:"amplitude_salarial"`
}

type DetalheRemuneracao struct {
	IDServidor       int64   `json:"id_servidor"`
	NomeServidor     string  `json:"nome_servidor"`
	Cargo            string  `json:"cargo"`
	Orgao            string  `json:"orgao"`
	Mes              int     `json:"mes"`
	RemuneracaoFinal float64 `json:"remuneracao_final"`
	Ano              int     `json:"ano"`
}

type Correlacao struct {
	Variavel1     string  `json:"variavel1"`
	Variavel2     string  `json:"variavel2"`
	Coeficiente   float64 `json:"coeficiente"`
	Interpretacao string  `json:"interpretacao"`
}

// Estatisticas is the full statistics bundle rendered to CSV. Descritivas
// and Percentis are absent when the year has no qualifying pay record.
type Estatisticas struct {
	Ano             int                      `json:"ano"`
	AgruparPor      string                   `json:"agrupar_por"`
	GeradoEm        time.Time                `json:"gerado_em"`
	ResumoExecutivo ResumoExecutivo          `json:"resumo_executivo"`
	Descritivas     *EstatisticasDescritivas `json:"estatisticas_descritivas,omitempty"`
	Percentis       []Percentil              `json:"quartis_percentis,omitempty"`
	PorGrupo        []GrupoEstatistica       `json:"analise_por_grupo"`
	Detalhes        []DetalheRemuneracao     `json:"dados_detalhados,omitempty"`
	Correlacoes     []Correlacao             `json:"correlacoes"`
	TotalRegistros  int64                    `json:"total_registros"`
}
