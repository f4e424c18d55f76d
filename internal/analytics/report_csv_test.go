package analytics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderEstatisticasCSV_SectionOrderAndFormatting(t *testing.T) {
	moda := 5000.0
	bundle := Estatisticas{
		Ano:        2023,
		AgruparPor: GroupByCargo,
		GeradoEm:   time.Date(2023, 12, 1, 10, 30, 0, 0, time.UTC),
		ResumoExecutivo: ResumoExecutivo{
			ServidoresAtivos: 80,
			TotalRegistros:   960,
			TotalRemuneracao: 1234567.89,
			MediaRemuneracao: 1285.59,
		},
		Descritivas: &EstatisticasDescritivas{
			MediaRemuneracao:   1285.59,
			MedianaRemuneracao: 1200,
			ModaRemuneracao:    &moda,
		},
		Percentis: []Percentil{{Rotulo: "P10", Valor: 800}},
		PorGrupo: []GrupoEstatistica{
			{Grupo: "ANALISTA", ServidoresUnicos: 10, MediaRemuneracao: 4500.5, AmplitudeSalarial: 6000},
		},
		Detalhes: []DetalheRemuneracao{
			{IDServidor: 1, NomeServidor: "Maria", Cargo: "ANALISTA", Orgao: "ORG", Mes: 3, RemuneracaoFinal: 9000, Ano: 2023},
		},
		Correlacoes: []Correlacao{
			{Variavel1: "Remuneração", Variavel2: "Mês", Coeficiente: 0.1234, Interpretacao: "Correlação muito fraca positiva"},
		},
		TotalRegistros: 960,
	}

	payload, err := RenderEstatisticasCSV(bundle)
	assert.NoError(t, err)
	texto := string(payload)

	sections := []string{
		"RELATÓRIO ESTATÍSTICO - SERVIDORES PÚBLICOS - ANO 2023",
		"RESUMO EXECUTIVO",
		"ESTATÍSTICAS DESCRITIVAS",
		"ANÁLISE POR CARGO",
		"ANÁLISE DE QUARTIS E PERCENTIS",
		"DADOS DETALHADOS",
		"ANÁLISE DE CORRELAÇÕES",
		"OBSERVAÇÕES E METODOLOGIA",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(texto, section)
		assert.GreaterOrEqual(t, idx, 0, "missing section %q", section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}

	// Brazilian number formatting with currency prefix on monetary fields.
	assert.Contains(t, texto, "1.234.567,89")
	assert.Contains(t, texto, "R$ 1.285,59")
	assert.Contains(t, texto, "R$ 5.000,00")
	assert.Contains(t, texto, "0.1234")
	assert.Contains(t, texto, "Total de registros analisados: 960")
}

func TestRenderEstatisticasCSV_ModeNotApplicable(t *testing.T) {
	bundle := Estatisticas{
		Ano:         2023,
		AgruparPor:  GroupByMes,
		GeradoEm:    time.Now(),
		Descritivas: &EstatisticasDescritivas{},
	}

	payload, err := RenderEstatisticasCSV(bundle)
	assert.NoError(t, err)
	assert.Contains(t, string(payload), "Moda Remuneração;N/A")
}
