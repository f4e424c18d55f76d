package analytics

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// brPrinter formats with comma as decimal separator and period as thousands
// separator, matching the spreadsheet locale of the consuming audience.
var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

func formatNumber(v float64) string {
	return brPrinter.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

func formatMoney(v float64) string {
	return "R$ " + formatNumber(v)
}

// RenderEstatisticasCSV serializes the statistics bundle as a sectioned,
// semicolon-delimited report. The leading BOM keeps Excel from guessing the
// encoding wrong.
func RenderEstatisticasCSV(e Estatisticas) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	write := func(campos ...string) {
		_ = w.Write(campos)
	}
	blank := func() {
		_ = w.Write([]string{""})
	}

	write(fmt.Sprintf("RELATÓRIO ESTATÍSTICO - SERVIDORES PÚBLICOS - ANO %d", e.Ano))
	write(fmt.Sprintf("Gerado em: %s", e.GeradoEm.Format("02/01/2006 às 15:04:05")))
	write(fmt.Sprintf("Agrupamento: %s", strings.ToUpper(e.AgruparPor)))
	blank()

	write("RESUMO EXECUTIVO")
	write("Servidores Ativos", fmt.Sprintf("%d", e.ResumoExecutivo.ServidoresAtivos))
	write("Total Registros", fmt.Sprintf("%d", e.ResumoExecutivo.TotalRegistros))
	write("Total Remuneração", formatNumber(e.ResumoExecutivo.TotalRemuneracao))
	write("Média Remuneração", formatNumber(e.ResumoExecutivo.MediaRemuneracao))
	write("Menor Remuneração", formatNumber(e.ResumoExecutivo.MenorRemuneracao))
	write("Maior Remuneração", formatNumber(e.ResumoExecutivo.MaiorRemuneracao))
	blank()

	if e.Descritivas != nil {
		d := e.Descritivas
		write("ESTATÍSTICAS DESCRITIVAS")
		write("Métrica", "Valor")
		write("Média Remuneração", formatMoney(d.MediaRemuneracao))
		write("Mediana Remuneração", formatMoney(d.MedianaRemuneracao))
		if d.ModaRemuneracao != nil {
			write("Moda Remuneração", formatMoney(*d.ModaRemuneracao))
		} else {
			write("Moda Remuneração", "N/A")
		}
		write("Desvio Padrão", formatNumber(d.DesvioPadrao))
		write("Variância", formatNumber(d.Variancia))
		write("Amplitude", formatNumber(d.Amplitude))
		write("Coeficiente Variação", formatNumber(d.CoeficienteVariacao))
		blank()
	}

	write(fmt.Sprintf("ANÁLISE POR %s", strings.ToUpper(e.AgruparPor)))
	if len(e.PorGrupo) > 0 {
		write(titleCase(e.AgruparPor),
			"Servidores Únicos", "Total Registros", "Média Remuneração",
			"Menor Remuneração", "Maior Remuneração", "Total Remuneração",
			"Amplitude Salarial")
		for _, g := range e.PorGrupo {
			write(g.Grupo,
				fmt.Sprintf("%d", g.ServidoresUnicos),
				fmt.Sprintf("%d", g.TotalRegistros),
				formatMoney(g.MediaRemuneracao),
				formatMoney(g.MenorRemuneracao),
				formatMoney(g.MaiorRemuneracao),
				formatMoney(g.TotalRemuneracao),
				formatMoney(g.AmplitudeSalarial),
			)
		}
	}
	blank()

	if len(e.Percentis) > 0 {
		write("ANÁLISE DE QUARTIS E PERCENTIS")
		write("Percentil", "Valor da Remuneração")
		for _, p := range e.Percentis {
			write(p.Rotulo, formatMoney(p.Valor))
		}
		blank()
	}

	if len(e.Detalhes) > 0 {
		write("DADOS DETALHADOS")
		write("Id Servidor", "Nome Servidor", "Cargo", "Órgão", "Mês", "Remuneração Final", "Ano")
		for _, d := range e.Detalhes {
			write(
				fmt.Sprintf("%d", d.IDServidor),
				d.NomeServidor,
				d.Cargo,
				d.Orgao,
				fmt.Sprintf("%d", d.Mes),
				formatMoney(d.RemuneracaoFinal),
				fmt.Sprintf("%d", d.Ano),
			)
		}
		blank()
	}

	write("ANÁLISE DE CORRELAÇÕES")
	write("Variável 1", "Variável 2", "Coeficiente de Correlação", "Interpretação")
	for _, c := range e.Correlacoes {
		write(c.Variavel1, c.Variavel2, fmt.Sprintf("%.4f", c.Coeficiente), c.Interpretacao)
	}
	blank()

	write("OBSERVAÇÕES E METODOLOGIA")
	write("• Valores monetários em reais (R$)")
	write("• Separador decimal: vírgula (,)")
	write("• Separador de milhares: ponto (.)")
	write("• Dados baseados em registros de remuneração válidos")
	write("• Estatísticas calculadas apenas para servidores ativos no período")
	write(fmt.Sprintf("• Período de análise: %d", e.Ano))
	write(fmt.Sprintf("• Total de registros analisados: %d", e.TotalRegistros))

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
