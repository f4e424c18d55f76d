package analytics

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// RenderExcel builds the four-sheet spreadsheet export of a full report.
func RenderExcel(relatorio RelatorioCompleto) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const resumoSheet = "Resumo Geral"
	f.SetSheetName("Sheet1", resumoSheet)

	resumo := relatorio.ResumoGeral
	resumoHeader := []any{"total_servidores", "servidores_ativos", "total_remuneracao", "media_remuneracao", "taxa_atividade"}
	resumoLinha := []any{resumo.TotalServidores, resumo.ServidoresAtivos, resumo.TotalRemuneracao, resumo.MediaRemuneracao, resumo.TaxaAtividade}
	if err := f.SetSheetRow(resumoSheet, "A1", &resumoHeader); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(resumoSheet, "A2", &resumoLinha); err != nil {
		return nil, err
	}

	const topSheet = "Top Remunerações"
	if _, err := f.NewSheet(topSheet); err != nil {
		return nil, err
	}
	topHeader := []any{"nome", "cargo", "media_anual"}
	if err := f.SetSheetRow(topSheet, "A1", &topHeader); err != nil {
		return nil, err
	}
	for i, top := range relatorio.AnaliseRemuneracao.TopRemuneracoes {
		linha := []any{top.Nome, top.Cargo, top.MediaAnual}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(topSheet, cell, &linha); err != nil {
			return nil, err
		}
	}

	const cargoSheet = "Remuneração por Cargo"
	if _, err := f.NewSheet(cargoSheet); err != nil {
		return nil, err
	}
	cargoHeader := []any{"cargo", "quantidade", "media_remuneracao"}
	if err := f.SetSheetRow(cargoSheet, "A1", &cargoHeader); err != nil {
		return nil, err
	}
	for i, cargo := range relatorio.AnaliseRemuneracao.RemuneracaoPorCargo {
		linha := []any{cargo.Cargo, cargo.Quantidade, cargo.MediaRemuneracao}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(cargoSheet, cell, &linha); err != nil {
			return nil, err
		}
	}

	const insightsSheet = "Insights"
	if _, err := f.NewSheet(insightsSheet); err != nil {
		return nil, err
	}
	insightsHeader := []any{"Tipo", "Título", "Valor", "Descrição", "Período"}
	if err := f.SetSheetRow(insightsSheet, "A1", &insightsHeader); err != nil {
		return nil, err
	}
	for i, insight := range relatorio.Insights {
		linha := []any{insight.Tipo, insight.Titulo, insight.Valor, insight.Descricao, insight.Periodo}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(insightsSheet, cell, &linha); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
