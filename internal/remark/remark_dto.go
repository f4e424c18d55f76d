package remark

type ObservacaoResponse struct {
	IDObservacao int64  `json:"id_observacao"`
	IDServidor   int64  `json:"id_servidor"`
	Ano          int    `json:"ano"`
	Mes          int    `json:"mes"`
	Observacao   string `json:"observacao"`
	FlagTeto     bool   `json:"flag_teto"`
}

func mapToResponse(o Observacao) ObservacaoResponse {
	return ObservacaoResponse{
		IDObservacao: o.IDObservacao,
		IDServidor:   o.IDServidor,
		Ano:          o.Ano,
		Mes:          o.Mes,
		Observacao:   o.Observacao,
		FlagTeto:     o.FlagTeto,
	}
}

func mapToListResponse(observacoes []Observacao) []ObservacaoResponse {
	resp := make([]ObservacaoResponse, len(observacoes))
	for i, o := range observacoes {
		resp[i] = mapToResponse(o)
	}
	return resp
}
