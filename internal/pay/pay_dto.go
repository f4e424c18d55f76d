package pay

type RemuneracaoResponse struct {
	IDRemuneracao    int64   `json:"id_remuneracao"`
	IDServidor       int64   `json:"id_servidor"`
	Ano              int     `json:"ano"`
	Mes              int     `json:"mes"`
	Remuneracao      float64 `json:"remuneracao"`
	IRRF             float64 `json:"irrf"`
	PSSRPGS          float64 `json:"pss_rpgs"`
	RemuneracaoFinal float64 `json:"remuneracao_final"`
}

func mapToResponse(r Remuneracao) RemuneracaoResponse {
	return RemuneracaoResponse{
		IDRemuneracao:    r.IDRemuneracao,
		IDServidor:       r.IDServidor,
		Ano:              r.Ano,
		Mes:              r.Mes,
		Remuneracao:      r.Remuneracao,
		IRRF:             r.IRRF,
		PSSRPGS:          r.PSSRPGS,
		RemuneracaoFinal: r.RemuneracaoFinal,
	}
}

func mapToListResponse(registros []Remuneracao) []RemuneracaoResponse {
	resp := make([]RemuneracaoResponse, len(registros))
	for i, r := range registros {
		resp[i] = mapToResponse(r)
	}
	return resp
}
