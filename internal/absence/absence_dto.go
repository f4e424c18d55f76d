package absence

type AfastamentoResponse struct {
	IDAfastamento     int64   `json:"id_afastamento"`
	IDServidor        int64   `json:"id_servidor"`
	Ano               int     `json:"ano"`
	Mes               int     `json:"mes"`
	InicioAfastamento *string `json:"inicio_afastamento"`
	FimAfastamento    *string `json:"fim_afastamento"`
	DuracaoDias       int     `json:"duracao_dias"`
}

func mapToResponse(a Afastamento) AfastamentoResponse {
	resp := AfastamentoResponse{
		IDAfastamento: a.IDAfastamento,
		IDServidor:    a.IDServidor,
		Ano:           a.Ano,
		Mes:           a.Mes,
		DuracaoDias:   a.DuracaoDias,
	}

	if a.InicioAfastamento != nil {
		v := a.InicioAfastamento.Format("2006-01-02")
		resp.InicioAfastamento = &v
	}
	if fim := a.Fim(); fim != nil {
		v := fim.Format("2006-01-02")
		resp.FimAfastamento = &v
	}

	return resp
}

func mapToListResponse(afastamentos []Afastamento) []AfastamentoResponse {
	resp := make([]AfastamentoResponse, len(afastamentos))
	for i, a := range afastamentos {
		resp[i] = mapToResponse(a)
	}
	return resp
}
