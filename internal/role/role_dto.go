package role

type CargoFuncaoResponse struct {
	IDCargoFuncao   int64   `json:"id_cargo_funcao"`
	ClasseCargo     *string `json:"classe_cargo"`
	ReferenciaCargo *int64  `json:"referencia_cargo"`
	PadraoCargo     *int64  `json:"padrao_cargo"`
	NivelCargo      *int64  `json:"nivel_cargo"`
	Funcao          *string `json:"funcao"`
	DescricaoCargo  string  `json:"descricao_cargo"`
	NivelFuncao     *int64  `json:"nivel_funcao"`
}

type FuncaoCargoResponse struct {
	IDServidorFuncao   int64   `json:"id_servidor_funcao"`
	IDServidor         int64   `json:"id_servidor"`
	IDCargoFuncao      int64   `json:"id_cargo_funcao"`
	DataIngressoFuncao *string `json:"data_ingresso_funcao"`
}

func mapToCatalogResponse(c CargoFuncao) CargoFuncaoResponse {
	return CargoFuncaoResponse{
		IDCargoFuncao:   c.IDCargoFuncao,
		ClasseCargo:     c.ClasseCargo,
		ReferenciaCargo: c.ReferenciaCargo,
		PadraoCargo:     c.PadraoCargo,
		NivelCargo:      c.NivelCargo,
		Funcao:          c.Funcao,
		DescricaoCargo:  c.DescricaoCargo,
		NivelFuncao:     c.NivelFuncao,
	}
}

func mapToCatalogListResponse(cargos []CargoFuncao) []CargoFuncaoResponse {
	resp := make([]CargoFuncaoResponse, len(cargos))
	for i, c := range cargos {
		resp[i] = mapToCatalogResponse(c)
	}
	return resp
}

func mapToAssignmentResponse(v FuncaoCargo) FuncaoCargoResponse {
	resp := FuncaoCargoResponse{
		IDServidorFuncao: v.IDServidorFuncao,
		IDServidor:       v.IDServidor,
		IDCargoFuncao:    v.IDCargoFuncao,
	}
	if v.DataIngressoFuncao != nil {
		d := v.DataIngressoFuncao.Format("2006-01-02")
		resp.DataIngressoFuncao = &d
	}
	return resp
}

func mapToAssignmentListResponse(vinculos []FuncaoCargo) []FuncaoCargoResponse {
	resp := make([]FuncaoCargoResponse, len(vinculos))
	for i, v := range vinculos {
		resp[i] = mapToAssignmentResponse(v)
	}
	return resp
}
