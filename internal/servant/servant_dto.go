package servant

type ServidorResponse struct {
	IDServidor      int64  `json:"id_servidor"`
	Nome            string `json:"nome"`
	CPF             string `json:"cpf"`
	DescrCargo      string `json:"descr_cargo"`
	OrgSuperior     string `json:"org_superior"`
	OrgExercicio    string `json:"org_exercicio"`
	Regime          string `json:"regime"`
	JornadaTrabalho string `json:"jornada_trabalho"`
}

func mapToResponse(s Servidor) ServidorResponse {
	return ServidorResponse{
		IDServidor:      s.IDServidor,
		Nome:            s.Nome,
		CPF:             s.CPF,
		DescrCargo:      s.DescrCargo,
		OrgSuperior:     s.OrgSuperior,
		OrgExercicio:    s.OrgExercicio,
		Regime:          s.Regime,
		JornadaTrabalho: s.JornadaTrabalho,
	}
}

func mapToListResponse(servidores []Servidor) []ServidorResponse {
	resp := make([]ServidorResponse, len(servidores))
	for i, s := range servidores {
		resp[i] = mapToResponse(s)
	}
	return resp
}
