package servant

// Servidor is the root entity. The primary key comes from the portal export
// (Id_SERVIDOR_PORTAL) and is never generated locally.
type Servidor struct {
	IDServidor      int64  `gorm:"column:id_servidor;primaryKey;autoIncrement:false"`
	Nome            string `gorm:"column:nome;not null"`
	CPF             string `gorm:"column:cpf;not null"`
	DescrCargo      string `gorm:"column:descr_cargo;not null"`
	OrgSuperior     string `gorm:"column:org_superior;not null"`
	OrgExercicio    string `gorm:"column:org_exercicio;not null"`
	Regime          string `gorm:"column:regime;not null"`
	JornadaTrabalho string `gorm:"column:jornada_trabalho;not null"`
}

func (Servidor) TableName() string {
	return "servidores"
}
