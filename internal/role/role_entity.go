package role

import "time"

// CargoFuncao is a distinct job-role descriptor. Two rows with the same
// composite attribute tuple describe the same role; the importer keeps one.
type CargoFuncao struct {
	IDCargoFuncao   int64   `gorm:"column:id_cargo_funcao;primaryKey;autoIncrement"`
	ClasseCargo     *string `gorm:"column:classe_cargo"`
	ReferenciaCargo *int64  `gorm:"column:referencia_cargo"`
	PadraoCargo     *int64  `gorm:"column:padrao_cargo"`
	NivelCargo      *int64  `gorm:"column:nivel_cargo"`
	Funcao          *string `gorm:"column:funcao"`
	DescricaoCargo  string  `gorm:"column:descricao_cargo;not null"`
	NivelFuncao     *int64  `gorm:"column:nivel_funcao"`
}

func (CargoFuncao) TableName() string {
	return "cargofuncao"
}

// FuncaoCargo links a servant to a catalog entry, with an optional
// assignment start date.
type FuncaoCargo struct {
	IDServidorFuncao   int64      `gorm:"column:id_servidor_funcao;primaryKey;autoIncrement"`
	IDServidor         int64      `gorm:"column:id_servidor;not null;index"`
	IDCargoFuncao      int64      `gorm:"column:id_cargo_funcao;not null;index"`
	DataIngressoFuncao *time.Time `gorm:"column:data_ingresso_funcao;type:date"`
}

func (FuncaoCargo) TableName() string {
	return "funcao_cargo"
}
