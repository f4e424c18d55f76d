package remark

// Observacao is a free-text note attached to a servant's month. FlagTeto is
// derived at import time from the note mentioning the pay ceiling.
type Observacao struct {
	IDObservacao int64  `gorm:"column:id_observacao;primaryKey;autoIncrement"`
	IDServidor   int64  `gorm:"column:id_servidor;not null;index"`
	Ano          int    `gorm:"column:ano;not null"`
	Mes          int    `gorm:"column:mes;not null"`
	Observacao   string `gorm:"column:observacao;type:text;not null"`
	FlagTeto     bool   `gorm:"column:flag_teto;not null"`
}

func (Observacao) TableName() string {
	return "observacoes"
}
