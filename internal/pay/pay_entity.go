package pay

// Remuneracao is one monthly compensation entry. There is no unique key on
// (id_servidor, ano, mes): the portal export can legitimately carry more
// than one row per servant per month, so re-imports duplicate rows.
type Remuneracao struct {
	IDRemuneracao    int64   `gorm:"column:id_remuneracao;primaryKey;autoIncrement"`
	IDServidor       int64   `gorm:"column:id_servidor;not null;index"`
	Ano              int     `gorm:"column:ano;not null"`
	Mes              int     `gorm:"column:mes;not null"`
	Remuneracao      float64 `gorm:"column:remuneracao;type:numeric(10,2)"`
	IRRF             float64 `gorm:"column:irrf;type:numeric(10,2)"`
	PSSRPGS          float64 `gorm:"column:pss_rpgs;type:numeric(10,2)"`
	RemuneracaoFinal float64 `gorm:"column:remuneracao_final;type:numeric(10,2)"`
}

func (Remuneracao) TableName() string {
	return "remuneracoes"
}
