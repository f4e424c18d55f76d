package absence

import "time"

// Afastamento is one leave entry. The export has no duration column, so
// duration defaults to 1 day when unknown.
type Afastamento struct {
	IDAfastamento      int64      `gorm:"column:id_afastamento;primaryKey;autoIncrement"`
	IDServidor         int64      `gorm:"column:id_servidor;not null;index"`
	Ano                int        `gorm:"column:ano;not null"`
	Mes                int        `gorm:"column:mes;not null"`
	InicioAfastamento  *time.Time `gorm:"column:inicio_afastamento;type:date"`
	DuracaoDias        int        `gorm:"column:duracao_dias;not null;default:1"`
}

func (Afastamento) TableName() string {
	return "afastamentos"
}

// Fim derives the end date when the start is known: start + duration - 1.
func (a Afastamento) Fim() *time.Time {
	if a.InicioAfastamento == nil || a.DuracaoDias < 1 {
		return nil
	}
	fim := a.InicioAfastamento.AddDate(0, 0, a.DuracaoDias-1)
	return &fim
}
