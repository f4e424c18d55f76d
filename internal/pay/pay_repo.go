package pay

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	InsertChunk(ctx context.Context, chunk []Remuneracao) error
	FindAll(ctx context.Context, ano, mes, offset, limit int) ([]Remuneracao, int64, error)
	FindByID(ctx context.Context, id int64) (*Remuneracao, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// InsertChunk keeps the conflict-ignore clause even though remuneracoes has
// no natural unique key, matching the store contract of the other entities.
func (r *repository) InsertChunk(ctx context.Context, chunk []Remuneracao) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&chunk).Error
	})
}

func (r *repository) FindAll(ctx context.Context, ano, mes, offset, limit int) ([]Remuneracao, int64, error) {
	q := r.db.WithContext(ctx).Model(&Remuneracao{})
	if ano > 0 {
		q = q.Where("ano = ?", ano)
	}
	if mes > 0 {
		q = q.Where("mes = ?", mes)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var registros []Remuneracao
	err := q.Order("id_remuneracao").Offset(offset).Limit(limit).Find(&registros).Error
	return registros, total, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Remuneracao, error) {
	var reg Remuneracao
	err := r.db.WithContext(ctx).First(&reg, "id_remuneracao = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Remuneracao{}, "id_remuneracao = ?", id).Error
}
