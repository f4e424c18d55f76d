package absence

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	InsertChunk(ctx context.Context, chunk []Afastamento) error
	FindAll(ctx context.Context, ano, mes, offset, limit int) ([]Afastamento, int64, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) InsertChunk(ctx context.Context, chunk []Afastamento) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&chunk).Error
	})
}

func (r *repository) FindAll(ctx context.Context, ano, mes, offset, limit int) ([]Afastamento, int64, error) {
	q := r.db.WithContext(ctx).Model(&Afastamento{})
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

	var afastamentos []Afastamento
	err := q.Order("id_afastamento").Offset(offset).Limit(limit).Find(&afastamentos).Error
	return afastamentos, total, err
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Afastamento{}, "id_afastamento = ?", id).Error
}
