package servant

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	InsertChunk(ctx context.Context, chunk []Servidor) error
	FindAll(ctx context.Context, offset, limit int) ([]Servidor, int64, error)
	FindByID(ctx context.Context, id int64) (*Servidor, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// InsertChunk writes one chunk in a single transaction. Rows colliding on
// id_servidor are skipped whole: existing data wins, no field merge.
func (r *repository) InsertChunk(ctx context.Context, chunk []Servidor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&chunk).Error
	})
}

func (r *repository) FindAll(ctx context.Context, offset, limit int) ([]Servidor, int64, error) {
	var servidores []Servidor
	var total int64

	if err := r.db.WithContext(ctx).Model(&Servidor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("id_servidor").
		Offset(offset).
		Limit(limit).
		Find(&servidores).Error
	return servidores, total, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Servidor, error) {
	var s Servidor
	err := r.db.WithContext(ctx).First(&s, "id_servidor = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Servidor{}, "id_servidor = ?", id).Error
}
