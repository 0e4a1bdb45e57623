package repository

import (
	"context"
	"errors"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/model"

	"gorm.io/gorm"
)

type ConfigRepository interface {
	Find(ctx context.Context, chave string) (*model.SystemConfig, error)
	// Upsert inserts the key or updates it in place, refreshing updated_at.
	Upsert(ctx context.Context, chave, valor string, descricao *string) error
}

type configRepo struct{ db *gorm.DB }

func NewConfigRepository(db *gorm.DB) ConfigRepository { return &configRepo{db: db} }

func (r *configRepo) Find(ctx context.Context, chave string) (*model.SystemConfig, error) {
	var cfg model.SystemConfig
	if err := r.db.WithContext(ctx).Where("chave = ?", chave).First(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *configRepo) Upsert(ctx context.Context, chave, valor string, descricao *string) error {
	var existing model.SystemConfig
	err := r.db.WithContext(ctx).Where("chave = ?", chave).First(&existing).Error
	switch {
	case err == nil:
		existing.Valor = valor
		if descricao != nil {
			existing.Descricao = descricao
		}
		return r.db.WithContext(ctx).Save(&existing).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.db.WithContext(ctx).Create(&model.SystemConfig{
			Chave:     chave,
			Valor:     valor,
			Descricao: descricao,
		}).Error
	default:
		return err
	}
}
