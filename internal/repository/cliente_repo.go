package repository

import (
	"context"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/model"

	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uint) (*model.Cliente, error)
	Search(ctx context.Context, query string, limit int) ([]model.Cliente, error)
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uint) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) Search(ctx context.Context, query string, limit int) ([]model.Cliente, error) {
	q := r.db.WithContext(ctx).Order("nome ASC").Limit(limit)
	if query != "" {
		q = q.Where("nome ILIKE ?", "%"+query+"%")
	}
	var clientes []model.Cliente
	err := q.Find(&clientes).Error
	return clientes, err
}
