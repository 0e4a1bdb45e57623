package repository

import (
	"context"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/model"

	"gorm.io/gorm"
)

type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	Update(ctx context.Context, p *model.Produto) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Produto, error)
	List(ctx context.Context, somenteAtivos bool) ([]model.Produto, error)
	CountItens(ctx context.Context, id uint) (int64, error)
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) Update(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *produtoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Produto{}, id).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, id uint) (*model.Produto, error) {
	var p model.Produto
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *produtoRepo) List(ctx context.Context, somenteAtivos bool) ([]model.Produto, error) {
	q := r.db.WithContext(ctx).Order("nome ASC")
	if somenteAtivos {
		q = q.Where("ativo = ?", true)
	}
	var produtos []model.Produto
	err := q.Find(&produtos).Error
	return produtos, err
}

// CountItens returns how many historical line items reference the product,
// deciding between soft and hard delete.
func (r *produtoRepo) CountItens(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TransacaoItem{}).
		Where("produto_id = ?", id).Count(&count).Error
	return count, err
}
