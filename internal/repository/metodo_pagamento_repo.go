package repository

import (
	"context"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaldoMetodo is one row of the per-method balance report. Saldo nets
// withdrawals against sales; both components come exclusively from the
// signed Pagamento rows.
type SaldoMetodo struct {
	MetodoID      uint
	Nome          string
	Codigo        string
	Cor           *string
	TotalVendas   decimal.Decimal
	TotalSangrias decimal.Decimal
	Saldo         decimal.Decimal
}

type MetodoPagamentoRepository interface {
	Create(ctx context.Context, m *model.MetodoPagamento) error
	Update(ctx context.Context, m *model.MetodoPagamento) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.MetodoPagamento, error)
	FindByCodigo(ctx context.Context, codigo string) (*model.MetodoPagamento, error)
	List(ctx context.Context, somenteAtivos bool) ([]model.MetodoPagamento, error)
	CountPagamentos(ctx context.Context, id uint) (int64, error)
	Saldos(ctx context.Context) ([]SaldoMetodo, error)
	// SaldoForUpdate locks the method row for the duration of tx before
	// summing its payments, serializing concurrent withdrawals against the
	// same method.
	SaldoForUpdate(ctx context.Context, tx *gorm.DB, id uint) (decimal.Decimal, error)
}

type metodoPagamentoRepo struct{ db *gorm.DB }

func NewMetodoPagamentoRepository(db *gorm.DB) MetodoPagamentoRepository {
	return &metodoPagamentoRepo{db: db}
}

func (r *metodoPagamentoRepo) Create(ctx context.Context, m *model.MetodoPagamento) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *metodoPagamentoRepo) Update(ctx context.Context, m *model.MetodoPagamento) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *metodoPagamentoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.MetodoPagamento{}, id).Error
}

func (r *metodoPagamentoRepo) FindByID(ctx context.Context, id uint) (*model.MetodoPagamento, error) {
	var m model.MetodoPagamento
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *metodoPagamentoRepo) FindByCodigo(ctx context.Context, codigo string) (*model.MetodoPagamento, error) {
	var m model.MetodoPagamento
	if err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *metodoPagamentoRepo) List(ctx context.Context, somenteAtivos bool) ([]model.MetodoPagamento, error) {
	q := r.db.WithContext(ctx).Order("nome ASC")
	if somenteAtivos {
		q = q.Where("ativo = ?", true)
	}
	var metodos []model.MetodoPagamento
	err := q.Find(&metodos).Error
	return metodos, err
}

func (r *metodoPagamentoRepo) CountPagamentos(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Pagamento{}).
		Where("metodo_pagamento_id = ?", id).Count(&count).Error
	return count, err
}

func (r *metodoPagamentoRepo) Saldos(ctx context.Context) ([]SaldoMetodo, error) {
	var rows []SaldoMetodo
	err := r.db.WithContext(ctx).Model(&model.MetodoPagamento{}).
		Select(`metodos_pagamento.id AS metodo_id,
			metodos_pagamento.nome,
			metodos_pagamento.codigo,
			metodos_pagamento.cor,
			COALESCE(SUM(CASE WHEN pagamentos.valor > 0 THEN pagamentos.valor ELSE 0 END), 0) AS total_vendas,
			COALESCE(SUM(CASE WHEN pagamentos.valor < 0 THEN -pagamentos.valor ELSE 0 END), 0) AS total_sangrias,
			COALESCE(SUM(pagamentos.valor), 0) AS saldo`).
		Joins("LEFT JOIN pagamentos ON pagamentos.metodo_pagamento_id = metodos_pagamento.id").
		Where("metodos_pagamento.ativo = ?", true).
		Group("metodos_pagamento.id, metodos_pagamento.nome, metodos_pagamento.codigo, metodos_pagamento.cor").
		Order("metodos_pagamento.nome ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *metodoPagamentoRepo) SaldoForUpdate(ctx context.Context, tx *gorm.DB, id uint) (decimal.Decimal, error) {
	var m model.MetodoPagamento
	if err := tx.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, id).Error; err != nil {
		return decimal.Zero, err
	}
	var saldo decimal.Decimal
	err := tx.WithContext(ctx).Model(&model.Pagamento{}).
		Where("metodo_pagamento_id = ?", id).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&saldo).Error
	return saldo, err
}
