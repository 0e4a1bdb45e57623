package repository

import (
	"context"
	"time"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// HistoricoFilter narrows the transaction history listing. Zero values mean
// "no filter". Product selectors match either registered product ids or the
// free-text description of unregistered items; withdrawal rows are always
// included in product-filtered results since a sangria has no product.
type HistoricoFilter struct {
	DataInicio *time.Time
	DataFim    *time.Time
	Cliente    string
	ProdutoIDs []uint
	Descricoes []string
}

// ResumoCaixa aggregates signed transaction totals for the overall summary.
type ResumoCaixa struct {
	TotalVendas   decimal.Decimal
	TotalSangrias decimal.Decimal
}

type TransacaoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, t *model.Transacao) error
	FindByID(ctx context.Context, id uint) (*model.Transacao, error)
	Historico(ctx context.Context, filter HistoricoFilter) ([]model.Transacao, error)
	Recentes(ctx context.Context, limit int) ([]model.Transacao, error)
	Resumo(ctx context.Context) (*ResumoCaixa, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type transacaoRepo struct{ db *gorm.DB }

func NewTransacaoRepository(db *gorm.DB) TransacaoRepository { return &transacaoRepo{db: db} }

func (r *transacaoRepo) DB() *gorm.DB { return r.db }

func (r *transacaoRepo) Create(ctx context.Context, tx *gorm.DB, t *model.Transacao) error {
	return tx.WithContext(ctx).Create(t).Error
}

func (r *transacaoRepo) FindByID(ctx context.Context, id uint) (*model.Transacao, error) {
	var t model.Transacao
	err := r.db.WithContext(ctx).
		Preload("Itens.Produto").
		Preload("Pagamentos.MetodoPagamento").
		Preload("Cliente").
		First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *transacaoRepo) Historico(ctx context.Context, filter HistoricoFilter) ([]model.Transacao, error) {
	q := r.db.WithContext(ctx).Model(&model.Transacao{})

	if filter.DataInicio != nil {
		q = q.Where("data >= ?", *filter.DataInicio)
	}
	if filter.DataFim != nil {
		q = q.Where("data <= ?", *filter.DataFim)
	}
	if filter.Cliente != "" {
		q = q.Where("cliente_id IN (SELECT id FROM clientes WHERE nome ILIKE ?)",
			"%"+filter.Cliente+"%")
	}

	// Product selectors never exclude sangrias: a withdrawal has no items, so
	// the tipo predicate is OR'd into the item subquery.
	if len(filter.ProdutoIDs) > 0 || len(filter.Descricoes) > 0 {
		sub := "SELECT 1 FROM transacao_itens ti WHERE ti.transacao_id = transacoes.id AND ("
		var args []any
		switch {
		case len(filter.ProdutoIDs) > 0 && len(filter.Descricoes) > 0:
			sub += "ti.produto_id IN ? OR ti.descricao IN ?"
			args = append(args, filter.ProdutoIDs, filter.Descricoes)
		case len(filter.ProdutoIDs) > 0:
			sub += "ti.produto_id IN ?"
			args = append(args, filter.ProdutoIDs)
		default:
			sub += "ti.descricao IN ?"
			args = append(args, filter.Descricoes)
		}
		sub += ")"
		args = append(args, model.TipoSangria)
		q = q.Where("EXISTS ("+sub+") OR tipo = ?", args...)
	}

	var transacoes []model.Transacao
	err := q.Preload("Itens.Produto").
		Preload("Pagamentos.MetodoPagamento").
		Preload("Cliente").
		Order("data DESC").Order("id DESC").
		Find(&transacoes).Error
	return transacoes, err
}

func (r *transacaoRepo) Recentes(ctx context.Context, limit int) ([]model.Transacao, error) {
	var transacoes []model.Transacao
	err := r.db.WithContext(ctx).
		Preload("Itens.Produto").
		Preload("Pagamentos.MetodoPagamento").
		Preload("Cliente").
		Order("data DESC").Order("id DESC").
		Limit(limit).
		Find(&transacoes).Error
	return transacoes, err
}

func (r *transacaoRepo) Resumo(ctx context.Context) (*ResumoCaixa, error) {
	var row struct {
		TotalVendas   decimal.Decimal
		TotalSangrias decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.Transacao{}).
		Select(`COALESCE(SUM(CASE WHEN total > 0 THEN total ELSE 0 END), 0) AS total_vendas,
			COALESCE(SUM(CASE WHEN total < 0 THEN -total ELSE 0 END), 0) AS total_sangrias`).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &ResumoCaixa{TotalVendas: row.TotalVendas, TotalSangrias: row.TotalSangrias}, nil
}
