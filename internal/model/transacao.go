package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction kinds. Withdrawals used to be tagged by a "SANGRIA:" prefix in
// the notes field; the kind is now an explicit column and the free-text
// reason lives in Motivo.
const (
	TipoVenda   = "venda"
	TipoSangria = "sangria"
)

// Transacao is the ledger root: a sale (positive total) or a cash
// withdrawal (negative total). Data is always stored in UTC; display
// conversion happens at the API boundary.
type Transacao struct {
	ID        uint      `gorm:"primaryKey"`
	Data      time.Time `gorm:"index;not null"`
	Tipo      string    `gorm:"type:varchar(20);not null;default:'venda';index"`
	ClienteID *uint     `gorm:"index"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// Motivo holds the withdrawal reason; nil for sales.
	Motivo      *string
	Observacoes *string

	Cliente    *Cliente        `gorm:"foreignKey:ClienteID"`
	Itens      []TransacaoItem `gorm:"foreignKey:TransacaoID;constraint:OnDelete:CASCADE"`
	Pagamentos []Pagamento     `gorm:"foreignKey:TransacaoID;constraint:OnDelete:CASCADE"`
}

func (Transacao) TableName() string { return "transacoes" }

// TransacaoItem is one line of a sale. ProdutoID is nil for one-off items
// described only by Descricao. PrecoUnitario and Subtotal are frozen at time
// of sale and never recomputed from the current product price.
type TransacaoItem struct {
	ID            uint  `gorm:"primaryKey"`
	TransacaoID   uint  `gorm:"index;not null"`
	ProdutoID     *uint `gorm:"index"`
	Descricao     string
	Quantidade    int             `gorm:"not null;default:1"`
	PrecoUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (TransacaoItem) TableName() string { return "transacao_itens" }

// Pagamento is one payment-method share of a transaction. Valor is signed:
// positive for a sale's share, negative for a withdrawal. Per-method balances
// are always recomputed from these rows — there is no running counter.
type Pagamento struct {
	ID                uint            `gorm:"primaryKey"`
	TransacaoID       uint            `gorm:"index;not null"`
	MetodoPagamentoID uint            `gorm:"index;not null"`
	Valor             decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	MetodoPagamento *MetodoPagamento `gorm:"foreignKey:MetodoPagamentoID"`
}

func (Pagamento) TableName() string { return "pagamentos" }
