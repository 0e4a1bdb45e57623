package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto is a catalog entry. Price changes apply only to future sales;
// historical line items keep the price frozen at time of sale.
type Produto struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"type:varchar(255);index;not null"`
	Descricao *string
	Preco     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// Tipo: "servico" | "produto"
	Tipo      string `gorm:"type:varchar(50);not null;default:'servico'"`
	Ativo     bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (Produto) TableName() string { return "produtos_servicos" }
