package model

import "time"

// Cliente identifies a customer. Transactions reference it weakly — a sale
// may be anonymous.
type Cliente struct {
	ID          uint   `gorm:"primaryKey"`
	Nome        string `gorm:"type:varchar(255);index;not null"`
	Telefone    *string `gorm:"type:varchar(50)"`
	Email       *string `gorm:"type:varchar(255)"`
	Observacoes *string
	CreatedAt   time.Time
}

func (Cliente) TableName() string { return "clientes" }
