package model

import "time"

// MetodoPagamento is a payment channel (dinheiro, pix, cartões) with its own
// running balance. Once referenced by any Pagamento a method can only be
// deactivated, never deleted.
type MetodoPagamento struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"type:varchar(100);not null"`
	Codigo    string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Descricao *string
	// Cor is the display color used by the front end (hex, e.g. "#28a745").
	Cor       *string `gorm:"type:varchar(20)"`
	Ativo     bool    `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (MetodoPagamento) TableName() string { return "metodos_pagamento" }
