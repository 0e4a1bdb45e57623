package dto

import "github.com/shopspring/decimal"

// ─── Produtos / serviços ─────────────────────────────────────────────────────

type ProdutoRequest struct {
	Nome      string          `json:"nome"  validate:"required,min=2"`
	Descricao *string         `json:"descricao"`
	Preco     decimal.Decimal `json:"preco" validate:"required,gt=0"`
	Tipo      string          `json:"tipo"  validate:"omitempty,oneof=servico produto"`
}

type ProdutoResponse struct {
	ID        uint            `json:"id"`
	Nome      string          `json:"nome"`
	Descricao *string         `json:"descricao"`
	Preco     decimal.Decimal `json:"preco"`
	Tipo      string          `json:"tipo"`
	Ativo     bool            `json:"ativo"`
}

// ─── Métodos de pagamento ────────────────────────────────────────────────────

type MetodoPagamentoRequest struct {
	Nome      string  `json:"nome"   validate:"required,min=2"`
	Codigo    string  `json:"codigo" validate:"required,min=2,lowercase"`
	Descricao *string `json:"descricao"`
	Cor       *string `json:"cor" validate:"omitempty,hexcolor"`
}

type MetodoPagamentoResponse struct {
	ID        uint    `json:"id"`
	Nome      string  `json:"nome"`
	Codigo    string  `json:"codigo"`
	Descricao *string `json:"descricao"`
	Cor       *string `json:"cor"`
	Ativo     bool    `json:"ativo"`
}

// ─── Clientes ────────────────────────────────────────────────────────────────

type ClienteRequest struct {
	Nome        string  `json:"nome" validate:"required,min=2"`
	Telefone    *string `json:"telefone"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Observacoes *string `json:"observacoes"`
}

type ClienteResponse struct {
	ID       uint    `json:"id"`
	Nome     string  `json:"nome"`
	Telefone *string `json:"telefone"`
	Email    *string `json:"email"`
}
