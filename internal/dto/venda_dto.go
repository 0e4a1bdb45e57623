package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVendaRequest struct {
	// ProdutoID is nil for one-off items identified only by Descricao.
	ProdutoID     *uint           `json:"produto_id"`
	Descricao     string          `json:"descricao"`
	Quantidade    int             `json:"quantidade"     validate:"required,gt=0"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario" validate:"min=0"`
	// Subtotal may be omitted; when present it must equal quantidade × preço.
	Subtotal decimal.Decimal `json:"subtotal"`
}

type PagamentoRequest struct {
	MetodoPagamentoID uint            `json:"metodo_pagamento_id" validate:"required"`
	Valor             decimal.Decimal `json:"valor"               validate:"required"`
}

type RegistrarVendaRequest struct {
	ClienteID   *uint              `json:"cliente_id"`
	Itens       []ItemVendaRequest `json:"itens"      validate:"dive"`
	Pagamentos  []PagamentoRequest `json:"pagamentos" validate:"dive"`
	Total       decimal.Decimal    `json:"total"`
	Observacoes *string            `json:"observacoes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemVendaResponse struct {
	Produto       *string         `json:"produto"`
	Descricao     string          `json:"descricao"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

type PagamentoResponse struct {
	Metodo string          `json:"metodo"`
	Codigo string          `json:"codigo"`
	Valor  decimal.Decimal `json:"valor"`
}

// TransacaoResponse renders both sales and sangrias. Data is the stored UTC
// instant converted to the configured display timezone.
type TransacaoResponse struct {
	ID          uint                `json:"id"`
	Tipo        string              `json:"tipo"`
	Data        string              `json:"data"`
	Cliente     *string             `json:"cliente"`
	Total       decimal.Decimal     `json:"total"`
	Motivo      *string             `json:"motivo,omitempty"`
	Observacoes *string             `json:"observacoes,omitempty"`
	Itens       []ItemVendaResponse `json:"itens"`
	Pagamentos  []PagamentoResponse `json:"pagamentos"`
}

type RegistrarVendaResponse struct {
	TransacaoID uint `json:"transacao_id"`
}
