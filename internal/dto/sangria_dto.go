package dto

import "github.com/shopspring/decimal"

type RegistrarSangriaRequest struct {
	Valor             decimal.Decimal `json:"valor"`
	Motivo            string          `json:"motivo"`
	MetodoPagamentoID uint            `json:"metodo_pagamento_id"`
}

type SangriaResponse struct {
	TransacaoID   uint            `json:"transacao_id"`
	Metodo        string          `json:"metodo"`
	ValorRetirado decimal.Decimal `json:"valor_retirado"`
	SaldoAnterior decimal.Decimal `json:"saldo_anterior"`
	NovoSaldo     decimal.Decimal `json:"novo_saldo"`
}
