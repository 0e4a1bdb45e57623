package dto

import "github.com/shopspring/decimal"

type SaldoMetodoResponse struct {
	MetodoID      uint            `json:"metodo_id"`
	Nome          string          `json:"nome"`
	Codigo        string          `json:"codigo"`
	Cor           *string         `json:"cor"`
	TotalVendas   decimal.Decimal `json:"total_vendas"`
	TotalSangrias decimal.Decimal `json:"total_sangrias"`
	Saldo         decimal.Decimal `json:"saldo"`
}

type ResumoCaixaResponse struct {
	TotalVendas   decimal.Decimal     `json:"total_vendas"`
	TotalSangrias decimal.Decimal     `json:"total_sangrias"`
	SaldoAtual    decimal.Decimal     `json:"saldo_atual"`
	Recentes      []TransacaoResponse `json:"recentes"`
}

// HistoricoQuery carries the raw query-string filters. Dates are
// "YYYY-MM-DD" (inclusive, interpreted in the display timezone); Produtos
// mixes registered product ids with free-text descriptions of one-off items.
type HistoricoQuery struct {
	DataInicio string   `form:"data_inicio"`
	DataFim    string   `form:"data_fim"`
	Cliente    string   `form:"cliente"`
	Produtos   []string `form:"produto"`
}
