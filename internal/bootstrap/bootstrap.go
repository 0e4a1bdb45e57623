// Package bootstrap guarantees the minimal seed state the ledger assumes:
// a default admin PIN, the default payment methods and a starter catalog.
// EnsureSeed is idempotent — it only creates what is missing, so it runs
// unconditionally at every startup.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/model"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const pinPadrao = "1234"

type seedMetodo struct {
	nome      string
	codigo    string
	descricao string
	cor       string
}

var metodosPadrao = []seedMetodo{
	{"Dinheiro", "dinheiro", "Pagamento em dinheiro", "#28a745"},
	{"PIX", "pix", "Pagamento via PIX", "#007bff"},
	{"Cartão de Crédito", "credito", "Pagamento com cartão de crédito", "#fd7e14"},
	{"Cartão de Débito", "debito", "Pagamento com cartão de débito", "#6f42c1"},
}

type seedProduto struct {
	nome  string
	preco string
}

var produtosPadrao = []seedProduto{
	{"Consulta", "50.00"},
	{"Serviço Básico", "100.00"},
	{"Serviço Premium", "200.00"},
}

// EnsureSeed creates the baseline configuration and catalog when absent.
func EnsureSeed(
	ctx context.Context,
	configRepo repository.ConfigRepository,
	metodoRepo repository.MetodoPagamentoRepository,
	produtoRepo repository.ProdutoRepository,
) error {
	if err := ensurePin(ctx, configRepo); err != nil {
		return fmt.Errorf("seed pin: %w", err)
	}
	if err := ensureMetodos(ctx, metodoRepo); err != nil {
		return fmt.Errorf("seed métodos de pagamento: %w", err)
	}
	if err := ensureProdutos(ctx, produtoRepo); err != nil {
		return fmt.Errorf("seed produtos: %w", err)
	}
	return nil
}

func ensurePin(ctx context.Context, repo repository.ConfigRepository) error {
	_, err := repo.Find(ctx, "admin_pin")
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	descricao := "PIN de acesso ao painel administrativo"
	if err := repo.Upsert(ctx, "admin_pin", pinPadrao, &descricao); err != nil {
		return err
	}
	log.Info().Msg("PIN padrão configurado")
	return nil
}

func ensureMetodos(ctx context.Context, repo repository.MetodoPagamentoRepository) error {
	criados := 0
	for _, seed := range metodosPadrao {
		_, err := repo.FindByCodigo(ctx, seed.codigo)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		descricao, cor := seed.descricao, seed.cor
		m := model.MetodoPagamento{
			Nome:      seed.nome,
			Codigo:    seed.codigo,
			Descricao: &descricao,
			Cor:       &cor,
			Ativo:     true,
		}
		if err := repo.Create(ctx, &m); err != nil {
			return err
		}
		criados++
	}
	if criados > 0 {
		log.Info().Int("criados", criados).Msg("métodos de pagamento padrão criados")
	}
	return nil
}

// ensureProdutos seeds the starter catalog only when the table is empty, so
// an operator who removed a default product does not get it back on restart.
func ensureProdutos(ctx context.Context, repo repository.ProdutoRepository) error {
	existentes, err := repo.List(ctx, false)
	if err != nil {
		return err
	}
	if len(existentes) > 0 {
		return nil
	}
	for _, seed := range produtosPadrao {
		preco, err := decimal.NewFromString(seed.preco)
		if err != nil {
			return err
		}
		p := model.Produto{Nome: seed.nome, Preco: preco, Tipo: "servico", Ativo: true}
		if err := repo.Create(ctx, &p); err != nil {
			return err
		}
	}
	log.Info().Int("criados", len(produtosPadrao)).Msg("catálogo inicial criado")
	return nil
}
