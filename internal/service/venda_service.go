package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/dto"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/infra"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/model"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// toleranciaPagamento is the maximum accepted difference between the stated
// total and the sum of the payment shares (0.01 currency units).
var toleranciaPagamento = decimal.New(1, -2)

type VendaService interface {
	Registrar(ctx context.Context, req dto.RegistrarVendaRequest) (*dto.RegistrarVendaResponse, error)
	ObterPorID(ctx context.Context, id uint) (*dto.TransacaoResponse, error)
	// GerarRecibo renders a PDF receipt for a sale and returns its file path.
	GerarRecibo(ctx context.Context, id uint) (string, error)
}

type vendaService struct {
	repo         repository.TransacaoRepository
	metodoRepo   repository.MetodoPagamentoRepository
	produtoRepo  repository.ProdutoRepository
	clienteRepo  repository.ClienteRepository
	loc          *time.Location
	nomeFantasia string
	pdfDir       string
}

func NewVendaService(
	repo repository.TransacaoRepository,
	metodoRepo repository.MetodoPagamentoRepository,
	produtoRepo repository.ProdutoRepository,
	clienteRepo repository.ClienteRepository,
	loc *time.Location,
	nomeFantasia string,
	pdfDir string,
) VendaService {
	return &vendaService{
		repo:         repo,
		metodoRepo:   metodoRepo,
		produtoRepo:  produtoRepo,
		clienteRepo:  clienteRepo,
		loc:          loc,
		nomeFantasia: nomeFantasia,
		pdfDir:       pdfDir,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Registrar ────────────────────────────────────────────────────────────────
// Validates the proposed sale entirely before touching the store, then
// persists Transacao + itens + pagamentos in a single transaction. A failed
// insert rolls back everything — partial sales are never observable.

func (s *vendaService) Registrar(ctx context.Context, req dto.RegistrarVendaRequest) (*dto.RegistrarVendaResponse, error) {
	if len(req.Itens) == 0 {
		return nil, validationf("a venda deve conter ao menos um item")
	}
	if !req.Total.IsPositive() {
		return nil, validationf("total é obrigatório e deve ser positivo")
	}
	if len(req.Pagamentos) == 0 {
		return nil, validationf("a venda deve conter ao menos um pagamento")
	}

	if req.ClienteID != nil {
		if _, err := s.clienteRepo.FindByID(ctx, *req.ClienteID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &ReferenceError{Entidade: "cliente", ID: fmt.Sprint(*req.ClienteID)}
			}
			return nil, &PersistenceError{Op: "buscar cliente", Err: err}
		}
	}

	// Resolve items. Unit price and subtotal are frozen here; the current
	// product price never rewrites history.
	itens := make([]model.TransacaoItem, 0, len(req.Itens))
	for i, item := range req.Itens {
		if item.Quantidade <= 0 {
			return nil, validationf("item %d: quantidade deve ser positiva", i+1)
		}
		if item.PrecoUnitario.IsNegative() {
			return nil, validationf("item %d: preço unitário não pode ser negativo", i+1)
		}

		descricao := strings.TrimSpace(item.Descricao)
		if item.ProdutoID != nil {
			p, err := s.produtoRepo.FindByID(ctx, *item.ProdutoID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, &ReferenceError{Entidade: "produto", ID: fmt.Sprint(*item.ProdutoID)}
				}
				return nil, &PersistenceError{Op: "buscar produto", Err: err}
			}
			if descricao == "" {
				descricao = p.Nome
			}
		} else if descricao == "" {
			return nil, validationf("item %d: informe um produto ou uma descrição", i+1)
		}

		esperado := item.PrecoUnitario.Mul(decimal.NewFromInt(int64(item.Quantidade)))
		subtotal := item.Subtotal
		if subtotal.IsZero() {
			subtotal = esperado
		} else if !subtotal.Equal(esperado) {
			return nil, validationf("item %d: subtotal %s não corresponde a %d × %s",
				i+1, subtotal.StringFixed(2), item.Quantidade, item.PrecoUnitario.StringFixed(2))
		}

		itens = append(itens, model.TransacaoItem{
			ProdutoID:     item.ProdutoID,
			Descricao:     descricao,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Subtotal:      subtotal,
		})
	}

	// Resolve payments and enforce Σpagamentos == total.
	pagamentos := make([]model.Pagamento, 0, len(req.Pagamentos))
	somaPagamentos := decimal.Zero
	for i, pag := range req.Pagamentos {
		if !pag.Valor.IsPositive() {
			return nil, validationf("pagamento %d: valor deve ser positivo", i+1)
		}
		m, err := s.metodoRepo.FindByID(ctx, pag.MetodoPagamentoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &ReferenceError{Entidade: "método de pagamento", ID: fmt.Sprint(pag.MetodoPagamentoID)}
			}
			return nil, &PersistenceError{Op: "buscar método de pagamento", Err: err}
		}
		if !m.Ativo {
			return nil, validationf("método de pagamento %s está inativo", m.Nome)
		}
		somaPagamentos = somaPagamentos.Add(pag.Valor)
		pagamentos = append(pagamentos, model.Pagamento{
			MetodoPagamentoID: pag.MetodoPagamentoID,
			Valor:             pag.Valor,
		})
	}

	if somaPagamentos.Sub(req.Total).Abs().GreaterThan(toleranciaPagamento) {
		return nil, validationf("soma dos pagamentos (%s) difere do total da venda (%s)",
			somaPagamentos.StringFixed(2), req.Total.StringFixed(2))
	}

	transacao := model.Transacao{
		Data:        time.Now().UTC(),
		Tipo:        model.TipoVenda,
		ClienteID:   req.ClienteID,
		Total:       req.Total,
		Observacoes: req.Observacoes,
		Itens:       itens,
		Pagamentos:  pagamentos,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, &transacao)
	})
	if txErr != nil {
		return nil, &PersistenceError{Op: "registrar venda", Err: txErr}
	}

	return &dto.RegistrarVendaResponse{TransacaoID: transacao.ID}, nil
}

// ── ObterPorID ───────────────────────────────────────────────────────────────

func (s *vendaService) ObterPorID(ctx context.Context, id uint) (*dto.TransacaoResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ReferenceError{Entidade: "transação", ID: fmt.Sprint(id)}
		}
		return nil, &PersistenceError{Op: "buscar transação", Err: err}
	}
	return transacaoToResponse(t, s.loc), nil
}

// ── GerarRecibo ──────────────────────────────────────────────────────────────

func (s *vendaService) GerarRecibo(ctx context.Context, id uint) (string, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &ReferenceError{Entidade: "transação", ID: fmt.Sprint(id)}
		}
		return "", &PersistenceError{Op: "buscar transação", Err: err}
	}
	if t.Tipo != model.TipoVenda {
		return "", validationf("recibo disponível apenas para vendas")
	}
	path, err := infra.GerarReciboPDF(t, s.nomeFantasia, s.pdfDir, s.loc)
	if err != nil {
		return "", &PersistenceError{Op: "gerar recibo", Err: err}
	}
	return path, nil
}

// transacaoToResponse converts a stored transaction (UTC) into its API shape,
// rendering the timestamp in the display timezone.
func transacaoToResponse(t *model.Transacao, loc *time.Location) *dto.TransacaoResponse {
	itens := make([]dto.ItemVendaResponse, 0, len(t.Itens))
	for _, item := range t.Itens {
		var produto *string
		if item.Produto != nil {
			nome := item.Produto.Nome
			produto = &nome
		}
		itens = append(itens, dto.ItemVendaResponse{
			Produto:       produto,
			Descricao:     item.Descricao,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Subtotal:      item.Subtotal,
		})
	}

	pagamentos := make([]dto.PagamentoResponse, 0, len(t.Pagamentos))
	for _, pag := range t.Pagamentos {
		resp := dto.PagamentoResponse{Valor: pag.Valor}
		if pag.MetodoPagamento != nil {
			resp.Metodo = pag.MetodoPagamento.Nome
			resp.Codigo = pag.MetodoPagamento.Codigo
		}
		pagamentos = append(pagamentos, resp)
	}

	var cliente *string
	if t.Cliente != nil {
		nome := t.Cliente.Nome
		cliente = &nome
	}

	return &dto.TransacaoResponse{
		ID:          t.ID,
		Tipo:        t.Tipo,
		Data:        t.Data.In(loc).Format(time.RFC3339),
		Cliente:     cliente,
		Total:       t.Total,
		Motivo:      t.Motivo,
		Observacoes: t.Observacoes,
		Itens:       itens,
		Pagamentos:  pagamentos,
	}
}
