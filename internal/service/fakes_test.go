package service_test

// In-memory repository stubs shared by the service tests. They reproduce the
// ordering and filtering semantics of the SQL implementations closely enough
// for the service-level behavior under test.

import (
	"context"
	"sort"
	"strings"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/model"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── TransacaoRepository ──────────────────────────────────────────────────────

type stubTransacaoRepo struct {
	transacoes []model.Transacao
	nextID     uint
	createErr  error
}

func newStubTransacaoRepo() *stubTransacaoRepo { return &stubTransacaoRepo{nextID: 1} }

func (r *stubTransacaoRepo) DB() *gorm.DB { return nil }

func (r *stubTransacaoRepo) Create(_ context.Context, _ *gorm.DB, t *model.Transacao) error {
	if r.createErr != nil {
		return r.createErr
	}
	t.ID = r.nextID
	r.nextID++
	r.transacoes = append(r.transacoes, *t)
	return nil
}

func (r *stubTransacaoRepo) FindByID(_ context.Context, id uint) (*model.Transacao, error) {
	for i := range r.transacoes {
		if r.transacoes[i].ID == id {
			return &r.transacoes[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTransacaoRepo) Historico(_ context.Context, filter repository.HistoricoFilter) ([]model.Transacao, error) {
	var out []model.Transacao
	for _, t := range r.transacoes {
		if filter.DataInicio != nil && t.Data.Before(*filter.DataInicio) {
			continue
		}
		if filter.DataFim != nil && t.Data.After(*filter.DataFim) {
			continue
		}
		if filter.Cliente != "" {
			if t.Cliente == nil || !strings.Contains(strings.ToLower(t.Cliente.Nome), strings.ToLower(filter.Cliente)) {
				continue
			}
		}
		if len(filter.ProdutoIDs) > 0 || len(filter.Descricoes) > 0 {
			if !matchesProduto(t, filter) && t.Tipo != model.TipoSangria {
				continue
			}
		}
		out = append(out, t)
	}
	sortDescByDataID(out)
	return out, nil
}

func matchesProduto(t model.Transacao, filter repository.HistoricoFilter) bool {
	for _, item := range t.Itens {
		if item.ProdutoID != nil {
			for _, id := range filter.ProdutoIDs {
				if *item.ProdutoID == id {
					return true
				}
			}
		}
		for _, d := range filter.Descricoes {
			if item.Descricao == d {
				return true
			}
		}
	}
	return false
}

func (r *stubTransacaoRepo) Recentes(_ context.Context, limit int) ([]model.Transacao, error) {
	out := make([]model.Transacao, len(r.transacoes))
	copy(out, r.transacoes)
	sortDescByDataID(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubTransacaoRepo) Resumo(_ context.Context) (*repository.ResumoCaixa, error) {
	resumo := &repository.ResumoCaixa{TotalVendas: decimal.Zero, TotalSangrias: decimal.Zero}
	for _, t := range r.transacoes {
		if t.Total.IsPositive() {
			resumo.TotalVendas = resumo.TotalVendas.Add(t.Total)
		} else {
			resumo.TotalSangrias = resumo.TotalSangrias.Add(t.Total.Neg())
		}
	}
	return resumo, nil
}

func sortDescByDataID(ts []model.Transacao) {
	sort.Slice(ts, func(i, j int) bool {
		if !ts[i].Data.Equal(ts[j].Data) {
			return ts[i].Data.After(ts[j].Data)
		}
		return ts[i].ID > ts[j].ID
	})
}

var _ repository.TransacaoRepository = (*stubTransacaoRepo)(nil)

// ── MetodoPagamentoRepository ────────────────────────────────────────────────

type stubMetodoRepo struct {
	metodos map[uint]*model.MetodoPagamento
	nextID  uint
	// trans backs the balance computations with real payment rows.
	trans *stubTransacaoRepo
}

func newStubMetodoRepo(trans *stubTransacaoRepo) *stubMetodoRepo {
	return &stubMetodoRepo{metodos: make(map[uint]*model.MetodoPagamento), nextID: 1, trans: trans}
}

func (r *stubMetodoRepo) Create(_ context.Context, m *model.MetodoPagamento) error {
	m.ID = r.nextID
	r.nextID++
	r.metodos[m.ID] = m
	return nil
}

func (r *stubMetodoRepo) Update(_ context.Context, m *model.MetodoPagamento) error {
	r.metodos[m.ID] = m
	return nil
}

func (r *stubMetodoRepo) Delete(_ context.Context, id uint) error {
	delete(r.metodos, id)
	return nil
}

func (r *stubMetodoRepo) FindByID(_ context.Context, id uint) (*model.MetodoPagamento, error) {
	m, ok := r.metodos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubMetodoRepo) FindByCodigo(_ context.Context, codigo string) (*model.MetodoPagamento, error) {
	for _, m := range r.metodos {
		if m.Codigo == codigo {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubMetodoRepo) List(_ context.Context, somenteAtivos bool) ([]model.MetodoPagamento, error) {
	var out []model.MetodoPagamento
	for _, m := range r.metodos {
		if somenteAtivos && !m.Ativo {
			continue
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *stubMetodoRepo) CountPagamentos(_ context.Context, id uint) (int64, error) {
	var count int64
	for _, t := range r.trans.transacoes {
		for _, p := range t.Pagamentos {
			if p.MetodoPagamentoID == id {
				count++
			}
		}
	}
	return count, nil
}

func (r *stubMetodoRepo) Saldos(_ context.Context) ([]repository.SaldoMetodo, error) {
	var rows []repository.SaldoMetodo
	for _, m := range r.metodos {
		if !m.Ativo {
			continue
		}
		row := repository.SaldoMetodo{
			MetodoID:      m.ID,
			Nome:          m.Nome,
			Codigo:        m.Codigo,
			Cor:           m.Cor,
			TotalVendas:   decimal.Zero,
			TotalSangrias: decimal.Zero,
			Saldo:         decimal.Zero,
		}
		for _, t := range r.trans.transacoes {
			for _, p := range t.Pagamentos {
				if p.MetodoPagamentoID != m.ID {
					continue
				}
				if p.Valor.IsPositive() {
					row.TotalVendas = row.TotalVendas.Add(p.Valor)
				} else {
					row.TotalSangrias = row.TotalSangrias.Add(p.Valor.Neg())
				}
				row.Saldo = row.Saldo.Add(p.Valor)
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Nome < rows[j].Nome })
	return rows, nil
}

func (r *stubMetodoRepo) SaldoForUpdate(_ context.Context, _ *gorm.DB, id uint) (decimal.Decimal, error) {
	if _, ok := r.metodos[id]; !ok {
		return decimal.Zero, gorm.ErrRecordNotFound
	}
	saldo := decimal.Zero
	for _, t := range r.trans.transacoes {
		for _, p := range t.Pagamentos {
			if p.MetodoPagamentoID == id {
				saldo = saldo.Add(p.Valor)
			}
		}
	}
	return saldo, nil
}

var _ repository.MetodoPagamentoRepository = (*stubMetodoRepo)(nil)

// ── ProdutoRepository ────────────────────────────────────────────────────────

type stubProdutoRepo struct {
	produtos map[uint]*model.Produto
	nextID   uint
	trans    *stubTransacaoRepo
}

func newStubProdutoRepo(trans *stubTransacaoRepo) *stubProdutoRepo {
	return &stubProdutoRepo{produtos: make(map[uint]*model.Produto), nextID: 1, trans: trans}
}

func (r *stubProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	p.ID = r.nextID
	r.nextID++
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) Update(_ context.Context, p *model.Produto) error {
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) Delete(_ context.Context, id uint) error {
	delete(r.produtos, id)
	return nil
}

func (r *stubProdutoRepo) FindByID(_ context.Context, id uint) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProdutoRepo) List(_ context.Context, somenteAtivos bool) ([]model.Produto, error) {
	var out []model.Produto
	for _, p := range r.produtos {
		if somenteAtivos && !p.Ativo {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *stubProdutoRepo) CountItens(_ context.Context, id uint) (int64, error) {
	var count int64
	for _, t := range r.trans.transacoes {
		for _, item := range t.Itens {
			if item.ProdutoID != nil && *item.ProdutoID == id {
				count++
			}
		}
	}
	return count, nil
}

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)

// ── ClienteRepository ────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uint]*model.Cliente
	nextID   uint
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uint]*model.Cliente), nextID: 1}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	c.ID = r.nextID
	r.nextID++
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uint) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) Search(_ context.Context, query string, limit int) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		if query != "" && !strings.Contains(strings.ToLower(c.Nome), strings.ToLower(query)) {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── ConfigRepository ─────────────────────────────────────────────────────────

type stubConfigRepo struct {
	valores map[string]*model.SystemConfig
	nextID  uint
}

func newStubConfigRepo() *stubConfigRepo {
	return &stubConfigRepo{valores: make(map[string]*model.SystemConfig), nextID: 1}
}

func (r *stubConfigRepo) Find(_ context.Context, chave string) (*model.SystemConfig, error) {
	cfg, ok := r.valores[chave]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cfg, nil
}

func (r *stubConfigRepo) Upsert(_ context.Context, chave, valor string, descricao *string) error {
	if existing, ok := r.valores[chave]; ok {
		existing.Valor = valor
		if descricao != nil {
			existing.Descricao = descricao
		}
		return nil
	}
	r.valores[chave] = &model.SystemConfig{ID: r.nextID, Chave: chave, Valor: valor, Descricao: descricao}
	r.nextID++
	return nil
}

var _ repository.ConfigRepository = (*stubConfigRepo)(nil)
