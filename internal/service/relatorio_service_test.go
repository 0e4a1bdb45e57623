package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/dto"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/model"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type relatorioFixture struct {
	trans   *stubTransacaoRepo
	metodos *stubMetodoRepo
	svc     service.RelatorioService
}

func newRelatorioFixture(t *testing.T) *relatorioFixture {
	t.Helper()
	trans := newStubTransacaoRepo()
	metodos := newStubMetodoRepo(trans)
	ctx := context.Background()

	require.NoError(t, metodos.Create(ctx, &model.MetodoPagamento{Nome: "Dinheiro", Codigo: "dinheiro", Ativo: true}))
	require.NoError(t, metodos.Create(ctx, &model.MetodoPagamento{Nome: "PIX", Codigo: "pix", Ativo: true}))

	return &relatorioFixture{
		trans:   trans,
		metodos: metodos,
		svc:     service.NewRelatorioService(trans, metodos, locTeste),
	}
}

func (f *relatorioFixture) venda(t *testing.T, data time.Time, metodoID uint, valor int64, itens ...model.TransacaoItem) uint {
	t.Helper()
	tr := model.Transacao{
		Data:  data,
		Tipo:  model.TipoVenda,
		Total: decimal.NewFromInt(valor),
		Itens: itens,
		Pagamentos: []model.Pagamento{
			{MetodoPagamentoID: metodoID, Valor: decimal.NewFromInt(valor)},
		},
	}
	require.NoError(t, f.trans.Create(context.Background(), nil, &tr))
	return tr.ID
}

func (f *relatorioFixture) sangria(t *testing.T, data time.Time, metodoID uint, valor int64) uint {
	t.Helper()
	motivo := "retirada"
	tr := model.Transacao{
		Data:   data,
		Tipo:   model.TipoSangria,
		Total:  decimal.NewFromInt(-valor),
		Motivo: &motivo,
		Pagamentos: []model.Pagamento{
			{MetodoPagamentoID: metodoID, Valor: decimal.NewFromInt(-valor)},
		},
	}
	require.NoError(t, f.trans.Create(context.Background(), nil, &tr))
	return tr.ID
}

func TestSaldosPorMetodo(t *testing.T) {
	f := newRelatorioFixture(t)
	agora := time.Now().UTC()

	f.venda(t, agora, 1, 100)
	f.venda(t, agora, 2, 50)
	f.sangria(t, agora, 1, 30)

	saldos, err := f.svc.SaldosPorMetodo(context.Background())
	require.NoError(t, err)
	require.Len(t, saldos, 2)

	dinheiro := saldos[0]
	assert.Equal(t, "Dinheiro", dinheiro.Nome)
	assert.True(t, dinheiro.TotalVendas.Equal(decimal.NewFromInt(100)))
	assert.True(t, dinheiro.TotalSangrias.Equal(decimal.NewFromInt(30)))
	assert.True(t, dinheiro.Saldo.Equal(decimal.NewFromInt(70)))

	pix := saldos[1]
	assert.Equal(t, "PIX", pix.Nome)
	assert.True(t, pix.Saldo.Equal(decimal.NewFromInt(50)))
}

func TestResumo(t *testing.T) {
	f := newRelatorioFixture(t)
	agora := time.Now().UTC()

	f.venda(t, agora, 1, 100)
	f.venda(t, agora, 2, 50)
	f.sangria(t, agora, 1, 30)

	resumo, err := f.svc.Resumo(context.Background())
	require.NoError(t, err)
	assert.True(t, resumo.TotalVendas.Equal(decimal.NewFromInt(150)))
	assert.True(t, resumo.TotalSangrias.Equal(decimal.NewFromInt(30)))
	// The overall balance mirrors gross sales; only the per-method view nets
	// withdrawals.
	assert.True(t, resumo.SaldoAtual.Equal(resumo.TotalVendas))
	assert.Len(t, resumo.Recentes, 3)
}

func TestResumoLimitaRecentes(t *testing.T) {
	f := newRelatorioFixture(t)
	agora := time.Now().UTC()

	for i := 0; i < 12; i++ {
		f.venda(t, agora.Add(time.Duration(i)*time.Minute), 1, 10)
	}

	resumo, err := f.svc.Resumo(context.Background())
	require.NoError(t, err)
	assert.Len(t, resumo.Recentes, 10)
}

func TestResumoRecentesDesempatePorID(t *testing.T) {
	f := newRelatorioFixture(t)

	// Same instant: the later insert (larger id) must come first.
	instante := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	primeira := f.venda(t, instante, 1, 10)
	segunda := f.venda(t, instante, 1, 20)

	resumo, err := f.svc.Resumo(context.Background())
	require.NoError(t, err)
	require.Len(t, resumo.Recentes, 2)
	assert.Equal(t, segunda, resumo.Recentes[0].ID)
	assert.Equal(t, primeira, resumo.Recentes[1].ID)
}

func TestHistoricoPeriodoNoFusoDeExibicao(t *testing.T) {
	f := newRelatorioFixture(t)

	// 2026-01-02 01:00 UTC is still Jan 1st, 22:00 in UTC-3.
	dentro := f.venda(t, time.Date(2026, 1, 2, 1, 0, 0, 0, time.UTC), 1, 10)
	f.venda(t, time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC), 1, 20)

	resp, err := f.svc.Historico(context.Background(), dto.HistoricoQuery{
		DataInicio: "2026-01-01",
		DataFim:    "2026-01-01",
	})
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, dentro, resp[0].ID)
}

func TestHistoricoFiltroCliente(t *testing.T) {
	f := newRelatorioFixture(t)
	agora := time.Now().UTC()

	clienteID := uint(7)
	tr := model.Transacao{
		Data:      agora,
		Tipo:      model.TipoVenda,
		ClienteID: &clienteID,
		Total:     decimal.NewFromInt(10),
		Cliente:   &model.Cliente{ID: clienteID, Nome: "Maria Souza"},
	}
	require.NoError(t, f.trans.Create(context.Background(), nil, &tr))
	f.venda(t, agora, 1, 20)

	resp, err := f.svc.Historico(context.Background(), dto.HistoricoQuery{Cliente: "mar"})
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, tr.ID, resp[0].ID)
}

func TestHistoricoFiltroProdutoIncluiSangrias(t *testing.T) {
	f := newRelatorioFixture(t)
	agora := time.Now().UTC()

	produtoID := uint(1)
	comProduto := f.venda(t, agora, 1, 50, model.TransacaoItem{
		ProdutoID: &produtoID, Descricao: "Consulta", Quantidade: 1,
		PrecoUnitario: decimal.NewFromInt(50), Subtotal: decimal.NewFromInt(50),
	})
	avulsa := f.venda(t, agora, 1, 20, model.TransacaoItem{
		Descricao: "Taxa avulsa", Quantidade: 1,
		PrecoUnitario: decimal.NewFromInt(20), Subtotal: decimal.NewFromInt(20),
	})
	retirada := f.sangria(t, agora, 1, 10)

	// Numeric selector matches the registered product; withdrawals are always
	// kept in product-filtered results.
	resp, err := f.svc.Historico(context.Background(), dto.HistoricoQuery{Produtos: []string{"1"}})
	require.NoError(t, err)
	ids := idsOf(resp)
	assert.Contains(t, ids, comProduto)
	assert.Contains(t, ids, retirada)
	assert.NotContains(t, ids, avulsa)

	// Free-text selector matches the one-off description.
	resp, err = f.svc.Historico(context.Background(), dto.HistoricoQuery{Produtos: []string{"Taxa avulsa"}})
	require.NoError(t, err)
	ids = idsOf(resp)
	assert.Contains(t, ids, avulsa)
	assert.Contains(t, ids, retirada)
	assert.NotContains(t, ids, comProduto)
}

func TestHistoricoFiltroCombinadoSemResultados(t *testing.T) {
	f := newRelatorioFixture(t)

	produtoID := uint(1)
	f.venda(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), 1, 50, model.TransacaoItem{
		ProdutoID: &produtoID, Descricao: "Consulta", Quantidade: 1,
		PrecoUnitario: decimal.NewFromInt(50), Subtotal: decimal.NewFromInt(50),
	})
	f.sangria(t, time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC), 1, 10)

	// A product that was never sold combined with a range that excludes every
	// withdrawal yields nothing: the always-include-sangrias predicate does not
	// override the date filter.
	resp, err := f.svc.Historico(context.Background(), dto.HistoricoQuery{
		DataInicio: "2026-04-01",
		DataFim:    "2026-04-30",
		Produtos:   []string{"99"},
	})
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestHistoricoDatasInvalidas(t *testing.T) {
	f := newRelatorioFixture(t)

	_, err := f.svc.Historico(context.Background(), dto.HistoricoQuery{DataInicio: "01/01/2026"})
	var valErr *service.ValidationError
	require.ErrorAs(t, err, &valErr)

	_, err = f.svc.Historico(context.Background(), dto.HistoricoQuery{
		DataInicio: "2026-02-01",
		DataFim:    "2026-01-01",
	})
	require.ErrorAs(t, err, &valErr)
}

func TestHistoricoOrdenacao(t *testing.T) {
	f := newRelatorioFixture(t)

	antiga := f.venda(t, time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC), 1, 10)
	recente := f.venda(t, time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC), 1, 20)

	resp, err := f.svc.Historico(context.Background(), dto.HistoricoQuery{})
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, recente, resp[0].ID)
	assert.Equal(t, antiga, resp[1].ID)
}

func idsOf(resp []dto.TransacaoResponse) []uint {
	ids := make([]uint, 0, len(resp))
	for _, r := range resp {
		ids = append(ids, r.ID)
	}
	return ids
}
