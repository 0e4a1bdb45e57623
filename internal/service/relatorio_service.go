package service

import (
	"context"
	"strconv"
	"time"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/dto"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/repository"
)

// recentesLimit caps the recent-transactions list on the overall summary.
const recentesLimit = 10

type RelatorioService interface {
	SaldosPorMetodo(ctx context.Context) ([]dto.SaldoMetodoResponse, error)
	Resumo(ctx context.Context) (*dto.ResumoCaixaResponse, error)
	Historico(ctx context.Context, q dto.HistoricoQuery) ([]dto.TransacaoResponse, error)
}

type relatorioService struct {
	transacaoRepo repository.TransacaoRepository
	metodoRepo    repository.MetodoPagamentoRepository
	loc           *time.Location
}

func NewRelatorioService(
	transacaoRepo repository.TransacaoRepository,
	metodoRepo repository.MetodoPagamentoRepository,
	loc *time.Location,
) RelatorioService {
	return &relatorioService{transacaoRepo: transacaoRepo, metodoRepo: metodoRepo, loc: loc}
}

// All report views are recomputed from the Pagamento/Transacao rows on every
// call. There is no cache: a stale balance on a cash register is a
// correctness bug, and volumes here are tiny.

func (s *relatorioService) SaldosPorMetodo(ctx context.Context) ([]dto.SaldoMetodoResponse, error) {
	saldos, err := s.metodoRepo.Saldos(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "calcular saldos por método", Err: err}
	}
	resp := make([]dto.SaldoMetodoResponse, 0, len(saldos))
	for _, saldo := range saldos {
		resp = append(resp, dto.SaldoMetodoResponse{
			MetodoID:      saldo.MetodoID,
			Nome:          saldo.Nome,
			Codigo:        saldo.Codigo,
			Cor:           saldo.Cor,
			TotalVendas:   saldo.TotalVendas,
			TotalSangrias: saldo.TotalSangrias,
			Saldo:         saldo.Saldo,
		})
	}
	return resp, nil
}

// Resumo reports overall totals. SaldoAtual intentionally equals TotalVendas
// without netting sangrias — the per-method view is the one that nets them.
func (s *relatorioService) Resumo(ctx context.Context) (*dto.ResumoCaixaResponse, error) {
	resumo, err := s.transacaoRepo.Resumo(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "calcular resumo do caixa", Err: err}
	}
	recentes, err := s.transacaoRepo.Recentes(ctx, recentesLimit)
	if err != nil {
		return nil, &PersistenceError{Op: "listar transações recentes", Err: err}
	}

	resp := &dto.ResumoCaixaResponse{
		TotalVendas:   resumo.TotalVendas,
		TotalSangrias: resumo.TotalSangrias,
		SaldoAtual:    resumo.TotalVendas,
		Recentes:      make([]dto.TransacaoResponse, 0, len(recentes)),
	}
	for i := range recentes {
		resp.Recentes = append(resp.Recentes, *transacaoToResponse(&recentes[i], s.loc))
	}
	return resp, nil
}

func (s *relatorioService) Historico(ctx context.Context, q dto.HistoricoQuery) ([]dto.TransacaoResponse, error) {
	filter, err := s.parseFilter(q)
	if err != nil {
		return nil, err
	}

	transacoes, err := s.transacaoRepo.Historico(ctx, *filter)
	if err != nil {
		return nil, &PersistenceError{Op: "consultar histórico", Err: err}
	}

	resp := make([]dto.TransacaoResponse, 0, len(transacoes))
	for i := range transacoes {
		resp = append(resp, *transacaoToResponse(&transacoes[i], s.loc))
	}
	return resp, nil
}

// parseFilter turns the raw query into a repository filter. Dates are
// interpreted in the display timezone and widened to cover the whole day,
// then converted to UTC to match storage.
func (s *relatorioService) parseFilter(q dto.HistoricoQuery) (*repository.HistoricoFilter, error) {
	filter := repository.HistoricoFilter{Cliente: q.Cliente}

	if q.DataInicio != "" {
		d, err := time.ParseInLocation("2006-01-02", q.DataInicio, s.loc)
		if err != nil {
			return nil, validationf("data_inicio inválida: %s", q.DataInicio)
		}
		inicio := d.UTC()
		filter.DataInicio = &inicio
	}
	if q.DataFim != "" {
		d, err := time.ParseInLocation("2006-01-02", q.DataFim, s.loc)
		if err != nil {
			return nil, validationf("data_fim inválida: %s", q.DataFim)
		}
		fim := d.Add(24*time.Hour - time.Nanosecond).UTC()
		filter.DataFim = &fim
	}
	if filter.DataInicio != nil && filter.DataFim != nil && filter.DataFim.Before(*filter.DataInicio) {
		return nil, validationf("data_fim anterior a data_inicio")
	}

	for _, seletor := range q.Produtos {
		if id, err := strconv.ParseUint(seletor, 10, 32); err == nil {
			filter.ProdutoIDs = append(filter.ProdutoIDs, uint(id))
		} else if seletor != "" {
			filter.Descricoes = append(filter.Descricoes, seletor)
		}
	}
	return &filter, nil
}
