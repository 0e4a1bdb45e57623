package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/dto"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/model"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/repository"

	"gorm.io/gorm"
)

type SangriaService interface {
	Registrar(ctx context.Context, req dto.RegistrarSangriaRequest) (*dto.SangriaResponse, error)
}

type sangriaService struct {
	repo       repository.TransacaoRepository
	metodoRepo repository.MetodoPagamentoRepository
}

func NewSangriaService(
	repo repository.TransacaoRepository,
	metodoRepo repository.MetodoPagamentoRepository,
) SangriaService {
	return &sangriaService{repo: repo, metodoRepo: metodoRepo}
}

// ── Registrar ────────────────────────────────────────────────────────────────
// A sangria is a negative transaction with a single negative payment against
// the chosen method. The balance read, the sufficiency check and the insert
// run inside one transaction holding a row lock on the method, so two
// concurrent withdrawals cannot both pass the check and overdraw the till.

func (s *sangriaService) Registrar(ctx context.Context, req dto.RegistrarSangriaRequest) (*dto.SangriaResponse, error) {
	if !req.Valor.IsPositive() {
		return nil, validationf("valor da sangria é obrigatório e deve ser positivo")
	}
	motivo := strings.TrimSpace(req.Motivo)
	if motivo == "" {
		return nil, validationf("motivo da sangria é obrigatório")
	}
	if req.MetodoPagamentoID == 0 {
		return nil, validationf("método de pagamento é obrigatório")
	}

	metodo, err := s.metodoRepo.FindByID(ctx, req.MetodoPagamentoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ReferenceError{Entidade: "método de pagamento", ID: fmt.Sprint(req.MetodoPagamentoID)}
		}
		return nil, &PersistenceError{Op: "buscar método de pagamento", Err: err}
	}

	var resp dto.SangriaResponse
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		saldo, err := s.metodoRepo.SaldoForUpdate(ctx, tx, metodo.ID)
		if err != nil {
			return &PersistenceError{Op: "calcular saldo do método", Err: err}
		}
		if req.Valor.GreaterThan(saldo) {
			return &InsufficientBalanceError{
				Metodo:     metodo.Nome,
				Disponivel: saldo,
				Solicitado: req.Valor,
			}
		}

		transacao := model.Transacao{
			Data:   time.Now().UTC(),
			Tipo:   model.TipoSangria,
			Total:  req.Valor.Neg(),
			Motivo: &motivo,
			Pagamentos: []model.Pagamento{{
				MetodoPagamentoID: metodo.ID,
				Valor:             req.Valor.Neg(),
			}},
		}
		if err := s.repo.Create(ctx, tx, &transacao); err != nil {
			return &PersistenceError{Op: "registrar sangria", Err: err}
		}

		resp = dto.SangriaResponse{
			TransacaoID:   transacao.ID,
			Metodo:        metodo.Nome,
			ValorRetirado: req.Valor,
			SaldoAnterior: saldo,
			NovoSaldo:     saldo.Sub(req.Valor),
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &resp, nil
}
