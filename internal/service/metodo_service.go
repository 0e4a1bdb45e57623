package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/dto"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/model"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/repository"

	"gorm.io/gorm"
)

type MetodoPagamentoService interface {
	Criar(ctx context.Context, req dto.MetodoPagamentoRequest) (*dto.MetodoPagamentoResponse, error)
	Listar(ctx context.Context, somenteAtivos bool) ([]dto.MetodoPagamentoResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.MetodoPagamentoRequest) (*dto.MetodoPagamentoResponse, error)
	Remover(ctx context.Context, id uint) error
}

type metodoPagamentoService struct {
	repo repository.MetodoPagamentoRepository
}

func NewMetodoPagamentoService(repo repository.MetodoPagamentoRepository) MetodoPagamentoService {
	return &metodoPagamentoService{repo: repo}
}

func (s *metodoPagamentoService) Criar(ctx context.Context, req dto.MetodoPagamentoRequest) (*dto.MetodoPagamentoResponse, error) {
	if _, err := s.repo.FindByCodigo(ctx, req.Codigo); err == nil {
		return nil, validationf("já existe um método de pagamento com o código %q", req.Codigo)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &PersistenceError{Op: "verificar código do método", Err: err}
	}

	m := model.MetodoPagamento{
		Nome:      req.Nome,
		Codigo:    req.Codigo,
		Descricao: req.Descricao,
		Cor:       req.Cor,
		Ativo:     true,
	}
	if err := s.repo.Create(ctx, &m); err != nil {
		return nil, &PersistenceError{Op: "criar método de pagamento", Err: err}
	}
	return metodoToResponse(&m), nil
}

func (s *metodoPagamentoService) Listar(ctx context.Context, somenteAtivos bool) ([]dto.MetodoPagamentoResponse, error) {
	metodos, err := s.repo.List(ctx, somenteAtivos)
	if err != nil {
		return nil, &PersistenceError{Op: "listar métodos de pagamento", Err: err}
	}
	resp := make([]dto.MetodoPagamentoResponse, 0, len(metodos))
	for i := range metodos {
		resp = append(resp, *metodoToResponse(&metodos[i]))
	}
	return resp, nil
}

// Atualizar never changes the code of a method already referenced by
// payments: the code is its identity in reports and seeds.
func (s *metodoPagamentoService) Atualizar(ctx context.Context, id uint, req dto.MetodoPagamentoRequest) (*dto.MetodoPagamentoResponse, error) {
	m, err := s.findMetodo(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Codigo != m.Codigo {
		usos, err := s.repo.CountPagamentos(ctx, id)
		if err != nil {
			return nil, &PersistenceError{Op: "verificar uso do método", Err: err}
		}
		if usos > 0 {
			return nil, validationf("código de um método já utilizado não pode ser alterado")
		}
		if _, err := s.repo.FindByCodigo(ctx, req.Codigo); err == nil {
			return nil, validationf("já existe um método de pagamento com o código %q", req.Codigo)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &PersistenceError{Op: "verificar código do método", Err: err}
		}
		m.Codigo = req.Codigo
	}
	m.Nome = req.Nome
	m.Descricao = req.Descricao
	m.Cor = req.Cor
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, &PersistenceError{Op: "atualizar método de pagamento", Err: err}
	}
	return metodoToResponse(m), nil
}

// Remover hard-deletes a method never used by any payment; otherwise only
// deactivates it, keeping history consistent.
func (s *metodoPagamentoService) Remover(ctx context.Context, id uint) error {
	m, err := s.findMetodo(ctx, id)
	if err != nil {
		return err
	}
	usos, err := s.repo.CountPagamentos(ctx, id)
	if err != nil {
		return &PersistenceError{Op: "verificar uso do método", Err: err}
	}
	if usos == 0 {
		if err := s.repo.Delete(ctx, id); err != nil {
			return &PersistenceError{Op: "excluir método de pagamento", Err: err}
		}
		return nil
	}
	m.Ativo = false
	if err := s.repo.Update(ctx, m); err != nil {
		return &PersistenceError{Op: "desativar método de pagamento", Err: err}
	}
	return nil
}

func (s *metodoPagamentoService) findMetodo(ctx context.Context, id uint) (*model.MetodoPagamento, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ReferenceError{Entidade: "método de pagamento", ID: fmt.Sprint(id)}
		}
		return nil, &PersistenceError{Op: "buscar método de pagamento", Err: err}
	}
	return m, nil
}

func metodoToResponse(m *model.MetodoPagamento) *dto.MetodoPagamentoResponse {
	return &dto.MetodoPagamentoResponse{
		ID:        m.ID,
		Nome:      m.Nome,
		Codigo:    m.Codigo,
		Descricao: m.Descricao,
		Cor:       m.Cor,
		Ativo:     m.Ativo,
	}
}
