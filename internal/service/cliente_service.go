package service

import (
	"context"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/dto"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/model"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/repository"
)

// buscaClientesLimit matches the original autocomplete behavior.
const buscaClientesLimit = 10

type ClienteService interface {
	Criar(ctx context.Context, req dto.ClienteRequest) (*dto.ClienteResponse, error)
	Buscar(ctx context.Context, query string) ([]dto.ClienteResponse, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Criar(ctx context.Context, req dto.ClienteRequest) (*dto.ClienteResponse, error) {
	c := model.Cliente{
		Nome:        req.Nome,
		Telefone:    req.Telefone,
		Email:       req.Email,
		Observacoes: req.Observacoes,
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, &PersistenceError{Op: "criar cliente", Err: err}
	}
	return clienteToResponse(&c), nil
}

func (s *clienteService) Buscar(ctx context.Context, query string) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.Search(ctx, query, buscaClientesLimit)
	if err != nil {
		return nil, &PersistenceError{Op: "buscar clientes", Err: err}
	}
	resp := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		resp = append(resp, *clienteToResponse(&clientes[i]))
	}
	return resp, nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:       c.ID,
		Nome:     c.Nome,
		Telefone: c.Telefone,
		Email:    c.Email,
	}
}
