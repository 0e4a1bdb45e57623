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

type ProdutoService interface {
	Criar(ctx context.Context, req dto.ProdutoRequest) (*dto.ProdutoResponse, error)
	ObterPorID(ctx context.Context, id uint) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context, somenteAtivos bool) ([]dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.ProdutoRequest) (*dto.ProdutoResponse, error)
	Remover(ctx context.Context, id uint) error
}

type produtoService struct {
	repo repository.ProdutoRepository
}

func NewProdutoService(repo repository.ProdutoRepository) ProdutoService {
	return &produtoService{repo: repo}
}

func (s *produtoService) Criar(ctx context.Context, req dto.ProdutoRequest) (*dto.ProdutoResponse, error) {
	tipo := req.Tipo
	if tipo == "" {
		tipo = "servico"
	}
	p := model.Produto{
		Nome:      req.Nome,
		Descricao: req.Descricao,
		Preco:     req.Preco,
		Tipo:      tipo,
		Ativo:     true,
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, &PersistenceError{Op: "criar produto", Err: err}
	}
	return produtoToResponse(&p), nil
}

func (s *produtoService) ObterPorID(ctx context.Context, id uint) (*dto.ProdutoResponse, error) {
	p, err := s.findProduto(ctx, id)
	if err != nil {
		return nil, err
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) Listar(ctx context.Context, somenteAtivos bool) ([]dto.ProdutoResponse, error) {
	produtos, err := s.repo.List(ctx, somenteAtivos)
	if err != nil {
		return nil, &PersistenceError{Op: "listar produtos", Err: err}
	}
	resp := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		resp = append(resp, *produtoToResponse(&produtos[i]))
	}
	return resp, nil
}

// Atualizar changes name/price for future sales only; line items already
// recorded keep the frozen price.
func (s *produtoService) Atualizar(ctx context.Context, id uint, req dto.ProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := s.findProduto(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Nome = req.Nome
	p.Descricao = req.Descricao
	p.Preco = req.Preco
	if req.Tipo != "" {
		p.Tipo = req.Tipo
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, &PersistenceError{Op: "atualizar produto", Err: err}
	}
	return produtoToResponse(p), nil
}

// Remover hard-deletes a product that was never sold and deactivates one
// already referenced by history.
func (s *produtoService) Remover(ctx context.Context, id uint) error {
	p, err := s.findProduto(ctx, id)
	if err != nil {
		return err
	}
	usos, err := s.repo.CountItens(ctx, id)
	if err != nil {
		return &PersistenceError{Op: "verificar uso do produto", Err: err}
	}
	if usos == 0 {
		if err := s.repo.Delete(ctx, id); err != nil {
			return &PersistenceError{Op: "excluir produto", Err: err}
		}
		return nil
	}
	p.Ativo = false
	if err := s.repo.Update(ctx, p); err != nil {
		return &PersistenceError{Op: "desativar produto", Err: err}
	}
	return nil
}

func (s *produtoService) findProduto(ctx context.Context, id uint) (*model.Produto, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ReferenceError{Entidade: "produto", ID: fmt.Sprint(id)}
		}
		return nil, &PersistenceError{Op: "buscar produto", Err: err}
	}
	return p, nil
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:        p.ID,
		Nome:      p.Nome,
		Descricao: p.Descricao,
		Preco:     p.Preco,
		Tipo:      p.Tipo,
		Ativo:     p.Ativo,
	}
}
