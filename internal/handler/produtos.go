package handler

import (
	"net/http"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/dto"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/service"

	"github.com/gin-gonic/gin"
)

type ProdutosHandler struct{ svc service.ProdutoService }

func NewProdutosHandler(svc service.ProdutoService) *ProdutosHandler {
	return &ProdutosHandler{svc: svc}
}

// ListarProdutos godoc
// @Summary      Listar produtos e serviços
// @Tags         catalogo
// @Produce      json
// @Param        todos query bool false "Incluir inativos"
// @Success      200 {array} dto.ProdutoResponse
// @Router       /api/produtos [get]
func (h *ProdutosHandler) ListarProdutos(c *gin.Context) {
	somenteAtivos := c.Query("todos") != "true"
	resp, err := h.svc.Listar(c.Request.Context(), somenteAtivos)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObterProduto godoc
// @Summary      Consultar produto
// @Tags         catalogo
// @Produce      json
// @Param        id path int true "ID do produto"
// @Success      200 {object} dto.ProdutoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/produtos/{id} [get]
func (h *ProdutosHandler) ObterProduto(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CriarProduto godoc
// @Summary      Cadastrar produto ou serviço
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Param        body body dto.ProdutoRequest true "Dados do produto"
// @Success      201 {object} dto.ProdutoResponse
// @Failure      422 {object} apierror.ValidationError
// @Router       /api/produtos [post]
func (h *ProdutosHandler) CriarProduto(c *gin.Context) {
	var req dto.ProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AtualizarProduto godoc
// @Summary      Atualizar produto ou serviço
// @Description  Muda nome/preço para vendas futuras; itens já vendidos preservam o preço congelado.
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Param        id   path int true "ID do produto"
// @Param        body body dto.ProdutoRequest true "Dados do produto"
// @Success      200 {object} dto.ProdutoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/produtos/{id} [put]
func (h *ProdutosHandler) AtualizarProduto(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.ProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RemoverProduto godoc
// @Summary      Remover produto ou serviço
// @Description  Exclui definitivamente produtos nunca vendidos; desativa os já referenciados pelo histórico.
// @Tags         catalogo
// @Param        id path int true "ID do produto"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /api/produtos/{id} [delete]
func (h *ProdutosHandler) RemoverProduto(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Remover(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
