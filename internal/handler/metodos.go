package handler

import (
	"net/http"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/dto"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/service"

	"github.com/gin-gonic/gin"
)

type MetodosHandler struct{ svc service.MetodoPagamentoService }

func NewMetodosHandler(svc service.MetodoPagamentoService) *MetodosHandler {
	return &MetodosHandler{svc: svc}
}

// ListarMetodos godoc
// @Summary      Listar métodos de pagamento
// @Tags         catalogo
// @Produce      json
// @Param        todos query bool false "Incluir inativos"
// @Success      200 {array} dto.MetodoPagamentoResponse
// @Router       /api/metodos-pagamento [get]
func (h *MetodosHandler) ListarMetodos(c *gin.Context) {
	somenteAtivos := c.Query("todos") != "true"
	resp, err := h.svc.Listar(c.Request.Context(), somenteAtivos)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CriarMetodo godoc
// @Summary      Cadastrar método de pagamento
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Param        body body dto.MetodoPagamentoRequest true "Dados do método"
// @Success      201 {object} dto.MetodoPagamentoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /api/metodos-pagamento [post]
func (h *MetodosHandler) CriarMetodo(c *gin.Context) {
	var req dto.MetodoPagamentoRequest
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

// AtualizarMetodo godoc
// @Summary      Atualizar método de pagamento
// @Description  O código de um método já utilizado em pagamentos não pode ser alterado.
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Param        id   path int true "ID do método"
// @Param        body body dto.MetodoPagamentoRequest true "Dados do método"
// @Success      200 {object} dto.MetodoPagamentoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/metodos-pagamento/{id} [put]
func (h *MetodosHandler) AtualizarMetodo(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.MetodoPagamentoRequest
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

// RemoverMetodo godoc
// @Summary      Remover método de pagamento
// @Description  Exclui definitivamente métodos nunca usados; desativa os referenciados por pagamentos.
// @Tags         catalogo
// @Param        id path int true "ID do método"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /api/metodos-pagamento/{id} [delete]
func (h *MetodosHandler) RemoverMetodo(c *gin.Context) {
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
