package handler

import (
	"net/http"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/dto"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// CriarCliente godoc
// @Summary      Cadastrar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body body dto.ClienteRequest true "Dados do cliente"
// @Success      201 {object} dto.ClienteResponse
// @Failure      422 {object} apierror.ValidationError
// @Router       /api/clientes [post]
func (h *ClientesHandler) CriarCliente(c *gin.Context) {
	var req dto.ClienteRequest
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

// BuscarClientes godoc
// @Summary      Buscar clientes por nome (autocomplete)
// @Tags         clientes
// @Produce      json
// @Param        q query string false "Nome parcial"
// @Success      200 {array} dto.ClienteResponse
// @Router       /api/clientes [get]
func (h *ClientesHandler) BuscarClientes(c *gin.Context) {
	resp, err := h.svc.Buscar(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
