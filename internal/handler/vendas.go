package handler

import (
	"net/http"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/dto"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/service"

	"github.com/gin-gonic/gin"
)

type VendasHandler struct{ svc service.VendaService }

func NewVendasHandler(svc service.VendaService) *VendasHandler { return &VendasHandler{svc: svc} }

// RegistrarVenda godoc
// @Summary      Registrar uma nova venda
// @Description  Cria uma venda atômica com itens e pagamentos divididos entre métodos. A soma dos pagamentos deve igualar o total (tolerância de R$ 0,01).
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Param        body body dto.RegistrarVendaRequest true "Detalhe da venda"
// @Success      201  {object} dto.RegistrarVendaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /api/vendas [post]
func (h *VendasHandler) RegistrarVenda(c *gin.Context) {
	var req dto.RegistrarVendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObterTransacao godoc
// @Summary      Consultar uma transação
// @Tags         vendas
// @Produce      json
// @Param        id path int true "ID da transação"
// @Success      200  {object} dto.TransacaoResponse
// @Failure      404  {object} apierror.APIError
// @Router       /api/transacoes/{id} [get]
func (h *VendasHandler) ObterTransacao(c *gin.Context) {
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

// Recibo godoc
// @Summary      Baixar o recibo em PDF de uma venda
// @Tags         vendas
// @Produce      application/pdf
// @Param        id path int true "ID da transação"
// @Success      200 {file} file
// @Failure      404 {object} apierror.APIError
// @Router       /api/transacoes/{id}/recibo [get]
func (h *VendasHandler) Recibo(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	path, err := h.svc.GerarRecibo(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Type", "application/pdf")
	c.File(path)
}
