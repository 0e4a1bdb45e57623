package handler

import (
	"net/http"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/apierror"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/dto"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/service"

	"github.com/gin-gonic/gin"
)

type RelatoriosHandler struct{ svc service.RelatorioService }

func NewRelatoriosHandler(svc service.RelatorioService) *RelatoriosHandler {
	return &RelatoriosHandler{svc: svc}
}

// Saldos godoc
// @Summary      Saldos por método de pagamento
// @Description  Soma de vendas, soma de sangrias e saldo líquido de cada método ativo.
// @Tags         relatorios
// @Produce      json
// @Success      200 {array} dto.SaldoMetodoResponse
// @Router       /api/relatorios/saldos [get]
func (h *RelatoriosHandler) Saldos(c *gin.Context) {
	resp, err := h.svc.SaldosPorMetodo(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Resumo godoc
// @Summary      Resumo geral do caixa
// @Description  Totais de vendas e sangrias mais as transações mais recentes.
// @Tags         relatorios
// @Produce      json
// @Success      200 {object} dto.ResumoCaixaResponse
// @Router       /api/relatorios/resumo [get]
func (h *RelatoriosHandler) Resumo(c *gin.Context) {
	resp, err := h.svc.Resumo(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Historico godoc
// @Summary      Histórico de transações
// @Description  Lista vendas e sangrias, mais recentes primeiro, filtrável por período (datas no fuso de exibição), cliente e produto/descrição.
// @Tags         relatorios
// @Produce      json
// @Param        data_inicio query string false "Data inicial YYYY-MM-DD (inclusiva)"
// @Param        data_fim    query string false "Data final YYYY-MM-DD (inclusiva)"
// @Param        cliente     query string false "Nome parcial do cliente"
// @Param        produto     query []string false "ID de produto ou descrição de item avulso (repetível)"
// @Success      200 {array} dto.TransacaoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /api/relatorios/historico [get]
func (h *RelatoriosHandler) Historico(c *gin.Context) {
	var q dto.HistoricoQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Historico(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
