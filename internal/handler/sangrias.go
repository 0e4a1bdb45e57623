package handler

import (
	"net/http"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/dto"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/service"

	"github.com/gin-gonic/gin"
)

type SangriasHandler struct{ svc service.SangriaService }

func NewSangriasHandler(svc service.SangriaService) *SangriasHandler {
	return &SangriasHandler{svc: svc}
}

// RegistrarSangria godoc
// @Summary      Registrar uma sangria (retirada de caixa)
// @Description  Retira um valor do saldo de um método de pagamento. Rejeitada com 409 quando o valor excede o saldo disponível do método.
// @Tags         sangrias
// @Accept       json
// @Produce      json
// @Param        body body dto.RegistrarSangriaRequest true "Valor, motivo e método"
// @Success      201  {object} dto.SangriaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /api/sangrias [post]
func (h *SangriasHandler) RegistrarSangria(c *gin.Context) {
	var req dto.RegistrarSangriaRequest
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
