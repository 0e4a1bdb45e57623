package handler

import (
	"net/http"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/dto"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/service"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct{ svc service.ConfigService }

func NewConfigHandler(svc service.ConfigService) *ConfigHandler {
	return &ConfigHandler{svc: svc}
}

// ObterConfig godoc
// @Summary      Ler uma configuração
// @Tags         config
// @Produce      json
// @Param        chave path string true "Chave da configuração"
// @Success      200 {object} dto.ConfigResponse
// @Router       /api/config/{chave} [get]
func (h *ConfigHandler) ObterConfig(c *gin.Context) {
	chave := c.Param("chave")
	valor, err := h.svc.Get(c.Request.Context(), chave, "")
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ConfigResponse{Chave: chave, Valor: valor})
}

// GravarConfig godoc
// @Summary      Gravar uma configuração (upsert)
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        chave path string true "Chave da configuração"
// @Param        body  body dto.SetConfigRequest true "Valor"
// @Success      200 {object} dto.ConfigResponse
// @Failure      400 {object} apierror.APIError
// @Router       /api/config/{chave} [put]
func (h *ConfigHandler) GravarConfig(c *gin.Context) {
	chave := c.Param("chave")
	var req dto.SetConfigRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Set(c.Request.Context(), chave, req.Valor, req.Descricao); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ConfigResponse{Chave: chave, Valor: req.Valor})
}

// VerificarPin godoc
// @Summary      Verificar PIN administrativo
// @Description  Compara o PIN informado com o armazenado. Em caso de sucesso emite um token de sessão administrativa de curta duração.
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        body body dto.PinRequest true "PIN"
// @Success      200 {object} dto.PinVerifyResponse
// @Failure      401 {object} dto.PinVerifyResponse
// @Router       /api/pin/verify [post]
func (h *ConfigHandler) VerificarPin(c *gin.Context) {
	var req dto.PinRequest
	if !bindAndValidate(c, &req) {
		return
	}
	token, ok, err := h.svc.VerifyPin(c.Request.Context(), req.Pin)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.PinVerifyResponse{Success: false})
		return
	}
	c.JSON(http.StatusOK, dto.PinVerifyResponse{Success: true, Token: token})
}

// ObterPin godoc
// @Summary      Consultar o PIN administrativo
// @Description  Exige sessão administrativa ativa.
// @Tags         config
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /api/pin [get]
func (h *ConfigHandler) ObterPin(c *gin.Context) {
	pin, err := h.svc.GetPin(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pin": pin})
}

// AlterarPin godoc
// @Summary      Alterar o PIN administrativo
// @Description  Exige sessão administrativa ativa. O PIN deve ter exatamente 4 dígitos numéricos.
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        body body dto.PinRequest true "Novo PIN"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /api/pin [post]
func (h *ConfigHandler) AlterarPin(c *gin.Context) {
	var req dto.PinRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SetPin(c.Request.Context(), req.Pin); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
