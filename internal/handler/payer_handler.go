package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"appeals/internal/service"
)

// PayerHandler handles payer directory endpoints.
type PayerHandler struct {
	payerService service.PayerService
}

// NewPayerHandler creates a new PayerHandler.
func NewPayerHandler(payerService service.PayerService) *PayerHandler {
	return &PayerHandler{payerService: payerService}
}

// List handles GET /api/v1/payers
func (h *PayerHandler) List(c *gin.Context) {
	payers, err := h.payerService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, payers)
}

// Requirements handles GET /api/v1/payers/:name/requirements
func (h *PayerHandler) Requirements(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_NAME", "payer name is required")
		return
	}

	payer, err := h.payerService.GetRequirements(c.Request.Context(), name)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, payer)
}
