package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"charges/internal/domain"
	"charges/internal/middleware"
	"charges/internal/service"
)

// ChargeHandler handles charge document submissions.
type ChargeHandler struct {
	svc service.ChargeCommandService
}

// NewChargeHandler creates a new ChargeHandler.
func NewChargeHandler(svc service.ChargeCommandService) *ChargeHandler {
	return &ChargeHandler{svc: svc}
}

// SubmitInformation handles POST /api/v1/charges/information
func (h *ChargeHandler) SubmitInformation(c *gin.Context) {
	var cmd domain.ChargeInformationCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if !senderAuthenticated(c, cmd.Document) {
		return
	}

	outcome, err := h.svc.HandleChargeInformation(c.Request.Context(), &cmd)
	if err != nil {
		HandleError(c, err)
		return
	}
	respondOutcome(c, outcome)
}

// SubmitPrices handles POST /api/v1/charges/prices
func (h *ChargeHandler) SubmitPrices(c *gin.Context) {
	var cmd domain.ChargePriceCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if !senderAuthenticated(c, cmd.Document) {
		return
	}

	outcome, err := h.svc.HandleChargePrices(c.Request.Context(), &cmd)
	if err != nil {
		HandleError(c, err)
		return
	}
	respondOutcome(c, outcome)
}

// senderAuthenticated checks the document is sent by the token's market participant.
// A missing sender is left to validation. Returns false on mismatch (error response already written).
func senderAuthenticated(c *gin.Context, doc domain.Document) bool {
	participant, err := middleware.GetMarketParticipantID(c)
	if err != nil {
		HandleError(c, err)
		return false
	}
	if doc.Sender.MarketParticipantID != "" && doc.Sender.MarketParticipantID != participant {
		HandleError(c, domain.ErrSenderMismatch)
		return false
	}
	return true
}

func respondOutcome(c *gin.Context, outcome *service.Outcome) {
	if outcome.Accepted {
		RespondAccepted(c, outcome)
		return
	}
	RespondRejected(c, outcome)
}
