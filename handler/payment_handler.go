package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sujalreset-source/streaming-backend/domain"
	"github.com/sujalreset-source/streaming-backend/service"
)

type PaymentHandler struct {
	svc service.TransactionService
}

func NewPaymentHandler(svc service.TransactionService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	r.POST("/payments", auth, h.RecordTransaction)
	// Gateway callbacks arrive unauthenticated; signature checks live at
	// the ingress.
	r.POST("/payments/:id/callback", h.SettleTransaction)
}

type recordTransactionRequest struct {
	ItemType string            `json:"item_type" binding:"required"`
	ItemID   string            `json:"item_id" binding:"required"`
	ArtistID string            `json:"artist_id"`
	Gateway  string            `json:"gateway" binding:"required"`
	Amount   float64           `json:"amount" binding:"required"`
	Currency string            `json:"currency" binding:"required"`
	Metadata map[string]string `json:"metadata"`
}

type settleTransactionRequest struct {
	Status string `json:"status" binding:"required,oneof=paid failed"`
}

func (h *PaymentHandler) RecordTransaction(c *gin.Context) {
	var req recordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	tx, err := h.svc.Record(c.Request.Context(), service.RecordTransactionInput{
		UserID:   c.GetString("user_id"),
		ItemType: domain.ItemType(req.ItemType),
		ItemID:   req.ItemID,
		ArtistID: req.ArtistID,
		Gateway:  domain.Gateway(req.Gateway),
		Amount:   req.Amount,
		Currency: req.Currency,
		Metadata: req.Metadata,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "transaction": tx})
}

func (h *PaymentHandler) SettleTransaction(c *gin.Context) {
	var req settleTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.svc.Settle(c.Request.Context(), c.Param("id"), domain.TransactionStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
