package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/cart"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/checkout"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/money"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/orders"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/payment"
)

// --------------------------------------------------
// Checkout
// --------------------------------------------------
func (h *sessionHandler) Checkout(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	var req struct {
		Address       string `json:"address"`
		PaymentMethod string `json:"payment_method"`
		Attestation   string `json:"attestation"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = orders.PaymentBiometric
	}

	ctx := payment.WithAttestation(c.Request.Context(), req.Attestation)

	result, err := h.newCoordinator(s).Checkout(ctx, checkout.Request{
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, cart.ErrCheckoutInProgress):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, checkout.ErrAuthorizationFailed):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	h.persist(c, s)

	resp := gin.H{
		"order": orderJSON(result.Order),
	}
	if result.Reward != nil {
		resp["reward"] = gin.H{
			"free_drink_earned": true,
			"bonus_points":      result.Reward.BonusPoints,
		}
	}
	c.JSON(http.StatusCreated, resp)
}

func orderJSON(o orders.Order) gin.H {
	lines := make([]gin.H, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, lineJSON(l))
	}
	return gin.H{
		"id":             o.ID,
		"lines":          lines,
		"total":          money.Format(o.Total),
		"currency":       money.Currency,
		"address":        o.Address,
		"payment_method": o.PaymentMethod,
		"created_at":     o.CreatedAt,
	}
}
