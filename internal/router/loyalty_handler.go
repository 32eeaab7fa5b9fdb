package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/loyalty"
)

// --------------------------------------------------
// Order history
// --------------------------------------------------
func (h *sessionHandler) Orders(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	all := s.History.All()
	out := make([]gin.H, 0, len(all))
	for _, o := range all {
		out = append(out, orderJSON(o))
	}
	c.JSON(http.StatusOK, gin.H{"orders": out})
}

// --------------------------------------------------
// Loyalty card
// --------------------------------------------------
func (h *sessionHandler) Loyalty(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cups":            s.Ledger.Cups(),
		"cups_per_reward": loyalty.CupsPerReward,
		"points":          s.Ledger.Points(),
		"history":         s.Ledger.Accruals(),
		"reward_catalog":  loyalty.RewardCatalog,
	})
}

// --------------------------------------------------
// Redeem a free drink
// --------------------------------------------------
func (h *sessionHandler) Redeem(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	var req struct {
		Drink string `json:"drink"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	drink, err := s.Ledger.RedeemDrink(req.Drink)
	if err != nil {
		switch {
		case errors.Is(err, loyalty.ErrUnknownRewardDrink):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, loyalty.ErrInsufficientPoints):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	h.persist(c, s)

	c.JSON(http.StatusOK, gin.H{
		"redeemed":         drink,
		"remaining_points": s.Ledger.Points(),
	})
}
