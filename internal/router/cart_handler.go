package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/cart"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/catalog"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/money"
)

// --------------------------------------------------
// View cart
// --------------------------------------------------
func (h *sessionHandler) GetCart(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	lines := s.Cart.Lines()
	out := make([]gin.H, 0, len(lines))
	for _, l := range lines {
		out = append(out, lineJSON(l))
	}

	c.JSON(http.StatusOK, gin.H{
		"currency": money.Currency,
		"lines":    out,
		"total":    money.Format(s.Cart.Total()),
	})
}

// --------------------------------------------------
// Add item
// --------------------------------------------------
func (h *sessionHandler) AddItem(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	var req struct {
		ProductID     string                 `json:"product_id"`
		Quantity      int                    `json:"quantity"`
		Customization *catalog.Customization `json:"customization"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	product, err := h.deps.Catalog.Get(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	customization := catalog.DefaultCustomization()
	if req.Customization != nil {
		customization = *req.Customization
	}

	line, err := s.Cart.Add(*product, req.Quantity, customization)
	if err != nil {
		c.JSON(cartErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	h.persist(c, s)

	c.JSON(http.StatusCreated, gin.H{
		"line":  lineJSON(line),
		"total": money.Format(s.Cart.Total()),
	})
}

// --------------------------------------------------
// Change quantity
// --------------------------------------------------
func (h *sessionHandler) SetQuantity(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := s.Cart.SetQuantity(c.Param("id"), req.Quantity); err != nil {
		c.JSON(cartErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	h.persist(c, s)

	c.JSON(http.StatusOK, gin.H{"total": money.Format(s.Cart.Total())})
}

// --------------------------------------------------
// Remove item
// --------------------------------------------------
func (h *sessionHandler) RemoveItem(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	if err := s.Cart.Remove(c.Param("id")); err != nil {
		c.JSON(cartErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	h.persist(c, s)

	c.JSON(http.StatusOK, gin.H{"total": money.Format(s.Cart.Total())})
}

func lineJSON(l cart.Line) gin.H {
	return gin.H{
		"id":            l.ID,
		"product_id":    l.ProductID,
		"product_name":  l.ProductName,
		"quantity":      l.Quantity,
		"customization": l.Customization,
		"unit_price":    money.Format(l.UnitPrice),
		"line_total":    money.Format(l.Total()),
	}
}

func cartErrorStatus(err error) int {
	switch {
	case errors.Is(err, cart.ErrCheckoutInProgress):
		return http.StatusConflict
	case errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, catalog.ErrUnrecognizedOption):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
