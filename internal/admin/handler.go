package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/money"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Sales dashboard
// --------------------------------------------------
func (h *Handler) Sales(c *gin.Context) {
	rows, total, err := h.service.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{
			"product_name": row.ProductName,
			"quantity":     row.Quantity,
			"revenue":      money.Format(row.Revenue),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"currency":      money.Currency,
		"products":      out,
		"total_revenue": money.Format(total),
	})
}
