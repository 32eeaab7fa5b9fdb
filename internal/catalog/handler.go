package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/money"
)

type Handler struct {
	service *Service
}

type AdminHandler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// --------------------------------------------------
// List drinks
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	products := h.service.List()

	out := make([]gin.H, 0, len(products))
	for _, p := range products {
		out = append(out, gin.H{
			"id":         p.ID,
			"name":       p.Name,
			"base_price": money.Format(p.BasePrice),
			"image_url":  p.ImageURL,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"currency": money.Currency,
		"products": out,
	})
}

// --------------------------------------------------
// Admin uploads a product image
// --------------------------------------------------
func (h *AdminHandler) UploadImage(c *gin.Context) {
	productID := c.Param("id")

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}

	url, err := h.service.UploadImage(c.Request.Context(), productID, header)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product_id": productID,
		"image_url":  url,
	})
}
