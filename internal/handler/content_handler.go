package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahat-dev/ramadan-times-api/internal/models"
	"github.com/rahat-dev/ramadan-times-api/pkg/response"
)

type contentService interface {
	Offers() []models.Offer
	Duas() []models.Dua
	Hadiths() []models.Hadith
}

// ContentHandler serves the static offers and dua/hadith content.
type ContentHandler struct {
	service contentService
}

// NewContentHandler constructs the handler.
func NewContentHandler(service contentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// Offers godoc
// @Summary Website package catalog
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /offers [get]
func (h *ContentHandler) Offers(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Offers())
}

// Duas godoc
// @Summary Duas and hadith entries
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /duas [get]
func (h *ContentHandler) Duas(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{
		"duas":    h.service.Duas(),
		"hadiths": h.service.Hadiths(),
	})
}
