package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahat-dev/ramadan-times-api/internal/dto"
	"github.com/rahat-dev/ramadan-times-api/pkg/response"
)

type locationService interface {
	Divisions() []dto.DivisionInfo
	Districts(divisionName string) ([]string, error)
}

// LocationHandler exposes the division/district selector endpoints.
type LocationHandler struct {
	service locationService
}

// NewLocationHandler constructs the handler.
func NewLocationHandler(service locationService) *LocationHandler {
	return &LocationHandler{service: service}
}

// Divisions godoc
// @Summary List divisions with their districts
// @Tags Locations
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /divisions [get]
func (h *LocationHandler) Divisions(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Divisions())
}

// Districts godoc
// @Summary List district names of a division
// @Tags Locations
// @Produce json
// @Param name path string true "Division name"
// @Success 200 {object} response.Envelope
// @Router /divisions/{name}/districts [get]
func (h *LocationHandler) Districts(c *gin.Context) {
	names, err := h.service.Districts(c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, names)
}
