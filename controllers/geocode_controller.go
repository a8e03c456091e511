package controllers

import (
	"errors"
	"net/http"

	"github.com/ahmad-zhafir/ReFeed-sub001/services"

	"github.com/gin-gonic/gin"
)

type GeocodeController struct {
	Geocoder *services.GeocodeService
}

func NewGeocodeController(geocoder *services.GeocodeService) *GeocodeController {
	return &GeocodeController{Geocoder: geocoder}
}

type ReverseGeocodeInput struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ReverseGeocode resolves coordinates into an address string. Missing
// coordinates and upstream lookup failures are 400s; a missing API key or
// transport breakage is a 500.
func (gc *GeocodeController) ReverseGeocode(c *gin.Context) {
	var input ReverseGeocodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Latitude == nil || input.Longitude == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude are required"})
		return
	}

	address, err := gc.Geocoder.ReverseGeocode(*input.Latitude, *input.Longitude)
	if err != nil {
		if errors.Is(err, services.ErrGeocodeUpstream) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"address":   address,
		"latitude":  *input.Latitude,
		"longitude": *input.Longitude,
	})
}
