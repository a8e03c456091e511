package controllers

import (
	"errors"
	"net/http"

	"github.com/ahmad-zhafir/ReFeed-sub001/middlewares"
	"github.com/ahmad-zhafir/ReFeed-sub001/services"

	"github.com/gin-gonic/gin"
)

type ClaimController struct {
	Claims   *services.ClaimService
	Listings *services.ListingService
}

func NewClaimController(claims *services.ClaimService, listings *services.ListingService) *ClaimController {
	return &ClaimController{Claims: claims, Listings: listings}
}

type ClaimInput struct {
	Quantity string `json:"quantity" binding:"required"`
}

func (cc *ClaimController) ClaimListing(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var input ClaimInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claim, err := cc.Claims.ClaimListing(c.Param("id"), user, input.Quantity)
	switch {
	case errors.Is(err, services.ErrListingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrClaimOwnListing),
		errors.Is(err, services.ErrListingFullyClaimed),
		errors.Is(err, services.ErrClaimExceedsRemaining),
		errors.Is(err, services.ErrQuantityUnitMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusCreated, claim)
	}
}

func (cc *ClaimController) MyClaims(c *gin.Context) {
	userID := c.GetUint("userID")
	claims, err := cc.Claims.ListByClaimer(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"claims": claims})
}

// ListingClaims lets a generator see who claimed one of their own listings.
func (cc *ClaimController) ListingClaims(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	listing, err := cc.Listings.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if listing.GeneratorID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your listing"})
		return
	}

	claims, err := cc.Claims.ListByListing(listing.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"claims": claims})
}
