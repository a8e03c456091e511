package controllers

import (
	"errors"
	"net/http"

	"github.com/ahmad-zhafir/ReFeed-sub001/middlewares"
	"github.com/ahmad-zhafir/ReFeed-sub001/services"

	"github.com/gin-gonic/gin"
)

type ListingController struct {
	Listings *services.ListingService
}

func NewListingController(listings *services.ListingService) *ListingController {
	return &ListingController{Listings: listings}
}

func (lc *ListingController) CreateListing(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var input services.CreateListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listing, err := lc.Listings.Create(user, input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidQuantity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, listing)
}

func (lc *ListingController) MyListings(c *gin.Context) {
	userID := c.GetUint("userID")
	listings, err := lc.Listings.ListByGenerator(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

// BrowseListings returns the active listings visible inside the farmer's
// search radius. A farmer without a home location sees all of them.
func (lc *ListingController) BrowseListings(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	listings, err := lc.Listings.VisibleToFarmer(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

func (lc *ListingController) GetListing(c *gin.Context) {
	listing, err := lc.Listings.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, listing)
}
