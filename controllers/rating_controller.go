package controllers

import (
	"errors"
	"net/http"

	"github.com/ahmad-zhafir/ReFeed-sub001/middlewares"
	"github.com/ahmad-zhafir/ReFeed-sub001/services"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	Ratings *services.RatingService
}

func NewRatingController(ratings *services.RatingService) *RatingController {
	return &RatingController{Ratings: ratings}
}

type RatingInput struct {
	Stars   int    `json:"stars" binding:"required"`
	Comment string `json:"comment"`
}

func (rc *RatingController) SubmitRating(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var input RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := rc.Ratings.SubmitRating(c.Param("id"), user, input.Stars, input.Comment)
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrOrderAlreadyRated):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrStarsOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusCreated, rating)
	}
}

// GeneratorRatings returns a generator's received ratings with the stored
// aggregate.
func (rc *RatingController) GeneratorRatings(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	ratings, err := rc.Ratings.ListByGenerator(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ratings":      ratings,
		"avg_rating":   user.AvgRating,
		"rating_count": user.RatingCount,
	})
}
