package routes

import (
	"github.com/ahmad-zhafir/ReFeed-sub001/controllers"
	"github.com/ahmad-zhafir/ReFeed-sub001/middlewares"
	"github.com/ahmad-zhafir/ReFeed-sub001/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Controllers bundles the wired controller set main builds.
type Controllers struct {
	Auth     *controllers.AuthController
	Users    *controllers.UserController
	Listings *controllers.ListingController
	Claims   *controllers.ClaimController
	Ratings  *controllers.RatingController
	Geocode  *controllers.GeocodeController
	Uploads  *controllers.UploadController
	Realtime *controllers.RealtimeController
}

func SetupRouter(db *gorm.DB, c Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
	}

	// Everything else requires a session; role groups re-check the stored
	// role on each request.
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(db))
	{
		api.GET("/user/profile", c.Users.GetProfile)
		api.PUT("/user/profile", c.Users.UpdateProfile)
		api.POST("/user/role", c.Users.ChooseRole)

		api.POST("/geocode/reverse", c.Geocode.ReverseGeocode)
		api.POST("/uploads/listing-image", c.Uploads.UploadListingImage)

		generator := api.Group("/generator")
		generator.Use(middlewares.RequireRole(models.RoleGenerator))
		{
			generator.POST("/listings", c.Listings.CreateListing)
			generator.GET("/listings", c.Listings.MyListings)
			generator.GET("/listings/:id/claims", c.Claims.ListingClaims)
			generator.GET("/ratings", c.Ratings.GeneratorRatings)
		}

		farmer := api.Group("/farmer")
		farmer.Use(middlewares.RequireRole(models.RoleFarmer))
		{
			farmer.GET("/listings", c.Listings.BrowseListings)
			farmer.GET("/listings/:id", c.Listings.GetListing)
			farmer.POST("/listings/:id/claims", c.Claims.ClaimListing)
			farmer.GET("/claims", c.Claims.MyClaims)
			farmer.POST("/orders/:id/rating", c.Ratings.SubmitRating)
			farmer.GET("/ws/listings", c.Realtime.ListingsWS)
		}
	}

	return r
}
