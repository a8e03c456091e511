package main

import (
	"log"
	"os"

	"github.com/ahmad-zhafir/ReFeed-sub001/config"
	"github.com/ahmad-zhafir/ReFeed-sub001/controllers"
	"github.com/ahmad-zhafir/ReFeed-sub001/routes"
	"github.com/ahmad-zhafir/ReFeed-sub001/services"
	"github.com/ahmad-zhafir/ReFeed-sub001/utils"
)

func main() {
	config.LoadEnv()
	db := config.ConnectDB()

	hub := services.NewRealtimeHub()

	// AWS-backed pieces are optional in local setups; the marketplace still
	// works without mail, uploads or label scans.
	var notifier services.Notifier
	if mailer, err := utils.NewMailer(); err != nil {
		log.Printf("mail notifications disabled: %v", err)
	} else {
		notifier = mailer
	}
	uploader, err := utils.NewS3Uploader()
	if err != nil {
		log.Printf("image uploads disabled: %v", err)
		uploader = nil
	}
	labels, err := services.NewRekognitionService()
	if err != nil {
		log.Printf("image label detection disabled: %v", err)
		labels = nil
	}

	authSvc := services.NewAuthService(db)
	userSvc := services.NewUserService(db)
	listingSvc := services.NewListingService(db, hub)
	claimSvc := services.NewClaimService(db, hub, notifier)
	ratingSvc := services.NewRatingService(db, notifier)
	geocodeSvc := services.NewGeocodeService()

	r := routes.SetupRouter(db, routes.Controllers{
		Auth:     controllers.NewAuthController(authSvc),
		Users:    controllers.NewUserController(userSvc),
		Listings: controllers.NewListingController(listingSvc),
		Claims:   controllers.NewClaimController(claimSvc, listingSvc),
		Ratings:  controllers.NewRatingController(ratingSvc),
		Geocode:  controllers.NewGeocodeController(geocodeSvc),
		Uploads:  controllers.NewUploadController(uploader, labels),
		Realtime: controllers.NewRealtimeController(hub),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
