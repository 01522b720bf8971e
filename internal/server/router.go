package server

import (
	auction "auction-marketplace/internal/auctionService"
	handler "auction-marketplace/services/auction/handler"
	"auction-marketplace/services/auction/helpers"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	listings := router.Group("/listings")
	{
		listings.GET("", auctionHandler.ListActiveListingsHandler)
		listings.GET("/:listing_id", auctionHandler.GetListingHandler)
		listings.GET("/:listing_id/bids", auctionHandler.GetBidsByListingHandler)
		listings.GET("/:listing_id/leading", auctionHandler.GetLeadingBidHandler)
		listings.GET("/:listing_id/comments", auctionHandler.GetCommentsHandler)

		listings.POST("", helpers.RequireIdentity, auctionHandler.CreateListingHandler)
		listings.POST("/:listing_id/bids", helpers.RequireIdentity, auctionHandler.PlaceBidHandler)
		listings.POST("/:listing_id/close", helpers.RequireIdentity, auctionHandler.CloseAuctionHandler)
		listings.POST("/:listing_id/comments", helpers.RequireIdentity, auctionHandler.AddCommentHandler)
		listings.GET("/:listing_id/won", helpers.RequireIdentity, auctionHandler.HasWonHandler)
	}

	watchlist := router.Group("/watchlist", helpers.RequireIdentity)
	{
		watchlist.GET("", auctionHandler.WatchlistHandler)
		watchlist.POST("/:listing_id", auctionHandler.AddToWatchlistHandler)
		watchlist.DELETE("/:listing_id", auctionHandler.RemoveFromWatchlistHandler)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", auctionHandler.CategoriesHandler)
		categories.GET("/:category/listings", auctionHandler.ListingsByCategoryHandler)
	}

	users := router.Group("/users")
	{
		users.DELETE("/me", helpers.RequireIdentity, auctionHandler.RemoveUserDataHandler)
	}

	return router
}
