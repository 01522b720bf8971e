package main

import (
	"fmt"
	"os"

	auction "auction-marketplace/internal/auctionService"
	"auction-marketplace/internal/ledger"
	"auction-marketplace/internal/server"
	"auction-marketplace/utils"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.Info("no .env file found, using process environment", nil)
	}

	store := ledger.NewMemoryLedger()
	auctionSvc := auction.NewAuctionService(store)

	seedListings(auctionSvc)

	router := server.SetupRouter(auctionSvc)

	port := getPort()
	fmt.Printf("Starting auction marketplace on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedListings adds sample listings to the in-memory ledger
func seedListings(svc *auction.AuctionService) {
	seeds := []struct {
		sellerID, title, description, category string
		startingPrice                          int64
	}{
		{"seller1", "Vintage camera", "35mm rangefinder in working order", "electronics", 120},
		{"seller1", "Oak bookshelf", "Five shelves, some scratches", "furniture", 80},
		{"seller2", "Road bike", "Aluminium frame, recently serviced", "sports", 250},
	}

	for _, s := range seeds {
		if _, err := svc.CreateListing(s.sellerID, s.title, s.description, s.category, "", decimal.NewFromInt(s.startingPrice)); err != nil {
			utils.Warn("failed to seed listing", map[string]any{"title": s.title, "error": err.Error()})
		}
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
