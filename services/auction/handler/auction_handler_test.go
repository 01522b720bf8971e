package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func setupHandlerRouter(mockService *MockAuctionServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuctionHandler(mockService)

	router := gin.New()
	router.POST("/listings", helpers.RequireIdentity, h.CreateListingHandler)
	router.POST("/listings/:listing_id/bids", helpers.RequireIdentity, h.PlaceBidHandler)
	router.POST("/listings/:listing_id/close", helpers.RequireIdentity, h.CloseAuctionHandler)
	router.GET("/listings/:listing_id/leading", h.GetLeadingBidHandler)
	router.GET("/listings/:listing_id/bids", h.GetBidsByListingHandler)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, url, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Test CreateListingHandler
func TestCreateListingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router := setupHandlerRouter(mockService)

	t.Run("success", func(t *testing.T) {
		created := model.Listing{
			ListingID:     uuid.NewString(),
			Title:         "Vintage camera",
			StartingPrice: decimal.NewFromInt(120),
			CurrentPrice:  decimal.NewFromInt(120),
			Active:        true,
			SellerID:      "seller1",
			CreatedAt:     time.Now().UTC(),
		}
		mockService.EXPECT().
			CreateListing("seller1", "Vintage camera", "", "", "", gomock.Any()).
			Return(created, nil)

		w := doJSON(t, router, http.MethodPost, "/listings", "seller1", helpers.CreateListingRequest{
			Title:         "Vintage camera",
			StartingPrice: decimal.NewFromInt(120),
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		require.Equal(t, created.ListingID, data["listing_id"])
		require.Equal(t, true, data["active"])
	})

	t.Run("missing_identity", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/listings", "", helpers.CreateListingRequest{
			Title:         "Vintage camera",
			StartingPrice: decimal.NewFromInt(120),
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid_payload", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/listings", "seller1", "{title: 'missing quotes'}")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid_starting_price", func(t *testing.T) {
		mockService.EXPECT().
			CreateListing("seller1", "Freebie", "", "", "", gomock.Any()).
			Return(model.Listing{}, auctionerrors.ErrInvalidListing)

		w := doJSON(t, router, http.MethodPost, "/listings", "seller1", helpers.CreateListingRequest{
			Title:         "Freebie",
			StartingPrice: decimal.NewFromInt(-1),
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router := setupHandlerRouter(mockService)

	tests := []struct {
		name           string
		userID         string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:   "accepted",
			userID: "userA",
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("listing1", "userA", gomock.Any()).
					Return(model.Bid{
						BidID:     uuid.NewString(),
						ListingID: "listing1",
						UserID:    "userA",
						Amount:    decimal.NewFromInt(60),
						CreatedAt: time.Now().UTC(),
					}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "bid_too_low",
			userID: "userA",
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("listing1", "userA", gomock.Any()).
					Return(model.Bid{}, auctionerrors.ErrBidTooLow)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "seller_cannot_bid",
			userID: "seller1",
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("listing1", "seller1", gomock.Any()).
					Return(model.Bid{}, auctionerrors.ErrSellerCannotBid)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "auction_closed",
			userID: "userA",
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("listing1", "userA", gomock.Any()).
					Return(model.Bid{}, auctionerrors.ErrAuctionClosed)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "listing_not_found",
			userID: "userA",
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("listing1", "userA", gomock.Any()).
					Return(model.Bid{}, auctionerrors.ErrListingNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			w := doJSON(t, router, http.MethodPost, "/listings/listing1/bids", tc.userID, helpers.PlaceBidRequest{
				Amount: decimal.NewFromInt(60),
			})
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

// Test GetLeadingBidHandler
func TestGetLeadingBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router := setupHandlerRouter(mockService)

	t.Run("found", func(t *testing.T) {
		mockService.EXPECT().
			LeadingBid("listing1").
			Return(model.Bid{
				BidID:     uuid.NewString(),
				ListingID: "listing1",
				UserID:    "userB",
				Amount:    decimal.NewFromInt(150),
				CreatedAt: time.Now().UTC(),
			}, nil)

		w := doJSON(t, router, http.MethodGet, "/listings/listing1/leading", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		require.Equal(t, "userB", data["user_id"])
	})

	t.Run("no_bids", func(t *testing.T) {
		mockService.EXPECT().
			LeadingBid("listing1").
			Return(model.Bid{}, auctionerrors.ErrNoBids)

		w := doJSON(t, router, http.MethodGet, "/listings/listing1/leading", "", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Test GetBidsByListingHandler tolerates the no-bids case
func TestGetBidsByListingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router := setupHandlerRouter(mockService)

	t.Run("empty_list_when_no_bids", func(t *testing.T) {
		mockService.EXPECT().
			BidsForListing("listing1").
			Return(nil, auctionerrors.ErrNoBids)

		w := doJSON(t, router, http.MethodGet, "/listings/listing1/bids", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Empty(t, resp["data"])
	})

	t.Run("missing_listing", func(t *testing.T) {
		mockService.EXPECT().
			BidsForListing("ghost").
			Return(nil, auctionerrors.ErrListingNotFound)

		w := doJSON(t, router, http.MethodGet, "/listings/ghost/bids", "", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Test CloseAuctionHandler
func TestCloseAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router := setupHandlerRouter(mockService)

	t.Run("closed_with_winner", func(t *testing.T) {
		mockService.EXPECT().
			CloseAuction("listing1", "seller1").
			Return(model.Listing{
				ListingID:     "listing1",
				Title:         "Vintage camera",
				StartingPrice: decimal.NewFromInt(50),
				CurrentPrice:  decimal.NewFromInt(150),
				Active:        false,
				SellerID:      "seller1",
				WinnerID:      "userB",
				CreatedAt:     time.Now().UTC(),
			}, nil)

		w := doJSON(t, router, http.MethodPost, "/listings/listing1/close", "seller1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		require.Equal(t, "userB", data["winner_id"])
		require.Equal(t, false, data["active"])
	})

	t.Run("not_seller", func(t *testing.T) {
		mockService.EXPECT().
			CloseAuction("listing1", "userA").
			Return(model.Listing{}, auctionerrors.ErrNotSeller)

		w := doJSON(t, router, http.MethodPost, "/listings/listing1/close", "userA", nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("already_closed", func(t *testing.T) {
		mockService.EXPECT().
			CloseAuction("listing1", "seller1").
			Return(model.Listing{}, auctionerrors.ErrAlreadyClosed)

		w := doJSON(t, router, http.MethodPost, "/listings/listing1/close", "seller1", nil)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}
