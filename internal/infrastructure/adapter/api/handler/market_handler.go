package handler

import (
	"net/http"

	domainerr "github.com/Minyanaing/item-market/internal/domain/error"
	coreport "github.com/Minyanaing/item-market/internal/domain/port/core"
	"github.com/Minyanaing/item-market/internal/domain/port/usecase"
	"github.com/Minyanaing/item-market/internal/infrastructure/adapter/api/dto"
	"github.com/Minyanaing/item-market/internal/infrastructure/adapter/api/flash"
	"github.com/Minyanaing/item-market/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// MarketPath is the catalog view every market submission redirects back to
const MarketPath = "/market"

// MarketHandler handles the catalog view and purchase/sale submissions
type MarketHandler struct {
	marketUseCase usecase.MarketUseCase
	flashes       *flash.CookieStore
	logger        coreport.Logger
}

// NewMarketHandler creates a new market handler instance
func NewMarketHandler(marketUseCase usecase.MarketUseCase, flashes *flash.CookieStore, logger coreport.Logger) *MarketHandler {
	return &MarketHandler{
		marketUseCase: marketUseCase,
		flashes:       flashes,
		logger:        logger,
	}
}

// GetMarket handles GET /market: available items, the requester's owned
// items and balance, and any pending flash notifications
func (h *MarketHandler) GetMarket(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "authentication required"})
		return
	}

	catalog, err := h.marketUseCase.GetCatalog(c.Request.Context(), userID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		message := "Internal server error"
		if domainerr.IsUserNotFoundError(err) {
			statusCode = http.StatusNotFound
			message = "User not found"
		}

		h.logger.Error("Failed to load catalog", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, dto.CatalogResponse{
		Balance:       catalog.Balance,
		Items:         dto.ItemsToResponse(catalog.AvailableItems),
		OwnedItems:    dto.ItemsToResponse(catalog.OwnedItems),
		Notifications: dto.NotificationsToResponse(h.flashes.Pop(c)),
	})
}

// PostMarket handles POST /market: the purchase field is resolved first,
// then the sale field, each as its own committed unit. Whatever the
// outcome, the response is a redirect back to the catalog view; results
// are reported through flash notifications only.
func (h *MarketHandler) PostMarket(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "authentication required"})
		return
	}

	var form dto.MarketForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: err.Error(),
		})
		return
	}

	notifications, err := h.marketUseCase.ProcessMarketRequest(c.Request.Context(), userID, usecase.MarketRequest{
		PurchasedItem: form.PurchasedItem,
		SoldItem:      form.SoldItem,
	})

	// Business-rule rejections arrive as notifications; an error here is an
	// infrastructure failure. The error response already tells the client
	// what happened, so nothing is flashed for a later page view.
	if err != nil {
		h.logger.Error("Market request failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	h.flashes.Add(c, notifications...)
	c.Redirect(http.StatusSeeOther, MarketPath)
}
