package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Minyanaing/item-market/internal/domain/entity"
	"github.com/Minyanaing/item-market/internal/domain/port/core"
	"github.com/Minyanaing/item-market/internal/domain/port/usecase"
	"github.com/Minyanaing/item-market/internal/infrastructure/adapter/api/flash"
	"github.com/Minyanaing/item-market/internal/infrastructure/adapter/api/middleware"
	loggeradapter "github.com/Minyanaing/item-market/internal/infrastructure/adapter/logger"
	timeadapter "github.com/Minyanaing/item-market/internal/infrastructure/adapter/time"
	coremocks "github.com/Minyanaing/item-market/mocks/port/core"
	usecasemocks "github.com/Minyanaing/item-market/mocks/port/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// marketRouter wires the market handler behind the auth gate with a token
// issuer that accepts "session-token" as user 1
func marketRouter(marketUseCase usecase.MarketUseCase) *gin.Engine {
	logger := loggeradapter.NewNoopLogger()

	tokens := new(coremocks.MockTokenIssuer)
	tokens.On("Verify", "session-token").
		Return(&core.SessionClaims{UserID: 1, Username: "alice"}, nil).Maybe()

	handler := NewMarketHandler(marketUseCase, flash.NewCookieStore(), logger)

	router := gin.New()
	market := router.Group(MarketPath, middleware.RequireUser(tokens, logger))
	market.GET("", handler.GetMarket)
	market.POST("", handler.PostMarket)
	return router
}

func authenticated(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "session-token"})
	return req
}

func TestGetMarket(t *testing.T) {
	tp := timeadapter.NewRealTimeProvider()

	t.Run("returns balance with available and owned items", func(t *testing.T) {
		phone, err := entity.NewItem(1, "Phone", "893212299897", "500.00", tp)
		require.NoError(t, err)
		keyboard, err := entity.NewItem(3, "Keyboard", "231985128446", "150.00", tp)
		require.NoError(t, err)

		marketUseCase := new(usecasemocks.MockMarketUseCase)
		marketUseCase.On("GetCatalog", mock.Anything, uint64(1)).Return(&usecase.CatalogView{
			Balance:        "850.00",
			AvailableItems: []*entity.Item{phone},
			OwnedItems:     []*entity.Item{keyboard},
		}, nil)

		w := httptest.NewRecorder()
		req := authenticated(httptest.NewRequest(http.MethodGet, "/market", nil))
		marketRouter(marketUseCase).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"balance":"850.00"`)
		assert.Contains(t, w.Body.String(), `"name":"Phone"`)
		assert.Contains(t, w.Body.String(), `"name":"Keyboard"`)
	})

	t.Run("requires authentication", func(t *testing.T) {
		marketUseCase := new(usecasemocks.MockMarketUseCase)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/market", nil)
		marketRouter(marketUseCase).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		marketUseCase.AssertNotCalled(t, "GetCatalog", mock.Anything, mock.Anything)
	})

	t.Run("catalog failure yields 500", func(t *testing.T) {
		marketUseCase := new(usecasemocks.MockMarketUseCase)
		marketUseCase.On("GetCatalog", mock.Anything, uint64(1)).
			Return(nil, errors.New("connection lost"))

		w := httptest.NewRecorder()
		req := authenticated(httptest.NewRequest(http.MethodGet, "/market", nil))
		marketRouter(marketUseCase).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestPostMarket(t *testing.T) {
	postForm := func(form url.Values) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/market", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return authenticated(req)
	}

	t.Run("purchase submission redirects back to the market", func(t *testing.T) {
		marketUseCase := new(usecasemocks.MockMarketUseCase)
		marketUseCase.On("ProcessMarketRequest", mock.Anything, uint64(1),
			mock.MatchedBy(func(req usecase.MarketRequest) bool {
				return req.PurchasedItem != nil && *req.PurchasedItem == "Phone" && req.SoldItem == nil
			})).
			Return([]entity.Notification{
				entity.NewSuccessNotification("Congratulations! You purchased Phone for $500.00"),
			}, nil)

		w := httptest.NewRecorder()
		marketRouter(marketUseCase).ServeHTTP(w, postForm(url.Values{"purchased_item": {"Phone"}}))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, MarketPath, w.Header().Get("Location"))
		assert.Contains(t, w.Header().Get("Set-Cookie"), flash.DefaultCookieName)
		marketUseCase.AssertExpectations(t)
	})

	t.Run("purchase and sale fields are both forwarded", func(t *testing.T) {
		marketUseCase := new(usecasemocks.MockMarketUseCase)
		marketUseCase.On("ProcessMarketRequest", mock.Anything, uint64(1),
			mock.MatchedBy(func(req usecase.MarketRequest) bool {
				return req.PurchasedItem != nil && *req.PurchasedItem == "Phone" &&
					req.SoldItem != nil && *req.SoldItem == "Keyboard"
			})).
			Return([]entity.Notification{
				entity.NewSuccessNotification("bought"),
				entity.NewSuccessNotification("sold"),
			}, nil)

		w := httptest.NewRecorder()
		marketRouter(marketUseCase).ServeHTTP(w, postForm(url.Values{
			"purchased_item": {"Phone"},
			"sold_item":      {"Keyboard"},
		}))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		marketUseCase.AssertExpectations(t)
	})

	t.Run("empty submission still redirects", func(t *testing.T) {
		marketUseCase := new(usecasemocks.MockMarketUseCase)
		marketUseCase.On("ProcessMarketRequest", mock.Anything, uint64(1),
			mock.MatchedBy(func(req usecase.MarketRequest) bool {
				return req.PurchasedItem == nil && req.SoldItem == nil
			})).
			Return(nil, nil)

		w := httptest.NewRecorder()
		marketRouter(marketUseCase).ServeHTTP(w, postForm(url.Values{}))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, MarketPath, w.Header().Get("Location"))
		// nothing to flash
		assert.NotContains(t, w.Header().Get("Set-Cookie"), flash.DefaultCookieName)
	})

	t.Run("infrastructure failure yields 500 without queuing flashes", func(t *testing.T) {
		marketUseCase := new(usecasemocks.MockMarketUseCase)
		marketUseCase.On("ProcessMarketRequest", mock.Anything, uint64(1), mock.Anything).
			Return([]entity.Notification{
				entity.NewSuccessNotification("Congratulations! You purchased Phone for $500.00"),
			}, errors.New("connection lost"))

		w := httptest.NewRecorder()
		marketRouter(marketUseCase).ServeHTTP(w, postForm(url.Values{"purchased_item": {"Phone"}}))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		// the error response already reported the failure; partial results
		// must not resurface on a later page view
		assert.NotContains(t, w.Header().Get("Set-Cookie"), flash.DefaultCookieName)
	})

	t.Run("requires authentication", func(t *testing.T) {
		marketUseCase := new(usecasemocks.MockMarketUseCase)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/market", strings.NewReader("purchased_item=Phone"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		marketRouter(marketUseCase).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		marketUseCase.AssertNotCalled(t, "ProcessMarketRequest", mock.Anything, mock.Anything, mock.Anything)
	})
}
