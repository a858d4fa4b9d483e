package routes

import (
	coreport "github.com/Minyanaing/item-market/internal/domain/port/core"
	"github.com/Minyanaing/item-market/internal/infrastructure/adapter/api/handler"
	"github.com/Minyanaing/item-market/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the service
func SetupRoutes(
	router *gin.Engine,
	pagesHandler *handler.PagesHandler,
	authHandler *handler.AuthHandler,
	marketHandler *handler.MarketHandler,
	tokens coreport.TokenIssuer,
	logger coreport.Logger,
) {
	// Public pages
	router.GET("/", pagesHandler.Home)
	router.GET("/home", pagesHandler.Home)
	router.GET("/about", pagesHandler.About)
	router.GET("/about/:username", pagesHandler.AboutUser)

	// Authentication
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)

	// Market routes require a logged-in user
	market := router.Group(handler.MarketPath)
	market.Use(middleware.RequireUser(tokens, logger))
	{
		market.GET("", marketHandler.GetMarket)
		market.POST("", marketHandler.PostMarket)
	}
}

// SetupMiddlewares configures global middlewares
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
}
