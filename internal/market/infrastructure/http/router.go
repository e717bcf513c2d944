package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter mounts the market API on a fresh gin engine. Routes that act on
// behalf of an account sit behind authMiddleware.
func NewRouter(accountHandler *AccountHandler, articleHandler *ArticleHandler, authMiddleware gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	api := router.Group("/api")
	{
		api.POST("/accounts", accountHandler.CreateAccount)
		api.GET("/accounts/:"+AccountIDKey, accountHandler.GetAccount)
		api.GET("/articles/:"+ArticleIDKey, articleHandler.GetArticle)

		authenticated := api.Group("/", authMiddleware)
		{
			authenticated.POST("/recharge", accountHandler.Recharge)
			authenticated.POST("/articles", articleHandler.CreateArticle)
			authenticated.DELETE("/articles/:"+ArticleIDKey, articleHandler.DeleteArticle)
			authenticated.POST("/buy/:"+ArticleIDKey, articleHandler.Buy)
		}
	}

	return router
}
