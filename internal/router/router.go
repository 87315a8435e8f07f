package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/filmhub/internal/handler"
	"github.com/user/filmhub/internal/middleware"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// ==================== 认证 ====================
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/profile", middleware.RequireAuth(h.Auth), h.Profile)
	}

	// ==================== 电影与分类（公开）====================
	api.GET("/movies", h.ListMovies)
	api.GET("/movies/search", h.SearchMovies)
	api.GET("/movies/:id", h.MovieDetail)
	api.GET("/categories", h.ListCategories)
	api.GET("/categories/:id", h.CategoryDetail)

	// ==================== 观影历史（需要登录）====================
	history := api.Group("/history")
	history.Use(middleware.RequireAuth(h.Auth))
	{
		history.GET("", h.ListHistory)
		history.POST("", h.AddHistory)
		history.DELETE("/clear", h.ClearHistory)
		history.DELETE("/:id", h.DeleteHistory)
	}

	// ==================== 搜索历史与排行榜 ====================
	search := api.Group("/search")
	{
		search.GET("/history", h.GetSearchHistory)
		search.POST("/history", h.AddSearchHistory)
		search.DELETE("/history/clear", h.ClearSearchHistory)
		search.DELETE("/history/:id", h.DeleteSearchHistory)
		search.GET("/rankings", h.GetRankings)
	}

	// ==================== 用户中心（需要登录）====================
	user := api.Group("/user")
	user.Use(middleware.RequireAuth(h.Auth))
	{
		user.GET("/profile", h.Profile)
		user.GET("/history", h.ListHistory)
		user.PUT("/update-username", h.UpdateUsername)
		user.PUT("/change-password", h.ChangePassword)
		user.POST("/upload-avatar", h.UploadAvatar)
		user.POST("/verify-email", h.VerifyEmail)
	}
}
