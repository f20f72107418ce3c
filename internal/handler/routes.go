package handler

import (
	"blog-backend/internal/config"
	"blog-backend/internal/middleware"
	"blog-backend/internal/service"
	"blog-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Services groups what the HTTP layer depends on
type Services struct {
	Auth       *service.AuthService
	Users      *service.UserService
	Posts      *service.PostService
	Categories *service.CategoryService
}

// NewRouter builds the gin engine with every route registered
func NewRouter(cfg *config.Config, svc Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	authHandler := NewAuthHandler(svc.Auth, svc.Users)
	postHandler := NewPostHandler(svc.Posts)
	categoryHandler := NewCategoryHandler(svc.Categories)

	requireUser := middleware.AuthMiddleware(svc.Auth)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "blog-backend",
		})
	})

	users := r.Group("/users")
	{
		users.POST("/register/", authHandler.Register)
		users.POST("/login/", authHandler.Login)
		users.POST("/refresh-token/", authHandler.Refresh)
		users.GET("/all_users", authHandler.AllUsers)

		users.GET("/me", requireUser, authHandler.Me)
		users.POST("/logout", middleware.BearerToken(), authHandler.Logout)
		users.DELETE("/delete", requireUser, authHandler.Delete)
	}

	posts := r.Group("/posts")
	{
		posts.GET("/get", postHandler.GetPosts)
		posts.GET("/get/:id", postHandler.GetPost)
		posts.POST("/create", requireUser, postHandler.CreatePost)
		posts.PUT("/update", postHandler.UpdatePost)
		posts.DELETE("/delete", postHandler.DeletePost)
	}

	category := r.Group("/category")
	{
		category.GET("/get", categoryHandler.GetCategories)
		category.POST("/post", categoryHandler.CreateCategory)
	}

	return r
}
