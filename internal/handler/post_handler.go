package handler

import (
	"net/http"

	"blog-backend/internal/middleware"
	"blog-backend/internal/service"
	"blog-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

type CreatePostRequest struct {
	Title      string  `json:"title" binding:"required,max=50"`
	Content    *string `json:"content" binding:"omitempty,max=255"`
	Categories []uint  `json:"categories"`
}

type UpdatePostRequest struct {
	Title   string  `json:"title" binding:"required,max=50"`
	Content *string `json:"content" binding:"omitempty,max=255"`
}

// GetPosts lists all posts
func (h *PostHandler) GetPosts(c *gin.Context) {
	posts, err := h.postService.GetAllPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, posts)
}

// GetPost retrieves a post by the id path parameter
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, post)
}

// CreatePost creates a post for the authenticated user
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	user, _ := middleware.CurrentUser(c)

	post, err := h.postService.CreatePost(c.Request.Context(), user.ID, req.Title, req.Content, req.Categories)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, post)
}

// UpdatePost updates the post named by the id query parameter
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c.Query("id"))
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), id, req.Title, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, post)
}

// DeletePost deletes the post named by the id query parameter
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parseID(c.Query("id"))
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Post deleted successfully")
}
