package service

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/internal/models"
	"blog-backend/internal/repository"
)

type PostService struct {
	postRepo  *repository.PostRepository
	auditRepo *repository.AuditRepository
}

func NewPostService(postRepo *repository.PostRepository, auditRepo *repository.AuditRepository) *PostService {
	return &PostService{
		postRepo:  postRepo,
		auditRepo: auditRepo,
	}
}

// GetAllPosts lists all posts, visible to everyone
func (s *PostService) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := s.postRepo.GetAllPosts(ctx)
	if err != nil {
		return nil, unavailable("list posts", err)
	}
	return posts, nil
}

// GetPost retrieves a single post by ID
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, unavailable("get post", err)
	}
	return post, nil
}

// CreatePost writes a post owned by authorID along with its category links
// as one unit. Category ids are not checked against the categories table.
func (s *PostService) CreatePost(ctx context.Context, authorID uint, title string, content *string, categoryIDs []uint) (*models.Post, error) {
	post := &models.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}

	if err := s.postRepo.CreatePostWithCategories(ctx, post, categoryIDs); err != nil {
		return nil, unavailable("create post", err)
	}

	// Audit log
	userIDPtr := &authorID
	details := fmt.Sprintf("Created post %d with %d categories", post.ID, len(categoryIDs))
	_ = s.auditRepo.CreateAuditLog(ctx, userIDPtr, "post_create", details)

	return post, nil
}

// UpdatePost replaces the title and content of a post
func (s *PostService) UpdatePost(ctx context.Context, id uint, title string, content *string) (*models.Post, error) {
	post, err := s.postRepo.UpdatePost(ctx, id, title, content)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, unavailable("update post", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, nil, "post_update", fmt.Sprintf("Updated post %d", id))

	return post, nil
}

// DeletePost removes a post and its category links
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	if err := s.postRepo.DeletePost(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostNotFound
		}
		return unavailable("delete post", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, nil, "post_delete", fmt.Sprintf("Deleted post %d", id))

	return nil
}
