package repository

import (
	"context"

	"blog-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// CreatePostWithCategories inserts post and links it to every distinct id in
// categoryIDs inside one transaction. The post row is flushed first so its id
// is known, then one category_post row is written per category. Any failure
// rolls back the post and all of its links.
func (r *PostRepository) CreatePostWithCategories(ctx context.Context, post *models.Post, categoryIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
			return err
		}

		for _, categoryID := range uniqueIDs(categoryIDs) {
			link := &models.PostCategory{PostID: post.ID, CategoryID: categoryID}
			err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Omit(clause.Associations).
				Create(link).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// GetAllPosts retrieves all posts with their categories
func (r *PostRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	if err := r.attachCategories(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostByID retrieves a post by ID with its categories
func (r *PostRepository) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, translate(err)
	}

	posts := []models.Post{post}
	if err := r.attachCategories(ctx, posts); err != nil {
		return nil, err
	}
	return &posts[0], nil
}

// GetCategoryIDs returns the ids a post is linked to, including links to
// categories that no longer exist
func (r *PostRepository) GetCategoryIDs(ctx context.Context, postID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.PostCategory{}).
		Where("post_id = ?", postID).
		Order("category_id ASC").
		Pluck("category_id", &ids).Error
	return ids, err
}

// UpdatePost overwrites the title and content of an existing post
func (r *PostRepository) UpdatePost(ctx context.Context, id uint, title string, content *string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			return translate(err)
		}
		post.Title = title
		post.Content = content
		return tx.Model(&post).Select("title", "content", "updated_at").Updates(&post).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a post and its category links
func (r *PostRepository) DeletePost(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.PostCategory{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

type postCategoryRow struct {
	PostID uint
	ID     uint
	Title  string
}

// attachCategories fills Categories on each post with one join query.
// Links to missing categories are skipped.
func (r *PostRepository) attachCategories(ctx context.Context, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uint, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
		posts[i].Categories = []models.Category{}
	}

	var rows []postCategoryRow
	err := r.db.WithContext(ctx).Table("category_post").
		Select("category_post.post_id, categories.id, categories.title").
		Joins("INNER JOIN categories ON categories.id = category_post.category_id").
		Where("category_post.post_id IN ?", ids).
		Order("categories.id ASC").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	byPost := make(map[uint][]models.Category, len(posts))
	for _, row := range rows {
		byPost[row.PostID] = append(byPost[row.PostID], models.Category{ID: row.ID, Title: row.Title})
	}
	for i := range posts {
		if categories, ok := byPost[posts[i].ID]; ok {
			posts[i].Categories = categories
		}
	}
	return nil
}

// uniqueIDs drops repeated ids, keeping the first occurrence
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
