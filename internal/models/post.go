package models

import "time"

// Post represents the posts table
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:50;not null" json:"title"`
	Content   *string   `gorm:"size:255" json:"content"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Categories is filled by the repository from category_post on reads
	Categories []Category `gorm:"-" json:"categories"`
}

// TableName specifies the table name for Post model
func (Post) TableName() string {
	return "posts"
}

// PostCategory is one row of the many-to-many link between posts and categories.
// The composite primary key keeps each (post, category) pair unique. There is
// no foreign key on category_id, so links to unknown categories are stored as is.
type PostCategory struct {
	PostID     uint `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	CategoryID uint `gorm:"primaryKey;autoIncrement:false;index" json:"category_id"`

	Post *Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for PostCategory model
func (PostCategory) TableName() string {
	return "category_post"
}
