package dto

import (
	"time"

	"monprof_backend/internal/models"
)

type ArticleDTO struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	AuthorName   string    `json:"author_name,omitempty"`
	CategoryName string    `json:"category_name,omitempty"`
	CategorySlug string    `json:"category_slug,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	Excerpt      string    `json:"excerpt,omitempty"`
	IsPublished  bool      `json:"is_published"`
	LikeCount    int       `json:"like_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type ArticleDetailDTO struct {
	ArticleDTO
	Content  string       `json:"content"`
	Liked    bool         `json:"liked"`
	Comments []CommentDTO `json:"comments"`
}

type CommentDTO struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

type CreateArticleRequest struct {
	Title        string `json:"title" binding:"required"`
	Slug         string `json:"slug" binding:"required"`
	CategorySlug string `json:"category_slug"`
	ImageURL     string `json:"image_url"`
	Excerpt      string `json:"excerpt"`
	Content      string `json:"content" binding:"required"`
	IsPublished  bool   `json:"is_published"`
}

type UpdateArticleRequest struct {
	CreateArticleRequest
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

type CategoryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type LikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

func NewArticleDTO(article *models.Article) ArticleDTO {
	dto := ArticleDTO{
		ID:          article.ID,
		Title:       article.Title,
		Slug:        article.Slug,
		ImageURL:    article.ImageURL,
		Excerpt:     article.Excerpt,
		IsPublished: article.IsPublished,
		LikeCount:   article.LikeCount(),
		CreatedAt:   article.CreatedAt,
	}
	if article.Author != nil {
		dto.AuthorName = article.Author.FullName()
	}
	if article.Category != nil {
		dto.CategoryName = article.Category.Name
		dto.CategorySlug = article.Category.Slug
	}
	return dto
}

func NewCommentDTO(comment *models.Comment) CommentDTO {
	dto := CommentDTO{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
	if comment.Author != nil {
		dto.AuthorName = comment.Author.FullName()
	}
	return dto
}
