package repositories

import (
	"errors"

	"monprof_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrArticleNotFound  = errors.New("article not found")
	ErrCategoryNotFound = errors.New("category not found")
)

type BlogRepository interface {
	// Article operations
	CreateArticle(article *models.Article) error
	FindArticleByID(id string) (*models.Article, error)
	FindArticleBySlug(slug string) (*models.Article, error)
	FindPublished(criteria ArticleFilter) ([]models.Article, int64, error)
	UpdateArticle(article *models.Article) error
	UpdateLikedBy(articleID string, likedBy []string) error
	DeleteArticle(id string) error
	CountPublished() (int64, error)

	// Category operations
	CreateCategory(category *models.Category) error
	FindAllCategories() ([]models.Category, error)
	FindCategoryBySlug(slug string) (*models.Category, error)
	DeleteCategory(id string) error

	// Comment operations
	CreateComment(comment *models.Comment) error
	FindCommentsByArticle(articleID string) ([]models.Comment, error)
	DeleteComment(id string) error
}

type BlogRepositoryImpl struct {
	db *gorm.DB
}

type ArticleFilter struct {
	CategorySlug string `form:"category"`
	Page         int    `form:"page" binding:"min=0"`
	PageSize     int    `form:"page_size" binding:"min=0,max=100"`
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &BlogRepositoryImpl{db: db}
}

// Article operations

func (r *BlogRepositoryImpl) CreateArticle(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *BlogRepositoryImpl) FindArticleByID(id string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").Preload("Category").
		First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *BlogRepositoryImpl) FindArticleBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").Preload("Category").
		First(&article, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *BlogRepositoryImpl) FindPublished(criteria ArticleFilter) ([]models.Article, int64, error) {
	var articles []models.Article
	query := r.db.Model(&models.Article{}).Where("is_published = ?", true)

	if criteria.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = articles.category_id").
			Where("categories.slug = ?", criteria.CategorySlug)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	if limit == 0 {
		limit = 10
	}
	page := criteria.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit

	err := query.Preload("Author").Preload("Category").
		Order("articles.created_at DESC").Limit(limit).Offset(offset).
		Find(&articles).Error

	return articles, total, err
}

func (r *BlogRepositoryImpl) UpdateArticle(article *models.Article) error {
	result := r.db.Model(article).Updates(map[string]interface{}{
		"title":        article.Title,
		"slug":         article.Slug,
		"category_id":  article.CategoryID,
		"image_url":    article.ImageURL,
		"excerpt":      article.Excerpt,
		"content":      article.Content,
		"is_published": article.IsPublished,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArticleNotFound
	}
	return nil
}

func (r *BlogRepositoryImpl) UpdateLikedBy(articleID string, likedBy []string) error {
	result := r.db.Model(&models.Article{}).Where("id = ?", articleID).
		Update("liked_by", likedBy)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArticleNotFound
	}
	return nil
}

func (r *BlogRepositoryImpl) DeleteArticle(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Article{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrArticleNotFound
		}
		return nil
	})
}

func (r *BlogRepositoryImpl) CountPublished() (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("is_published = ?", true).Count(&count).Error
	return count, err
}

// Category operations

func (r *BlogRepositoryImpl) CreateCategory(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *BlogRepositoryImpl) FindAllCategories() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *BlogRepositoryImpl) FindCategoryBySlug(slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *BlogRepositoryImpl) DeleteCategory(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Comment operations

func (r *BlogRepositoryImpl) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *BlogRepositoryImpl) FindCommentsByArticle(articleID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Author").
		Where("article_id = ?", articleID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *BlogRepositoryImpl) DeleteComment(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Comment{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
