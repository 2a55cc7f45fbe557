package services

import (
	"net/http"

	"monprof_backend/internal/models"
	"monprof_backend/internal/repositories"
	"monprof_backend/internal/services/dto"
	"monprof_backend/pkg/apperrors"
)

type BlogService interface {
	ListPublished(filter repositories.ArticleFilter) (*dto.Paginated[dto.ArticleDTO], error)
	GetBySlug(slug string, viewerID string) (*dto.ArticleDetailDTO, error)
	AddComment(slug, authorID string, req *dto.CreateCommentRequest) (*dto.CommentDTO, error)
	ToggleLike(slug, userID string) (*dto.LikeResponse, error)
	ListCategories() ([]dto.CategoryDTO, error)

	// Back-office
	CreateArticle(authorID string, req *dto.CreateArticleRequest) (*dto.ArticleDTO, error)
	UpdateArticle(articleID string, req *dto.UpdateArticleRequest) (*dto.ArticleDTO, error)
	DeleteArticle(articleID string) error
	CreateCategory(req *dto.CreateCategoryRequest) (*dto.CategoryDTO, error)
	DeleteCategory(categoryID string) error
	DeleteComment(commentID string) error
}

type BlogServiceImpl struct {
	blogRepo repositories.BlogRepository
}

func NewBlogService(blogRepo repositories.BlogRepository) BlogService {
	return &BlogServiceImpl{blogRepo: blogRepo}
}

func (s *BlogServiceImpl) ListPublished(filter repositories.ArticleFilter) (*dto.Paginated[dto.ArticleDTO], error) {
	articles, total, err := s.blogRepo.FindPublished(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.ArticleDTO, 0, len(articles))
	for i := range articles {
		items = append(items, dto.NewArticleDTO(&articles[i]))
	}

	page := filter.Page
	if page == 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize == 0 {
		pageSize = 10
	}
	result := dto.NewPaginated(items, total, page, pageSize)
	return &result, nil
}

// GetBySlug serves the public article page. Unpublished articles 404.
func (s *BlogServiceImpl) GetBySlug(slug string, viewerID string) (*dto.ArticleDetailDTO, error) {
	article, err := s.loadBySlug(slug)
	if err != nil {
		return nil, err
	}
	if !article.IsPublished {
		return nil, apperrors.ErrNotFound(repositories.ErrArticleNotFound)
	}

	comments, err := s.blogRepo.FindCommentsByArticle(article.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	detail := &dto.ArticleDetailDTO{
		ArticleDTO: dto.NewArticleDTO(article),
		Content:    article.Content,
		Liked:      viewerID != "" && article.IsLikedBy(viewerID),
		Comments:   make([]dto.CommentDTO, 0, len(comments)),
	}
	for i := range comments {
		detail.Comments = append(detail.Comments, dto.NewCommentDTO(&comments[i]))
	}
	return detail, nil
}

func (s *BlogServiceImpl) AddComment(slug, authorID string, req *dto.CreateCommentRequest) (*dto.CommentDTO, error) {
	article, err := s.loadBySlug(slug)
	if err != nil {
		return nil, err
	}
	if !article.IsPublished {
		return nil, apperrors.ErrNotFound(repositories.ErrArticleNotFound)
	}

	comment := &models.Comment{
		ArticleID: article.ID,
		AuthorID:  authorID,
		Content:   req.Content,
	}
	if err := s.blogRepo.CreateComment(comment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewCommentDTO(comment)
	return &result, nil
}

// ToggleLike adds or removes the caller from the article's like list.
func (s *BlogServiceImpl) ToggleLike(slug, userID string) (*dto.LikeResponse, error) {
	article, err := s.loadBySlug(slug)
	if err != nil {
		return nil, err
	}
	if !article.IsPublished {
		return nil, apperrors.ErrNotFound(repositories.ErrArticleNotFound)
	}

	liked := false
	likedBy := make([]string, 0, len(article.LikedBy))
	for _, id := range article.LikedBy {
		if id == userID {
			continue
		}
		likedBy = append(likedBy, id)
	}
	if len(likedBy) == len(article.LikedBy) {
		likedBy = append(likedBy, userID)
		liked = true
	}

	if err := s.blogRepo.UpdateLikedBy(article.ID, likedBy); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LikeResponse{Liked: liked, LikeCount: len(likedBy)}, nil
}

func (s *BlogServiceImpl) ListCategories() ([]dto.CategoryDTO, error) {
	categories, err := s.blogRepo.FindAllCategories()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		items = append(items, dto.CategoryDTO{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}
	return items, nil
}

func (s *BlogServiceImpl) CreateArticle(authorID string, req *dto.CreateArticleRequest) (*dto.ArticleDTO, error) {
	article := &models.Article{
		Title:       req.Title,
		Slug:        req.Slug,
		AuthorID:    authorID,
		ImageURL:    req.ImageURL,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		IsPublished: req.IsPublished,
	}

	if req.CategorySlug != "" {
		category, err := s.blogRepo.FindCategoryBySlug(req.CategorySlug)
		if err != nil {
			if apperrors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		article.CategoryID = &category.ID
	}

	if _, err := s.blogRepo.FindArticleBySlug(req.Slug); err == nil {
		return nil, apperrors.New(apperrors.CodeAlreadyExists, "blog", "An article with this slug already exists", http.StatusConflict)
	}

	if err := s.blogRepo.CreateArticle(article); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewArticleDTO(article)
	return &result, nil
}

func (s *BlogServiceImpl) UpdateArticle(articleID string, req *dto.UpdateArticleRequest) (*dto.ArticleDTO, error) {
	article, err := s.blogRepo.FindArticleByID(articleID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrArticleNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	article.Title = req.Title
	article.Slug = req.Slug
	article.ImageURL = req.ImageURL
	article.Excerpt = req.Excerpt
	article.Content = req.Content
	article.IsPublished = req.IsPublished

	if req.CategorySlug != "" {
		category, err := s.blogRepo.FindCategoryBySlug(req.CategorySlug)
		if err != nil {
			if apperrors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		article.CategoryID = &category.ID
	} else {
		article.CategoryID = nil
	}

	if err := s.blogRepo.UpdateArticle(article); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewArticleDTO(article)
	return &result, nil
}

func (s *BlogServiceImpl) DeleteArticle(articleID string) error {
	if err := s.blogRepo.DeleteArticle(articleID); err != nil {
		if apperrors.Is(err, repositories.ErrArticleNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *BlogServiceImpl) CreateCategory(req *dto.CreateCategoryRequest) (*dto.CategoryDTO, error) {
	category := &models.Category{Name: req.Name, Slug: req.Slug}
	if err := s.blogRepo.CreateCategory(category); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.CategoryDTO{ID: category.ID, Name: category.Name, Slug: category.Slug}, nil
}

func (s *BlogServiceImpl) DeleteCategory(categoryID string) error {
	if err := s.blogRepo.DeleteCategory(categoryID); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *BlogServiceImpl) DeleteComment(commentID string) error {
	if err := s.blogRepo.DeleteComment(commentID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *BlogServiceImpl) loadBySlug(slug string) (*models.Article, error) {
	article, err := s.blogRepo.FindArticleBySlug(slug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrArticleNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return article, nil
}
