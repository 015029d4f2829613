package service

import (
	"ai-solution-go/internal/model"
	"ai-solution-go/internal/repository"
)

// ArticleUpdate 描述对文章的部分更新，nil 字段保持原值。
type ArticleUpdate struct {
	Title    *string
	Content  *string
	Category *string
	ImageURL *string
}

// ArticleService 接口定义了文章的业务操作。
type ArticleService interface {
	Create(article *model.Article) error
	List(category string) ([]model.ArticleWithAuthor, error)
	GetByID(id uint) (*model.ArticleWithAuthor, error)
	Update(id uint, update ArticleUpdate) (*model.Article, error)
	Delete(id uint) error
}

type articleService struct {
	articleRepo repository.ArticleRepository
}

// NewArticleService 创建一个新的 ArticleService 实例。
func NewArticleService(articleRepo repository.ArticleRepository) ArticleService {
	return &articleService{articleRepo: articleRepo}
}

// Create 持久化一篇新的文章。
func (s *articleService) Create(article *model.Article) error {
	return s.articleRepo.Create(article)
}

// List 返回文章列表（含作者用户名），可按分类过滤。
func (s *articleService) List(category string) ([]model.ArticleWithAuthor, error) {
	return s.articleRepo.FindAll(category)
}

// GetByID 返回指定 ID 的文章（含作者用户名）。
func (s *articleService) GetByID(id uint) (*model.ArticleWithAuthor, error) {
	return s.articleRepo.FindByID(id)
}

// Update 将非 nil 字段覆盖到已有记录上，其余字段保持原值。
func (s *articleService) Update(id uint, update ArticleUpdate) (*model.Article, error) {
	article, err := s.articleRepo.FindRaw(id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		article.Title = *update.Title
	}
	if update.Content != nil {
		article.Content = *update.Content
	}
	if update.Category != nil {
		article.Category = *update.Category
	}
	if update.ImageURL != nil {
		article.ImageURL = *update.ImageURL
	}

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

// Delete 删除指定 ID 的文章。
func (s *articleService) Delete(id uint) error {
	if _, err := s.articleRepo.FindRaw(id); err != nil {
		return err
	}
	return s.articleRepo.Delete(id)
}
