package repository

import (
	"ai-solution-go/internal/model"

	"gorm.io/gorm"
)

// ArticleRepository 接口定义了文章数据的持久化操作。
type ArticleRepository interface {
	Create(article *model.Article) error
	FindAll(category string) ([]model.ArticleWithAuthor, error)
	FindByID(id uint) (*model.ArticleWithAuthor, error)
	FindRaw(id uint) (*model.Article, error)
	Update(article *model.Article) error
	Delete(id uint) error
	Count() (int64, error)
	FindRecent(limit int) ([]model.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository 创建一个新的 ArticleRepository 实例。
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// Create 在数据库中创建一条新的文章记录。
func (r *articleRepository) Create(article *model.Article) error {
	return r.db.Create(article).Error
}

// FindAll 通过显式联查返回文章与作者用户名，可按 category 过滤，按 ID 升序。
func (r *articleRepository) FindAll(category string) ([]model.ArticleWithAuthor, error) {
	var articles []model.ArticleWithAuthor
	query := r.db.Model(&model.Article{}).
		Select("articles.*, users.username AS author_name").
		Joins("LEFT JOIN users ON users.id = articles.author_id").
		Order("articles.id ASC")
	if category != "" {
		query = query.Where("articles.category = ?", category)
	}
	err := query.Scan(&articles).Error
	return articles, err
}

// FindByID 根据 ID 联查返回单篇文章与作者用户名。
func (r *articleRepository) FindByID(id uint) (*model.ArticleWithAuthor, error) {
	var article model.ArticleWithAuthor
	err := r.db.Model(&model.Article{}).
		Select("articles.*, users.username AS author_name").
		Joins("LEFT JOIN users ON users.id = articles.author_id").
		Where("articles.id = ?", id).
		First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// FindRaw 根据 ID 查找文章本身（不带作者信息），用于更新前的取值。
func (r *articleRepository) FindRaw(id uint) (*model.Article, error) {
	var article model.Article
	err := r.db.First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Update 更新一条已存在的文章记录。
func (r *articleRepository) Update(article *model.Article) error {
	return r.db.Save(article).Error
}

// Delete 根据 ID 删除一条文章记录。
func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&model.Article{}, id).Error
}

// Count 返回文章总数。
func (r *articleRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&model.Article{}).Count(&total).Error
	return total, err
}

// FindRecent 按发布时间倒序返回最近的 limit 篇文章，供聊天机器人装配上下文。
func (r *articleRepository) FindRecent(limit int) ([]model.Article, error) {
	var articles []model.Article
	err := r.db.Order("published_date DESC").Limit(limit).Find(&articles).Error
	return articles, err
}
