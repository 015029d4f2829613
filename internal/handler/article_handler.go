package handler

import (
	"net/http"

	"ai-solution-go/internal/model"
	"ai-solution-go/internal/service"
	"ai-solution-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// ArticleHandler 负责处理文章相关的 API 请求。
type ArticleHandler struct {
	articleService service.ArticleService
}

// NewArticleHandler 创建一个新的 ArticleHandler 实例。
func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// CreateArticleRequest 定义了创建文章的请求体结构。
type CreateArticleRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
}

// Create 处理创建文章请求。作者是当前登录用户。
func (h *ArticleHandler) Create(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	article := &model.Article{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		ImageURL: req.ImageURL,
	}
	if user, ok := currentUser(c); ok {
		article.AuthorID = user.ID
	}
	if err := h.articleService.Create(article); err != nil {
		log.Error("Create article: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Article created successfully", "article": article})
}

// List 返回文章列表（含作者用户名），支持按 category 查询参数过滤。
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articleService.List(c.Query("category"))
	if err != nil {
		log.Error("List articles: query failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list articles"})
		return
	}
	c.JSON(http.StatusOK, articles)
}

// Get 返回指定 ID 的文章（含作者用户名）。
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	article, err := h.articleService.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		log.Error("Get article: query failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get article"})
		return
	}
	c.JSON(http.StatusOK, article)
}

// UpdateArticleRequest 定义了更新文章的请求体结构，所有字段可选。
type UpdateArticleRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	ImageURL *string `json:"image_url"`
}

// Update 部分更新指定文章。
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	article, err := h.articleService.Update(id, service.ArticleUpdate{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		log.Error("Update article: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article updated successfully", "article": article})
}

// Delete 删除指定文章。
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.articleService.Delete(id); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		log.Error("Delete article: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully"})
}
