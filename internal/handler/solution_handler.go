package handler

import (
	"net/http"

	"ai-solution-go/internal/model"
	"ai-solution-go/internal/service"
	"ai-solution-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// SolutionHandler 负责处理解决方案目录相关的 API 请求。
type SolutionHandler struct {
	solutionService service.SolutionService
}

// NewSolutionHandler 创建一个新的 SolutionHandler 实例。
func NewSolutionHandler(solutionService service.SolutionService) *SolutionHandler {
	return &SolutionHandler{solutionService: solutionService}
}

// CreateSolutionRequest 定义了创建解决方案的请求体结构。
type CreateSolutionRequest struct {
	CustomerID  uint   `json:"customer_id"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	KeyFeatures string `json:"key_features"`
	ImageURL    string `json:"image_url"`
}

// Create 处理创建解决方案请求。
func (h *SolutionHandler) Create(c *gin.Context) {
	var req CreateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	solution := &model.Solution{
		CustomerID:  req.CustomerID,
		Title:       req.Title,
		Description: req.Description,
		Industry:    req.Industry,
		KeyFeatures: req.KeyFeatures,
		ImageURL:    req.ImageURL,
	}
	if err := h.solutionService.Create(solution); err != nil {
		log.Error("Create solution: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create solution"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Solution created successfully", "solution": solution})
}

// List 返回解决方案列表，支持按 industry 查询参数过滤。
func (h *SolutionHandler) List(c *gin.Context) {
	solutions, err := h.solutionService.List(c.Query("industry"))
	if err != nil {
		log.Error("List solutions: query failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list solutions"})
		return
	}
	c.JSON(http.StatusOK, solutions)
}

// Get 返回指定 ID 的解决方案。
func (h *SolutionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	solution, err := h.solutionService.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Solution not found"})
			return
		}
		log.Error("Get solution: query failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get solution"})
		return
	}
	c.JSON(http.StatusOK, solution)
}

// UpdateSolutionRequest 定义了更新解决方案的请求体结构，所有字段可选。
type UpdateSolutionRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Industry    *string `json:"industry"`
	KeyFeatures *string `json:"key_features"`
	ImageURL    *string `json:"image_url"`
}

// Update 部分更新指定解决方案。
func (h *SolutionHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	solution, err := h.solutionService.Update(id, service.SolutionUpdate{
		Title:       req.Title,
		Description: req.Description,
		Industry:    req.Industry,
		KeyFeatures: req.KeyFeatures,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Solution not found"})
			return
		}
		log.Error("Update solution: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update solution"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Solution updated successfully", "solution": solution})
}

// Delete 删除指定解决方案。
func (h *SolutionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.solutionService.Delete(id); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Solution not found"})
			return
		}
		log.Error("Delete solution: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete solution"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Solution deleted successfully"})
}
