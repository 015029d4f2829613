package handler

import (
	"errors"
	"net/http"
	"strconv"

	"ai-solution-go/internal/model"
	"ai-solution-go/internal/service"
	"ai-solution-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler 负责处理客户反馈相关的 API 请求。
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler 创建一个新的 FeedbackHandler 实例。
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// CreateFeedbackRequest 定义了提交客户反馈的请求体结构。
type CreateFeedbackRequest struct {
	CustomerID   uint   `json:"customer_id"`
	FeedbackText string `json:"feedback_text" binding:"required"`
	Rating       *int   `json:"rating"`
}

// Create 处理创建客户反馈请求。评分如果给出必须在 1 到 5 之间。
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Feedback text is required"})
		return
	}

	feedback := &model.CustomerFeedback{
		CustomerID:   req.CustomerID,
		FeedbackText: req.FeedbackText,
		Rating:       req.Rating,
	}
	if err := h.feedbackService.Create(feedback); err != nil {
		if errors.Is(err, service.ErrInvalidRating) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Error("Create feedback: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Feedback created successfully", "feedback": feedback})
}

// List 返回全部客户反馈。
func (h *FeedbackHandler) List(c *gin.Context) {
	feedbacks, err := h.feedbackService.List()
	if err != nil {
		log.Error("List feedbacks: query failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list feedbacks"})
		return
	}
	c.JSON(http.StatusOK, feedbacks)
}

// Get 返回指定 ID 的客户反馈。
func (h *FeedbackHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	feedback, err := h.feedbackService.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
			return
		}
		log.Error("Get feedback: query failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get feedback"})
		return
	}
	c.JSON(http.StatusOK, feedback)
}

// UpdateFeedbackRequest 定义了更新客户反馈的请求体结构，所有字段可选。
type UpdateFeedbackRequest struct {
	FeedbackText *string `json:"feedback_text"`
	Rating       *int    `json:"rating"`
}

// Update 部分更新指定客户反馈。
func (h *FeedbackHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	feedback, err := h.feedbackService.Update(id, service.FeedbackUpdate{
		FeedbackText: req.FeedbackText,
		Rating:       req.Rating,
	})
	if err != nil {
		switch {
		case isNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
		case errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Error("Update feedback: failed", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update feedback"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback updated successfully", "feedback": feedback})
}

// Delete 删除指定客户反馈。
func (h *FeedbackHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.feedbackService.Delete(id); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
			return
		}
		log.Error("Delete feedback: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted successfully"})
}

// AverageRating 返回指定客户的平均评分。customerId 通过查询参数传入，
// 缺省为 0 表示统计全部反馈。
func (h *FeedbackHandler) AverageRating(c *gin.Context) {
	customerID, err := strconv.ParseUint(c.DefaultQuery("customer_id", "0"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer_id parameter"})
		return
	}

	average, err := h.feedbackService.AverageRating(uint(customerID))
	if err != nil {
		log.Error("AverageRating: query failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute average rating"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"average_rating": average})
}
