package handler

import (
	"net/http"
	"time"

	"ai-solution-go/internal/model"
	"ai-solution-go/internal/service"
	"ai-solution-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// EventHandler 负责处理促销活动相关的 API 请求。
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler 创建一个新的 EventHandler 实例。
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// eventDateLayouts 是活动起止时间接受的格式，按顺序尝试。
var eventDateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseEventDate 解析请求中的日期字符串。空串返回 nil 指针表示未提供。
func parseEventDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	var lastErr error
	for _, layout := range eventDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return &t, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// CreateEventRequest 定义了创建促销活动的请求体结构。
// 日期接受 RFC3339 或 YYYY-MM-DD 格式的字符串。
type CreateEventRequest struct {
	EventName        string `json:"event_name" binding:"required"`
	EventDescription string `json:"event_description"`
	EventStartDate   string `json:"event_start_date"`
	EventEndDate     string `json:"event_end_date"`
	Location         string `json:"location"`
	ImageURL         string `json:"image_url"`
}

// Create 处理创建促销活动请求。is_upcoming 由起始时间推导，不接受客户端指定。
func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event name is required"})
		return
	}

	startDate, err := parseEventDate(req.EventStartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event_start_date format"})
		return
	}
	endDate, err := parseEventDate(req.EventEndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event_end_date format"})
		return
	}

	event := &model.PromotionalEvent{
		EventName:        req.EventName,
		EventDescription: req.EventDescription,
		EventStartDate:   startDate,
		EventEndDate:     endDate,
		Location:         req.Location,
		ImageURL:         req.ImageURL,
		IsUpcoming:       startDate == nil || !startDate.Before(time.Now().UTC()),
	}
	if err := h.eventService.Create(event); err != nil {
		log.Error("Create event: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Event created successfully", "event": event})
}

// List 返回促销活动列表。查询参数 filter=upcoming 或 filter=past 可过滤，
// 每次调用前都会按当前时间刷新过期活动的 is_upcoming 标记。
func (h *EventHandler) List(c *gin.Context) {
	var isUpcoming *bool
	switch c.Query("filter") {
	case "upcoming":
		v := true
		isUpcoming = &v
	case "past":
		v := false
		isUpcoming = &v
	case "":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "filter must be 'upcoming' or 'past'"})
		return
	}

	events, err := h.eventService.List(isUpcoming)
	if err != nil {
		log.Error("List events: query failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// Get 返回指定 ID 的促销活动。
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	event, err := h.eventService.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		log.Error("Get event: query failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get event"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// UpdateEventRequest 定义了更新促销活动的请求体结构，所有字段可选。
type UpdateEventRequest struct {
	EventName        *string `json:"event_name"`
	EventDescription *string `json:"event_description"`
	EventStartDate   *string `json:"event_start_date"`
	EventEndDate     *string `json:"event_end_date"`
	Location         *string `json:"location"`
	ImageURL         *string `json:"image_url"`
	IsUpcoming       *bool   `json:"is_upcoming"`
}

// Update 部分更新指定促销活动。
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	update := service.EventUpdate{
		EventName:        req.EventName,
		EventDescription: req.EventDescription,
		Location:         req.Location,
		ImageURL:         req.ImageURL,
		IsUpcoming:       req.IsUpcoming,
	}
	if req.EventStartDate != nil {
		startDate, err := parseEventDate(*req.EventStartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event_start_date format"})
			return
		}
		update.EventStartDate = startDate
	}
	if req.EventEndDate != nil {
		endDate, err := parseEventDate(*req.EventEndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event_end_date format"})
			return
		}
		update.EventEndDate = endDate
	}

	event, err := h.eventService.Update(id, update)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		log.Error("Update event: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully", "event": event})
}

// Delete 删除指定促销活动。
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.eventService.Delete(id); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		log.Error("Delete event: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
