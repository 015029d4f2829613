package handler

import (
	"net/http"

	"ai-solution-go/internal/service"
	"ai-solution-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// DashboardHandler 负责处理管理后台的聚合统计 API 请求。
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler 创建一个新的 DashboardHandler 实例。
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Overview 返回总用户数、总咨询数、总文章数与即将开始的活动数。
func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.dashboardService.GetOverview()
	if err != nil {
		log.Error("Dashboard overview: query failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	c.JSON(http.StatusOK, overview)
}

// InquiriesByStatus 返回联系咨询按状态分组的数量。
func (h *DashboardHandler) InquiriesByStatus(c *gin.Context) {
	counts, err := h.dashboardService.GetInquiriesByStatus()
	if err != nil {
		log.Error("Inquiries by status: query failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load inquiry status counts"})
		return
	}
	c.JSON(http.StatusOK, counts)
}

// InquiriesTimeline 返回按天聚合的咨询数量序列以及活动时间标记。
func (h *DashboardHandler) InquiriesTimeline(c *gin.Context) {
	timeline, err := h.dashboardService.GetInquiriesTimeline()
	if err != nil {
		log.Error("Inquiries timeline: query failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load inquiry timeline"})
		return
	}
	c.JSON(http.StatusOK, timeline)
}
