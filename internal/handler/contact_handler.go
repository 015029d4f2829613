package handler

import (
	"net/http"

	"ai-solution-go/internal/model"
	"ai-solution-go/internal/service"
	"ai-solution-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// ContactHandler 负责处理联系咨询相关的 API 请求。
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler 创建一个新的 ContactHandler 实例。
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// CreateContactRequest 定义了提交联系咨询的请求体结构。
// 该接口对未登录的访客开放，对应官网上的联系表单。
type CreateContactRequest struct {
	FullName          string `json:"full_name" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	PhoneNumber       string `json:"phone_number"`
	CompanyName       string `json:"company_name"`
	Country           string `json:"country"`
	JobTitle          string `json:"job_title"`
	JobDetails        string `json:"job_details"`
	CompanyLocation   string `json:"company_location"`
	InterestedProduct string `json:"interested_product"`
	CurrentSolution   string `json:"current_solution"`
	InquiryReason     string `json:"inquiry_reason"`
}

// Create 处理创建联系咨询请求。新咨询的状态固定为 Pending。
func (h *ContactHandler) Create(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Full name and a valid email are required"})
		return
	}

	contact := &model.ContactInquiry{
		FullName:          req.FullName,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		CompanyName:       req.CompanyName,
		Country:           req.Country,
		JobTitle:          req.JobTitle,
		JobDetails:        req.JobDetails,
		CompanyLocation:   req.CompanyLocation,
		InterestedProduct: req.InterestedProduct,
		CurrentSolution:   req.CurrentSolution,
		InquiryReason:     req.InquiryReason,
		Status:            model.ContactStatusPending,
	}
	if err := h.contactService.Create(contact); err != nil {
		log.Error("Create contact inquiry: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact inquiry"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Contact inquiry created successfully!",
		"contact": contact,
	})
}

// List 返回联系咨询列表，支持按 status 查询参数过滤。
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contactService.List(c.Query("status"))
	if err != nil {
		log.Error("List contact inquiries: query failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list contact inquiries"})
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// Get 返回指定 ID 的联系咨询。
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	contact, err := h.contactService.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact inquiry not found"})
			return
		}
		log.Error("Get contact inquiry: query failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contact inquiry"})
		return
	}
	c.JSON(http.StatusOK, contact)
}

// UpdateContactRequest 定义了更新联系咨询的请求体结构，所有字段可选。
type UpdateContactRequest struct {
	FullName          *string `json:"full_name"`
	Email             *string `json:"email"`
	PhoneNumber       *string `json:"phone_number"`
	CompanyName       *string `json:"company_name"`
	Country           *string `json:"country"`
	JobTitle          *string `json:"job_title"`
	JobDetails        *string `json:"job_details"`
	CompanyLocation   *string `json:"company_location"`
	InterestedProduct *string `json:"interested_product"`
	CurrentSolution   *string `json:"current_solution"`
	InquiryReason     *string `json:"inquiry_reason"`
	Status            *string `json:"status"`
}

// Update 部分更新指定联系咨询，常见用途是推进处理状态。
func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	contact, err := h.contactService.Update(id, service.ContactUpdate{
		FullName:          req.FullName,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		CompanyName:       req.CompanyName,
		Country:           req.Country,
		JobTitle:          req.JobTitle,
		JobDetails:        req.JobDetails,
		CompanyLocation:   req.CompanyLocation,
		InterestedProduct: req.InterestedProduct,
		CurrentSolution:   req.CurrentSolution,
		InquiryReason:     req.InquiryReason,
		Status:            req.Status,
	})
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact inquiry not found"})
			return
		}
		log.Error("Update contact inquiry: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact inquiry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact inquiry updated successfully", "contact": contact})
}

// Delete 删除指定联系咨询。
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.contactService.Delete(id); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact inquiry not found"})
			return
		}
		log.Error("Delete contact inquiry: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact inquiry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact inquiry deleted successfully"})
}
