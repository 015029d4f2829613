package handler

import (
	"net/http"

	"ai-solution-go/internal/service"
	"ai-solution-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// maxUploadSize 限制单个上传文件不超过 10MB。
const maxUploadSize = 10 << 20

// UploadHandler 负责处理图片上传的 API 请求。
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler 创建一个新的 UploadHandler 实例。
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadImage 接收 multipart 表单中的 image 文件，存入对象存储并返回可访问的 URL。
// 返回的 URL 可以填入文章、解决方案或活动的 image_url 字段。
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An image file is required"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image exceeds the 10MB size limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error("UploadImage: failed to open uploaded file", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded image"})
		return
	}
	defer file.Close()

	url, err := h.uploadService.UploadImage(c.Request.Context(), file, fileHeader)
	if err != nil {
		log.Error("UploadImage: failed to store object", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Image uploaded successfully", "url": url})
}
