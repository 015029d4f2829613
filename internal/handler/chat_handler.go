package handler

import (
	"errors"
	"net/http"

	"ai-solution-go/internal/service"
	"ai-solution-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// chatApology 是 AI 服务不可用时返回给前端的固定文案。
const chatApology = "Sorry, there was an issue with the AI model."

// ChatHandler 负责处理聊天机器人的 API 请求。
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler 创建一个新的 ChatHandler 实例。
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest 定义了一次聊天轮次的请求体结构。
type ChatRequest struct {
	Message string `json:"message"`
}

// Chat 处理一次聊天轮次：持久化用户消息，调用生成式 AI，返回回答。
// 上游失败时整个轮次回滚，不会留下没有回答的消息记录。
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrEmptyMessage.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	msg, err := h.chatService.HandleMessage(c.Request.Context(), user, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrEmptyMessage.Error()})
			return
		}
		log.Error("Chat: turn failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": chatApology})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response":   msg.Response,
		"message_id": msg.ID,
	})
}
