package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ai-solution-go/internal/model"
	"ai-solution-go/pkg/llm"
	"ai-solution-go/pkg/log"

	"gorm.io/gorm"
)

// 聊天编排的业务错误。
var (
	// ErrEmptyMessage 表示请求缺少非空的 message 字段。
	ErrEmptyMessage = errors.New("No message provided")
	// ErrUpstream 标记外部 AI 调用失败；对外永远只返回固定的致歉文案。
	ErrUpstream = errors.New("upstream ai call failed")
)

// ChatService 编排单次聊天回合：
// 校验 → 持久化用户消息 → 装配上下文 → 调用外部 AI → 写回响应。
type ChatService interface {
	HandleMessage(ctx context.Context, user *model.User, message string) (*model.ChatMessage, error)
}

type chatService struct {
	db        *gorm.DB
	chatbot   ChatbotService
	llmClient llm.Client
}

// NewChatService 创建一个新的 ChatService 实例。
func NewChatService(db *gorm.DB, chatbot ChatbotService, llmClient llm.Client) ChatService {
	return &chatService{
		db:        db,
		chatbot:   chatbot,
		llmClient: llmClient,
	}
}

// HandleMessage 在单个事务中处理一次聊天回合。
// 外部调用失败或任何持久化异常都会回滚整个事务，消息行不会部分提交。
func (s *chatService) HandleMessage(ctx context.Context, user *model.User, message string) (*model.ChatMessage, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	var msg model.ChatMessage
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// 1. 持久化用户消息（response 此时为空）
		msg = model.ChatMessage{UserID: user.ID, Content: message}
		if err := tx.Create(&msg).Error; err != nil {
			return err
		}

		// 2. 装配系统消息（公司资料 + 最新文章/活动上下文）并调用外部模型
		systemMsg := s.chatbot.BuildSystemMessage()
		answer, err := s.llmClient.Generate(ctx, systemMsg, message)
		if err != nil {
			log.Error("chat: upstream generate failed", err)
			return fmt.Errorf("%w: %v", ErrUpstream, err)
		}

		// 3. 将响应写回同一行并随事务提交
		msg.Response = &answer
		return tx.Save(&msg).Error
	})
	if err != nil {
		return nil, err
	}

	return &msg, nil
}
