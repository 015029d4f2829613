package service

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"ai-solution-go/internal/model"
	"ai-solution-go/internal/repository"
	"ai-solution-go/pkg/log"
)

const (
	// 上下文装配的边界：最近 5 篇文章、最多 3 个即将举行的活动。
	maxContextArticles = 5
	maxContextEvents   = 3
	// 文章内容截断到前 200 个字符。
	articleSnippetLen = 200

	contextRefStart = "<<CONTEXT>>"
	contextRefEnd   = "<<END>>"
)

// CompanyProfile 是进程启动时加载一次的静态公司资料。
type CompanyProfile struct {
	Name     string   `json:"name"`
	About    string   `json:"about"`
	Products []string `json:"products"`
	Services []string `json:"services"`
	Policies []string `json:"policies"`
}

// LoadCompanyProfile 从 JSON 文件读取公司资料。
func LoadCompanyProfile(path string) (*CompanyProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read company profile: %w", err)
	}
	var profile CompanyProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse company profile: %w", err)
	}
	return &profile, nil
}

// ChatbotService 负责装配聊天机器人的系统提示与数据库上下文。
// 它在进程启动时被显式构造并注入，而不是在首个请求上惰性初始化。
type ChatbotService interface {
	SystemPrompt() string
	BuildContext() string
	BuildSystemMessage() string
}

type chatbotService struct {
	profile      *CompanyProfile
	articleRepo  repository.ArticleRepository
	eventRepo    repository.EventRepository
	nowFunc      func() time.Time
	systemPrompt string
}

// NewChatbotService 创建一个新的 ChatbotService 实例。
// 系统提示在构造时根据公司资料生成一次，之后保持只读。
func NewChatbotService(profile *CompanyProfile, articleRepo repository.ArticleRepository, eventRepo repository.EventRepository) ChatbotService {
	s := &chatbotService{
		profile:     profile,
		articleRepo: articleRepo,
		eventRepo:   eventRepo,
		nowFunc:     time.Now,
	}
	s.systemPrompt = s.buildSystemPrompt()
	return s
}

// SystemPrompt 返回初始化时生成的系统提示。
func (s *chatbotService) SystemPrompt() string {
	return s.systemPrompt
}

// buildSystemPrompt 将公司资料与作用域策略嵌入固定模板。
// 策略只是发给外部模型的自然语言指令，并不能被程序强制执行。
func (s *chatbotService) buildSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You are the official virtual assistant of %s.\n\n", s.profile.Name))
	sb.WriteString("Company profile:\n")
	if s.profile.About != "" {
		sb.WriteString(fmt.Sprintf("About: %s\n", s.profile.About))
	}
	if len(s.profile.Products) > 0 {
		sb.WriteString(fmt.Sprintf("Products: %s\n", strings.Join(s.profile.Products, ", ")))
	}
	if len(s.profile.Services) > 0 {
		sb.WriteString(fmt.Sprintf("Services: %s\n", strings.Join(s.profile.Services, ", ")))
	}
	if len(s.profile.Policies) > 0 {
		sb.WriteString(fmt.Sprintf("Policies: %s\n", strings.Join(s.profile.Policies, "; ")))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(
		"Only answer questions about %s, its products, services, promotional events, articles and customer support. "+
			"If the question is about anything else, reply exactly: \"Sorry, I can only answer questions about %s and its products and services.\"",
		s.profile.Name, s.profile.Name))
	return sb.String()
}

// BuildContext 查询最近 5 篇文章与最多 3 个即将举行的活动，
// 拼接成一个有界文本块。不按用户消息做相关性过滤，只是最新的 N 行。
func (s *chatbotService) BuildContext() string {
	var sb strings.Builder

	articles, err := s.articleRepo.FindRecent(maxContextArticles)
	if err != nil {
		log.Error("chatbot: failed to load recent articles", err)
	}
	for _, a := range articles {
		sb.WriteString(fmt.Sprintf("Article: %s — %s\n", a.Title, snippet(a.Content, articleSnippetLen)))
	}

	events, err := s.eventRepo.FindUpcoming(s.nowFunc().UTC(), maxContextEvents)
	if err != nil {
		log.Error("chatbot: failed to load upcoming events", err)
	}
	for _, e := range events {
		sb.WriteString(fmt.Sprintf("Event: %s (%s) — %s\n", e.EventName, formatEventDate(e), e.EventDescription))
	}

	return sb.String()
}

// BuildSystemMessage 组合系统提示与当前上下文块。
func (s *chatbotService) BuildSystemMessage() string {
	var sb strings.Builder
	sb.WriteString(s.systemPrompt)
	sb.WriteString("\n\n")
	sb.WriteString(contextRefStart)
	sb.WriteString("\n")
	if contextText := s.BuildContext(); contextText != "" {
		sb.WriteString(contextText)
	}
	sb.WriteString(contextRefEnd)
	return sb.String()
}

// snippet 返回内容的前 n 个字符（按 rune 截断，避免截断多字节字符）。
func snippet(content string, n int) string {
	runes := []rune(content)
	if len(runes) <= n {
		return content
	}
	return string(runes[:n])
}

func formatEventDate(e model.PromotionalEvent) string {
	if e.EventStartDate == nil {
		return "date TBA"
	}
	return e.EventStartDate.Format("2006-01-02")
}
