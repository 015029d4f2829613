package service

import (
	"strings"
	"testing"
	"time"

	"ai-solution-go/internal/model"
	"ai-solution-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testProfile() *CompanyProfile {
	return &CompanyProfile{
		Name:     "AI Solution",
		About:    "We build AI products.",
		Products: []string{"AI-Solve", "InsightBoard"},
		Services: []string{"Consulting"},
		Policies: []string{"Data is never sold"},
	}
}

func newChatbotService(t *testing.T) (ChatbotService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewChatbotService(testProfile(), repository.NewArticleRepository(db), repository.NewEventRepository(db))
	return svc, db
}

func TestSystemPrompt_ContainsProfileAndRefusal(t *testing.T) {
	svc, _ := newChatbotService(t)

	prompt := svc.SystemPrompt()
	assert.Contains(t, prompt, "AI Solution")
	assert.Contains(t, prompt, "AI-Solve, InsightBoard")
	assert.Contains(t, prompt, "Consulting")
	assert.Contains(t, prompt,
		`"Sorry, I can only answer questions about AI Solution and its products and services."`)
}

func TestBuildContext_BoundedRAG(t *testing.T) {
	svc, db := newChatbotService(t)

	// 8 篇文章，上下文只取最新 5 篇
	for i := 0; i < 8; i++ {
		article := model.Article{
			Title:         "Article " + string(rune('A'+i)),
			Content:       "content",
			PublishedDate: time.Now().Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(&article).Error)
	}
	// 4 个未来活动，上下文只取最近 3 个
	for i := 0; i < 4; i++ {
		start := time.Now().UTC().Add(time.Duration(i+1) * 24 * time.Hour)
		event := model.PromotionalEvent{EventName: "Event " + string(rune('A'+i)), EventStartDate: &start, IsUpcoming: true}
		require.NoError(t, db.Create(&event).Error)
	}

	contextText := svc.BuildContext()
	assert.Equal(t, 5, strings.Count(contextText, "Article: "))
	assert.Equal(t, 3, strings.Count(contextText, "Event: "))

	// 最新的文章包含在内，最老的被截掉
	assert.Contains(t, contextText, "Article H")
	assert.NotContains(t, contextText, "Article A")
}

func TestBuildContext_SnippetTruncation(t *testing.T) {
	svc, db := newChatbotService(t)

	long := strings.Repeat("x", 500)
	require.NoError(t, db.Create(&model.Article{Title: "Long", Content: long}).Error)

	contextText := svc.BuildContext()
	assert.Contains(t, contextText, strings.Repeat("x", 200))
	assert.NotContains(t, contextText, strings.Repeat("x", 201))
}

func TestBuildContext_SkipsPastEvents(t *testing.T) {
	svc, db := newChatbotService(t)

	past := time.Now().UTC().Add(-48 * time.Hour)
	require.NoError(t, db.Create(&model.PromotionalEvent{EventName: "Old Expo", EventStartDate: &past, IsUpcoming: true}).Error)

	assert.NotContains(t, svc.BuildContext(), "Old Expo")
}

func TestBuildSystemMessage_WrapsContext(t *testing.T) {
	svc, db := newChatbotService(t)
	require.NoError(t, db.Create(&model.Article{Title: "Launch", Content: "news"}).Error)

	msg := svc.BuildSystemMessage()
	assert.True(t, strings.HasPrefix(msg, svc.SystemPrompt()))
	assert.Contains(t, msg, contextRefStart)
	assert.Contains(t, msg, contextRefEnd)
	assert.Contains(t, msg, "Article: Launch")
}
