package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"ai-solution-go/internal/middleware"
	"ai-solution-go/internal/model"
	"ai-solution-go/internal/repository"
	"ai-solution-go/internal/service"
	"ai-solution-go/pkg/hash"
	"ai-solution-go/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "handler-test-secret"

// fakeBlacklist 是 TokenBlacklist 的内存实现，测试中替代 Redis。
type fakeBlacklist struct {
	mu      sync.Mutex
	entries map[string]bool
}

func (f *fakeBlacklist) Add(_ context.Context, tokenString string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[tokenString] = true
	return nil
}

func (f *fakeBlacklist) Contains(_ context.Context, tokenString string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries[tokenString], nil
}

// fakeLLM 是 llm.Client 的测试替身。
type fakeLLM struct {
	answer string
	err    error
}

func (f *fakeLLM) Generate(_ context.Context, _, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

// testEnv 聚合一次端到端测试需要的路由引擎和底层句柄。
type testEnv struct {
	router     *gin.Engine
	db         *gorm.DB
	llm        *fakeLLM
	jwtManager *token.JWTManager
}

// newTestEnv 用内存数据库和测试替身装配与生产一致的路由表。
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.ContactInquiry{},
		&model.Solution{},
		&model.CustomerFeedback{},
		&model.PromotionalEvent{},
		&model.Article{},
		&model.ChatMessage{},
	))

	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	solutionRepo := repository.NewSolutionRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	eventRepo := repository.NewEventRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	blacklist := &fakeBlacklist{entries: make(map[string]bool)}

	jwtManager := token.NewJWTManager(testSecret, 24)
	llmClient := &fakeLLM{answer: "stubbed answer"}
	profile := &service.CompanyProfile{
		Name:     "AI Solution",
		About:    "We build AI products.",
		Products: []string{"AI-Solve"},
	}

	userService := service.NewUserService(userRepo, blacklist, jwtManager)
	adminService := service.NewAdminService(userRepo)
	contactService := service.NewContactService(contactRepo)
	solutionService := service.NewSolutionService(solutionRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo)
	eventService := service.NewEventService(eventRepo)
	articleService := service.NewArticleService(articleRepo)
	dashboardService := service.NewDashboardService(userRepo, contactRepo, articleRepo, eventRepo)
	chatbotService := service.NewChatbotService(profile, articleRepo, eventRepo)
	chatService := service.NewChatService(db, chatbotService, llmClient)

	authed := middleware.AuthMiddleware(jwtManager, userService)
	adminOnly := middleware.AdminAuthMiddleware()

	r := gin.New()
	api := r.Group("/api")
	{
		authHandler := NewAuthHandler(userService)
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authed, authHandler.Logout)

		adminHandler := NewAdminHandler(adminService, userService)
		users := api.Group("/users", authed, adminOnly)
		{
			users.GET("", adminHandler.ListUsers)
			users.POST("", adminHandler.CreateUser)
			users.GET("/:id", adminHandler.GetUser)
			users.PUT("/:id", adminHandler.UpdateUser)
			users.DELETE("/:id", adminHandler.DeleteUser)
			users.PUT("/:id/role", adminHandler.UpdateUserRole)
		}

		contactHandler := NewContactHandler(contactService)
		api.POST("/contacts", contactHandler.Create)
		contacts := api.Group("/contacts", authed, adminOnly)
		{
			contacts.GET("", contactHandler.List)
			contacts.GET("/:id", contactHandler.Get)
			contacts.PUT("/:id", contactHandler.Update)
			contacts.DELETE("/:id", contactHandler.Delete)
		}

		solutionHandler := NewSolutionHandler(solutionService)
		api.GET("/solutions", solutionHandler.List)
		api.GET("/solutions/:id", solutionHandler.Get)
		solutions := api.Group("/solutions", authed, adminOnly)
		{
			solutions.POST("", solutionHandler.Create)
			solutions.PUT("/:id", solutionHandler.Update)
			solutions.DELETE("/:id", solutionHandler.Delete)
		}

		feedbackHandler := NewFeedbackHandler(feedbackService)
		feedbacks := api.Group("/feedbacks", authed)
		{
			feedbacks.POST("", feedbackHandler.Create)
			feedbacks.GET("", feedbackHandler.List)
			feedbacks.GET("/average", feedbackHandler.AverageRating)
			feedbacks.GET("/:id", feedbackHandler.Get)
			feedbacks.PUT("/:id", adminOnly, feedbackHandler.Update)
			feedbacks.DELETE("/:id", adminOnly, feedbackHandler.Delete)
		}

		eventHandler := NewEventHandler(eventService)
		api.GET("/events", eventHandler.List)
		api.GET("/events/:id", eventHandler.Get)
		events := api.Group("/events", authed, adminOnly)
		{
			events.POST("", eventHandler.Create)
			events.PUT("/:id", eventHandler.Update)
			events.DELETE("/:id", eventHandler.Delete)
		}

		articleHandler := NewArticleHandler(articleService)
		api.GET("/articles", articleHandler.List)
		api.GET("/articles/:id", articleHandler.Get)
		articles := api.Group("/articles", authed, adminOnly)
		{
			articles.POST("", articleHandler.Create)
			articles.PUT("/:id", articleHandler.Update)
			articles.DELETE("/:id", articleHandler.Delete)
		}

		dashboardHandler := NewDashboardHandler(dashboardService)
		api.GET("/dashboard", authed, adminOnly, dashboardHandler.Overview)
		api.GET("/inquiries/status", authed, adminOnly, dashboardHandler.InquiriesByStatus)
		api.GET("/inquiries/timeline", authed, adminOnly, dashboardHandler.InquiriesTimeline)

		api.POST("/chat", authed, NewChatHandler(chatService).Chat)
	}

	return &testEnv{router: r, db: db, llm: llmClient, jwtManager: jwtManager}
}

// createUser 直接向数据库写入一个用户并返回可用的会话 token。
func (e *testEnv) createUser(t *testing.T, username, role string) (*model.User, string) {
	t.Helper()

	hashed, err := hash.HashPassword("secret123")
	require.NoError(t, err)
	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hashed,
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, e.db.Create(user).Error)

	tokenString, err := e.jwtManager.GenerateToken(user.ID, user.Username, user.Role)
	require.NoError(t, err)
	return user, tokenString
}

// doJSON 发送一个 JSON 请求并返回响应记录器。token 为空表示匿名请求。
func (e *testEnv) doJSON(t *testing.T, method, path, tokenString string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if tokenString != "" {
		req.Header.Set("Authorization", "Bearer "+tokenString)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// newCookieRequest 构造一个只通过 session cookie 携带凭证的请求。
func (e *testEnv) newCookieRequest(t *testing.T, method, path, tokenString string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: tokenString})
	return req
}

func (e *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decodeBody 将响应体解析为 map。
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
