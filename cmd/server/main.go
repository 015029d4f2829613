// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-solution-go/internal/config"
	"ai-solution-go/internal/handler"
	"ai-solution-go/internal/middleware"
	"ai-solution-go/internal/model"
	"ai-solution-go/internal/repository"
	"ai-solution-go/internal/service"
	"ai-solution-go/pkg/database"
	"ai-solution-go/pkg/llm"
	"ai-solution-go/pkg/log"
	"ai-solution-go/pkg/storage"
	"ai-solution-go/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. 加载 .env（若存在）并初始化配置
	_ = godotenv.Load()
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync() // 确保在程序退出时刷新所有缓冲的日志条目
	log.Info("日志记录器初始化成功")

	// 3. 初始化数据库、Redis 和对象存储
	database.InitMySQL(cfg.Database.MySQL.DSN)
	database.InitRedis(cfg.Database.Redis.Addr, cfg.Database.Redis.Password, cfg.Database.Redis.DB)
	storage.InitMinIO(cfg.MinIO)

	// 4. 自动迁移数据表
	if err := database.DB.AutoMigrate(
		&model.User{},
		&model.ContactInquiry{},
		&model.Solution{},
		&model.CustomerFeedback{},
		&model.PromotionalEvent{},
		&model.Article{},
		&model.ChatMessage{},
	); err != nil {
		log.Fatalf("数据表迁移失败: %v", err)
	}

	// 5. 初始化 Repository
	userRepo := repository.NewUserRepository(database.DB)
	contactRepo := repository.NewContactRepository(database.DB)
	solutionRepo := repository.NewSolutionRepository(database.DB)
	feedbackRepo := repository.NewFeedbackRepository(database.DB)
	eventRepo := repository.NewEventRepository(database.DB)
	articleRepo := repository.NewArticleRepository(database.DB)
	blacklist := repository.NewTokenBlacklist(database.RDB)

	// 6. 初始化 Service (依赖注入)
	jwtManager := token.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpireHours)
	llmClient := llm.NewClient(cfg.Gemini)
	profile, err := service.LoadCompanyProfile(cfg.Chatbot.ProfilePath)
	if err != nil {
		log.Fatalf("公司资料加载失败: %v", err)
	}

	userService := service.NewUserService(userRepo, blacklist, jwtManager)
	adminService := service.NewAdminService(userRepo)
	contactService := service.NewContactService(contactRepo)
	solutionService := service.NewSolutionService(solutionRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo)
	eventService := service.NewEventService(eventRepo)
	articleService := service.NewArticleService(articleRepo)
	dashboardService := service.NewDashboardService(userRepo, contactRepo, articleRepo, eventRepo)
	// 聊天机器人服务在进程启动时构造一次，避免首个请求并发初始化的竞态
	chatbotService := service.NewChatbotService(profile, articleRepo, eventRepo)
	chatService := service.NewChatService(database.DB, chatbotService, llmClient)
	uploadService := service.NewUploadService(cfg.MinIO)

	// 7. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery(), middleware.CORS(cfg.CORS))

	authed := middleware.AuthMiddleware(jwtManager, userService)
	adminOnly := middleware.AdminAuthMiddleware()

	// 8. 注册路由
	api := r.Group("/api")
	{
		authHandler := handler.NewAuthHandler(userService)
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authed, authHandler.Logout)

		// 用户管理，仅限管理员
		adminHandler := handler.NewAdminHandler(adminService, userService)
		users := api.Group("/users", authed, adminOnly)
		{
			users.GET("", adminHandler.ListUsers)
			users.POST("", adminHandler.CreateUser)
			users.GET("/:id", adminHandler.GetUser)
			users.PUT("/:id", adminHandler.UpdateUser)
			users.DELETE("/:id", adminHandler.DeleteUser)
			users.PUT("/:id/role", adminHandler.UpdateUserRole)
		}

		// 联系咨询：提交开放给访客，管理操作仅限管理员
		contactHandler := handler.NewContactHandler(contactService)
		api.POST("/contacts", contactHandler.Create)
		contacts := api.Group("/contacts", authed, adminOnly)
		{
			contacts.GET("", contactHandler.List)
			contacts.GET("/:id", contactHandler.Get)
			contacts.PUT("/:id", contactHandler.Update)
			contacts.DELETE("/:id", contactHandler.Delete)
		}

		// 解决方案目录：读取开放，写入仅限管理员
		solutionHandler := handler.NewSolutionHandler(solutionService)
		api.GET("/solutions", solutionHandler.List)
		api.GET("/solutions/:id", solutionHandler.Get)
		solutions := api.Group("/solutions", authed, adminOnly)
		{
			solutions.POST("", solutionHandler.Create)
			solutions.PUT("/:id", solutionHandler.Update)
			solutions.DELETE("/:id", solutionHandler.Delete)
		}

		// 客户反馈：登录用户可提交和查看，修改删除仅限管理员
		feedbackHandler := handler.NewFeedbackHandler(feedbackService)
		feedbacks := api.Group("/feedbacks", authed)
		{
			feedbacks.POST("", feedbackHandler.Create)
			feedbacks.GET("", feedbackHandler.List)
			feedbacks.GET("/average", feedbackHandler.AverageRating)
			feedbacks.GET("/:id", feedbackHandler.Get)
			feedbacks.PUT("/:id", adminOnly, feedbackHandler.Update)
			feedbacks.DELETE("/:id", adminOnly, feedbackHandler.Delete)
		}

		// 促销活动：读取开放，写入仅限管理员
		eventHandler := handler.NewEventHandler(eventService)
		api.GET("/events", eventHandler.List)
		api.GET("/events/:id", eventHandler.Get)
		events := api.Group("/events", authed, adminOnly)
		{
			events.POST("", eventHandler.Create)
			events.PUT("/:id", eventHandler.Update)
			events.DELETE("/:id", eventHandler.Delete)
		}

		// 文章：读取开放，写入仅限管理员
		articleHandler := handler.NewArticleHandler(articleService)
		api.GET("/articles", articleHandler.List)
		api.GET("/articles/:id", articleHandler.Get)
		articles := api.Group("/articles", authed, adminOnly)
		{
			articles.POST("", articleHandler.Create)
			articles.PUT("/:id", articleHandler.Update)
			articles.DELETE("/:id", articleHandler.Delete)
		}

		// 管理后台聚合统计，仅限管理员
		dashboardHandler := handler.NewDashboardHandler(dashboardService)
		api.GET("/dashboard", authed, adminOnly, dashboardHandler.Overview)
		api.GET("/inquiries/status", authed, adminOnly, dashboardHandler.InquiriesByStatus)
		api.GET("/inquiries/timeline", authed, adminOnly, dashboardHandler.InquiriesTimeline)

		// 聊天机器人，需要登录
		api.POST("/chat", authed, handler.NewChatHandler(chatService).Chat)

		// 图片上传，仅限管理员
		api.POST("/upload/image", authed, adminOnly, handler.NewUploadHandler(uploadService).UploadImage)
	}

	// 9. 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP 服务器关闭失败: %v", err)
	}

	log.Info("服务已退出")
}
