package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"ai-solution-go/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 创建一个内存 sqlite 数据库并迁移全部数据表。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 内存数据库随连接销毁，限制连接池为单连接
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
	return db
}

// fakeBlacklist 是 TokenBlacklist 的内存实现，测试中替代 Redis。
type fakeBlacklist struct {
	mu      sync.Mutex
	entries map[string]bool
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{entries: make(map[string]bool)}
}

func (f *fakeBlacklist) Add(_ context.Context, token string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[token] = true
	return nil
}

func (f *fakeBlacklist) Contains(_ context.Context, token string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries[token], nil
}
