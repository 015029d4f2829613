package repository

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenBlacklist 定义了已注销会话凭证的黑名单操作。
// 登出时 token 进入黑名单，并以其剩余有效期作为过期时间。
type TokenBlacklist interface {
	Add(ctx context.Context, token string, expiration time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
}

type redisTokenBlacklist struct {
	redisClient *redis.Client
}

// NewTokenBlacklist 创建一个基于 Redis 的 TokenBlacklist 实例。
func NewTokenBlacklist(redisClient *redis.Client) TokenBlacklist {
	return &redisTokenBlacklist{redisClient: redisClient}
}

// Add 将 token 存入黑名单，值为 "true"，并设置过期时间。
func (b *redisTokenBlacklist) Add(ctx context.Context, token string, expiration time.Duration) error {
	if expiration <= 0 {
		// token 已自然过期，无需入黑名单
		return nil
	}
	return b.redisClient.Set(ctx, "blacklist:"+token, "true", expiration).Err()
}

// Contains 检查 token 是否在黑名单中。
func (b *redisTokenBlacklist) Contains(ctx context.Context, token string) (bool, error) {
	err := b.redisClient.Get(ctx, "blacklist:"+token).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
