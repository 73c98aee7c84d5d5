package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/woyaochigaga/SQL-server/internal/infrastructure/config"
)

// InterfaceRedisService 定义 Redis 缓存服务接口
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	Ping() error
}

// RedisService 处理 Redis 缓存操作
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService 创建一个新的 Redis 服务
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Set 以 JSON 形式写入缓存并设置过期时间
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get 读取缓存并反序列化到 dest；键不存在时返回 redis.Nil
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Delete 删除缓存键
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// Ping 检查 Redis 连接是否可用
func (s *RedisService) Ping() error {
	return s.Client.Ping(s.Ctx).Err()
}
