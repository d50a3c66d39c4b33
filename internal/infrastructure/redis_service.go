package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/santiago-morfe/TaskGeniusApi/internal/config"
	"github.com/santiago-morfe/TaskGeniusApi/internal/domain/entities"
)

const profileTTL = 24 * time.Hour

// RedisService caches user profiles. A nil client means Redis is
// disabled: writes are dropped and reads always miss.
type RedisService struct {
	client *redis.Client
	log    *slog.Logger
}

// cachedProfile never carries the password hash.
type cachedProfile struct {
	Id        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewRedisService(ctx context.Context, cfg config.Redis, log *slog.Logger) *RedisService {
	log = log.With("component", "redis")
	if !cfg.Enabled() {
		log.Info("redis not configured, profile cache disabled")
		return &RedisService{log: log}
	}

	opt := &redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			log.Warn("invalid REDIS_URL, profile cache disabled", "error", err)
			return &RedisService{log: log}
		}
		opt = parsed
	}
	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, opt.DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn("redis connection failed, profile cache disabled", "addr", opt.Addr, "error", err)
		_ = client.Close()
		return &RedisService{log: log}
	}

	log.Info("connected to redis", "addr", opt.Addr)
	return NewRedisServiceWithClient(client, log)
}

func NewRedisServiceWithClient(client *redis.Client, log *slog.Logger) *RedisService {
	return &RedisService{client: client, log: log}
}

func (r *RedisService) Enabled() bool {
	return r != nil && r.client != nil
}

func profileKey(userID uint) string {
	return "profile:" + strconv.FormatUint(uint64(userID), 10)
}

func (r *RedisService) SetProfile(ctx context.Context, user *entities.User) error {
	if !r.Enabled() {
		return nil
	}
	data, err := json.Marshal(cachedProfile{
		Id:        user.Id,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
	if err != nil {
		return err
	}
	return r.client.Set(ctx, profileKey(user.Id), data, profileTTL).Err()
}

// GetProfile returns (nil, nil) on a cache miss.
func (r *RedisService) GetProfile(ctx context.Context, userID uint) (*entities.User, error) {
	if !r.Enabled() {
		return nil, nil
	}
	data, err := r.client.Get(ctx, profileKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var profile cachedProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return &entities.User{
		Id:        profile.Id,
		Name:      profile.Name,
		Email:     profile.Email,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}, nil
}

func (r *RedisService) DeleteProfile(ctx context.Context, userID uint) error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Del(ctx, profileKey(userID)).Err()
}

func (r *RedisService) Close() error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Close()
}
