package redis

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/JorgeJ97/task-management-backend/pkg/config"
	"github.com/JorgeJ97/task-management-backend/pkg/logger"
)

const opTimeout = 2 * time.Second

// Storage - Redis ที่ใช้เป็น fiber.Storage ของ rate limiter
// counter ถูกแชร์ระหว่างหลาย instance ของ API
type Storage struct {
	rdb    *redis.Client
	prefix string
}

var _ fiber.Storage = (*Storage)(nil)

// NewStorage connects and pings Redis. Keys are namespaced with prefix.
func NewStorage(cfg config.RedisConfig, prefix string) (*Storage, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.Password != "" {
		opt.Password = cfg.Password
	}
	if cfg.DB > 0 {
		opt.DB = cfg.DB
	}

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	logger.Info("Redis connected", "addr", opt.Addr, "db", opt.DB)

	return &Storage{rdb: rdb, prefix: prefix}, nil
}

func (s *Storage) key(k string) string {
	return s.prefix + k
}

// Get คืน nil, nil เมื่อไม่มี key (ตาม contract ของ fiber.Storage)
func (s *Storage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	val, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return s.rdb.Set(ctx, s.key(key), val, exp).Err()
}

func (s *Storage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return s.rdb.Del(ctx, s.key(key)).Err()
}

// Reset ลบเฉพาะ key ที่อยู่ใต้ prefix ของเรา
func (s *Storage) Reset() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_, err := s.scanAndDelete(ctx, s.prefix+"*")
	return err
}

func (s *Storage) scanAndDelete(ctx context.Context, pattern string) (int64, error) {
	var deleted int64
	var cursor uint64

	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			n, err := s.rdb.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, err
			}
			deleted += n
		}
		cursor = next
		if cursor == 0 {
			return deleted, nil
		}
	}
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *Storage) Close() error {
	return s.rdb.Close()
}
