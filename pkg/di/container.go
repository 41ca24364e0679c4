package di

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/JorgeJ97/task-management-backend/application/serviceimpl"
	"github.com/JorgeJ97/task-management-backend/domain/ports"
	"github.com/JorgeJ97/task-management-backend/domain/repositories"
	"github.com/JorgeJ97/task-management-backend/domain/services"
	"github.com/JorgeJ97/task-management-backend/infrastructure/messaging"
	"github.com/JorgeJ97/task-management-backend/infrastructure/postgres"
	redispkg "github.com/JorgeJ97/task-management-backend/infrastructure/redis"
	"github.com/JorgeJ97/task-management-backend/interfaces/api/handlers"
	"github.com/JorgeJ97/task-management-backend/pkg/config"
	"github.com/JorgeJ97/task-management-backend/pkg/logger"
	"github.com/JorgeJ97/task-management-backend/pkg/metrics"
	"github.com/JorgeJ97/task-management-backend/pkg/utils"
)

const rateLimitKeyPrefix = "ratelimit"

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB           *gorm.DB
	RedisStorage *redispkg.Storage // rate limiter storage (optional)
	TaskEvents   ports.TaskEventPublisher
	Metrics      *metrics.Metrics

	// Repositories
	UserRepository repositories.UserRepository
	TaskRepository repositories.TaskRepository

	// Services
	UserService services.UserService
	TaskService services.TaskService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(c.Config.Database)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis ไม่บังคับ - ถ้าต่อไม่ได้ rate limiter จะใช้ memory แทน
	if c.Config.Redis.URL != "" {
		storage, err := redispkg.NewStorage(c.Config.Redis, rateLimitKeyPrefix)
		if err != nil {
			logger.Warn("Redis unavailable, rate limiter falls back to memory", "error", err)
		} else {
			c.RedisStorage = storage
			logger.Info("Redis storage initialized")
		}
	}

	events, err := c.newTaskEventPublisher()
	if err != nil {
		return err
	}
	c.TaskEvents = events

	c.Metrics = metrics.New(metricsNamespace(c.Config.App.Name))

	return nil
}

// newTaskEventPublisher สร้าง publisher ตาม EVENTS_DRIVER
func (c *Container) newTaskEventPublisher() (ports.TaskEventPublisher, error) {
	ev := c.Config.Events
	switch ev.Driver {
	case config.EventsDriverNATS:
		p, err := messaging.NewNATSTaskPublisher(ev.NATSURL, ev.NATSSubjectPrefix)
		if err != nil {
			return nil, fmt.Errorf("task events: %w", err)
		}
		logger.Info("Task events via NATS", "url", ev.NATSURL, "prefix", ev.NATSSubjectPrefix)
		return p, nil
	case config.EventsDriverKafka:
		brokers := messaging.ParseBrokers(ev.KafkaBrokers)
		logger.Info("Task events via Kafka", "brokers", brokers, "topic", ev.KafkaTopic)
		return messaging.NewKafkaTaskPublisher(brokers, ev.KafkaTopic), nil
	default:
		logger.Info("Task events disabled")
		return messaging.NewNoopTaskPublisher(), nil
	}
}

func (c *Container) initRepositories() error {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.TokenOptions())
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.TaskEvents)
	logger.Info("Services initialized")
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.TaskEvents != nil {
		if err := c.TaskEvents.Close(); err != nil {
			logger.Warn("Failed to close task event publisher", "error", err)
		} else {
			logger.Info("Task event publisher closed")
		}
	}

	if c.RedisStorage != nil {
		if err := c.RedisStorage.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	if c.DB != nil {
		if err := postgres.Close(c.DB); err != nil {
			logger.Warn("Failed to close database connection", "error", err)
		} else {
			logger.Info("Database connection closed")
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// TokenOptions - ค่าที่ใช้ทั้งตอนออก token และตอนตรวจ
func (c *Container) TokenOptions() utils.TokenOptions {
	return utils.TokenOptions{
		Secret:    c.Config.JWT.Secret,
		Issuer:    c.Config.JWT.Issuer,
		Audience:  c.Config.JWT.Audience,
		ExpiresIn: c.Config.JWT.ExpiresIn,
	}
}

func (c *Container) GetHandlerServices() *handlers.Services {
	checks := map[string]handlers.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := c.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if c.RedisStorage != nil {
		checks["redis"] = c.RedisStorage.Ping
	}

	return &handlers.Services{
		UserService: c.UserService,
		TaskService: c.TaskService,
		Checks:      checks,
	}
}
