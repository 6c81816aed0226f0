package main

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/config"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/consumer"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/modules/mddrilldown"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/modules/mdsnapshot"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/repo/rpfeed"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/services/svproblem"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/infra/mq/lmstfy"
	redisinfra "github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/infra/persistence/redis"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/pkg/logger"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/server/handlers/problem"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/server/routers"
)

// App 组装完成的应用
type App struct {
	Engine            *gin.Engine
	ProblemService    *svproblem.ProblemService
	FeedEventConsumer *consumer.FeedEventConsumer
	Logger            logger.Logger
}

// InitializeApp 按依赖顺序组装应用：基础设施 → 仓储 → 快照中心 → 服务 → 消费者 → 路由
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	log, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger failed: %w", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.MySQL.DSN), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("connect mysql failed: %w", err)
	}

	pubsub, err := redisinfra.NewPubSubClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis failed: %w", err)
	}

	lmstfyClient, err := lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Port, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token)
	if err != nil {
		return nil, nil, fmt.Errorf("connect lmstfy failed: %w", err)
	}

	feedRepo := rpfeed.NewFeedRepository(db)
	hub := mdsnapshot.NewHub(feedRepo, cfg.Plan.VersionID, log)

	defaults := mddrilldown.Defaults{MachineCode: cfg.Plan.DefaultMachineCode}
	problemService := svproblem.NewProblemService(hub, pubsub, cfg.Plan.VersionID, defaults, log)

	feedEventConsumer := consumer.NewFeedEventConsumer(
		lmstfyClient,
		problemService,
		&consumer.Config{
			QueueName:    cfg.Lmstfy.FeedEventQueue,
			Timeout:      time.Duration(cfg.Consumer.Timeout) * time.Second,
			TTR:          time.Duration(cfg.Consumer.TTR) * time.Second,
			PollInterval: cfg.Consumer.PollInterval,
		},
		log,
	)

	problemHandler := problem.NewProblemHandler(problemService, log)
	engine := routers.SetupRoutes(problemHandler, log)

	cleanup := func() {
		_ = pubsub.Close()
		_ = log.Sync()
	}

	return &App{
		Engine:            engine,
		ProblemService:    problemService,
		FeedEventConsumer: feedEventConsumer,
		Logger:            log,
	}, cleanup, nil
}
