package main

// @title           热轧精整排程风险工作台 API
// @version         1.0
// @description     排程风险问题合成与下钻导航服务，聚合决策引擎的六路 feed 并合成风险问题列表
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/config"
)

func main() {
	// 1. 加载配置
	cfg, err := config.LoadDefault()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	// 2. 初始化应用（包含 HTTP Server 和 Consumer）
	app, cleanup, err := InitializeApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer cleanup()

	// 3. 启动前做一轮全量刷新，避免首屏长时间 LOADING
	warmupCtx, cancelWarmup := context.WithTimeout(context.Background(), 30*time.Second)
	app.ProblemService.RefreshAll(warmupCtx)
	cancelWarmup()

	// 4. 创建 HTTP Server
	addr := fmt.Sprintf(":%s", cfg.GetServerPort())
	server := &http.Server{
		Addr:    addr,
		Handler: app.Engine,
	}

	// 5. 启动 Consumer（后台 goroutine）
	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	consumerErrChan := make(chan error, 1)

	go func() {
		log.Printf("Starting feed event consumer...")
		consumerErrChan <- app.FeedEventConsumer.Start(consumerCtx)
	}()

	// 6. 启动 HTTP Server（后台 goroutine）
	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	// 7. 优雅停机处理
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Println("Received shutdown signal, gracefully shutting down...")
		gracefulShutdown(server, cancelConsumer)
	case err := <-serverErrChan:
		log.Fatalf("HTTP server error: %v", err)
	case err := <-consumerErrChan:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("Consumer error: %v", err)
		}
	}

	log.Println("Application stopped")
}

// gracefulShutdown 优雅停机
func gracefulShutdown(server *http.Server, cancelConsumer context.CancelFunc) {
	// 1. 停止 Consumer
	log.Println("Stopping consumer...")
	cancelConsumer()
	time.Sleep(1 * time.Second) // 等待消费者处理完当前消息

	// 2. 停止 HTTP Server
	log.Println("Stopping HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped gracefully")
	}

	log.Println("All services stopped gracefully")
}
