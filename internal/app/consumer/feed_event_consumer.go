package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/atomic"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/services/svproblem"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/infra/mq/lmstfy"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/pkg/logger"
)

// FeedEvent 决策引擎发布的 feed 刷新事件
type FeedEvent struct {
	RequestID string `json:"request_id"`
	Feed      string `json:"feed"`
	VersionID string `json:"version_id"`
}

// FeedEventConsumer feed 事件消费者
// 职责：
// 1. 从 lmstfy 队列消费决策引擎的 feed 刷新事件
// 2. 触发对应 feed 的单独刷新（不牵连其他 feed）
// 3. 确认消息（ACK）
type FeedEventConsumer struct {
	lmstfyClient   *lmstfy.Client
	problemService *svproblem.ProblemService
	queueName      string
	logger         logger.Logger
	closing        *atomic.Bool

	// 消费配置
	timeout      time.Duration // 拉取消息超时
	ttr          time.Duration // Time-To-Run
	pollInterval time.Duration
}

// Config 消费者配置
type Config struct {
	QueueName    string
	Timeout      time.Duration
	TTR          time.Duration
	PollInterval time.Duration
}

// NewFeedEventConsumer 创建 feed 事件消费者实例
func NewFeedEventConsumer(
	lmstfyClient *lmstfy.Client,
	problemService *svproblem.ProblemService,
	config *Config,
	log logger.Logger,
) *FeedEventConsumer {
	return &FeedEventConsumer{
		lmstfyClient:   lmstfyClient,
		problemService: problemService,
		queueName:      config.QueueName,
		timeout:        config.Timeout,
		ttr:            config.TTR,
		pollInterval:   config.PollInterval,
		closing:        atomic.NewBool(false),
		logger:         log,
	}
}

// Start 启动消费循环
func (c *FeedEventConsumer) Start(ctx context.Context) error {
	c.logger.Infof(ctx, "[FeedEventConsumer] started: queue=%s, timeout=%s, ttr=%s",
		c.queueName, c.timeout, c.ttr)

	for {
		select {
		case <-ctx.Done():
			c.closing.Store(true)
			c.logger.Infof(ctx, "[FeedEventConsumer] stopped")
			return ctx.Err()
		default:
			if err := c.consumeOne(ctx); err != nil {
				c.logger.Errorf(ctx, "[FeedEventConsumer] consume failed: %v", err)
				time.Sleep(c.pollInterval)
			}
		}
	}
}

// consumeOne 消费一条消息
func (c *FeedEventConsumer) consumeOne(ctx context.Context) error {
	// 1. 从队列拉取消息
	msg, err := c.lmstfyClient.Consume(c.queueName, c.timeout, c.ttr)
	if err != nil {
		return fmt.Errorf("consume message failed: %w", err)
	}

	if msg == nil {
		// 没有消息，继续等待
		return nil
	}

	// 2. 解析事件
	event, err := c.parseMessage(msg.Data)
	if err != nil {
		c.logger.Errorf(ctx, "[FeedEventConsumer] parse failed: job_id=%s, error=%v", msg.JobID, err)
		// 解析失败，直接 ACK（避免死循环）
		_ = c.lmstfyClient.Ack(c.queueName, msg.JobID)
		return err
	}

	// 3. 刷新对应 feed
	eventCtx := context.WithValue(ctx, "request_id", event.RequestID)
	eventCtx = context.WithValue(eventCtx, "feed", event.Feed)

	if err := c.problemService.RefreshFeed(eventCtx, event.Feed); err != nil {
		c.logger.Errorf(eventCtx, "[FeedEventConsumer] refresh failed: job_id=%s, feed=%s, error=%v",
			msg.JobID, event.Feed, err)
		// 刷新失败，不 ACK（让 lmstfy TTR 机制重试）
		return err
	}

	// 4. 确认消息
	if err := c.lmstfyClient.Ack(c.queueName, msg.JobID); err != nil {
		c.logger.Errorf(eventCtx, "[FeedEventConsumer] ack failed: job_id=%s, error=%v", msg.JobID, err)
		return err
	}

	c.logger.Infof(eventCtx, "[FeedEventConsumer] feed refreshed: job_id=%s, feed=%s", msg.JobID, event.Feed)
	return nil
}

// parseMessage 解析消息数据
func (c *FeedEventConsumer) parseMessage(data []byte) (*FeedEvent, error) {
	var event FeedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("unmarshal feed event failed: %w", err)
	}

	// 校验必填字段
	if event.Feed == "" {
		return nil, fmt.Errorf("feed is required")
	}

	return &event, nil
}
