package lmstfy

import (
	"fmt"
	"time"

	"github.com/bitleak/lmstfy/client"
)

// Client Lmstfy 客户端封装
type Client struct {
	cli       *client.LmstfyClient
	namespace string
}

// Message 队列消息结构
type Message struct {
	JobID string
	Queue string
	Data  []byte
}

// NewClient 创建 Lmstfy 客户端
func NewClient(host string, port int, namespace string, token string) (*Client, error) {
	cli := client.NewLmstfyClient(host, port, namespace, token)
	return &Client{
		cli:       cli,
		namespace: namespace,
	}, nil
}

// Consume 消费消息（阻塞直到拉取到消息或超时；超时返回 nil）
func (c *Client) Consume(queue string, timeout time.Duration, ttr time.Duration) (*Message, error) {
	timeoutSec := uint32(timeout.Seconds())
	ttrSec := uint32(ttr.Seconds())

	job, err := c.cli.Consume(queue, timeoutSec, ttrSec)
	if err != nil {
		return nil, fmt.Errorf("lmstfy consume failed: %w", err)
	}

	// 超时未拉到消息
	if job == nil {
		return nil, nil
	}

	return &Message{
		JobID: job.ID,
		Queue: job.Queue,
		Data:  job.Data,
	}, nil
}

// Ack 确认消息已处理
func (c *Client) Ack(queue string, jobID string) error {
	if err := c.cli.Ack(queue, jobID); err != nil {
		return fmt.Errorf("lmstfy ack failed: %w", err)
	}
	return nil
}

// Publish 发布消息
func (c *Client) Publish(queue string, data []byte, ttl, delay uint32) error {
	_, err := c.cli.Publish(queue, data, ttl, 3, delay)
	if err != nil {
		return fmt.Errorf("lmstfy publish failed: %w", err)
	}
	return nil
}
