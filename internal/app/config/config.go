package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Lmstfy   LmstfyConfig   `mapstructure:"lmstfy"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
	Plan     PlanConfig     `mapstructure:"plan"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// MySQLConfig MySQL 配置
type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LmstfyConfig Lmstfy 配置
type LmstfyConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Namespace      string `mapstructure:"namespace"`
	Token          string `mapstructure:"token"`
	FeedEventQueue string `mapstructure:"feed_event_queue"`
}

// ConsumerConfig feed 事件消费配置
type ConsumerConfig struct {
	Timeout      int           `mapstructure:"timeout"`       // 拉取消息超时（秒）
	TTR          int           `mapstructure:"ttr"`           // Time-To-Run（秒）
	PollInterval time.Duration `mapstructure:"poll_interval"` // 出错后的轮询间隔
}

// PlanConfig 排程计划上下文
// 激活版本号与偏好机组由部署侧显式注入，服务内不读任何全局状态
type PlanConfig struct {
	VersionID          string `mapstructure:"version_id"`
	DefaultMachineCode string `mapstructure:"default_machine_code"`
}

// Load 从配置文件加载配置
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	// 兼容性处理：如果 server.port 为空，使用默认值
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}

	return &cfg, nil
}

// LoadDefault 加载默认配置文件路径
func LoadDefault() (*Config, error) {
	return Load("config/config.yaml")
}

// Validate 验证配置完整性
func (c *Config) Validate() error {
	if c.MySQL.DSN == "" {
		return fmt.Errorf("mysql dsn is required")
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("redis addr is required")
	}
	if c.Lmstfy.Host == "" {
		return fmt.Errorf("lmstfy host is required")
	}
	if c.Lmstfy.FeedEventQueue == "" {
		return fmt.Errorf("lmstfy feed_event_queue is required")
	}
	if c.Plan.VersionID == "" {
		return fmt.Errorf("plan version_id is required")
	}
	return nil
}

// GetServerPort 获取服务端口
func (c *Config) GetServerPort() string {
	if c.Server.Port != "" {
		return c.Server.Port
	}
	return "8080"
}
