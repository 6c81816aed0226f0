package rpfeed

import (
	"context"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etfeed"
)

// FeedRepository 决策 feed 仓储接口（只定义，不实现）
// 七个读取方法互相独立：每个 feed 可单独刷新、单独失败，
// 任何一个方法出错不影响其余 feed 的读取
type FeedRepository interface {
	// ListDaySummaries 读取单日风险汇总（按计划日升序）
	ListDaySummaries(ctx context.Context, versionID string) ([]etfeed.DaySummary, error)

	// ListBottleneckPoints 读取机组瓶颈点
	ListBottleneckPoints(ctx context.Context, versionID string) ([]etfeed.BottleneckPoint, error)

	// ListOrderFailures 读取订单/物料失败明细
	ListOrderFailures(ctx context.Context, versionID string) ([]etfeed.OrderFailure, error)

	// GetColdStock 读取冷坯库存分组及汇总
	GetColdStock(ctx context.Context, versionID string) (*etfeed.ColdStockData, error)

	// GetRollAlerts 读取轧辊周期告警及汇总
	GetRollAlerts(ctx context.Context, versionID string) (*etfeed.RollData, error)

	// ListCapacityOpportunities 读取产能机会点
	ListCapacityOpportunities(ctx context.Context, versionID string) ([]etfeed.CapacityOpportunity, error)

	// GetGlobalKPI 读取全局聚合指标（每版本一行，缺失返回 nil）
	GetGlobalKPI(ctx context.Context, versionID string) (*etfeed.GlobalKPI, error)
}
