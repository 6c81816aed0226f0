package mdsnapshot

import (
	"time"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etfeed"
)

// FeedKind feed 种类（六个下钻 feed + 全局 KPI）
type FeedKind string

const (
	FeedDayRisk             FeedKind = "dayRisk"
	FeedBottleneck          FeedKind = "bottleneck"
	FeedOrders              FeedKind = "orders"
	FeedColdStock           FeedKind = "coldStock"
	FeedRoll                FeedKind = "roll"
	FeedCapacityOpportunity FeedKind = "capacityOpportunity"
	FeedKPI                 FeedKind = "kpi"
)

// AllKinds 返回全部 feed 种类（固定顺序）
func AllKinds() []FeedKind {
	return []FeedKind{
		FeedDayRisk,
		FeedBottleneck,
		FeedOrders,
		FeedColdStock,
		FeedRoll,
		FeedCapacityOpportunity,
		FeedKPI,
	}
}

// ParseFeedKind 解析 feed 种类，未知值返回 false
func ParseFeedKind(s string) (FeedKind, bool) {
	switch FeedKind(s) {
	case FeedDayRisk, FeedBottleneck, FeedOrders, FeedColdStock,
		FeedRoll, FeedCapacityOpportunity, FeedKPI:
		return FeedKind(s), true
	default:
		return "", false
	}
}

// State feed 快照三态
type State string

const (
	StateLoading State = "LOADING"
	StateReady   State = "READY"
	StateFailed  State = "FAILED"
)

// Snapshot 单个 feed 的不可变读取结果
// 仍在加载或已失败的快照对合成器等价于"该 feed 没有异常可报"
type Snapshot[T any] struct {
	State     State
	Err       error
	Data      T
	UpdatedAt time.Time
}

// Ready 是否已成功解析
func (s Snapshot[T]) Ready() bool {
	return s.State == StateReady
}

// Set 全部 feed 的当前快照集合（值语义，读取方持有副本）
// Revision 随任意一个 feed 的变化单调递增，用于合成结果的 memo
type Set struct {
	DayRisk    Snapshot[[]etfeed.DaySummary]
	Bottleneck Snapshot[[]etfeed.BottleneckPoint]
	Orders     Snapshot[[]etfeed.OrderFailure]
	ColdStock  Snapshot[*etfeed.ColdStockData]
	Roll       Snapshot[*etfeed.RollData]
	Capacity   Snapshot[[]etfeed.CapacityOpportunity]
	KPI        Snapshot[*etfeed.GlobalKPI]
	Revision   int64
}

// FeedStatus 单个 feed 的对外状态（细粒度错误/加载映射）
type FeedStatus struct {
	State     State     `json:"state"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// StatusByKind 导出每个 feed 的状态映射
func (s Set) StatusByKind() map[FeedKind]FeedStatus {
	out := make(map[FeedKind]FeedStatus, 7)
	out[FeedDayRisk] = status(s.DayRisk.State, s.DayRisk.Err, s.DayRisk.UpdatedAt)
	out[FeedBottleneck] = status(s.Bottleneck.State, s.Bottleneck.Err, s.Bottleneck.UpdatedAt)
	out[FeedOrders] = status(s.Orders.State, s.Orders.Err, s.Orders.UpdatedAt)
	out[FeedColdStock] = status(s.ColdStock.State, s.ColdStock.Err, s.ColdStock.UpdatedAt)
	out[FeedRoll] = status(s.Roll.State, s.Roll.Err, s.Roll.UpdatedAt)
	out[FeedCapacityOpportunity] = status(s.Capacity.State, s.Capacity.Err, s.Capacity.UpdatedAt)
	out[FeedKPI] = status(s.KPI.State, s.KPI.Err, s.KPI.UpdatedAt)
	return out
}

// AnyError 任意 feed 处于失败态（非阻塞重试横幅的聚合信号）
func (s Set) AnyError() bool {
	for _, st := range s.StatusByKind() {
		if st.State == StateFailed {
			return true
		}
	}
	return false
}

func status(state State, err error, at time.Time) FeedStatus {
	fs := FeedStatus{State: state, UpdatedAt: at}
	if err != nil {
		fs.Error = err.Error()
	}
	return fs
}
