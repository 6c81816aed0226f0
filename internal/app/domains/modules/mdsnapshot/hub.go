package mdsnapshot

import (
	"context"
	"sync"
	"time"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/repo/rpfeed"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/pkg/errorx"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/pkg/logger"
)

// Hub 快照中心：持有全部 feed 的当前快照集合
// 每个 feed 独立刷新、独立失败；同一 feed 的并发刷新按
// last-write-wins 仲裁（旧的抓取结果不会覆盖新的）
type Hub struct {
	mu        sync.RWMutex
	repo      rpfeed.FeedRepository
	versionID string
	set       Set
	started   map[FeedKind]int64 // 每个 feed 最近一次发起抓取的令牌
	applied   map[FeedKind]int64 // 已应用结果的令牌
	onChange  func(Set)
	logger    logger.Logger
}

// NewHub 创建快照中心，所有 feed 初始为 LOADING 态
func NewHub(repo rpfeed.FeedRepository, versionID string, log logger.Logger) *Hub {
	h := &Hub{
		repo:      repo,
		versionID: versionID,
		started:   make(map[FeedKind]int64, 7),
		applied:   make(map[FeedKind]int64, 7),
		logger:    log,
	}
	h.set.DayRisk.State = StateLoading
	h.set.Bottleneck.State = StateLoading
	h.set.Orders.State = StateLoading
	h.set.ColdStock.State = StateLoading
	h.set.Roll.State = StateLoading
	h.set.Capacity.State = StateLoading
	h.set.KPI.State = StateLoading
	return h
}

// SetOnChange 注册快照变更回调（在持锁之外调用）
func (h *Hub) SetOnChange(fn func(Set)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onChange = fn
}

// Current 返回当前快照集合的副本
func (h *Hub) Current() Set {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.set
}

// Refresh 同步刷新单个 feed
// 抓取失败只会把该 feed 置为 FAILED，其余 feed 不受影响
func (h *Hub) Refresh(ctx context.Context, kind FeedKind) error {
	token := h.begin(kind)

	var fetchErr error
	now := time.Now()

	switch kind {
	case FeedDayRisk:
		data, err := h.repo.ListDaySummaries(ctx, h.versionID)
		fetchErr = h.apply(kind, token, func(s *Set) {
			s.DayRisk = resolve(s.DayRisk, data, err, now)
		}, err)
	case FeedBottleneck:
		data, err := h.repo.ListBottleneckPoints(ctx, h.versionID)
		fetchErr = h.apply(kind, token, func(s *Set) {
			s.Bottleneck = resolve(s.Bottleneck, data, err, now)
		}, err)
	case FeedOrders:
		data, err := h.repo.ListOrderFailures(ctx, h.versionID)
		fetchErr = h.apply(kind, token, func(s *Set) {
			s.Orders = resolve(s.Orders, data, err, now)
		}, err)
	case FeedColdStock:
		data, err := h.repo.GetColdStock(ctx, h.versionID)
		fetchErr = h.apply(kind, token, func(s *Set) {
			s.ColdStock = resolve(s.ColdStock, data, err, now)
		}, err)
	case FeedRoll:
		data, err := h.repo.GetRollAlerts(ctx, h.versionID)
		fetchErr = h.apply(kind, token, func(s *Set) {
			s.Roll = resolve(s.Roll, data, err, now)
		}, err)
	case FeedCapacityOpportunity:
		data, err := h.repo.ListCapacityOpportunities(ctx, h.versionID)
		fetchErr = h.apply(kind, token, func(s *Set) {
			s.Capacity = resolve(s.Capacity, data, err, now)
		}, err)
	case FeedKPI:
		data, err := h.repo.GetGlobalKPI(ctx, h.versionID)
		fetchErr = h.apply(kind, token, func(s *Set) {
			s.KPI = resolve(s.KPI, data, err, now)
		}, err)
	default:
		return errorx.ErrUnknownFeed
	}

	if fetchErr != nil {
		h.logger.Warnf(ctx, "[Hub] refresh feed failed: kind=%s, error=%v", kind, fetchErr)
	}
	return fetchErr
}

// RefreshAll 并发刷新全部 feed，等待全部完成
// 各 feed 之间没有顺序依赖，单个失败不会中断其余刷新
func (h *Hub) RefreshAll(ctx context.Context) {
	var wg sync.WaitGroup
	for _, kind := range AllKinds() {
		k := kind
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = h.Refresh(ctx, k)
		}()
	}
	wg.Wait()
}

// begin 登记一次抓取，返回仲裁令牌
func (h *Hub) begin(kind FeedKind) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started[kind]++
	return h.started[kind]
}

// apply 应用抓取结果；过期令牌（已有更新的结果落盘）直接丢弃
func (h *Hub) apply(kind FeedKind, token int64, mutate func(*Set), fetchErr error) error {
	h.mu.Lock()

	if token <= h.applied[kind] {
		h.mu.Unlock()
		return fetchErr
	}
	h.applied[kind] = token

	mutate(&h.set)
	h.set.Revision++

	snapshot := h.set
	fn := h.onChange
	h.mu.Unlock()

	if fn != nil {
		fn(snapshot)
	}
	return fetchErr
}

// resolve 根据抓取结果生成新快照
// 失败时保留旧数据但置为 FAILED，分类器只认 READY 态
func resolve[T any](prev Snapshot[T], data T, err error, now time.Time) Snapshot[T] {
	if err != nil {
		return Snapshot[T]{
			State:     StateFailed,
			Err:       err,
			Data:      prev.Data,
			UpdatedAt: now,
		}
	}
	return Snapshot[T]{
		State:     StateReady,
		Data:      data,
		UpdatedAt: now,
	}
}
