package svproblem

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etproblem"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/modules/mddrilldown"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/modules/mdsnapshot"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/modules/mdsynthesis"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/infra/persistence/redis"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/pkg/errorx"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/pkg/idgen"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/pkg/logger"
)

// 修订历史保留条数（delta 对比窗口）
const historyLimit = 16

// ProblemService 风险问题服务，负责合成编排
// 职责：
// 1. 订阅快照中心变更，按 memo 重新合成并排序
// 2. 为每次合成结果盖修订号，并通过 Redis 广播（Smart Wait）
// 3. 对外提供问题列表、下钻视图、工作台导航、delta 对比
type ProblemService struct {
	hub       *mdsnapshot.Hub
	pubsub    *redis.PubSubClient
	versionID string
	defaults  mddrilldown.Defaults
	logger    logger.Logger

	mu          sync.RWMutex
	problems    []etproblem.RiskProblem
	revision    int64
	lastHubRev  int64
	history     map[int64][]etproblem.RiskProblem
	historyKeys []int64
}

// NewProblemService 创建问题服务实例并挂接快照变更回调
func NewProblemService(
	hub *mdsnapshot.Hub,
	pubsub *redis.PubSubClient,
	versionID string,
	defaults mddrilldown.Defaults,
	log logger.Logger,
) *ProblemService {
	s := &ProblemService{
		hub:       hub,
		pubsub:    pubsub,
		versionID: versionID,
		defaults:  defaults,
		logger:    log,
		history:   make(map[int64][]etproblem.RiskProblem, historyLimit),
	}
	hub.SetOnChange(s.onSnapshotChange)
	return s
}

// onSnapshotChange 快照变更回调：memo 命中则跳过，否则重新合成
// 合成是纯函数，重算总是安全的；memo 只是省去重复计算
func (s *ProblemService) onSnapshotChange(set mdsnapshot.Set) {
	s.mu.Lock()

	if set.Revision == s.lastHubRev {
		s.mu.Unlock()
		return
	}
	s.lastHubRev = set.Revision

	s.problems = mdsynthesis.Rank(mdsynthesis.Synthesize(set))
	s.revision = idgen.GenerateID()
	s.remember(s.revision, s.problems)

	revision := s.revision
	s.mu.Unlock()

	// 广播修订号，唤醒 Smart Wait 的等待方
	ctx := context.Background()
	if err := s.pubsub.Publish(ctx, s.channel(), strconv.FormatInt(revision, 10)); err != nil {
		s.logger.Warnf(ctx, "[ProblemService] publish revision failed: rev=%d, error=%v", revision, err)
	}
}

// remember 登记修订历史，超限淘汰最旧的
func (s *ProblemService) remember(revision int64, problems []etproblem.RiskProblem) {
	s.history[revision] = problems
	s.historyKeys = append(s.historyKeys, revision)
	for len(s.historyKeys) > historyLimit {
		delete(s.history, s.historyKeys[0])
		s.historyKeys = s.historyKeys[1:]
	}
}

// Problems 返回当前排序后的问题列表及其修订号
// maxSeverity 非空时做作用域过滤（如只看 P0/P1）
func (s *ProblemService) Problems(maxSeverity etproblem.Severity) ([]etproblem.RiskProblem, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	problems := s.problems
	if maxSeverity != "" {
		problems = mdsynthesis.FilterMaxSeverity(problems, maxSeverity)
	}
	return problems, s.revision
}

// ProblemByID 按规则 ID 查找当前问题
func (s *ProblemService) ProblemByID(id string) (etproblem.RiskProblem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.problems {
		if p.ID == id {
			return p, nil
		}
	}
	return etproblem.RiskProblem{}, errorx.ErrProblemNotFound
}

// WaitForUpdate Smart Wait：客户端带上次见到的修订号等待更新
// 当前修订号已更新时立即返回；否则订阅广播等待，超时返回 false
func (s *ProblemService) WaitForUpdate(ctx context.Context, sinceRev int64, timeout time.Duration) (int64, bool) {
	s.mu.RLock()
	current := s.revision
	s.mu.RUnlock()

	if current != sinceRev {
		return current, true
	}

	if _, err := s.pubsub.Subscribe(ctx, s.channel(), timeout); err != nil {
		// 超时或订阅失败，维持原修订号
		return sinceRev, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision, s.revision != sinceRev
}

// Delta 对比历史修订与当前列表的变化
// 历史已被淘汰时返回 false，调用方应全量拉取
func (s *ProblemService) Delta(sinceRev int64) (mdsynthesis.Delta, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prev, ok := s.history[sinceRev]
	if !ok {
		return mdsynthesis.Delta{}, false
	}
	return mdsynthesis.Diff(prev, s.problems), true
}

// RefreshAll 刷新全部 feed（手动重试横幅的后端动作）
func (s *ProblemService) RefreshAll(ctx context.Context) {
	s.hub.RefreshAll(ctx)
}

// RefreshFeed 刷新单个 feed；kind 无法识别时报错
func (s *ProblemService) RefreshFeed(ctx context.Context, kind string) error {
	k, ok := mdsnapshot.ParseFeedKind(kind)
	if !ok {
		return fmt.Errorf("%w: %s", errorx.ErrUnknownFeed, kind)
	}
	return s.hub.Refresh(ctx, k)
}

// FeedStatus 细粒度 feed 状态映射
func (s *ProblemService) FeedStatus() map[mdsnapshot.FeedKind]mdsnapshot.FeedStatus {
	return s.hub.Current().StatusByKind()
}

// AnyError 任意 feed 失败的聚合信号
func (s *ProblemService) AnyError() bool {
	return s.hub.Current().AnyError()
}

// DrilldownView 打开中的下钻视图
type DrilldownView struct {
	Drilldown etproblem.Drilldown     `json:"-"`
	Kind      etproblem.DrilldownKind `json:"kind"`
	Feed      mdsnapshot.FeedKind     `json:"feed"`
	Status    mdsnapshot.FeedStatus   `json:"status"`
	Params    url.Values              `json:"params"` // 规范化后的深链参数
}

// OpenDrilldown 解码 URL 参数并附上支撑 feed 的作用域状态
// 参数不含合法 dd 时返回 nil（无下钻打开）
func (s *ProblemService) OpenDrilldown(params url.Values) *DrilldownView {
	d := mddrilldown.Decode(params)
	if d == nil {
		return nil
	}

	feed := feedForDrilldown(d.Kind())
	status := s.hub.Current().StatusByKind()[feed]

	return &DrilldownView{
		Drilldown: d,
		Kind:      d.Kind(),
		Feed:      feed,
		Status:    status,
		Params:    mddrilldown.Encode(d),
	}
}

// EncodeDrilldown 生成问题的深链参数（分享链接）
func (s *ProblemService) EncodeDrilldown(problemID string) (url.Values, error) {
	p, err := s.ProblemByID(problemID)
	if err != nil {
		return nil, err
	}
	return mddrilldown.Encode(p.Drilldown), nil
}

// WorkbenchForParams 由 URL 参数推导工作台导航目标
func (s *ProblemService) WorkbenchForParams(params url.Values) (mddrilldown.WorkbenchTarget, error) {
	d := mddrilldown.Decode(params)
	if d == nil {
		return mddrilldown.WorkbenchTarget{}, errorx.ErrFeedNotResolved
	}
	return mddrilldown.TargetForDrilldown(d, s.defaults), nil
}

// WorkbenchForProblem 由问题推导工作台导航目标
func (s *ProblemService) WorkbenchForProblem(problemID string) (mddrilldown.WorkbenchTarget, error) {
	p, err := s.ProblemByID(problemID)
	if err != nil {
		return mddrilldown.WorkbenchTarget{}, err
	}
	return mddrilldown.TargetForProblem(p, s.defaults), nil
}

// channel 业务约定的广播频道命名规则
func (s *ProblemService) channel() string {
	return fmt.Sprintf("riskboard:problems:%s", s.versionID)
}

// feedForDrilldown 下钻标签到支撑 feed 的映射
func feedForDrilldown(kind etproblem.DrilldownKind) mdsnapshot.FeedKind {
	switch kind {
	case etproblem.DrilldownOrders:
		return mdsnapshot.FeedOrders
	case etproblem.DrilldownColdStock:
		return mdsnapshot.FeedColdStock
	case etproblem.DrilldownBottleneck:
		return mdsnapshot.FeedBottleneck
	case etproblem.DrilldownRoll:
		return mdsnapshot.FeedRoll
	case etproblem.DrilldownRisk:
		return mdsnapshot.FeedDayRisk
	default:
		return mdsnapshot.FeedCapacityOpportunity
	}
}
