package mdsynthesis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etfeed"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etproblem"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/modules/mdsnapshot"
)

func readySet() mdsnapshot.Set {
	return mdsnapshot.Set{
		DayRisk: mdsnapshot.Snapshot[[]etfeed.DaySummary]{
			State: mdsnapshot.StateReady,
			Data: []etfeed.DaySummary{
				{PlanDate: "2026-08-25", RiskLevel: etfeed.RiskLevelHigh, RiskScore: 72, TopReasons: []string{"产能缺口", "换辊冲突"}},
			},
		},
		Bottleneck: mdsnapshot.Snapshot[[]etfeed.BottleneckPoint]{
			State: mdsnapshot.StateReady,
			Data: []etfeed.BottleneckPoint{
				{MachineCode: "H032", PlanDate: "2026-08-25", BottleneckLevel: etfeed.RiskLevelHigh, BottleneckScore: 88},
			},
		},
		Orders: mdsnapshot.Snapshot[[]etfeed.OrderFailure]{
			State: mdsnapshot.StateReady,
			Data: []etfeed.OrderFailure{
				{ContractNo: "C001", UrgencyLevel: etfeed.UrgencyL3, FailType: etfeed.FailTypeOverdue, DueDate: "2026-08-21", DaysToDue: -2, UnscheduledWeightT: 350},
			},
		},
		ColdStock: mdsnapshot.Snapshot[*etfeed.ColdStockData]{
			State: mdsnapshot.StateReady,
			Data: &etfeed.ColdStockData{
				Buckets: []etfeed.ColdStockBucket{
					{MachineCode: "H031", AgeBin: etfeed.AgeBin30Plus, PressureLevel: etfeed.RiskLevelHigh, PressureScore: 85, WeightT: 1250},
				},
				Summary: etfeed.ColdStockSummary{HighPressureCount: 1},
			},
		},
		Roll: mdsnapshot.Snapshot[*etfeed.RollData]{
			State: mdsnapshot.StateReady,
			Data: &etfeed.RollData{
				Alerts: []etfeed.RollCampaignAlert{
					{MachineCode: "H031", AlertLevel: "warn", RemainingTonnageT: 420},
				},
			},
		},
		Capacity: mdsnapshot.Snapshot[[]etfeed.CapacityOpportunity]{
			State: mdsnapshot.StateReady,
			Data: []etfeed.CapacityOpportunity{
				{MachineCode: "H033", PlanDate: "2026-08-26", OpportunitySpaceT: 500},
			},
		},
		KPI: mdsnapshot.Snapshot[*etfeed.GlobalKPI]{
			State: mdsnapshot.StateReady,
			Data:  &etfeed.GlobalKPI{BlockedUrgentCount: 3},
		},
		Revision: 1,
	}
}

func idsOf(problems []etproblem.RiskProblem) []string {
	ids := make([]string, 0, len(problems))
	for _, p := range problems {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestSynthesizeAllRules(t *testing.T) {
	problems := Synthesize(readySet())

	assert.Equal(t, []string{
		RuleUrgentOrders,
		RuleWorstRiskDay,
		RuleBottleneck,
		RuleColdStock,
		RuleRollCampaign,
		RuleBlockedUrgent,
	}, idsOf(problems))

	byID := make(map[string]etproblem.RiskProblem)
	for _, p := range problems {
		byID[p.ID] = p
	}

	urgent := byID[RuleUrgentOrders]
	assert.Equal(t, etproblem.SeverityP0, urgent.Severity)
	assert.Equal(t, "紧急订单交付风险", urgent.Title)
	assert.Equal(t, "L3级失败订单1件，其中已逾期1件", urgent.Detail)
	assert.Equal(t, "未排产350t", urgent.Impact)
	assert.Equal(t, "最紧急订单已逾期2天", urgent.TimeHint)
	assert.Equal(t, etproblem.OrdersDrilldown{Urgency: etfeed.UrgencyL3}, urgent.Drilldown)

	risk := byID[RuleWorstRiskDay]
	assert.Equal(t, etproblem.SeverityP1, risk.Severity)
	assert.Equal(t, "产能缺口、换辊冲突", risk.Impact)
	assert.Equal(t, etproblem.RiskDrilldown{PlanDate: "2026-08-25"}, risk.Drilldown)

	cold := byID[RuleColdStock]
	assert.Equal(t, etproblem.SeverityP2, cold.Severity)
	// 冷坯库存指向整个维度，不带过滤
	assert.Equal(t, etproblem.ColdStockDrilldown{}, cold.Drilldown)
	assert.Equal(t, "最高压力：H031 30+库龄 1.250千吨", cold.Impact)

	blocked := byID[RuleBlockedUrgent]
	assert.Equal(t, etproblem.SeverityP1, blocked.Severity)
	assert.Equal(t, etproblem.OrdersDrilldown{}, blocked.Drilldown)
}

func TestSynthesizeDeterministic(t *testing.T) {
	set := readySet()
	first := Synthesize(set)
	second := Synthesize(set)
	assert.Equal(t, first, second)
}

func TestSynthesizeSkipsUnresolvedFeeds(t *testing.T) {
	t.Run("failed_feed_rule_skipped", func(t *testing.T) {
		set := readySet()
		set.ColdStock.State = mdsnapshot.StateFailed
		set.ColdStock.Err = errors.New("query timeout")

		problems := Synthesize(set)
		assert.NotContains(t, idsOf(problems), RuleColdStock)
		// 其余规则不受牵连
		assert.Contains(t, idsOf(problems), RuleUrgentOrders)
		assert.Len(t, problems, 5)
	})

	t.Run("loading_feed_rule_skipped", func(t *testing.T) {
		set := readySet()
		set.KPI.State = mdsnapshot.StateLoading

		problems := Synthesize(set)
		assert.NotContains(t, idsOf(problems), RuleBlockedUrgent)
	})

	t.Run("all_loading_empty_list", func(t *testing.T) {
		problems := Synthesize(mdsnapshot.Set{})
		assert.Empty(t, problems)
	})
}

func TestSynthesizeQuietSet(t *testing.T) {
	// 全部 feed 就绪但都无异常：空问题列表
	set := mdsnapshot.Set{
		DayRisk: mdsnapshot.Snapshot[[]etfeed.DaySummary]{
			State: mdsnapshot.StateReady,
			Data: []etfeed.DaySummary{
				{PlanDate: "2026-08-24", RiskLevel: etfeed.RiskLevelLow, RiskScore: 5},
			},
		},
		Bottleneck: mdsnapshot.Snapshot[[]etfeed.BottleneckPoint]{State: mdsnapshot.StateReady},
		Orders:     mdsnapshot.Snapshot[[]etfeed.OrderFailure]{State: mdsnapshot.StateReady},
		ColdStock: mdsnapshot.Snapshot[*etfeed.ColdStockData]{
			State: mdsnapshot.StateReady,
			Data:  &etfeed.ColdStockData{},
		},
		Roll: mdsnapshot.Snapshot[*etfeed.RollData]{
			State: mdsnapshot.StateReady,
			Data:  &etfeed.RollData{},
		},
		KPI: mdsnapshot.Snapshot[*etfeed.GlobalKPI]{
			State: mdsnapshot.StateReady,
			Data:  &etfeed.GlobalKPI{},
		},
	}

	problems := Synthesize(set)
	require.Empty(t, problems)
}
