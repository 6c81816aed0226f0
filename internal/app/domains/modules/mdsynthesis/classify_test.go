package mdsynthesis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etfeed"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etproblem"
)

func TestClassifyUrgentOrders(t *testing.T) {
	t.Run("aggregates_only_l3", func(t *testing.T) {
		failures := []etfeed.OrderFailure{
			{ContractNo: "C001", UrgencyLevel: etfeed.UrgencyL3, FailType: etfeed.FailTypeOverdue, DueDate: "2026-08-21", DaysToDue: -2, UnscheduledWeightT: 120},
			{ContractNo: "C002", UrgencyLevel: etfeed.UrgencyL3, FailType: etfeed.FailTypeUnscheduled, DueDate: "2026-08-26", DaysToDue: 3, UnscheduledWeightT: 80},
			{ContractNo: "C003", UrgencyLevel: etfeed.UrgencyL2, FailType: etfeed.FailTypeOverdue, DueDate: "2026-08-20", DaysToDue: -3, UnscheduledWeightT: 999},
		}

		f, ok := classifyUrgentOrders(failures)
		require.True(t, ok)
		assert.Equal(t, 2, f.Count)
		assert.Equal(t, 1, f.OverdueCount)
		assert.Equal(t, -2, f.MinDaysToDue)
		assert.Equal(t, "2026-08-21", f.EarliestDueDate)
		assert.InDelta(t, 200.0, f.UnscheduledWeightT, 1e-9)
	})

	t.Run("no_l3_no_problem", func(t *testing.T) {
		failures := []etfeed.OrderFailure{
			{UrgencyLevel: etfeed.UrgencyL2, DaysToDue: -10},
		}
		_, ok := classifyUrgentOrders(failures)
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := classifyUrgentOrders(nil)
		assert.False(t, ok)
	})
}

func TestClassifyWorstRiskDay(t *testing.T) {
	t.Run("level_dominates_score", func(t *testing.T) {
		// MEDIUM 的 95 分不敌 HIGH 的 60 分
		days := []etfeed.DaySummary{
			{PlanDate: "2026-08-24", RiskLevel: etfeed.RiskLevelMedium, RiskScore: 95},
			{PlanDate: "2026-08-25", RiskLevel: etfeed.RiskLevelHigh, RiskScore: 60},
		}

		f, ok := classifyWorstRiskDay(days)
		require.True(t, ok)
		assert.Equal(t, "2026-08-25", f.Day.PlanDate)
		assert.Equal(t, etproblem.SeverityP1, f.Severity)
	})

	t.Run("critical_is_p0", func(t *testing.T) {
		days := []etfeed.DaySummary{
			{PlanDate: "2026-08-24", RiskLevel: etfeed.RiskLevelCritical, RiskScore: 50},
		}
		f, ok := classifyWorstRiskDay(days)
		require.True(t, ok)
		assert.Equal(t, etproblem.SeverityP0, f.Severity)
	})

	t.Run("tie_keeps_first", func(t *testing.T) {
		days := []etfeed.DaySummary{
			{PlanDate: "2026-08-24", RiskLevel: etfeed.RiskLevelHigh, RiskScore: 70},
			{PlanDate: "2026-08-25", RiskLevel: etfeed.RiskLevelHigh, RiskScore: 70},
		}
		f, ok := classifyWorstRiskDay(days)
		require.True(t, ok)
		assert.Equal(t, "2026-08-24", f.Day.PlanDate)
	})

	t.Run("worst_day_medium_no_problem", func(t *testing.T) {
		days := []etfeed.DaySummary{
			{PlanDate: "2026-08-24", RiskLevel: etfeed.RiskLevelMedium, RiskScore: 95},
			{PlanDate: "2026-08-25", RiskLevel: etfeed.RiskLevelLow, RiskScore: 10},
		}
		_, ok := classifyWorstRiskDay(days)
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := classifyWorstRiskDay(nil)
		assert.False(t, ok)
	})
}

func TestClassifyBottleneck(t *testing.T) {
	t.Run("critical_point_p0", func(t *testing.T) {
		points := []etfeed.BottleneckPoint{
			{MachineCode: "H031", PlanDate: "2026-08-24", BottleneckLevel: etfeed.RiskLevelHigh, BottleneckScore: 80},
			{MachineCode: "H032", PlanDate: "2026-08-25", BottleneckLevel: etfeed.RiskLevelCritical, BottleneckScore: 75},
			{MachineCode: "H033", PlanDate: "2026-08-25", BottleneckLevel: etfeed.RiskLevelMedium, BottleneckScore: 99},
		}

		f, ok := classifyBottleneck(points)
		require.True(t, ok)
		assert.Equal(t, etproblem.SeverityP0, f.Severity)
		assert.Equal(t, 2, f.Count)
		// 代表取评分最高者，与等级无关
		assert.Equal(t, "H031", f.Point.MachineCode)
	})

	t.Run("only_high_p1", func(t *testing.T) {
		points := []etfeed.BottleneckPoint{
			{MachineCode: "H031", BottleneckLevel: etfeed.RiskLevelHigh, BottleneckScore: 80},
		}
		f, ok := classifyBottleneck(points)
		require.True(t, ok)
		assert.Equal(t, etproblem.SeverityP1, f.Severity)
	})

	t.Run("no_high_points", func(t *testing.T) {
		points := []etfeed.BottleneckPoint{
			{BottleneckLevel: etfeed.RiskLevelMedium, BottleneckScore: 99},
		}
		_, ok := classifyBottleneck(points)
		assert.False(t, ok)
	})
}

func TestClassifyColdStock(t *testing.T) {
	t.Run("high_pressure_triggers", func(t *testing.T) {
		data := &etfeed.ColdStockData{
			Buckets: []etfeed.ColdStockBucket{
				{MachineCode: "H031", AgeBin: etfeed.AgeBin30Plus, PressureLevel: etfeed.RiskLevelHigh, PressureScore: 85, WeightT: 1200},
				{MachineCode: "H032", AgeBin: etfeed.AgeBin15To30, PressureLevel: etfeed.RiskLevelCritical, PressureScore: 92, WeightT: 800},
				{MachineCode: "H033", AgeBin: etfeed.AgeBin0To7, PressureLevel: etfeed.RiskLevelLow, PressureScore: 99, WeightT: 300},
			},
			Summary: etfeed.ColdStockSummary{HighPressureCount: 2},
		}

		f, ok := classifyColdStock(data)
		require.True(t, ok)
		assert.Equal(t, 2, f.HighPressureCount)
		require.True(t, f.HasRepresentative)
		// LOW 分组的高评分不参与代表竞争
		assert.Equal(t, "H032", f.Representative.MachineCode)
	})

	t.Run("summary_zero_no_problem", func(t *testing.T) {
		data := &etfeed.ColdStockData{Summary: etfeed.ColdStockSummary{HighPressureCount: 0}}
		_, ok := classifyColdStock(data)
		assert.False(t, ok)
	})

	t.Run("nil_data", func(t *testing.T) {
		_, ok := classifyColdStock(nil)
		assert.False(t, ok)
	})
}

func TestClassifyRollCampaign(t *testing.T) {
	t.Run("near_hard_stop_single_p0", func(t *testing.T) {
		// summary 与明细同时指向硬停机，只产出一次 P0
		data := &etfeed.RollData{
			Alerts: []etfeed.RollCampaignAlert{
				{MachineCode: "H031", AlertLevel: "EMERGENCY", RemainingTonnageT: 120},
				{MachineCode: "H032", AlertLevel: "warn", RemainingTonnageT: 600},
			},
			Summary: etfeed.RollSummary{NearHardStopCount: 1},
		}

		f, ok := classifyRollCampaign(data)
		require.True(t, ok)
		assert.Equal(t, etproblem.SeverityP0, f.Severity)
		assert.Equal(t, 1, f.HardStopCount)
		assert.Equal(t, 1, f.WarningCount)
		// 代表取剩余轧制量最小者
		assert.Equal(t, "H031", f.Representative.MachineCode)
	})

	t.Run("warning_only_p1", func(t *testing.T) {
		data := &etfeed.RollData{
			Alerts: []etfeed.RollCampaignAlert{
				{MachineCode: "H031", AlertLevel: "alert", RemainingTonnageT: 500},
			},
		}
		f, ok := classifyRollCampaign(data)
		require.True(t, ok)
		assert.Equal(t, etproblem.SeverityP1, f.Severity)
	})

	t.Run("suggest_only_p2", func(t *testing.T) {
		data := &etfeed.RollData{
			Alerts: []etfeed.RollCampaignAlert{
				{MachineCode: "H031", AlertLevel: "recommend", RemainingTonnageT: 900},
			},
		}
		f, ok := classifyRollCampaign(data)
		require.True(t, ok)
		assert.Equal(t, etproblem.SeverityP2, f.Severity)
	})

	t.Run("unknown_level_degrades_to_normal", func(t *testing.T) {
		data := &etfeed.RollData{
			Alerts: []etfeed.RollCampaignAlert{
				{MachineCode: "H031", AlertLevel: "whatever", RemainingTonnageT: 100},
			},
		}
		_, ok := classifyRollCampaign(data)
		assert.False(t, ok)
	})

	t.Run("summary_backstop_without_alerts", func(t *testing.T) {
		// 明细缺失但汇总报了接近硬停机，仍要触发 P0
		data := &etfeed.RollData{Summary: etfeed.RollSummary{NearHardStopCount: 2}}
		f, ok := classifyRollCampaign(data)
		require.True(t, ok)
		assert.Equal(t, etproblem.SeverityP0, f.Severity)
		assert.False(t, f.HasRepresentative)
	})

	t.Run("nil_data", func(t *testing.T) {
		_, ok := classifyRollCampaign(nil)
		assert.False(t, ok)
	})
}

func TestClassifyBlockedUrgent(t *testing.T) {
	t.Run("positive_count", func(t *testing.T) {
		count, ok := classifyBlockedUrgent(&etfeed.GlobalKPI{BlockedUrgentCount: 5})
		require.True(t, ok)
		assert.Equal(t, 5, count)
	})

	t.Run("zero_count", func(t *testing.T) {
		_, ok := classifyBlockedUrgent(&etfeed.GlobalKPI{BlockedUrgentCount: 0})
		assert.False(t, ok)
	})

	t.Run("nil_kpi", func(t *testing.T) {
		_, ok := classifyBlockedUrgent(nil)
		assert.False(t, ok)
	})
}
