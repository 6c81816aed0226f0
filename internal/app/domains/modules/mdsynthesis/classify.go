package mdsynthesis

import (
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etfeed"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etproblem"
)

// 分类器：每个 feed 一个纯函数，输入已解析的 feed 数据，
// 输出"无问题"或一个带严重度和代表记录的判定。
// 分类器不做格式化，展示字段由合成器按固定模板派生。

// urgentOrdersFinding 紧急订单规则判定（聚合型，无单条代表）
type urgentOrdersFinding struct {
	Count              int     // L3 失败订单数
	OverdueCount       int     // 其中已逾期数
	UnscheduledWeightT float64 // 未排产重量合计
	MinDaysToDue       int     // 最小剩余天数（负数=已逾期）
	EarliestDueDate    string  // 最早交期（ISO 日期，字典序比较）
}

// classifyUrgentOrders 规则1：L3 紧急失败订单
// 存在任意 L3 失败即 P0
func classifyUrgentOrders(failures []etfeed.OrderFailure) (urgentOrdersFinding, bool) {
	var f urgentOrdersFinding
	for _, of := range failures {
		if of.UrgencyLevel != etfeed.UrgencyL3 {
			continue
		}
		if f.Count == 0 || of.DaysToDue < f.MinDaysToDue {
			f.MinDaysToDue = of.DaysToDue
		}
		if f.Count == 0 || of.DueDate < f.EarliestDueDate {
			f.EarliestDueDate = of.DueDate
		}
		if of.FailType == etfeed.FailTypeOverdue {
			f.OverdueCount++
		}
		f.UnscheduledWeightT += of.UnscheduledWeightT
		f.Count++
	}
	return f, f.Count > 0
}

// worstDayFinding 最差风险日判定
type worstDayFinding struct {
	Day      etfeed.DaySummary
	Severity etproblem.Severity
}

// classifyWorstRiskDay 规则2：最差风险日
// 按 (风险等级, 评分) 复合序左折叠归约：等级优先，评分次之，
// 打平保留先遇到的那天。仅 HIGH/CRITICAL 的最差日构成问题，
// 严重度走共享映射表。
func classifyWorstRiskDay(days []etfeed.DaySummary) (worstDayFinding, bool) {
	if len(days) == 0 {
		return worstDayFinding{}, false
	}

	worst := days[0]
	for _, d := range days[1:] {
		if d.RiskLevel.Rank() > worst.RiskLevel.Rank() {
			worst = d
			continue
		}
		if d.RiskLevel.Rank() == worst.RiskLevel.Rank() && d.RiskScore > worst.RiskScore {
			worst = d
		}
	}

	if worst.RiskLevel != etfeed.RiskLevelHigh && worst.RiskLevel != etfeed.RiskLevelCritical {
		return worstDayFinding{}, false
	}

	sev, ok := etproblem.SeverityFromRiskLevel(worst.RiskLevel)
	if !ok {
		return worstDayFinding{}, false
	}
	return worstDayFinding{Day: worst, Severity: sev}, true
}

// bottleneckFinding 瓶颈规则判定
type bottleneckFinding struct {
	Severity etproblem.Severity
	Point    etfeed.BottleneckPoint // 过滤集内评分最高的点
	Count    int                    // HIGH/CRITICAL 点总数
}

// classifyBottleneck 规则3：机组产能瓶颈
// 过滤 HIGH/CRITICAL 点；含 CRITICAL 则 P0，否则 P1；
// 代表取 bottleneckScore 最大者（打平保留先遇到的）
func classifyBottleneck(points []etfeed.BottleneckPoint) (bottleneckFinding, bool) {
	var f bottleneckFinding
	hasCritical := false

	for _, p := range points {
		if p.BottleneckLevel != etfeed.RiskLevelHigh && p.BottleneckLevel != etfeed.RiskLevelCritical {
			continue
		}
		if p.BottleneckLevel == etfeed.RiskLevelCritical {
			hasCritical = true
		}
		if f.Count == 0 || p.BottleneckScore > f.Point.BottleneckScore {
			f.Point = p
		}
		f.Count++
	}

	if f.Count == 0 {
		return bottleneckFinding{}, false
	}
	if hasCritical {
		f.Severity = etproblem.SeverityP0
	} else {
		f.Severity = etproblem.SeverityP1
	}
	return f, true
}

// coldStockFinding 冷坯库存压力判定
type coldStockFinding struct {
	HighPressureCount int
	Representative    etfeed.ColdStockBucket // HIGH/CRITICAL 分组中压力评分最高者
	HasRepresentative bool
}

// classifyColdStock 规则4：冷坯库存压力
// 由 feed 级预聚合 HighPressureCount 触发，固定 P2
func classifyColdStock(data *etfeed.ColdStockData) (coldStockFinding, bool) {
	if data == nil || data.Summary.HighPressureCount <= 0 {
		return coldStockFinding{}, false
	}

	f := coldStockFinding{HighPressureCount: data.Summary.HighPressureCount}
	for _, b := range data.Buckets {
		if b.PressureLevel != etfeed.RiskLevelHigh && b.PressureLevel != etfeed.RiskLevelCritical {
			continue
		}
		if !f.HasRepresentative || b.PressureScore > f.Representative.PressureScore {
			f.Representative = b
			f.HasRepresentative = true
		}
	}
	return f, true
}

// rollFinding 轧辊周期判定
type rollFinding struct {
	Severity          etproblem.Severity
	Representative    etfeed.RollCampaignAlert // 非 NORMAL 项中剩余轧制量最小者
	HasRepresentative bool
	HardStopCount     int
	WarningCount      int
	SuggestCount      int
}

// classifyRollCampaign 规则5：轧辊换辊预警
// 按映射表归一化状态后分级：summary 接近硬停机数>0 或存在
// HARD_STOP → P0；存在 WARNING → P1；存在 SUGGEST → P2
func classifyRollCampaign(data *etfeed.RollData) (rollFinding, bool) {
	if data == nil {
		return rollFinding{}, false
	}

	var f rollFinding
	for _, a := range data.Alerts {
		st := a.Status()
		if st == etfeed.RollStatusNormal {
			continue
		}
		switch st {
		case etfeed.RollStatusHardStop:
			f.HardStopCount++
		case etfeed.RollStatusWarning:
			f.WarningCount++
		case etfeed.RollStatusSuggest:
			f.SuggestCount++
		}
		if !f.HasRepresentative || a.RemainingTonnageT < f.Representative.RemainingTonnageT {
			f.Representative = a
			f.HasRepresentative = true
		}
	}

	switch {
	case data.Summary.NearHardStopCount > 0:
		f.Severity = etproblem.SeverityP0
	case f.HardStopCount > 0:
		f.Severity = etproblem.SeverityP0
	case f.WarningCount > 0:
		f.Severity = etproblem.SeverityP1
	case f.SuggestCount > 0:
		f.Severity = etproblem.SeverityP2
	default:
		return rollFinding{}, false
	}
	return f, true
}

// classifyBlockedUrgent 规则6：紧急物料受阻
// 全局 KPI 的 BlockedUrgentCount>0 即固定 P1
func classifyBlockedUrgent(kpi *etfeed.GlobalKPI) (int, bool) {
	if kpi == nil || kpi.BlockedUrgentCount <= 0 {
		return 0, false
	}
	return kpi.BlockedUrgentCount, true
}
