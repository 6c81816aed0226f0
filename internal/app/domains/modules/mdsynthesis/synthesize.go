package mdsynthesis

import (
	"fmt"
	"strings"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etfeed"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etproblem"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/modules/mdsnapshot"
)

// 规则标识：编译期固定常量，决定问题身份的稳定性
// 顺序即评估顺序，同严重度的相对顺序由此保证
const (
	RuleUrgentOrders  = "urgent_orders"
	RuleWorstRiskDay  = "worst_risk_day"
	RuleBottleneck    = "bottleneck"
	RuleColdStock     = "cold_stock"
	RuleRollCampaign  = "roll_campaign"
	RuleBlockedUrgent = "blocked_urgent"
)

// Synthesize 对当前快照集合执行全部规则，产出问题列表（未排序）
// 纯函数：相同快照集合两次调用产出逐字节一致的结果。
// 未就绪（加载中/失败）的 feed 视为"该 feed 无异常"，规则静默跳过
func Synthesize(set mdsnapshot.Set) []etproblem.RiskProblem {
	problems := make([]etproblem.RiskProblem, 0, 6)

	// 规则1：L3 紧急失败订单
	if set.Orders.Ready() {
		if f, ok := classifyUrgentOrders(set.Orders.Data); ok {
			problems = append(problems, buildUrgentOrders(f))
		}
	}

	// 规则2：最差风险日
	if set.DayRisk.Ready() {
		if f, ok := classifyWorstRiskDay(set.DayRisk.Data); ok {
			problems = append(problems, buildWorstRiskDay(f))
		}
	}

	// 规则3：机组产能瓶颈
	if set.Bottleneck.Ready() {
		if f, ok := classifyBottleneck(set.Bottleneck.Data); ok {
			problems = append(problems, buildBottleneck(f))
		}
	}

	// 规则4：冷坯库存压力
	if set.ColdStock.Ready() {
		if f, ok := classifyColdStock(set.ColdStock.Data); ok {
			problems = append(problems, buildColdStock(f))
		}
	}

	// 规则5：轧辊换辊预警
	if set.Roll.Ready() {
		if f, ok := classifyRollCampaign(set.Roll.Data); ok {
			problems = append(problems, buildRollCampaign(f))
		}
	}

	// 规则6：紧急物料受阻
	if set.KPI.Ready() {
		if count, ok := classifyBlockedUrgent(set.KPI.Data); ok {
			problems = append(problems, buildBlockedUrgent(count))
		}
	}

	return problems
}

func buildUrgentOrders(f urgentOrdersFinding) etproblem.RiskProblem {
	return etproblem.RiskProblem{
		ID:       RuleUrgentOrders,
		Severity: etproblem.SeverityP0,
		Title:    "紧急订单交付风险",
		Detail:   fmt.Sprintf("L3级失败订单%d件，其中已逾期%d件", f.Count, f.OverdueCount),
		Impact:   fmt.Sprintf("未排产%s", FormatTonnage(f.UnscheduledWeightT)),
		TimeHint: FormatDueHint(f.MinDaysToDue),
		Count:    f.Count,
		Drilldown: etproblem.OrdersDrilldown{
			Urgency: etfeed.UrgencyL3,
		},
		Context: RuleUrgentOrders,
	}
}

func buildWorstRiskDay(f worstDayFinding) etproblem.RiskProblem {
	p := etproblem.RiskProblem{
		ID:       RuleWorstRiskDay,
		Severity: f.Severity,
		Title:    "高风险生产日",
		Detail:   fmt.Sprintf("%s 风险等级%s（评分%.0f）", f.Day.PlanDate, f.Day.RiskLevel, f.Day.RiskScore),
		Drilldown: etproblem.RiskDrilldown{
			PlanDate: f.Day.PlanDate,
		},
		PlanDate: f.Day.PlanDate,
		Context:  RuleWorstRiskDay,
	}
	if len(f.Day.TopReasons) > 0 {
		p.Impact = strings.Join(f.Day.TopReasons, "、")
	}
	return p
}

func buildBottleneck(f bottleneckFinding) etproblem.RiskProblem {
	return etproblem.RiskProblem{
		ID:       RuleBottleneck,
		Severity: f.Severity,
		Title:    "机组产能瓶颈",
		Detail:   fmt.Sprintf("%s %s 瓶颈评分%.0f", f.Point.MachineCode, f.Point.PlanDate, f.Point.BottleneckScore),
		Impact:   fmt.Sprintf("共%d个高压力瓶颈点", f.Count),
		Count:    f.Count,
		Drilldown: etproblem.BottleneckDrilldown{
			MachineCode: f.Point.MachineCode,
			PlanDate:    f.Point.PlanDate,
		},
		MachineCode: f.Point.MachineCode,
		PlanDate:    f.Point.PlanDate,
		Context:     RuleBottleneck,
	}
}

func buildColdStock(f coldStockFinding) etproblem.RiskProblem {
	p := etproblem.RiskProblem{
		ID:        RuleColdStock,
		Severity:  etproblem.SeverityP2,
		Title:     "冷坯库存压力",
		Detail:    fmt.Sprintf("%d个机组×库龄分组处于高压力", f.HighPressureCount),
		Count:     f.HighPressureCount,
		Drilldown: etproblem.ColdStockDrilldown{}, // 指向整个维度，不带过滤
		Context:   RuleColdStock,
	}
	if f.HasRepresentative {
		p.Impact = fmt.Sprintf("最高压力：%s %s库龄 %s",
			f.Representative.MachineCode, f.Representative.AgeBin, FormatTonnage(f.Representative.WeightT))
	}
	return p
}

func buildRollCampaign(f rollFinding) etproblem.RiskProblem {
	p := etproblem.RiskProblem{
		ID:       RuleRollCampaign,
		Severity: f.Severity,
		Title:    "轧辊换辊预警",
		Count:    f.HardStopCount + f.WarningCount + f.SuggestCount,
		Context:  RuleRollCampaign,
	}
	if f.HasRepresentative {
		p.Detail = fmt.Sprintf("%s 剩余轧制量%s", f.Representative.MachineCode, FormatTonnage(f.Representative.RemainingTonnageT))
		p.Drilldown = etproblem.RollDrilldown{MachineCode: f.Representative.MachineCode}
		p.MachineCode = f.Representative.MachineCode
	} else {
		p.Drilldown = etproblem.RollDrilldown{}
	}
	if f.HardStopCount > 0 {
		p.Impact = fmt.Sprintf("%d个机组接近硬停机", f.HardStopCount)
	}
	return p
}

func buildBlockedUrgent(count int) etproblem.RiskProblem {
	return etproblem.RiskProblem{
		ID:        RuleBlockedUrgent,
		Severity:  etproblem.SeverityP1,
		Title:     "紧急物料受阻",
		Detail:    fmt.Sprintf("%d件紧急物料被锁定或受阻", count),
		Count:     count,
		Drilldown: etproblem.OrdersDrilldown{}, // 不带紧急度过滤
		Context:   RuleBlockedUrgent,
	}
}
