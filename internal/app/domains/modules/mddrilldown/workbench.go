package mddrilldown

import (
	"net/url"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etproblem"
)

// Defaults 外部注入的默认过滤种子（偏好机组等），不读全局状态
type Defaults struct {
	MachineCode string
}

// WorkbenchTarget 工作台导航目标，由外部路由层翻译为实际路由
type WorkbenchTarget struct {
	Tab          etproblem.WorkbenchTab `json:"tab"`
	MachineCode  string                 `json:"machine_code,omitempty"`
	UrgencyLevel string                 `json:"urgency_level,omitempty"`
	PlanDate     string                 `json:"plan_date,omitempty"`
	Context      string                 `json:"context,omitempty"`
	CellFocus    bool                   `json:"cell_focus,omitempty"` // 机组×日期单元格语境
}

// Params 导航目标的查询参数投影
// 单元格语境附带 focus=gantt 和 openCell=1
func (t WorkbenchTarget) Params() url.Values {
	params := url.Values{}
	if t.MachineCode != "" {
		params.Set("machine", t.MachineCode)
	}
	if t.UrgencyLevel != "" {
		params.Set("urgency", t.UrgencyLevel)
	}
	if t.PlanDate != "" {
		params.Set("date", t.PlanDate)
	}
	if t.Context != "" {
		params.Set("context", t.Context)
	}
	if t.CellFocus {
		params.Set("focus", "gantt")
		params.Set("openCell", "1")
	}
	return params
}

// TabForKind 下钻标签到工作台页签的全函数映射（封闭集合）
// orders/coldStock → 物料清单；日期/机组单元格形态的三类 → 产能甘特；
// roll → 可视化
func TabForKind(kind etproblem.DrilldownKind) etproblem.WorkbenchTab {
	switch kind {
	case etproblem.DrilldownOrders, etproblem.DrilldownColdStock:
		return etproblem.TabMaterials
	case etproblem.DrilldownRoll:
		return etproblem.TabVisualization
	default:
		// risk / bottleneck / capacityOpportunity
		return etproblem.TabCapacity
	}
}

// cellShaped 是否是机组×日期单元格形态的下钻
func cellShaped(kind etproblem.DrilldownKind) bool {
	switch kind {
	case etproblem.DrilldownRisk, etproblem.DrilldownBottleneck, etproblem.DrilldownCapacityOpportunity:
		return true
	default:
		return false
	}
}

// TargetForDrilldown 由下钻规格推导导航目标
func TargetForDrilldown(d etproblem.Drilldown, defaults Defaults) WorkbenchTarget {
	if d == nil {
		return WorkbenchTarget{Tab: etproblem.TabMaterials}
	}

	t := WorkbenchTarget{
		Tab:       TabForKind(d.Kind()),
		CellFocus: cellShaped(d.Kind()),
	}

	switch v := d.(type) {
	case etproblem.OrdersDrilldown:
		t.UrgencyLevel = string(v.Urgency)
	case etproblem.ColdStockDrilldown:
		t.MachineCode = v.MachineCode
	case etproblem.BottleneckDrilldown:
		t.MachineCode = v.MachineCode
		t.PlanDate = v.PlanDate
	case etproblem.RollDrilldown:
		t.MachineCode = v.MachineCode
	case etproblem.RiskDrilldown:
		t.PlanDate = v.PlanDate
	case etproblem.CapacityOpportunityDrilldown:
		t.MachineCode = v.MachineCode
		t.PlanDate = v.PlanDate
	}

	seedDefaultMachine(&t, d.Kind(), defaults)
	return t
}

// TargetForProblem 由问题推导导航目标
// 问题显式指定页签时优先；否则按下钻标签推导
func TargetForProblem(p etproblem.RiskProblem, defaults Defaults) WorkbenchTarget {
	t := TargetForDrilldown(p.Drilldown, defaults)

	if p.WorkbenchTab != "" {
		t.Tab = p.WorkbenchTab
	}
	if p.MachineCode != "" {
		t.MachineCode = p.MachineCode
	}
	if p.PlanDate != "" {
		t.PlanDate = p.PlanDate
	}
	if p.Context != "" {
		t.Context = p.Context
	}
	return t
}

// seedDefaultMachine 机组形态的下钻无机组过滤时，用偏好机组兜底
func seedDefaultMachine(t *WorkbenchTarget, kind etproblem.DrilldownKind, defaults Defaults) {
	if t.MachineCode != "" || defaults.MachineCode == "" {
		return
	}
	switch kind {
	case etproblem.DrilldownRoll, etproblem.DrilldownBottleneck,
		etproblem.DrilldownCapacityOpportunity, etproblem.DrilldownColdStock:
		t.MachineCode = defaults.MachineCode
	}
}
