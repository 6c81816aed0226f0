package etproblem

// WorkbenchTab 工作台页签标识
type WorkbenchTab string

const (
	TabMaterials     WorkbenchTab = "materials"     // 物料清单页签
	TabCapacity      WorkbenchTab = "capacity"      // 产能甘特页签
	TabVisualization WorkbenchTab = "visualization" // 可视化页签
)

// RiskProblem 一条可行动的风险问题
// ID 是编译期固定的规则标识（非数据派生），同一条件在任意两次
// 合成之间始终触发同一身份，消费方据此做 resolved/worsened 对比
type RiskProblem struct {
	ID       string   `json:"id"`
	Severity Severity `json:"severity"`
	Title    string   `json:"title"`
	Detail   string   `json:"detail,omitempty"`
	Impact   string   `json:"impact,omitempty"`
	TimeHint string   `json:"time_hint,omitempty"`
	Count    int      `json:"count,omitempty"`

	Drilldown Drilldown `json:"-"`

	// 工作台路由提示（可选）
	WorkbenchTab WorkbenchTab `json:"workbench_tab,omitempty"`
	MachineCode  string       `json:"machine_code,omitempty"`
	PlanDate     string       `json:"plan_date,omitempty"`
	Context      string       `json:"context,omitempty"`
	ContractNo   string       `json:"contract_no,omitempty"`
}
