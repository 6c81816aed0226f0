package etproblem

import "github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etfeed"

// DrilldownKind 下钻视图标签（封闭集合，与 URL 参数 dd 一一对应）
type DrilldownKind string

const (
	DrilldownOrders              DrilldownKind = "orders"
	DrilldownColdStock           DrilldownKind = "coldStock"
	DrilldownBottleneck          DrilldownKind = "bottleneck"
	DrilldownRoll                DrilldownKind = "roll"
	DrilldownRisk                DrilldownKind = "risk"
	DrilldownCapacityOpportunity DrilldownKind = "capacityOpportunity"
)

// Drilldown 下钻规格（封闭标签联合）
// 标签决定哪些字段有意义，与标签无关的字段一律不允许携带，
// 编解码器依赖这一点保证 kind 切换不会把旧参数带进新变体
type Drilldown interface {
	Kind() DrilldownKind
	sealed()
}

// OrdersDrilldown 订单失败下钻，可按紧急等级过滤
type OrdersDrilldown struct {
	Urgency etfeed.UrgencyLevel // 空值表示不过滤
}

// ColdStockDrilldown 冷坯库存下钻，可按机组/库龄/压力等级过滤
type ColdStockDrilldown struct {
	MachineCode   string
	AgeBin        etfeed.AgeBin
	PressureLevel etfeed.RiskLevel
}

// BottleneckDrilldown 瓶颈下钻，定位到机组×计划日单元格
type BottleneckDrilldown struct {
	MachineCode string
	PlanDate    string
}

// RollDrilldown 轧辊周期下钻，可按机组过滤
type RollDrilldown struct {
	MachineCode string
}

// RiskDrilldown 风险日下钻，可定位到单个计划日
type RiskDrilldown struct {
	PlanDate string
}

// CapacityOpportunityDrilldown 产能机会下钻，定位到机组×计划日单元格
type CapacityOpportunityDrilldown struct {
	MachineCode string
	PlanDate    string
}

// Kind 实现 Drilldown 接口
func (OrdersDrilldown) Kind() DrilldownKind { return DrilldownOrders }

// Kind 实现 Drilldown 接口
func (ColdStockDrilldown) Kind() DrilldownKind { return DrilldownColdStock }

// Kind 实现 Drilldown 接口
func (BottleneckDrilldown) Kind() DrilldownKind { return DrilldownBottleneck }

// Kind 实现 Drilldown 接口
func (RollDrilldown) Kind() DrilldownKind { return DrilldownRoll }

// Kind 实现 Drilldown 接口
func (RiskDrilldown) Kind() DrilldownKind { return DrilldownRisk }

// Kind 实现 Drilldown 接口
func (CapacityOpportunityDrilldown) Kind() DrilldownKind { return DrilldownCapacityOpportunity }

func (OrdersDrilldown) sealed()              {}
func (ColdStockDrilldown) sealed()           {}
func (BottleneckDrilldown) sealed()          {}
func (RollDrilldown) sealed()                {}
func (RiskDrilldown) sealed()                {}
func (CapacityOpportunityDrilldown) sealed() {}
