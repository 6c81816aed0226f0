package mddrilldown

import (
	"net/url"
	"strings"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etfeed"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etproblem"
)

// URL 参数键空间：扁平、固定，是与浏览器/路由层的外部契约
// 禁止向单个参数塞嵌套 JSON
const (
	ParamKind     = "dd"       // 变体选择器
	ParamUrgency  = "urgency"  // 仅 orders 有意义
	ParamMachine  = "machine"  // coldStock/bottleneck/roll/capacityOpportunity
	ParamDate     = "date"     // risk/bottleneck/capacityOpportunity
	ParamAge      = "age"      // 仅 coldStock
	ParamPressure = "pressure" // 仅 coldStock（解码时归一化为大写）
)

// paramKeys 编解码器管辖的全部键，kind 切换前先整体清空
var paramKeys = []string{ParamKind, ParamUrgency, ParamMachine, ParamDate, ParamAge, ParamPressure}

// Apply 把下钻规格写入参数集合
// 先清空全部管辖键再写入当前变体相关的键，保证 kind 切换
// 不会把上一个变体的残留参数带进来；传 nil 表示关闭下钻
func Apply(d etproblem.Drilldown, params url.Values) {
	for _, key := range paramKeys {
		params.Del(key)
	}
	if d == nil {
		return
	}

	params.Set(ParamKind, string(d.Kind()))

	switch v := d.(type) {
	case etproblem.OrdersDrilldown:
		if v.Urgency != "" {
			params.Set(ParamUrgency, string(v.Urgency))
		}
	case etproblem.ColdStockDrilldown:
		if v.MachineCode != "" {
			params.Set(ParamMachine, v.MachineCode)
		}
		if v.AgeBin != "" {
			params.Set(ParamAge, string(v.AgeBin))
		}
		if v.PressureLevel != "" {
			params.Set(ParamPressure, string(v.PressureLevel))
		}
	case etproblem.BottleneckDrilldown:
		if v.MachineCode != "" {
			params.Set(ParamMachine, v.MachineCode)
		}
		if v.PlanDate != "" {
			params.Set(ParamDate, v.PlanDate)
		}
	case etproblem.RollDrilldown:
		if v.MachineCode != "" {
			params.Set(ParamMachine, v.MachineCode)
		}
	case etproblem.RiskDrilldown:
		if v.PlanDate != "" {
			params.Set(ParamDate, v.PlanDate)
		}
	case etproblem.CapacityOpportunityDrilldown:
		if v.MachineCode != "" {
			params.Set(ParamMachine, v.MachineCode)
		}
		if v.PlanDate != "" {
			params.Set(ParamDate, v.PlanDate)
		}
	}
}

// Encode 编码为独立参数集合
func Encode(d etproblem.Drilldown) url.Values {
	params := url.Values{}
	Apply(d, params)
	return params
}

// Decode 从参数集合解码下钻规格
// 防御式：未知枚举值丢弃字段（字段缺席），dd 缺失或无法识别
// 返回 nil（无下钻打开），任何输入都不会 panic
func Decode(params url.Values) etproblem.Drilldown {
	switch etproblem.DrilldownKind(params.Get(ParamKind)) {
	case etproblem.DrilldownOrders:
		var d etproblem.OrdersDrilldown
		if u, ok := etfeed.ParseUrgencyLevel(params.Get(ParamUrgency)); ok {
			d.Urgency = u
		}
		return d

	case etproblem.DrilldownColdStock:
		var d etproblem.ColdStockDrilldown
		d.MachineCode = strings.TrimSpace(params.Get(ParamMachine))
		if bin, ok := etfeed.ParseAgeBin(params.Get(ParamAge)); ok {
			d.AgeBin = bin
		}
		if level, ok := etfeed.ParseRiskLevel(params.Get(ParamPressure)); ok {
			d.PressureLevel = level
		}
		return d

	case etproblem.DrilldownBottleneck:
		return etproblem.BottleneckDrilldown{
			MachineCode: strings.TrimSpace(params.Get(ParamMachine)),
			PlanDate:    strings.TrimSpace(params.Get(ParamDate)),
		}

	case etproblem.DrilldownRoll:
		return etproblem.RollDrilldown{
			MachineCode: strings.TrimSpace(params.Get(ParamMachine)),
		}

	case etproblem.DrilldownRisk:
		return etproblem.RiskDrilldown{
			PlanDate: strings.TrimSpace(params.Get(ParamDate)),
		}

	case etproblem.DrilldownCapacityOpportunity:
		return etproblem.CapacityOpportunityDrilldown{
			MachineCode: strings.TrimSpace(params.Get(ParamMachine)),
			PlanDate:    strings.TrimSpace(params.Get(ParamDate)),
		}

	default:
		return nil
	}
}
