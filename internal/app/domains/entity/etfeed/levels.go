package etfeed

import "strings"

// RiskLevel 风险等级（决策引擎输出的四级枚举）
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelMedium   RiskLevel = "MEDIUM"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelCritical RiskLevel = "CRITICAL"
)

// Rank 返回风险等级权重，CRITICAL 最高
// 用于最差风险日归约的复合排序（等级优先于评分）
func (l RiskLevel) Rank() int {
	switch l {
	case RiskLevelCritical:
		return 3
	case RiskLevelHigh:
		return 2
	case RiskLevelMedium:
		return 1
	case RiskLevelLow:
		return 0
	default:
		return -1
	}
}

// ParseRiskLevel 解析风险等级（大小写不敏感，统一归一化为大写）
// 未知值返回 false，调用方应丢弃该字段而不是报错
func ParseRiskLevel(s string) (RiskLevel, bool) {
	switch RiskLevel(strings.ToUpper(strings.TrimSpace(s))) {
	case RiskLevelLow:
		return RiskLevelLow, true
	case RiskLevelMedium:
		return RiskLevelMedium, true
	case RiskLevelHigh:
		return RiskLevelHigh, true
	case RiskLevelCritical:
		return RiskLevelCritical, true
	default:
		return "", false
	}
}

// UrgencyLevel 订单紧急等级，L3 为最高（必须立即处理）
type UrgencyLevel string

const (
	UrgencyL0 UrgencyLevel = "L0"
	UrgencyL1 UrgencyLevel = "L1"
	UrgencyL2 UrgencyLevel = "L2"
	UrgencyL3 UrgencyLevel = "L3"
)

// ParseUrgencyLevel 解析紧急等级，未知值返回 false
func ParseUrgencyLevel(s string) (UrgencyLevel, bool) {
	switch UrgencyLevel(strings.ToUpper(strings.TrimSpace(s))) {
	case UrgencyL0:
		return UrgencyL0, true
	case UrgencyL1:
		return UrgencyL1, true
	case UrgencyL2:
		return UrgencyL2, true
	case UrgencyL3:
		return UrgencyL3, true
	default:
		return "", false
	}
}

// FailType 订单/物料失败类型
type FailType string

const (
	FailTypeOverdue     FailType = "OVERDUE"     // 已逾期
	FailTypeUnscheduled FailType = "UNSCHEDULED" // 未排产
	FailTypeBlocked     FailType = "BLOCKED"     // 被锁定
)

// AgeBin 冷坯库龄分组（固定四档）
type AgeBin string

const (
	AgeBin0To7   AgeBin = "0-7"
	AgeBin8To14  AgeBin = "8-14"
	AgeBin15To30 AgeBin = "15-30"
	AgeBin30Plus AgeBin = "30+"
)

// ParseAgeBin 解析库龄分组，未知值返回 false
func ParseAgeBin(s string) (AgeBin, bool) {
	switch AgeBin(strings.TrimSpace(s)) {
	case AgeBin0To7:
		return AgeBin0To7, true
	case AgeBin8To14:
		return AgeBin8To14, true
	case AgeBin15To30:
		return AgeBin15To30, true
	case AgeBin30Plus:
		return AgeBin30Plus, true
	default:
		return "", false
	}
}

// RollAlertStatus 轧辊周期告警状态（四态）
type RollAlertStatus string

const (
	RollStatusNormal   RollAlertStatus = "NORMAL"
	RollStatusSuggest  RollAlertStatus = "SUGGEST"
	RollStatusWarning  RollAlertStatus = "WARNING"
	RollStatusHardStop RollAlertStatus = "HARD_STOP"
)

// rollLevelMapping 后端告警枚举到四态状态的映射表
// 包含历史版本的旧枚举值，统一小写后查表
var rollLevelMapping = map[string]RollAlertStatus{
	"normal":    RollStatusNormal,
	"ok":        RollStatusNormal,
	"none":      RollStatusNormal,
	"suggest":   RollStatusSuggest,
	"advise":    RollStatusSuggest,
	"recommend": RollStatusSuggest,
	"warning":   RollStatusWarning,
	"warn":      RollStatusWarning,
	"alert":     RollStatusWarning,
	"hard_stop": RollStatusHardStop,
	"hardstop":  RollStatusHardStop,
	"emergency": RollStatusHardStop,
	"critical":  RollStatusHardStop,
}

// RollStatusFromLevel 将后端告警等级映射为四态状态（大小写不敏感）
// 未知/历史遗留值降级为 NORMAL，由 summary 统计字段兜底触发规则
func RollStatusFromLevel(level string) RollAlertStatus {
	if st, ok := rollLevelMapping[strings.ToLower(strings.TrimSpace(level))]; ok {
		return st
	}
	return RollStatusNormal
}
