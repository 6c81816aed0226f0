package etproblem

import "github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etfeed"

// Severity 问题严重度（固定四级，P0 最高）
type Severity string

const (
	SeverityP0 Severity = "P0" // 立即处理
	SeverityP1 Severity = "P1" // 当班处理
	SeverityP2 Severity = "P2" // 计划内处理
	SeverityP3 Severity = "P3" // 关注即可
)

// Rank 返回排序权重，P0 为 0（最靠前）
// 未知值排在最后，保证排序总是可终止
func (s Severity) Rank() int {
	switch s {
	case SeverityP0:
		return 0
	case SeverityP1:
		return 1
	case SeverityP2:
		return 2
	case SeverityP3:
		return 3
	default:
		return 4
	}
}

// MoreUrgentThan 严格更紧急
func (s Severity) MoreUrgentThan(other Severity) bool {
	return s.Rank() < other.Rank()
}

// SeverityFromRiskLevel 风险等级到严重度的共享映射表
// CRITICAL→P0，HIGH→P1，MEDIUM→P2，LOW 不构成问题（返回 false）
func SeverityFromRiskLevel(level etfeed.RiskLevel) (Severity, bool) {
	switch level {
	case etfeed.RiskLevelCritical:
		return SeverityP0, true
	case etfeed.RiskLevelHigh:
		return SeverityP1, true
	case etfeed.RiskLevelMedium:
		return SeverityP2, true
	default:
		return "", false
	}
}
