package mdsynthesis

import (
	"sort"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etproblem"
)

// Rank 按严重度稳定排序（P0 在前），返回新切片
// 只按严重度一个键排序：同严重度保持合成顺序，
// 这是与前端作用域过滤（"只看P0/P1"）的明确契约，不允许加次级排序键
func Rank(problems []etproblem.RiskProblem) []etproblem.RiskProblem {
	ranked := make([]etproblem.RiskProblem, len(problems))
	copy(ranked, problems)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Severity.Rank() < ranked[j].Severity.Rank()
	})
	return ranked
}

// FilterMaxSeverity 作用域过滤：只保留不低于 max 紧急程度的问题
// 例如 max=P1 时保留 P0/P1
func FilterMaxSeverity(problems []etproblem.RiskProblem, max etproblem.Severity) []etproblem.RiskProblem {
	out := make([]etproblem.RiskProblem, 0, len(problems))
	for _, p := range problems {
		if p.Severity.Rank() <= max.Rank() {
			out = append(out, p)
		}
	}
	return out
}
