package mdsynthesis

import (
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etproblem"
)

// Delta 两次合成结果之间的变化（按规则 ID 对齐）
type Delta struct {
	Resolved []string `json:"resolved"` // 上次存在，本次消失
	Added    []string `json:"added"`    // 上次不存在，本次出现
	Worsened []string `json:"worsened"` // 两次都在，严重度升级
	Improved []string `json:"improved"` // 两次都在，严重度降级
}

// Empty 是否没有任何变化
func (d Delta) Empty() bool {
	return len(d.Resolved) == 0 && len(d.Added) == 0 &&
		len(d.Worsened) == 0 && len(d.Improved) == 0
}

// Diff 对比两次合成结果
// 独立于合成器的纯函数：遍历顺序跟随输入列表，输出顺序确定
func Diff(prev, next []etproblem.RiskProblem) Delta {
	var d Delta

	prevByID := make(map[string]etproblem.RiskProblem, len(prev))
	for _, p := range prev {
		prevByID[p.ID] = p
	}
	nextByID := make(map[string]etproblem.RiskProblem, len(next))
	for _, p := range next {
		nextByID[p.ID] = p
	}

	for _, p := range prev {
		if _, ok := nextByID[p.ID]; !ok {
			d.Resolved = append(d.Resolved, p.ID)
		}
	}
	for _, p := range next {
		old, ok := prevByID[p.ID]
		if !ok {
			d.Added = append(d.Added, p.ID)
			continue
		}
		if p.Severity.MoreUrgentThan(old.Severity) {
			d.Worsened = append(d.Worsened, p.ID)
		} else if old.Severity.MoreUrgentThan(p.Severity) {
			d.Improved = append(d.Improved, p.ID)
		}
	}
	return d
}
