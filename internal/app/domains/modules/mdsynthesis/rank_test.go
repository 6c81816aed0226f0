package mdsynthesis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etproblem"
)

func TestRankStableBySeverity(t *testing.T) {
	problems := []etproblem.RiskProblem{
		{ID: "a", Severity: etproblem.SeverityP2},
		{ID: "b", Severity: etproblem.SeverityP0},
		{ID: "c", Severity: etproblem.SeverityP1},
		{ID: "d", Severity: etproblem.SeverityP0},
	}

	ranked := Rank(problems)

	// 同严重度保持输入相对顺序：b 在 d 前
	assert.Equal(t, []string{"b", "d", "c", "a"}, idsOf(ranked))
	// 原切片不被打乱
	assert.Equal(t, []string{"a", "b", "c", "d"}, idsOf(problems))
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}

func TestFilterMaxSeverity(t *testing.T) {
	problems := []etproblem.RiskProblem{
		{ID: "a", Severity: etproblem.SeverityP0},
		{ID: "b", Severity: etproblem.SeverityP1},
		{ID: "c", Severity: etproblem.SeverityP2},
		{ID: "d", Severity: etproblem.SeverityP3},
	}

	t.Run("p1_keeps_p0_p1", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, idsOf(FilterMaxSeverity(problems, etproblem.SeverityP1)))
	})

	t.Run("p3_keeps_all", func(t *testing.T) {
		assert.Len(t, FilterMaxSeverity(problems, etproblem.SeverityP3), 4)
	})

	t.Run("p0_keeps_only_p0", func(t *testing.T) {
		assert.Equal(t, []string{"a"}, idsOf(FilterMaxSeverity(problems, etproblem.SeverityP0)))
	})
}
