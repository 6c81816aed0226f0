package etfeed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRiskLevelNormalizesCase(t *testing.T) {
	level, ok := ParseRiskLevel("high")
	assert.True(t, ok)
	assert.Equal(t, RiskLevelHigh, level)

	level, ok = ParseRiskLevel(" Critical ")
	assert.True(t, ok)
	assert.Equal(t, RiskLevelCritical, level)

	_, ok = ParseRiskLevel("extreme")
	assert.False(t, ok)
}

func TestRiskLevelRank(t *testing.T) {
	assert.Greater(t, RiskLevelCritical.Rank(), RiskLevelHigh.Rank())
	assert.Greater(t, RiskLevelHigh.Rank(), RiskLevelMedium.Rank())
	assert.Greater(t, RiskLevelMedium.Rank(), RiskLevelLow.Rank())
	assert.Equal(t, -1, RiskLevel("EXTREME").Rank())
}

func TestRollStatusFromLevel(t *testing.T) {
	cases := []struct {
		level string
		want  RollAlertStatus
	}{
		{"hard_stop", RollStatusHardStop},
		{"HARDSTOP", RollStatusHardStop},
		{"Emergency", RollStatusHardStop},
		{"critical", RollStatusHardStop},
		{"warning", RollStatusWarning},
		{"warn", RollStatusWarning},
		{"alert", RollStatusWarning},
		{"suggest", RollStatusSuggest},
		{"advise", RollStatusSuggest},
		{"recommend", RollStatusSuggest},
		{"normal", RollStatusNormal},
		{"ok", RollStatusNormal},
		// 未知值降级为 NORMAL，不报错
		{"whatever", RollStatusNormal},
		{"", RollStatusNormal},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, RollStatusFromLevel(tc.level), "level=%q", tc.level)
	}
}

func TestParseAgeBin(t *testing.T) {
	bin, ok := ParseAgeBin("30+")
	assert.True(t, ok)
	assert.Equal(t, AgeBin30Plus, bin)

	_, ok = ParseAgeBin("ancient")
	assert.False(t, ok)
}
