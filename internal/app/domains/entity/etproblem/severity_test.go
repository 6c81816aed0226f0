package etproblem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etfeed"
)

func TestSeverityRankTotalOrder(t *testing.T) {
	assert.True(t, SeverityP0.MoreUrgentThan(SeverityP1))
	assert.True(t, SeverityP1.MoreUrgentThan(SeverityP2))
	assert.True(t, SeverityP2.MoreUrgentThan(SeverityP3))
	assert.False(t, SeverityP3.MoreUrgentThan(SeverityP0))
	// 未知值排在最后
	assert.True(t, SeverityP3.MoreUrgentThan(Severity("P9")))
}

func TestSeverityFromRiskLevel(t *testing.T) {
	sev, ok := SeverityFromRiskLevel(etfeed.RiskLevelCritical)
	assert.True(t, ok)
	assert.Equal(t, SeverityP0, sev)

	sev, ok = SeverityFromRiskLevel(etfeed.RiskLevelHigh)
	assert.True(t, ok)
	assert.Equal(t, SeverityP1, sev)

	sev, ok = SeverityFromRiskLevel(etfeed.RiskLevelMedium)
	assert.True(t, ok)
	assert.Equal(t, SeverityP2, sev)

	_, ok = SeverityFromRiskLevel(etfeed.RiskLevelLow)
	assert.False(t, ok)
}
