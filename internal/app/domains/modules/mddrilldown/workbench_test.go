package mddrilldown

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etfeed"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etproblem"
)

func TestTabForKind(t *testing.T) {
	cases := []struct {
		kind etproblem.DrilldownKind
		tab  etproblem.WorkbenchTab
	}{
		{etproblem.DrilldownOrders, etproblem.TabMaterials},
		{etproblem.DrilldownColdStock, etproblem.TabMaterials},
		{etproblem.DrilldownRisk, etproblem.TabCapacity},
		{etproblem.DrilldownBottleneck, etproblem.TabCapacity},
		{etproblem.DrilldownCapacityOpportunity, etproblem.TabCapacity},
		{etproblem.DrilldownRoll, etproblem.TabVisualization},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			assert.Equal(t, tc.tab, TabForKind(tc.kind))
		})
	}
}

func TestTargetForDrilldownCellFocus(t *testing.T) {
	target := TargetForDrilldown(etproblem.BottleneckDrilldown{
		MachineCode: "H032",
		PlanDate:    "2026-08-25",
	}, Defaults{})

	assert.Equal(t, etproblem.TabCapacity, target.Tab)
	assert.True(t, target.CellFocus)

	params := target.Params()
	assert.Equal(t, "gantt", params.Get("focus"))
	assert.Equal(t, "1", params.Get("openCell"))
	assert.Equal(t, "H032", params.Get("machine"))
	assert.Equal(t, "2026-08-25", params.Get("date"))
}

func TestTargetForDrilldownOrders(t *testing.T) {
	target := TargetForDrilldown(etproblem.OrdersDrilldown{Urgency: etfeed.UrgencyL3}, Defaults{MachineCode: "H031"})

	assert.Equal(t, etproblem.TabMaterials, target.Tab)
	assert.Equal(t, "L3", target.UrgencyLevel)
	assert.False(t, target.CellFocus)
	// orders 不是机组形态，不种默认机组
	assert.Empty(t, target.MachineCode)

	params := target.Params()
	assert.Equal(t, "L3", params.Get("urgency"))
	assert.Empty(t, params.Get("focus"))
}

func TestTargetForDrilldownNil(t *testing.T) {
	target := TargetForDrilldown(nil, Defaults{MachineCode: "H031"})
	assert.Equal(t, etproblem.TabMaterials, target.Tab)
	assert.Empty(t, target.MachineCode)
}

func TestSeedDefaultMachine(t *testing.T) {
	t.Run("roll_without_machine_seeded", func(t *testing.T) {
		target := TargetForDrilldown(etproblem.RollDrilldown{}, Defaults{MachineCode: "H031"})
		assert.Equal(t, "H031", target.MachineCode)
	})

	t.Run("explicit_machine_wins", func(t *testing.T) {
		target := TargetForDrilldown(etproblem.RollDrilldown{MachineCode: "H033"}, Defaults{MachineCode: "H031"})
		assert.Equal(t, "H033", target.MachineCode)
	})

	t.Run("risk_not_machine_shaped", func(t *testing.T) {
		target := TargetForDrilldown(etproblem.RiskDrilldown{PlanDate: "2026-08-24"}, Defaults{MachineCode: "H031"})
		assert.Empty(t, target.MachineCode)
	})

	t.Run("no_defaults_no_seed", func(t *testing.T) {
		target := TargetForDrilldown(etproblem.RollDrilldown{}, Defaults{})
		assert.Empty(t, target.MachineCode)
	})
}

func TestTargetForProblemHintsOverride(t *testing.T) {
	p := etproblem.RiskProblem{
		ID:           "roll_campaign",
		Severity:     etproblem.SeverityP0,
		Drilldown:    etproblem.RollDrilldown{MachineCode: "H031"},
		WorkbenchTab: etproblem.TabCapacity, // 显式页签优先于下钻推导
		PlanDate:     "2026-08-24",
		Context:      "roll_campaign",
	}

	target := TargetForProblem(p, Defaults{})
	assert.Equal(t, etproblem.TabCapacity, target.Tab)
	assert.Equal(t, "H031", target.MachineCode)
	assert.Equal(t, "2026-08-24", target.PlanDate)
	assert.Equal(t, "roll_campaign", target.Context)

	params := target.Params()
	assert.Equal(t, "roll_campaign", params.Get("context"))
}
