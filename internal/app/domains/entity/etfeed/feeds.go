package etfeed

import (
	"time"

	"gorm.io/datatypes"
)

// DaySummary 单日风险汇总（决策引擎按计划日输出）
type DaySummary struct {
	ID               int64                       `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	VersionID        string                      `gorm:"column:version_id;type:varchar(64);not null;index:idx_day_version" json:"version_id"`
	PlanDate         string                      `gorm:"column:plan_date;type:varchar(10);not null" json:"plan_date"`
	RiskScore        float64                     `gorm:"column:risk_score;not null" json:"risk_score"`
	RiskLevel        RiskLevel                   `gorm:"column:risk_level;type:varchar(16);not null" json:"risk_level"`
	TopReasons       datatypes.JSONSlice[string] `gorm:"column:top_reasons;type:json" json:"top_reasons"`
	InvolvedMachines datatypes.JSONSlice[string] `gorm:"column:involved_machines;type:json" json:"involved_machines"`
	CreatedAt        time.Time                   `gorm:"column:created_at;not null" json:"-"`
}

// TableName 指定表名
func (DaySummary) TableName() string {
	return "risk_day_summaries"
}

// BottleneckPoint 机组瓶颈点（机组×计划日粒度）
type BottleneckPoint struct {
	ID              int64                       `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	VersionID       string                      `gorm:"column:version_id;type:varchar(64);not null;index:idx_bn_version" json:"version_id"`
	MachineCode     string                      `gorm:"column:machine_code;type:varchar(32);not null" json:"machine_code"`
	PlanDate        string                      `gorm:"column:plan_date;type:varchar(10);not null" json:"plan_date"`
	BottleneckScore float64                     `gorm:"column:bottleneck_score;not null" json:"bottleneck_score"`
	BottleneckLevel RiskLevel                   `gorm:"column:bottleneck_level;type:varchar(16);not null" json:"bottleneck_level"`
	Reasons         datatypes.JSONSlice[string] `gorm:"column:reasons;type:json" json:"reasons"`
	CreatedAt       time.Time                   `gorm:"column:created_at;not null" json:"-"`
}

// TableName 指定表名
func (BottleneckPoint) TableName() string {
	return "bottleneck_points"
}

// OrderFailure 订单/物料失败明细
// DaysToDue 可为负数，表示已逾期天数
type OrderFailure struct {
	ID                 int64        `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	VersionID          string       `gorm:"column:version_id;type:varchar(64);not null;index:idx_of_version" json:"version_id"`
	ContractNo         string       `gorm:"column:contract_no;type:varchar(64);not null" json:"contract_no"`
	MaterialID         string       `gorm:"column:material_id;type:varchar(64)" json:"material_id,omitempty"`
	UrgencyLevel       UrgencyLevel `gorm:"column:urgency_level;type:varchar(8);not null" json:"urgency_level"`
	FailType           FailType     `gorm:"column:fail_type;type:varchar(16);not null" json:"fail_type"`
	DueDate            string       `gorm:"column:due_date;type:varchar(10);not null" json:"due_date"`
	DaysToDue          int          `gorm:"column:days_to_due;not null" json:"days_to_due"`
	UnscheduledWeightT float64      `gorm:"column:unscheduled_weight_t;not null" json:"unscheduled_weight_t"`
	MachineCode        string       `gorm:"column:machine_code;type:varchar(32)" json:"machine_code,omitempty"`
	CreatedAt          time.Time    `gorm:"column:created_at;not null" json:"-"`
}

// TableName 指定表名
func (OrderFailure) TableName() string {
	return "order_failures"
}

// ColdStockBucket 冷坯库存压力分组（机组×库龄粒度）
type ColdStockBucket struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	VersionID     string    `gorm:"column:version_id;type:varchar(64);not null;index:idx_cs_version" json:"version_id"`
	MachineCode   string    `gorm:"column:machine_code;type:varchar(32);not null" json:"machine_code"`
	AgeBin        AgeBin    `gorm:"column:age_bin;type:varchar(8);not null" json:"age_bin"`
	PressureLevel RiskLevel `gorm:"column:pressure_level;type:varchar(16);not null" json:"pressure_level"`
	PressureScore float64   `gorm:"column:pressure_score;not null" json:"pressure_score"`
	Count         int       `gorm:"column:count;not null" json:"count"`
	WeightT       float64   `gorm:"column:weight_t;not null" json:"weight_t"`
	CreatedAt     time.Time `gorm:"column:created_at;not null" json:"-"`
}

// TableName 指定表名
func (ColdStockBucket) TableName() string {
	return "cold_stock_buckets"
}

// ColdStockSummary 冷坯库存 feed 级汇总
type ColdStockSummary struct {
	HighPressureCount int     `json:"high_pressure_count"` // HIGH/CRITICAL 分组数
	TotalWeightT      float64 `json:"total_weight_t"`
}

// ColdStockData 冷坯库存 feed 的完整读取结果
type ColdStockData struct {
	Buckets []ColdStockBucket `json:"buckets"`
	Summary ColdStockSummary  `json:"summary"`
}

// RollCampaignAlert 轧辊周期告警明细（机组粒度）
type RollCampaignAlert struct {
	ID                int64     `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	VersionID         string    `gorm:"column:version_id;type:varchar(64);not null;index:idx_rc_version" json:"version_id"`
	MachineCode       string    `gorm:"column:machine_code;type:varchar(32);not null" json:"machine_code"`
	AlertLevel        string    `gorm:"column:alert_level;type:varchar(32);not null" json:"alert_level"`
	CurrentTonnageT   float64   `gorm:"column:current_tonnage_t;not null" json:"current_tonnage_t"`
	HardLimitT        float64   `gorm:"column:hard_limit_t;not null" json:"hard_limit_t"`
	RemainingTonnageT float64   `gorm:"column:remaining_tonnage_t;not null" json:"remaining_tonnage_t"`
	CreatedAt         time.Time `gorm:"column:created_at;not null" json:"-"`
}

// TableName 指定表名
func (RollCampaignAlert) TableName() string {
	return "roll_campaign_alerts"
}

// Status 按映射表归一化后的告警状态
func (a RollCampaignAlert) Status() RollAlertStatus {
	return RollStatusFromLevel(a.AlertLevel)
}

// RollSummary 轧辊周期 feed 级汇总
type RollSummary struct {
	NearHardStopCount int `json:"near_hard_stop_count"` // 接近硬停机的机组数
}

// RollData 轧辊周期 feed 的完整读取结果
type RollData struct {
	Alerts  []RollCampaignAlert `json:"alerts"`
	Summary RollSummary         `json:"summary"`
}

// CapacityOpportunity 产能机会点（机组×计划日粒度的可插单空间）
type CapacityOpportunity struct {
	ID                int64     `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	VersionID         string    `gorm:"column:version_id;type:varchar(64);not null;index:idx_co_version" json:"version_id"`
	MachineCode       string    `gorm:"column:machine_code;type:varchar(32);not null" json:"machine_code"`
	PlanDate          string    `gorm:"column:plan_date;type:varchar(10);not null" json:"plan_date"`
	OpportunitySpaceT float64   `gorm:"column:opportunity_space_t;not null" json:"opportunity_space_t"`
	CreatedAt         time.Time `gorm:"column:created_at;not null" json:"-"`
}

// TableName 指定表名
func (CapacityOpportunity) TableName() string {
	return "capacity_opportunities"
}

// GlobalKPI 全局聚合指标（决策引擎每个版本输出一行）
type GlobalKPI struct {
	ID                      int64     `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	VersionID               string    `gorm:"column:version_id;type:varchar(64);not null;uniqueIndex:uk_kpi_version" json:"version_id"`
	BlockedUrgentCount      int       `gorm:"column:blocked_urgent_count;not null" json:"blocked_urgent_count"`
	TotalUnscheduledWeightT float64   `gorm:"column:total_unscheduled_weight_t;not null" json:"total_unscheduled_weight_t"`
	ScheduleFillRate        float64   `gorm:"column:schedule_fill_rate;not null" json:"schedule_fill_rate"`
	CreatedAt               time.Time `gorm:"column:created_at;not null" json:"-"`
}

// TableName 指定表名
func (GlobalKPI) TableName() string {
	return "global_kpis"
}
