package rpfeed

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etfeed"
)

// FeedRepositoryImpl 决策 feed 仓储实现（MySQL）
// 所有表由排程决策引擎写入，本服务只读
type FeedRepositoryImpl struct {
	db *gorm.DB
}

// NewFeedRepository 创建 feed 仓储实例
func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &FeedRepositoryImpl{db: db}
}

// ListDaySummaries 读取单日风险汇总（按计划日升序，保证归约结果确定）
func (r *FeedRepositoryImpl) ListDaySummaries(ctx context.Context, versionID string) ([]etfeed.DaySummary, error) {
	var rows []etfeed.DaySummary
	err := r.db.WithContext(ctx).
		Where("version_id = ?", versionID).
		Order("plan_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListBottleneckPoints 读取机组瓶颈点
func (r *FeedRepositoryImpl) ListBottleneckPoints(ctx context.Context, versionID string) ([]etfeed.BottleneckPoint, error) {
	var rows []etfeed.BottleneckPoint
	err := r.db.WithContext(ctx).
		Where("version_id = ?", versionID).
		Order("plan_date ASC, machine_code ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListOrderFailures 读取订单/物料失败明细
func (r *FeedRepositoryImpl) ListOrderFailures(ctx context.Context, versionID string) ([]etfeed.OrderFailure, error) {
	var rows []etfeed.OrderFailure
	err := r.db.WithContext(ctx).
		Where("version_id = ?", versionID).
		Order("due_date ASC, contract_no ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetColdStock 读取冷坯库存分组及汇总
// HighPressureCount 由 SQL 聚合得出，与明细同一事务内读取
func (r *FeedRepositoryImpl) GetColdStock(ctx context.Context, versionID string) (*etfeed.ColdStockData, error) {
	data := &etfeed.ColdStockData{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("version_id = ?", versionID).
			Order("machine_code ASC, age_bin ASC").
			Find(&data.Buckets).Error; err != nil {
			return err
		}

		var highPressure int64
		if err := tx.Model(&etfeed.ColdStockBucket{}).
			Where("version_id = ? AND pressure_level IN ?", versionID,
				[]etfeed.RiskLevel{etfeed.RiskLevelHigh, etfeed.RiskLevelCritical}).
			Count(&highPressure).Error; err != nil {
			return err
		}
		data.Summary.HighPressureCount = int(highPressure)

		for _, b := range data.Buckets {
			data.Summary.TotalWeightT += b.WeightT
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// GetRollAlerts 读取轧辊周期告警及汇总
// NearHardStopCount 定义：归一化状态为 HARD_STOP 的机组数
func (r *FeedRepositoryImpl) GetRollAlerts(ctx context.Context, versionID string) (*etfeed.RollData, error) {
	data := &etfeed.RollData{}

	err := r.db.WithContext(ctx).
		Where("version_id = ?", versionID).
		Order("remaining_tonnage_t ASC").
		Find(&data.Alerts).Error
	if err != nil {
		return nil, err
	}

	for _, a := range data.Alerts {
		if a.Status() == etfeed.RollStatusHardStop {
			data.Summary.NearHardStopCount++
		}
	}
	return data, nil
}

// ListCapacityOpportunities 读取产能机会点
func (r *FeedRepositoryImpl) ListCapacityOpportunities(ctx context.Context, versionID string) ([]etfeed.CapacityOpportunity, error) {
	var rows []etfeed.CapacityOpportunity
	err := r.db.WithContext(ctx).
		Where("version_id = ?", versionID).
		Order("plan_date ASC, machine_code ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetGlobalKPI 读取全局聚合指标，缺失时返回 nil 而非错误
func (r *FeedRepositoryImpl) GetGlobalKPI(ctx context.Context, versionID string) (*etfeed.GlobalKPI, error) {
	var kpi etfeed.GlobalKPI
	err := r.db.WithContext(ctx).
		Where("version_id = ?", versionID).
		First(&kpi).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &kpi, nil
}
