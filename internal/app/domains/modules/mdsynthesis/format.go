package mdsynthesis

import "fmt"

// FormatTonnage 吨位展示模板
// 1000 吨以下整数吨（"850t"），1000 吨及以上换算千吨保留三位（"1.250千吨"）
func FormatTonnage(t float64) string {
	if t >= 1000 {
		return fmt.Sprintf("%.3f千吨", t/1000)
	}
	return fmt.Sprintf("%.0ft", t)
}

// FormatDueHint 交期提示模板
// minDaysToDue 为负表示已逾期
func FormatDueHint(minDaysToDue int) string {
	switch {
	case minDaysToDue < 0:
		return fmt.Sprintf("最紧急订单已逾期%d天", -minDaysToDue)
	case minDaysToDue == 0:
		return "最紧急订单今日到期"
	default:
		return fmt.Sprintf("最紧急订单%d天后到期", minDaysToDue)
	}
}
