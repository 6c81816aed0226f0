package request

// RefreshRequest 手动刷新请求
// feeds 为空表示刷新全部 feed
type RefreshRequest struct {
	Feeds []string `json:"feeds" binding:"omitempty,dive,oneof=dayRisk bottleneck orders coldStock roll capacityOpportunity kpi"`
}
