package response

// ProblemListResponse 问题列表响应（DTO）
type ProblemListResponse struct {
	Revision int64              `json:"revision"`
	AnyError bool               `json:"any_error"`
	Problems []*ProblemResponse `json:"problems"`
}

// ProblemResponse 单条问题响应（DTO）
type ProblemResponse struct {
	ID        string            `json:"id"`
	Severity  string            `json:"severity"`
	Title     string            `json:"title"`
	Detail    string            `json:"detail,omitempty"`
	Impact    string            `json:"impact,omitempty"`
	TimeHint  string            `json:"time_hint,omitempty"`
	Count     int               `json:"count,omitempty"`
	Drilldown map[string]string `json:"drilldown,omitempty"` // 扁平深链参数

	MachineCode string `json:"machine_code,omitempty"`
	PlanDate    string `json:"plan_date,omitempty"`
	Context     string `json:"context,omitempty"`
	ContractNo  string `json:"contract_no,omitempty"`
}

// DrilldownResponse 下钻视图响应（DTO）
type DrilldownResponse struct {
	Kind      string            `json:"kind"`
	Feed      string            `json:"feed"`
	FeedState string            `json:"feed_state"`
	FeedError string            `json:"feed_error,omitempty"`
	Params    map[string]string `json:"params"`
}

// WorkbenchResponse 工作台导航目标响应（DTO）
type WorkbenchResponse struct {
	Tab    string            `json:"tab"`
	Params map[string]string `json:"params"`
}

// FeedStatusResponse 单个 feed 状态响应（DTO）
type FeedStatusResponse struct {
	State     string `json:"state"`
	Error     string `json:"error,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
