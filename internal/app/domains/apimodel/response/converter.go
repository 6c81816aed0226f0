package response

import (
	"net/url"
	"time"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etproblem"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/modules/mddrilldown"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/modules/mdsnapshot"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/services/svproblem"
)

// FromProblems 从领域对象转换为列表响应 DTO
func FromProblems(problems []etproblem.RiskProblem, revision int64, anyError bool) *ProblemListResponse {
	out := make([]*ProblemResponse, 0, len(problems))
	for _, p := range problems {
		out = append(out, FromProblemEntity(p))
	}
	return &ProblemListResponse{
		Revision: revision,
		AnyError: anyError,
		Problems: out,
	}
}

// FromProblemEntity 从领域对象转换为响应 DTO
func FromProblemEntity(p etproblem.RiskProblem) *ProblemResponse {
	return &ProblemResponse{
		ID:          p.ID,
		Severity:    string(p.Severity),
		Title:       p.Title,
		Detail:      p.Detail,
		Impact:      p.Impact,
		TimeHint:    p.TimeHint,
		Count:       p.Count,
		Drilldown:   flattenParams(mddrilldown.Encode(p.Drilldown)),
		MachineCode: p.MachineCode,
		PlanDate:    p.PlanDate,
		Context:     p.Context,
		ContractNo:  p.ContractNo,
	}
}

// FromDrilldownView 从下钻视图转换为响应 DTO
func FromDrilldownView(v *svproblem.DrilldownView) *DrilldownResponse {
	return &DrilldownResponse{
		Kind:      string(v.Kind),
		Feed:      string(v.Feed),
		FeedState: string(v.Status.State),
		FeedError: v.Status.Error,
		Params:    flattenParams(v.Params),
	}
}

// FromWorkbenchTarget 从导航目标转换为响应 DTO
func FromWorkbenchTarget(t mddrilldown.WorkbenchTarget) *WorkbenchResponse {
	return &WorkbenchResponse{
		Tab:    string(t.Tab),
		Params: flattenParams(t.Params()),
	}
}

// FromFeedStatus 从 feed 状态映射转换为响应 DTO
func FromFeedStatus(status map[mdsnapshot.FeedKind]mdsnapshot.FeedStatus) map[string]*FeedStatusResponse {
	out := make(map[string]*FeedStatusResponse, len(status))
	for kind, st := range status {
		resp := &FeedStatusResponse{
			State: string(st.State),
			Error: st.Error,
		}
		if !st.UpdatedAt.IsZero() {
			resp.UpdatedAt = st.UpdatedAt.Format(time.RFC3339)
		}
		out[string(kind)] = resp
	}
	return out
}

// flattenParams 扁平参数投影（每个键单值，契约保证不会出现多值）
func flattenParams(params url.Values) map[string]string {
	out := make(map[string]string, len(params))
	for key := range params {
		out[key] = params.Get(key)
	}
	return out
}
