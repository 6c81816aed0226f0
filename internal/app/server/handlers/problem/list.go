package problem

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/apimodel/response"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/entity/etproblem"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/pkg/ginx"
)

// Smart Wait 最长等待时间
const maxWaitSeconds = 30

// List 查询当前问题列表
// GET /api/v1/problems?severity=P1&wait=10&rev=123
// severity: 作用域过滤（保留不低于该紧急程度的问题，如 P1 表示只看 P0/P1）
// wait+rev: Smart Wait 长轮询，rev 仍是最新时等待新一轮合成
func (h *ProblemHandler) List(c *gin.Context) {
	var maxSeverity etproblem.Severity
	if s := c.Query("severity"); s != "" {
		switch etproblem.Severity(s) {
		case etproblem.SeverityP0, etproblem.SeverityP1, etproblem.SeverityP2, etproblem.SeverityP3:
			maxSeverity = etproblem.Severity(s)
		default:
			ginx.BadRequest(c, "severity must be one of P0/P1/P2/P3")
			return
		}
	}

	// Smart Wait：客户端带上次修订号等待更新
	if waitStr := c.Query("wait"); waitStr != "" {
		waitSeconds, err := strconv.Atoi(waitStr)
		if err != nil || waitSeconds <= 0 {
			ginx.BadRequest(c, "wait must be a positive integer")
			return
		}
		if waitSeconds > maxWaitSeconds {
			waitSeconds = maxWaitSeconds
		}

		sinceRev, _ := strconv.ParseInt(c.Query("rev"), 10, 64)
		timeout := time.Duration(waitSeconds) * time.Second

		if _, updated := h.problemService.WaitForUpdate(c.Request.Context(), sinceRev, timeout); !updated {
			ginx.NotModified(c, sinceRev)
			return
		}
	}

	problems, revision := h.problemService.Problems(maxSeverity)
	ginx.Success(c, response.FromProblems(problems, revision, h.problemService.AnyError()))
}
