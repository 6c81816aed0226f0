package problem

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/apimodel/response"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/pkg/errorx"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/pkg/ginx"
)

// Workbench 推导工作台导航目标
// GET /api/v1/workbench?id=urgent_orders     —— 按问题推导（点击"去处理"）
// GET /api/v1/workbench?dd=roll&machine=H031 —— 按深链参数推导（分享链接落地）
// id 优先；两者都缺或无法识别时报 400
func (h *ProblemHandler) Workbench(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		target, err := h.problemService.WorkbenchForProblem(id)
		if err != nil {
			if errors.Is(err, errorx.ErrProblemNotFound) {
				ginx.NotFound(c, "problem not found")
				return
			}
			ginx.InternalError(c, err.Error())
			return
		}
		ginx.Success(c, response.FromWorkbenchTarget(target))
		return
	}

	target, err := h.problemService.WorkbenchForParams(c.Request.URL.Query())
	if err != nil {
		ginx.BadRequest(c, "no drilldown resolvable from params")
		return
	}
	ginx.Success(c, response.FromWorkbenchTarget(target))
}
