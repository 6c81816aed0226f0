package problem

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/apimodel/response"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/pkg/errorx"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/pkg/ginx"
)

// Drilldown 解码下钻深链
// GET /api/v1/drilldown?dd=coldStock&machine=H031&age=30%2B&pressure=high
// 解码是防御式的：非法枚举值被丢弃，dd 缺失返回"无下钻打开"
func (h *ProblemHandler) Drilldown(c *gin.Context) {
	view := h.problemService.OpenDrilldown(c.Request.URL.Query())
	if view == nil {
		ginx.Success(c, gin.H{"open": false})
		return
	}

	ginx.Success(c, gin.H{
		"open":      true,
		"drilldown": response.FromDrilldownView(view),
	})
}

// DrilldownLink 生成问题的深链参数（分享链接）
// GET /api/v1/problems/:id/link
func (h *ProblemHandler) DrilldownLink(c *gin.Context) {
	problemID := c.Param("id")
	if problemID == "" {
		ginx.BadRequest(c, "problem id required")
		return
	}

	params, err := h.problemService.EncodeDrilldown(problemID)
	if err != nil {
		if errors.Is(err, errorx.ErrProblemNotFound) {
			ginx.NotFound(c, "problem not found")
			return
		}
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, gin.H{
		"query": params.Encode(),
	})
}

// Delta 对比历史修订与当前问题列表
// GET /api/v1/problems/delta?rev=123
// 历史修订已被淘汰时返回 404，客户端应全量拉取
func (h *ProblemHandler) Delta(c *gin.Context) {
	sinceRev, err := strconv.ParseInt(c.Query("rev"), 10, 64)
	if err != nil {
		ginx.BadRequest(c, "rev must be an integer revision")
		return
	}

	delta, ok := h.problemService.Delta(sinceRev)
	if !ok {
		ginx.NotFound(c, "revision expired, pull the full list")
		return
	}

	ginx.Success(c, delta)
}
