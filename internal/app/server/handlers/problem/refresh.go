package problem

import (
	"github.com/gin-gonic/gin"

	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/apimodel/request"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/apimodel/response"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/pkg/ginx"
)

// Refresh 手动刷新 feed（错误横幅的重试按钮）
// POST /api/v1/problems/refresh
// 请求体可指定 feed 子集；空体或空列表刷新全部
func (h *ProblemHandler) Refresh(c *gin.Context) {
	var req request.RefreshRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			ginx.BadRequestWithValidation(c, err)
			return
		}
	}

	ctx := c.Request.Context()
	if len(req.Feeds) == 0 {
		h.problemService.RefreshAll(ctx)
	} else {
		// 每个 feed 独立刷新，单个失败不影响其余
		for _, feed := range req.Feeds {
			if err := h.problemService.RefreshFeed(ctx, feed); err != nil {
				h.logger.Warnf(ctx, "[ProblemHandler] refresh feed failed: feed=%s, error=%v", feed, err)
			}
		}
	}

	problems, revision := h.problemService.Problems("")
	ginx.Success(c, response.FromProblems(problems, revision, h.problemService.AnyError()))
}

// Status 细粒度 feed 状态映射
// GET /api/v1/feeds/status
func (h *ProblemHandler) Status(c *gin.Context) {
	ginx.Success(c, gin.H{
		"any_error": h.problemService.AnyError(),
		"feeds":     response.FromFeedStatus(h.problemService.FeedStatus()),
	})
}
