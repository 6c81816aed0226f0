package problem

import (
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/domains/services/svproblem"
	"github.com/butianzheng/hot-rolling-finish-aps-sub001/internal/app/pkg/logger"
)

// ProblemHandler 风险问题 HTTP 处理器
type ProblemHandler struct {
	problemService *svproblem.ProblemService
	logger         logger.Logger
}

// NewProblemHandler 创建问题处理器实例
func NewProblemHandler(problemService *svproblem.ProblemService, log logger.Logger) *ProblemHandler {
	return &ProblemHandler{
		problemService: problemService,
		logger:         log,
	}
}
