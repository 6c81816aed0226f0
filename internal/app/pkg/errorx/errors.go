package errorx

import "errors"

// 定义业务错误
var (
	ErrUnknownFeed     = errors.New("unknown feed kind")
	ErrVersionNotFound = errors.New("plan version not found")
	ErrProblemNotFound = errors.New("problem not found")
	ErrFeedNotResolved = errors.New("feed not resolved")
	ErrWaitTimeout     = errors.New("wait for update timed out")
)

// BusinessError 业务错误结构
type BusinessError struct {
	Code    int
	Message string
	Details []ErrorDetail
}

// ErrorDetail 错误详情
type ErrorDetail struct {
	Path string
	Info string
}

// Error 实现 error 接口
func (e *BusinessError) Error() string {
	return e.Message
}

// NewBusinessError 创建业务错误
func NewBusinessError(code int, message string) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
	}
}
