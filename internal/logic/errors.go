package logic

import "errors"

// 业务错误，handler 层据此映射HTTP状态码
var (
	ErrProjectNotFound = errors.New("项目不存在")
	ErrInvalidInput    = errors.New("无效的请求参数")
)

// InputError 输入校验错误，携带给用户看的消息
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func inputErr(message string) error {
	return &InputError{Message: message}
}
