package client

import "fmt"

// APIError 非2xx响应的结构化错误
// Body 保留解析后的原始响应体供调用方检查
type APIError struct {
	Status  int
	Message string
	Body    interface{}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// IsNotFound 是否为 404
func (e *APIError) IsNotFound() bool {
	return e.Status == 404
}

// DecodeError 响应通过了HTTP层但未通过解码边界校验
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
