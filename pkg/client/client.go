// Package client 后端 REST 接口的类型化客户端
// 响应在解码边界校验后才交给调用方，非2xx响应转为带状态码与消息的 APIError
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/openfund/ofs/pkg/client/session"
)

// Client REST 客户端
type Client struct {
	baseURL string
	httpc   *http.Client
	sess    session.Store
	token   string
}

// Option 客户端可选配置
type Option func(*Client)

// WithHTTPClient 指定底层 http.Client
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithSession 注入钱包会话，请求会带上 X-Wallet-Address 头
func WithSession(sess session.Store) Option {
	return func(c *Client) {
		c.sess = sess
	}
}

// WithBearerToken 设置 Authorization 头（透传，客户端不解析）
func WithBearerToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New 创建客户端
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do 发送请求并解码响应
// 204 时不解码直接返回；请求不重试，不设默认超时，由调用方通过 ctx 控制
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.sess != nil {
		if addr, ok := c.sess.Address(); ok {
			req.Header.Set("X-Wallet-Address", addr)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	parsed := parseJSONSafe(raw)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			Status:  resp.StatusCode,
			Message: extractMessage(parsed, resp.Status),
			Body:    parsed,
		}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Err: err}
	}

	if v, ok := out.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return &DecodeError{Err: err}
		}
	}

	return nil
}

// parseJSONSafe 尽力把响应体解析为 JSON，失败时保留原始文本
func parseJSONSafe(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	var parsed interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return string(raw)
	}
	return parsed
}

// extractMessage 从响应体的 message 字段提取错误消息，缺失时用状态文本
func extractMessage(parsed interface{}, statusText string) string {
	if obj, ok := parsed.(map[string]interface{}); ok {
		if msg, ok := obj["message"].(string); ok && msg != "" {
			return msg
		}
	}
	if statusText != "" {
		return statusText
	}
	return "request failed"
}

// encodeQuery 拼接查询串，零值参数不携带
func encodeQuery(values url.Values) string {
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

func pageQuery(page, limit int) url.Values {
	values := url.Values{}
	if page > 0 {
		values.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	return values
}
