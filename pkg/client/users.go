package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/openfund/ofs/pkg/api"
)

// GetUserStats 获取用户统计
func (c *Client) GetUserStats(ctx context.Context, walletAddress string) (*api.UserStats, error) {
	var out api.UserStats
	path := "/api/users/" + url.PathEscape(walletAddress) + "/stats"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserProjects 获取用户创建或出资过的项目
// listType 取 "created" 或 "funded"
func (c *Client) GetUserProjects(ctx context.Context, walletAddress, listType string, page, limit int) (*api.Paginated[api.Project], error) {
	values := pageQuery(page, limit)
	values.Set("type", listType)
	path := "/api/users/" + url.PathEscape(walletAddress) + "/projects" + encodeQuery(values)

	var out api.Paginated[api.Project]
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	for i := range out.Items {
		if err := out.Items[i].Validate(); err != nil {
			return nil, &DecodeError{Err: err}
		}
	}

	return &out, nil
}

// GetUserTransactions 获取用户交易历史
func (c *Client) GetUserTransactions(ctx context.Context, walletAddress string) (*api.UserTransactions, error) {
	var out api.UserTransactions
	path := "/api/users/" + url.PathEscape(walletAddress) + "/transactions"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
