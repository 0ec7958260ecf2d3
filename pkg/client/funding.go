package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/openfund/ofs/internal/pricing"
	"github.com/openfund/ofs/pkg/api"
)

// GetProjectFunding 获取项目出资汇总
func (c *Client) GetProjectFunding(ctx context.Context, projectID string, page, limit int) (*api.FundingSummary, error) {
	path := "/api/projects/" + url.PathEscape(projectID) + "/funding" + encodeQuery(pageQuery(page, limit))

	var out api.FundingSummary
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateFunding 创建出资记录
func (c *Client) CreateFunding(ctx context.Context, projectID string, body api.CreateFundingBody) (*api.FundingItem, error) {
	var out api.FundingItem
	path := "/api/projects/" + url.PathEscape(projectID) + "/funding"
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QuoteFunding 请求后端计算出资金额明细
// amountInput 为用户原始输入串，原样传给后端
func (c *Client) QuoteFunding(ctx context.Context, projectID, amountInput string, mode pricing.Mode) (*pricing.Breakdown, error) {
	values := url.Values{}
	values.Set("amount", amountInput)
	values.Set("mode", string(mode))
	path := "/api/projects/" + url.PathEscape(projectID) + "/funding/quote" + encodeQuery(values)

	var out pricing.Breakdown
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
