package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/openfund/ofs/pkg/api"
)

// ListProjects 获取项目列表
func (c *Client) ListProjects(ctx context.Context, q api.ProjectListQuery) (*api.Paginated[api.Project], error) {
	values := url.Values{}
	if q.Category != "" {
		values.Set("category", q.Category)
	}
	if q.Status != "" {
		values.Set("status", q.Status)
	}
	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	var out api.Paginated[api.Project]
	if err := c.do(ctx, http.MethodGet, "/api/projects"+encodeQuery(values), nil, &out); err != nil {
		return nil, err
	}

	for i := range out.Items {
		if err := out.Items[i].Validate(); err != nil {
			return nil, &DecodeError{Err: err}
		}
	}

	return &out, nil
}

// GetProject 获取单个项目
func (c *Client) GetProject(ctx context.Context, projectID string) (*api.Project, error) {
	var out api.Project
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+url.PathEscape(projectID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProject 创建项目
func (c *Client) CreateProject(ctx context.Context, body api.CreateProjectBody) (*api.Project, error) {
	var out api.Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProject 更新项目
func (c *Client) UpdateProject(ctx context.Context, projectID string, body api.UpdateProjectBody) (*api.Project, error) {
	var out api.Project
	if err := c.do(ctx, http.MethodPatch, "/api/projects/"+url.PathEscape(projectID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProject 删除项目，后端返回 204
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	return c.do(ctx, http.MethodDelete, "/api/projects/"+url.PathEscape(projectID), nil, nil)
}
