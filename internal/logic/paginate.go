package logic

import (
	"github.com/openfund/ofs/pkg/api"
)

const (
	defaultLimit = 12
	maxLimit     = 100
)

// normalizePage 分页参数兜底
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// buildMeta 根据总数计算分页信息
func buildMeta(page, limit int, total int64) api.PaginationMeta {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return api.PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && total > 0,
	}
}

// paginateProjects 对内存中的已排序项目列表分页
func paginateProjects(items []api.Project, page, limit int) ([]api.Project, api.PaginationMeta) {
	page, limit = normalizePage(page, limit)
	total := int64(len(items))
	meta := buildMeta(page, limit, total)

	start := (page - 1) * limit
	if start >= len(items) {
		return []api.Project{}, meta
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], meta
}
