package catalog

import (
	"sort"
	"strconv"

	"github.com/openfund/ofs/pkg/api"
)

// Params 列表筛选/排序参数
// 三个维度相互独立：筛选不影响排序方式，排序不影响筛选结果
type Params struct {
	Category string
	Status   api.StatusFilter
	Sort     api.SortOption
}

// Normalize 填充默认值：类目 All、状态 all、排序 trending
func (p Params) Normalize() Params {
	if p.Category == "" {
		p.Category = api.CategoryAll
	}
	if p.Status == "" {
		p.Status = api.StatusFilterAll
	}
	if p.Sort == "" {
		p.Sort = api.SortTrending
	}
	return p
}

// Apply 先筛选再对筛选结果排序，返回新切片，输入不被修改
func Apply(projects []api.Project, p Params) []api.Project {
	p = p.Normalize()
	return Sort(Filter(projects, p), p.Sort)
}

// Filter 按类目与状态过滤，两个条件同时满足才保留
func Filter(projects []api.Project, p Params) []api.Project {
	p = p.Normalize()
	out := make([]api.Project, 0, len(projects))
	for _, prj := range projects {
		categoryMatch := p.Category == api.CategoryAll || prj.Category == p.Category
		statusMatch := p.Status == api.StatusFilterAll || string(prj.Status) == string(p.Status)
		if categoryMatch && statusMatch {
			out = append(out, prj)
		}
	}
	return out
}

// Sort 按指定方式对副本做稳定排序
//   - trending: 已筹金额降序
//   - new: ID 按数值解析降序，不可解析的 ID 排到最后
//   - ending-soon: 剩余天数升序，0 或负数排最前
func Sort(projects []api.Project, by api.SortOption) []api.Project {
	out := make([]api.Project, len(projects))
	copy(out, projects)

	switch by {
	case api.SortNew:
		sort.SliceStable(out, func(i, j int) bool {
			a, aok := numericID(out[i].ID)
			b, bok := numericID(out[j].ID)
			if aok != bok {
				return aok
			}
			if !aok {
				return false
			}
			return a > b
		})
	case api.SortEndingSoon:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DaysLeft < out[j].DaysLeft
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].RaisedAmount > out[j].RaisedAmount
		})
	}

	return out
}

func numericID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
