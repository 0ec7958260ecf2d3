package logic

import (
	"strconv"

	"github.com/openfund/ofs/internal/model"
	"github.com/openfund/ofs/pkg/api"
)

// ProjectToAPI 将持久化模型转换为接口DTO
func ProjectToAPI(m *model.Project) api.Project {
	p := api.Project{
		ID:           strconv.FormatInt(m.ID, 10),
		Title:        m.Title,
		Description:  m.Description,
		Category:     m.Category,
		Status:       api.ProjectStatus(m.Status),
		ThumbnailURL: m.ThumbnailURL,
		CoverURL:     m.CoverURL,
		Story:        m.Story,
		GoalAmount:   m.GoalAmount,
		RaisedAmount: m.RaisedAmount,
		Supporters:   m.Supporters,
		DaysLeft:     m.DaysLeft,
		CreatedAt:    m.CreatedAt,
		Creator: api.Creator{
			WalletAddress: m.CreatorAddress,
			Verified:      m.CreatorVerified,
			PastProjects:  m.CreatorPastProjects,
		},
	}

	for _, u := range m.Updates {
		p.Updates = append(p.Updates, api.ProjectUpdate{
			ID:      strconv.FormatInt(u.ID, 10),
			Date:    u.Date,
			Title:   u.Title,
			Content: u.Content,
		})
	}

	for _, r := range m.Rewards {
		p.Rewards = append(p.Rewards, api.Reward{
			ID:          strconv.FormatInt(r.ID, 10),
			Amount:      r.Amount,
			Title:       r.Title,
			Description: r.Description,
			Available:   r.Available,
		})
	}

	return p
}

// FundingToAPI 将出资记录转换为接口DTO
func FundingToAPI(m *model.FundingRecord) api.FundingItem {
	return api.FundingItem{
		ID:         strconv.FormatInt(m.ID, 10),
		ProjectID:  strconv.FormatInt(m.ProjectID, 10),
		FromWallet: m.FromWallet,
		Amount:     m.Amount,
		Token:      m.Token,
		Message:    m.Message,
		TxHash:     m.TxHash,
		Verified:   m.Verified,
		CreatedAt:  m.CreatedAt,
	}
}
