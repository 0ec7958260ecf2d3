package api

// CreatorInput 创建/更新项目时的创建者信息
type CreatorInput struct {
	WalletAddress string `json:"walletAddress"`
	Verified      *bool  `json:"verified,omitempty"`
	PastProjects  *int   `json:"pastProjects,omitempty"`
}

// CreateProjectBody 创建项目请求体
type CreateProjectBody struct {
	Title        string        `json:"title" binding:"required"`
	GoalAmount   float64       `json:"goalAmount" binding:"required"`
	Description  string        `json:"description,omitempty"`
	Category     string        `json:"category,omitempty"`
	ThumbnailURL string        `json:"thumbnailUrl,omitempty"`
	CoverURL     string        `json:"coverUrl,omitempty"`
	Story        string        `json:"story,omitempty"`
	DaysLeft     *int          `json:"daysLeft,omitempty"`
	Creator      *CreatorInput `json:"creator,omitempty"`
}

// UpdateProjectBody 更新项目请求体，nil 字段不更新
type UpdateProjectBody struct {
	Title        *string  `json:"title,omitempty"`
	GoalAmount   *float64 `json:"goalAmount,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Category     *string  `json:"category,omitempty"`
	ThumbnailURL *string  `json:"thumbnailUrl,omitempty"`
	CoverURL     *string  `json:"coverUrl,omitempty"`
	Story        *string  `json:"story,omitempty"`
	DaysLeft     *int     `json:"daysLeft,omitempty"`
	Status       *string  `json:"status,omitempty"`
}

// CreateFundingBody 创建出资请求体
type CreateFundingBody struct {
	FromWallet string  `json:"fromWallet"`
	Amount     float64 `json:"amount" binding:"required"`
	Token      string  `json:"token,omitempty"`
	Message    string  `json:"message,omitempty"`
	TxHash     *string `json:"txHash,omitempty"`
}

// ProjectListQuery 项目列表查询参数
type ProjectListQuery struct {
	Category string
	Status   string
	Sort     string
	Page     int
	Limit    int
}
