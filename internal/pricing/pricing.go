package pricing

import (
	"math"
	"strconv"
)

// Mode 费用计算模式
type Mode string

const (
	ModeSimple Mode = "simple" // 仅网络费：total = amount + networkFee
	ModeFull   Mode = "full"   // 网络费 + 平台手续费：total = amount + networkFee + amount*rate
)

// ValidMode 校验计算模式
func ValidMode(s string) bool {
	return Mode(s) == ModeSimple || Mode(s) == ModeFull
}

// 默认费用参数
const (
	DefaultNetworkFee      = 0.003
	DefaultPlatformFeeRate = 0.02
)

// Fees 费用参数
type Fees struct {
	NetworkFee      float64
	PlatformFeeRate float64
}

// DefaultFees 默认费用参数
func DefaultFees() Fees {
	return Fees{
		NetworkFee:      DefaultNetworkFee,
		PlatformFeeRate: DefaultPlatformFeeRate,
	}
}

// Breakdown 金额明细，simple 模式下 platformFee 恒为 0
type Breakdown struct {
	Amount      float64 `json:"amount"`
	NetworkFee  float64 `json:"networkFeeEstimate"`
	PlatformFee float64 `json:"platformFee"`
	Total       float64 `json:"total"`
}

// ParseAmount 解析用户输入金额
// 空串、非法输入、NaN、Inf 一律按 0 处理，本层不报错
func ParseAmount(input string) float64 {
	if input == "" {
		return 0
	}
	v, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Quote 根据输入金额计算费用明细
func Quote(amountInput string, mode Mode, fees Fees) Breakdown {
	amount := ParseAmount(amountInput)
	b := Breakdown{
		Amount:     amount,
		NetworkFee: fees.NetworkFee,
	}
	if mode == ModeFull {
		b.PlatformFee = amount * fees.PlatformFeeRate
	}
	b.Total = amount + b.NetworkFee + b.PlatformFee
	return b
}

// CanSubmit 提交开关：解析后的金额必须大于 0
// 这是独立的布尔判断，不属于金额计算本身
func CanSubmit(amountInput string) bool {
	return ParseAmount(amountInput) > 0
}
