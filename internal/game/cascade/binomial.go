package cascade

import (
	"math"

	"github.com/wfunc/cascade-core/internal/errors"
)

// Combination 组合数 C(n,k)
func Combination(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result = result * float64(n-i) / float64(i+1)
	}
	return result
}

// BinomialExactly k个独立格子中恰好出现i次的概率
func BinomialExactly(k int, p float64, i int) float64 {
	return Combination(k, i) * math.Pow(p, float64(i)) * math.Pow(1-p, float64(k-i))
}

// BinomialAtLeast k个独立格子中至少出现t次的概率：
// P(≥t) = 1 − Σ_{i=0}^{t−1} C(k,i) p^i (1−p)^(k−i)
func BinomialAtLeast(k int, p float64, t int) float64 {
	if t <= 0 {
		return 1
	}
	sum := 0.0
	for i := 0; i < t; i++ {
		sum += BinomialExactly(k, p, i)
	}
	return 1 - sum
}

// TriggerModel scatter触发率的二项分布模型。
// 模型假设格子之间相互独立，而卷轴条采样中同列相邻行来自
// 相邻卷轴位置、并不独立，所以这只是设计期的解析估算——
// 封闭式结果与连段排布的真实分布存在偏差，最终以蒙特卡洛为准。
type TriggerModel struct {
	Cells       int     `json:"cells"`        // 格子总数（行×列）
	ScatterProb float64 `json:"scatter_prob"` // 单格scatter概率
	Threshold   int     `json:"threshold"`    // 触发所需的scatter数（通常为4）
}

// TriggerRate 计算触发概率 P(scatter数 ≥ Threshold)
func (m TriggerModel) TriggerRate() float64 {
	return BinomialAtLeast(m.Cells, m.ScatterProb, m.Threshold)
}

// NewTriggerModelFromRegistry 用注册表的实际scatter占比构建触发模型
func NewTriggerModelFromRegistry(registry *StripRegistry, mode Mode, rows, threshold int) (TriggerModel, error) {
	if rows <= 0 {
		return TriggerModel{}, errors.Newf(errors.ErrInvalidInput, "无效的行数 %d", rows)
	}
	stats, err := registry.GetStatistics(mode)
	if err != nil {
		return TriggerModel{}, err
	}
	return TriggerModel{
		Cells:       rows * ColumnCount,
		ScatterProb: stats.Overall[SymbolScatter] / 100,
		Threshold:   threshold,
	}, nil
}
