package cascade

import (
	"math"
	"testing"
)

func TestCombination(t *testing.T) {
	tests := []struct {
		n, k int
		want float64
	}{
		{6, 0, 1},
		{6, 1, 6},
		{6, 4, 15},
		{6, 6, 1},
		{30, 4, 27405},
		{6, 7, 0},
		{6, -1, 0},
	}

	for _, tt := range tests {
		if got := Combination(tt.n, tt.k); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("Combination(%d,%d) = %v, 期望 %v", tt.n, tt.k, got, tt.want)
		}
	}
}

func TestBinomialExactly_SumsToOne(t *testing.T) {
	const k = 30
	const p = 0.05

	sum := 0.0
	for i := 0; i <= k; i++ {
		sum += BinomialExactly(k, p, i)
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("全部结果概率合计 %v, 期望 1", sum)
	}
}

func TestBinomialAtLeast(t *testing.T) {
	// P(≥0) 恒为1
	if got := BinomialAtLeast(30, 0.05, 0); got != 1 {
		t.Errorf("BinomialAtLeast(30,0.05,0) = %v, 期望 1", got)
	}

	// 与补集关系一致: P(≥t) = 1 - P(<t)
	const k = 30
	const p = 0.05
	const threshold = 4

	var below float64
	for i := 0; i < threshold; i++ {
		below += BinomialExactly(k, p, i)
	}
	got := BinomialAtLeast(k, p, threshold)
	if math.Abs(got-(1-below)) > 1e-12 {
		t.Errorf("BinomialAtLeast = %v, 期望 %v", got, 1-below)
	}

	// 单调性: 阈值越高概率越低
	if BinomialAtLeast(k, p, 5) >= BinomialAtLeast(k, p, 4) {
		t.Error("P(≥5) 应小于 P(≥4)")
	}
}

func TestNewTriggerModelFromRegistry(t *testing.T) {
	registry := NewStripRegistry()

	model, err := NewTriggerModelFromRegistry(registry, ModeBase, DefaultRowCount, 4)
	if err != nil {
		t.Fatalf("构建触发模型失败: %v", err)
	}

	if model.Cells != DefaultRowCount*ColumnCount {
		t.Errorf("Cells = %d, 期望 %d", model.Cells, DefaultRowCount*ColumnCount)
	}
	if model.Threshold != 4 {
		t.Errorf("Threshold = %d, 期望 4", model.Threshold)
	}

	// scatter占比应与注册表一致
	stats, _ := registry.GetStatistics(ModeBase)
	wantProb := stats.Overall[SymbolScatter] / 100
	if math.Abs(model.ScatterProb-wantProb) > 1e-12 {
		t.Errorf("ScatterProb = %v, 期望 %v", model.ScatterProb, wantProb)
	}

	// 解析触发率落在一个宽松的合理区间（逐格独立假设下的估算）
	rate := model.TriggerRate()
	if rate <= 0 || rate >= 0.2 {
		t.Errorf("模型触发率 %v 不合理", rate)
	}

	// 无效行数
	if _, err := NewTriggerModelFromRegistry(registry, ModeBase, 0, 4); err == nil {
		t.Error("行数0应返回错误")
	}
}

func TestTriggerModel_FeatureHigherThanBase(t *testing.T) {
	registry := NewStripRegistry()

	base, err := NewTriggerModelFromRegistry(registry, ModeBase, DefaultRowCount, 4)
	if err != nil {
		t.Fatalf("构建基础模型失败: %v", err)
	}
	feature, err := NewTriggerModelFromRegistry(registry, ModeFeature, DefaultRowCount, 4)
	if err != nil {
		t.Fatalf("构建免费模型失败: %v", err)
	}

	// 免费模式scatter更密，触发率应更高
	if feature.TriggerRate() <= base.TriggerRate() {
		t.Errorf("免费模式触发率 %v 应高于基础模式 %v", feature.TriggerRate(), base.TriggerRate())
	}
}
