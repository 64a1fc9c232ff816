package cascade

import (
	"testing"

	apperrors "github.com/wfunc/cascade-core/internal/errors"
)

func TestReconstructGrid_RoundTrip(t *testing.T) {
	g := newTestGenerator(t, nil)

	for _, mode := range []Mode{ModeBase, ModeFeature} {
		for i := 0; i < 50; i++ {
			result, err := g.GenerateInitialGrid(mode, "")
			if err != nil {
				t.Fatalf("生成失败: %v", err)
			}

			rebuilt, err := g.ReconstructGrid(result.StopPositions, mode, result.StripVersion)
			if err != nil {
				t.Fatalf("重建失败: %v", err)
			}
			if !rebuilt.Equal(result.Grid) {
				t.Fatalf("模式 %s 第 %d 次回放与原网格不一致\n停止位: %v", mode, i, result.StopPositions)
			}
		}
	}
}

func TestReconstructGrid_ConsumesNoEntropy(t *testing.T) {
	src := NewCryptoRandomGenerator()
	g, err := NewGridGenerator(DefaultGeneratorConfig(), NewStripRegistry(), src, nil)
	if err != nil {
		t.Fatalf("创建生成器失败: %v", err)
	}

	result, err := g.GenerateInitialGrid(ModeBase, "")
	if err != nil {
		t.Fatalf("生成失败: %v", err)
	}

	before := src.CallCount()
	if _, err := g.ReconstructGrid(result.StopPositions, ModeBase, result.StripVersion); err != nil {
		t.Fatalf("重建失败: %v", err)
	}
	if src.CallCount() != before {
		t.Error("回放重建不得消耗任何熵")
	}
}

func TestReconstructGrid_VersionMismatch(t *testing.T) {
	g := newTestGenerator(t, nil)
	stops := []int{10, 25, 40, 55, 70, 85}

	// 从未发布过的版本
	_, err := g.ReconstructGrid(stops, ModeBase, "0.0.1")
	if !apperrors.Is(err, apperrors.ErrVersionMismatch) {
		t.Errorf("未知版本应返回版本不匹配错误, 实际 %v", err)
	}

	// 历史版本同样拒绝：当前进程没有对应版本的卷轴数据，
	// 用现行数据回放会悄悄歪曲历史结果
	_, err = g.ReconstructGrid(stops, ModeBase, "1.0.0")
	if !apperrors.Is(err, apperrors.ErrVersionMismatch) {
		t.Errorf("历史版本应返回版本不匹配错误, 实际 %v", err)
	}

	// 当前版本通过
	if _, err := g.ReconstructGrid(stops, ModeBase, StripVersion); err != nil {
		t.Errorf("当前版本重建失败: %v", err)
	}
}

func TestReconstructGrid_InvalidInput(t *testing.T) {
	g := newTestGenerator(t, nil)

	tests := []struct {
		name  string
		stops []int
	}{
		{"数量不足", []int{1, 2, 3}},
		{"数量过多", []int{1, 2, 3, 4, 5, 6, 7}},
		{"空集合", nil},
		{"负停止位", []int{1, 2, -1, 4, 5, 6}},
		{"停止位越界", []int{1, 2, 3, 4, 5, 120}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.ReconstructGrid(tt.stops, ModeBase, StripVersion)
			if !apperrors.Is(err, apperrors.ErrInvalidInput) {
				t.Errorf("应返回无效输入错误, 实际 %v", err)
			}
		})
	}
}

func TestReconstructGrid_WrapAround(t *testing.T) {
	g := newTestGenerator(t, nil)
	registry := g.Registry()

	// 末位停止位回绕到卷轴开头
	stops := []int{StripLength - 1, StripLength - 2, 0, 1, StripLength - 3, 60}
	grid, err := g.ReconstructGrid(stops, ModeBase, StripVersion)
	if err != nil {
		t.Fatalf("重建失败: %v", err)
	}

	for c := 0; c < ColumnCount; c++ {
		for r := 0; r < DefaultRowCount; r++ {
			want, _ := registry.GetSymbolAt(c, stops[c]+r, ModeBase)
			if grid[c][r] != want {
				t.Errorf("格 [%d][%d] = %q, 期望 %q", c, r, grid[c][r], want)
			}
		}
	}
}

func TestReconstructGrid_EmitsAuditEvent(t *testing.T) {
	sink := &captureSink{}
	g := newTestGenerator(t, sink)

	stops := []int{10, 25, 40, 55, 70, 85}
	if _, err := g.ReconstructGrid(stops, ModeBase, StripVersion); err != nil {
		t.Fatalf("重建失败: %v", err)
	}

	events := sink.byKind(AuditGridReconstructed)
	if len(events) != 1 {
		t.Fatalf("grid_reconstructed 事件数 %d, 期望 1", len(events))
	}
	// 重建事件与生成事件可区分
	if len(sink.byKind(AuditGridGenerated)) != 0 {
		t.Error("重建不应发出生成事件")
	}
}
