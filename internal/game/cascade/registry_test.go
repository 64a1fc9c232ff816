package cascade

import (
	"math"
	"testing"

	apperrors "github.com/wfunc/cascade-core/internal/errors"
)

func TestStripRegistry_Validate(t *testing.T) {
	r := NewStripRegistry()

	report := r.Validate()
	if !report.Valid {
		t.Fatalf("内置卷轴数据校验失败: %v", report.Errors)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("内置卷轴数据不应有告警: %v", report.Warnings)
	}
}

func TestStripRegistry_StripStructure(t *testing.T) {
	r := NewStripRegistry()

	for _, mode := range []Mode{ModeBase, ModeFeature} {
		strips, err := r.GetStrips(mode)
		if err != nil {
			t.Fatalf("GetStrips(%s) 失败: %v", mode, err)
		}

		for c := 0; c < ColumnCount; c++ {
			if len(strips[c]) != StripLength {
				t.Errorf("模式 %s 第 %d 列长度 %d, 期望 %d", mode, c, len(strips[c]), StripLength)
			}
			for i, sym := range strips[c] {
				if !IsValidSymbol(sym) {
					t.Errorf("模式 %s 第 %d 列位置 %d 出现无效符号 %q", mode, c, i, sym)
				}
			}
		}
	}
}

func TestStripRegistry_ColumnZeroPrefix(t *testing.T) {
	r := NewStripRegistry()

	strip, err := r.GetStrip(0, ModeBase)
	if err != nil {
		t.Fatalf("GetStrip(0, base) 失败: %v", err)
	}

	want := []Symbol{SymbolTimeGem, SymbolTimeGem, SymbolSpaceGem, SymbolSpaceGem, SymbolMindGem}
	for i, sym := range want {
		if strip[i] != sym {
			t.Errorf("基础模式第0列位置 %d = %q, 期望 %q", i, strip[i], sym)
		}
	}
}

func TestStripRegistry_GetStrip_OutOfRange(t *testing.T) {
	r := NewStripRegistry()

	tests := []int{-1, 6, 100}
	for _, column := range tests {
		_, err := r.GetStrip(column, ModeBase)
		if err == nil {
			t.Errorf("GetStrip(%d) 应返回错误", column)
			continue
		}
		if !apperrors.Is(err, apperrors.ErrOutOfRange) {
			t.Errorf("GetStrip(%d) 错误码 %d, 期望越界错误", column, apperrors.GetCode(err))
		}
	}
}

func TestStripRegistry_GetSymbolAt_Wraps(t *testing.T) {
	r := NewStripRegistry()
	strip, _ := r.GetStrip(2, ModeBase)

	// 正向回绕
	sym, err := r.GetSymbolAt(2, StripLength+7, ModeBase)
	if err != nil {
		t.Fatalf("GetSymbolAt 失败: %v", err)
	}
	if sym != strip[7] {
		t.Errorf("GetSymbolAt(%d) = %q, 期望 %q", StripLength+7, sym, strip[7])
	}

	// 负向回绕
	sym, err = r.GetSymbolAt(2, -1, ModeBase)
	if err != nil {
		t.Fatalf("GetSymbolAt(-1) 失败: %v", err)
	}
	if sym != strip[StripLength-1] {
		t.Errorf("GetSymbolAt(-1) = %q, 期望 %q", sym, strip[StripLength-1])
	}
}

func TestStripRegistry_GetStatistics(t *testing.T) {
	r := NewStripRegistry()

	for _, mode := range []Mode{ModeBase, ModeFeature} {
		stats, err := r.GetStatistics(mode)
		if err != nil {
			t.Fatalf("GetStatistics(%s) 失败: %v", mode, err)
		}

		if len(stats.Columns) != ColumnCount {
			t.Fatalf("列统计数量 %d, 期望 %d", len(stats.Columns), ColumnCount)
		}

		// 每列占比之和为100%
		for _, col := range stats.Columns {
			sum := 0.0
			for _, pct := range col.Percentages {
				sum += pct
			}
			if math.Abs(sum-100) > 1e-9 {
				t.Errorf("模式 %s 第 %d 列占比合计 %v, 期望 100", mode, col.Column, sum)
			}

			// scatter数量在审计区间内
			if col.ScatterCount < ScatterBandMin || col.ScatterCount > ScatterBandMax {
				t.Errorf("模式 %s 第 %d 列scatter数 %d 超出 [%d,%d]",
					mode, col.Column, col.ScatterCount, ScatterBandMin, ScatterBandMax)
			}
		}

		// 合并占比之和为100%，且覆盖全部10个符号
		sum := 0.0
		for _, pct := range stats.Overall {
			sum += pct
		}
		if math.Abs(sum-100) > 1e-9 {
			t.Errorf("模式 %s 合并占比合计 %v, 期望 100", mode, sum)
		}
		if len(stats.Overall) != len(AllSymbols) {
			t.Errorf("模式 %s 合并统计符号数 %d, 期望 %d", mode, len(stats.Overall), len(AllSymbols))
		}
	}
}

func TestStripRegistry_Version(t *testing.T) {
	r := NewStripRegistry()

	if r.Version() != StripVersion {
		t.Errorf("Version() = %q, 期望 %q", r.Version(), StripVersion)
	}

	if !r.IsArchivedVersion("1.0.0") {
		t.Error("1.0.0 应为历史版本")
	}
	if r.IsArchivedVersion(StripVersion) {
		t.Error("当前版本不应是历史版本")
	}
	if r.IsArchivedVersion("0.0.1") {
		t.Error("0.0.1 从未发布过")
	}
}

func TestStripRegistry_UnknownMode(t *testing.T) {
	r := NewStripRegistry()

	if _, err := r.GetStrips(Mode(99)); err == nil {
		t.Error("未知模式应返回错误")
	}
	if _, err := r.GetStatistics(Mode(99)); err == nil {
		t.Error("未知模式的统计应返回错误")
	}
}
