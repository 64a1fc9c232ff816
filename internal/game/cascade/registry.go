package cascade

import (
	"fmt"

	"github.com/wfunc/cascade-core/internal/errors"
)

// StripRegistry 卷轴注册表：不可变、带版本的12条卷轴定义。
// 启动校验通过后只读，无需加锁即可并发访问。
type StripRegistry struct {
	version string
	strips  map[Mode][ColumnCount][]Symbol
}

// NewStripRegistry 创建当前版本的卷轴注册表
func NewStripRegistry() *StripRegistry {
	return &StripRegistry{
		version: StripVersion,
		strips: map[Mode][ColumnCount][]Symbol{
			ModeBase:    baseStrips,
			ModeFeature: featureStrips,
		},
	}
}

// Version 返回卷轴数据版本
func (r *StripRegistry) Version() string {
	return r.version
}

// IsArchivedVersion 判断是否为已退役的历史版本
func (r *StripRegistry) IsArchivedVersion(version string) bool {
	for _, v := range archivedStripVersions {
		if v == version {
			return true
		}
	}
	return false
}

// GetStrips 获取指定模式的全部6条卷轴
func (r *StripRegistry) GetStrips(mode Mode) ([ColumnCount][]Symbol, error) {
	strips, ok := r.strips[mode]
	if !ok {
		return [ColumnCount][]Symbol{}, errors.Newf(errors.ErrInvalidInput, "未知的采样模式: %d", mode)
	}
	return strips, nil
}

// GetStrip 获取指定列的卷轴，列索引必须在[0,6)内
func (r *StripRegistry) GetStrip(column int, mode Mode) ([]Symbol, error) {
	if column < 0 || column >= ColumnCount {
		return nil, errors.Newf(errors.ErrOutOfRange, "列索引 %d 超出有效范围 [0,%d)", column, ColumnCount)
	}
	strips, err := r.GetStrips(mode)
	if err != nil {
		return nil, err
	}
	return strips[column], nil
}

// GetSymbolAt 按模长回绕读取指定列卷轴上的符号
func (r *StripRegistry) GetSymbolAt(column, position int, mode Mode) (Symbol, error) {
	strip, err := r.GetStrip(column, mode)
	if err != nil {
		return "", err
	}
	idx := position % len(strip)
	if idx < 0 {
		idx += len(strip)
	}
	return strip[idx], nil
}

// ColumnStripStats 单列卷轴的符号统计
type ColumnStripStats struct {
	Column       int                `json:"column"`
	ScatterCount int                `json:"scatter_count"`
	Counts       map[Symbol]int     `json:"counts"`
	Percentages  map[Symbol]float64 `json:"percentages"`
}

// StripStatistics 指定模式下全部卷轴的符号统计
type StripStatistics struct {
	Mode         Mode               `json:"mode"`
	StripVersion string             `json:"strip_version"`
	Columns      []ColumnStripStats `json:"columns"`
	Overall      map[Symbol]float64 `json:"overall"` // 6列合并后的符号占比
}

// GetStatistics 计算指定模式下每列的符号数量与占比
func (r *StripRegistry) GetStatistics(mode Mode) (*StripStatistics, error) {
	strips, err := r.GetStrips(mode)
	if err != nil {
		return nil, err
	}

	stats := &StripStatistics{
		Mode:         mode,
		StripVersion: r.version,
		Columns:      make([]ColumnStripStats, 0, ColumnCount),
		Overall:      make(map[Symbol]float64),
	}

	overallCounts := make(map[Symbol]int)
	total := 0
	for c := 0; c < ColumnCount; c++ {
		counts := make(map[Symbol]int)
		for _, sym := range strips[c] {
			counts[sym]++
			overallCounts[sym]++
		}
		total += len(strips[c])

		percentages := make(map[Symbol]float64, len(counts))
		for sym, n := range counts {
			percentages[sym] = float64(n) / float64(len(strips[c])) * 100
		}

		stats.Columns = append(stats.Columns, ColumnStripStats{
			Column:       c,
			ScatterCount: counts[SymbolScatter],
			Counts:       counts,
			Percentages:  percentages,
		})
	}

	for sym, n := range overallCounts {
		stats.Overall[sym] = float64(n) / float64(total) * 100
	}

	return stats, nil
}

// ValidationReport 结构校验报告。
// Errors为致命错误（错误长度、未知符号、卷轴数不对），
// Warnings仅为调参建议（scatter数越界）。
type ValidationReport struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate 对全部12条卷轴做结构校验。
// 必须在启动时执行，任一致命错误都应阻止引擎对外提供旋转。
func (r *StripRegistry) Validate() *ValidationReport {
	report := &ValidationReport{Valid: true}

	for _, mode := range []Mode{ModeBase, ModeFeature} {
		strips, ok := r.strips[mode]
		if !ok {
			report.Errors = append(report.Errors,
				fmt.Sprintf("模式 %s 缺少卷轴数据", mode))
			continue
		}

		for c := 0; c < ColumnCount; c++ {
			strip := strips[c]
			if len(strip) != StripLength {
				report.Errors = append(report.Errors,
					fmt.Sprintf("模式 %s 第 %d 列卷轴长度 %d，应为 %d", mode, c, len(strip), StripLength))
				continue
			}

			scatterCount := 0
			for i, sym := range strip {
				if !IsValidSymbol(sym) {
					report.Errors = append(report.Errors,
						fmt.Sprintf("模式 %s 第 %d 列位置 %d 出现字母表外符号 %q", mode, c, i, sym))
				}
				if sym == SymbolScatter {
					scatterCount++
				}
			}

			if scatterCount < ScatterBandMin || scatterCount > ScatterBandMax {
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("模式 %s 第 %d 列scatter数量 %d 超出审计区间 [%d,%d]",
						mode, c, scatterCount, ScatterBandMin, ScatterBandMax))
			}
		}
	}

	report.Valid = len(report.Errors) == 0
	return report
}
