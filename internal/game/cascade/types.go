package cascade

import (
	"time"
)

// Symbol 游戏符号
type Symbol string

const (
	SymbolTimeGem    Symbol = "time_gem"    // 时间宝石
	SymbolSpaceGem   Symbol = "space_gem"   // 空间宝石
	SymbolMindGem    Symbol = "mind_gem"    // 心灵宝石
	SymbolPowerGem   Symbol = "power_gem"   // 力量宝石
	SymbolRealityGem Symbol = "reality_gem" // 现实宝石
	SymbolSoulGem    Symbol = "soul_gem"    // 灵魂宝石
	SymbolCrown      Symbol = "crown"       // 王冠
	SymbolChalice    Symbol = "chalice"     // 圣杯
	SymbolRing       Symbol = "ring"        // 指环
	SymbolScatter    Symbol = "scatter"     // 分散符号（触发免费游戏）
)

// PayingSymbols 9个付费符号（不含scatter）
var PayingSymbols = []Symbol{
	SymbolTimeGem, SymbolSpaceGem, SymbolMindGem,
	SymbolPowerGem, SymbolRealityGem, SymbolSoulGem,
	SymbolCrown, SymbolChalice, SymbolRing,
}

// AllSymbols 完整的10符号字母表
var AllSymbols = append(append([]Symbol{}, PayingSymbols...), SymbolScatter)

// symbolAlphabet 字母表成员检查
var symbolAlphabet = func() map[Symbol]bool {
	m := make(map[Symbol]bool, len(AllSymbols))
	for _, s := range AllSymbols {
		m[s] = true
	}
	return m
}()

// IsValidSymbol 判断符号是否属于字母表
func IsValidSymbol(s Symbol) bool {
	return symbolAlphabet[s]
}

// Mode 采样模式
type Mode int

const (
	ModeBase    Mode = iota // 基础模式
	ModeFeature             // 免费游戏模式
)

// String 返回模式名称
func (m Mode) String() string {
	switch m {
	case ModeBase:
		return "base"
	case ModeFeature:
		return "feature"
	default:
		return "unknown"
	}
}

// 卷轴常量
const (
	StripLength     = 120 // 每条卷轴的符号数
	ColumnCount     = 6   // 列数
	DefaultRowCount = 5   // 默认可见行数

	// ScatterBandMin/Max 每条卷轴scatter数量的审计区间，
	// 越界只影响调参质量，不影响正确性，因此只告警不报错
	ScatterBandMin = 4
	ScatterBandMax = 7
)

// Grid 可见网格，按 [列][行] 索引
type Grid [][]Symbol

// Equal 逐格比较两个网格
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for c := range g {
		if len(g[c]) != len(other[c]) {
			return false
		}
		for r := range g[c] {
			if g[c][r] != other[c][r] {
				return false
			}
		}
	}
	return true
}

// GridResult 初始网格生成结果。
// {StopPositions, Mode, StripVersion} 是完整的审计记录，
// 足以零熵重建整个网格。
type GridResult struct {
	Grid          Grid           `json:"grid"`
	StopPositions []int          `json:"stop_positions"`
	StripVersion  string         `json:"strip_version"`
	Mode          Mode           `json:"mode"`
	SymbolCounts  map[Symbol]int `json:"symbol_counts"`
	Meta          GridMeta       `json:"meta"`
}

// GridMeta 生成过程的诊断信息
type GridMeta struct {
	EntropyDraws int           `json:"entropy_draws"` // 本次消耗的熵抽取次数
	Seeded       bool          `json:"seeded"`        // 是否使用种子流
	Elapsed      time.Duration `json:"elapsed"`
	GeneratedAt  time.Time     `json:"generated_at"`
}

// CellPosition 网格中的单元格位置
type CellPosition struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

// ReplacementDraw 消除后的补充符号抽取结果。
// 每次抽取是对该列卷轴的独立单符号采样，单独计入审计，
// 不属于初始网格的StopPositions窗口。
type ReplacementDraw struct {
	Column        int    `json:"column"`
	Row           int    `json:"row"` // 单符号接口未指定行时为-1
	Symbol        Symbol `json:"symbol"`
	StripPosition int    `json:"strip_position"`
	StripVersion  string `json:"strip_version"`
	Mode          Mode   `json:"mode"`
}

// Statistics 生成器生命周期内的统计计数，
// 仅由显式的操作员动作重置
type Statistics struct {
	GridsGenerated              int64     `json:"grids_generated"`
	SymbolsGenerated            int64     `json:"symbols_generated"`
	ReplacementSymbolsGenerated int64     `json:"replacement_symbols_generated"`
	LastStopPositions           []int     `json:"last_stop_positions"`
	LastUpdate                  time.Time `json:"last_update"`
}

// GeneratorConfig 生成器配置。
// 所有可识别选项显式列出，不使用松散的options map。
type GeneratorConfig struct {
	Rows         int  `json:"rows"`          // 可见行数（默认5）
	Columns      int  `json:"columns"`       // 列数（必须等于ColumnCount）
	AuditEnabled bool `json:"audit_enabled"` // 是否产生审计事件（默认true）
}

// DefaultGeneratorConfig 默认生成器配置
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Rows:         DefaultRowCount,
		Columns:      ColumnCount,
		AuditEnabled: true,
	}
}
