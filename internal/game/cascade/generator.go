package cascade

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wfunc/cascade-core/internal/errors"
	"github.com/wfunc/cascade-core/internal/logger"
	"go.uber.org/zap"
)

// GridGenerator 网格生成器：把稀缺的随机熵转换为可见网格。
// 显式实例，依赖（熵源、审计接收器）在构造时注入，
// 不依赖任何进程级全局状态。
type GridGenerator struct {
	mu        sync.Mutex
	cfg       GeneratorConfig
	registry  *StripRegistry
	randomGen RandomGenerator
	sink      AuditSink
	id        string
	stats     Statistics
	log       *zap.Logger
}

// NewGridGenerator 创建网格生成器。
// 构造时执行卷轴结构校验：任一致命错误直接拒绝创建，
// scatter区间告警只记录日志。
func NewGridGenerator(cfg GeneratorConfig, registry *StripRegistry, randomGen RandomGenerator, sink AuditSink) (*GridGenerator, error) {
	if cfg.Rows <= 0 {
		cfg.Rows = DefaultRowCount
	}
	if cfg.Columns == 0 {
		cfg.Columns = ColumnCount
	}
	if cfg.Columns != ColumnCount {
		return nil, errors.Newf(errors.ErrInvalidInput, "列数 %d 与卷轴数据不符，必须为 %d", cfg.Columns, ColumnCount)
	}
	if registry == nil {
		registry = NewStripRegistry()
	}
	if randomGen == nil {
		randomGen = NewCryptoRandomGenerator()
	}
	if sink == nil {
		sink = NopSink{}
	}

	report := registry.Validate()
	log := logger.WithModule("cascade")
	for _, warning := range report.Warnings {
		log.Warn("卷轴结构告警", zap.String("warning", warning))
	}
	if !report.Valid {
		return nil, errors.Newf(errors.ErrStructuralValidation,
			"卷轴结构校验失败: %v", report.Errors)
	}

	g := &GridGenerator{
		cfg:       cfg,
		registry:  registry,
		randomGen: randomGen,
		sink:      sink,
		id:        uuid.NewString(),
		stats:     Statistics{LastUpdate: time.Now()},
		log:       log,
	}

	g.emit(AuditGeneratorInitialized, map[string]interface{}{
		"strip_version": registry.Version(),
		"rows":          cfg.Rows,
		"columns":       cfg.Columns,
	})

	return g, nil
}

// ID 返回生成器标识（出现在所有审计事件中）
func (g *GridGenerator) ID() string {
	return g.id
}

// Registry 返回卷轴注册表
func (g *GridGenerator) Registry() *StripRegistry {
	return g.registry
}

// Config 返回生成器配置
func (g *GridGenerator) Config() GeneratorConfig {
	return g.cfg
}

// GenerateInitialGrid 生成初始网格。
// 每列抽取一个停止位，共6次熵抽取，与行数无关——
// 这是相对逐格采样的核心效率特性，也是审计记录保持小巧的原因。
// seed非空时走种子流（仅用于诊断/测试），否则使用注入的熵源。
func (g *GridGenerator) GenerateInitialGrid(mode Mode, seed string) (*GridResult, error) {
	start := time.Now()

	strips, err := g.registry.GetStrips(mode)
	if err != nil {
		return nil, err
	}

	src := g.entropySource(seed)
	before := src.CallCount()

	stops := make([]int, ColumnCount)
	for c := 0; c < ColumnCount; c++ {
		stops[c] = positionFromFloat(src.Next(), StripLength)
	}
	draws := int(src.CallCount() - before)

	g.emit(AuditStopPositionsGenerated, map[string]interface{}{
		"stop_positions": stops,
		"mode":           mode.String(),
		"seeded":         seed != "",
	})

	grid := make(Grid, ColumnCount)
	counts := make(map[Symbol]int)
	for c := 0; c < ColumnCount; c++ {
		grid[c] = make([]Symbol, g.cfg.Rows)
		for r := 0; r < g.cfg.Rows; r++ {
			sym := strips[c][(stops[c]+r)%StripLength]
			grid[c][r] = sym
			counts[sym]++
		}
	}

	elapsed := time.Since(start)

	g.mu.Lock()
	g.stats.GridsGenerated++
	g.stats.SymbolsGenerated += int64(ColumnCount * g.cfg.Rows)
	g.stats.LastStopPositions = append([]int(nil), stops...)
	g.stats.LastUpdate = time.Now()
	g.mu.Unlock()

	g.emit(AuditGridGenerated, map[string]interface{}{
		"stop_positions": stops,
		"strip_version":  g.registry.Version(),
		"mode":           mode.String(),
		"symbol_counts":  symbolCountsPayload(counts),
		"elapsed_ms":     float64(elapsed.Microseconds()) / 1000.0,
	})

	return &GridResult{
		Grid:          grid,
		StopPositions: stops,
		StripVersion:  g.registry.Version(),
		Mode:          mode,
		SymbolCounts:  counts,
		Meta: GridMeta{
			EntropyDraws: draws,
			Seeded:       seed != "",
			Elapsed:      elapsed,
			GeneratedAt:  start,
		},
	}, nil
}

// GenerateReplacementSymbol 为消除后的空位抽取一个补充符号。
// 需要确定性时由调用方传入复合seed（例如级联seed拼接列行）。
func (g *GridGenerator) GenerateReplacementSymbol(column int, mode Mode, seed string) (*ReplacementDraw, error) {
	strip, err := g.registry.GetStrip(column, mode)
	if err != nil {
		return nil, err
	}

	src := g.entropySource(seed)
	pos := positionFromFloat(src.Next(), len(strip))
	draw := &ReplacementDraw{
		Column:        column,
		Row:           -1,
		Symbol:        strip[pos],
		StripPosition: pos,
		StripVersion:  g.registry.Version(),
		Mode:          mode,
	}

	g.mu.Lock()
	g.stats.ReplacementSymbolsGenerated++
	g.stats.SymbolsGenerated++
	g.stats.LastUpdate = time.Now()
	g.mu.Unlock()

	g.emit(AuditReplacementGenerated, map[string]interface{}{
		"column":         column,
		"strip_position": pos,
		"symbol":         string(draw.Symbol),
		"mode":           mode.String(),
		"seeded":         seed != "",
	})

	return draw, nil
}

// GenerateReplacementSymbols 批量抽取补充符号。
// 请求的单元格按列分组处理（卷轴查找局部性），
// 返回顺序不保证与入参一致，需要位置顺序的调用方自行按{列,行}重排。
// 传入cascadeSeed时，每个单元格用 "seed-列-行" 派生各自独立的种子流，
// 避免复用同一个流产生相关序列。
func (g *GridGenerator) GenerateReplacementSymbols(cells []CellPosition, mode Mode, cascadeSeed string) ([]*ReplacementDraw, error) {
	if len(cells) == 0 {
		return nil, nil
	}

	byColumn := make(map[int][]CellPosition)
	for _, cell := range cells {
		if cell.Column < 0 || cell.Column >= ColumnCount {
			return nil, errors.Newf(errors.ErrOutOfRange, "列索引 %d 超出有效范围 [0,%d)", cell.Column, ColumnCount)
		}
		byColumn[cell.Column] = append(byColumn[cell.Column], cell)
	}

	columns := make([]int, 0, len(byColumn))
	for c := range byColumn {
		columns = append(columns, c)
	}
	sort.Ints(columns)

	draws := make([]*ReplacementDraw, 0, len(cells))
	for _, c := range columns {
		strip, err := g.registry.GetStrip(c, mode)
		if err != nil {
			return nil, err
		}
		for _, cell := range byColumn[c] {
			var src RandomGenerator
			if cascadeSeed != "" {
				src = NewSeededStream(deriveCellSeed(cascadeSeed, cell.Column, cell.Row))
			} else {
				src = g.randomGen
			}
			pos := positionFromFloat(src.Next(), len(strip))
			draws = append(draws, &ReplacementDraw{
				Column:        cell.Column,
				Row:           cell.Row,
				Symbol:        strip[pos],
				StripPosition: pos,
				StripVersion:  g.registry.Version(),
				Mode:          mode,
			})
		}
	}

	g.mu.Lock()
	g.stats.ReplacementSymbolsGenerated += int64(len(draws))
	g.stats.SymbolsGenerated += int64(len(draws))
	g.stats.LastUpdate = time.Now()
	g.mu.Unlock()

	g.emit(AuditReplacementBatch, map[string]interface{}{
		"count":  len(draws),
		"mode":   mode.String(),
		"seeded": cascadeSeed != "",
	})

	return draws, nil
}

// GetStatistics 返回统计计数的副本
func (g *GridGenerator) GetStatistics() Statistics {
	g.mu.Lock()
	defer g.mu.Unlock()

	stats := g.stats
	stats.LastStopPositions = append([]int(nil), g.stats.LastStopPositions...)
	return stats
}

// ResetStatistics 清零统计计数（仅限显式的操作员动作）
func (g *GridGenerator) ResetStatistics() {
	g.mu.Lock()
	g.stats = Statistics{LastUpdate: time.Now()}
	g.mu.Unlock()

	g.emit(AuditStatisticsReset, map[string]interface{}{})
}

// GetStripStatistics 返回指定模式的卷轴符号统计
func (g *GridGenerator) GetStripStatistics(mode Mode) (*StripStatistics, error) {
	return g.registry.GetStatistics(mode)
}

// ValidateStrips 返回卷轴结构校验报告
func (g *GridGenerator) ValidateStrips() *ValidationReport {
	return g.registry.Validate()
}

// entropySource 选择熵源：seed非空时创建一次性的种子流
func (g *GridGenerator) entropySource(seed string) RandomGenerator {
	if seed != "" {
		return NewSeededStream(seed)
	}
	return g.randomGen
}

// emit 发送审计事件。接收器的panic或失败不得影响生成结果。
func (g *GridGenerator) emit(kind AuditEventKind, data map[string]interface{}) {
	if !g.cfg.AuditEnabled || g.sink == nil {
		return
	}

	event := AuditEvent{
		Timestamp:   time.Now().UnixMilli(),
		Event:       kind,
		GeneratorID: g.id,
		Data:        data,
	}

	defer func() {
		if r := recover(); r != nil {
			g.log.Warn("审计接收器异常",
				zap.String("event", string(kind)),
				zap.Any("panic", r),
			)
		}
	}()
	g.sink.Record(event)
}

// deriveCellSeed 为单元格派生独立种子
func deriveCellSeed(cascadeSeed string, column, row int) string {
	return fmt.Sprintf("%s-%d-%d", cascadeSeed, column, row)
}

// symbolCountsPayload 把符号计数转成可序列化的map
func symbolCountsPayload(counts map[Symbol]int) map[string]int {
	payload := make(map[string]int, len(counts))
	for sym, n := range counts {
		payload[string(sym)] = n
	}
	return payload
}
