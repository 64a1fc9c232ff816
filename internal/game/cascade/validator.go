package cascade

import (
	"math"
	"sort"
	"time"

	"github.com/wfunc/cascade-core/internal/errors"
	"github.com/wfunc/cascade-core/internal/logger"
	"go.uber.org/zap"
)

// ValidatorConfig 蒙特卡洛校验配置
type ValidatorConfig struct {
	Spins              int     `json:"spins"`               // 模拟网格数（参考值 10k/50k/100k/1M）
	FrequencyTolerance float64 `json:"frequency_tolerance"` // 符号频率允许偏差（百分点）
	TriggerRateMin     float64 `json:"trigger_rate_min"`    // 触发率接受区间下限
	TriggerRateMax     float64 `json:"trigger_rate_max"`    // 触发率接受区间上限
	ScatterThreshold   int     `json:"scatter_threshold"`   // 触发所需scatter数
	RoundTripInterval  int     `json:"round_trip_interval"` // 每隔多少次做一次回放比对
}

// DefaultValidatorConfig 默认校验配置。
// 触发率区间[1%,5%]比逐格独立采样的解析值(~3.8%)更宽更低，
// 这是连段卷轴采样相对二项模型的固有偏差，属预期现象。
func DefaultValidatorConfig() ValidatorConfig {
	return ValidatorConfig{
		Spins:              100000,
		FrequencyTolerance: 5.0,
		TriggerRateMin:     0.01,
		TriggerRateMax:     0.05,
		ScatterThreshold:   4,
		RoundTripInterval:  1000,
	}
}

// MonteCarloValidator 蒙特卡洛校验器：大规模采样生成器，
// 把经验分布与注册表目标值做一致性比对。
type MonteCarloValidator struct {
	cfg       ValidatorConfig
	generator *GridGenerator
	log       *zap.Logger
}

// NewMonteCarloValidator 创建校验器
func NewMonteCarloValidator(cfg ValidatorConfig, generator *GridGenerator) (*MonteCarloValidator, error) {
	if generator == nil {
		return nil, errors.New(errors.ErrInvalidInput, "缺少生成器实例")
	}
	if cfg.Spins <= 0 {
		cfg.Spins = DefaultValidatorConfig().Spins
	}
	if cfg.FrequencyTolerance <= 0 {
		cfg.FrequencyTolerance = DefaultValidatorConfig().FrequencyTolerance
	}
	if cfg.ScatterThreshold <= 0 {
		cfg.ScatterThreshold = DefaultValidatorConfig().ScatterThreshold
	}
	if cfg.RoundTripInterval <= 0 {
		cfg.RoundTripInterval = DefaultValidatorConfig().RoundTripInterval
	}
	return &MonteCarloValidator{
		cfg:       cfg,
		generator: generator,
		log:       logger.WithModule("validator"),
	}, nil
}

// SimulationReport 一致性校验报告
type SimulationReport struct {
	Mode                 Mode               `json:"mode"`
	Spins                int                `json:"spins"`
	SymbolFrequencies    map[Symbol]float64 `json:"symbol_frequencies"`    // 经验占比（百分比）
	ExpectedFrequencies  map[Symbol]float64 `json:"expected_frequencies"`  // 注册表目标占比
	FrequencyDeviations  map[Symbol]float64 `json:"frequency_deviations"`  // |经验-目标|（百分点）
	MaxDeviation         float64            `json:"max_deviation"`
	ScatterHistogram     map[int]int        `json:"scatter_histogram"` // 每格网scatter数的分布
	TriggerRate          float64            `json:"trigger_rate"`      // scatter数≥阈值的占比
	ModelTriggerRate     float64            `json:"model_trigger_rate"` // 二项模型的解析估算
	TriggerRateInBand    bool               `json:"trigger_rate_in_band"`
	EntropyDrawViolations int               `json:"entropy_draw_violations"` // 熵预算(=列数)违规次数
	RoundTripChecks      int                `json:"round_trip_checks"`
	RoundTripFailures    int                `json:"round_trip_failures"`
	Passed               bool               `json:"passed"`
	Elapsed              time.Duration      `json:"elapsed"`
}

// Run 采样生成器Spins次并生成一致性报告。
// 校验内容：符号频率偏差、scatter直方图与触发率、
// 每次生成恰好消耗6次熵、生成与回放的逐格一致。
func (v *MonteCarloValidator) Run(mode Mode) (*SimulationReport, error) {
	start := time.Now()

	stripStats, err := v.generator.GetStripStatistics(mode)
	if err != nil {
		return nil, err
	}

	model, err := NewTriggerModelFromRegistry(v.generator.Registry(), mode, v.generator.Config().Rows, v.cfg.ScatterThreshold)
	if err != nil {
		return nil, err
	}

	report := &SimulationReport{
		Mode:                mode,
		Spins:               v.cfg.Spins,
		SymbolFrequencies:   make(map[Symbol]float64),
		ExpectedFrequencies: stripStats.Overall,
		FrequencyDeviations: make(map[Symbol]float64),
		ScatterHistogram:    make(map[int]int),
		ModelTriggerRate:    model.TriggerRate(),
	}

	symbolCounts := make(map[Symbol]int64)
	totalSymbols := int64(0)
	triggered := 0

	for i := 0; i < v.cfg.Spins; i++ {
		result, err := v.generator.GenerateInitialGrid(mode, "")
		if err != nil {
			return nil, err
		}

		for sym, n := range result.SymbolCounts {
			symbolCounts[sym] += int64(n)
			totalSymbols += int64(n)
		}

		scatters := result.SymbolCounts[SymbolScatter]
		report.ScatterHistogram[scatters]++
		if scatters >= v.cfg.ScatterThreshold {
			triggered++
		}

		if result.Meta.EntropyDraws != ColumnCount {
			report.EntropyDrawViolations++
		}

		if i%v.cfg.RoundTripInterval == 0 {
			report.RoundTripChecks++
			rebuilt, err := v.generator.ReconstructGrid(result.StopPositions, mode, result.StripVersion)
			if err != nil || !rebuilt.Equal(result.Grid) {
				report.RoundTripFailures++
			}
		}
	}

	for _, sym := range AllSymbols {
		freq := float64(symbolCounts[sym]) / float64(totalSymbols) * 100
		report.SymbolFrequencies[sym] = freq
		deviation := math.Abs(freq - report.ExpectedFrequencies[sym])
		report.FrequencyDeviations[sym] = deviation
		if deviation > report.MaxDeviation {
			report.MaxDeviation = deviation
		}
	}

	report.TriggerRate = float64(triggered) / float64(v.cfg.Spins)
	report.TriggerRateInBand = report.TriggerRate >= v.cfg.TriggerRateMin &&
		report.TriggerRate <= v.cfg.TriggerRateMax

	report.Passed = report.MaxDeviation <= v.cfg.FrequencyTolerance &&
		report.TriggerRateInBand &&
		report.EntropyDrawViolations == 0 &&
		report.RoundTripFailures == 0

	report.Elapsed = time.Since(start)

	v.log.Info("蒙特卡洛校验完成",
		zap.String("mode", mode.String()),
		zap.Int("spins", report.Spins),
		zap.Float64("max_deviation", report.MaxDeviation),
		zap.Float64("trigger_rate", report.TriggerRate),
		zap.Float64("model_trigger_rate", report.ModelTriggerRate),
		zap.Bool("passed", report.Passed),
		zap.Duration("elapsed", report.Elapsed),
	)

	return report, nil
}

// DivergenceReport 卷轴条方法与朴素逐格采样的分歧报告
type DivergenceReport struct {
	Mode             Mode               `json:"mode"`
	Spins            int                `json:"spins"`
	StripFrequencies map[Symbol]float64 `json:"strip_frequencies"`
	NaiveFrequencies map[Symbol]float64 `json:"naive_frequencies"`
	Divergences      map[Symbol]float64 `json:"divergences"` // 百分点
	MaxDivergence    float64            `json:"max_divergence"`
}

// CompareWithNaiveSampler 用独立的逐格加权采样器交叉验证卷轴条方法，
// 量化两种采样策略的边际分布分歧上界。
func (v *MonteCarloValidator) CompareWithNaiveSampler(mode Mode, spins int) (*DivergenceReport, error) {
	if spins <= 0 {
		spins = v.cfg.Spins
	}

	stripStats, err := v.generator.GetStripStatistics(mode)
	if err != nil {
		return nil, err
	}

	rows := v.generator.Config().Rows

	stripCounts := make(map[Symbol]int64)
	stripTotal := int64(0)
	for i := 0; i < spins; i++ {
		result, err := v.generator.GenerateInitialGrid(mode, "")
		if err != nil {
			return nil, err
		}
		for sym, n := range result.SymbolCounts {
			stripCounts[sym] += int64(n)
			stripTotal += int64(n)
		}
	}

	sampler := newNaiveWeightedSampler(stripStats.Overall, NewCryptoRandomGenerator())
	naiveCounts := make(map[Symbol]int64)
	naiveTotal := int64(0)
	for i := 0; i < spins; i++ {
		for cell := 0; cell < rows*ColumnCount; cell++ {
			naiveCounts[sampler.sample()]++
			naiveTotal++
		}
	}

	report := &DivergenceReport{
		Mode:             mode,
		Spins:            spins,
		StripFrequencies: make(map[Symbol]float64),
		NaiveFrequencies: make(map[Symbol]float64),
		Divergences:      make(map[Symbol]float64),
	}
	for _, sym := range AllSymbols {
		sf := float64(stripCounts[sym]) / float64(stripTotal) * 100
		nf := float64(naiveCounts[sym]) / float64(naiveTotal) * 100
		report.StripFrequencies[sym] = sf
		report.NaiveFrequencies[sym] = nf
		d := math.Abs(sf - nf)
		report.Divergences[sym] = d
		if d > report.MaxDivergence {
			report.MaxDivergence = d
		}
	}

	return report, nil
}

// naiveWeightedSampler 独立逐格加权采样器，
// 按注册表占比做累积权重查表，只用于交叉验证
type naiveWeightedSampler struct {
	symbols    []Symbol
	cumulative []float64
	src        RandomGenerator
}

func newNaiveWeightedSampler(percentages map[Symbol]float64, src RandomGenerator) *naiveWeightedSampler {
	symbols := make([]Symbol, 0, len(percentages))
	for sym := range percentages {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	cumulative := make([]float64, len(symbols))
	sum := 0.0
	for i, sym := range symbols {
		sum += percentages[sym] / 100
		cumulative[i] = sum
	}

	return &naiveWeightedSampler{
		symbols:    symbols,
		cumulative: cumulative,
		src:        src,
	}
}

func (s *naiveWeightedSampler) sample() Symbol {
	u := s.src.Next()
	for i, c := range s.cumulative {
		if u < c {
			return s.symbols[i]
		}
	}
	return s.symbols[len(s.symbols)-1]
}
