package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/wfunc/cascade-core/internal/audit"
	"github.com/wfunc/cascade-core/internal/config"
	"github.com/wfunc/cascade-core/internal/database"
	"github.com/wfunc/cascade-core/internal/errors"
	"github.com/wfunc/cascade-core/internal/game/cascade"
	"github.com/wfunc/cascade-core/internal/logger"
	"github.com/wfunc/cascade-core/internal/models"
	"github.com/wfunc/cascade-core/internal/repository"
	"go.uber.org/zap"
)

// 版本信息
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// 命令行参数
	var (
		configPath  = flag.String("config", "", "配置文件路径")
		modeFlag    = flag.String("mode", "", "采样模式 (base/feature)，默认取配置")
		spinsFlag   = flag.Int("spins", 0, "模拟网格数，默认取配置")
		naiveFlag   = flag.Bool("naive", false, "同时运行朴素逐格采样交叉验证")
		showVersion = flag.Bool("version", false, "显示版本信息")
		showHelp    = flag.Bool("help", false, "显示帮助信息")
	)

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	// 加载配置
	if err := config.Init(*configPath); err != nil {
		fmt.Printf("加载配置失败: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Get()

	// 初始化日志系统
	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Printf("初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Cleanup()

	if err := run(cfg, *modeFlag, *spinsFlag, *naiveFlag); err != nil {
		logger.Error("校验运行失败", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, modeFlag string, spinsFlag int, naive bool) error {
	mode, err := parseMode(modeFlag, cfg.Generator.DefaultMode)
	if err != nil {
		return err
	}

	// 组装审计接收器
	var sink cascade.AuditSink = cascade.NopSink{}
	var dbSink *audit.DBSink
	switch cfg.Audit.Sink {
	case "log":
		sink = audit.NewZapSink()
	case "db":
		if err := database.Init(&cfg.Database); err != nil {
			return errors.Wrap(err, errors.ErrDatabaseConnect, "初始化审计数据库失败")
		}
		defer database.Close()

		dbSink = audit.NewDBSink(database.GetDB(), audit.DBSinkConfig{
			BufferSize:    cfg.Audit.BufferSize,
			BatchSize:     cfg.Audit.BatchSize,
			FlushInterval: cfg.Audit.FlushInterval,
			FailClosed:    cfg.Audit.FailClosed,
		})
		defer dbSink.Close()
		sink = dbSink
	}

	// 创建生成器。构造内含卷轴结构校验，
	// 致命结构错误在这里直接失败。
	generator, err := cascade.NewGridGenerator(cascade.GeneratorConfig{
		Rows:         cfg.Generator.Rows,
		Columns:      cfg.Generator.Columns,
		AuditEnabled: cfg.Generator.AuditEnabled,
	}, cascade.NewStripRegistry(), cascade.NewCryptoRandomGenerator(), sink)
	if err != nil {
		return err
	}

	validatorCfg := cascade.ValidatorConfig{
		Spins:              cfg.Simulation.Spins,
		FrequencyTolerance: cfg.Simulation.FrequencyTolerance,
		TriggerRateMin:     cfg.Simulation.TriggerRateMin,
		TriggerRateMax:     cfg.Simulation.TriggerRateMax,
		ScatterThreshold:   cfg.Simulation.ScatterThreshold,
		RoundTripInterval:  cfg.Simulation.RoundTripInterval,
	}
	if spinsFlag > 0 {
		validatorCfg.Spins = spinsFlag
	}

	validator, err := cascade.NewMonteCarloValidator(validatorCfg, generator)
	if err != nil {
		return err
	}

	report, err := validator.Run(mode)
	if err != nil {
		return err
	}
	printReport(report)

	// 结果入库，供跨版本对比
	if dbSink != nil {
		if err := saveRun(report); err != nil {
			logger.Warn("校验结果入库失败", zap.Error(err))
		}
	}

	if naive || cfg.Simulation.NaiveComparison {
		divergence, err := validator.CompareWithNaiveSampler(mode, validatorCfg.Spins)
		if err != nil {
			return err
		}
		printDivergence(divergence)
	}

	if !report.Passed {
		return errors.New(errors.ErrStructuralValidation, "分布一致性校验未通过")
	}
	return nil
}

func parseMode(flagValue, configValue string) (cascade.Mode, error) {
	value := flagValue
	if value == "" {
		value = configValue
	}
	switch value {
	case "", "base":
		return cascade.ModeBase, nil
	case "feature":
		return cascade.ModeFeature, nil
	default:
		return 0, errors.Newf(errors.ErrInvalidInput, "未知的采样模式: %s", value)
	}
}

func saveRun(report *cascade.SimulationReport) error {
	histogram := make(map[string]interface{}, len(report.ScatterHistogram))
	for scatters, count := range report.ScatterHistogram {
		histogram[fmt.Sprintf("%d", scatters)] = count
	}

	repo := repository.NewSimulationRunRepository(database.GetDB())
	return repo.Create(&models.SimulationRun{
		StripVersion:          cascade.StripVersion,
		Mode:                  report.Mode.String(),
		Spins:                 report.Spins,
		MaxDeviation:          report.MaxDeviation,
		TriggerRate:           report.TriggerRate,
		ModelTriggerRate:      report.ModelTriggerRate,
		EntropyDrawViolations: report.EntropyDrawViolations,
		RoundTripFailures:     report.RoundTripFailures,
		Passed:                report.Passed,
		Report: models.JSONData{
			"scatter_histogram":    histogram,
			"symbol_frequencies":   report.SymbolFrequencies,
			"frequency_deviations": report.FrequencyDeviations,
			"round_trip_checks":    report.RoundTripChecks,
		},
		ElapsedMs: report.Elapsed.Milliseconds(),
	})
}

func printReport(report *cascade.SimulationReport) {
	fmt.Println("═══════════════════════════════════════════════")
	fmt.Printf("分布一致性校验  模式=%s  版本=%s\n", report.Mode, cascade.StripVersion)
	fmt.Println("═══════════════════════════════════════════════")
	fmt.Printf("模拟网格数:       %d\n", report.Spins)
	fmt.Printf("最大频率偏差:     %.3f pp\n", report.MaxDeviation)
	fmt.Printf("触发率:           %.4f (模型估算 %.4f)\n", report.TriggerRate, report.ModelTriggerRate)
	fmt.Printf("熵预算违规:       %d\n", report.EntropyDrawViolations)
	fmt.Printf("回放比对:         %d 次, 失败 %d\n", report.RoundTripChecks, report.RoundTripFailures)
	fmt.Printf("耗时:             %s\n", report.Elapsed)

	fmt.Println("符号频率 (经验 / 目标):")
	for _, sym := range cascade.AllSymbols {
		fmt.Printf("  %-14s %6.3f%% / %6.3f%%\n",
			sym, report.SymbolFrequencies[sym], report.ExpectedFrequencies[sym])
	}

	if report.Passed {
		fmt.Println("结果: 通过")
	} else {
		fmt.Println("结果: 未通过")
	}
}

func printDivergence(report *cascade.DivergenceReport) {
	fmt.Println("───────────────────────────────────────────────")
	fmt.Printf("朴素逐格采样交叉验证  模式=%s  网格数=%d\n", report.Mode, report.Spins)
	fmt.Printf("最大边际分歧: %.3f pp\n", report.MaxDivergence)
	for _, sym := range cascade.AllSymbols {
		fmt.Printf("  %-14s 卷轴 %6.3f%% / 朴素 %6.3f%%\n",
			sym, report.StripFrequencies[sym], report.NaiveFrequencies[sym])
	}
}

// printVersion 打印版本信息
func printVersion() {
	fmt.Printf("级联网格校验器\n")
	fmt.Printf("版本: %s\n", Version)
	fmt.Printf("构建时间: %s\n", BuildTime)
	fmt.Printf("Git提交: %s\n", GitCommit)
	fmt.Printf("Go版本: %s\n", runtime.Version())
	fmt.Printf("操作系统: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// printHelp 打印帮助信息
func printHelp() {
	fmt.Println("级联网格校验器")
	fmt.Println()
	fmt.Println("用法:")
	fmt.Println("  cascade-simulator [选项]")
	fmt.Println()
	fmt.Println("选项:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("环境变量:")
	fmt.Println("  CASCADE_CORE_SIMULATION_SPINS   模拟网格数")
	fmt.Println("  CASCADE_CORE_AUDIT_SINK         审计接收器 (nop/log/db)")
	fmt.Println()
	fmt.Println("示例:")
	fmt.Println("  cascade-simulator -config=/path/to/config.yaml")
	fmt.Println("  cascade-simulator -mode=feature -spins=100000 -naive")
}
