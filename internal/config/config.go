package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	Generator  GeneratorConfig  `mapstructure:"generator"`
	Audit      AuditConfig      `mapstructure:"audit"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Log        LogConfig        `mapstructure:"log"`
}

// GeneratorConfig 网格生成器配置
type GeneratorConfig struct {
	Rows         int    `mapstructure:"rows"`
	Columns      int    `mapstructure:"columns"`
	AuditEnabled bool   `mapstructure:"audit_enabled"`
	DefaultMode  string `mapstructure:"default_mode"` // base 或 feature
}

// AuditConfig 审计配置
type AuditConfig struct {
	Sink          string        `mapstructure:"sink"`       // nop / log / db
	BufferSize    int           `mapstructure:"buffer_size"`
	BatchSize     int           `mapstructure:"batch_size"`
	FlushInterval time.Duration `mapstructure:"flush_interval"`
	FailClosed    bool          `mapstructure:"fail_closed"` // 缓冲满时是否阻塞而非丢弃
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	DSN             string        `mapstructure:"dsn"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	LogLevel        string        `mapstructure:"log_level"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// SimulationConfig 蒙特卡洛校验配置
type SimulationConfig struct {
	Spins              int     `mapstructure:"spins"`
	FrequencyTolerance float64 `mapstructure:"frequency_tolerance"`
	TriggerRateMin     float64 `mapstructure:"trigger_rate_min"`
	TriggerRateMax     float64 `mapstructure:"trigger_rate_max"`
	ScatterThreshold   int     `mapstructure:"scatter_threshold"`
	RoundTripInterval  int     `mapstructure:"round_trip_interval"`
	NaiveComparison    bool    `mapstructure:"naive_comparison"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level   string            `mapstructure:"level"`
	Format  string            `mapstructure:"format"`
	Output  string            `mapstructure:"output"`
	File    LogFileConfig     `mapstructure:"file"`
	Modules map[string]string `mapstructure:"modules"`
}

// LogFileConfig 日志文件配置
type LogFileConfig struct {
	Path       string `mapstructure:"path"`
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

var (
	cfg  *Config
	once sync.Once
	mu   sync.RWMutex
	v    *viper.Viper
)

// Init 初始化配置
func Init(configPath string) error {
	var err error
	once.Do(func() {
		v = viper.New()

		// 设置配置文件路径
		if configPath != "" {
			v.SetConfigFile(configPath)
		} else {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath("./config")
			v.AddConfigPath(".")
		}

		// 设置环境变量前缀
		v.SetEnvPrefix("CASCADE_CORE")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		// 设置默认值
		setDefaults(v)

		// 读取配置文件
		if err = v.ReadInConfig(); err != nil {
			// 如果配置文件不存在，使用默认配置
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return
			}
			err = nil
		}

		// 解析配置到结构体
		cfg = &Config{}
		if err = v.Unmarshal(cfg); err != nil {
			return
		}
	})

	return err
}

// setDefaults 设置默认配置值
func setDefaults(v *viper.Viper) {
	// 生成器默认配置
	v.SetDefault("generator.rows", 5)
	v.SetDefault("generator.columns", 6)
	v.SetDefault("generator.audit_enabled", true)
	v.SetDefault("generator.default_mode", "base")

	// 审计默认配置
	v.SetDefault("audit.sink", "log")
	v.SetDefault("audit.buffer_size", 1024)
	v.SetDefault("audit.batch_size", 100)
	v.SetDefault("audit.flush_interval", "1s")
	v.SetDefault("audit.fail_closed", false)

	// 数据库默认配置
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "./data/cascade-core.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("database.auto_migrate", true)

	// 校验默认配置
	v.SetDefault("simulation.spins", 100000)
	v.SetDefault("simulation.frequency_tolerance", 5.0)
	v.SetDefault("simulation.trigger_rate_min", 0.01)
	v.SetDefault("simulation.trigger_rate_max", 0.05)
	v.SetDefault("simulation.scatter_threshold", 4)
	v.SetDefault("simulation.round_trip_interval", 1000)
	v.SetDefault("simulation.naive_comparison", false)

	// 日志默认配置
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "both")
	v.SetDefault("log.file.path", "./logs")
	v.SetDefault("log.file.filename", "cascade-core.log")
	v.SetDefault("log.file.max_size", 100)
	v.SetDefault("log.file.max_age", 30)
	v.SetDefault("log.file.max_backups", 7)
	v.SetDefault("log.file.compress", true)
}

// Get 获取配置实例
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// Watch 监听配置文件变化
func Watch(callback func(*Config)) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		mu.Lock()
		defer mu.Unlock()

		newCfg := &Config{}
		if err := v.Unmarshal(newCfg); err != nil {
			fmt.Printf("配置重载失败: %v\n", err)
			return
		}

		cfg = newCfg

		if callback != nil {
			callback(cfg)
		}

		fmt.Println("配置已重新加载")
	})
}

// GetString 获取字符串配置
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt 获取整数配置
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetBool 获取布尔配置
func GetBool(key string) bool {
	return v.GetBool(key)
}

// GetFloat64 获取浮点数配置
func GetFloat64(key string) float64 {
	return v.GetFloat64(key)
}

// GetDuration 获取时间间隔配置
func GetDuration(key string) time.Duration {
	return v.GetDuration(key)
}

// IsSet 检查配置项是否存在
func IsSet(key string) bool {
	return v.IsSet(key)
}

// Set 动态设置配置值
func Set(key string, value interface{}) {
	v.Set(key, value)
}
