package audit

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/wfunc/cascade-core/internal/game/cascade"
	"github.com/wfunc/cascade-core/internal/logger"
	"github.com/wfunc/cascade-core/internal/models"
	"github.com/wfunc/cascade-core/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ZapSink 把审计事件写到结构化日志
type ZapSink struct {
	log *zap.Logger
}

// NewZapSink 创建日志审计接收器
func NewZapSink() *ZapSink {
	return &ZapSink{
		log: logger.WithModule("audit"),
	}
}

// Record 实现 cascade.AuditSink 接口
func (s *ZapSink) Record(event cascade.AuditEvent) {
	s.log.Info("audit_event",
		zap.String("event", string(event.Event)),
		zap.String("generator_id", event.GeneratorID),
		zap.Int64("timestamp", event.Timestamp),
		zap.Any("data", event.Data),
	)
}

// DBSinkConfig 数据库审计接收器配置
type DBSinkConfig struct {
	BufferSize    int           // 事件缓冲区容量
	BatchSize     int           // 单次批量写入的最大条数
	FlushInterval time.Duration // 批量写入的最长等待时间
	FailClosed    bool          // 缓冲满时阻塞调用方而非丢弃事件
}

// DefaultDBSinkConfig 默认配置
func DefaultDBSinkConfig() DBSinkConfig {
	return DBSinkConfig{
		BufferSize:    1024,
		BatchSize:     100,
		FlushInterval: time.Second,
		FailClosed:    false,
	}
}

// DBSink 把审计事件异步批量写入数据库。
// Record从生成路径调用，默认非阻塞：缓冲满时丢弃事件并累加丢弃计数，
// 绝不让审计压力拖慢网格生成。FailClosed=true时改为阻塞等待，
// 用于不允许丢失审计痕迹的合规部署。
type DBSink struct {
	cfg     DBSinkConfig
	repo    *repository.AuditRecordRepository
	events  chan cascade.AuditEvent
	dropped atomic.Int64
	closed  atomic.Bool
	wg      sync.WaitGroup
	log     *zap.Logger
}

// NewDBSink 创建数据库审计接收器并启动后台写入
func NewDBSink(db *gorm.DB, cfg DBSinkConfig) *DBSink {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultDBSinkConfig().BufferSize
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultDBSinkConfig().BatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = DefaultDBSinkConfig().FlushInterval
	}

	s := &DBSink{
		cfg:    cfg,
		repo:   repository.NewAuditRecordRepository(db),
		events: make(chan cascade.AuditEvent, cfg.BufferSize),
		log:    logger.WithModule("audit"),
	}

	s.wg.Add(1)
	go s.writeLoop()

	return s
}

// Record 实现 cascade.AuditSink 接口
func (s *DBSink) Record(event cascade.AuditEvent) {
	if s.closed.Load() {
		s.dropped.Add(1)
		return
	}

	if s.cfg.FailClosed {
		s.events <- event
		return
	}

	select {
	case s.events <- event:
	default:
		s.dropped.Add(1)
	}
}

// Dropped 返回因缓冲满被丢弃的事件数
func (s *DBSink) Dropped() int64 {
	return s.dropped.Load()
}

// Close 停止接收并把剩余事件刷入数据库
func (s *DBSink) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(s.events)
	s.wg.Wait()

	if n := s.dropped.Load(); n > 0 {
		s.log.Warn("审计事件丢弃", zap.Int64("dropped", n))
	}
	return nil
}

// writeLoop 后台批量写入循环
func (s *DBSink) writeLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]*models.AuditRecord, 0, s.cfg.BatchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := s.repo.CreateBatch(batch); err != nil {
			s.log.Error("审计批量写入失败",
				zap.Int("count", len(batch)),
				zap.Error(err),
			)
		}
		batch = batch[:0]
	}

	for {
		select {
		case event, ok := <-s.events:
			if !ok {
				flush()
				return
			}
			batch = append(batch, toRecord(event))
			if len(batch) >= s.cfg.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

// toRecord 把审计事件转成数据库记录，
// 提出卷轴版本与模式作为独立索引列
func toRecord(event cascade.AuditEvent) *models.AuditRecord {
	record := &models.AuditRecord{
		Event:       string(event.Event),
		GeneratorID: event.GeneratorID,
		Timestamp:   event.Timestamp,
		Payload:     models.JSONData(event.Data),
	}

	if v, ok := event.Data["strip_version"].(string); ok {
		record.StripVersion = v
	}
	if m, ok := event.Data["mode"].(string); ok {
		record.Mode = m
	}

	return record
}

// MultiSink 把事件广播到多个接收器
type MultiSink struct {
	sinks []cascade.AuditSink
}

// NewMultiSink 创建广播接收器
func NewMultiSink(sinks ...cascade.AuditSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Record 实现 cascade.AuditSink 接口
func (s *MultiSink) Record(event cascade.AuditEvent) {
	for _, sink := range s.sinks {
		sink.Record(event)
	}
}
