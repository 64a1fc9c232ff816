package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/cascade-core/internal/game/cascade"
	"github.com/wfunc/cascade-core/internal/models"
	"github.com/wfunc/cascade-core/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSinkDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AuditRecord{}))
	return db
}

func testEvent(kind cascade.AuditEventKind) cascade.AuditEvent {
	return cascade.AuditEvent{
		Timestamp:   time.Now().UnixMilli(),
		Event:       kind,
		GeneratorID: "gen-test",
		Data: map[string]interface{}{
			"strip_version": "2.0.0",
			"mode":          "base",
			"stop_positions": []int{1, 2, 3, 4, 5, 6},
		},
	}
}

func TestDBSink_RecordAndFlush(t *testing.T) {
	db := setupSinkDB(t)
	sink := NewDBSink(db, DBSinkConfig{
		BufferSize:    16,
		BatchSize:     4,
		FlushInterval: 10 * time.Millisecond,
	})

	for i := 0; i < 10; i++ {
		sink.Record(testEvent(cascade.AuditGridGenerated))
	}
	require.NoError(t, sink.Close())

	repo := repository.NewAuditRecordRepository(db)
	count, err := repo.CountByEvent(string(cascade.AuditGridGenerated))
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)
	assert.Equal(t, int64(0), sink.Dropped())

	// 版本与模式应被提取为独立列
	records, _, err := repo.Query(&models.AuditRecordQuery{StripVersion: "2.0.0", Mode: "base"})
	require.NoError(t, err)
	assert.Len(t, records, 10)
}

func TestDBSink_RecordAfterClose(t *testing.T) {
	db := setupSinkDB(t)
	sink := NewDBSink(db, DefaultDBSinkConfig())
	require.NoError(t, sink.Close())

	// 关闭后写入被丢弃而不是panic
	sink.Record(testEvent(cascade.AuditGridGenerated))
	assert.Equal(t, int64(1), sink.Dropped())

	// 重复关闭幂等
	require.NoError(t, sink.Close())
}

func TestDBSink_DropsWhenBufferFull(t *testing.T) {
	db := setupSinkDB(t)
	// 极小缓冲加上长刷新间隔，迫使缓冲填满
	sink := NewDBSink(db, DBSinkConfig{
		BufferSize:    1,
		BatchSize:     100,
		FlushInterval: time.Hour,
	})
	defer sink.Close()

	for i := 0; i < 200; i++ {
		sink.Record(testEvent(cascade.AuditGridGenerated))
	}

	// 写入速度远超消费速度，必然有丢弃；丢弃不影响调用方
	assert.Greater(t, sink.Dropped(), int64(0))
}

func TestMultiSink(t *testing.T) {
	db := setupSinkDB(t)
	dbSink := NewDBSink(db, DBSinkConfig{
		BufferSize:    16,
		BatchSize:     4,
		FlushInterval: 10 * time.Millisecond,
	})
	multi := NewMultiSink(cascade.NopSink{}, dbSink)

	multi.Record(testEvent(cascade.AuditStopPositionsGenerated))
	multi.Record(testEvent(cascade.AuditGridGenerated))
	require.NoError(t, dbSink.Close())

	repo := repository.NewAuditRecordRepository(db)
	stats, err := repo.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalCount)
}

func TestZapSink_Record(t *testing.T) {
	// 日志接收器只要不panic即可
	sink := NewZapSink()
	assert.NotPanics(t, func() {
		sink.Record(testEvent(cascade.AuditGeneratorInitialized))
	})
}
