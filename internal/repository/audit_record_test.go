package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/cascade-core/internal/models"
)

func newTestAuditRecord(event, generatorID string) *models.AuditRecord {
	return &models.AuditRecord{
		Event:        event,
		GeneratorID:  generatorID,
		StripVersion: "2.0.0",
		Mode:         "base",
		Payload: models.JSONData{
			"stop_positions": []interface{}{float64(10), float64(25), float64(40), float64(55), float64(70), float64(85)},
		},
	}
}

func TestAuditRecordRepository_Create(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewAuditRecordRepository(db)

	record := newTestAuditRecord("grid_generated_from_strips", "gen-001")
	err := repo.Create(record)
	require.NoError(t, err)
	assert.NotZero(t, record.ID)
	assert.NotZero(t, record.Timestamp) // BeforeCreate应补全时间戳

	// 验证记录可读回
	found, err := repo.GetByID(record.ID)
	require.NoError(t, err)
	assert.Equal(t, "grid_generated_from_strips", found.Event)
	assert.Equal(t, "gen-001", found.GeneratorID)
	assert.Equal(t, "2.0.0", found.StripVersion)
	assert.Contains(t, found.Payload, "stop_positions")
}

func TestAuditRecordRepository_CreateBatch(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewAuditRecordRepository(db)

	// 空批次不报错
	require.NoError(t, repo.CreateBatch(nil))

	records := []*models.AuditRecord{
		newTestAuditRecord("stop_positions_generated", "gen-002"),
		newTestAuditRecord("grid_generated_from_strips", "gen-002"),
		newTestAuditRecord("replacement_symbol_generated", "gen-002"),
	}
	err := repo.CreateBatch(records)
	require.NoError(t, err)

	found, err := repo.GetByGeneratorID("gen-002")
	require.NoError(t, err)
	assert.Len(t, found, 3)
}

func TestAuditRecordRepository_Query(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewAuditRecordRepository(db)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(newTestAuditRecord("grid_generated_from_strips", "gen-003")))
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(newTestAuditRecord("replacement_batch_generated", "gen-003")))
	}

	// 按事件过滤
	records, total, err := repo.Query(&models.AuditRecordQuery{
		Event: "grid_generated_from_strips",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, records, 5)

	// 分页
	records, total, err = repo.Query(&models.AuditRecordQuery{
		GeneratorID: "gen-003",
		Limit:       4,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8), total)
	assert.Len(t, records, 4)

	// 按版本过滤
	records, total, err = repo.Query(&models.AuditRecordQuery{
		StripVersion: "1.0.0",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, records)
}

func TestAuditRecordRepository_CountByEvent(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewAuditRecordRepository(db)

	require.NoError(t, repo.Create(newTestAuditRecord("generator_initialized", "gen-004")))
	require.NoError(t, repo.Create(newTestAuditRecord("grid_generated_from_strips", "gen-004")))
	require.NoError(t, repo.Create(newTestAuditRecord("grid_generated_from_strips", "gen-004")))

	count, err := repo.CountByEvent("grid_generated_from_strips")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByEvent("statistics_reset")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestAuditRecordRepository_GetStats(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewAuditRecordRepository(db)

	require.NoError(t, repo.Create(newTestAuditRecord("generator_initialized", "gen-005")))
	require.NoError(t, repo.Create(newTestAuditRecord("grid_generated_from_strips", "gen-005")))
	require.NoError(t, repo.Create(newTestAuditRecord("grid_generated_from_strips", "gen-005")))

	stats, err := repo.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalCount)
	assert.Equal(t, int64(1), stats.CountsByEvent["generator_initialized"])
	assert.Equal(t, int64(2), stats.CountsByEvent["grid_generated_from_strips"])
	assert.NotZero(t, stats.FirstAt)
	assert.NotZero(t, stats.LastAt)
}

func TestAuditRecordRepository_CleanupOldRecords(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewAuditRecordRepository(db)

	old := newTestAuditRecord("grid_generated_from_strips", "gen-006")
	old.CreatedAt = time.Now().Add(-48 * time.Hour)
	require.NoError(t, repo.Create(old))
	require.NoError(t, repo.Create(newTestAuditRecord("grid_generated_from_strips", "gen-006")))

	deleted, err := repo.CleanupOldRecords(time.Now().Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	found, err := repo.GetByGeneratorID("gen-006")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}
