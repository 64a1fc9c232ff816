package repository

import (
	"time"

	"github.com/wfunc/cascade-core/internal/models"
	"gorm.io/gorm"
)

// AuditRecordRepository 审计记录仓库
type AuditRecordRepository struct {
	db *gorm.DB
}

// NewAuditRecordRepository 创建审计记录仓库
func NewAuditRecordRepository(db *gorm.DB) *AuditRecordRepository {
	return &AuditRecordRepository{
		db: db,
	}
}

// Create 创建审计记录
func (r *AuditRecordRepository) Create(record *models.AuditRecord) error {
	return r.db.Create(record).Error
}

// CreateBatch 批量创建审计记录
func (r *AuditRecordRepository) CreateBatch(records []*models.AuditRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.CreateInBatches(records, 100).Error
}

// GetByID 根据ID获取审计记录
func (r *AuditRecordRepository) GetByID(id uint) (*models.AuditRecord, error) {
	var record models.AuditRecord
	err := r.db.First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByGeneratorID 获取指定生成器实例的全部记录
func (r *AuditRecordRepository) GetByGeneratorID(generatorID string) ([]*models.AuditRecord, error) {
	var records []*models.AuditRecord
	err := r.db.Where("generator_id = ?", generatorID).
		Order("timestamp ASC").
		Find(&records).Error
	return records, err
}

// Query 查询审计记录
func (r *AuditRecordRepository) Query(query *models.AuditRecordQuery) ([]*models.AuditRecord, int64, error) {
	db := r.db.Model(&models.AuditRecord{})

	// 构建查询条件
	if query.Event != "" {
		db = db.Where("event = ?", query.Event)
	}
	if query.GeneratorID != "" {
		db = db.Where("generator_id = ?", query.GeneratorID)
	}
	if query.StripVersion != "" {
		db = db.Where("strip_version = ?", query.StripVersion)
	}
	if query.Mode != "" {
		db = db.Where("mode = ?", query.Mode)
	}
	if query.StartTime != nil {
		db = db.Where("created_at >= ?", *query.StartTime)
	}
	if query.EndTime != nil {
		db = db.Where("created_at <= ?", *query.EndTime)
	}

	// 获取总数
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 排序
	orderBy := query.OrderBy
	if orderBy == "" {
		orderBy = "timestamp DESC"
	}
	db = db.Order(orderBy)

	// 分页
	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}
	if query.Offset > 0 {
		db = db.Offset(query.Offset)
	}

	var records []*models.AuditRecord
	err := db.Find(&records).Error
	return records, total, err
}

// CountByEvent 按事件类型统计记录数
func (r *AuditRecordRepository) CountByEvent(event string) (int64, error) {
	var count int64
	err := r.db.Model(&models.AuditRecord{}).
		Where("event = ?", event).
		Count(&count).Error
	return count, err
}

// GetStats 获取统计信息
func (r *AuditRecordRepository) GetStats() (*models.AuditRecordStats, error) {
	stats := &models.AuditRecordStats{
		CountsByEvent: make(map[string]int64),
	}

	if err := r.db.Model(&models.AuditRecord{}).Count(&stats.TotalCount).Error; err != nil {
		return nil, err
	}

	type eventCount struct {
		Event string
		Count int64
	}
	var rows []eventCount
	err := r.db.Model(&models.AuditRecord{}).
		Select("event, COUNT(*) as count").
		Group("event").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.CountsByEvent[row.Event] = row.Count
	}

	if stats.TotalCount > 0 {
		var first, last models.AuditRecord
		if err := r.db.Order("timestamp ASC").First(&first).Error; err == nil {
			stats.FirstAt = first.Timestamp
		}
		if err := r.db.Order("timestamp DESC").First(&last).Error; err == nil {
			stats.LastAt = last.Timestamp
		}
	}

	return stats, nil
}

// CleanupOldRecords 清理过期记录
func (r *AuditRecordRepository) CleanupOldRecords(before time.Time) (int64, error) {
	result := r.db.Unscoped().
		Where("created_at < ?", before).
		Delete(&models.AuditRecord{})
	return result.RowsAffected, result.Error
}
