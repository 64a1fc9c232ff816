package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// JSONData 用于存储JSON格式的数据
type JSONData map[string]interface{}

// Value 实现 driver.Valuer 接口
func (j JSONData) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan 实现 sql.Scanner 接口
func (j *JSONData) Scan(value interface{}) error {
	if value == nil {
		*j = make(map[string]interface{})
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		strVal, ok := value.(string)
		if !ok {
			return nil
		}
		bytes = []byte(strVal)
	}
	return json.Unmarshal(bytes, j)
}

// AuditRecord 生成器审计记录。
// 一行对应一条审计事件，Payload保存事件的完整参数，
// 网格生成事件凭 {停止位, 模式, 卷轴版本} 即可完整回放。
type AuditRecord struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `gorm:"index;not null" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// 事件信息
	Event       string `gorm:"type:varchar(64);index;not null" json:"event"`        // 事件类型
	GeneratorID string `gorm:"type:varchar(64);index;not null" json:"generator_id"` // 生成器实例标识

	// 回放关键字段（从Payload中提取，便于索引查询）
	StripVersion string `gorm:"type:varchar(32);index" json:"strip_version,omitempty"` // 卷轴版本
	Mode         string `gorm:"type:varchar(16);index" json:"mode,omitempty"`          // 采样模式

	// 事件参数
	Payload JSONData `gorm:"type:json" json:"payload,omitempty"`

	// 时间
	Timestamp int64 `gorm:"index" json:"timestamp"` // Unix时间戳（毫秒）
}

// TableName 指定表名
func (AuditRecord) TableName() string {
	return "audit_records"
}

// BeforeCreate 创建前的钩子
func (a *AuditRecord) BeforeCreate(tx *gorm.DB) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	if a.Timestamp == 0 {
		a.Timestamp = time.Now().UnixMilli()
	}
	return nil
}

// AuditRecordQuery 查询参数
type AuditRecordQuery struct {
	Event        string     `json:"event,omitempty"`
	GeneratorID  string     `json:"generator_id,omitempty"`
	StripVersion string     `json:"strip_version,omitempty"`
	Mode         string     `json:"mode,omitempty"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	Limit        int        `json:"limit,omitempty"`
	Offset       int        `json:"offset,omitempty"`
	OrderBy      string     `json:"order_by,omitempty"`
}

// AuditRecordStats 统计信息
type AuditRecordStats struct {
	TotalCount    int64            `json:"total_count"`
	CountsByEvent map[string]int64 `json:"counts_by_event"`
	FirstAt       int64            `json:"first_at"`
	LastAt        int64            `json:"last_at"`
}
