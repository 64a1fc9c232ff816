package models

import (
	"time"

	"gorm.io/gorm"
)

// SimulationRun 一次蒙特卡洛校验的持久化结果，
// 用于跨版本对比发布前的分布一致性。
type SimulationRun struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `gorm:"index;not null" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	StripVersion string `gorm:"type:varchar(32);index;not null" json:"strip_version"`
	Mode         string `gorm:"type:varchar(16);index;not null" json:"mode"`
	Spins        int    `gorm:"not null" json:"spins"`

	MaxDeviation     float64 `gorm:"type:decimal(10,6)" json:"max_deviation"`      // 最大频率偏差（百分点）
	TriggerRate      float64 `gorm:"type:decimal(10,6)" json:"trigger_rate"`       // 经验触发率
	ModelTriggerRate float64 `gorm:"type:decimal(10,6)" json:"model_trigger_rate"` // 二项模型估算

	EntropyDrawViolations int  `gorm:"default:0" json:"entropy_draw_violations"`
	RoundTripFailures     int  `gorm:"default:0" json:"round_trip_failures"`
	Passed                bool `gorm:"index" json:"passed"`

	Report    JSONData `gorm:"type:json" json:"report,omitempty"` // 完整报告
	ElapsedMs int64    `gorm:"default:0" json:"elapsed_ms"`
}

// TableName 指定表名
func (SimulationRun) TableName() string {
	return "simulation_runs"
}

// BeforeCreate 创建前的钩子
func (s *SimulationRun) BeforeCreate(tx *gorm.DB) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	return nil
}
