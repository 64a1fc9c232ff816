package repository

import (
	"github.com/wfunc/cascade-core/internal/models"
	"gorm.io/gorm"
)

// SimulationRunRepository 校验结果仓库
type SimulationRunRepository struct {
	db *gorm.DB
}

// NewSimulationRunRepository 创建校验结果仓库
func NewSimulationRunRepository(db *gorm.DB) *SimulationRunRepository {
	return &SimulationRunRepository{
		db: db,
	}
}

// Create 保存一次校验结果
func (r *SimulationRunRepository) Create(run *models.SimulationRun) error {
	return r.db.Create(run).Error
}

// GetByID 根据ID获取校验结果
func (r *SimulationRunRepository) GetByID(id uint) (*models.SimulationRun, error) {
	var run models.SimulationRun
	err := r.db.First(&run, id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// GetLatestByVersion 获取指定卷轴版本最近的一次校验结果
func (r *SimulationRunRepository) GetLatestByVersion(stripVersion, mode string) (*models.SimulationRun, error) {
	var run models.SimulationRun
	err := r.db.Where("strip_version = ? AND mode = ?", stripVersion, mode).
		Order("created_at DESC").
		First(&run).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// ListByVersion 列出指定卷轴版本的全部校验结果
func (r *SimulationRunRepository) ListByVersion(stripVersion string, p *Pagination) ([]*models.SimulationRun, error) {
	var runs []*models.SimulationRun
	db := r.db.Where("strip_version = ?", stripVersion).
		Order("created_at DESC")
	if p != nil {
		if err := r.db.Model(&models.SimulationRun{}).
			Where("strip_version = ?", stripVersion).
			Count(&p.Total).Error; err != nil {
			return nil, err
		}
		db = db.Scopes(Paginate(p))
	}
	err := db.Find(&runs).Error
	return runs, err
}

// CountFailed 统计未通过的校验次数
func (r *SimulationRunRepository) CountFailed() (int64, error) {
	var count int64
	err := r.db.Model(&models.SimulationRun{}).
		Where("passed = ?", false).
		Count(&count).Error
	return count, err
}
