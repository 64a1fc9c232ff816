package cascade

import (
	"github.com/wfunc/cascade-core/internal/errors"
)

// ReconstructGrid 由{停止位, 模式, 卷轴版本}确定性地重建网格，
// 用于审计回放与测试，全程不消耗任何熵。
// 版本与当前注册表不一致时拒绝重建：在别的数学版本下回放
// 会悄悄歪曲历史结果，宁可失败也不猜测。
func (g *GridGenerator) ReconstructGrid(stopPositions []int, mode Mode, stripVersion string) (Grid, error) {
	if stripVersion != g.registry.Version() {
		detail := "请求版本 " + stripVersion + "，当前版本 " + g.registry.Version()
		if g.registry.IsArchivedVersion(stripVersion) {
			detail += "（历史版本，需加载对应版本的卷轴数据后回放）"
		}
		return nil, errors.New(errors.ErrVersionMismatch, detail)
	}

	if len(stopPositions) != ColumnCount {
		return nil, errors.Newf(errors.ErrInvalidInput,
			"停止位数量 %d，应为 %d", len(stopPositions), ColumnCount)
	}
	for c, pos := range stopPositions {
		if pos < 0 || pos >= StripLength {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"第 %d 列停止位 %d 超出有效范围 [0,%d)", c, pos, StripLength)
		}
	}

	strips, err := g.registry.GetStrips(mode)
	if err != nil {
		return nil, err
	}

	// 与GenerateInitialGrid完全相同的索引规则
	grid := make(Grid, ColumnCount)
	for c := 0; c < ColumnCount; c++ {
		grid[c] = make([]Symbol, g.cfg.Rows)
		for r := 0; r < g.cfg.Rows; r++ {
			grid[c][r] = strips[c][(stopPositions[c]+r)%StripLength]
		}
	}

	g.emit(AuditGridReconstructed, map[string]interface{}{
		"stop_positions": stopPositions,
		"strip_version":  stripVersion,
		"mode":           mode.String(),
	})

	return grid, nil
}
