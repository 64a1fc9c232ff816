package cascade

// 卷轴条数据。12条卷轴（6列 × 基础/免费两种模式），每条120个符号。
// 符号按2-3个的短连段排布以提高大面积同符号簇的出现率，
// scatter单个插入并保持间距，使每条卷轴的scatter数落在审计区间内。
// 任何改动都必须发布新的StripVersion，严禁原地修改。

const (
	// StripVersion 当前卷轴数据版本。历史网格只能用生成时的版本回放。
	StripVersion = "2.0.0"
)

// archivedStripVersions 已退役的历史版本号。
// 回放请求命中这些版本时给出明确提示，而不是含糊的版本不符。
var archivedStripVersions = []string{"1.0.0"}

var baseStrips = [ColumnCount][]Symbol{
	{
		SymbolTimeGem, SymbolTimeGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolMindGem, SymbolMindGem, SymbolCrown, SymbolCrown,
		SymbolCrown, SymbolSoulGem, SymbolSoulGem, SymbolMindGem,
		SymbolMindGem, SymbolScatter, SymbolTimeGem, SymbolTimeGem,
		SymbolSpaceGem, SymbolSpaceGem, SymbolSpaceGem, SymbolMindGem,
		SymbolMindGem, SymbolMindGem, SymbolRealityGem, SymbolRealityGem,
		SymbolCrown, SymbolCrown, SymbolSpaceGem, SymbolSpaceGem,
		SymbolMindGem, SymbolMindGem, SymbolMindGem, SymbolRing,
		SymbolRing, SymbolTimeGem, SymbolTimeGem, SymbolTimeGem,
		SymbolScatter, SymbolCrown, SymbolCrown, SymbolCrown,
		SymbolChalice, SymbolChalice, SymbolSoulGem, SymbolSoulGem,
		SymbolSoulGem, SymbolPowerGem, SymbolPowerGem, SymbolRing,
		SymbolRing, SymbolChalice, SymbolChalice, SymbolChalice,
		SymbolTimeGem, SymbolTimeGem, SymbolPowerGem, SymbolPowerGem,
		SymbolSpaceGem, SymbolSpaceGem, SymbolRealityGem, SymbolRealityGem,
		SymbolScatter, SymbolSpaceGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolTimeGem, SymbolTimeGem, SymbolPowerGem, SymbolPowerGem,
		SymbolPowerGem, SymbolSpaceGem, SymbolSpaceGem, SymbolSoulGem,
		SymbolSoulGem, SymbolMindGem, SymbolMindGem, SymbolPowerGem,
		SymbolPowerGem, SymbolPowerGem, SymbolMindGem, SymbolMindGem,
		SymbolRing, SymbolRing, SymbolTimeGem, SymbolTimeGem,
		SymbolCrown, SymbolCrown, SymbolScatter, SymbolSpaceGem,
		SymbolSpaceGem, SymbolChalice, SymbolChalice, SymbolTimeGem,
		SymbolTimeGem, SymbolSoulGem, SymbolSoulGem, SymbolSoulGem,
		SymbolChalice, SymbolChalice, SymbolPowerGem, SymbolPowerGem,
		SymbolPowerGem, SymbolRealityGem, SymbolScatter, SymbolRealityGem,
		SymbolRing, SymbolRing, SymbolRealityGem, SymbolRealityGem,
		SymbolChalice, SymbolSpaceGem, SymbolRealityGem, SymbolRealityGem,
		SymbolCrown, SymbolCrown, SymbolMindGem, SymbolRealityGem,
		SymbolTimeGem, SymbolTimeGem, SymbolTimeGem, SymbolRealityGem,
	},
	{
		SymbolCrown, SymbolCrown, SymbolSoulGem, SymbolSoulGem,
		SymbolChalice, SymbolChalice, SymbolPowerGem, SymbolPowerGem,
		SymbolScatter, SymbolCrown, SymbolCrown, SymbolRealityGem,
		SymbolRealityGem, SymbolRealityGem, SymbolPowerGem, SymbolPowerGem,
		SymbolCrown, SymbolCrown, SymbolPowerGem, SymbolPowerGem,
		SymbolTimeGem, SymbolTimeGem, SymbolTimeGem, SymbolCrown,
		SymbolCrown, SymbolRealityGem, SymbolRealityGem, SymbolRealityGem,
		SymbolPowerGem, SymbolPowerGem, SymbolRing, SymbolRing,
		SymbolRing, SymbolCrown, SymbolCrown, SymbolTimeGem,
		SymbolTimeGem, SymbolRealityGem, SymbolScatter, SymbolRealityGem,
		SymbolSoulGem, SymbolSoulGem, SymbolChalice, SymbolChalice,
		SymbolSpaceGem, SymbolSpaceGem, SymbolPowerGem, SymbolPowerGem,
		SymbolTimeGem, SymbolTimeGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolTimeGem, SymbolTimeGem, SymbolRealityGem, SymbolRealityGem,
		SymbolScatter, SymbolMindGem, SymbolMindGem, SymbolSpaceGem,
		SymbolSpaceGem, SymbolPowerGem, SymbolPowerGem, SymbolMindGem,
		SymbolMindGem, SymbolSpaceGem, SymbolSpaceGem, SymbolChalice,
		SymbolChalice, SymbolRealityGem, SymbolRealityGem, SymbolChalice,
		SymbolChalice, SymbolMindGem, SymbolMindGem, SymbolSpaceGem,
		SymbolSpaceGem, SymbolMindGem, SymbolMindGem, SymbolScatter,
		SymbolMindGem, SymbolSoulGem, SymbolSoulGem, SymbolTimeGem,
		SymbolTimeGem, SymbolSpaceGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolMindGem, SymbolMindGem, SymbolMindGem, SymbolRing,
		SymbolRing, SymbolCrown, SymbolCrown, SymbolChalice,
		SymbolChalice, SymbolTimeGem, SymbolTimeGem, SymbolPowerGem,
		SymbolMindGem, SymbolMindGem, SymbolTimeGem, SymbolTimeGem,
		SymbolTimeGem, SymbolSpaceGem, SymbolSpaceGem, SymbolSoulGem,
		SymbolSoulGem, SymbolSpaceGem, SymbolSpaceGem, SymbolSoulGem,
		SymbolSoulGem, SymbolRing, SymbolScatter, SymbolRing,
		SymbolRing, SymbolTimeGem, SymbolTimeGem, SymbolMindGem,
	},
	{
		SymbolPowerGem, SymbolPowerGem, SymbolChalice, SymbolChalice,
		SymbolTimeGem, SymbolTimeGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolSpaceGem, SymbolSoulGem, SymbolSoulGem, SymbolSoulGem,
		SymbolRing, SymbolRing, SymbolRing, SymbolScatter,
		SymbolTimeGem, SymbolTimeGem, SymbolRing, SymbolRing,
		SymbolMindGem, SymbolMindGem, SymbolMindGem, SymbolRealityGem,
		SymbolRealityGem, SymbolCrown, SymbolCrown, SymbolSpaceGem,
		SymbolSpaceGem, SymbolSpaceGem, SymbolCrown, SymbolCrown,
		SymbolCrown, SymbolSpaceGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolChalice, SymbolChalice, SymbolChalice, SymbolCrown,
		SymbolCrown, SymbolPowerGem, SymbolScatter, SymbolPowerGem,
		SymbolPowerGem, SymbolCrown, SymbolCrown, SymbolMindGem,
		SymbolMindGem, SymbolRealityGem, SymbolRealityGem, SymbolSpaceGem,
		SymbolSpaceGem, SymbolSpaceGem, SymbolRing, SymbolRing,
		SymbolRing, SymbolMindGem, SymbolScatter, SymbolMindGem,
		SymbolTimeGem, SymbolTimeGem, SymbolTimeGem, SymbolMindGem,
		SymbolMindGem, SymbolChalice, SymbolChalice, SymbolRealityGem,
		SymbolRealityGem, SymbolMindGem, SymbolMindGem, SymbolSpaceGem,
		SymbolSpaceGem, SymbolTimeGem, SymbolTimeGem, SymbolSoulGem,
		SymbolSoulGem, SymbolRealityGem, SymbolRealityGem, SymbolScatter,
		SymbolTimeGem, SymbolTimeGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolMindGem, SymbolMindGem, SymbolRealityGem, SymbolRealityGem,
		SymbolSoulGem, SymbolSoulGem, SymbolChalice, SymbolChalice,
		SymbolPowerGem, SymbolPowerGem, SymbolRealityGem, SymbolRealityGem,
		SymbolTimeGem, SymbolTimeGem, SymbolSoulGem, SymbolSoulGem,
		SymbolSoulGem, SymbolMindGem, SymbolScatter, SymbolMindGem,
		SymbolPowerGem, SymbolPowerGem, SymbolCrown, SymbolCrown,
		SymbolCrown, SymbolChalice, SymbolTimeGem, SymbolTimeGem,
		SymbolTimeGem, SymbolPowerGem, SymbolPowerGem, SymbolTimeGem,
		SymbolTimeGem, SymbolPowerGem, SymbolPowerGem, SymbolSpaceGem,
	},
	{
		SymbolPowerGem, SymbolPowerGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolPowerGem, SymbolPowerGem, SymbolMindGem, SymbolMindGem,
		SymbolMindGem, SymbolSpaceGem, SymbolSpaceGem, SymbolScatter,
		SymbolRealityGem, SymbolRealityGem, SymbolRealityGem, SymbolTimeGem,
		SymbolTimeGem, SymbolChalice, SymbolChalice, SymbolChalice,
		SymbolCrown, SymbolCrown, SymbolCrown, SymbolRealityGem,
		SymbolRealityGem, SymbolRealityGem, SymbolTimeGem, SymbolTimeGem,
		SymbolCrown, SymbolCrown, SymbolScatter, SymbolCrown,
		SymbolTimeGem, SymbolTimeGem, SymbolSoulGem, SymbolSoulGem,
		SymbolSoulGem, SymbolTimeGem, SymbolTimeGem, SymbolMindGem,
		SymbolMindGem, SymbolMindGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolTimeGem, SymbolTimeGem, SymbolRing, SymbolRing,
		SymbolMindGem, SymbolMindGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolRealityGem, SymbolRealityGem, SymbolScatter, SymbolCrown,
		SymbolCrown, SymbolChalice, SymbolChalice, SymbolChalice,
		SymbolSoulGem, SymbolSoulGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolMindGem, SymbolMindGem, SymbolPowerGem, SymbolPowerGem,
		SymbolTimeGem, SymbolTimeGem, SymbolTimeGem, SymbolChalice,
		SymbolChalice, SymbolTimeGem, SymbolTimeGem, SymbolSoulGem,
		SymbolSoulGem, SymbolPowerGem, SymbolPowerGem, SymbolPowerGem,
		SymbolSpaceGem, SymbolSpaceGem, SymbolRealityGem, SymbolScatter,
		SymbolRealityGem, SymbolRealityGem, SymbolCrown, SymbolCrown,
		SymbolChalice, SymbolChalice, SymbolRealityGem, SymbolPowerGem,
		SymbolPowerGem, SymbolPowerGem, SymbolCrown, SymbolCrown,
		SymbolTimeGem, SymbolTimeGem, SymbolRing, SymbolRing,
		SymbolRing, SymbolSpaceGem, SymbolScatter, SymbolSpaceGem,
		SymbolPowerGem, SymbolMindGem, SymbolMindGem, SymbolMindGem,
		SymbolSoulGem, SymbolSoulGem, SymbolRing, SymbolRing,
		SymbolRing, SymbolMindGem, SymbolMindGem, SymbolSpaceGem,
		SymbolSpaceGem, SymbolSoulGem, SymbolTimeGem, SymbolSpaceGem,
	},
	{
		SymbolMindGem, SymbolMindGem, SymbolMindGem, SymbolSoulGem,
		SymbolSoulGem, SymbolSoulGem, SymbolRealityGem, SymbolRealityGem,
		SymbolRealityGem, SymbolSpaceGem, SymbolSpaceGem, SymbolScatter,
		SymbolPowerGem, SymbolPowerGem, SymbolCrown, SymbolCrown,
		SymbolCrown, SymbolChalice, SymbolChalice, SymbolCrown,
		SymbolCrown, SymbolTimeGem, SymbolTimeGem, SymbolCrown,
		SymbolCrown, SymbolRealityGem, SymbolRealityGem, SymbolTimeGem,
		SymbolTimeGem, SymbolTimeGem, SymbolMindGem, SymbolMindGem,
		SymbolTimeGem, SymbolTimeGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolSpaceGem, SymbolTimeGem, SymbolTimeGem, SymbolRealityGem,
		SymbolScatter, SymbolRealityGem, SymbolRing, SymbolRing,
		SymbolRing, SymbolMindGem, SymbolMindGem, SymbolTimeGem,
		SymbolTimeGem, SymbolSoulGem, SymbolSoulGem, SymbolPowerGem,
		SymbolPowerGem, SymbolPowerGem, SymbolMindGem, SymbolMindGem,
		SymbolSpaceGem, SymbolSpaceGem, SymbolMindGem, SymbolMindGem,
		SymbolCrown, SymbolCrown, SymbolScatter, SymbolPowerGem,
		SymbolPowerGem, SymbolPowerGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolSoulGem, SymbolSoulGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolSpaceGem, SymbolPowerGem, SymbolPowerGem, SymbolPowerGem,
		SymbolRing, SymbolRing, SymbolSoulGem, SymbolSoulGem,
		SymbolSoulGem, SymbolRealityGem, SymbolRealityGem, SymbolCrown,
		SymbolCrown, SymbolMindGem, SymbolMindGem, SymbolSpaceGem,
		SymbolScatter, SymbolSpaceGem, SymbolSpaceGem, SymbolChalice,
		SymbolChalice, SymbolSpaceGem, SymbolSpaceGem, SymbolRealityGem,
		SymbolRealityGem, SymbolTimeGem, SymbolTimeGem, SymbolRing,
		SymbolRing, SymbolRing, SymbolTimeGem, SymbolTimeGem,
		SymbolTimeGem, SymbolChalice, SymbolChalice, SymbolRealityGem,
		SymbolChalice, SymbolScatter, SymbolChalice, SymbolTimeGem,
		SymbolTimeGem, SymbolMindGem, SymbolMindGem, SymbolCrown,
		SymbolChalice, SymbolChalice, SymbolPowerGem, SymbolPowerGem,
	},
	{
		SymbolPowerGem, SymbolPowerGem, SymbolRealityGem, SymbolRealityGem,
		SymbolRealityGem, SymbolSoulGem, SymbolSoulGem, SymbolScatter,
		SymbolMindGem, SymbolMindGem, SymbolMindGem, SymbolTimeGem,
		SymbolTimeGem, SymbolSoulGem, SymbolSoulGem, SymbolMindGem,
		SymbolMindGem, SymbolChalice, SymbolChalice, SymbolChalice,
		SymbolRealityGem, SymbolRealityGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolPowerGem, SymbolPowerGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolMindGem, SymbolMindGem, SymbolChalice, SymbolChalice,
		SymbolCrown, SymbolCrown, SymbolCrown, SymbolRing,
		SymbolRing, SymbolChalice, SymbolChalice, SymbolChalice,
		SymbolCrown, SymbolScatter, SymbolCrown, SymbolSpaceGem,
		SymbolSpaceGem, SymbolSpaceGem, SymbolSoulGem, SymbolSoulGem,
		SymbolMindGem, SymbolMindGem, SymbolPowerGem, SymbolPowerGem,
		SymbolMindGem, SymbolMindGem, SymbolRealityGem, SymbolRealityGem,
		SymbolSpaceGem, SymbolSpaceGem, SymbolTimeGem, SymbolTimeGem,
		SymbolChalice, SymbolChalice, SymbolRealityGem, SymbolRealityGem,
		SymbolScatter, SymbolPowerGem, SymbolPowerGem, SymbolPowerGem,
		SymbolSoulGem, SymbolSoulGem, SymbolTimeGem, SymbolTimeGem,
		SymbolPowerGem, SymbolPowerGem, SymbolTimeGem, SymbolTimeGem,
		SymbolSpaceGem, SymbolSpaceGem, SymbolRealityGem, SymbolRealityGem,
		SymbolRing, SymbolRing, SymbolTimeGem, SymbolTimeGem,
		SymbolCrown, SymbolCrown, SymbolCrown, SymbolSpaceGem,
		SymbolScatter, SymbolSpaceGem, SymbolCrown, SymbolCrown,
		SymbolCrown, SymbolTimeGem, SymbolTimeGem, SymbolPowerGem,
		SymbolPowerGem, SymbolRing, SymbolRing, SymbolTimeGem,
		SymbolTimeGem, SymbolTimeGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolSpaceGem, SymbolTimeGem, SymbolTimeGem, SymbolTimeGem,
		SymbolRing, SymbolRing, SymbolMindGem, SymbolMindGem,
		SymbolScatter, SymbolSoulGem, SymbolSoulGem, SymbolCrown,
		SymbolRealityGem, SymbolMindGem, SymbolMindGem, SymbolSpaceGem,
	},
}

var featureStrips = [ColumnCount][]Symbol{
	{
		SymbolPowerGem, SymbolPowerGem, SymbolRing, SymbolRing,
		SymbolSoulGem, SymbolSoulGem, SymbolPowerGem, SymbolPowerGem,
		SymbolCrown, SymbolCrown, SymbolScatter, SymbolSpaceGem,
		SymbolSpaceGem, SymbolSpaceGem, SymbolTimeGem, SymbolTimeGem,
		SymbolTimeGem, SymbolSoulGem, SymbolSoulGem, SymbolMindGem,
		SymbolMindGem, SymbolChalice, SymbolChalice, SymbolSpaceGem,
		SymbolSpaceGem, SymbolRealityGem, SymbolRealityGem, SymbolRealityGem,
		SymbolCrown, SymbolCrown, SymbolRing, SymbolRing,
		SymbolRing, SymbolTimeGem, SymbolTimeGem, SymbolScatter,
		SymbolCrown, SymbolCrown, SymbolRealityGem, SymbolRealityGem,
		SymbolPowerGem, SymbolPowerGem, SymbolPowerGem, SymbolSpaceGem,
		SymbolSpaceGem, SymbolMindGem, SymbolMindGem, SymbolTimeGem,
		SymbolTimeGem, SymbolTimeGem, SymbolMindGem, SymbolMindGem,
		SymbolRealityGem, SymbolScatter, SymbolRealityGem, SymbolChalice,
		SymbolChalice, SymbolTimeGem, SymbolTimeGem, SymbolCrown,
		SymbolCrown, SymbolCrown, SymbolTimeGem, SymbolTimeGem,
		SymbolSpaceGem, SymbolSpaceGem, SymbolRealityGem, SymbolRealityGem,
		SymbolSpaceGem, SymbolSpaceGem, SymbolSpaceGem, SymbolScatter,
		SymbolTimeGem, SymbolTimeGem, SymbolMindGem, SymbolMindGem,
		SymbolCrown, SymbolCrown, SymbolRing, SymbolRing,
		SymbolPowerGem, SymbolPowerGem, SymbolPowerGem, SymbolTimeGem,
		SymbolTimeGem, SymbolTimeGem, SymbolSoulGem, SymbolScatter,
		SymbolSoulGem, SymbolSoulGem, SymbolRealityGem, SymbolRealityGem,
		SymbolSoulGem, SymbolSoulGem, SymbolMindGem, SymbolMindGem,
		SymbolChalice, SymbolChalice, SymbolSpaceGem, SymbolSpaceGem,
		SymbolPowerGem, SymbolPowerGem, SymbolRing, SymbolRing,
		SymbolMindGem, SymbolMindGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolChalice, SymbolChalice, SymbolPowerGem, SymbolScatter,
		SymbolMindGem, SymbolMindGem, SymbolSoulGem, SymbolCrown,
		SymbolRealityGem, SymbolChalice, SymbolChalice, SymbolMindGem,
	},
	{
		SymbolRealityGem, SymbolRealityGem, SymbolCrown, SymbolCrown,
		SymbolRealityGem, SymbolRealityGem, SymbolRealityGem, SymbolTimeGem,
		SymbolTimeGem, SymbolTimeGem, SymbolCrown, SymbolCrown,
		SymbolRealityGem, SymbolRealityGem, SymbolMindGem, SymbolScatter,
		SymbolMindGem, SymbolSoulGem, SymbolSoulGem, SymbolMindGem,
		SymbolMindGem, SymbolPowerGem, SymbolPowerGem, SymbolPowerGem,
		SymbolChalice, SymbolChalice, SymbolMindGem, SymbolMindGem,
		SymbolPowerGem, SymbolPowerGem, SymbolSoulGem, SymbolSoulGem,
		SymbolMindGem, SymbolScatter, SymbolMindGem, SymbolCrown,
		SymbolCrown, SymbolTimeGem, SymbolTimeGem, SymbolChalice,
		SymbolChalice, SymbolMindGem, SymbolMindGem, SymbolRing,
		SymbolRing, SymbolPowerGem, SymbolPowerGem, SymbolScatter,
		SymbolSoulGem, SymbolSoulGem, SymbolCrown, SymbolCrown,
		SymbolTimeGem, SymbolTimeGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolSpaceGem, SymbolChalice, SymbolChalice, SymbolPowerGem,
		SymbolPowerGem, SymbolRealityGem, SymbolRealityGem, SymbolRealityGem,
		SymbolSpaceGem, SymbolSpaceGem, SymbolRealityGem, SymbolScatter,
		SymbolRealityGem, SymbolSpaceGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolSoulGem, SymbolSoulGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolRing, SymbolRing, SymbolRing, SymbolChalice,
		SymbolChalice, SymbolTimeGem, SymbolTimeGem, SymbolTimeGem,
		SymbolChalice, SymbolChalice, SymbolSpaceGem, SymbolSpaceGem,
		SymbolScatter, SymbolTimeGem, SymbolTimeGem, SymbolRing,
		SymbolRing, SymbolTimeGem, SymbolTimeGem, SymbolTimeGem,
		SymbolPowerGem, SymbolPowerGem, SymbolMindGem, SymbolMindGem,
		SymbolCrown, SymbolCrown, SymbolCrown, SymbolSpaceGem,
		SymbolSpaceGem, SymbolPowerGem, SymbolPowerGem, SymbolSoulGem,
		SymbolSoulGem, SymbolMindGem, SymbolMindGem, SymbolTimeGem,
		SymbolTimeGem, SymbolRing, SymbolRing, SymbolScatter,
		SymbolMindGem, SymbolSpaceGem, SymbolSpaceGem, SymbolCrown,
	},
	{
		SymbolSoulGem, SymbolSoulGem, SymbolSoulGem, SymbolMindGem,
		SymbolMindGem, SymbolMindGem, SymbolRealityGem, SymbolRealityGem,
		SymbolChalice, SymbolChalice, SymbolScatter, SymbolChalice,
		SymbolSoulGem, SymbolSoulGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolSpaceGem, SymbolMindGem, SymbolMindGem, SymbolTimeGem,
		SymbolTimeGem, SymbolChalice, SymbolChalice, SymbolPowerGem,
		SymbolPowerGem, SymbolRealityGem, SymbolRealityGem, SymbolPowerGem,
		SymbolPowerGem, SymbolScatter, SymbolPowerGem, SymbolRealityGem,
		SymbolRealityGem, SymbolCrown, SymbolCrown, SymbolPowerGem,
		SymbolPowerGem, SymbolSpaceGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolRing, SymbolRing, SymbolPowerGem, SymbolPowerGem,
		SymbolPowerGem, SymbolSpaceGem, SymbolSpaceGem, SymbolScatter,
		SymbolRing, SymbolRing, SymbolMindGem, SymbolMindGem,
		SymbolTimeGem, SymbolTimeGem, SymbolTimeGem, SymbolRealityGem,
		SymbolRealityGem, SymbolMindGem, SymbolMindGem, SymbolRealityGem,
		SymbolRealityGem, SymbolTimeGem, SymbolTimeGem, SymbolSoulGem,
		SymbolSoulGem, SymbolSoulGem, SymbolChalice, SymbolChalice,
		SymbolScatter, SymbolTimeGem, SymbolTimeGem, SymbolTimeGem,
		SymbolCrown, SymbolCrown, SymbolChalice, SymbolChalice,
		SymbolSpaceGem, SymbolSpaceGem, SymbolMindGem, SymbolMindGem,
		SymbolMindGem, SymbolCrown, SymbolCrown, SymbolSpaceGem,
		SymbolSpaceGem, SymbolSpaceGem, SymbolCrown, SymbolCrown,
		SymbolScatter, SymbolPowerGem, SymbolPowerGem, SymbolRealityGem,
		SymbolRealityGem, SymbolRing, SymbolRing, SymbolRing,
		SymbolTimeGem, SymbolTimeGem, SymbolTimeGem, SymbolCrown,
		SymbolCrown, SymbolCrown, SymbolRing, SymbolRing,
		SymbolSpaceGem, SymbolSpaceGem, SymbolChalice, SymbolSoulGem,
		SymbolSoulGem, SymbolSpaceGem, SymbolTimeGem, SymbolTimeGem,
		SymbolTimeGem, SymbolPowerGem, SymbolMindGem, SymbolScatter,
		SymbolMindGem, SymbolTimeGem, SymbolCrown, SymbolMindGem,
	},
	{
		SymbolTimeGem, SymbolTimeGem, SymbolTimeGem, SymbolCrown,
		SymbolCrown, SymbolMindGem, SymbolMindGem, SymbolCrown,
		SymbolCrown, SymbolCrown, SymbolSoulGem, SymbolSoulGem,
		SymbolScatter, SymbolSoulGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolTimeGem, SymbolTimeGem, SymbolPowerGem, SymbolPowerGem,
		SymbolRealityGem, SymbolRealityGem, SymbolRealityGem, SymbolMindGem,
		SymbolMindGem, SymbolScatter, SymbolTimeGem, SymbolTimeGem,
		SymbolTimeGem, SymbolPowerGem, SymbolPowerGem, SymbolSpaceGem,
		SymbolSpaceGem, SymbolRealityGem, SymbolRealityGem, SymbolRealityGem,
		SymbolChalice, SymbolChalice, SymbolRing, SymbolRing,
		SymbolRing, SymbolRealityGem, SymbolRealityGem, SymbolChalice,
		SymbolChalice, SymbolMindGem, SymbolMindGem, SymbolRing,
		SymbolRing, SymbolCrown, SymbolCrown, SymbolMindGem,
		SymbolMindGem, SymbolScatter, SymbolPowerGem, SymbolPowerGem,
		SymbolSoulGem, SymbolSoulGem, SymbolSoulGem, SymbolSpaceGem,
		SymbolSpaceGem, SymbolSpaceGem, SymbolCrown, SymbolCrown,
		SymbolChalice, SymbolChalice, SymbolScatter, SymbolChalice,
		SymbolMindGem, SymbolMindGem, SymbolChalice, SymbolChalice,
		SymbolChalice, SymbolCrown, SymbolCrown, SymbolCrown,
		SymbolRing, SymbolRing, SymbolRealityGem, SymbolRealityGem,
		SymbolRealityGem, SymbolSoulGem, SymbolSoulGem, SymbolMindGem,
		SymbolMindGem, SymbolSpaceGem, SymbolSpaceGem, SymbolTimeGem,
		SymbolTimeGem, SymbolSpaceGem, SymbolScatter, SymbolSpaceGem,
		SymbolTimeGem, SymbolTimeGem, SymbolMindGem, SymbolMindGem,
		SymbolMindGem, SymbolSoulGem, SymbolSoulGem, SymbolPowerGem,
		SymbolPowerGem, SymbolRing, SymbolRing, SymbolTimeGem,
		SymbolTimeGem, SymbolPowerGem, SymbolPowerGem, SymbolPowerGem,
		SymbolSpaceGem, SymbolSpaceGem, SymbolRealityGem, SymbolSpaceGem,
		SymbolSpaceGem, SymbolPowerGem, SymbolTimeGem, SymbolScatter,
		SymbolTimeGem, SymbolTimeGem, SymbolSpaceGem, SymbolPowerGem,
	},
	{
		SymbolPowerGem, SymbolPowerGem, SymbolPowerGem, SymbolSpaceGem,
		SymbolSpaceGem, SymbolTimeGem, SymbolTimeGem, SymbolTimeGem,
		SymbolRealityGem, SymbolRealityGem, SymbolRing, SymbolScatter,
		SymbolRing, SymbolTimeGem, SymbolTimeGem, SymbolChalice,
		SymbolChalice, SymbolChalice, SymbolRealityGem, SymbolRealityGem,
		SymbolSpaceGem, SymbolSpaceGem, SymbolTimeGem, SymbolTimeGem,
		SymbolTimeGem, SymbolPowerGem, SymbolPowerGem, SymbolMindGem,
		SymbolMindGem, SymbolChalice, SymbolChalice, SymbolScatter,
		SymbolSpaceGem, SymbolSpaceGem, SymbolRealityGem, SymbolRealityGem,
		SymbolCrown, SymbolCrown, SymbolCrown, SymbolMindGem,
		SymbolMindGem, SymbolMindGem, SymbolTimeGem, SymbolTimeGem,
		SymbolTimeGem, SymbolMindGem, SymbolMindGem, SymbolMindGem,
		SymbolChalice, SymbolChalice, SymbolMindGem, SymbolMindGem,
		SymbolMindGem, SymbolScatter, SymbolPowerGem, SymbolPowerGem,
		SymbolSoulGem, SymbolSoulGem, SymbolTimeGem, SymbolTimeGem,
		SymbolSoulGem, SymbolSoulGem, SymbolTimeGem, SymbolTimeGem,
		SymbolSoulGem, SymbolSoulGem, SymbolChalice, SymbolScatter,
		SymbolChalice, SymbolChalice, SymbolSpaceGem, SymbolSpaceGem,
		SymbolCrown, SymbolCrown, SymbolMindGem, SymbolMindGem,
		SymbolSpaceGem, SymbolSpaceGem, SymbolRing, SymbolRing,
		SymbolRing, SymbolSpaceGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolRealityGem, SymbolRealityGem, SymbolRealityGem, SymbolPowerGem,
		SymbolPowerGem, SymbolScatter, SymbolPowerGem, SymbolSoulGem,
		SymbolSoulGem, SymbolPowerGem, SymbolPowerGem, SymbolSpaceGem,
		SymbolSpaceGem, SymbolSpaceGem, SymbolRealityGem, SymbolRealityGem,
		SymbolMindGem, SymbolMindGem, SymbolRing, SymbolRing,
		SymbolCrown, SymbolCrown, SymbolScatter, SymbolRing,
		SymbolRing, SymbolPowerGem, SymbolCrown, SymbolCrown,
		SymbolTimeGem, SymbolTimeGem, SymbolRealityGem, SymbolCrown,
		SymbolCrown, SymbolSoulGem, SymbolSoulGem, SymbolCrown,
	},
	{
		SymbolPowerGem, SymbolPowerGem, SymbolRealityGem, SymbolRealityGem,
		SymbolSoulGem, SymbolSoulGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolPowerGem, SymbolPowerGem, SymbolScatter, SymbolSpaceGem,
		SymbolSpaceGem, SymbolSoulGem, SymbolSoulGem, SymbolMindGem,
		SymbolMindGem, SymbolTimeGem, SymbolTimeGem, SymbolRing,
		SymbolRing, SymbolTimeGem, SymbolTimeGem, SymbolCrown,
		SymbolCrown, SymbolMindGem, SymbolMindGem, SymbolRealityGem,
		SymbolScatter, SymbolRealityGem, SymbolChalice, SymbolChalice,
		SymbolMindGem, SymbolMindGem, SymbolMindGem, SymbolRealityGem,
		SymbolRealityGem, SymbolMindGem, SymbolMindGem, SymbolMindGem,
		SymbolChalice, SymbolChalice, SymbolChalice, SymbolSoulGem,
		SymbolSoulGem, SymbolSoulGem, SymbolRealityGem, SymbolRealityGem,
		SymbolTimeGem, SymbolTimeGem, SymbolCrown, SymbolScatter,
		SymbolCrown, SymbolTimeGem, SymbolTimeGem, SymbolPowerGem,
		SymbolPowerGem, SymbolPowerGem, SymbolRing, SymbolRing,
		SymbolCrown, SymbolCrown, SymbolCrown, SymbolChalice,
		SymbolChalice, SymbolScatter, SymbolPowerGem, SymbolPowerGem,
		SymbolPowerGem, SymbolRing, SymbolRing, SymbolPowerGem,
		SymbolPowerGem, SymbolSoulGem, SymbolSoulGem, SymbolSoulGem,
		SymbolTimeGem, SymbolTimeGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolMindGem, SymbolMindGem, SymbolTimeGem, SymbolTimeGem,
		SymbolTimeGem, SymbolRealityGem, SymbolRealityGem, SymbolSpaceGem,
		SymbolSpaceGem, SymbolCrown, SymbolScatter, SymbolCrown,
		SymbolCrown, SymbolSpaceGem, SymbolSpaceGem, SymbolSpaceGem,
		SymbolTimeGem, SymbolTimeGem, SymbolTimeGem, SymbolSpaceGem,
		SymbolSpaceGem, SymbolRing, SymbolRing, SymbolRealityGem,
		SymbolRealityGem, SymbolChalice, SymbolChalice, SymbolSpaceGem,
		SymbolSpaceGem, SymbolMindGem, SymbolMindGem, SymbolChalice,
		SymbolPowerGem, SymbolCrown, SymbolScatter, SymbolCrown,
		SymbolRing, SymbolMindGem, SymbolTimeGem, SymbolSpaceGem,
	},
}
