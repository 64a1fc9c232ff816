package cascade

// AuditEventKind 审计事件类型
type AuditEventKind string

const (
	AuditGeneratorInitialized    AuditEventKind = "generator_initialized"     // 生成器初始化
	AuditStopPositionsGenerated  AuditEventKind = "stop_positions_generated"  // 停止位已抽取
	AuditGridGenerated           AuditEventKind = "grid_generated_from_strips" // 网格已从卷轴生成
	AuditReplacementGenerated    AuditEventKind = "replacement_symbol_generated"
	AuditReplacementBatch        AuditEventKind = "replacement_batch_generated"
	AuditGridReconstructed       AuditEventKind = "grid_reconstructed" // 回放重建，区别于原始生成
	AuditStatisticsReset         AuditEventKind = "statistics_reset"
)

// AuditEvent 审计事件。核心只负责产生事件，
// 持久化由外部的AuditSink实现负责。
type AuditEvent struct {
	Timestamp   int64                  `json:"timestamp"` // Unix毫秒
	Event       AuditEventKind         `json:"event"`
	GeneratorID string                 `json:"generator_id"`
	Data        map[string]interface{} `json:"data"`
}

// AuditSink 审计事件接收器。
// 对生成路径而言是fire-and-forget：接收器的失败或延迟
// 不得阻塞、也不得导致网格生成失败。
type AuditSink interface {
	Record(event AuditEvent)
}

// NopSink 丢弃所有事件的接收器
type NopSink struct{}

// Record 丢弃事件
func (NopSink) Record(AuditEvent) {}
