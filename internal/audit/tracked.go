package audit

// Tracked is the contract every audited business entity satisfies. Models
// opt in to audit logging by implementing it; the recorder never inspects
// entities through reflection.
//
// TrackedFields returns the audited column set keyed by column name. It must
// exclude bookkeeping columns (creado_por, actualizado_por and the creation
// and update timestamps) so administrative touch-updates do not generate
// audit noise.
type Tracked interface {
	TableName() string
	RecordID() string
	TrackedFields() map[string]any
}
