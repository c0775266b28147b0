package audit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrActorMissing means a tracked mutation reached the recorder without
	// an authenticated actor. An unaccounted mutation is worse than a
	// rejected one, so the whole transaction must abort.
	ErrActorMissing = errors.New("auditoría: no hay usuario autenticado para registrar la acción")

	// ErrStoreUnavailable means the audit table rejected the write. It
	// propagates so the enclosing transaction rolls back.
	ErrStoreUnavailable = errors.New("auditoría: no se pudo guardar el registro")
)

// Actor is the authenticated identity a mutation is attributed to
type Actor struct {
	ID       uint
	Username string
}

func (a *Actor) displayName() string {
	if a.Username != "" {
		return a.Username
	}
	return strconv.FormatUint(uint64(a.ID), 10)
}

// Store persists audit entries. Append must execute against the given tx so
// the entry commits or rolls back together with the mutation that caused it.
// The interface exposes no update or delete: entries are append-only.
type Store interface {
	Append(ctx context.Context, tx *gorm.DB, entry *models.AuditEntry) error
}

// Recorder produces exactly one audit entry per qualifying mutation of a
// tracked entity. The persistence layer invokes one hook per committed
// operation, inside the operation's transaction; a hook failure aborts the
// whole write.
type Recorder struct {
	store Store
}

func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

// AfterCreate records the creation of entity with its full new state.
func (r *Recorder) AfterCreate(ctx context.Context, tx *gorm.DB, entity Tracked, actor *Actor) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	newValue, err := Encode(Capture(entity))
	if err != nil {
		return err
	}

	return r.append(ctx, tx, entry(entity, actor, models.AuditActionCreate,
		fmt.Sprintf("Creación de nuevo registro en %s (ID: %s) por %s.", entity.TableName(), entity.RecordID(), actor.displayName()),
		nil, nil, newValue))
}

// AfterUpdate diffs the previous snapshot against the entity's current state
// and records the change. Updates that touch no tracked field record
// nothing. An update whose only tracked change flips activo to false is a
// soft delete and is recorded with action ELIMINAR.
func (r *Recorder) AfterUpdate(ctx context.Context, tx *gorm.DB, entity Tracked, previous Snapshot, actor *Actor) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	next := Capture(entity)
	changed, err := Diff(previous, next)
	if err != nil {
		return err
	}
	if len(changed) == 0 {
		// No-op update: suppress
		return nil
	}

	previousValue, err := Encode(previous)
	if err != nil {
		return err
	}
	newValue, err := Encode(next)
	if err != nil {
		return err
	}

	action := models.AuditActionUpdate
	description := fmt.Sprintf("Actualización en %s (ID: %s) por %s.", entity.TableName(), entity.RecordID(), actor.displayName())
	if isSoftDelete(changed, next) {
		action = models.AuditActionDelete
		description = fmt.Sprintf("Eliminación de registro en %s (ID: %s) por %s.", entity.TableName(), entity.RecordID(), actor.displayName())
	}

	changedFields := strings.Join(changed, ", ")
	e := entry(entity, actor, action, description, &changedFields, previousValue, newValue)
	return r.append(ctx, tx, e)
}

// AfterDelete records a hard delete with the entity's final state.
func (r *Recorder) AfterDelete(ctx context.Context, tx *gorm.DB, entity Tracked, actor *Actor) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	previousValue, err := Encode(Capture(entity))
	if err != nil {
		return err
	}

	return r.append(ctx, tx, entry(entity, actor, models.AuditActionDelete,
		fmt.Sprintf("Eliminación de registro en %s (ID: %s) por %s.", entity.TableName(), entity.RecordID(), actor.displayName()),
		nil, previousValue, nil))
}

func (r *Recorder) append(ctx context.Context, tx *gorm.DB, e *models.AuditEntry) error {
	if err := r.store.Append(ctx, tx, e); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func requireActor(actor *Actor) error {
	if actor == nil || actor.ID == 0 {
		return ErrActorMissing
	}
	return nil
}

// isSoftDelete classifies an update as a logical delete: the activo flag
// dropped to false and nothing else materially changed.
func isSoftDelete(changed []string, next Snapshot) bool {
	if len(changed) != 1 || changed[0] != "activo" {
		return false
	}
	active, ok := next["activo"].(bool)
	return ok && !active
}

func entry(entity Tracked, actor *Actor, action, description string, changedFields, previousValue, newValue *string) *models.AuditEntry {
	table := entity.TableName()
	recordID := entity.RecordID()
	userID := actor.ID
	return &models.AuditEntry{
		AffectedTable: &table,
		RecordID:      &recordID,
		ChangedFields: changedFields,
		PreviousValue: previousValue,
		NewValue:      newValue,
		Action:        action,
		UserID:        &userID,
		Description:   description,
	}
}
