package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// Mock Store
type mockStore struct {
	mockAppend func(ctx context.Context, tx *gorm.DB, entry *models.AuditEntry) error
	entries    []*models.AuditEntry
}

func (m *mockStore) Append(ctx context.Context, tx *gorm.DB, entry *models.AuditEntry) error {
	if m.mockAppend != nil {
		return m.mockAppend(ctx, tx, entry)
	}
	m.entries = append(m.entries, entry)
	return nil
}

// Tracked fixture
type trackedRecord struct {
	ID     uint
	Name   string
	Salary float64
	Active bool
}

func (r *trackedRecord) TableName() string { return "empleados" }
func (r *trackedRecord) RecordID() string  { return "7" }
func (r *trackedRecord) TrackedFields() map[string]any {
	return map[string]any{
		"nombre_completo": r.Name,
		"salario_base":    r.Salary,
		"activo":          r.Active,
	}
}

func TestAfterCreate(t *testing.T) {
	store := &mockStore{}
	recorder := NewRecorder(store)
	record := &trackedRecord{ID: 7, Name: "Ana López", Salary: 4500, Active: true}

	err := recorder.AfterCreate(context.Background(), nil, record, &Actor{ID: 1, Username: "admin"})

	assert.NoError(t, err)
	assert.Len(t, store.entries, 1)

	entry := store.entries[0]
	assert.Equal(t, models.AuditActionCreate, entry.Action)
	assert.Equal(t, "empleados", *entry.AffectedTable)
	assert.Equal(t, "7", *entry.RecordID)
	assert.Equal(t, uint(1), *entry.UserID)
	assert.Nil(t, entry.PreviousValue)
	assert.NotNil(t, entry.NewValue)
	assert.Contains(t, *entry.NewValue, "Ana López")
	assert.Equal(t, "Creación de nuevo registro en empleados (ID: 7) por admin.", entry.Description)
}

func TestAfterCreateMissingActor(t *testing.T) {
	store := &mockStore{}
	recorder := NewRecorder(store)
	record := &trackedRecord{ID: 7, Name: "Ana López", Active: true}

	err := recorder.AfterCreate(context.Background(), nil, record, nil)
	assert.ErrorIs(t, err, ErrActorMissing)
	assert.Empty(t, store.entries)

	// An actor with ID zero is as good as no actor
	err = recorder.AfterCreate(context.Background(), nil, record, &Actor{ID: 0, Username: "fantasma"})
	assert.ErrorIs(t, err, ErrActorMissing)
	assert.Empty(t, store.entries)
}

func TestAfterUpdateRecordsChangedFields(t *testing.T) {
	store := &mockStore{}
	recorder := NewRecorder(store)
	record := &trackedRecord{ID: 7, Name: "Ana López", Salary: 4500, Active: true}
	previous := Capture(record)

	record.Name = "Ana María López"
	record.Salary = 5000

	err := recorder.AfterUpdate(context.Background(), nil, record, previous, &Actor{ID: 2, Username: "rrhh"})

	assert.NoError(t, err)
	assert.Len(t, store.entries, 1)

	entry := store.entries[0]
	assert.Equal(t, models.AuditActionUpdate, entry.Action)
	assert.Equal(t, "nombre_completo, salario_base", *entry.ChangedFields)
	assert.Contains(t, *entry.PreviousValue, "Ana López")
	assert.Contains(t, *entry.NewValue, "Ana María López")
}

func TestAfterUpdateNoChangesSuppressed(t *testing.T) {
	store := &mockStore{}
	recorder := NewRecorder(store)
	record := &trackedRecord{ID: 7, Name: "Ana López", Salary: 4500, Active: true}
	previous := Capture(record)

	err := recorder.AfterUpdate(context.Background(), nil, record, previous, &Actor{ID: 2, Username: "rrhh"})

	assert.NoError(t, err)
	assert.Empty(t, store.entries)
}

func TestAfterUpdateSoftDeleteReclassified(t *testing.T) {
	store := &mockStore{}
	recorder := NewRecorder(store)
	record := &trackedRecord{ID: 7, Name: "Ana López", Salary: 4500, Active: true}
	previous := Capture(record)

	record.Active = false

	err := recorder.AfterUpdate(context.Background(), nil, record, previous, &Actor{ID: 2, Username: "rrhh"})

	assert.NoError(t, err)
	assert.Len(t, store.entries, 1)
	assert.Equal(t, models.AuditActionDelete, store.entries[0].Action)
	assert.Equal(t, "Eliminación de registro en empleados (ID: 7) por rrhh.", store.entries[0].Description)
}

func TestAfterUpdateDeactivationWithOtherChangesStaysUpdate(t *testing.T) {
	store := &mockStore{}
	recorder := NewRecorder(store)
	record := &trackedRecord{ID: 7, Name: "Ana López", Salary: 4500, Active: true}
	previous := Capture(record)

	record.Active = false
	record.Salary = 0

	err := recorder.AfterUpdate(context.Background(), nil, record, previous, &Actor{ID: 2, Username: "rrhh"})

	assert.NoError(t, err)
	assert.Len(t, store.entries, 1)
	assert.Equal(t, models.AuditActionUpdate, store.entries[0].Action)
}

func TestAfterDelete(t *testing.T) {
	store := &mockStore{}
	recorder := NewRecorder(store)
	record := &trackedRecord{ID: 7, Name: "Ana López", Salary: 4500, Active: true}

	err := recorder.AfterDelete(context.Background(), nil, record, &Actor{ID: 1, Username: "admin"})

	assert.NoError(t, err)
	assert.Len(t, store.entries, 1)

	entry := store.entries[0]
	assert.Equal(t, models.AuditActionDelete, entry.Action)
	assert.NotNil(t, entry.PreviousValue)
	assert.Nil(t, entry.NewValue)
}

func TestStoreFailurePropagates(t *testing.T) {
	store := &mockStore{
		mockAppend: func(ctx context.Context, tx *gorm.DB, entry *models.AuditEntry) error {
			return errors.New("tabla bitacora no disponible")
		},
	}
	recorder := NewRecorder(store)
	record := &trackedRecord{ID: 7, Name: "Ana López", Active: true}

	err := recorder.AfterCreate(context.Background(), nil, record, &Actor{ID: 1, Username: "admin"})

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "tabla bitacora no disponible")
}

func TestActorFallsBackToID(t *testing.T) {
	store := &mockStore{}
	recorder := NewRecorder(store)
	record := &trackedRecord{ID: 7, Name: "Ana López", Active: true}

	err := recorder.AfterCreate(context.Background(), nil, record, &Actor{ID: 5})

	assert.NoError(t, err)
	assert.Contains(t, store.entries[0].Description, "por 5.")
}
