package statemachine

import (
	"context"
	"testing"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestVacationApprove(t *testing.T) {
	vacation := &models.Vacation{Status: models.VacationPending}
	machine := NewVacationFSM(vacation)

	err := machine.Approve(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, models.VacationApproved, vacation.Status)
	assert.Equal(t, models.VacationApproved, machine.Current())
}

func TestVacationReject(t *testing.T) {
	vacation := &models.Vacation{Status: models.VacationPending}
	machine := NewVacationFSM(vacation)

	err := machine.Reject(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, models.VacationRejected, vacation.Status)
}

func TestVacationCancel(t *testing.T) {
	t.Run("From Pending", func(t *testing.T) {
		vacation := &models.Vacation{Status: models.VacationPending}
		err := NewVacationFSM(vacation).Cancel(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, models.VacationCancelled, vacation.Status)
	})

	t.Run("From Approved", func(t *testing.T) {
		vacation := &models.Vacation{Status: models.VacationApproved}
		err := NewVacationFSM(vacation).Cancel(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, models.VacationCancelled, vacation.Status)
	})
}

func TestVacationInvalidTransitions(t *testing.T) {
	tests := []struct {
		name   string
		status string
		action func(*VacationFSM) error
	}{
		{"Approve Already Approved", models.VacationApproved, func(m *VacationFSM) error { return m.Approve(context.Background()) }},
		{"Approve Rejected", models.VacationRejected, func(m *VacationFSM) error { return m.Approve(context.Background()) }},
		{"Reject Cancelled", models.VacationCancelled, func(m *VacationFSM) error { return m.Reject(context.Background()) }},
		{"Cancel Rejected", models.VacationRejected, func(m *VacationFSM) error { return m.Cancel(context.Background()) }},
		{"Cancel Cancelled", models.VacationCancelled, func(m *VacationFSM) error { return m.Cancel(context.Background()) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vacation := &models.Vacation{Status: tt.status}
			err := tt.action(NewVacationFSM(vacation))

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.status)
			// Failed transitions leave the state untouched
			assert.Equal(t, tt.status, vacation.Status)
		})
	}
}

func TestVacationCan(t *testing.T) {
	pending := NewVacationFSM(&models.Vacation{Status: models.VacationPending})
	assert.True(t, pending.Can("approve"))
	assert.True(t, pending.Can("reject"))
	assert.True(t, pending.Can("cancel"))

	approved := NewVacationFSM(&models.Vacation{Status: models.VacationApproved})
	assert.False(t, approved.Can("approve"))
	assert.False(t, approved.Can("reject"))
	assert.True(t, approved.Can("cancel"))
}
