package statemachine

import (
	"context"
	"fmt"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/looplab/fsm"
)

// VacationFSM wraps a vacation request with its state machine
type VacationFSM struct {
	vacation *models.Vacation
	fsm      *fsm.FSM
}

// NewVacationFSM creates a new vacation request state machine
func NewVacationFSM(vacation *models.Vacation) *VacationFSM {
	vfsm := &VacationFSM{
		vacation: vacation,
	}

	vfsm.fsm = fsm.NewFSM(
		vacation.Status,
		fsm.Events{
			// Pendiente → Aprobada
			{Name: "approve", Src: []string{models.VacationPending}, Dst: models.VacationApproved},

			// Pendiente → Rechazada
			{Name: "reject", Src: []string{models.VacationPending}, Dst: models.VacationRejected},

			// Pendiente/Aprobada → Cancelada
			{Name: "cancel", Src: []string{models.VacationPending, models.VacationApproved}, Dst: models.VacationCancelled},
		},
		fsm.Callbacks{},
	)

	return vfsm
}

// Approve transitions the request to Aprobada
func (v *VacationFSM) Approve(ctx context.Context) error {
	if !v.vacation.MayApprove() {
		return fmt.Errorf("la solicitud no puede aprobarse en su estado actual: %s", v.vacation.Status)
	}

	if err := v.fsm.Event(ctx, "approve"); err != nil {
		return fmt.Errorf("no se pudo aprobar la solicitud: %w", err)
	}

	v.vacation.Status = v.fsm.Current()
	return nil
}

// Reject transitions the request to Rechazada
func (v *VacationFSM) Reject(ctx context.Context) error {
	if !v.vacation.MayReject() {
		return fmt.Errorf("la solicitud no puede rechazarse en su estado actual: %s", v.vacation.Status)
	}

	if err := v.fsm.Event(ctx, "reject"); err != nil {
		return fmt.Errorf("no se pudo rechazar la solicitud: %w", err)
	}

	v.vacation.Status = v.fsm.Current()
	return nil
}

// Cancel transitions the request to Cancelada
func (v *VacationFSM) Cancel(ctx context.Context) error {
	if !v.vacation.MayCancel() {
		return fmt.Errorf("la solicitud no puede cancelarse en su estado actual: %s", v.vacation.Status)
	}

	if err := v.fsm.Event(ctx, "cancel"); err != nil {
		return fmt.Errorf("no se pudo cancelar la solicitud: %w", err)
	}

	v.vacation.Status = v.fsm.Current()
	return nil
}

// Current returns the current state
func (v *VacationFSM) Current() string {
	return v.fsm.Current()
}

// Can checks if a transition is possible
func (v *VacationFSM) Can(event string) bool {
	return v.fsm.Can(event)
}
