package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/repository"
	"github.com/Charly219017/ProyectoDeGraduacion/pkg/logger"
)

// RegisterScheduled wires the recurring maintenance checks. Both jobs only
// read and log; notifying someone about the findings stays a manual step.
func RegisterScheduled(worker *Worker, repos *repository.Repositories) {
	worker.ScheduleEveryImmediate(1*time.Hour, lowStockCheck(repos.Product))
	worker.ScheduleEvery(24*time.Hour, contractExpiryCheck(repos.Contract))
}

// lowStockCheck reports active products at or below their minimum stock.
func lowStockCheck(products repository.ProductRepository) Job {
	return func(ctx context.Context) error {
		low, err := products.FindLowStock(ctx)
		if err != nil {
			return fmt.Errorf("revisión de stock: %w", err)
		}
		for _, p := range low {
			logger.Warn(fmt.Sprintf("[Inventario] Stock bajo: %s (actual: %d, mínimo: %d)", p.Name, p.CurrentStock, p.MinimumStock))
		}
		logger.Info(fmt.Sprintf("[Inventario] Revisión de stock completada: %d producto(s) bajo mínimo", len(low)))
		return nil
	}
}

// contractExpiryCheck reports contracts ending within the next 30 days.
func contractExpiryCheck(contracts repository.ContractRepository) Job {
	return func(ctx context.Context) error {
		deadline := time.Now().AddDate(0, 0, 30)
		expiring, err := contracts.FindExpiringBefore(ctx, deadline)
		if err != nil {
			return fmt.Errorf("revisión de contratos: %w", err)
		}
		for _, c := range expiring {
			name := fmt.Sprintf("empleado %d", c.EmployeeID)
			if c.Employee != nil {
				name = c.Employee.FullName
			}
			logger.Warn(fmt.Sprintf("[Contratos] Contrato %d de %s vence el %s", c.ID, name, c.EndDate.Format("2006-01-02")))
		}
		logger.Info(fmt.Sprintf("[Contratos] Revisión de vencimientos completada: %d contrato(s) por vencer", len(expiring)))
		return nil
	}
}
