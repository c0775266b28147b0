package services

import (
	"context"
	"testing"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/config"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestSendAccountCreatedWithoutAPIKey(t *testing.T) {
	logger.Setup("test")

	cfg := &config.Config{ResendAPIKey: ""}
	service := NewEmailService(cfg)
	user := &models.User{
		Username: "mperez",
		Email:    "mperez@ejemplo.com",
		Role:     &models.Role{Name: models.RoleDigitador},
	}

	err := service.SendAccountCreated(context.Background(), user)
	assert.Nil(t, err, "sin API key el envío se omite y solo se registra en el log")
}

func TestRenderAccountCreatedTemplate(t *testing.T) {
	cfg := &config.Config{ResendAPIKey: ""}
	service := NewEmailService(cfg)

	body, err := service.renderTemplate("account_created.html", struct {
		Username string
		Role     string
	}{
		Username: "mperez",
		Role:     models.RoleSupervisor,
	})

	assert.Nil(t, err)
	assert.Contains(t, body, "mperez")
	assert.Contains(t, body, models.RoleSupervisor)
}

func TestRenderUnknownTemplate(t *testing.T) {
	service := NewEmailService(&config.Config{})

	_, err := service.renderTemplate("no_existe.html", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no_existe.html")
}
