package services

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/config"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/pkg/logger"
	"github.com/resend/resend-go/v2"
)

//go:embed templates/email/*.html
var emailTemplates embed.FS

// EmailService sends transactional mail through Resend. Without an API key
// it degrades to logging, so local environments never need mail creds.
type EmailService struct {
	config       *config.Config
	resendClient *resend.Client
}

func NewEmailService(cfg *config.Config) *EmailService {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &EmailService{
		config:       cfg,
		resendClient: client,
	}
}

// SendAccountCreated sends the welcome mail for a fresh account
func (s *EmailService) SendAccountCreated(ctx context.Context, user *models.User) error {
	data := struct {
		Username string
		Role     string
	}{
		Username: user.Username,
		Role:     user.RoleName(),
	}

	body, err := s.renderTemplate("account_created.html", data)
	if err != nil {
		return err
	}

	if s.config.ResendAPIKey == "" {
		logger.Info(fmt.Sprintf("[Email omitido] Para: %s | Asunto: Bienvenido al Sistema Jireh", user.Email))
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    s.config.FromEmail,
		To:      []string{user.Email},
		Subject: "Bienvenido al Sistema Jireh",
		Html:    body,
	}
	if _, err := s.resendClient.Emails.Send(params); err != nil {
		logger.Error(fmt.Sprintf("No se pudo enviar el correo a %s: %v", user.Email, err))
		return err
	}

	logger.Info(fmt.Sprintf("[Email enviado] Para: %s | Asunto: Bienvenido al Sistema Jireh", user.Email))
	return nil
}

func (s *EmailService) renderTemplate(name string, data any) (string, error) {
	tmpl, err := template.ParseFS(emailTemplates, "templates/email/"+name)
	if err != nil {
		return "", fmt.Errorf("no se pudo cargar la plantilla %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("no se pudo renderizar la plantilla %s: %w", name, err)
	}
	return buf.String(), nil
}
