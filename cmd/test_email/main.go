package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Charly219017/ProyectoDeGraduacion/internal/config"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/services"
	"github.com/Charly219017/ProyectoDeGraduacion/pkg/logger"
)

// Sends the account-created mail to a real address so the Resend setup can
// be verified without creating a user.
//
//	go run ./cmd/test_email destinatario@ejemplo.com
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Setup("development")

	if len(os.Args) < 2 {
		log.Fatal("Usage: test_email <correo-destino>")
	}

	user := &models.User{
		Username: "prueba",
		Email:    os.Args[1],
		Role:     &models.Role{Name: models.RoleAdministrador},
	}

	emailSvc := services.NewEmailService(cfg)
	if err := emailSvc.SendAccountCreated(context.Background(), user); err != nil {
		log.Fatalf("Failed to send email: %v", err)
	}

	logger.Info("Email de prueba enviado", "destino", user.Email)
}
