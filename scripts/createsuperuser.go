package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/yamdb-api/config"
	"github.com/yamdb-api/database"
	"github.com/yamdb-api/dto"
	"github.com/yamdb-api/models"
	"github.com/yamdb-api/repositories"
	"gorm.io/gorm"
)

func main() {
	config.LoadEnv()

	username := flag.String("username", "", "superuser username")
	email := flag.String("email", "", "superuser email")
	driver := flag.String("driver", config.GetEnv("DB_DRIVER", database.DriverPostgres), "database driver (postgres or sqlite)")
	dsn := flag.String("database-url", config.GetEnv("DATABASE_URL", ""), "database connection string")
	flag.Parse()

	log.Println("Connecting to database...")
	db, err := database.Open(database.Options{Driver: *driver, URL: *dsn})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	name := strings.TrimSpace(*username)
	created, err := ensureSuperuser(context.Background(), repositories.NewUserRepository(db), name, strings.TrimSpace(*email))
	if err != nil {
		log.Fatalf("Failed to ensure superuser %s: %v", name, err)
	}
	if created {
		log.Printf("Created superuser %s; request a confirmation code through /api/v1/auth/signup/", name)
	} else {
		log.Printf("Promoted existing user %s to superuser", name)
	}
}

// ensureSuperuser creates username as a superuser, or promotes it if it already exists
func ensureSuperuser(ctx context.Context, users *repositories.UserRepository, username, email string) (bool, error) {
	req := dto.CreateUserRequest{Username: username, Email: email, Role: string(models.RoleSuperuser)}
	if err := req.Validate(); err != nil {
		return false, fmt.Errorf("invalid superuser: %w", err)
	}

	existing, err := users.FindByUsername(ctx, req.Username)
	switch {
	case err == nil:
		existing.Role = models.RoleSuperuser
		if err := users.Update(ctx, existing); err != nil {
			return false, fmt.Errorf("promote: %w", err)
		}
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if _, err := users.Create(ctx, models.User{Username: req.Username, Email: req.Email, Role: models.RoleSuperuser}); err != nil {
			return false, fmt.Errorf("create: %w", err)
		}
		return true, nil
	default:
		return false, fmt.Errorf("look up: %w", err)
	}
}
