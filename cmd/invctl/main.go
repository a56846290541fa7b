// invctl is the operator-side utility: catalog seeding and account
// creation without going through the HTTP API.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/database"
	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/models"
	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/seed"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openDB() (*gorm.DB, error) {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("DB_DSN is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a hardware/software catalog from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := seed.Load(file)
			if err != nil {
				return err
			}

			db, err := openDB()
			if err != nil {
				return err
			}

			created, err := cat.Apply(db)
			if err != nil {
				return err
			}
			log.Printf("seeded %d catalog entries from %s", created, file)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "catalog.yaml", "catalog file path")
	return cmd
}

func newAddUserCmd() *cobra.Command {
	var username, password, role string

	cmd := &cobra.Command{
		Use:   "add-user",
		Short: "Create a console account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(username) < 3 {
				return fmt.Errorf("username must be at least 3 characters")
			}
			if len(password) < 6 {
				return fmt.Errorf("password must be at least 6 characters")
			}

			userRole := models.UserRole(role)
			switch userRole {
			case models.RoleAdmin, models.RoleManager, models.RoleViewer:
				// ok
			default:
				return fmt.Errorf("role must be admin, manager or viewer")
			}

			db, err := openDB()
			if err != nil {
				return err
			}

			var count int64
			if err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return fmt.Errorf("user %s already exists", username)
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			user := models.User{
				Username:     username,
				PasswordHash: string(hash),
				Role:         userRole,
			}
			if err := db.Create(&user).Error; err != nil {
				return err
			}

			log.Printf("created user %s (role=%s)", username, userRole)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "login name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	cmd.Flags().StringVarP(&role, "role", "r", string(models.RoleViewer), "admin | manager | viewer")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func main() {
	root := &cobra.Command{
		Use:           "invctl",
		Short:         "IT asset inventory admin utility",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSeedCmd(), newAddUserCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
