package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"syscall"

	"github.com/stemsi/course-backend/internal/config"
	"github.com/stemsi/course-backend/internal/database"
	"github.com/stemsi/course-backend/internal/logger"
	"github.com/stemsi/course-backend/internal/model"
	"github.com/stemsi/course-backend/internal/repository"
	"github.com/stemsi/course-backend/internal/service"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Service ────────────────────────────────────────────
	adminService := service.NewAdminService(repository.NewAdminRepository(pool), repository.NewRoleRepository(pool))
	authService := service.NewAuthService(cfg)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create Course Admin ===")

	name := prompt(reader, "Enter Name: ")
	if name == "" {
		fmt.Println("Error: Name is required")
		return
	}

	email := prompt(reader, "Enter Email: ")
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Println("Error reading password")
		return
	}
	password := string(bytePassword)
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	roleID := 1
	if raw := prompt(reader, "Enter Role ID (default 1): "); raw != "" {
		roleID, err = strconv.Atoi(raw)
		if err != nil || roleID <= 0 {
			fmt.Println("Error: Role ID must be a positive number")
			return
		}
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	permissions, err := adminService.GetPermissions(ctx, roleID)
	if err != nil {
		log.Fatal().Err(err).Int("role_id", roleID).Msg("Failed to load role permissions")
	}
	for _, p := range model.AllPermissions {
		if !slices.Contains(permissions, string(p)) {
			fmt.Printf("Warning: role %d lacks %s\n", roleID, p)
		}
	}

	hash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	admin := &model.Admin{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		RoleID:       roleID,
	}
	if err := adminService.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("Failed to create admin")
	}

	fmt.Printf("\nSuccess! Admin '%s' (%s) created with ID: %d\n", admin.Name, admin.Email, admin.ID)
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
