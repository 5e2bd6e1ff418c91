package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
	"github.com/Surajsachintha/itams-haci-project/internal/repository"
	"github.com/Surajsachintha/itams-haci-project/internal/schema"
	"github.com/Surajsachintha/itams-haci-project/internal/service"
	"github.com/Surajsachintha/itams-haci-project/pkg/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, l, err := setup()
		if err != nil {
			return err
		}

		pool, err := postgres.Connect(cmd.Context(), cfg.PostgresDSN, cfg.PostgresMaxConns)
		if err != nil {
			return fmt.Errorf("connect to postgres: %w", err)
		}
		defer pool.Close()

		err = postgres.UpMigrations(postgres.OpenDB(pool))
		if err != nil {
			return fmt.Errorf("up migrations: %w", err)
		}

		l.Info("migrations applied")

		return nil
	},
}

var admin struct {
	username string
	password string
	email    string
	name     string
	role     string
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an active administrator account with a password",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, l, err := setup()
		if err != nil {
			return err
		}

		pool, err := postgres.Connect(cmd.Context(), cfg.PostgresDSN, cfg.PostgresMaxConns)
		if err != nil {
			return fmt.Errorf("connect to postgres: %w", err)
		}
		defer pool.Close()

		s := service.New(cfg,
			repository.NewUserRepository(pool),
			nil, nil, nil, nil,
			repository.NewAuditRepository(pool),
			nil, nil,
			schema.CodeTables(),
			nil, nil,
		)

		in := entity.UserInput{
			Username: admin.username,
			Role:     entity.Role(admin.role),
		}

		if admin.email != "" {
			in.Email = &admin.email
		}

		if admin.name != "" {
			in.FullName = &admin.name
		}

		id, err := s.CreateAdmin(cmd.Context(), in, admin.password)
		if err != nil {
			return err
		}

		l.Info("admin created", "id", id, "username", admin.username)

		return nil
	},
}

func init() {
	f := createAdminCmd.Flags()
	f.StringVar(&admin.username, "username", "", "login name")
	f.StringVar(&admin.password, "password", "", "initial password")
	f.StringVar(&admin.email, "email", "", "email address")
	f.StringVar(&admin.name, "name", "", "full name")
	f.StringVar(&admin.role, "role", string(entity.RoleAdmin), "ADMIN or SUPER")

	_ = createAdminCmd.MarkFlagRequired("username")
	_ = createAdminCmd.MarkFlagRequired("password")
}
