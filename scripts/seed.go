package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/dentalflow/backend/internal/adapters/snapshot"
	"github.com/dentalflow/backend/internal/adapters/store"
	"github.com/dentalflow/backend/internal/domain/entities"
	"github.com/dentalflow/backend/internal/domain/providers"
	"github.com/dentalflow/backend/internal/infrastructure/observability"
	"github.com/dentalflow/backend/pkg/config"
)

// Seeds a fresh clinic dataset into the configured snapshot backend:
// default user accounts, the procedure price catalog, consultation
// reasons and the monthly financial goal. Running it against an
// existing snapshot appends to it.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("dentalflow-seed", cfg.Env)
	logger := observability.GetLogger()

	ctx := context.Background()

	var provider providers.SnapshotProvider
	switch cfg.Storage.Backend {
	case config.StorageBackendRedis:
		redisProvider, err := snapshot.NewRedis(&cfg.Redis, cfg.Storage.KeyPrefix)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer redisProvider.Close()
		provider = redisProvider
	default:
		provider = snapshot.NewFilesystem(cfg.Storage.Path)
	}

	clinicStore, err := store.New(ctx, provider, *logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load clinic state")
	}

	users := []entities.User{
		{Username: "taboada", Name: "Dr. Taboada", Role: entities.UserRolePrincipal, Password: "cambiar123"},
		{Username: "doctor", Name: "Dr. Invitado", Role: entities.UserRoleDoctor, Password: "cambiar123"},
		{Username: "recepcion", Name: "Recepción", Role: entities.UserRoleStaff, Password: "cambiar123"},
	}
	for i := range users {
		if err := clinicStore.Users().Create(ctx, &users[i]); err != nil {
			logger.Warn().Err(err).Str("username", users[i].Username).Msg("skipping user")
			continue
		}
		logger.Info().Str("username", users[i].Username).Msg("user created")
	}

	procedures := []entities.ProcedureItem{
		{Name: "Consulta general", Price: decimal.NewFromInt(50)},
		{Name: "Limpieza dental", Price: decimal.NewFromInt(150)},
		{Name: "Extracción simple", Price: decimal.NewFromInt(200)},
		{Name: "Extracción de muela del juicio", Price: decimal.NewFromInt(450)},
		{Name: "Empaste", Price: decimal.NewFromInt(180)},
		{Name: "Endodoncia", Price: decimal.NewFromInt(600)},
		{Name: "Corona de porcelana", Price: decimal.NewFromInt(900)},
		{Name: "Blanqueamiento", Price: decimal.NewFromInt(350)},
		{Name: "Ortodoncia (cuota mensual)", Price: decimal.NewFromInt(250)},
		{Name: "Radiografía panorámica", Price: decimal.NewFromInt(120)},
	}
	for i := range procedures {
		if err := clinicStore.Catalog().AddProcedure(ctx, &procedures[i]); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed procedure catalog")
		}
	}
	logger.Info().Int("count", len(procedures)).Msg("procedure catalog seeded")

	reasons := []string{
		"Dolor de muela",
		"Control de rutina",
		"Limpieza",
		"Sensibilidad dental",
		"Encías inflamadas",
		"Diente fracturado",
		"Consulta de ortodoncia",
		"Urgencia",
	}
	for _, reason := range reasons {
		if err := clinicStore.Catalog().AddReason(ctx, reason); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed consultation reasons")
		}
	}
	logger.Info().Int("count", len(reasons)).Msg("consultation reasons seeded")

	if err := clinicStore.Catalog().SetFinancialGoal(ctx, decimal.NewFromInt(3300)); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed financial goal")
	}
	logger.Info().Msg("financial goal seeded")
}
