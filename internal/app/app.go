// Package app wires the core services behind the single facade the UI
// layer calls in-process. No network or CLI surface lives here.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bloodconnect/donor-match/internal/core/domain"
	"github.com/bloodconnect/donor-match/internal/core/ports"
	"github.com/bloodconnect/donor-match/internal/core/service"
	"github.com/bloodconnect/donor-match/internal/infrastructure/config"
	filedb "github.com/bloodconnect/donor-match/internal/infrastructure/db/file"
	memorydb "github.com/bloodconnect/donor-match/internal/infrastructure/db/memory"
	mongodb "github.com/bloodconnect/donor-match/internal/infrastructure/db/mongo"
	redisdb "github.com/bloodconnect/donor-match/internal/infrastructure/db/redis"
	"github.com/bloodconnect/donor-match/internal/infrastructure/record"
)

// App is the collaborator-facing contract of the core. Construct with
// New (or Open), then call Initialize once per process start.
type App struct {
	store    *record.Store
	sessions *service.SessionService
	matching *service.MatchingService
	requests *service.RequestService
	seeder   *service.SeedService
}

// New builds the service graph on an already-constructed KeyValue
// adapter. The App owns no state beyond what the adapter persists.
func New(cfg *config.Config, kv ports.KeyValue, log zerolog.Logger) *App {
	store := record.NewStore(kv, log)
	return &App{
		store:    store,
		sessions: service.NewSessionService(store, kv, log, cfg.AcceptAnyPassword),
		matching: service.NewMatchingService(store, log),
		requests: service.NewRequestService(store, log),
		seeder:   service.NewSeedService(kv, log),
	}
}

// Open connects the configured storage backend and builds the App.
// The returned close function releases the backend connection.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, func(), error) {
	var kv ports.KeyValue
	cleanup := func() {}

	switch cfg.Storage.Backend {
	case "redis":
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, nil, err
		}
		kv = redisdb.NewStore(client)
		cleanup = func() { _ = client.Close() }
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		kv = mongodb.NewStore(db)
		cleanup = func() { _ = client.Disconnect(context.Background()) }
	case "file":
		store, err := filedb.NewStore(cfg.Storage.Dir)
		if err != nil {
			return nil, nil, err
		}
		kv = store
	case "memory":
		kv = memorydb.NewStore()
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return New(cfg, kv, log), cleanup, nil
}

// Initialize seeds empty storage and loads both collections. Call once
// per process start before any other method.
func (a *App) Initialize(ctx context.Context) error {
	if err := a.seeder.EnsureSeeded(ctx); err != nil {
		return err
	}
	if err := a.store.LoadUsers(ctx); err != nil {
		return err
	}
	return a.store.LoadRequests(ctx)
}

func (a *App) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	return a.sessions.Login(ctx, email, password)
}

func (a *App) Register(ctx context.Context, in ports.RegisterInput) (*domain.Identity, error) {
	return a.sessions.Register(ctx, in)
}

func (a *App) Logout(ctx context.Context) error {
	return a.sessions.Logout(ctx)
}

func (a *App) CurrentIdentity(ctx context.Context) (*domain.Identity, error) {
	return a.sessions.CurrentIdentity(ctx)
}

func (a *App) UpdateDonorProfile(ctx context.Context, p domain.DonorProfile) error {
	return a.sessions.UpdateDonorProfile(ctx, p)
}

func (a *App) UpdateRecipientProfile(ctx context.Context, p domain.RecipientProfile) error {
	return a.sessions.UpdateRecipientProfile(ctx, p)
}

func (a *App) CreateBloodRequest(ctx context.Context, in ports.CreateRequestInput) (*domain.BloodRequest, error) {
	return a.requests.Create(ctx, in)
}

func (a *App) ListBloodRequests(ctx context.Context) ([]*domain.BloodRequest, error) {
	return a.requests.List(ctx)
}

func (a *App) UpdateRequestStatus(ctx context.Context, id string, status domain.RequestStatus) (bool, error) {
	return a.requests.UpdateStatus(ctx, id, status)
}

func (a *App) RespondToRequest(ctx context.Context, requestID, donorID string) (bool, error) {
	return a.matching.RespondToRequest(ctx, requestID, donorID)
}

func (a *App) FindMatchesForDonor(p domain.DonorProfile) []*domain.BloodRequest {
	return a.matching.FindMatchesForDonor(p)
}
