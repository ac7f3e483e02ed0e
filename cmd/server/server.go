package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fiveparsecs/campaign-api/internal/config"
	"github.com/fiveparsecs/campaign-api/internal/engine"
	"github.com/fiveparsecs/campaign-api/internal/handlers/rest"
	campaignorch "github.com/fiveparsecs/campaign-api/internal/orchestrators/campaign"
	characterorch "github.com/fiveparsecs/campaign-api/internal/orchestrators/character"
	creworch "github.com/fiveparsecs/campaign-api/internal/orchestrators/crew"
	"github.com/fiveparsecs/campaign-api/internal/pkg/lockmap"
	"github.com/fiveparsecs/campaign-api/internal/redis"
	campaignrepo "github.com/fiveparsecs/campaign-api/internal/repositories/campaign"
	characterrepo "github.com/fiveparsecs/campaign-api/internal/repositories/character"
	crewrepo "github.com/fiveparsecs/campaign-api/internal/repositories/crew"
	referencerepo "github.com/fiveparsecs/campaign-api/internal/repositories/reference"
	"github.com/fiveparsecs/campaign-api/internal/storage/document"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the REST server",
	Long:  `Start the campaign API REST server with all configured services.`,
	RunE:  runServer,
}

// repositories groups the campaign-state stores behind one wiring point so
// the backend switch stays in a single place.
type repositories struct {
	characters characterrepo.Repository
	crews      crewrepo.Repository
	campaigns  campaignrepo.Repository
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Reference data always lives in the document file, whichever backend
	// holds the campaign state.
	store, err := document.Open(&document.Config{Path: cfg.DatabasePath})
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}

	referenceRepo, err := referencerepo.NewFile(&referencerepo.FileConfig{Store: store})
	if err != nil {
		return fmt.Errorf("failed to create reference repository: %w", err)
	}

	repos, err := buildRepositories(cfg, store)
	if err != nil {
		return err
	}

	gameEngine, err := engine.New(&engine.Config{
		DiceRoller: dice.DefaultRoller,
		EventBus:   events.NewBus(),
	})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	// Shared so character creation and crew updates serialize per crew.
	crewLocks := lockmap.New()

	characterService, err := characterorch.New(&characterorch.Config{
		CharacterRepo: repos.characters,
		CrewRepo:      repos.crews,
		CampaignRepo:  repos.campaigns,
		ReferenceRepo: referenceRepo,
		Engine:        gameEngine,
		CrewLocks:     crewLocks,
	})
	if err != nil {
		return fmt.Errorf("failed to create character orchestrator: %w", err)
	}

	crewService, err := creworch.New(&creworch.Config{
		CrewRepo:  repos.crews,
		CrewLocks: crewLocks,
	})
	if err != nil {
		return fmt.Errorf("failed to create crew orchestrator: %w", err)
	}

	campaignService, err := campaignorch.New(&campaignorch.Config{
		CampaignRepo:  repos.campaigns,
		CrewRepo:      repos.crews,
		CharacterRepo: repos.characters,
	})
	if err != nil {
		return fmt.Errorf("failed to create campaign orchestrator: %w", err)
	}

	handler, err := rest.New(&rest.Config{
		CharacterService: characterService,
		CrewService:      crewService,
		CampaignService:  campaignService,
		ReferenceRepo:    referenceRepo,
	})
	if err != nil {
		return fmt.Errorf("failed to create REST handler: %w", err)
	}

	mux := http.NewServeMux()
	handler.Register(mux)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("server starting", "port", cfg.Port, "backend", cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down cleanly: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func buildRepositories(cfg *config.Config, store *document.Store) (*repositories, error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		characters, err := characterrepo.NewFile(&characterrepo.FileConfig{Store: store})
		if err != nil {
			return nil, fmt.Errorf("failed to create character repository: %w", err)
		}
		crews, err := crewrepo.NewFile(&crewrepo.FileConfig{Store: store})
		if err != nil {
			return nil, fmt.Errorf("failed to create crew repository: %w", err)
		}
		campaigns, err := campaignrepo.NewFile(&campaignrepo.FileConfig{Store: store})
		if err != nil {
			return nil, fmt.Errorf("failed to create campaign repository: %w", err)
		}
		return &repositories{characters: characters, crews: crews, campaigns: campaigns}, nil

	case config.BackendRedis:
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		characters, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
		if err != nil {
			return nil, fmt.Errorf("failed to create character repository: %w", err)
		}
		crews, err := crewrepo.NewRedis(&crewrepo.RedisConfig{Client: client})
		if err != nil {
			return nil, fmt.Errorf("failed to create crew repository: %w", err)
		}
		campaigns, err := campaignrepo.NewRedis(&campaignrepo.RedisConfig{Client: client})
		if err != nil {
			return nil, fmt.Errorf("failed to create campaign repository: %w", err)
		}
		return &repositories{characters: characters, crews: crews, campaigns: campaigns}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
