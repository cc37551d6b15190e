package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/prizedraw/internal/common/clock"
	"github.com/KirkDiggler/prizedraw/internal/common/uuid"
	"github.com/KirkDiggler/prizedraw/internal/config"
	"github.com/KirkDiggler/prizedraw/internal/handlers/api"
	"github.com/KirkDiggler/prizedraw/internal/handlers/discord"
	"github.com/KirkDiggler/prizedraw/internal/logger"
	"github.com/KirkDiggler/prizedraw/internal/metrics"
	"github.com/KirkDiggler/prizedraw/internal/picker"
	"github.com/KirkDiggler/prizedraw/internal/presenter"
	"github.com/KirkDiggler/prizedraw/internal/repositories/prizeconfig"
	"github.com/KirkDiggler/prizedraw/internal/services/board"
	"github.com/KirkDiggler/prizedraw/internal/services/loader"
	"github.com/KirkDiggler/prizedraw/internal/services/messaging"
	"github.com/KirkDiggler/prizedraw/internal/sse"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load(getEnv("PRIZEDRAW_CONFIG", ""))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Setup(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		ServiceName: "prizedraw",
		Version:     version,
		Environment: cfg.Log.Environment,
		AddSource:   cfg.Log.AddSource,
	}, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := newSource(cfg)
	if err != nil {
		fatal("Failed to create prize source", err)
	}
	defer closeSource()

	uuidGen := uuid.New()
	systemClock := clock.New()
	prizePicker := picker.New(&picker.Config{Seed: cfg.Prizes.Seed})

	loaderSvc, err := loader.New(&loader.Config{
		Source: source,
		UUID:   uuidGen,
	})
	if err != nil {
		fatal("Failed to create loader", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Picker: prizePicker,
	})
	if err != nil {
		fatal("Failed to create messaging service", err)
	}

	hub := sse.NewHub(slog.Default())
	hub.Start()
	defer hub.Stop()

	broadcaster := presenter.NewBroadcaster(&presenter.BroadcasterConfig{})
	broadcaster.Register(presenter.LogSink{Logger: slog.Default()})
	broadcaster.Register(metrics.Sink{})
	broadcaster.Register(hub)

	boardSvc, err := board.New(&board.Config{
		Loader:    loaderSvc,
		Messages:  messagingSvc,
		Picker:    prizePicker,
		Clock:     systemClock,
		Scheduler: systemClock,
		UUID:      uuidGen,
		Publisher: broadcaster,
		Timing: board.Timing{
			TickCount:        cfg.Draw.TickCount,
			TickInterval:     cfg.Draw.TickInterval,
			RevealDelay:      cfg.Draw.RevealDelay,
			CelebrationDelay: cfg.Draw.CelebrationDelay,
			SettleDelay:      cfg.Draw.SettleDelay,
			NoticeDuration:   cfg.Draw.NoticeDuration,
			NoticeFade:       cfg.Draw.NoticeFade,
			Particles:        cfg.Draw.Particles,
		},
		TimeLayout: cfg.Draw.TimeLayout,
		WinTone:    messaging.MessageTone(cfg.Draw.WinTone),
	})
	if err != nil {
		fatal("Failed to create board service", err)
	}

	// A failed initial load leaves an empty board with a notice; keep serving
	// so the file can be fixed and reloaded.
	if output, err := boardSvc.Load(ctx); err != nil {
		slog.Error("Initial prize load failed", "source", source.Describe(), "error", err)
	} else {
		slog.Info("Prizes loaded", "count", output.Count, "origin", output.Origin)
	}

	if cfg.Prizes.Watch && cfg.Prizes.Source == config.SourceFile {
		watcher, err := prizeconfig.NewWatcher(&prizeconfig.WatcherConfig{
			Path: cfg.Prizes.Path,
			OnChange: func(ctx context.Context) {
				if _, err := boardSvc.Reload(ctx); err != nil {
					slog.Warn("Reload after file change failed", "error", err)
				}
			},
			Logger: slog.Default(),
		})
		if err != nil {
			fatal("Failed to watch prize file", err)
		}
		defer watcher.Close()
		go watcher.Run(ctx)
	}

	server, err := api.NewServer(&api.Config{
		Board: boardSvc,
		Hub:   hub,
		Port:  cfg.Server.Port,
	})
	if err != nil {
		fatal("Failed to create HTTP server", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	var bot *discord.Bot
	if cfg.Discord.Enabled() {
		bot, err = discord.New(&discord.Config{
			Token:         cfg.Discord.Token,
			ApplicationID: cfg.Discord.ApplicationID,
			GuildID:       cfg.Discord.GuildID,
			Board:         boardSvc,
		})
		if err != nil {
			fatal("Failed to create Discord bot", err)
		}
		broadcaster.Register(bot.Sink())

		if err := bot.Start(); err != nil {
			fatal("Failed to start Discord bot", err)
		}
	} else {
		slog.Info("Discord token not set, bot disabled")
	}

	select {
	case <-ctx.Done():
		slog.Info("Shutting down")
	case err := <-serverErr:
		if err != nil {
			slog.Error("HTTP server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		slog.Error("HTTP server forced to shut down", "error", err)
	}

	if bot != nil {
		if err := bot.Stop(); err != nil {
			slog.Error("Error stopping bot", "error", err)
		}
	}

	slog.Info("Prize draw has been shut down")
}

// newSource builds the configured prize source. The returned func releases
// anything the source holds open.
func newSource(cfg *config.Config) (prizeconfig.Source, func(), error) {
	noop := func() {}

	switch cfg.Prizes.Source {
	case config.SourceHTTP:
		source, err := prizeconfig.NewHTTP(&prizeconfig.HTTPConfig{URL: cfg.Prizes.URL})
		return source, noop, err

	case config.SourceRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		source, err := prizeconfig.NewRedis(&prizeconfig.RedisConfig{
			RedisClient: redisClient,
			Key:         cfg.Prizes.RedisKey,
			Format:      prizeconfig.Format(cfg.Prizes.Format),
		})
		if err != nil {
			redisClient.Close()
			return nil, noop, err
		}
		return source, func() { redisClient.Close() }, nil

	default:
		source, err := prizeconfig.NewFile(&prizeconfig.FileConfig{Path: cfg.Prizes.Path})
		return source, noop, err
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
