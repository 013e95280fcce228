package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"waylog/internal/adapter"
	"waylog/internal/capture"
	"waylog/internal/config"
	"waylog/internal/geotrack"
	"waylog/internal/logger"
	"waylog/internal/service"
	"waylog/internal/store"
	"waylog/internal/utils"
	"waylog/internal/workers"
	"waylog/models"
)

// The simulated walk starts in central Berlin. The origin only anchors the
// demo feed; any coordinates work.
const (
	simulatedOriginLat = 52.5200
	simulatedOriginLon = 13.4050
)

// demoClipDuration is the length of the voice take the agent records on
// startup when simulation is enabled.
const demoClipDuration = 2 * time.Second

// App is the agent runtime: local storages, the backend adapter, the location
// sampler over the simulated provider, and the voice capture session, wired
// together and run until a termination signal.
type App struct {
	cfg *config.ClientConfig

	storages *store.ClientStorages
	adapter  adapter.ServerAdapter
	services *service.ClientServices
	sampler  *geotrack.Sampler
	capture  *capture.Session
	feed     workers.Feed

	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, services *service.ClientServices, log *logger.Logger) (*App, error) {
	if storages == nil || serverAdapter == nil || services == nil {
		return nil, errors.New("app dependencies are not initialized")
	}

	generator := utils.NewUUIDGenerator()

	provider := geotrack.NewSimulatedProvider(simulatedOriginLat, simulatedOriginLon, log)
	sampler := geotrack.NewSampler(cfg.Sampler, provider, storages.Fixes, generator, log)
	provider.SetDelegate(sampler)

	// A finished voice take becomes a journal entry right away.
	session := capture.NewSession(
		cfg.Capture,
		capture.NewSimulatedRecorder(log),
		capture.NewSimulatedPlayer(log),
		func(clip []byte) {
			if _, clipErr := services.UploadService.Create(context.Background(), models.UploadDraft{Voice: clip}); clipErr != nil {
				log.Err(clipErr).Str("func", "App.onClip").Msg("failed to store finished voice clip")
			}
		},
		log,
	)

	return &App{
		cfg:      cfg,
		storages: storages,
		adapter:  serverAdapter,
		services: services,
		sampler:  sampler,
		capture:  session,
		feed:     provider,
		logger:   log,
	}, nil
}

// Run starts the agent and blocks until SIGINT/SIGTERM/SIGQUIT. Tracking is
// enabled on start when configured; the simulated feed worker paces readings
// while the process lives.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	a.logger.Info().
		Int("location_fixes", a.storages.Fixes.Count()).
		Int("upload_entries", len(a.storages.Uploads.All())).
		Str("version", a.cfg.App.Version).
		Msg("restored local state")

	if err := a.adapter.Ping(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("backend unreachable, uploads will be kept locally")
	} else if a.cfg.App.Simulate {
		if reply, chatErr := a.services.ChatService.Send(ctx, "agent online"); chatErr != nil {
			a.logger.Warn().Err(chatErr).Msg("chat round-trip failed")
		} else {
			a.logger.Info().Str("reply", reply.Text).Msg("chat round-trip ok")
		}
	}

	subID := a.sampler.Subscribe(func(st geotrack.Status) {
		a.logger.Info().
			Bool("enabled", st.Enabled).
			Stringer("authorization", st.Authorization).
			Int("fix_count", st.FixCount).
			Msg("tracking status changed")
	})
	defer a.sampler.Unsubscribe(subID)

	if a.cfg.App.Simulate {
		workers.NewWorkers(
			workers.NewFeedWorker(ctx, a.feed, a.cfg.Workers, a.logger),
		).Run()
		a.recordDemoClip(ctx)
	}

	if a.cfg.App.TrackOnStart {
		a.sampler.SetEnabled(true)
	}

	<-ctx.Done()

	a.sampler.SetEnabled(false)
	a.logger.Info().Msg("agent shut down gracefully")

	return nil
}

// recordDemoClip runs one short voice take through the capture session so a
// fresh agent produces a journal entry without user interaction. The first
// take also walks the microphone permission arc of the simulated recorder.
func (a *App) recordDemoClip(ctx context.Context) {
	if err := a.capture.StartRecording(); err != nil {
		a.logger.Err(err).Str("func", "App.recordDemoClip").Msg("failed to start demo recording")
		return
	}

	go func() {
		t := time.NewTimer(demoClipDuration)
		defer t.Stop()

		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}

		if err := a.capture.StopRecording(); err != nil && !errors.Is(err, capture.ErrNotRecording) {
			a.logger.Err(err).Str("func", "App.recordDemoClip").Msg("failed to stop demo recording")
		}
	}()
}
