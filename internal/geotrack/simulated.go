package geotrack

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"waylog/internal/logger"
	"waylog/models"
)

const (
	// metersPerDegree approximates one coordinate degree; good enough for
	// walk-sized steps.
	metersPerDegree = 111000

	simulatedStepMeters  = 40.0
	simulatedMinAccuracy = 5.0
	simulatedMaxAccuracy = 130.0
)

var errSimulatedUnauthorized = errors.New("location access not authorized")

// SimulatedProvider is a Provider for the agent binary: it synthesizes
// jittered readings along a random walk around an origin instead of talking
// to real platform location services. Authorization starts undetermined and
// is granted on request, so the full permission arc is exercised without a
// device. Accuracy is drawn wide enough that a share of readings falls above
// the sampler's filter threshold.
type SimulatedProvider struct {
	logger *logger.Logger

	mu         sync.Mutex
	delegate   Delegate
	state      models.Authorization
	updating   bool
	monitoring bool
	lat        float64
	lon        float64
	rnd        *rand.Rand
}

// NewSimulatedProvider returns a provider whose walk starts at the given
// origin coordinates.
func NewSimulatedProvider(originLat, originLon float64, log *logger.Logger) *SimulatedProvider {
	return &SimulatedProvider{
		logger: log,
		state:  models.AuthorizationUndetermined,
		lat:    originLat,
		lon:    originLon,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetDelegate attaches the receiver of location events. It must be called
// before the provider is started.
func (p *SimulatedProvider) SetDelegate(d Delegate) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.delegate = d
}

// Authorization implements Provider.
func (p *SimulatedProvider) Authorization() models.Authorization {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

// RequestWhenInUseAuthorization grants access asynchronously, standing in for
// the user tapping "Allow" on the system dialog. Requests after a decision
// has been made are ignored, as on a real device.
func (p *SimulatedProvider) RequestWhenInUseAuthorization() {
	p.mu.Lock()
	if p.state != models.AuthorizationUndetermined {
		p.mu.Unlock()
		return
	}
	p.state = models.AuthorizationWhenInUse
	d := p.delegate
	p.mu.Unlock()

	p.logger.Info().
		Str("func", "SimulatedProvider.RequestWhenInUseAuthorization").
		Msg("simulated permission granted")

	if d != nil {
		go d.AuthorizationChanged(models.AuthorizationWhenInUse)
	}
}

// StartUpdates implements Provider. One reading is delivered right away,
// matching the prompt first delivery of real platform services; the feed
// worker paces the rest.
func (p *SimulatedProvider) StartUpdates() {
	p.mu.Lock()
	p.updating = true
	p.mu.Unlock()

	p.logger.Debug().
		Str("func", "SimulatedProvider.StartUpdates").
		Msg("simulated location updates started")

	go p.Emit()
}

// StopUpdates implements Provider.
func (p *SimulatedProvider) StopUpdates() {
	p.mu.Lock()
	p.updating = false
	p.mu.Unlock()

	p.logger.Debug().
		Str("func", "SimulatedProvider.StopUpdates").
		Msg("simulated location updates stopped")
}

// StartMonitoringSignificantChanges implements Provider.
func (p *SimulatedProvider) StartMonitoringSignificantChanges() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.monitoring = true
}

// StopMonitoringSignificantChanges implements Provider.
func (p *SimulatedProvider) StopMonitoringSignificantChanges() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.monitoring = false
}

// RequestLocation delivers a single reading asynchronously. Without
// authorization the request fails through ProviderError, as the platform
// does for one-shot requests.
func (p *SimulatedProvider) RequestLocation() {
	p.mu.Lock()
	d := p.delegate
	authorized := p.state.Authorized()
	var fix Fix
	if authorized {
		fix = p.nextFixLocked()
	}
	p.mu.Unlock()

	if d == nil {
		return
	}
	if !authorized {
		go d.ProviderError(errSimulatedUnauthorized)
		return
	}

	go d.FixReceived(fix)
}

// Emit synthesizes the next reading of the walk and hands it to the
// delegate. The feed worker calls it on every tick; readings are dropped
// unless updates or significant-change monitoring are active.
func (p *SimulatedProvider) Emit() {
	p.mu.Lock()
	if p.delegate == nil || !p.state.Authorized() || (!p.updating && !p.monitoring) {
		p.mu.Unlock()
		return
	}
	fix := p.nextFixLocked()
	d := p.delegate
	p.mu.Unlock()

	d.FixReceived(fix)
}

// nextFixLocked advances the walk by a random step and returns the resulting
// reading. Callers must hold p.mu.
func (p *SimulatedProvider) nextFixLocked() Fix {
	degreeStep := simulatedStepMeters / metersPerDegree
	p.lat += (p.rnd.Float64() - 0.5) * 2 * degreeStep
	p.lon += (p.rnd.Float64() - 0.5) * 2 * degreeStep

	return Fix{
		Latitude:  p.lat,
		Longitude: p.lon,
		Timestamp: time.Now(),
		Accuracy:  simulatedMinAccuracy + p.rnd.Float64()*(simulatedMaxAccuracy-simulatedMinAccuracy),
	}
}
