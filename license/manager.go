// Package license gates access to the toolkit behind a machine-bound,
// tamper-evident 90 day trial.
//
// A Manager is built once per run. InitLicense evaluates the persisted trial
// record and the hidden witness image, Register starts a trial on a machine
// that has none, and IsTrialActive is the boolean gate callers consult before
// running the gated functionality.
package license

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-commons/commons/zap"
	cn "github.com/tektronix/lib-trial-license-go/constant"
	"github.com/tektronix/lib-trial-license-go/internal/cache"
	"github.com/tektronix/lib-trial-license-go/internal/config"
	"github.com/tektronix/lib-trial-license-go/internal/identity"
	"github.com/tektronix/lib-trial-license-go/internal/keygen"
	"github.com/tektronix/lib-trial-license-go/internal/store"
	"github.com/tektronix/lib-trial-license-go/model"
)

// Manager owns the trial state of one run
type Manager struct {
	mu         sync.RWMutex
	status     model.TrialStatus
	trialStart time.Time

	config      *config.ClientConfig
	key         keygen.MachineKey
	store       *store.Store
	witnessPath string
	cache       *cache.Manager
	now         func() time.Time
	logger      log.Logger
}

// New creates a manager bound to this machine's hardware identifier
func New(cfg model.Config, logger *log.Logger) (*Manager, error) {
	l := resolveLogger(logger)

	clientCfg, err := config.FromModel(cfg, l)
	if err != nil {
		return nil, err
	}

	identityCache, err := cache.New(cn.IdentityCacheTTL, l)
	if err != nil {
		l.Errorf("Failed to initialize identifier cache: %s", err.Error())
		return nil, err
	}

	m, err := newManager(clientCfg, identity.NewMachine(clientCfg.Namespace, identityCache, l), l)
	if err != nil {
		identityCache.Close()
		return nil, err
	}

	m.cache = identityCache

	return m, nil
}

// NewWithProvider creates a manager whose key is derived from provider
// instead of the platform machine id
func NewWithProvider(cfg model.Config, provider identity.Provider, logger *log.Logger) (*Manager, error) {
	l := resolveLogger(logger)

	clientCfg, err := config.FromModel(cfg, l)
	if err != nil {
		return nil, err
	}

	return newManager(clientCfg, provider, l)
}

func newManager(cfg *config.ClientConfig, provider identity.Provider, l log.Logger) (*Manager, error) {
	key, err := keygen.Derive(provider)
	if err != nil {
		l.Errorf("Failed to derive machine key: %s", err.Error())
		return nil, err
	}

	selector := keygen.Sign(key, cn.CrossKeyMessage)[:cn.WitnessSelectorLength]

	return &Manager{
		status:      model.Unknown,
		config:      cfg,
		key:         key,
		store:       store.New(cfg.KeyDir(), l),
		witnessPath: filepath.Join(cfg.CacheDir, selector+cn.WitnessExtension),
		now:         time.Now,
		logger:      l,
	}, nil
}

func resolveLogger(logger *log.Logger) log.Logger {
	if logger != nil && *logger != nil {
		return *logger
	}

	return zap.InitializeLogger()
}

// SetClock replaces the time source (useful for testing)
func (m *Manager) SetClock(now func() time.Time) {
	if now == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// GetLogger returns the logger used by the manager
func (m *Manager) GetLogger() log.Logger {
	return m.logger
}

// RecordPath returns the location of the trial record
func (m *Manager) RecordPath() string {
	return m.store.Path()
}

// WitnessPath returns the location of the witness image
func (m *Manager) WitnessPath() string {
	return m.witnessPath
}

// Close releases the identifier cache
func (m *Manager) Close() {
	if m.cache != nil {
		m.cache.Close()
	}
}

// clock returns the current time at the record's one second resolution
func (m *Manager) clock() time.Time {
	return m.now().UTC().Truncate(time.Second)
}

// InitLicense evaluates the trial record and the witness image and settles
// the trial status. Only fatal environment failures are returned; integrity
// failures leave the manager Tampered.
func (m *Manager) InitLicense() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.isSettled() {
		return nil
	}

	now := m.clock()
	recordExists := m.store.Exists()

	verified, err := m.crossVerify(recordExists)
	if err != nil {
		m.logger.Errorf("Trial witness could not be created: %v", err)
		return err
	}

	if !verified {
		m.tamper(now)
		return nil
	}

	if !recordExists {
		m.register(now)
		return nil
	}

	line, ok := m.store.Read()
	if !ok {
		return nil
	}

	m.evaluate(line, now)

	return nil
}

// Register starts a new trial. It only acts while the status is Unknown.
func (m *Manager) Register() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != model.Unknown {
		return
	}

	m.register(m.clock())
}

// IsTrialActive reports whether the gated functionality may run and logs the
// trial status line
func (m *Manager) IsTrialActive() bool {
	res := m.Result()

	switch res.Status {
	case model.Available:
		m.logger.Info(cn.StatusLineAvailable)
		m.warnExpiry(res.DaysLeft)
	case model.Expired:
		m.logger.Error(cn.StatusLineExpired)
	case model.Tampered:
		m.logger.Error(cn.StatusLineTampered)
	default:
		m.logger.Warn(cn.StatusLineUnregistered)
	}

	return res.Active
}

// Gate runs the startup sequence of a gated tool: evaluate, register a trial
// on a fresh machine, then check. It returns cn.ErrTrialNotActive when the
// gated functionality must not run.
func (m *Manager) Gate() error {
	if err := m.InitLicense(); err != nil {
		return err
	}

	m.Register()

	if !m.IsTrialActive() {
		return cn.ErrTrialNotActive
	}

	return nil
}

// RefreshInterval returns how often long running hosts should call Revalidate
func (m *Manager) RefreshInterval() time.Duration {
	return m.config.RefreshInterval
}

// Status returns the current trial status
func (m *Manager) Status() model.TrialStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.status
}

// Result returns a snapshot of the trial verdict
func (m *Manager) Result() model.ValidationResult {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := model.ValidationResult{
		Active: m.status == model.Available,
		Status: m.status,
	}

	if m.status == model.Available || m.status == model.Expired {
		res.TrialStart = m.trialStart
		res.DaysLeft = max(m.config.TrialDays-elapsedDays(m.clock(), m.trialStart), 0)
	}

	return res
}

// Revalidate re-runs the integrity checks and the expiry evaluation of an
// active trial. It returns cn.ErrTrialNotActive once the trial is no longer
// active.
func (m *Manager) Revalidate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != model.Available {
		return cn.ErrTrialNotActive
	}

	now := m.clock()

	if !m.store.Exists() {
		m.tamper(now)
		return cn.ErrTrialNotActive
	}

	verified, err := m.crossVerify(true)
	if err != nil {
		return err
	}

	line, ok := m.store.Read()
	if !verified || !ok {
		m.tamper(now)
		return cn.ErrTrialNotActive
	}

	m.evaluate(line, now)

	if m.status != model.Available {
		return cn.ErrTrialNotActive
	}

	return nil
}

func (m *Manager) isSettled() bool {
	return m.status == model.Expired || m.status == model.Tampered
}

// evaluate checks a record line and moves to Available, Expired or Tampered.
// Anything but Tampered refreshes last_seen.
func (m *Manager) evaluate(line string, now time.Time) {
	signature, message, err := store.Split(line)
	if err != nil || !keygen.Verify(m.key, signature, message) {
		m.tamper(now)
		return
	}

	rec, err := store.Parse(line)
	if err != nil {
		m.tamper(now)
		return
	}

	status := model.Available
	if m.config.TrialDays-elapsedDays(now, rec.TrialStart) < 1 {
		status = model.Expired
	}

	if elapsedDays(now, rec.LastSeen) < 0 {
		m.tamper(now)
		return
	}

	m.status = status
	m.trialStart = rec.TrialStart

	m.persist(rec.TrialStart, now)
}

func (m *Manager) register(now time.Time) {
	m.status = model.Available
	m.trialStart = now

	m.persist(now, now)
	m.logger.Infof("Trial registered, %d days remaining", m.config.TrialDays)
}

func (m *Manager) tamper(now time.Time) {
	m.status = model.Tampered
	m.trialStart = now
}

func (m *Manager) persist(start, lastSeen time.Time) {
	rec := model.TrialRecord{TrialStart: start, LastSeen: lastSeen}
	rec.Signature = keygen.Sign(m.key, rec.Message())

	m.store.Write(rec)
}

// warnExpiry nags when the trial is close to its end
func (m *Manager) warnExpiry(daysLeft int) {
	if daysLeft <= cn.DaysLeftToUrgentWarn {
		m.logger.Warnf("WARNING: Trial expires in %d days. Contact your account manager to purchase a license", daysLeft)
	} else if daysLeft <= cn.DaysLeftToNormalWarn {
		m.logger.Warnf("Trial expires in %d days", daysLeft)
	}
}

// elapsedDays returns the whole days from since to now, truncated toward zero
func elapsedDays(now, since time.Time) int {
	return int(now.Sub(since) / (24 * time.Hour))
}
