package dictionary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MauritiusChief/toki-ante/internal/config"
	"github.com/MauritiusChief/toki-ante/internal/domain"
	"github.com/MauritiusChief/toki-ante/internal/preset"
	"github.com/MauritiusChief/toki-ante/internal/session"
	"github.com/MauritiusChief/toki-ante/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type prefsStore interface {
	Get(ctx context.Context, clientID uuid.UUID) (*domain.Prefs, error)
	Update(ctx context.Context, clientID uuid.UUID, fn func(p *domain.Prefs)) (*domain.Prefs, error)
	DeleteIdle(ctx context.Context, before time.Time) (int64, error)
}

type presetSource interface {
	Text(ctx context.Context, id string) (string, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service keeps one active dictionary per client and converts text with it.
type Service struct {
	log      *slog.Logger
	prefs    prefsStore
	presets  presetSource
	cfg      config.DictionaryConfig
	now      func() time.Time
	sessions *registry
}

// NewService creates a new Dictionary service.
func NewService(
	logger *slog.Logger,
	prefs prefsStore,
	presets presetSource,
	cfg config.DictionaryConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "dictionary"),
		prefs:    prefs,
		presets:  presets,
		cfg:      cfg,
		now:      time.Now,
		sessions: newRegistry(),
	}
}

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

type registry struct {
	mu sync.Mutex
	m  map[uuid.UUID]*session.Session
}

func newRegistry() *registry {
	return &registry{m: make(map[uuid.UUID]*session.Session)}
}

func (r *registry) get(clientID uuid.UUID) *session.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.m[clientID]
	if !ok {
		sess = session.New()
		r.m[clientID] = sess
	}
	return sess
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.m)
}

// removeIdle drops sessions with no activity since before.
func (r *registry) removeIdle(before time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, sess := range r.m {
		if sess.IdleSince(before) {
			delete(r.m, id)
			n++
		}
	}
	return n
}

// session returns the caller's session without restoring it.
func (s *Service) session(ctx context.Context) (uuid.UUID, *session.Session, error) {
	clientID, ok := ctxutil.ClientIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, nil, domain.ErrUnauthorized
	}
	sess := s.sessions.get(clientID)
	sess.Touch(s.now())
	return clientID, sess, nil
}

// active returns the caller's current dictionary, restoring it from stored
// preferences on first use.
func (s *Service) active(ctx context.Context) (uuid.UUID, *session.State, error) {
	clientID, sess, err := s.session(ctx)
	if err != nil {
		return uuid.Nil, nil, err
	}
	if st := sess.Current(); st != nil {
		return clientID, st, nil
	}

	st, err := sess.Load(func() (*session.State, error) {
		return s.restore(ctx, clientID)
	})
	if errors.Is(err, session.ErrSuperseded) {
		// A concurrent load won; use its result.
		if cur := sess.Current(); cur != nil {
			return clientID, cur, nil
		}
	}
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("restore dictionary: %w", err)
	}
	return clientID, st, nil
}

// restore rebuilds the state a client last selected: the saved custom
// dictionary when it was active, otherwise the saved or default preset.
func (s *Service) restore(ctx context.Context, clientID uuid.UUID) (*session.State, error) {
	p, err := s.prefs.Get(ctx, clientID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "prefs lookup failed",
			slog.String("client_id", clientID.String()),
			slog.String("error", err.Error()),
		)
		p = nil
	}

	if p != nil && p.PresetID == preset.CustomSavedID && p.HasCustom() {
		name := p.LastName
		if name == "" {
			name = preset.CustomSavedName
		}
		st, err := session.NewState(p.CustomCSV, name, session.SourceSaved, preset.CustomSavedID, s.now())
		if err == nil {
			return st, nil
		}
		s.log.WarnContext(ctx, "saved dictionary unreadable, using preset",
			slog.String("client_id", clientID.String()),
			slog.String("error", err.Error()),
		)
	}

	id := s.cfg.DefaultPreset
	if p != nil && p.PresetID != "" && p.PresetID != preset.CustomSavedID {
		id = p.PresetID
	}
	pr, ok := preset.Lookup(id)
	if !ok {
		pr = preset.Default
	}
	return s.buildPreset(ctx, pr)
}

func (s *Service) buildPreset(ctx context.Context, p preset.Preset) (*session.State, error) {
	text, err := s.presets.Text(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return session.NewState(text, p.Label, session.SourcePreset, p.ID, s.now())
}

// remember persists a preference change. Failures are logged: the loaded
// dictionary stays active for this session either way.
func (s *Service) remember(ctx context.Context, clientID uuid.UUID, fn func(p *domain.Prefs)) {
	if _, err := s.prefs.Update(ctx, clientID, fn); err != nil {
		s.log.ErrorContext(ctx, "prefs update failed",
			slog.String("client_id", clientID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// statusMessage is the confirmation shown after a successful load.
func statusMessage(entries int) string {
	return fmt.Sprintf("字典加载完毕 ✓ (%d个条目)", entries)
}
