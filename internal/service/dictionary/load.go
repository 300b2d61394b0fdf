package dictionary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MauritiusChief/toki-ante/internal/domain"
	"github.com/MauritiusChief/toki-ante/internal/preset"
	"github.com/MauritiusChief/toki-ante/internal/session"
)

// ErrNoSaved is returned by LoadSaved when the client has no cached custom
// dictionary.
var ErrNoSaved = fmt.Errorf("no saved custom dictionary: %w", domain.ErrNotFound)

// ---------------------------------------------------------------------------
// ListPresets
// ---------------------------------------------------------------------------

// ListPresets returns the presets offered for mode and the one selected by
// default.
func (s *Service) ListPresets(mode domain.Mode) PresetList {
	if !mode.IsValid() {
		mode = domain.ModeForward
	}
	return PresetList{
		Mode:    mode,
		Default: preset.Find(mode, s.cfg.DefaultPreset).ID,
		Presets: preset.List(mode),
	}
}

// ---------------------------------------------------------------------------
// LoadPreset
// ---------------------------------------------------------------------------

// LoadPreset makes the preset with id the active dictionary and drops any
// cached custom dictionary.
func (s *Service) LoadPreset(ctx context.Context, id string) (*Status, error) {
	clientID, sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	p, ok := preset.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("preset %q: %w", id, domain.ErrNotFound)
	}

	st, err := sess.Load(func() (*session.State, error) {
		return s.buildPreset(ctx, p)
	})
	if err != nil {
		return nil, fmt.Errorf("load preset %s: %w", p.ID, err)
	}

	s.remember(ctx, clientID, func(pr *domain.Prefs) { pr.SelectPreset(p.ID, p.Label) })

	s.log.InfoContext(ctx, "dictionary loaded",
		slog.String("client_id", clientID.String()),
		slog.String("preset", p.ID),
		slog.Int("entries", st.Len()),
	)

	return statusOf(st, false), nil
}

// ---------------------------------------------------------------------------
// LoadSaved
// ---------------------------------------------------------------------------

// LoadSaved makes the client's cached custom dictionary active.
// Returns ErrNoSaved when nothing is cached; preferences stay unchanged.
func (s *Service) LoadSaved(ctx context.Context) (*Status, error) {
	clientID, sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.prefs.Get(ctx, clientID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, ErrNoSaved
	case err != nil:
		return nil, fmt.Errorf("get prefs: %w", err)
	case !p.HasCustom():
		return nil, ErrNoSaved
	}

	st, err := sess.Load(func() (*session.State, error) {
		return session.NewState(p.CustomCSV, preset.CustomSavedName, session.SourceSaved, preset.CustomSavedID, s.now())
	})
	if err != nil {
		return nil, fmt.Errorf("load saved: %w", err)
	}

	s.remember(ctx, clientID, func(pr *domain.Prefs) { pr.Rename(preset.CustomSavedID, preset.CustomSavedName) })

	s.log.InfoContext(ctx, "saved dictionary loaded",
		slog.String("client_id", clientID.String()),
		slog.Int("entries", st.Len()),
	)

	return statusOf(st, true), nil
}

// ---------------------------------------------------------------------------
// Upload
// ---------------------------------------------------------------------------

// Upload parses a dictionary file and makes it active. On success the text
// is cached as the client's saved custom dictionary; a file that fails to
// parse changes nothing.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*Status, error) {
	clientID, sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(s.cfg.MaxUploadBytes); err != nil {
		return nil, err
	}

	name := preset.UploadName(input.Filename)
	st, err := sess.Load(func() (*session.State, error) {
		return session.NewState(input.Text, name, session.SourceUpload, preset.CustomSavedID, s.now())
	})
	if err != nil {
		return nil, fmt.Errorf("load upload: %w", err)
	}

	s.remember(ctx, clientID, func(pr *domain.Prefs) {
		pr.StoreCustom(preset.CustomSavedID, st.Text, st.Digest, st.Name)
	})

	s.log.InfoContext(ctx, "dictionary uploaded",
		slog.String("client_id", clientID.String()),
		slog.String("filename", input.Filename),
		slog.Int("entries", st.Len()),
	)

	return statusOf(st, true), nil
}

// ---------------------------------------------------------------------------
// Active
// ---------------------------------------------------------------------------

// Active returns the caller's active dictionary, restoring it if needed.
func (s *Service) Active(ctx context.Context) (*Status, error) {
	clientID, st, err := s.active(ctx)
	if err != nil {
		return nil, err
	}

	hasSaved := false
	if p, err := s.prefs.Get(ctx, clientID); err == nil {
		hasSaved = p.HasCustom()
	}

	return statusOf(st, hasSaved), nil
}

func statusOf(st *session.State, hasSaved bool) *Status {
	return &Status{
		Name:     st.Name,
		PresetID: st.PresetID,
		Source:   st.Source,
		Entries:  st.Len(),
		Digest:   st.Digest,
		Message:  statusMessage(st.Len()),
		LoadedAt: st.LoadedAt,
		HasSaved: hasSaved,
	}
}
