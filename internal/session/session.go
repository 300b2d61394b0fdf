// Package session holds the active dictionary of one client.
//
// The active state is an immutable value replaced as a whole, so a reader
// never sees a mapping from one load with a name or digest from another.
// Loads are last-load-wins: a load that finishes after a newer one began is
// discarded.
package session

import (
	"encoding/hex"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zeebo/blake3"

	"github.com/MauritiusChief/toki-ante/internal/csvdict"
	"github.com/MauritiusChief/toki-ante/internal/domain"
)

// ErrSuperseded is returned when a newer load began before this one
// committed.
var ErrSuperseded = fmt.Errorf("dictionary load superseded: %w", domain.ErrConflict)

// Source tells where the active dictionary text came from.
type Source string

const (
	SourcePreset Source = "preset"
	SourceSaved  Source = "saved"
	SourceUpload Source = "upload"
	SourceFile   Source = "file"
)

// State is one loaded dictionary and its metadata. Never modified after
// construction.
type State struct {
	Dictionary *domain.Dictionary
	Name       string
	Digest     string
	Source     Source
	PresetID   string
	Text       string
	LoadedAt   time.Time
}

// Len returns the number of entries in the dictionary.
func (s *State) Len() int {
	if s == nil {
		return 0
	}
	return s.Dictionary.Len()
}

// Digest returns the hex BLAKE3-256 digest of dictionary text.
func Digest(text string) string {
	sum := blake3.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// NewState parses text and wraps the result with its metadata.
func NewState(text, name string, src Source, presetID string, now time.Time) (*State, error) {
	dict, err := csvdict.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return &State{
		Dictionary: dict,
		Name:       name,
		Digest:     Digest(text),
		Source:     src,
		PresetID:   presetID,
		Text:       text,
		LoadedAt:   now,
	}, nil
}

// Ticket identifies a load in progress.
type Ticket uint64

// Session is the replaceable dictionary state of one client. The zero value
// is ready to use and has no active dictionary.
type Session struct {
	mu    sync.Mutex
	seq   uint64
	state atomic.Pointer[State]

	lastUsed atomic.Int64
}

// New creates an empty session.
func New() *Session {
	s := &Session{}
	s.Touch(time.Now())
	return s
}

// Current returns the active state, or nil before the first successful load.
func (s *Session) Current() *State {
	return s.state.Load()
}

// Begin starts a load and returns its ticket. Any ticket issued earlier can
// no longer commit.
func (s *Session) Begin() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return Ticket(s.seq)
}

// Commit installs st if no load began after t. It reports whether st became
// the active state.
func (s *Session) Commit(t Ticket, st *State) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if uint64(t) != s.seq {
		return false
	}
	s.state.Store(st)
	return true
}

// Load runs build under a fresh ticket and commits its result. A failed
// build leaves the active state untouched. A build overtaken by a newer load
// returns ErrSuperseded.
func (s *Session) Load(build func() (*State, error)) (*State, error) {
	t := s.Begin()
	st, err := build()
	if err != nil {
		return nil, err
	}
	if !s.Commit(t, st) {
		return nil, ErrSuperseded
	}
	return st, nil
}

// Touch records activity at now.
func (s *Session) Touch(now time.Time) {
	s.lastUsed.Store(now.UnixNano())
}

// IdleSince reports whether the session has had no activity since t.
func (s *Session) IdleSince(t time.Time) bool {
	return s.lastUsed.Load() < t.UnixNano()
}
