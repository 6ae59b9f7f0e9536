// Package session owns the loaded gallery state: the variations offered by a
// source, which one is active, and the notices raised while loading and
// applying.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/swatchbook/internal/logger"
	"github.com/alexisbeaulieu97/swatchbook/internal/ports"
	"github.com/alexisbeaulieu97/swatchbook/internal/variation"
)

// Level classifies a notice.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is a user-facing message.
type Notice struct {
	Level   Level
	Message string
}

// Snapshot is the state every render call receives. A Snapshot is never
// mutated after it is handed out.
type Snapshot struct {
	Variations []variation.Variation
	ActiveSlug string
}

// Find returns the variation whose key matches slug after normalization.
func (s Snapshot) Find(slug string) (variation.Variation, int, bool) {
	key := variation.NormalizeSlug(slug)
	for i, v := range s.Variations {
		if v.Key() == key {
			return v, i, true
		}
	}
	return variation.Variation{}, -1, false
}

// Session loads variations once and applies them through a sink.
type Session struct {
	source ports.VariationSource
	sink   ports.ApplySink
	log    *logger.Logger

	once     sync.Once
	mu       sync.Mutex
	snapshot Snapshot
	notices  []Notice
}

// New creates a Session. sink may be nil for read-only use.
func New(source ports.VariationSource, sink ports.ApplySink, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	return &Session{source: source, sink: sink, log: log}
}

// Load fetches the variations and the active slug on first call and returns
// the same snapshot on every later call. Fetch failures become notices and
// leave the snapshot empty or partial.
func (s *Session) Load(ctx context.Context) Snapshot {
	s.once.Do(func() {
		snap := s.load(ctx)
		s.mu.Lock()
		s.snapshot = snap
		s.mu.Unlock()
	})
	return s.Snapshot()
}

// Snapshot returns the current snapshot without loading.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

func (s *Session) load(ctx context.Context) Snapshot {
	if s.source == nil {
		s.notify(LevelError, "No variation source configured.")
		return Snapshot{}
	}

	variations, err := s.source.FetchVariations(ctx)
	if err != nil {
		s.log.Error(err, "fetch variations failed")
		s.notify(LevelError, fmt.Sprintf("Could not load variations: %v", err))
		return Snapshot{}
	}

	for _, v := range variations {
		if n := len(v.Repairs) + len(v.Issues); n > 0 {
			s.log.WithFields(map[string]any{"variation": v.Key(), "issues": n}).Debug("variation data repaired")
		}
	}
	s.log.WithFields(map[string]any{"count": len(variations)}).Info("variations loaded")

	current, err := s.source.FetchCurrent(ctx)
	if err != nil {
		s.log.Error(err, "fetch current variation failed")
		s.notify(LevelWarning, "Could not detect the current variation.")
		current = ""
	}

	return Snapshot{Variations: variations, ActiveSlug: matchCurrent(variations, current)}
}

// matchCurrent maps a reported current value onto a variation key. A value
// that names a variation's title rather than its slug still matches.
func matchCurrent(variations []variation.Variation, current string) string {
	key := variation.NormalizeSlug(current)
	if key == "" {
		return ""
	}
	for _, v := range variations {
		if v.Key() == key {
			return key
		}
	}
	for _, v := range variations {
		if variation.NormalizeSlug(v.Title) == key {
			return v.Key()
		}
	}
	return key
}

// Apply sends the variation identified by slug to the sink and returns the
// resulting notice. On success the active slug moves to the applied variation
// in a new snapshot.
func (s *Session) Apply(ctx context.Context, slug string) Notice {
	snap := s.Load(ctx)
	v, _, ok := snap.Find(slug)
	if !ok {
		return s.notify(LevelError, fmt.Sprintf("Variation %q not found.", slug))
	}
	if s.sink == nil {
		return s.notify(LevelError, "No apply target configured.")
	}

	log := s.log.WithFields(map[string]any{"variation": v.Key(), "source": string(v.Source)})
	if n := len(v.Repairs) + len(v.Issues); n > 0 {
		for _, issue := range append(append([]variation.Issue{}, v.Repairs...), v.Issues...) {
			log.WithFields(map[string]any{"kind": string(issue.Kind), "path": issue.Path}).Warn(issue.Detail)
		}
		s.notify(LevelWarning, fmt.Sprintf("Variation data had %d issue(s) that were automatically fixed.", n))
	}

	log.Info("applying variation")
	result, err := s.sink.Apply(ctx, v)
	if err != nil {
		log.Error(err, "apply failed")
		return s.notify(LevelError, fmt.Sprintf("Could not apply variation: %v", err))
	}
	if !result.Success {
		log.WithFields(map[string]any{"message": result.Message}).Warn("apply returned an unexpected response")
		return s.notify(LevelWarning, fmt.Sprintf("Variation applied but response was unexpected: %s", result.Message))
	}

	s.mu.Lock()
	s.snapshot = Snapshot{Variations: s.snapshot.Variations, ActiveSlug: v.Key()}
	s.mu.Unlock()

	message := fmt.Sprintf("Variation %q applied successfully.", v.DisplayTitle())
	if result.Reference != "" {
		message = fmt.Sprintf("%s (reference %s)", message, result.Reference)
	}
	log.WithFields(map[string]any{"reference": result.Reference}).Info("variation applied")
	return s.notify(LevelSuccess, message)
}

// Notices returns every notice raised so far, oldest first.
func (s *Session) Notices() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notice, len(s.notices))
	copy(out, s.notices)
	return out
}

func (s *Session) notify(level Level, message string) Notice {
	n := Notice{Level: level, Message: message}
	s.mu.Lock()
	s.notices = append(s.notices, n)
	s.mu.Unlock()
	return n
}
