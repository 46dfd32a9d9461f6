package truss

import "sync"

// registry lazily builds one manager per subsystem key and keeps it for
// the session's lifetime. The mutex guarantees that two near-simultaneous
// first accesses for the same key cannot produce two divergent instances,
// and repeated lookups always return the same reference.
//
// A factory failure is not cached: the next lookup retries construction
// from scratch.
type registry struct {
	mu      sync.Mutex
	entries map[string]any
}

func (r *registry) get(key string, factory func() (any, error)) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.entries[key]; ok {
		return m, nil
	}
	m, err := factory()
	if err != nil {
		return nil, err
	}
	if r.entries == nil {
		r.entries = make(map[string]any)
	}
	r.entries[key] = m
	return m, nil
}

// manager resolves the singleton for key, building it with factory on
// first access. Manager factories are infallible by construction, so the
// registry error path cannot trigger here.
func manager[T any](s *Session, key string, factory func(*Session) *T) *T {
	m, _ := s.managers.get(key, func() (any, error) {
		return factory(s), nil
	})
	return m.(*T)
}

// Model returns the model manager (file, units, lock, analysis).
func (s *Session) Model() *Model { return manager(s, "Model", newModel) }

// Points returns the point-object manager.
func (s *Session) Points() *Points { return manager(s, "Points", newPoints) }

// Frames returns the frame-object manager.
func (s *Session) Frames() *Frames { return manager(s, "Frames", newFrames) }

// Areas returns the area-object manager.
func (s *Session) Areas() *Areas { return manager(s, "Areas", newAreas) }

// Materials returns the material-property manager.
func (s *Session) Materials() *Materials { return manager(s, "Materials", newMaterials) }

// LoadPatterns returns the load-pattern manager.
func (s *Session) LoadPatterns() *LoadPatterns { return manager(s, "LoadPatterns", newLoadPatterns) }

// Stories returns the story manager.
func (s *Session) Stories() *Stories { return manager(s, "Stories", newStories) }

// Results returns the analysis-results manager.
func (s *Session) Results() *Results { return manager(s, "Results", newResults) }
