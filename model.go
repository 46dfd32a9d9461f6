package truss

import (
	"context"
	"fmt"

	"github.com/trusslab/truss-go/logging"
)

// Units enumerates the engine's consistent unit systems.
type Units int

const (
	UnitsUnknown Units = iota
	UnitsKNMeterC
	UnitsNMillimeterC
	UnitsKipFeetF
	UnitsKipInchF
)

// String returns the engine's display name for the unit system.
func (u Units) String() string {
	switch u {
	case UnitsKNMeterC:
		return "kN_m_C"
	case UnitsNMillimeterC:
		return "N_mm_C"
	case UnitsKipFeetF:
		return "kip_ft_F"
	case UnitsKipInchF:
		return "kip_in_F"
	default:
		return "unknown"
	}
}

// Model manages the engine's model file: initialization, open/save,
// the model lock, present units, and running the analysis.
type Model struct {
	s   *Session
	log logging.Logger
}

func newModel(s *Session) *Model {
	return &Model{s: s, log: s.logger}
}

// New initializes a blank model, discarding unsaved changes in the engine.
func (m *Model) New(ctx context.Context) error {
	return m.s.call(ctx, "Model.InitializeNew", nil, nil, nil)
}

// Open loads a model file from path.
func (m *Model) Open(ctx context.Context, path string) error {
	return m.s.call(ctx, "Model.Open",
		[]Validator{nonEmpty("path", path)},
		[]any{path}, nil)
}

// Save writes the model to path. An empty path saves to the model's
// current file; the engine rejects an empty path for unsaved models.
func (m *Model) Save(ctx context.Context, path string) error {
	return m.s.call(ctx, "Model.Save", nil, []any{path}, nil)
}

// SetLocked sets the model lock. A locked model keeps analysis results
// but rejects geometry changes.
func (m *Model) SetLocked(ctx context.Context, locked bool) error {
	return m.s.call(ctx, "Model.SetLocked", nil, []any{locked}, nil)
}

// Locked reports whether the model is locked.
func (m *Model) Locked(ctx context.Context) (bool, error) {
	var locked bool
	err := m.s.call(ctx, "Model.GetLocked", nil, []any{&locked}, nil)
	return locked, err
}

// SetPresentUnits sets the unit system for subsequent calls.
func (m *Model) SetPresentUnits(ctx context.Context, u Units) error {
	return m.s.call(ctx, "Model.SetPresentUnits",
		[]Validator{func() error { return validUnits(u) }},
		[]any{int(u)}, nil)
}

// PresentUnits reports the unit system the engine currently presents
// values in.
func (m *Model) PresentUnits(ctx context.Context) (Units, error) {
	var raw int
	err := m.s.call(ctx, "Model.GetPresentUnits", nil, []any{&raw}, nil)
	return Units(raw), err
}

// Analyze runs the analysis for the current model. The call blocks until
// the engine finishes; it is not cancellable once issued.
func (m *Model) Analyze(ctx context.Context) error {
	m.log.Info("running analysis", "session_id", m.s.id)
	return m.s.call(ctx, "Model.RunAnalysis", nil, nil, nil)
}

func validUnits(u Units) error {
	switch u {
	case UnitsKNMeterC, UnitsNMillimeterC, UnitsKipFeetF, UnitsKipInchF:
		return nil
	}
	return fmt.Errorf("units value %d is not a known unit system", int(u))
}
