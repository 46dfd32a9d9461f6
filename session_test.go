package truss_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	truss "github.com/trusslab/truss-go"
	"github.com/trusslab/truss-go/internal/enginetest"
)

func newTestSession(t *testing.T, engine *enginetest.Engine, opts ...truss.Option) *truss.Session {
	t.Helper()
	sess, err := truss.Attach(context.Background(), &enginetest.Launcher{Engine: engine}, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sess.Close() })
	return sess
}

func TestAttach(t *testing.T) {
	engine := enginetest.New("21.2.0")
	sess := newTestSession(t, engine)

	assert.NotEmpty(t, sess.ID())
	assert.Equal(t, "21.2.0", sess.Version())
	assert.Equal(t, truss.ModeAttached, sess.Mode())
}

func TestAttach_NoEngineAvailable(t *testing.T) {
	launcher := &enginetest.Launcher{AttachErr: errors.New("no running instance")}

	_, err := truss.Attach(context.Background(), launcher)

	require.Error(t, err)
	assert.True(t, truss.IsKind(err, truss.KindSessionUnavailable))
}

func TestAttach_VersionUnsupported(t *testing.T) {
	engine := enginetest.New("19.0.0")

	_, err := truss.Attach(context.Background(), &enginetest.Launcher{Engine: engine})

	require.Error(t, err)
	assert.True(t, truss.IsKind(err, truss.KindSessionUnavailable))
	assert.Contains(t, err.Error(), "outside supported range")
	assert.True(t, engine.Closed(), "incompatible engine handle must be released")
}

func TestAttach_VersionRangeOverride(t *testing.T) {
	engine := enginetest.New("19.0.0")

	sess, err := truss.Attach(context.Background(), &enginetest.Launcher{Engine: engine},
		truss.WithVersionRange(">= 19.0.0"))

	require.NoError(t, err)
	defer sess.Close()
	assert.Equal(t, "19.0.0", sess.Version())
}

func TestAttach_SkipVersionCheck(t *testing.T) {
	engine := enginetest.New("internal-build")

	sess, err := truss.Attach(context.Background(), &enginetest.Launcher{Engine: engine},
		truss.WithoutVersionCheck())

	require.NoError(t, err)
	defer sess.Close()
}

func TestLaunch(t *testing.T) {
	engine := enginetest.New("21.2.0")
	launcher := &enginetest.Launcher{Engine: engine}

	sess, err := truss.Launch(context.Background(), launcher,
		truss.WithEnginePath(`C:\Truss21\truss.exe`))

	require.NoError(t, err)
	defer sess.Close()
	assert.Equal(t, truss.ModeLaunched, sess.Mode())
	assert.Equal(t, `C:\Truss21\truss.exe`, launcher.LaunchedPath)
}

func TestLaunch_StartFailure(t *testing.T) {
	launcher := &enginetest.Launcher{LaunchErr: errors.New("executable not found")}

	_, err := truss.Launch(context.Background(), launcher)

	require.Error(t, err)
	assert.True(t, truss.IsKind(err, truss.KindSessionUnavailable))
}

func TestSession_CloseIdempotent(t *testing.T) {
	engine := enginetest.New("21.2.0")
	sess := newTestSession(t, engine)

	require.NoError(t, sess.Close())
	require.NoError(t, sess.Close())
	assert.True(t, engine.Closed())
}

func TestSession_CallAfterClose(t *testing.T) {
	engine := enginetest.New("21.2.0")
	sess := newTestSession(t, engine)
	require.NoError(t, sess.Close())

	_, err := sess.Points().Count(context.Background())

	require.Error(t, err)
	assert.True(t, truss.IsKind(err, truss.KindSessionUnavailable))
	assert.Equal(t, 0, engine.CallCount("Points.Count"))
}

// TestSession_ManagerIdentity pins reference-identity stability of manager
// lookups, before and after unrelated calls.
func TestSession_ManagerIdentity(t *testing.T) {
	engine := enginetest.New("21.2.0")
	sess := newTestSession(t, engine)

	frames := sess.Frames()
	assert.Same(t, frames, sess.Frames())

	// Unrelated activity in between must not disturb the cache.
	_, err := sess.Points().Count(context.Background())
	require.NoError(t, err)
	require.NoError(t, sess.Model().New(context.Background()))

	assert.Same(t, frames, sess.Frames())
	assert.Same(t, sess.Points(), sess.Points())
	assert.Same(t, sess.Results(), sess.Results())
}

func TestSession_ManagersDistinctPerSession(t *testing.T) {
	a := newTestSession(t, enginetest.New("21.2.0"))
	b := newTestSession(t, enginetest.New("21.2.0"))

	assert.NotSame(t, a.Frames(), b.Frames())
}
