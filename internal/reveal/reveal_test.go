package reveal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_RevealsOnceOnThreshold(t *testing.T) {
	obs := NewManual()
	tr := NewTracker("problema", DefaultConfig)
	require.NoError(t, tr.Mount(obs))

	assert.Equal(t, Hidden, tr.State(), "a revealable section starts hidden")
	assert.Equal(t, 1, obs.Active("problema"))

	// Below threshold: nothing happens.
	obs.Fire("problema", Entry{Intersecting: true, Ratio: 0.10})
	assert.Equal(t, Hidden, tr.State())

	// Not intersecting: nothing happens even with a high ratio.
	obs.Fire("problema", Entry{Intersecting: false, Ratio: 0.9})
	assert.Equal(t, Hidden, tr.State())

	obs.Fire("problema", Entry{Intersecting: true, Ratio: 0.15})
	assert.Equal(t, Revealed, tr.State())
	assert.True(t, tr.Visible())
	assert.True(t, tr.Animated())
	assert.False(t, tr.Observing(), "the watch must be torn down after firing")
	assert.Equal(t, 0, obs.Active("problema"))

	// A second notification reaches nobody.
	assert.Equal(t, 0, obs.Fire("problema", Entry{Intersecting: true, Ratio: 1}))
	assert.Equal(t, Revealed, tr.State())
}

func TestTracker_UnmountDisposesWatch(t *testing.T) {
	obs := NewManual()
	tr := NewTracker("squad", DefaultConfig)
	require.NoError(t, tr.Mount(obs))

	tr.Unmount()
	assert.Equal(t, 0, obs.Active("squad"))

	obs.Fire("squad", Entry{Intersecting: true, Ratio: 1})
	assert.Equal(t, Hidden, tr.State(), "no state change after unmount")

	// Unmounting twice is harmless.
	tr.Unmount()
}

func TestTracker_MountIsIdempotent(t *testing.T) {
	obs := NewManual()
	tr := NewTracker("solucao", DefaultConfig)
	require.NoError(t, tr.Mount(obs))
	require.NoError(t, tr.Mount(obs))

	assert.Equal(t, 1, obs.Active("solucao"))
}

func TestTracker_DegradesWithoutCapability(t *testing.T) {
	t.Run("nil observer", func(t *testing.T) {
		tr := NewTracker("faq", DefaultConfig)
		require.NoError(t, tr.Mount(nil))
		assert.Equal(t, Revealed, tr.State())
		assert.False(t, tr.Animated())
	})

	t.Run("unsupported observer", func(t *testing.T) {
		tr := NewTracker("faq", DefaultConfig)
		require.NoError(t, tr.Mount(Unsupported{}))
		assert.Equal(t, Revealed, tr.State())
		assert.False(t, tr.Animated())
	})

	t.Run("failing observer", func(t *testing.T) {
		tr := NewTracker("faq", DefaultConfig)
		err := tr.Mount(failingObserver{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `observe "faq"`)
		assert.True(t, tr.Visible(), "content must stay visible when observation fails")
	})
}

func TestDeferred_KeepsHidden(t *testing.T) {
	tr := NewTracker("resultados", DefaultConfig)
	require.NoError(t, tr.Mount(Deferred{}))

	assert.Equal(t, Hidden, tr.State())
	assert.True(t, tr.Observing())
	tr.Unmount()
	assert.False(t, tr.Observing())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "hidden", Hidden.String())
	assert.Equal(t, "revealed", Revealed.String())
	assert.Equal(t, "State(7)", State(7).String())
}

type failingObserver struct{}

func (failingObserver) Observe(string, Config, func(Entry)) (Watch, error) {
	return nil, errors.New("boom")
}
