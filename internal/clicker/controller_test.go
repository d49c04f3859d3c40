package clicker

import (
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/petems/autoclicker/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateToggledTwiceIsIdentity(t *testing.T) {
	for _, s := range []State{Idle, Clicking} {
		assert.Equal(t, s, s.Toggled().Toggled(), s.String())
		assert.NotEqual(t, s, s.Toggled(), s.String())
	}
	assert.Equal(t, Clicking, Idle.Toggled())
	assert.Equal(t, Idle, Clicking.Toggled())
}

func TestIntervalSampleWithinBounds(t *testing.T) {
	iv := DefaultInterval()
	r := rand.New(rand.NewPCG(1, 2))

	const samples = 20000
	buckets := make([]int, 10)
	lowest, highest := iv.Max, iv.Min
	for i := 0; i < samples; i++ {
		d := iv.Sample(r)
		require.GreaterOrEqual(t, d, iv.Min)
		require.LessOrEqual(t, d, iv.Max)

		lowest = min(lowest, d)
		highest = max(highest, d)
		idx := int((d - iv.Min) / time.Millisecond)
		if idx == len(buckets) {
			idx-- // d == Max
		}
		buckets[idx]++
	}

	// Uniform: each 1ms bucket holds ~10% of the samples.
	for i, n := range buckets {
		assert.InDelta(t, samples/10, n, samples/50, "bucket %d", i)
	}
	assert.Less(t, lowest, iv.Min+200*time.Microsecond)
	assert.Greater(t, highest, iv.Max-200*time.Microsecond)
}

func TestIntervalSampleSharedGenerator(t *testing.T) {
	iv := DefaultInterval()
	for i := 0; i < 1000; i++ {
		d := iv.Sample(nil)
		require.GreaterOrEqual(t, d, iv.Min)
		require.LessOrEqual(t, d, iv.Max)
	}
}

func TestIntervalSampleDegenerateRange(t *testing.T) {
	iv := Interval{Min: 25 * time.Millisecond, Max: 25 * time.Millisecond}
	assert.Equal(t, 25*time.Millisecond, iv.Sample(nil))
}

func TestIntervalValidate(t *testing.T) {
	assert.NoError(t, DefaultInterval().Validate())
	assert.Error(t, Interval{}.Validate())
	assert.Error(t, Interval{Min: 30 * time.Millisecond, Max: 20 * time.Millisecond}.Validate())
}

func newTestController(t *testing.T, inj *testutil.FakeInjector, hooks Hooks) *Controller {
	t.Helper()
	c, err := New(Config{
		Injector: inj,
		Logger:   zerolog.Nop(),
		Hooks:    hooks,
		Rand:     rand.New(rand.NewPCG(7, 11)),
	})
	require.NoError(t, err)
	return c
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(Config{
		Injector: &testutil.FakeInjector{},
		Interval: Interval{Min: 30 * time.Millisecond, Max: 20 * time.Millisecond},
	})
	assert.Error(t, err, "inverted interval")

	_, err = New(Config{
		Injector: &testutil.FakeInjector{},
		Interval: Interval{Max: 20 * time.Millisecond},
	})
	assert.Error(t, err, "zero minimum")

	_, err = New(Config{})
	assert.Error(t, err, "missing injector")

	c, err := New(Config{Injector: &testutil.FakeInjector{}})
	require.NoError(t, err)
	assert.Equal(t, Idle, c.State())
}

func TestControllerStartsIdle(t *testing.T) {
	inj := &testutil.FakeInjector{}
	c := newTestController(t, inj, Hooks{})

	assert.Equal(t, Idle, c.State())
	assert.False(t, c.Stop(), "stopping an idle controller is a no-op")

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, inj.Count(), "idle controller must not click")
}

func TestControllerToggleStartsAndStops(t *testing.T) {
	inj := &testutil.FakeInjector{}
	c := newTestController(t, inj, Hooks{})

	require.Equal(t, Clicking, c.Toggle())
	require.Eventually(t, func() bool { return inj.Count() >= 5 }, 2*time.Second, 5*time.Millisecond)

	start := time.Now()
	require.Equal(t, Idle, c.Toggle())
	assert.Less(t, time.Since(start), DefaultMaxInterval, "stopping must not wait for a full interval")

	stoppedAt := inj.Count()
	time.Sleep(3 * DefaultMaxInterval)
	assert.Equal(t, stoppedAt, inj.Count(), "no click after switching to idle")
	assert.Equal(t, Idle, c.State())
}

func TestControllerHundredClicksWithRandomDelays(t *testing.T) {
	var (
		mu     sync.Mutex
		delays []time.Duration
	)
	inj := &testutil.FakeInjector{}
	c := newTestController(t, inj, Hooks{
		Delay: func(d time.Duration) {
			mu.Lock()
			delays = append(delays, d)
			mu.Unlock()
		},
	})

	c.Toggle()
	require.Eventually(t, func() bool { return inj.Count() >= 100 }, 10*time.Second, 10*time.Millisecond)
	c.Toggle()

	times := inj.Times()
	require.GreaterOrEqual(t, len(times), 100)
	for i := 1; i < len(times); i++ {
		gap := times[i].Sub(times[i-1])
		assert.GreaterOrEqual(t, gap, DefaultMinInterval, "gap %d", i)
	}

	mu.Lock()
	defer mu.Unlock()
	require.GreaterOrEqual(t, len(delays), 99)
	distinct := make(map[time.Duration]bool)
	for _, d := range delays {
		assert.GreaterOrEqual(t, d, DefaultMinInterval)
		assert.LessOrEqual(t, d, DefaultMaxInterval)
		distinct[d] = true
	}
	assert.Greater(t, len(distinct), 1, "delays should be randomized")
}

func TestControllerFailedClickContinues(t *testing.T) {
	errDenied := errors.New("synthetic input denied")

	var (
		mu     sync.Mutex
		failed int
	)
	inj := &testutil.FakeInjector{
		Fail: func(n int) error {
			if n < 3 {
				return errDenied
			}
			return nil
		},
	}
	c := newTestController(t, inj, Hooks{
		Clicked: func(_ time.Time, err error) {
			if errors.Is(err, errDenied) {
				mu.Lock()
				failed++
				mu.Unlock()
			}
		},
	})

	c.Toggle()
	require.Eventually(t, func() bool { return inj.Count() >= 6 }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, Clicking, c.State(), "click failures do not change state")
	require.True(t, c.Stop())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, failed)
}

func TestControllerRepeatedToggles(t *testing.T) {
	inj := &testutil.FakeInjector{}
	c := newTestController(t, inj, Hooks{})

	want := Idle
	for i := 0; i < 20; i++ {
		want = want.Toggled()
		assert.Equal(t, want, c.Toggle())
	}
	assert.Equal(t, Idle, c.State())

	n := inj.Count()
	time.Sleep(2 * DefaultMaxInterval)
	assert.Equal(t, n, inj.Count())
}

func TestControllerConcurrentToggleAndState(t *testing.T) {
	inj := &testutil.FakeInjector{}
	c := newTestController(t, inj, Hooks{})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				c.Toggle()
				_ = c.State()
			}
		}()
	}
	wg.Wait()

	// 40 toggles in total: back to where we started.
	assert.Equal(t, Idle, c.State())
}
