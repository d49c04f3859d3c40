package clicker

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/petems/autoclicker/internal/inject"
	"github.com/rs/zerolog"
)

// Hooks observe the click loop. Every field is optional. Hooks run on the
// click goroutine and must not block.
type Hooks struct {
	// Clicked is called after every click attempt with its outcome.
	Clicked func(at time.Time, err error)
	// Delay is called with every sampled pause before it starts.
	Delay func(d time.Duration)
}

type Config struct {
	Injector inject.Injector
	Interval Interval
	Logger   zerolog.Logger
	Hooks    Hooks
	// Rand is used for interval sampling; nil uses the shared generator.
	Rand *rand.Rand
}

// Controller owns the click state and, while Clicking, a single goroutine
// that clicks and sleeps. Idle costs nothing: there is no goroutine to wake.
type Controller struct {
	inj      inject.Injector
	interval Interval
	log      zerolog.Logger
	hooks    Hooks
	rng      *rand.Rand

	mu    sync.Mutex
	state State
	stop  context.CancelFunc
	done  chan struct{}
}

// New returns an idle controller. A zero Interval means DefaultInterval.
func New(cfg Config) (*Controller, error) {
	iv := cfg.Interval
	if iv == (Interval{}) {
		iv = DefaultInterval()
	}
	if err := iv.Validate(); err != nil {
		return nil, err
	}
	if cfg.Injector == nil {
		return nil, errors.New("clicker: no injector")
	}
	return &Controller{
		inj:      cfg.Injector,
		interval: iv,
		log:      cfg.Logger,
		hooks:    cfg.Hooks,
		rng:      cfg.Rand,
	}, nil
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Toggle flips the state and returns the new one. Switching to Idle waits
// for the click goroutine to exit, so no click is issued after Toggle returns.
func (c *Controller) Toggle() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Clicking {
		c.stopLocked()
	} else {
		c.startLocked()
	}
	return c.state
}

// Stop forces the Idle state. It reports whether clicking was running.
func (c *Controller) Stop() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Clicking {
		return false
	}
	c.stopLocked()
	return true
}

func (c *Controller) startLocked() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	c.state = Clicking
	c.stop = cancel
	c.done = done

	c.log.Debug().Dur("min", c.interval.Min).Dur("max", c.interval.Max).Msg("Click loop started")
	go c.loop(ctx, done)
}

func (c *Controller) stopLocked() {
	c.stop()
	<-c.done

	c.state = Idle
	c.stop = nil
	c.done = nil
	c.log.Debug().Msg("Click loop stopped")
}

func (c *Controller) loop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	for {
		// Cancellation wins over a timer that fired at the same moment.
		if ctx.Err() != nil {
			return
		}

		err := c.inj.LeftClick(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.log.Warn().Err(err).Msg("Click failed")
		}
		if c.hooks.Clicked != nil {
			c.hooks.Clicked(time.Now(), err)
		}

		d := c.interval.Sample(c.rng)
		if c.hooks.Delay != nil {
			c.hooks.Delay(d)
		}

		timer := time.NewTimer(d)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}
