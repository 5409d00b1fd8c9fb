// Package navigation implements the page transition machine used by the
// storefront client: one current page plus a parameter bag, with an
// interstitial splash shown between transitions.
package navigation

import (
	"sync"
	"time"

	"streaming-catalog/pkg/utils"

	"go.uber.org/zap"
)

// Page identifies which view is active.
type Page string

const (
	PageHome       Page = "home"
	PageCategories Page = "categories"
	PageDetail     Page = "detail"
	PageWatch      Page = "watch"
)

// Params carries the optional arguments of a transition. A zero Params is
// valid for pages that take none.
type Params struct {
	ContentID int    `json:"contentId,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Value     string `json:"value,omitempty"`
	Title     string `json:"title,omitempty"`
}

// State is a snapshot of the machine.
type State struct {
	Page     Page   `json:"page"`
	Params   Params `json:"params"`
	Splash   bool   `json:"splash"`
	FirstRun bool   `json:"firstRun"`
}

// ConfigFrom maps the loaded splash timings onto a machine Config.
func ConfigFrom(s utils.SplashConfig) Config {
	return Config{
		SwapDelay:     s.SwapDelay,
		FirstDuration: s.FirstDuration,
		Duration:      s.Duration,
	}
}

// Config holds the transition timings.
type Config struct {
	// SwapDelay is how long the splash shows before the page swaps.
	SwapDelay time.Duration
	// FirstDuration is how long the splash stays up on the very first
	// transition after startup.
	FirstDuration time.Duration
	// Duration is the splash time for every later transition.
	Duration time.Duration
}

// Machine serializes page transitions. Views call Navigate; the machine
// swaps the page after SwapDelay and clears the splash after the full
// splash duration. A transition is not cancellable, but a newer Navigate
// invalidates the timers of older ones so a stale timer never overwrites
// newer state.
type Machine struct {
	mu       sync.Mutex
	page     Page
	params   Params
	splash   bool
	firstRun bool
	gen      uint64

	config   Config
	onSwap   func(State)
	onScroll func()
	log      *zap.Logger

	// after is swappable so tests can drive the timers directly.
	after func(time.Duration, func()) *time.Timer
}

// Option configures a Machine.
type Option func(*Machine)

// WithOnSwap registers a callback invoked, outside the machine lock,
// every time the visible state changes.
func WithOnSwap(fn func(State)) Option {
	return func(m *Machine) { m.onSwap = fn }
}

// WithOnScrollReset registers the scroll-to-top side effect.
func WithOnScrollReset(fn func()) Option {
	return func(m *Machine) { m.onScroll = fn }
}

func withAfterFunc(fn func(time.Duration, func()) *time.Timer) Option {
	return func(m *Machine) { m.after = fn }
}

// NewMachine starts at the home page with no splash.
func NewMachine(config Config, log *zap.Logger, opts ...Option) *Machine {
	m := &Machine{
		page:     PageHome,
		firstRun: true,
		config:   config,
		log:      log.With(zap.String("component", "navigation")),
		after:    time.AfterFunc,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Current returns a snapshot of the machine state.
func (m *Machine) Current() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

// Navigate requests a transition to (page, params). Navigating to the
// currently-active pair changes nothing but still fires the scroll reset.
func (m *Machine) Navigate(page Page, params Params) {
	m.mu.Lock()

	if m.page == page && m.params == params {
		m.mu.Unlock()
		m.log.Debug("navigation no-op", zap.String("page", string(page)))
		if m.onScroll != nil {
			m.onScroll()
		}
		return
	}

	m.gen++
	gen := m.gen
	m.splash = true

	splashTotal := m.config.Duration
	if m.firstRun {
		splashTotal = m.config.FirstDuration
	}
	m.firstRun = false

	m.log.Debug("navigation started",
		zap.String("page", string(page)),
		zap.Duration("splash", splashTotal))

	snap := m.snapshot()
	m.mu.Unlock()
	m.notify(snap)

	m.after(m.config.SwapDelay, func() {
		m.swap(gen, page, params)
	})
	m.after(splashTotal, func() {
		m.clearSplash(gen)
	})
}

// Close invalidates all pending timers.
func (m *Machine) Close() {
	m.mu.Lock()
	m.gen++
	m.mu.Unlock()
}

func (m *Machine) swap(gen uint64, page Page, params Params) {
	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		return
	}
	m.page = page
	m.params = params
	snap := m.snapshot()
	m.mu.Unlock()

	if m.onScroll != nil {
		m.onScroll()
	}
	m.notify(snap)
}

func (m *Machine) clearSplash(gen uint64) {
	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		return
	}
	m.splash = false
	snap := m.snapshot()
	m.mu.Unlock()

	m.notify(snap)
}

func (m *Machine) snapshot() State {
	return State{
		Page:     m.page,
		Params:   m.params,
		Splash:   m.splash,
		FirstRun: m.firstRun,
	}
}

func (m *Machine) notify(s State) {
	if m.onSwap != nil {
		m.onSwap(s)
	}
}
