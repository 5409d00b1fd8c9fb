// Package player models the playback state of the in-browser player:
// playback phase, control visibility, volume and seeking. It drives a
// media surface through a small interface and reports end-of-stream to a
// caller-supplied callback; it knows nothing about episodes or series.
package player

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Phase is the playback lifecycle state.
type Phase string

const (
	PhaseNotStarted Phase = "not-started"
	PhaseLoading    Phase = "loading"
	PhasePlaying    Phase = "playing"
	PhasePaused     Phase = "paused"
)

const (
	seekStep    = 10 * time.Second
	idleTimeout = 3 * time.Second
)

// Media is the surface the player drives. The HTTP build wires a no-op
// implementation; tests substitute a recording fake.
type Media interface {
	Play()
	Pause()
	Seek(to time.Duration)
	SetMuted(muted bool)
	SetFullscreen(on bool)
	Duration() time.Duration
}

// State is a snapshot of the player.
type State struct {
	Phase           Phase         `json:"phase"`
	ControlsVisible bool          `json:"controlsVisible"`
	Position        time.Duration `json:"position"`
	Muted           bool          `json:"muted"`
	Fullscreen      bool          `json:"fullscreen"`
}

// Player owns transient playback state. All methods are safe for
// concurrent use.
type Player struct {
	mu         sync.Mutex
	phase      Phase
	controls   bool
	position   time.Duration
	muted      bool
	fullscreen bool
	focused    bool
	idleGen    uint64

	media      Media
	onComplete func()
	log        *zap.Logger

	after func(time.Duration, func()) *time.Timer
}

// NewPlayer builds a player in the not-started phase with controls shown.
// onComplete fires once per end-of-stream signal; pass nil to ignore it.
func NewPlayer(media Media, onComplete func(), log *zap.Logger) *Player {
	return &Player{
		phase:      PhaseNotStarted,
		controls:   true,
		media:      media,
		onComplete: onComplete,
		log:        log.With(zap.String("component", "player")),
		after:      time.AfterFunc,
	}
}

// Current returns a snapshot of the player state.
func (p *Player) Current() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot()
}

// SetFocus records whether the player region holds keyboard focus.
func (p *Player) SetFocus(focused bool) {
	p.mu.Lock()
	p.focused = focused
	p.mu.Unlock()
}

// TogglePlay starts, pauses or resumes playback. The first play request
// passes through loading before playing.
func (p *Player) TogglePlay() {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.phase {
	case PhaseNotStarted:
		p.phase = PhaseLoading
		p.media.Play()
	case PhasePlaying:
		p.phase = PhasePaused
		p.controls = true
		p.media.Pause()
	case PhasePaused:
		p.phase = PhasePlaying
		p.media.Play()
		p.scheduleIdleHideLocked()
	}
}

// Ready signals that the media finished buffering; loading becomes playing.
func (p *Player) Ready() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.phase != PhaseLoading {
		return
	}
	p.phase = PhasePlaying
	p.scheduleIdleHideLocked()
}

// Seek moves playback by delta, clamped to [0, duration].
func (p *Player) Seek(delta time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	to := p.position + delta
	if to < 0 {
		to = 0
	}
	if max := p.media.Duration(); max > 0 && to > max {
		to = max
	}
	p.position = to
	p.media.Seek(to)
}

// Progress records the media's reported playback position.
func (p *Player) Progress(position time.Duration) {
	p.mu.Lock()
	p.position = position
	p.mu.Unlock()
}

// ToggleMute flips the mute flag.
func (p *Player) ToggleMute() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	p.media.SetMuted(p.muted)
}

// ToggleFullscreen flips the fullscreen flag.
func (p *Player) ToggleFullscreen() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.fullscreen = !p.fullscreen
	p.media.SetFullscreen(p.fullscreen)
}

// Activity reports pointer movement or key activity: controls reappear and
// the idle hide countdown restarts. Controls never auto-hide while paused.
func (p *Player) Activity() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.controls = true
	if p.phase == PhasePlaying {
		p.scheduleIdleHideLocked()
	}
}

// Ended signals end-of-stream from the media. Playback returns to
// not-started and the completion callback fires.
func (p *Player) Ended() {
	p.mu.Lock()
	p.phase = PhaseNotStarted
	p.controls = true
	p.position = 0
	p.idleGen++
	done := p.onComplete
	p.mu.Unlock()

	p.log.Debug("playback finished")
	if done != nil {
		done()
	}
}

// HandleKey applies a keyboard shortcut. Keys are honored only while the
// player region holds focus and the event did not originate in a text
// input; the return value reports whether the key was consumed.
func (p *Player) HandleKey(key string, targetIsTextInput bool) bool {
	p.mu.Lock()
	focused := p.focused
	p.mu.Unlock()

	if !focused || targetIsTextInput {
		return false
	}

	switch strings.ToLower(key) {
	case " ", "space":
		p.TogglePlay()
	case "arrowright":
		p.Seek(seekStep)
	case "arrowleft":
		p.Seek(-seekStep)
	case "m":
		p.ToggleMute()
	case "f":
		p.ToggleFullscreen()
	default:
		return false
	}

	p.Activity()
	return true
}

// scheduleIdleHideLocked restarts the auto-hide countdown. Caller holds the
// lock.
func (p *Player) scheduleIdleHideLocked() {
	p.idleGen++
	gen := p.idleGen

	p.after(idleTimeout, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if gen != p.idleGen || p.phase != PhasePlaying {
			return
		}
		p.controls = false
	})
}

func (p *Player) snapshot() State {
	return State{
		Phase:           p.phase,
		ControlsVisible: p.controls,
		Position:        p.position,
		Muted:           p.muted,
		Fullscreen:      p.fullscreen,
	}
}
