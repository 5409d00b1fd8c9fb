package player

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

// fakeMedia records every call so transitions can be asserted.
type fakeMedia struct {
	plays, pauses int
	seeks         []time.Duration
	muted         bool
	fullscreen    bool
	duration      time.Duration
}

func (f *fakeMedia) Play()                   { f.plays++ }
func (f *fakeMedia) Pause()                  { f.pauses++ }
func (f *fakeMedia) Seek(to time.Duration)   { f.seeks = append(f.seeks, to) }
func (f *fakeMedia) SetMuted(m bool)         { f.muted = m }
func (f *fakeMedia) SetFullscreen(on bool)   { f.fullscreen = on }
func (f *fakeMedia) Duration() time.Duration { return f.duration }

type fakeTimers struct {
	scheduled []func()
}

func (f *fakeTimers) after(_ time.Duration, fn func()) *time.Timer {
	f.scheduled = append(f.scheduled, fn)
	return nil
}

func (f *fakeTimers) fire() {
	pending := f.scheduled
	f.scheduled = nil
	for _, fn := range pending {
		fn()
	}
}

func newTestPlayer(onComplete func()) (*Player, *fakeMedia, *fakeTimers) {
	media := &fakeMedia{duration: 90 * time.Minute}
	timers := &fakeTimers{}
	p := NewPlayer(media, onComplete, zap.NewNop())
	p.after = timers.after
	return p, media, timers
}

func TestTogglePlay_FirstPlayGoesThroughLoading(t *testing.T) {
	p, media, _ := newTestPlayer(nil)

	if p.Current().Phase != PhaseNotStarted {
		t.Fatalf("want not-started, got %s", p.Current().Phase)
	}

	p.TogglePlay()
	if p.Current().Phase != PhaseLoading {
		t.Fatalf("want loading, got %s", p.Current().Phase)
	}
	if media.plays != 1 {
		t.Fatalf("want 1 play call, got %d", media.plays)
	}

	p.Ready()
	if p.Current().Phase != PhasePlaying {
		t.Fatalf("want playing, got %s", p.Current().Phase)
	}
}

func TestTogglePlay_PauseAndResume(t *testing.T) {
	p, media, _ := newTestPlayer(nil)
	p.TogglePlay()
	p.Ready()

	p.TogglePlay()
	if p.Current().Phase != PhasePaused {
		t.Fatalf("want paused, got %s", p.Current().Phase)
	}
	if media.pauses != 1 {
		t.Fatalf("want 1 pause call, got %d", media.pauses)
	}

	p.TogglePlay()
	if p.Current().Phase != PhasePlaying {
		t.Fatalf("want playing, got %s", p.Current().Phase)
	}
}

func TestControls_AutoHideOnlyWhilePlaying(t *testing.T) {
	p, _, timers := newTestPlayer(nil)
	p.TogglePlay()
	p.Ready()

	timers.fire()
	if p.Current().ControlsVisible {
		t.Fatal("controls did not auto-hide while playing")
	}

	p.Activity()
	if !p.Current().ControlsVisible {
		t.Fatal("controls did not reappear on activity")
	}

	p.TogglePlay() // pause
	timers.fire()
	if !p.Current().ControlsVisible {
		t.Fatal("controls auto-hid while paused")
	}
}

func TestControls_ActivityRestartsCountdown(t *testing.T) {
	p, _, timers := newTestPlayer(nil)
	p.TogglePlay()
	p.Ready()

	stale := timers.scheduled
	timers.scheduled = nil
	p.Activity()

	// The old countdown is superseded by the new one
	for _, fn := range stale {
		fn()
	}
	if !p.Current().ControlsVisible {
		t.Fatal("stale countdown hid the controls")
	}

	timers.fire()
	if p.Current().ControlsVisible {
		t.Fatal("new countdown did not hide the controls")
	}
}

func TestSeek_ClampsToBounds(t *testing.T) {
	p, media, _ := newTestPlayer(nil)
	p.TogglePlay()
	p.Ready()

	p.Seek(-10 * time.Second)
	if got := media.seeks[0]; got != 0 {
		t.Fatalf("want clamp to 0, got %v", got)
	}

	p.Progress(89*time.Minute + 55*time.Second)
	p.Seek(10 * time.Second)
	if got := media.seeks[1]; got != 90*time.Minute {
		t.Fatalf("want clamp to duration, got %v", got)
	}
}

func TestHandleKey_RequiresFocusAndNonTextTarget(t *testing.T) {
	p, media, _ := newTestPlayer(nil)

	if p.HandleKey(" ", false) {
		t.Fatal("key consumed without focus")
	}

	p.SetFocus(true)
	if p.HandleKey(" ", true) {
		t.Fatal("key consumed from a text input")
	}
	if media.plays != 0 {
		t.Fatalf("play triggered: %d", media.plays)
	}

	if !p.HandleKey(" ", false) {
		t.Fatal("space not consumed with focus")
	}
	if p.Current().Phase != PhaseLoading {
		t.Fatalf("space did not start playback: %s", p.Current().Phase)
	}
}

func TestHandleKey_Shortcuts(t *testing.T) {
	p, media, _ := newTestPlayer(nil)
	p.SetFocus(true)
	p.TogglePlay()
	p.Ready()
	p.Progress(30 * time.Second)

	if !p.HandleKey("ArrowRight", false) {
		t.Fatal("right arrow not consumed")
	}
	if got := media.seeks[len(media.seeks)-1]; got != 40*time.Second {
		t.Fatalf("want seek to 40s, got %v", got)
	}

	if !p.HandleKey("ArrowLeft", false) {
		t.Fatal("left arrow not consumed")
	}
	if got := media.seeks[len(media.seeks)-1]; got != 30*time.Second {
		t.Fatalf("want seek back to 30s, got %v", got)
	}

	p.HandleKey("m", false)
	if !media.muted {
		t.Fatal("M did not mute")
	}
	p.HandleKey("F", false)
	if !media.fullscreen {
		t.Fatal("F did not enter fullscreen")
	}

	if p.HandleKey("x", false) {
		t.Fatal("unbound key consumed")
	}
}

func TestEnded_FiresCompletionAndResets(t *testing.T) {
	completed := 0
	p, _, _ := newTestPlayer(func() { completed++ })
	p.TogglePlay()
	p.Ready()
	p.Progress(time.Hour)

	p.Ended()

	if completed != 1 {
		t.Fatalf("want 1 completion, got %d", completed)
	}
	state := p.Current()
	if state.Phase != PhaseNotStarted {
		t.Fatalf("want not-started after end, got %s", state.Phase)
	}
	if state.Position != 0 {
		t.Fatalf("position not reset: %v", state.Position)
	}
	if !state.ControlsVisible {
		t.Fatal("controls hidden after end")
	}
}
