// Package sound plays short audible cues for robot outcomes. Cues are
// synthesized at start-up, so no audio assets ship with the binary.
package sound

import (
	"errors"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// Cue names
const (
	LOST      = "lost"
	DELIVERED = "delivered"
	INVALID   = "invalid"
	SCENT     = "scent"
)

const CommonSampleRate = beep.SampleRate(44100) // Common sample rate for all cues

// Manager controls synthesis and playback of cues.
type Manager struct {
	mu         sync.Mutex
	samples    map[string]*beep.Buffer
	ctrl       map[string]*beep.Ctrl
	mix        *beep.Mixer
	format     beep.Format
	muted      bool
	vol        *effects.Volume    // master volume
	sampleVols map[string]float64 // per-cue volume in dB

	backend   any
	pulseCtrl *pulseControl
}

func newManager(sampleRate beep.SampleRate) *Manager {
	mgr := &Manager{
		samples:    make(map[string]*beep.Buffer),
		ctrl:       make(map[string]*beep.Ctrl),
		mix:        &beep.Mixer{},
		format:     beep.Format{SampleRate: sampleRate, NumChannels: 1, Precision: 2},
		sampleVols: make(map[string]float64),
	}
	mgr.vol = &effects.Volume{
		Streamer: mgr.mix,
		Base:     2,
		Volume:   0, // 0 dB
		Silent:   false,
	}
	return mgr
}

// NewManager initializes the audio backend and creates a new Manager.
func NewManager(sampleRate beep.SampleRate) (*Manager, error) {
	mgr := newManager(sampleRate)
	bufferSize := sampleRate.N(time.Second / 10)
	if err := mgr.initBackend(sampleRate, bufferSize); err != nil {
		return nil, err
	}
	return mgr, nil
}

// LoadSamples synthesizes every known cue.
func (mgr *Manager) LoadSamples() error {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	for name, notes := range cues {
		buf, err := synthesize(mgr.format, notes)
		if err != nil {
			return err
		}
		mgr.samples[name] = buf
	}
	mgr.sampleVols[INVALID] = -1
	return nil
}

func (mgr *Manager) SetMasterVolume(db float64) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.withStream(func() {
		mgr.vol.Volume = db
	})
}

func (mgr *Manager) SetVolume(name string, db float64) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.sampleVols[name] = db
}

// Play stops current playback of the cue (if any) and plays it from the start.
func (mgr *Manager) Play(name string) error {
	if mgr == nil {
		return errors.New("sound manager is nil")
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	buf, ok := mgr.samples[name]
	if !ok {
		return errors.New("cue not loaded: " + name)
	}
	if mgr.muted {
		return nil
	}

	vol := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   mgr.sampleVols[name],
	}
	ctrl := &beep.Ctrl{Streamer: vol}

	mgr.withStream(func() {
		// Interrupt previous if exists
		if prev, exists := mgr.ctrl[name]; exists {
			prev.Streamer = nil
		}
		mgr.mix.Add(ctrl)
	})
	mgr.ctrl[name] = ctrl
	return nil
}

// PlayWithVolume plays the cue with specified volume in dB.
func (mgr *Manager) PlayWithVolume(name string, db float64) error {
	mgr.SetVolume(name, db)
	return mgr.Play(name)
}

// StopListed stops playback of the specified cues.
// Cues that are not playing are ignored.
func (mgr *Manager) StopListed(names ...string) {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.withStream(func() {
		for _, name := range names {
			if ctrl, ok := mgr.ctrl[name]; ok {
				ctrl.Paused = true
				delete(mgr.ctrl, name)
			}
		}
	})
}

// StopAll halts playback of all cues.
func (mgr *Manager) StopAll() {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	names := make([]string, 0, len(mgr.ctrl))
	for name := range mgr.ctrl {
		names = append(names, name)
	}
	mgr.mu.Unlock()
	mgr.StopListed(names...)
}

// Mute disables all audio output.
func (mgr *Manager) Mute() {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.muted = true
}

// Unmute enables audio output.
func (mgr *Manager) Unmute() {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.muted = false
}

// Muted reports whether output is disabled. A nil manager is always muted.
func (mgr *Manager) Muted() bool {
	if mgr == nil {
		return true
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return mgr.muted
}

// Close stops the backend and frees resources.
func (mgr *Manager) Close() {
	if mgr == nil || mgr.backend == nil {
		return
	}
	mgr.closeBackend()
}
