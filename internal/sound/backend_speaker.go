//go:build !linux
// +build !linux

package sound

import (
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

type pulseControl struct{}

type speakerBackend struct{}

// initBackend initializes the default beep speaker backend.
func (mgr *Manager) initBackend(sampleRate beep.SampleRate, bufferSize int) error {
	if err := speaker.Init(sampleRate, bufferSize); err != nil {
		return err
	}
	speaker.Play(mgr.vol)
	mgr.backend = speakerBackend{}
	return nil
}

// withStream runs f while the speaker is not pulling samples.
func (mgr *Manager) withStream(f func()) {
	if mgr.backend == nil {
		f()
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	f()
}

// closeBackend shuts down the speaker backend.
func (mgr *Manager) closeBackend() {
	speaker.Clear()
	speaker.Close()
}
