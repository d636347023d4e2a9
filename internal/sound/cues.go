package sound

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
)

// note is a single sine tone; a zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var cues = map[string][]note{
	LOST:      {{880, 120 * time.Millisecond}, {440, 120 * time.Millisecond}, {220, 260 * time.Millisecond}},
	DELIVERED: {{660, 80 * time.Millisecond}, {0, 30 * time.Millisecond}, {990, 120 * time.Millisecond}},
	INVALID:   {{110, 220 * time.Millisecond}},
	SCENT:     {{1320, 50 * time.Millisecond}, {0, 40 * time.Millisecond}, {1320, 50 * time.Millisecond}},
}

// synthesize renders notes into a replayable buffer.
func synthesize(format beep.Format, notes []note) (*beep.Buffer, error) {
	buf := beep.NewBuffer(format)
	for _, n := range notes {
		samples := format.SampleRate.N(n.dur)
		if n.freq == 0 {
			buf.Append(beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(format.SampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		buf.Append(beep.Take(samples, tone))
	}
	return buf, nil
}
