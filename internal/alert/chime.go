package alert

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/countdown/internal/config"
)

// Chime plays a short sound through the speaker when notified.
type Chime struct {
	buf    *beep.Buffer
	volume float64
}

// NewChime builds the default beeping tone and initializes the speaker.
// volume is a base-2 exponent: 0 is unchanged, -1 halves, 1 doubles.
func NewChime(volume float64) (*Chime, error) {
	buf := toneBuffer(beep.SampleRate(config.ChimeSampleRate))
	if err := initSpeaker(buf.Format()); err != nil {
		return nil, err
	}
	return &Chime{buf: buf, volume: volume}, nil
}

// LoadChime decodes a wav, mp3 or flac file into memory and initializes the
// speaker at the file's sample rate.
func LoadChime(path string, volume float64) (*Chime, error) {
	buf, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	if err := initSpeaker(buf.Format()); err != nil {
		return nil, err
	}
	return &Chime{buf: buf, volume: volume}, nil
}

// Notify starts playback and returns immediately. A notice whose deadline
// has already passed is not played.
func (c *Chime) Notify(ctx context.Context, _ Notice) error {
	if err := ctx.Err(); err != nil {
		return &NotificationError{Backend: "chime", Err: err}
	}
	speaker.Play(c.streamer())
	return nil
}

func (c *Chime) streamer() beep.Streamer {
	return &effects.Volume{
		Streamer: c.buf.Streamer(0, c.buf.Len()),
		Base:     2,
		Volume:   c.volume,
		Silent:   false,
	}
}

func initSpeaker(format beep.Format) error {
	bufferSize := format.SampleRate.N(time.Second / 10)
	if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
		return &NotificationError{Backend: "chime", Err: err}
	}
	return nil
}

func toneBuffer(sr beep.SampleRate) *beep.Buffer {
	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)

	beeps := make([]beep.Streamer, 0, 2*config.ChimeRepeats)
	for i := 0; i < config.ChimeRepeats; i++ {
		beeps = append(beeps,
			beep.Take(sr.N(config.ChimeLength), sine(sr, config.ChimeFrequency)),
			beep.Silence(sr.N(config.ChimeGap)),
		)
	}
	buf.Append(beep.Seq(beeps...))
	return buf
}

func sine(sr beep.SampleRate, freq float64) beep.Streamer {
	step := 2 * math.Pi * freq / float64(sr)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := 0.5 * math.Sin(step*float64(pos))
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
}

var errUnsupportedSound = errors.New("unsupported sound file type")

func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sound: %w", err)
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedSound, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	return buf, nil
}
