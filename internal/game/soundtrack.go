package game

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/mirage/internal/config"
)

const levelWindow = 2048

// soundtrack plays one audio file and exposes its loudness to the audio motion source.
type soundtrack struct {
	mu       sync.Mutex
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *levelTap
	initDone bool
	paused   bool

	duration time.Duration
	position time.Duration
}

func decodeAudio(path string, f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, errors.New("unsupported file type: " + ext)
	}
}

// load stops whatever is playing and starts path.
func (s *soundtrack) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := decodeAudio(path, f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	t := newLevelTap(streamer, config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t, Paused: false}

	bufferSize := format.SampleRate.N(time.Second / 20)
	s.mu.Lock()
	initDone, prevRate := s.initDone, s.format.SampleRate
	s.mu.Unlock()

	if !initDone || prevRate != format.SampleRate {
		if initDone {
			speaker.Clear()
		}
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
	} else {
		speaker.Clear()
	}
	s.close()

	s.mu.Lock()
	s.initDone = true
	s.file = f
	s.streamer = streamer
	s.format = format
	s.ctrl = ctrl
	s.tap = t
	s.paused = false
	s.duration = format.SampleRate.D(streamer.Len())
	s.position = 0
	s.mu.Unlock()

	log.Printf("playing %s (%s)", filepath.Base(path), formatDuration(s.duration))

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.streamer == streamer {
			s.closeLocked()
		}
	})))
	return nil
}

func (s *soundtrack) togglePause() {
	s.mu.Lock()
	ctrl := s.ctrl
	s.mu.Unlock()
	if ctrl == nil {
		return
	}
	speaker.Lock()
	ctrl.Paused = !ctrl.Paused
	paused := ctrl.Paused
	speaker.Unlock()

	s.mu.Lock()
	s.paused = paused
	s.mu.Unlock()
}

// tick advances the play position by one frame.
func (s *soundtrack) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.streamer == nil || s.paused {
		return
	}
	s.position += time.Second / 60
	if s.position > s.duration {
		s.position = s.duration
	}
}

// Level implements motion.Leveler. Silence or no soundtrack reads as 0.
func (s *soundtrack) Level() float64 {
	s.mu.Lock()
	t, paused := s.tap, s.paused
	s.mu.Unlock()
	if t == nil || paused {
		return 0
	}
	return t.level(levelWindow)
}

func (s *soundtrack) playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streamer != nil
}

func (s *soundtrack) progress() (pos, total time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position, s.duration
}

// stop silences the speaker and closes the current file.
func (s *soundtrack) stop() {
	s.mu.Lock()
	initDone := s.initDone
	s.mu.Unlock()
	if initDone {
		speaker.Clear()
	}
	s.close()
}

func (s *soundtrack) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeLocked()
}

func (s *soundtrack) closeLocked() {
	if s.streamer != nil {
		_ = s.streamer.Close()
		s.streamer = nil
	}
	if s.file != nil {
		_ = s.file.Close()
		s.file = nil
	}
	s.ctrl = nil
	s.tap = nil
	s.duration = 0
	s.position = 0
}
