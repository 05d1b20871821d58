package main

import (
	"fmt"
	"strings"
	"time"
)

// StatusLine formats the window title: the base title, the measured frame
// rate and any active modes.
type StatusLine struct {
	base   string
	frames int
	since  time.Time
	fps    float64
	modes  []string
}

func NewStatusLine(base string, now time.Time) *StatusLine {
	return &StatusLine{base: base, since: now}
}

// Frame counts one presented frame. It reports true roughly once a second,
// when the frame rate has been remeasured and the title should change.
func (s *StatusLine) Frame(now time.Time) bool {
	s.frames++
	elapsed := now.Sub(s.since)
	if elapsed < time.Second {
		return false
	}
	s.fps = float64(s.frames) / elapsed.Seconds()
	s.frames = 0
	s.since = now
	return true
}

// SetMode adds or removes a mode label such as "wireframe".
func (s *StatusLine) SetMode(mode string, on bool) {
	for i, m := range s.modes {
		if m == mode {
			if !on {
				s.modes = append(s.modes[:i], s.modes[i+1:]...)
			}
			return
		}
	}
	if on {
		s.modes = append(s.modes, mode)
	}
}

func (s *StatusLine) String() string {
	var b strings.Builder
	b.WriteString(s.base)
	fmt.Fprintf(&b, " | FPS: %.0f", s.fps)
	for _, m := range s.modes {
		b.WriteString(" | ")
		b.WriteString(m)
	}
	return b.String()
}
