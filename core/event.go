package core

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyDown
	EventResize
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		return "keydown"
	case EventResize:
		return "resize"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one window system event. Only the fields for its Kind are set.
type Event struct {
	Kind   EventKind
	Key    Key
	Width  int
	Height int
}

type Key int

const (
	KeySpace  = Key(glfw.KeySpace)
	KeyEscape = Key(glfw.KeyEscape)
	KeyF      = Key(glfw.KeyF)
	KeyL      = Key(glfw.KeyL)
	KeyP      = Key(glfw.KeyP)
	KeyQ      = Key(glfw.KeyQ)
)
