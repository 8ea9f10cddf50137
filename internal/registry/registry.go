// Package registry maps widget ids to factories. Widget packages register
// from init, so hosts find them by importing the package for its side effect.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/showcase/internal/core"
)

// Game is what every widget implements. Widgets never import a host: the
// host maps keys and pointer events into a core.InputFrame, drives Step on
// its own clock and presents whatever Render leaves in the screen.
type Game interface {
	// ID is the stable id used on the command line and in the scores table.
	ID() string
	Title() string

	// Reset starts over from cfg. It runs at mount and on restart.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts to a new surface size and keeps the simulation going.
	Resize(cfg core.RuntimeConfig)

	// Step advances one tick. dtMillis is the time since the previous tick.
	Step(in core.InputFrame, dtMillis float64) core.StepResult

	Render(dst *core.Screen)
	State() core.GameState

	// Destroy releases buffers. Step and Render are no-ops afterwards and a
	// second Destroy does nothing.
	Destroy()
}

// Drawer is implemented by widgets that can paint onto a pixel canvas.
// The desktop host only mounts widgets that implement it.
type Drawer interface {
	Draw(c core.Canvas)
}

// Themed is implemented by widgets whose colors depend on the theme.
type Themed interface {
	SetTheme(t core.Theme)
}

// Paced is implemented by widgets that want a tick rate other than the host default.
type Paced interface {
	FrameRate() int
}

// GameInfo describes a registered widget.
type GameInfo struct {
	ID    string
	Title string
}

// Factory returns a fresh, not yet Reset widget.
type Factory func() Game

// ErrUnknown is returned by Create for ids nobody registered.
var ErrUnknown = errors.New("registry: unknown widget")

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a widget. It panics on a duplicate id, which can only be a
// programming error.
func Register(id string, f Factory) {
	// A throwaway instance supplies the title for menus.
	probe := f()
	title := probe.Title()
	probe.Destroy()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: widget %q registered twice", id))
	}
	entries[id] = entry{factory: f, title: title}
}

// List returns every registered widget ordered by id.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Create builds a new instance of the widget registered as id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}

// FrameRate returns the tick rate a widget prefers, or fallback.
func FrameRate(g Game, fallback int) int {
	if p, ok := g.(Paced); ok && p.FrameRate() > 0 {
		return p.FrameRate()
	}
	return fallback
}
