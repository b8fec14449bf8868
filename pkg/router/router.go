// Package router maps navigation paths to screens and keeps a browser-style
// history with push, replace, back and forward.
package router

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Screen is one of the top-level views.
type Screen string

const (
	Dashboard Screen = "dashboard"
	Habit     Screen = "habit"
	Tasks     Screen = "tasks"
)

// ErrUnknownScreen is returned by PathFor for screens it cannot address.
var ErrUnknownScreen = errors.New("router: unknown screen")

// Route is the screen derived from a path, plus the habit id for Habit.
type Route struct {
	Screen Screen
	ID     int64
}

// Parse resolves a path. Unrecognised paths fall back to the dashboard. A
// habit path with a non-numeric id resolves to id 0, which never matches a
// habit and so renders as not found.
func Parse(path string) Route {
	switch {
	case path == "/" || path == "/dashboard":
		return Route{Screen: Dashboard}
	case strings.HasPrefix(path, "/habit/"):
		seg := strings.SplitN(strings.TrimPrefix(path, "/habit/"), "/", 2)[0]
		id, err := strconv.ParseInt(seg, 10, 64)
		if err != nil {
			id = 0
		}
		return Route{Screen: Habit, ID: id}
	case strings.HasPrefix(path, "/tasks"):
		return Route{Screen: Tasks}
	}
	return Route{Screen: Dashboard}
}

// PathFor returns the canonical path for a screen. Habit without an id
// addresses the dashboard.
func PathFor(screen Screen, id int64) (string, error) {
	switch screen {
	case Dashboard:
		return "/dashboard", nil
	case Tasks:
		return "/tasks", nil
	case Habit:
		if id == 0 {
			return "/dashboard", nil
		}
		return fmt.Sprintf("/habit/%d", id), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScreen, screen)
}

// Path is the canonical path for r.
func (r Route) Path() string {
	p, err := PathFor(r.Screen, r.ID)
	if err != nil {
		return "/dashboard"
	}
	return p
}

func (r Route) String() string {
	if r.Screen == Habit {
		return fmt.Sprintf("%s(%d)", r.Screen, r.ID)
	}
	return string(r.Screen)
}

// Router tracks the current path and its history.
type Router struct {
	mu        sync.Mutex
	history   []string
	index     int
	current   Route
	listeners []func(Route)
}

// New starts a router at initial. A bare "/" is rewritten to /dashboard in
// place, without adding a history entry.
func New(initial string) *Router {
	if initial == "" || initial == "/" {
		initial = "/dashboard"
	}
	return &Router{
		history: []string{initial},
		current: Parse(initial),
	}
}

// Current is the active route.
func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Path is the active path as it was pushed, not necessarily canonical.
func (r *Router) Path() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history[r.index]
}

// History returns the stack of visited paths and the active index.
func (r *Router) History() ([]string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.history), r.index
}

// OnChange registers fn to run after every route change.
func (r *Router) OnChange(fn func(Route)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

// Navigate pushes the canonical path for screen and activates it. Forward
// history beyond the current entry is discarded.
func (r *Router) Navigate(screen Screen, id int64) error {
	path, err := PathFor(screen, id)
	if err != nil {
		return err
	}
	r.Push(path)
	return nil
}

// Push activates path as a new history entry.
func (r *Router) Push(path string) {
	r.mu.Lock()
	r.history = append(r.history[:r.index+1], path)
	r.index = len(r.history) - 1
	r.resync()
}

// Replace swaps the current history entry for path.
func (r *Router) Replace(path string) {
	r.mu.Lock()
	r.history[r.index] = path
	r.resync()
}

// Back moves one entry back, like a browser back button. It reports false at
// the start of history.
func (r *Router) Back() bool {
	r.mu.Lock()
	if r.index == 0 {
		r.mu.Unlock()
		return false
	}
	r.index--
	r.resync()
	return true
}

// Forward moves one entry forward. It reports false at the end of history.
func (r *Router) Forward() bool {
	r.mu.Lock()
	if r.index >= len(r.history)-1 {
		r.mu.Unlock()
		return false
	}
	r.index++
	r.resync()
	return true
}

// resync re-derives the route from the active path, unlocks, then notifies.
func (r *Router) resync() {
	r.current = Parse(r.history[r.index])
	route := r.current
	listeners := slices.Clone(r.listeners)
	r.mu.Unlock()
	for _, fn := range listeners {
		fn(route)
	}
}
