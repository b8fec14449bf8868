// Package teaui is the interactive Bubble Tea front end for habits.
package teaui

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/habits/pkg/app"
	"tableflip.dev/habits/pkg/router"
	"tableflip.dev/habits/pkg/runner/tea/internal/theme"
)

// Run launches the Bubble Tea UI and blocks until it exits.
func Run(store *app.Store, rt *router.Router, dark bool) error {
	p := tea.NewProgram(New(store, rt, theme.Default(dark)), tea.WithAltScreen())

	// Observers fire inside Update, so Send must not block the event loop.
	unsubscribe := store.Subscribe(func(ev app.Event) {
		go p.Send(storeEventMsg{ev: ev})
	})
	defer unsubscribe()
	rt.OnChange(func(router.Route) {
		go p.Send(routeMsg{})
	})

	_, err := p.Run()
	return err
}
