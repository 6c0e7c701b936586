package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"moviegrip/internal/eventbus"
	"moviegrip/internal/logging"
	"moviegrip/internal/ui"
)

// EnvE2E makes the UI print a ready marker for terminal test drivers
const EnvE2E = "MOVIEGRIP_E2E_TEST"

// RunTUI is the default action: the interactive movie browser
func RunTUI(ctx context.Context, c *cli.Command) error {
	a, err := setup(c)
	if err != nil {
		return err
	}
	defer a.Close()

	model := ui.NewModel(a.cfg, ui.Deps{
		Catalog:   a.catalog,
		Counter:   a.counter,
		Bus:       a.bus,
		Log:       a.log,
		ShowReady: os.Getenv(EnvE2E) == "1",
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Forward the events the UI cares about
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			a.log.Warn().Str("event", string(e.Type())).Msg("Event channel full, dropping event")
		}
	}
	unsubRecorded := a.bus.Subscribe(eventbus.EventSearchRecorded, forward)
	defer unsubRecorded()

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case e := <-eventChan:
				p.Send(ui.EventMsg{Event: e})
			case <-done:
				return
			}
		}
	}()

	log := logging.Component(a.log, "tui")
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("Program exited with error")
		return fmt.Errorf("running program: %w", err)
	}
	log.Info().Msg("Program exited")
	return nil
}
