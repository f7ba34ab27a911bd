// Stat entry form panel
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"workout-story/internal/core"
	"workout-story/internal/render"
)

// StatsPanel collects the raw stat fields. It performs no validation of
// its own: every change hands the raw strings to the core's defensive
// parser via the onChange callback.
type StatsPanel struct {
	hours       *widget.Entry
	minutes     *widget.Entry
	seconds     *widget.Entry
	distance    *widget.Entry
	heartRate   *widget.Entry
	temperature *widget.Entry
	icons       *widget.Check
	filter      *widget.Select

	filterIDs []string
	container *fyne.Container

	onChange func(core.StatsForm)
}

// NewStatsPanel creates the stat entry form.
func NewStatsPanel() *StatsPanel {
	sp := &StatsPanel{}

	sp.hours = newStatEntry("0", sp.changed)
	sp.minutes = newStatEntry("30", sp.changed)
	sp.seconds = newStatEntry("0", sp.changed)
	sp.distance = newStatEntry("5.0", sp.changed)
	sp.heartRate = newStatEntry("", sp.changed)
	sp.temperature = newStatEntry("", sp.changed)

	sp.icons = widget.NewCheck("Icon prefixes", func(bool) { sp.changed("") })

	sp.filterIDs = render.FilterIDs()
	names := make([]string, len(sp.filterIDs))
	for i, id := range sp.filterIDs {
		names[i] = render.FilterDisplayName(id)
	}
	sp.filter = widget.NewSelect(names, func(string) { sp.changed("") })
	sp.filter.SetSelectedIndex(0)

	timeCard := widget.NewCard("Time", "", container.NewGridWithColumns(3,
		labeled("Hours", sp.hours),
		labeled("Minutes", sp.minutes),
		labeled("Seconds", sp.seconds),
	))
	statsCard := widget.NewCard("Stats", "", container.NewVBox(
		labeled("Distance (km)", sp.distance),
		labeled("Heart rate (bpm)", sp.heartRate),
		labeled("Temperature (°C)", sp.temperature),
	))
	lookCard := widget.NewCard("Look", "", container.NewVBox(
		labeled("Filter", sp.filter),
		sp.icons,
	))

	sp.container = container.NewVBox(timeCard, statsCard, lookCard)
	return sp
}

// Container returns the panel for embedding in layouts.
func (sp *StatsPanel) Container() fyne.CanvasObject {
	return container.NewScroll(sp.container)
}

// OnChange registers the callback invoked with the raw form fields after
// every edit.
func (sp *StatsPanel) OnChange(fn func(core.StatsForm)) {
	sp.onChange = fn
}

// Form returns the current raw field values.
func (sp *StatsPanel) Form() core.StatsForm {
	filterID := render.FilterNone
	if idx := sp.filter.SelectedIndex(); idx >= 0 && idx < len(sp.filterIDs) {
		filterID = sp.filterIDs[idx]
	}

	return core.StatsForm{
		Hours:       sp.hours.Text,
		Minutes:     sp.minutes.Text,
		Seconds:     sp.seconds.Text,
		Distance:    sp.distance.Text,
		HeartRate:   sp.heartRate.Text,
		Temperature: sp.temperature.Text,
		ShowIcons:   sp.icons.Checked,
		Filter:      filterID,
	}
}

func (sp *StatsPanel) changed(string) {
	if sp.onChange != nil {
		sp.onChange(sp.Form())
	}
}

func newStatEntry(initial string, onChanged func(string)) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(initial)
	entry.OnChanged = onChanged
	return entry
}

func labeled(label string, object fyne.CanvasObject) fyne.CanvasObject {
	return container.NewVBox(widget.NewLabel(label), object)
}
