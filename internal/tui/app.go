// Package tui provides the interactive Bubble Tea dashboard for steward.
package tui

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/BGirlGlowHub/steward/internal/calc"
	"github.com/BGirlGlowHub/steward/internal/config"
	"github.com/BGirlGlowHub/steward/internal/model"
	"github.com/BGirlGlowHub/steward/internal/store"
	"github.com/BGirlGlowHub/steward/internal/tui/components"
	"github.com/BGirlGlowHub/steward/internal/tui/theme"
)

// dataLoadedMsg is sent when the snapshot load finishes.
type dataLoadedMsg struct {
	ds  model.Dataset
	err error
}

// App is the root Bubble Tea model.
type App struct {
	store *store.Store
	cfg   config.Config
	asOf  time.Time

	// Data
	ds      model.Dataset
	loaded  bool
	loadErr error

	// Pre-computed views
	summary   model.FinancialSummary
	balances  []model.AccountBalanceInfo
	recs      []model.Recommendation
	events    []model.CalendarEvent
	snowball  model.PayoffPlan
	avalanche model.PayoffPlan
	calcErr   error

	// What-if extra payment for the debts tab, adjusted with +/-.
	extraPayment float64

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// First-run setup (huh form)
	setupActive   bool
	setupForm     *huh.Form
	formPaycheck  string
	formFrequency string
	formTithing   bool
}

// New builds the dashboard app.
func New(st *store.Store, cfg config.Config, asOf time.Time) App {
	theme.SetByName(cfg.Appearance.Theme)
	return App{
		store:        st,
		cfg:          cfg,
		asOf:         asOf,
		extraPayment: 100,
	}
}

// Init kicks off the snapshot load.
func (a App) Init() tea.Cmd {
	return a.loadData
}

func (a App) loadData() tea.Msg {
	ds, err := a.store.LoadSnapshot()
	return dataLoadedMsg{ds: ds, err: err}
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case dataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.err
		if msg.err == nil {
			a.ds = msg.ds
			a.recompute()
			if a.ds.Settings.PaycheckAmount == 0 {
				a.startSetup()
				return a, a.setupForm.Init()
			}
		}
		return a, nil

	case tea.KeyMsg:
		if a.setupActive {
			return a.updateSetup(msg)
		}
		return a.handleKey(msg)
	}

	if a.setupActive {
		return a.updateSetup(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "?":
		a.showHelp = !a.showHelp
		return a, nil
	case "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case "shift+tab":
		a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
		return a, nil
	case "r":
		a.loaded = false
		return a, a.loadData
	case "+", "=":
		a.extraPayment += 25
		a.recomputePlans()
		return a, nil
	case "-", "_":
		if a.extraPayment >= 25 {
			a.extraPayment -= 25
		} else {
			a.extraPayment = 0
		}
		a.recomputePlans()
		return a, nil
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}
	return a, nil
}

// recompute refreshes every derived view from the current snapshot.
func (a *App) recompute() {
	a.calcErr = nil

	summary, err := calc.Summarize(a.ds.Accounts, a.ds.Bills, a.ds.Settings, a.asOf)
	if err != nil {
		a.calcErr = err
		return
	}
	a.summary = summary

	if a.balances, err = calc.ProjectBalances(a.ds.Accounts, a.ds.Bills, a.ds.Settings, a.asOf); err != nil {
		a.calcErr = err
		return
	}
	if a.recs, err = calc.Recommend(a.ds.Accounts, a.ds.Bills, a.ds.Settings, a.asOf); err != nil {
		a.calcErr = err
		return
	}
	if a.events, err = calc.Synthesize(a.ds.Bills, a.ds.Settings.PayDates, a.ds.Goals, a.ds.Debts, a.asOf, a.cfg.General.HorizonMonths); err != nil {
		a.calcErr = err
		return
	}
	a.recomputePlans()
}

func (a *App) recomputePlans() {
	snow, err := calc.Simulate(a.ds.Debts, a.extraPayment, model.StrategySnowball)
	if err != nil {
		a.calcErr = err
		return
	}
	aval, err := calc.Simulate(a.ds.Debts, a.extraPayment, model.StrategyAvalanche)
	if err != nil {
		a.calcErr = err
		return
	}
	a.snowball = snow
	a.avalanche = aval
}

// View renders the active tab.
func (a App) View() string {
	t := theme.Active

	if !a.loaded {
		return "\n  Loading budget data...\n"
	}
	if a.loadErr != nil {
		return fmt.Sprintf("\n  Failed to load data: %v\n", a.loadErr)
	}
	if a.setupActive {
		return a.renderSetup()
	}

	cw := a.width
	if cw <= 0 {
		cw = 80
	}

	var body string
	switch a.activeTab {
	case 0:
		body = a.renderOverviewTab(cw)
	case 1:
		body = a.renderCalendarTab(cw)
	case 2:
		body = a.renderDebtsTab(cw)
	case 3:
		body = a.renderGoalsTab(cw)
	case 4:
		body = a.renderSettingsTab(cw)
	}

	if a.calcErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		body = errStyle.Render(fmt.Sprintf("  calculation error: %v", a.calcErr)) + "\n" + body
	}
	if a.showHelp {
		body = a.renderHelp() + "\n" + body
	}

	right := "As of " + a.asOf.Format("Jan 2, 2006")
	return components.RenderTabBar(a.activeTab) + "\n\n" +
		body + "\n" +
		components.RenderStatusBar(cw, right)
}

func (a App) renderHelp() string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	return muted.Render("  o/c/d/g/s jump to tab · tab cycles · +/- adjust extra payment · r reload · q quit")
}

// startSetup opens the first-run form for stewardship settings.
func (a *App) startSetup() {
	a.setupActive = true
	a.formPaycheck = strconv.FormatFloat(a.ds.Settings.PaycheckAmount, 'f', -1, 64)
	if a.formPaycheck == "0" {
		a.formPaycheck = ""
	}
	a.formFrequency = string(model.FreqBiWeekly)
	a.formTithing = a.ds.Settings.TithingEnabled

	a.setupForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Paycheck amount").
				Description("Take-home pay per paycheck, not per month").
				Placeholder("1500.00").
				Value(&a.formPaycheck).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("enter a positive amount")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Pay frequency").
				Options(
					huh.NewOption("Weekly", string(model.FreqWeekly)),
					huh.NewOption("Bi-weekly", string(model.FreqBiWeekly)),
					huh.NewOption("Semi-monthly", string(model.FreqSemiMonthly)),
					huh.NewOption("Monthly", string(model.FreqMonthly)),
				).
				Value(&a.formFrequency),
			huh.NewConfirm().
				Title("Enable tithing?").
				Description("Sets aside 10% of income").
				Value(&a.formTithing),
		),
	)
}

func (a App) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.setupActive = false
		paycheck, _ := strconv.ParseFloat(a.formPaycheck, 64)
		freq, err := model.ParseFrequency(a.formFrequency)
		if err != nil {
			freq = model.FreqBiWeekly
		}

		settings := a.ds.Settings
		settings.PaycheckAmount = paycheck
		settings.PayFrequency = freq
		settings.TithingEnabled = a.formTithing
		if settings.TithingPercent == 0 {
			settings.TithingPercent = 10
		}

		if err := a.store.SaveSettings(settings); err != nil {
			a.calcErr = err
			return a, nil
		}
		a.ds.Settings = settings
		a.recompute()
		return a, nil
	}
	if a.setupForm.State == huh.StateAborted {
		return a, tea.Quit
	}

	return a, cmd
}

func (a App) renderSetup() string {
	t := theme.Active
	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	return "\n" + title.Render("  Welcome to steward!") + "\n\n" + a.setupForm.View()
}
