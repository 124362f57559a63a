package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/onboarded/internal/onboarding"
	"github.com/jask/onboarded/internal/profile"
	"github.com/jask/onboarded/internal/service"
)

// App is the root bubbletea model. It shows the onboarding wizard until a
// profile is committed, then the profile card.
type App struct {
	ctx      context.Context
	store    profile.Store
	accounts *service.AccountService
	log      *zap.Logger

	screen       screen
	flow         *onboarding.Flow
	nameInput    textinput.Model
	genderCursor int
	profile      profile.Profile

	alert     string
	status    string
	statusErr bool

	keys   keyMap
	help   help.Model
	width  int
	height int
}

type screen string

const (
	screenLoading    screen = "loading"
	screenOnboarding screen = "onboarding"
	screenProfile    screen = "profile"
)

// New builds the App. The store is injected; nothing else in the package
// keeps state between runs.
func New(ctx context.Context, store profile.Store, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	ti := textinput.New()
	ti.Placeholder = "Your name here ..."
	ti.CharLimit = 64
	ti.Width = 32
	ti.Prompt = "│ "
	ti.Focus()

	a := &App{
		ctx:       ctx,
		store:     store,
		accounts:  &service.AccountService{Profiles: store, Log: log},
		log:       log,
		screen:    screenLoading,
		nameInput: ti,
		keys:      newKeyMap(),
		help:      help.New(),
	}
	a.resetFlow()
	return a
}

func (a *App) Init() tea.Cmd {
	return a.launchCmd()
}

func (a *App) resetFlow() {
	a.flow = onboarding.NewFlow(a.store, a.log)
	a.nameInput.SetValue("")
	a.genderCursor = -1
}

// ---------------------------------------------------------------------------
// Messages and commands
// ---------------------------------------------------------------------------

type launchMsg struct {
	route   service.Route
	profile profile.Profile
	err     error
}

type profileMsg struct {
	profile profile.Profile
	err     error
}

type signedOutMsg struct{ err error }

func (a *App) launchCmd() tea.Cmd {
	return func() tea.Msg {
		route, p, err := a.accounts.Launch(a.ctx)
		return launchMsg{route: route, profile: p, err: err}
	}
}

func (a *App) loadProfileCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := a.store.Read(a.ctx)
		if err != nil {
			return profileMsg{err: fmt.Errorf("read profile: %w", err)}
		}
		return profileMsg{profile: p}
	}
}

func (a *App) signOutCmd() tea.Cmd {
	return func() tea.Msg {
		return signedOutMsg{err: a.accounts.SignOut(a.ctx)}
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		return a, nil
	case tea.KeyMsg:
		if key.Matches(m, a.keys.Quit) {
			return a, tea.Quit
		}
		if a.alert != "" {
			if key.Matches(m, a.keys.Dismiss) {
				a.alert = ""
			}
			return a, nil
		}
		switch a.screen {
		case screenOnboarding:
			return a.handleOnboardingKey(m)
		case screenProfile:
			return a.handleProfileKey(m)
		}
		if key.Matches(m, a.keys.Exit) {
			return a, tea.Quit
		}
		return a, nil
	case launchMsg:
		if m.err != nil {
			a.setError(m.err)
			a.screen = screenOnboarding
			return a, nil
		}
		a.profile = m.profile
		if m.route == service.RouteProfile {
			a.screen = screenProfile
		} else {
			a.screen = screenOnboarding
		}
		return a, nil
	case profileMsg:
		if m.err != nil {
			a.setError(m.err)
			if a.flow.Done() {
				a.profile = committedProfile(a.flow.Draft())
				a.screen = screenProfile
			}
			return a, nil
		}
		a.profile = m.profile
		a.screen = screenProfile
		a.setStatus("signed in")
		return a, nil
	case signedOutMsg:
		if m.err != nil {
			a.setError(m.err)
			return a, nil
		}
		a.profile = profile.Profile{}
		a.resetFlow()
		a.screen = screenOnboarding
		a.setStatus("signed out")
		return a, nil
	}
	return a, nil
}

func (a *App) handleOnboardingKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := a.flow.Step()
	if key.Matches(m, a.keys.Next) {
		return a, a.dispatch(onboarding.Advance{})
	}
	switch step {
	case onboarding.Welcome:
		if key.Matches(m, a.keys.Exit) {
			return a, tea.Quit
		}
	case onboarding.AddName:
		var cmd tea.Cmd
		a.nameInput, cmd = a.nameInput.Update(m)
		if err := a.flow.Dispatch(a.ctx, onboarding.SetName{Value: a.nameInput.Value()}); err != nil {
			a.setError(err)
		}
		return a, cmd
	case onboarding.AddAge:
		switch {
		case key.Matches(m, a.keys.AgeDown):
			return a, a.dispatch(onboarding.NudgeAge{Delta: -1})
		case key.Matches(m, a.keys.AgeUp):
			return a, a.dispatch(onboarding.NudgeAge{Delta: 1})
		case key.Matches(m, a.keys.AgeDown10):
			return a, a.dispatch(onboarding.NudgeAge{Delta: -10})
		case key.Matches(m, a.keys.AgeUp10):
			return a, a.dispatch(onboarding.NudgeAge{Delta: 10})
		}
	case onboarding.AddGender:
		options := onboarding.Genders()
		switch {
		case key.Matches(m, a.keys.PickNext):
			a.genderCursor = (a.genderCursor + 1) % len(options)
		case key.Matches(m, a.keys.PickPrev):
			if a.genderCursor <= 0 {
				a.genderCursor = len(options) - 1
			} else {
				a.genderCursor--
			}
		default:
			return a, nil
		}
		return a, a.dispatch(onboarding.SetGender{Value: options[a.genderCursor]})
	}
	return a, nil
}

func (a *App) handleProfileKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.SignOut):
		return a, a.signOutCmd()
	case key.Matches(m, a.keys.Exit):
		return a, tea.Quit
	}
	return a, nil
}

// dispatch feeds an action to the flow. A rejected advance opens the alert;
// once the flow completes the committed profile is loaded.
func (a *App) dispatch(action onboarding.Action) tea.Cmd {
	if err := a.flow.Dispatch(a.ctx, action); err != nil {
		var verr *onboarding.ValidationError
		if errors.As(err, &verr) {
			a.alert = verr.Prompt
			return nil
		}
		a.setError(err)
		return nil
	}
	a.status = ""
	if a.flow.Done() {
		return a.loadProfileCmd()
	}
	return nil
}

// committedProfile is what the flow just wrote, for when the store cannot be
// read back.
func committedProfile(d onboarding.Draft) profile.Profile {
	name, age, gender := d.Name, d.WholeAge(), string(d.Gender)
	return profile.Profile{Name: &name, Age: &age, Gender: &gender, SignedIn: true}
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(err error) {
	a.log.Error("tui", zap.Error(err))
	a.status = err.Error()
	a.statusErr = true
}
