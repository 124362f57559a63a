package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jask/onboarded/internal/database"
	"github.com/jask/onboarded/internal/onboarding"
	"github.com/jask/onboarded/internal/profile"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type memStore struct {
	p        profile.Profile
	readErr  error
	writeErr error
}

func (m *memStore) Read(context.Context) (profile.Profile, error) { return m.p, m.readErr }

func (m *memStore) WriteProfile(_ context.Context, name string, age int, gender string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.p = profile.Profile{Name: &name, Age: &age, Gender: &gender, SignedIn: true}
	return nil
}

func (m *memStore) ClearProfile(context.Context) error {
	m.p = profile.Profile{}
	return nil
}

func runeKey(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	rightKey = tea.KeyMsg{Type: tea.KeyRight}
	leftKey  = tea.KeyMsg{Type: tea.KeyLeft}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	upKey    = tea.KeyMsg{Type: tea.KeyUp}
)

// send feeds msg to the app and returns the command it produced.
func send(t *testing.T, a *App, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := a.Update(msg)
	require.Same(t, a, next)
	return cmd
}

// settle runs a store command and feeds its message back.
func settle(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	send(t, a, cmd())
}

func typeText(t *testing.T, a *App, s string) {
	t.Helper()
	for _, r := range s {
		send(t, a, runeKey(string(r)))
	}
}

func launched(t *testing.T, store profile.Store) *App {
	t.Helper()
	a := New(context.Background(), store, nil)
	settle(t, a, a.Init())
	return a
}

func TestLaunchShowsOnboardingWhenSignedOut(t *testing.T) {
	a := launched(t, &memStore{})
	require.Equal(t, screenOnboarding, a.screen)
	require.Equal(t, onboarding.Welcome, a.flow.Step())
	view := a.View()
	require.Contains(t, view, "Find your match.")
	require.Contains(t, view, "Sign Up")
}

func TestLaunchShowsProfileWhenSignedIn(t *testing.T) {
	store := &memStore{}
	require.NoError(t, store.WriteProfile(context.Background(), "Ann", 30, "Female"))
	a := launched(t, store)
	require.Equal(t, screenProfile, a.screen)
	view := a.View()
	require.Contains(t, view, "Ann")
	require.Contains(t, view, "This user is 30 years old")
	require.Contains(t, view, "Their gender is Female")
	require.Contains(t, view, "Sign Out")
}

func TestWizardEndToEnd(t *testing.T) {
	store := &memStore{}
	a := launched(t, store)

	send(t, a, enterKey)
	require.Equal(t, onboarding.AddName, a.flow.Step())
	require.Contains(t, a.View(), "What's your name?")

	typeText(t, a, "Al")
	send(t, a, enterKey)
	require.Equal(t, onboarding.AddName, a.flow.Step())
	require.Contains(t, a.alert, "at least 3 characters")
	require.Contains(t, a.View(), "at least 3 characters")

	// the alert blocks input until dismissed
	send(t, a, runeKey("x"))
	require.Equal(t, "Al", a.flow.Draft().Name)
	send(t, a, enterKey)
	require.Empty(t, a.alert)

	typeText(t, a, "f")
	send(t, a, enterKey)
	require.Equal(t, onboarding.AddAge, a.flow.Step())
	require.Contains(t, a.View(), "What's your age?")
	require.Contains(t, a.View(), "25")

	for i := 0; i < 6; i++ {
		send(t, a, rightKey)
	}
	send(t, a, leftKey)
	require.Equal(t, float64(30), a.flow.Draft().Age)
	send(t, a, enterKey)
	require.Equal(t, onboarding.AddGender, a.flow.Step())
	require.Contains(t, a.View(), "Select a gender")
	require.Contains(t, a.View(), "Finish")

	send(t, a, enterKey)
	require.Contains(t, a.alert, "select a gender")
	require.False(t, store.p.SignedIn)
	send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	require.Empty(t, a.alert)

	send(t, a, downKey)
	send(t, a, downKey)
	require.Equal(t, onboarding.Female, a.flow.Draft().Gender)

	cmd := send(t, a, enterKey)
	require.True(t, a.flow.Done())
	require.Equal(t, "Alf", *store.p.Name)
	require.Equal(t, 30, *store.p.Age)
	require.Equal(t, "Female", *store.p.Gender)
	require.True(t, store.p.SignedIn)

	settle(t, a, cmd)
	require.Equal(t, screenProfile, a.screen)
	require.Contains(t, a.View(), "This user is 30 years old")
}

func TestGenderPickerWraps(t *testing.T) {
	a := launched(t, &memStore{})
	require.Error(t, a.flow.Run(context.Background(), "Ann", 30, ""))
	require.Equal(t, onboarding.AddGender, a.flow.Step())

	send(t, a, upKey)
	require.Equal(t, onboarding.NonBinary, a.flow.Draft().Gender)
	send(t, a, downKey)
	require.Equal(t, onboarding.Male, a.flow.Draft().Gender)
	send(t, a, upKey)
	require.Equal(t, onboarding.NonBinary, a.flow.Draft().Gender)
}

func TestSignOutReturnsToWelcome(t *testing.T) {
	store := &memStore{}
	require.NoError(t, store.WriteProfile(context.Background(), "Ann", 30, "Female"))
	a := launched(t, store)

	settle(t, a, send(t, a, enterKey))
	require.Equal(t, screenOnboarding, a.screen)
	require.Equal(t, onboarding.Welcome, a.flow.Step())
	require.Empty(t, a.nameInput.Value())
	require.Equal(t, profile.Profile{}, store.p)
	require.Contains(t, a.View(), "signed out")
}

func TestCommitFailureShowsStatusNotAlert(t *testing.T) {
	store := &memStore{writeErr: errors.New("disk full")}
	a := launched(t, store)
	require.Error(t, a.flow.Run(context.Background(), "Ann", 30, onboarding.Male))

	cmd := send(t, a, enterKey)
	require.Nil(t, cmd)
	require.Empty(t, a.alert)
	require.True(t, a.statusErr)
	require.Contains(t, a.status, "disk full")
	require.Equal(t, onboarding.AddGender, a.flow.Step())
}

func TestReloadFailureAfterCommitShowsCommittedProfile(t *testing.T) {
	store := &memStore{}
	a := launched(t, store)
	require.Error(t, a.flow.Run(context.Background(), "Ann", 30, ""))

	store.readErr = errors.New("database is locked")
	send(t, a, downKey)
	settle(t, a, send(t, a, enterKey))

	require.Equal(t, screenProfile, a.screen)
	require.True(t, a.statusErr)
	require.Contains(t, a.status, "database is locked")
	view := a.View()
	require.Contains(t, view, "Ann")
	require.Contains(t, view, "This user is 30 years old")
	require.Contains(t, view, "Their gender is Male")
}

func TestQuitKeys(t *testing.T) {
	a := launched(t, &memStore{})
	cmd := send(t, a, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	cmd = send(t, a, runeKey("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	// q is text on the name screen
	send(t, a, enterKey)
	send(t, a, runeKey("q"))
	require.Equal(t, onboarding.AddName, a.flow.Step())
	require.Equal(t, "q", a.flow.Draft().Name)
}

func TestAlertRendersOverSizedView(t *testing.T) {
	a := launched(t, &memStore{})
	send(t, a, tea.WindowSizeMsg{Width: 80, Height: 24})
	send(t, a, enterKey)
	send(t, a, enterKey)
	view := a.View()
	require.Len(t, strings.Split(view, "\n"), 24)
	require.Contains(t, view, "at least 3 characters")
}

func TestAppAgainstSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tui.db")
	require.NoError(t, database.RunMigrations(path))
	db, err := database.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.SeedDefaults(context.Background(), db))
	store := profile.NewSQLStore(db, nil)

	a := launched(t, store)
	require.NoError(t, a.flow.Run(context.Background(), "Ann", 30, onboarding.Female))
	p, err := store.Read(context.Background())
	require.NoError(t, err)
	require.True(t, p.SignedIn)

	// a fresh launch against the same database lands on the profile
	b := launched(t, store)
	require.Equal(t, screenProfile, b.screen)
	require.Contains(t, b.View(), "Ann")
}
