package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/onboarded/internal/onboarding"
	"github.com/jask/onboarded/internal/profile"
)

const sliderWidth = 30

func (a *App) View() string {
	var body string
	switch a.screen {
	case screenLoading:
		body = statusStyle.Render("loading…")
	case screenProfile:
		body = a.renderProfile()
	default:
		body = a.renderOnboarding()
	}

	parts := []string{body}
	if a.status != "" {
		if a.statusErr {
			parts = append(parts, errorStyle.Render(a.status))
		} else {
			parts = append(parts, successStyle.Render(a.status))
		}
	}
	parts = append(parts, a.help.View(a.currentHelp()))
	view := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if a.width > 0 && a.height > 0 {
		view = lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, view)
	}
	if a.alert != "" {
		return renderAlert(view, a.alert, a.width, a.height)
	}
	return view
}

func (a *App) currentHelp() stepHelp {
	if a.alert != "" {
		return stepHelp{a.keys.Dismiss, a.keys.Quit}
	}
	if a.screen == screenProfile {
		return stepHelp{a.keys.SignOut, a.keys.Exit}
	}
	next := a.keys.Next
	next.SetHelp("enter", strings.ToLower(a.flow.Step().ButtonLabel()))
	switch a.flow.Step() {
	case onboarding.Welcome:
		return stepHelp{next, a.keys.Exit}
	case onboarding.AddAge:
		return stepHelp{a.keys.AgeDown, a.keys.AgeDown10, next, a.keys.Quit}
	case onboarding.AddGender:
		return stepHelp{a.keys.PickPrev, next, a.keys.Quit}
	default:
		return stepHelp{next, a.keys.Quit}
	}
}

func (a *App) renderOnboarding() string {
	draft := a.flow.Draft()
	var section string
	switch a.flow.Step() {
	case onboarding.Welcome:
		section = lipgloss.JoinVertical(lipgloss.Center,
			headlineStyle.Render("Find your match."),
			"",
			bodyStyle.Width(44).Align(lipgloss.Center).Render(
				"This is the #1 app for finding your match online! Tell us a little about yourself to get started."),
		)
	case onboarding.AddName:
		section = lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("What's your name?"),
			"",
			a.nameInput.View(),
		)
	case onboarding.AddAge:
		section = lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render("What's your age?"),
			"",
			valueStyle.Render(fmt.Sprintf("%.0f", draft.Age)),
			renderSlider(draft.Age),
		)
	case onboarding.AddGender:
		section = lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("What's your gender?"),
			"",
			a.renderPicker(draft.Gender),
		)
	case onboarding.Completed:
		return cardStyle.Render(statusStyle.Render("saving profile…"))
	}

	button := buttonStyle.Render(a.flow.Step().ButtonLabel())
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, section, "", button))
}

// renderSlider draws the age track between MinAge and MaxAge.
func renderSlider(age float64) string {
	span := float64(onboarding.MaxAge - onboarding.MinAge)
	filled := int((onboarding.ClampAge(age) - onboarding.MinAge) / span * sliderWidth)
	if filled > sliderWidth {
		filled = sliderWidth
	}
	track := sliderOnStyle.Render(strings.Repeat("━", filled)) +
		sliderOnStyle.Render("●") +
		sliderOffStyle.Render(strings.Repeat("─", sliderWidth-filled))
	return fmt.Sprintf("%d %s %d", onboarding.MinAge, track, onboarding.MaxAge)
}

func (a *App) renderPicker(selected onboarding.Gender) string {
	label := "Select a gender"
	if selected.Valid() {
		label = string(selected)
	}
	lines := []string{pickedStyle.Render(label), ""}
	for i, opt := range onboarding.Genders() {
		prefix := "  "
		style := pickerStyle
		if i == a.genderCursor {
			prefix = "> "
			style = pickedStyle
		}
		lines = append(lines, style.Render(prefix+string(opt)))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderProfile() string {
	p := a.profile
	card := lipgloss.JoinVertical(lipgloss.Center,
		headlineStyle.Render(profile.DisplayName(p)),
		"",
		bodyStyle.Render(fmt.Sprintf("This user is %d years old", profile.DisplayAge(p))),
		bodyStyle.Render(fmt.Sprintf("Their gender is %s", profile.DisplayGender(p))),
		"",
		dangerButton.Render("Sign Out"),
	)
	return cardStyle.Render(card)
}
