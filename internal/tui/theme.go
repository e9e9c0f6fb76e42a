package tui

import huh "github.com/charmbracelet/huh"

// NewHuhTheme returns the purple/green theme used by every vulcan prompt.
func NewHuhTheme() *huh.Theme {
	theme := huh.ThemeCharm()

	theme.Focused.Title = theme.Focused.Title.Foreground(primaryColor).Bold(true)
	theme.Focused.SelectSelector = theme.Focused.SelectSelector.Foreground(primaryColor)
	theme.Focused.SelectedOption = theme.Focused.SelectedOption.Foreground(successColor)
	theme.Focused.FocusedButton = theme.Focused.FocusedButton.Background(primaryColor)
	theme.Focused.ErrorMessage = theme.Focused.ErrorMessage.Foreground(errorColor)
	theme.Focused.ErrorIndicator = theme.Focused.ErrorIndicator.Foreground(errorColor)

	return theme
}
