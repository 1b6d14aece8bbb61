package cli

import "context"

// Theme toggles between light and dark and persists the choice.
func (a *App) Theme(ctx context.Context) error {
	theme, err := a.theme.Toggle(ctx)
	if err != nil {
		printlnFn("Could not switch theme:", err.Error())
		return err
	}

	printlnFn("Theme switched to", theme)
	return nil
}
