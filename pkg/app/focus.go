package app

func (a *App) FocusNext() {
	// Ignore while a dialog is open
	if a.HasOverlay() {
		return
	}

	if len(a.focusOrder) == 0 {
		return
	}

	if panel, ok := a.panels[a.focusOrder[a.currentFocus]]; ok {
		panel.OnBlur()
	}

	// Next (circular)
	a.currentFocus = (a.currentFocus + 1) % len(a.focusOrder)

	if panel, ok := a.panels[a.focusOrder[a.currentFocus]]; ok {
		panel.OnFocus()
	}
}

func (a *App) FocusPrevious() {
	if a.HasOverlay() {
		return
	}

	if len(a.focusOrder) == 0 {
		return
	}

	if panel, ok := a.panels[a.focusOrder[a.currentFocus]]; ok {
		panel.OnBlur()
	}

	// Previous (circular)
	a.currentFocus = (a.currentFocus - 1 + len(a.focusOrder)) % len(a.focusOrder)

	if panel, ok := a.panels[a.focusOrder[a.currentFocus]]; ok {
		panel.OnFocus()
	}
}
