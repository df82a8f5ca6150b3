package app

import "github.com/jesseduffield/gocui"

func (a *App) RegisterKeybindings() error {
	// Quit or close modal (lowercase q)
	if err := a.g.SetKeybinding("", 'q', gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if a.HasOverlay() {
			// Text-entry modals use 'q' for input, not for closing
			if top, ok := a.TopModal(); ok {
				switch top.(type) {
				case *InputModal, *PasswordModal:
					return nil
				}
			}
			a.CloseTopmostModal()
			return nil
		}
		return gocui.ErrQuit
	}); err != nil {
		return err
	}

	// Ctrl+C to quit
	if err := a.g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		return gocui.ErrQuit
	}); err != nil {
		return err
	}

	// Single global ESC handler. The coordinator delegates to the
	// topmost dialog only; if it declined, the key is still consumed so
	// it never falls through to a buried dialog or the panels.
	if err := a.g.SetKeybinding("", gocui.KeyEsc, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if a.overlays.HandleEscape() {
			return nil
		}
		if modal, ok := a.TopModal(); ok {
			return modal.HandleKey(gocui.KeyEsc, gocui.ModNone)
		}
		return nil
	}); err != nil {
		return err
	}

	// Tab switching within panel (Tab)
	if err := a.g.SetKeybinding("", gocui.KeyTab, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		// Modal gets priority for key handling
		if modal, ok := a.TopModal(); ok {
			return modal.HandleKey(gocui.KeyTab, gocui.ModNone)
		}
		if panel := a.GetCurrentPanel(); panel != nil {
			if transfersPanel, ok := panel.(*TransfersPanel); ok {
				transfersPanel.NextTab()
			}
		}
		return nil
	}); err != nil {
		return err
	}

	// Previous tab within panel (Shift+Tab)
	if err := a.g.SetKeybinding("", gocui.KeyBacktab, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if modal, ok := a.TopModal(); ok {
			return modal.HandleKey(gocui.KeyBacktab, gocui.ModNone)
		}
		if panel := a.GetCurrentPanel(); panel != nil {
			if transfersPanel, ok := panel.(*TransfersPanel); ok {
				transfersPanel.PrevTab()
			}
		}
		return nil
	}); err != nil {
		return err
	}

	// Arrow keys for navigation
	if err := a.g.SetKeybinding("", gocui.KeyArrowRight, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if modal, ok := a.TopModal(); ok {
			return modal.HandleKey(gocui.KeyArrowRight, gocui.ModNone)
		}
		a.FocusNext()
		return nil
	}); err != nil {
		return err
	}

	if err := a.g.SetKeybinding("", gocui.KeyArrowLeft, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if modal, ok := a.TopModal(); ok {
			return modal.HandleKey(gocui.KeyArrowLeft, gocui.ModNone)
		}
		a.FocusPrevious()
		return nil
	}); err != nil {
		return err
	}

	// Arrow Up/Down for modal navigation, list navigation, or scrolling
	if err := a.g.SetKeybinding("", gocui.KeyArrowUp, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if modal, ok := a.TopModal(); ok {
			return modal.HandleKey(gocui.KeyArrowUp, gocui.ModNone)
		}
		if panel := a.GetCurrentPanel(); panel != nil {
			switch p := panel.(type) {
			case *TransfersPanel:
				p.SelectPrev()
			case *DevicesPanel:
				p.ScrollUp()
			case *PreviewPanel:
				p.ScrollUp()
			case *ActivityPanel:
				p.ScrollUp()
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if err := a.g.SetKeybinding("", gocui.KeyArrowDown, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if modal, ok := a.TopModal(); ok {
			return modal.HandleKey(gocui.KeyArrowDown, gocui.ModNone)
		}
		if panel := a.GetCurrentPanel(); panel != nil {
			switch p := panel.(type) {
			case *TransfersPanel:
				p.SelectNext()
			case *DevicesPanel:
				p.ScrollDown()
			case *PreviewPanel:
				p.ScrollDown()
			case *ActivityPanel:
				p.ScrollDown()
			}
		}
		return nil
	}); err != nil {
		return err
	}

	// Enter key for modal or transfer details
	if err := a.g.SetKeybinding("", gocui.KeyEnter, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if modal, ok := a.TopModal(); ok {
			// MessageModal: close on Enter
			if _, isMessage := modal.(*MessageModal); isMessage {
				a.CloseTopmostModal()
				return nil
			}
			return modal.HandleKey(gocui.KeyEnter, gocui.ModNone)
		}
		if panel := a.GetCurrentPanel(); panel != nil {
			if transfersPanel, ok := panel.(*TransfersPanel); ok {
				a.ShowTransferDetails(transfersPanel.Selected())
			}
		}
		return nil
	}); err != nil {
		return err
	}

	// Home key - scroll to top
	if err := a.g.SetKeybinding("", gocui.KeyHome, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if modal, ok := a.TopModal(); ok {
			return modal.HandleKey(gocui.KeyHome, gocui.ModNone)
		}
		if panel := a.GetCurrentPanel(); panel != nil {
			switch p := panel.(type) {
			case *TransfersPanel:
				p.ScrollToTop()
			case *PreviewPanel:
				p.ScrollToTop()
			case *ActivityPanel:
				p.ScrollToTop()
			}
		}
		return nil
	}); err != nil {
		return err
	}

	// End key - scroll to bottom
	if err := a.g.SetKeybinding("", gocui.KeyEnd, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if modal, ok := a.TopModal(); ok {
			return modal.HandleKey(gocui.KeyEnd, gocui.ModNone)
		}
		if panel := a.GetCurrentPanel(); panel != nil {
			switch p := panel.(type) {
			case *TransfersPanel:
				p.ScrollToBottom()
			case *PreviewPanel:
				p.ScrollToBottom()
			case *ActivityPanel:
				p.ScrollToBottom()
			}
		}
		return nil
	}); err != nil {
		return err
	}

	// 's' key - send a file
	if err := a.g.SetKeybinding("", 's', gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if a.HasOverlay() {
			return nil
		}
		a.PromptSendFile()
		return nil
	}); err != nil {
		return err
	}

	// 'r' key - receive with a room code
	if err := a.g.SetKeybinding("", 'r', gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if a.HasOverlay() {
			return nil
		}
		a.PromptReceive()
		return nil
	}); err != nil {
		return err
	}

	// 'g' key - generate a new room code
	if err := a.g.SetKeybinding("", 'g', gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if a.HasOverlay() {
			return nil
		}
		a.NewRoomCode()
		return nil
	}); err != nil {
		return err
	}

	// 'x' key - cancel selected transfer
	if err := a.g.SetKeybinding("", 'x', gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if a.HasOverlay() {
			return nil
		}
		a.CancelSelectedTransfer()
		return nil
	}); err != nil {
		return err
	}

	// 'h' key - key help
	if err := a.g.SetKeybinding("", 'h', gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if a.HasOverlay() {
			return nil
		}
		a.ShowHelp()
		return nil
	}); err != nil {
		return err
	}

	// Delete key - prune old history
	pruneHandler := func(g *gocui.Gui, v *gocui.View) error {
		if a.HasOverlay() {
			return nil
		}
		a.PromptPruneHistory()
		return nil
	}

	if err := a.g.SetKeybinding("", gocui.KeyDelete, gocui.ModNone, pruneHandler); err != nil {
		return err
	}
	if err := a.g.SetKeybinding("", gocui.KeyBackspace, gocui.ModNone, pruneHandler); err != nil {
		return err
	}
	if err := a.g.SetKeybinding("", gocui.KeyBackspace2, gocui.ModNone, pruneHandler); err != nil {
		return err
	}

	// 'y' key - pass to ConfirmModal for Yes
	if err := a.g.SetKeybinding("", 'y', gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if modal, ok := a.TopModal(); ok {
			return modal.HandleKey('y', gocui.ModNone)
		}
		return nil
	}); err != nil {
		return err
	}

	// 'n' key - pass to ConfirmModal for No
	if err := a.g.SetKeybinding("", 'n', gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if modal, ok := a.TopModal(); ok {
			return modal.HandleKey('n', gocui.ModNone)
		}
		return nil
	}); err != nil {
		return err
	}

	return nil
}
