package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jesseduffield/gocui"

	"github.com/quartzlabs/lazysend/pkg/history"
	"github.com/quartzlabs/lazysend/pkg/transfer"
)

const sendChunkSize = 256 * 1024

// PromptSendFile opens the send dialog asking for a file or folder
// path. A folder opens a picker over its scanned contents.
func (a *App) PromptSendFile() {
	modal := NewInputModal(a.g, "Send", func(path string) {
		a.CloseModal("input_modal")

		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			a.pickFileFromFolder(path)
			return
		}
		a.startSend(path)
	}, func() {
		a.CloseModal("input_modal")
	}).WithSubtitle("File or folder to send").WithRequired(true)

	a.OpenModal(modal)
}

// pickFileFromFolder scans a folder (honoring the configured depth and
// exclude lists) and stacks a picker dialog over the main view.
func (a *App) pickFileFromFolder(root string) {
	entries, err := transfer.Scan(root, transfer.ScanOptions{
		MaxDepth:    a.cfg.Scan.MaxDepth,
		ExcludeDirs: a.cfg.Scan.ExcludeDirs,
	})
	if err != nil {
		modal := NewMessageModal(a.g, "Scan Failed",
			err.Error(),
		).WithStyle(ModalStyle{TitleColor: ColorRed, BorderColor: ColorRed})
		a.OpenModal(modal)
		return
	}
	if len(entries) == 0 {
		a.ShowToast("No sendable files in " + root)
		return
	}

	items := make([]ListModalItem, len(entries))
	for i, entry := range entries {
		entry := entry
		items[i] = ListModalItem{
			Label:       " " + entry.RelPath,
			Description: fmt.Sprintf("%s (%d bytes)", entry.Path, entry.Size),
			OnSelect: func() error {
				a.CloseModal("list_modal_list")
				a.startSend(entry.Path)
				return nil
			},
		}
	}

	modal := NewListModal(a.g, "Send from "+filepath.Base(root), items, func() {
		a.CloseModal("list_modal_list")
	})
	a.OpenModal(modal)
}

// startSend registers an outgoing transfer and streams the file through
// the transfer pipeline, reporting progress per chunk.
func (a *App) startSend(path string) {
	if !a.tryStartTask("Send " + filepath.Base(path)) {
		a.logTaskBlocked("Send")
		return
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() || !transfer.IsSendable(path) {
		a.finishTask()
		modal := NewMessageModal(a.g, "Cannot Send",
			fmt.Sprintf("%q is not a sendable file.", path),
		).WithStyle(ModalStyle{TitleColor: ColorRed, BorderColor: ColorRed})
		a.OpenModal(modal)
		return
	}

	peer := "room " + a.roomCode
	id := a.transfers.Start(peer, filepath.Base(path), info.Size(), transfer.DirectionSend)
	a.log.Info().Str("id", id).Str("file", path).Msg("send started")

	if preview, ok := a.panels[ViewPreview].(*PreviewPanel); ok {
		preview.ShowFile(path)
	}

	go func() {
		defer a.finishTask()

		f, err := os.Open(path)
		if err != nil {
			a.transfers.Fail(id, err.Error())
			return
		}
		defer f.Close()

		sendFile(a.transfers, id, f)
	}()
}

// sendFile streams r into the transfer ledger in fixed-size chunks. An
// empty file never enters the progress branch, so EOF without any bytes
// sent still reports a zero-byte advance to complete the transfer.
func sendFile(m *transfer.Manager, id string, r io.Reader) {
	var sent int64
	buf := make([]byte, sendChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			sent += int64(n)
			if aerr := m.Advance(id, sent); aerr != nil {
				return // cancelled
			}
		}
		if err == io.EOF {
			if sent == 0 {
				m.Advance(id, 0)
			}
			return
		}
		if err != nil {
			m.Fail(id, err.Error())
			return
		}
	}
}

// PromptReceive opens the receive dialog: a room code prompt, then a
// passphrase prompt stacked on top of it.
func (a *App) PromptReceive() {
	modal := NewInputModal(a.g, "Receive", func(code string) {
		code = transfer.Normalize(code)
		if !a.codes.Validate(code) {
			a.ShowToast("Invalid room code")
			return
		}
		// Keep the code dialog open underneath; the passphrase dialog
		// stacks above it and closing it drops back here.
		a.promptPassphrase(code)
	}, func() {
		a.CloseModal("receive_modal")
	}).WithID("receive_modal").WithSubtitle("Room code, e.g. apple-brick-cloud").WithRequired(true)

	a.OpenModal(modal)
}

// promptPassphrase stacks the passphrase dialog above the receive
// dialog. Backdrop clicks are ignored so a stray click cannot dismiss
// it mid-lockout; Escape still cancels through the coordinator.
func (a *App) promptPassphrase(code string) {
	modal := NewPasswordModal(a.g, "Passphrase for "+code,
		a.cfg.Security.LockoutThreshold, a.cfg.LockoutBase(),
		func(pass string) bool {
			return pass == a.sessionPass
		},
		func() {
			a.CloseModal("password_modal")
			a.CloseModal("receive_modal")
			a.joinRoom(code)
		},
		func() {
			a.CloseModal("password_modal")
		},
	).WithStyle(ModalStyle{TitleColor: ColorCyan, BorderColor: ColorCyan})

	a.OpenModal(modal, WithoutBackdropClose())
}

// joinRoom marks this device as joined to a transfer room.
func (a *App) joinRoom(code string) {
	a.log.Info().Str("code", code).Msg("joined room")
	a.ShowToast("Joined room " + code)
	if activity, ok := a.panels[ViewActivity].(*ActivityPanel); ok {
		activity.LogAction("Receive", "Joined room "+code+", waiting for offer")
	}
	if devices, ok := a.panels[ViewDevices].(*DevicesPanel); ok {
		devices.SetJoinedRoom(code)
	}
}

// NewRoomCode generates a fresh room code and passphrase pair.
func (a *App) NewRoomCode() {
	code, err := a.codes.Generate()
	if err != nil {
		a.ShowToast("Code generation failed")
		a.log.Error().Err(err).Msg("room code generation failed")
		return
	}
	pass, err := a.codes.Generate()
	if err != nil {
		a.ShowToast("Code generation failed")
		return
	}

	a.roomCode = code
	a.sessionPass = pass

	if devices, ok := a.panels[ViewDevices].(*DevicesPanel); ok {
		devices.SetRoomCode(code)
	}
	if activity, ok := a.panels[ViewActivity].(*ActivityPanel); ok {
		activity.LogAction("Room", "New room code "+code)
	}

	modal := NewMessageModal(a.g, "Room Ready",
		"Share with the receiving device:",
		"",
		"Code:       "+code,
		"Passphrase: "+pass,
	).WithStyle(ModalStyle{TitleColor: ColorGreen, BorderColor: ColorGreen})
	a.OpenModal(modal)
}

// CancelSelectedTransfer asks for confirmation, then cancels.
func (a *App) CancelSelectedTransfer() {
	transfersPanel, ok := a.panels[ViewTransfers].(*TransfersPanel)
	if !ok {
		return
	}
	t, ok := transfersPanel.Selected()
	if !ok {
		return
	}
	if t.Status != transfer.StatusPending && t.Status != transfer.StatusActive {
		a.ShowToast("Transfer already finished")
		return
	}

	modal := NewConfirmModal(a.g, "Cancel Transfer",
		fmt.Sprintf("Cancel %s (%s)?", t.FileName, t.Peer),
		func() {
			a.CloseModal("confirm_modal")
			if err := a.transfers.Cancel(t.ID); err != nil {
				a.ShowToast("Cancel failed")
			}
		},
		func() {
			a.CloseModal("confirm_modal")
		},
	).WithStyle(ModalStyle{TitleColor: ColorYellow, BorderColor: ColorYellow})

	// Escape answers No through the modal's own handler instead of the
	// coordinator's close path
	a.OpenModal(modal, WithoutEscapeClose())
}

// ShowTransferDetails opens a detail dialog for the selected transfer.
func (a *App) ShowTransferDetails(t transfer.Transfer, ok bool) {
	if !ok {
		return
	}

	modal := NewMessageModal(a.g, t.FileName,
		"Peer:      "+t.Peer,
		"Direction: "+t.Direction.String(),
		"Status:    "+t.Status.String(),
		fmt.Sprintf("Size:      %d bytes", t.Size),
		fmt.Sprintf("Progress:  %.0f%%", t.Progress()*100),
		"Started:   "+t.StartedAt.Format("15:04:05"),
	)
	a.OpenModal(modal)
}

// PromptPruneHistory asks for confirmation, then prunes records older
// than 30 days.
func (a *App) PromptPruneHistory() {
	modal := NewConfirmModal(a.g, "Prune History",
		"Delete transfer history older than 30 days?",
		func() {
			a.CloseModal("confirm_modal")
			n, err := a.store.Prune(time.Now().AddDate(0, 0, -30))
			if err != nil {
				a.ShowToast("Prune failed")
				a.log.Error().Err(err).Msg("history prune failed")
				return
			}
			a.ShowToast(fmt.Sprintf("Pruned %d records", n))
			if transfersPanel, ok := a.panels[ViewTransfers].(*TransfersPanel); ok {
				transfersPanel.ReloadHistory()
			}
		},
		func() {
			a.CloseModal("confirm_modal")
		},
	)

	a.OpenModal(modal)
}

// ShowHelp opens the key reference dialog.
func (a *App) ShowHelp() {
	modal := NewMessageModal(a.g, "Keys",
		"s        send a file",
		"r        receive with a room code",
		"g        generate a new room code",
		"x        cancel selected transfer",
		"Enter    transfer details",
		"Del      prune old history",
		"Tab      switch transfer tabs",
		"←/→      switch panels",
		"q        quit",
	)
	a.OpenModal(modal)
}

// onTransferEvent is invoked by the manager, possibly from a worker
// goroutine; all UI mutation is funneled through g.Update.
func (a *App) onTransferEvent(ev transfer.Event) {
	a.g.Update(func(g *gocui.Gui) error {
		t := ev.Transfer

		if transfersPanel, ok := a.panels[ViewTransfers].(*TransfersPanel); ok {
			transfersPanel.Refresh()
		}

		activity, _ := a.panels[ViewActivity].(*ActivityPanel)

		switch ev.Kind {
		case transfer.EventStarted:
			if activity != nil {
				activity.LogAction("Transfer", fmt.Sprintf("%s %s (%d bytes)", t.Direction, t.FileName, t.Size))
			}
		case transfer.EventCompleted:
			a.ShowToast("Done: " + t.FileName)
			if activity != nil {
				activity.LogAction("Complete", t.FileName)
			}
			a.recordHistory(t)
		case transfer.EventFailed:
			a.ShowToast("Failed: " + t.FileName)
			if activity != nil {
				activity.LogActionRed("Failed", t.FileName+": "+t.Err)
			}
			a.recordHistory(t)
		case transfer.EventCancelled:
			a.ShowToast("Cancelled: " + t.FileName)
			if activity != nil {
				activity.LogActionRed("Cancelled", t.FileName)
			}
			a.recordHistory(t)
		}
		return nil
	})
}

func (a *App) recordHistory(t transfer.Transfer) {
	if a.store == nil {
		return
	}
	err := a.store.Add(history.Record{
		ID:        t.ID,
		Peer:      t.Peer,
		FileName:  t.FileName,
		Size:      t.Size,
		Direction: t.Direction.String(),
		Status:    t.Status.String(),
		Error:     t.Err,
		StartedAt: t.StartedAt,
		EndedAt:   t.UpdatedAt,
	})
	if err != nil {
		a.log.Error().Err(err).Str("id", t.ID).Msg("history write failed")
		return
	}
	if transfersPanel, ok := a.panels[ViewTransfers].(*TransfersPanel); ok {
		transfersPanel.ReloadHistory()
	}
}
