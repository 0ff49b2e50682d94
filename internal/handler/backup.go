package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/calebmartin/larder/internal/backup"
	"github.com/calebmartin/larder/internal/websocket"
)

// Snapshot uploads are whole-state JSON documents; anything bigger than this
// is not one of ours.
const maxSnapshotBytes = 16 << 20

type BackupHandler struct {
	manager    *backup.Manager
	passphrase string
	hub        *websocket.Hub
	logger     *slog.Logger
}

func NewBackupHandler(manager *backup.Manager, passphrase string, hub *websocket.Hub, logger *slog.Logger) *BackupHandler {
	return &BackupHandler{manager: manager, passphrase: passphrase, hub: hub, logger: logger}
}

func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	data, encrypted, err := h.manager.Export(h.passphrase, now)
	if err != nil {
		h.logger.Error("export snapshot", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to export snapshot")
		return
	}

	name := fmt.Sprintf("larder-backup-%s.json", now.Format("20060102-150405"))
	contentType := "application/json"
	if encrypted {
		name += ".enc"
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Write(data)
}

func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxSnapshotBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read snapshot")
		return
	}

	if err := h.manager.Import(data, h.passphrase); err != nil {
		h.logger.Error("import snapshot", "error", err)
		writeError(w, http.StatusBadRequest, "failed to restore snapshot")
		return
	}

	// Everything may have changed; tell all screens to re-fetch.
	h.hub.Broadcast(websocket.NewMessage("list", "restored", ""))
	h.hub.Broadcast(websocket.NewMessage("pantry", "restored", ""))
	writeJSON(w, http.StatusOK, map[string]string{"status": "restored"})
}
