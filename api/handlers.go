// fleetdesk/api/handlers.go
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"fleetdesk/config"
	"fleetdesk/game"
	"fleetdesk/job"
	"fleetdesk/logs"
	"fleetdesk/save"
	"fleetdesk/utils"
)

// DirectoryPicker asks the user for a folder. An empty path means cancelled.
type DirectoryPicker interface {
	SelectDirectory() (string, error)
}

// Handlers serves the front end's API on top of a Desk.
type Handlers struct {
	desk     *game.Desk
	picker   DirectoryPicker
	logger   *zap.Logger
	picking  sync.Mutex
	shutdown chan struct{}
	once     sync.Once
}

func NewHandlers(desk *game.Desk, picker DirectoryPicker, logger *zap.Logger) *Handlers {
	return &Handlers{
		desk:     desk,
		picker:   picker,
		logger:   logs.OrNop(logger).Named("api"),
		shutdown: make(chan struct{}),
	}
}

type InstallRequest struct {
	CustomPath string `json:"customPath,omitempty"`
}
type ProfileRequest struct {
	ProfilePath string `json:"profilePath"`
}
type ExportRequest struct {
	ProfilePath string     `json:"profilePath"`
	Job         job.Record `json:"job"`
}
type InitialStateResponse struct {
	InstallPath  string `json:"installPath"`
	CustomPath   string `json:"customPath"`
	DocumentsDir string `json:"documentsDir"`
	BaseExists   bool   `json:"baseExists"`
}
type SelectPathResponse struct {
	Path string `json:"path"`
}

// decode reads a JSON body into v; an empty body leaves v untouched.
func decode(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (h *Handlers) HandleGetInitialState(w http.ResponseWriter, r *http.Request) {
	custom := config.Get().CustomInstallPath
	installPath := h.desk.InstallPath(custom)
	utils.WriteJSON(w, http.StatusOK, InitialStateResponse{
		InstallPath:  installPath,
		CustomPath:   custom,
		DocumentsDir: h.desk.Locations.DocumentsDir,
		BaseExists:   h.desk.DetectCapabilities(installPath).Base,
	})
}

func (h *Handlers) HandleListProfiles(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.desk.ListProfiles())
}

func (h *Handlers) HandleDetectDlcs(w http.ResponseWriter, r *http.Request) {
	var req InstallRequest
	if err := decode(r, &req); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "invalid request: %v", err)
		return
	}
	explicit := req.CustomPath
	if explicit == "" {
		explicit = config.Get().CustomInstallPath
	}
	utils.WriteJSON(w, http.StatusOK, h.desk.DetectCapabilities(explicit))
}

func (h *Handlers) HandlePlayerState(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := decode(r, &req); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "invalid request: %v", err)
		return
	}
	if req.ProfilePath == "" {
		utils.WriteJSONError(w, http.StatusBadRequest, "profilePath is required")
		return
	}

	st, err := h.desk.PlayerState(req.ProfilePath)
	if err != nil {
		if errors.Is(err, save.ErrNoSave) {
			utils.WriteJSONError(w, http.StatusNotFound, "%s", err.Error())
			return
		}
		utils.WriteJSONError(w, http.StatusInternalServerError, "%s", err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, st)
}

func (h *Handlers) HandleExportJob(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := decode(r, &req); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "invalid request: %v", err)
		return
	}
	if req.ProfilePath == "" {
		utils.WriteJSONError(w, http.StatusBadRequest, "profilePath is required")
		return
	}

	path, err := h.desk.ExportJob(req.ProfilePath, req.Job)
	if err != nil {
		utils.WriteJSONError(w, http.StatusInternalServerError, "%s", err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{OK: true, Path: path})
}

func (h *Handlers) HandleSelectInstallPath(w http.ResponseWriter, r *http.Request) {
	if !h.picking.TryLock() {
		utils.WriteJSONError(w, http.StatusConflict, "a folder picker is already open, finish that one first")
		return
	}
	path, err := h.picker.SelectDirectory()
	h.picking.Unlock()
	if err != nil {
		utils.WriteJSONError(w, http.StatusInternalServerError, "could not open folder picker: %v", err)
		return
	}

	if path == "" { // User cancelled
		utils.WriteJSON(w, http.StatusOK, SelectPathResponse{Path: ""})
		return
	}

	cfg := config.Get()
	cfg.CustomInstallPath = path
	if err := config.Save(cfg); err != nil {
		utils.WriteJSONError(w, http.StatusInternalServerError, "saving config: %v", err)
		return
	}

	h.logger.Info("install path selected", zap.String("path", path))
	utils.WriteJSON(w, http.StatusOK, SelectPathResponse{Path: path})
}

func (h *Handlers) HandleResetInstallPath(w http.ResponseWriter, r *http.Request) {
	cfg := config.Get()
	cfg.CustomInstallPath = ""
	if err := config.Save(cfg); err != nil {
		utils.WriteJSONError(w, http.StatusInternalServerError, "saving config: %v", err)
		return
	}
	h.HandleGetInitialState(w, r)
}
