// fleetdesk/ui/dialog.go
package ui

import (
	"errors"
	"time"

	"github.com/faiface/mainthread"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"
)

const pickerTitle = `Select the Euro Truck Simulator 2 folder (e.g. C:\Program Files (x86)\Steam\steamapps\common\Euro Truck Simulator 2)`

var (
	logger             = zap.NewNop()
	dialogRequestChan  = make(chan bool)
	dialogResponseChan = make(chan dialogResponse)
)

type dialogResponse struct {
	path string
	err  error
}

// GUIManager serves picker requests on the main thread until CloseGUIManager.
// It must run inside mainthread.Run.
func GUIManager(readyChan chan<- bool, l *zap.Logger) {
	if l != nil {
		logger = l.Named("ui")
	}
	readyChan <- true
	for range dialogRequestChan {
		var path string
		var err error
		mainthread.Call(func() {
			path, err = dialog.Directory().Title(pickerTitle).Browse()
		})
		select {
		case dialogResponseChan <- dialogResponse{path: path, err: err}:
		case <-time.After(2 * time.Second):
			logger.Warn("picker response not collected")
		}
	}
	logger.Info("GUI manager stopped")
}

func CloseGUIManager() {
	close(dialogRequestChan)
}

// NativePicker opens the platform folder dialog through GUIManager.
type NativePicker struct{}

// SelectDirectory returns the chosen folder, or "" if the user cancelled.
func (NativePicker) SelectDirectory() (string, error) {
	dialogRequestChan <- true
	resp := <-dialogResponseChan

	if errors.Is(resp.err, dialog.ErrCancelled) {
		return "", nil
	}
	return resp.path, resp.err
}
