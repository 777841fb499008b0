// fleetdesk/game/desk.go
package game

import (
	"go.uber.org/zap"

	"fleetdesk/install"
	"fleetdesk/job"
	"fleetdesk/logs"
	"fleetdesk/profile"
	"fleetdesk/save"
)

// Desk answers the front end's queries about the local game: profiles,
// installed content, player progression, and job export. It keeps no state
// between calls.
type Desk struct {
	Locations Locations
	Resolver  *install.Resolver
	Parser    save.Parser
	logger    *zap.Logger
}

// NewDesk wires a Desk for this machine. parser names a save.Parser
// ("pattern" or "line"); docsOverride replaces Documents detection when set.
func NewDesk(docsOverride, parser string, logger *zap.Logger) *Desk {
	logger = logs.OrNop(logger).Named("game")
	loc, err := NewLocations(docsOverride)
	if err != nil {
		logger.Warn("could not locate Documents directory", zap.Error(err))
	}
	return &Desk{
		Locations: loc,
		Resolver:  install.NewResolver(logger),
		Parser:    save.NewParser(parser),
		logger:    logger,
	}
}

// ListProfiles enumerates local and Steam Cloud profiles.
func (d *Desk) ListProfiles() []profile.Descriptor {
	roots := d.Locations.ProfileRoots()
	d.logger.Debug("scanning profile roots", zap.Strings("roots", roots))
	return profile.List(d.logger, roots...)
}

// InstallPath resolves the installation directory; explicit may be empty.
func (d *Desk) InstallPath(explicit string) string {
	return d.Resolver.Resolve(explicit)
}

// DetectCapabilities resolves the installation and checks its content packages.
func (d *Desk) DetectCapabilities(explicit string) install.DlcFlags {
	path := d.InstallPath(explicit)
	flags := install.Detect(path)
	d.logger.Debug("detected content packages",
		zap.String("install", path),
		zap.Bool("base", flags.Base),
		zap.Strings("installed", flags.Installed()),
	)
	return flags
}

// PlayerState reads the newest available save of the profile at profilePath.
// The only error is save.ErrNoSave.
func (d *Desk) PlayerState(profilePath string) (save.PlayerState, error) {
	snap, err := save.Locate(profilePath)
	if err != nil {
		d.logger.Warn("no readable save", zap.String("profile", profilePath))
		return save.PlayerState{}, err
	}
	formatOK := save.FormatCompatible(d.Locations.GlobalConfigPath())
	raw := d.Parser.Parse(snap.Text)
	d.logger.Debug("parsed save",
		zap.String("slot", snap.Slot),
		zap.Uint32("level", raw.Level),
		zap.Int("cities", len(raw.Cities)),
	)
	return save.Assemble(raw, formatOK), nil
}

// ExportJob writes rec into the profile directory and returns the file path.
func (d *Desk) ExportJob(profilePath string, rec job.Record) (string, error) {
	path, err := job.Export(profilePath, rec)
	if err != nil {
		d.logger.Error("job export failed", zap.String("profile", profilePath), zap.Error(err))
		return "", err
	}
	d.logger.Info("job exported", zap.String("path", path))
	return path, nil
}
