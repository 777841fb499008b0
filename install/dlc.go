// fleetdesk/install/dlc.go
package install

import (
	"os"
	"path/filepath"
)

// ContentDir is the subdirectory of an installation holding content packages.
const ContentDir = "dlc"

// Package is one optional content package and the marker file that signals it.
type Package struct {
	Key    string
	Marker string
}

// Packages is the closed list of detected content packages.
var Packages = []Package{
	{"heavy_cargo", "dlc_heavy_cargo.scs"},
	{"special_transport", "dlc_oversize.scs"},
	{"east", "dlc_east.scs"},
	{"north", "dlc_north.scs"},
	{"fr", "dlc_fr.scs"},
	{"it", "dlc_it.scs"},
	{"balt", "dlc_balt.scs"},
	{"rbs", "dlc_blke.scs"},
	{"iberia", "dlc_iberia.scs"},
	{"wb", "dlc_westbalkans.scs"},
	{"greece", "dlc_greece.scs"},
}

// DlcFlags is a point-in-time snapshot of which packages are installed.
// Base reports whether the installation root itself exists.
type DlcFlags struct {
	Base             bool `json:"base"`
	HeavyCargo       bool `json:"heavy_cargo"`
	SpecialTransport bool `json:"special_transport"`
	East             bool `json:"east"`
	North            bool `json:"north"`
	Fr               bool `json:"fr"`
	It               bool `json:"it"`
	Balt             bool `json:"balt"`
	Rbs              bool `json:"rbs"`
	Iberia           bool `json:"iberia"`
	Wb               bool `json:"wb"`
	Greece           bool `json:"greece"`
}

func (f *DlcFlags) field(key string) *bool {
	switch key {
	case "heavy_cargo":
		return &f.HeavyCargo
	case "special_transport":
		return &f.SpecialTransport
	case "east":
		return &f.East
	case "north":
		return &f.North
	case "fr":
		return &f.Fr
	case "it":
		return &f.It
	case "balt":
		return &f.Balt
	case "rbs":
		return &f.Rbs
	case "iberia":
		return &f.Iberia
	case "wb":
		return &f.Wb
	case "greece":
		return &f.Greece
	}
	return nil
}

// Installed returns the keys of the packages flagged present, in Packages order.
func (f DlcFlags) Installed() []string {
	out := []string{}
	for _, p := range Packages {
		if v := f.field(p.Key); v != nil && *v {
			out = append(out, p.Key)
		}
	}
	return out
}

// Detect checks each package's marker file under <install>/dlc. Any stat
// failure counts as absent. Packages without a DlcFlags field are ignored.
func Detect(install string) DlcFlags {
	flags := DlcFlags{Base: dirExists(install)}
	dlc := filepath.Join(install, ContentDir)
	for _, p := range Packages {
		if v := flags.field(p.Key); v != nil {
			*v = fileExists(filepath.Join(dlc, p.Marker))
		}
	}
	return flags
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
