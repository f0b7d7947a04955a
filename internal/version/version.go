package version

import "runtime/debug"

// String reports the module version, falling back to the vcs revision for
// source builds.
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(devel)"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) >= 12 {
			return "(devel " + setting.Value[:12] + ")"
		}
	}
	return "(devel)"
}
