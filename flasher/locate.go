package flasher

import (
	"os"
	"os/exec"
	"path/filepath"
)

// LocateOdin returns a best-guess path to the odin4 binary: next to the
// running executable first, then on PATH. Returns "" when neither exists.
func LocateOdin() string {
	return locate("odin4")
}

// LocateADB returns a best-guess path to the adb binary: next to the running
// executable first, then on PATH. Returns "" when neither exists.
func LocateADB() string {
	return locate("adb")
}

func locate(name string) string {
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	if path, err := exec.LookPath(name); err == nil {
		return path
	}
	return ""
}
