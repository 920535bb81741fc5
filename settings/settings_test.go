package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vstars/odinctl/firmware"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("Load() on missing file: unexpected error %v", err)
	}
	if !s.PreferHomeCSC {
		t.Error("default PreferHomeCSC = false, want true")
	}
	if !s.Flags.Reboot {
		t.Error("default Flags.Reboot = false, want true")
	}
	if s.Flags.NandErase {
		t.Error("default Flags.NandErase = true, want false")
	}
}

func TestLoadCorruptFileReturnsDefaultsAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err == nil {
		t.Fatal("Load() on corrupt file: expected error, got nil")
	}
	if !s.PreferHomeCSC || !s.Flags.Reboot {
		t.Errorf("Load() on corrupt file = %+v, want defaults", s)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "settings.json")

	in := Default()
	in.OdinPath = "/opt/odin4/odin4"
	in.ADBPath = "/usr/bin/adb"
	in.Files = map[string]string{"AP": "/fw/AP_1.tar.md5"}
	in.Flags.NandErase = true
	in.DevicePath = "/dev/bus/usb/001/004"
	in.LastProfileID = "s8-global"

	if err := Save(path, in); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if out.OdinPath != in.OdinPath || out.ADBPath != in.ADBPath {
		t.Errorf("round trip paths = %q/%q, want %q/%q", out.OdinPath, out.ADBPath, in.OdinPath, in.ADBPath)
	}
	if out.Files["AP"] != "/fw/AP_1.tar.md5" {
		t.Errorf("round trip Files[AP] = %q, want %q", out.Files["AP"], "/fw/AP_1.tar.md5")
	}
	if !out.Flags.NandErase || !out.Flags.Reboot {
		t.Errorf("round trip Flags = %+v, want NandErase and Reboot set", out.Flags)
	}
	if out.DevicePath != in.DevicePath || out.LastProfileID != in.LastProfileID {
		t.Errorf("round trip device/profile = %q/%q, want %q/%q",
			out.DevicePath, out.LastProfileID, in.DevicePath, in.LastProfileID)
	}
}

func TestResolvedFilesRoundTrip(t *testing.T) {
	s := Default()
	s.Files["UMS"] = "/fw/ums.bin"

	scan := firmware.ResolvedSet{
		firmware.BL:  "/fw/BL_1.tar.md5",
		firmware.AP:  "/fw/AP_1.tar.md5",
		firmware.CP:  "",
		firmware.CSC: "",
		firmware.UMS: "",
	}
	s.SetResolvedFiles(scan)

	files := s.ResolvedFiles()
	if files[firmware.BL] != "/fw/BL_1.tar.md5" || files[firmware.AP] != "/fw/AP_1.tar.md5" {
		t.Errorf("ResolvedFiles() = %v, want scan results stored", files)
	}
	if files[firmware.UMS] != "/fw/ums.bin" {
		t.Errorf("ResolvedFiles()[UMS] = %q, want manual selection preserved", files[firmware.UMS])
	}
	if files[firmware.CP] != "" {
		t.Errorf("ResolvedFiles()[CP] = %q, want empty", files[firmware.CP])
	}
}

func TestFlashOptions(t *testing.T) {
	s := Default()
	s.Flags = Flags{NandErase: true, Redownload: true}
	s.DevicePath = "/dev/bus/usb/001/004"

	opts := s.FlashOptions()
	if !opts.NandErase || !opts.Redownload || opts.Reboot || opts.HomeValidate {
		t.Errorf("FlashOptions() = %+v, want NandErase and Redownload only", opts)
	}
	if opts.ManualDevice != s.DevicePath {
		t.Errorf("FlashOptions().ManualDevice = %q, want %q", opts.ManualDevice, s.DevicePath)
	}
}
