package odin

import (
	"reflect"
	"testing"

	"github.com/kballard/go-shellquote"

	"github.com/vstars/odinctl/firmware"
)

func TestBuildCommand(t *testing.T) {
	tests := []struct {
		name  string
		bin   string
		files firmware.ResolvedSet
		opts  Options
		want  []string
	}{
		{
			name:  "empty binary path yields empty command",
			bin:   "",
			files: firmware.ResolvedSet{firmware.BL: "/x/bl.tar.md5"},
			opts:  Options{NandErase: true, ManualDevice: "/dev/bus/usb/001/002"},
			want:  nil,
		},
		{
			name:  "single part",
			bin:   "/bin/odin4",
			files: firmware.ResolvedSet{firmware.BL: "/x/bl.tar.md5"},
			want:  []string{"/bin/odin4", "-b", "/x/bl.tar.md5"},
		},
		{
			name: "parts emitted in fixed order regardless of map",
			bin:  "/bin/odin4",
			files: firmware.ResolvedSet{
				firmware.UMS: "/x/ums.bin",
				firmware.CSC: "/x/csc.tar.md5",
				firmware.AP:  "/x/ap.tar.md5",
				firmware.CP:  "/x/cp.tar.md5",
				firmware.BL:  "/x/bl.tar.md5",
			},
			want: []string{
				"/bin/odin4",
				"-b", "/x/bl.tar.md5",
				"-a", "/x/ap.tar.md5",
				"-c", "/x/cp.tar.md5",
				"-s", "/x/csc.tar.md5",
				"-u", "/x/ums.bin",
			},
		},
		{
			name: "all option flags in fixed order",
			bin:  "/bin/odin4",
			files: firmware.ResolvedSet{
				firmware.AP: "/x/ap.tar.md5",
			},
			opts: Options{Redownload: true, Reboot: true, HomeValidate: true, NandErase: true},
			want: []string{
				"/bin/odin4",
				"-a", "/x/ap.tar.md5",
				"-e", "-V", "--reboot", "--redownload",
			},
		},
		{
			name:  "listed device appended last",
			bin:   "/bin/odin4",
			files: firmware.ResolvedSet{firmware.AP: "/x/ap.tar.md5"},
			opts:  Options{Reboot: true, ListedDevice: "/dev/bus/usb/001/004"},
			want: []string{
				"/bin/odin4",
				"-a", "/x/ap.tar.md5",
				"--reboot",
				"-d", "/dev/bus/usb/001/004",
			},
		},
		{
			name:  "manual device overrides listed device",
			bin:   "/bin/odin4",
			files: firmware.ResolvedSet{firmware.AP: "/x/ap.tar.md5"},
			opts:  Options{ManualDevice: "/dev/bus/usb/002/001", ListedDevice: "/dev/bus/usb/001/004"},
			want: []string{
				"/bin/odin4",
				"-a", "/x/ap.tar.md5",
				"-d", "/dev/bus/usb/002/001",
			},
		},
		{
			name:  "no device flags when neither selector set",
			bin:   "/bin/odin4",
			files: firmware.ResolvedSet{firmware.AP: "/x/ap.tar.md5"},
			want:  []string{"/bin/odin4", "-a", "/x/ap.tar.md5"},
		},
		{
			name: "no parts still yields binary and options",
			bin:  "/bin/odin4",
			opts: Options{NandErase: true},
			want: []string{"/bin/odin4", "-e"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildCommand(tt.bin, tt.files, tt.opts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildCommand() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildListCommand(t *testing.T) {
	if got := BuildListCommand(""); got != nil {
		t.Errorf("BuildListCommand(\"\") = %v, want nil", got)
	}
	want := []string{"/bin/odin4", "-l"}
	if got := BuildListCommand("/bin/odin4"); !reflect.DeepEqual(got, want) {
		t.Errorf("BuildListCommand() = %v, want %v", got, want)
	}
}

func TestPreviewRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cmd  []string
	}{
		{
			name: "plain tokens",
			cmd:  []string{"/bin/odin4", "-a", "/fw/ap.tar.md5", "--reboot"},
		},
		{
			name: "token with spaces",
			cmd:  []string{"/bin/odin4", "-a", "/mnt/My Firmware/AP_1.tar.md5"},
		},
		{
			name: "token with quote characters",
			cmd:  []string{"/bin/odin4", "-a", `/fw/it's "here".tar.md5`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preview := Preview(tt.cmd)
			back, err := shellquote.Split(preview)
			if err != nil {
				t.Fatalf("splitting preview %q failed: %v", preview, err)
			}
			if !reflect.DeepEqual(back, tt.cmd) {
				t.Errorf("round trip through %q = %v, want %v", preview, back, tt.cmd)
			}
		})
	}
}

func TestParseDeviceList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "two devices",
			raw:  "/dev/bus/usb/001/004\n/dev/bus/usb/001/005\n",
			want: []string{"/dev/bus/usb/001/004", "/dev/bus/usb/001/005"},
		},
		{
			name: "whitespace and blank lines skipped",
			raw:  "\n  /dev/bus/usb/001/004  \n\n",
			want: []string{"/dev/bus/usb/001/004"},
		},
		{
			name: "empty output",
			raw:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDeviceList(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseDeviceList() = %v, want %v", got, tt.want)
			}
		})
	}
}
