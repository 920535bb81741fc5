package firmware

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFixtures creates empty files with the given names in a fresh temp dir.
func writeFixtures(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("failed to create fixture %s: %v", name, err)
		}
	}
	return dir
}

func TestFindFirstMatch(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		pattern  string
		want     string
		wantFind bool
	}{
		{
			name:     "single match",
			files:    []string{"AP_G950FXXU1AQC9.tar.md5", "readme.txt"},
			pattern:  "AP_*.tar.md5",
			want:     "AP_G950FXXU1AQC9.tar.md5",
			wantFind: true,
		},
		{
			name:     "multiple matches returns lexicographically smallest",
			files:    []string{"AP_2.tar.md5", "AP_1.tar.md5"},
			pattern:  "AP_*.tar.md5",
			want:     "AP_1.tar.md5",
			wantFind: true,
		},
		{
			name:     "no match",
			files:    []string{"CP_1.tar.md5"},
			pattern:  "AP_*.tar.md5",
			wantFind: false,
		},
		{
			name:     "empty pattern",
			files:    []string{"AP_1.tar.md5"},
			pattern:  "",
			wantFind: false,
		},
		{
			name:     "malformed pattern",
			files:    []string{"AP_1.tar.md5"},
			pattern:  "AP_[",
			wantFind: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeFixtures(t, tt.files...)
			got, found := FindFirstMatch(dir, tt.pattern)

			if found != tt.wantFind {
				t.Fatalf("FindFirstMatch() found = %v, want %v", found, tt.wantFind)
			}
			if !tt.wantFind {
				if got != "" {
					t.Errorf("FindFirstMatch() = %q, want empty path on no match", got)
				}
				return
			}
			if want := filepath.Join(dir, tt.want); got != want {
				t.Errorf("FindFirstMatch() = %q, want %q", got, want)
			}
		})
	}
}

func TestFindFirstMatchMissingDirectory(t *testing.T) {
	got, found := FindFirstMatch("/nonexistent/firmware/folder", "AP_*.tar.md5")
	if found || got != "" {
		t.Errorf("FindFirstMatch() on missing directory = (%q, %v), want (\"\", false)", got, found)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name          string
		files         []string
		preferHomeCSC bool
		want          map[PartKey]string // expected file names, "" for unresolved
	}{
		{
			name:          "full set prefers HOME_CSC",
			files:         []string{"BL_1.tar.md5", "AP_1.tar.md5", "CP_1.tar.md5", "CSC_1.tar.md5", "HOME_CSC_1.tar.md5"},
			preferHomeCSC: true,
			want: map[PartKey]string{
				BL:  "BL_1.tar.md5",
				AP:  "AP_1.tar.md5",
				CP:  "CP_1.tar.md5",
				CSC: "HOME_CSC_1.tar.md5",
				UMS: "",
			},
		},
		{
			name:          "full set without HOME_CSC preference",
			files:         []string{"BL_1.tar.md5", "AP_1.tar.md5", "CP_1.tar.md5", "CSC_1.tar.md5", "HOME_CSC_1.tar.md5"},
			preferHomeCSC: false,
			want: map[PartKey]string{
				BL:  "BL_1.tar.md5",
				AP:  "AP_1.tar.md5",
				CP:  "CP_1.tar.md5",
				CSC: "CSC_1.tar.md5",
				UMS: "",
			},
		},
		{
			name:          "only plain CSC present, preference has no effect",
			files:         []string{"CSC_1.tar.md5"},
			preferHomeCSC: true,
			want: map[PartKey]string{
				BL:  "",
				AP:  "",
				CP:  "",
				CSC: "CSC_1.tar.md5",
				UMS: "",
			},
		},
		{
			name:          "only HOME_CSC present without preference leaves CSC empty",
			files:         []string{"HOME_CSC_1.tar.md5"},
			preferHomeCSC: false,
			want: map[PartKey]string{
				BL:  "",
				AP:  "",
				CP:  "",
				CSC: "",
				UMS: "",
			},
		},
		{
			name:          "empty directory",
			files:         nil,
			preferHomeCSC: true,
			want: map[PartKey]string{
				BL:  "",
				AP:  "",
				CP:  "",
				CSC: "",
				UMS: "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeFixtures(t, tt.files...)
			got := Detect(dir, DefaultPatterns(), tt.preferHomeCSC)

			if len(got) != len(PartOrder) {
				t.Fatalf("Detect() returned %d keys, want %d", len(got), len(PartOrder))
			}
			if _, ok := got[HomeCSC]; ok {
				t.Error("Detect() result contains HOME_CSC key, want it folded into CSC")
			}
			for key, wantName := range tt.want {
				want := ""
				if wantName != "" {
					want = filepath.Join(dir, wantName)
				}
				if got[key] != want {
					t.Errorf("Detect()[%s] = %q, want %q", key, got[key], want)
				}
			}
		})
	}
}

func TestDetectIdempotent(t *testing.T) {
	dir := writeFixtures(t, "AP_1.tar.md5", "CSC_1.tar.md5", "HOME_CSC_1.tar.md5")

	first := Detect(dir, DefaultPatterns(), true)
	second := Detect(dir, DefaultPatterns(), true)

	for _, key := range PartOrder {
		if first[key] != second[key] {
			t.Errorf("Detect() not idempotent for %s: %q vs %q", key, first[key], second[key])
		}
	}
}

func TestResolvedSetAny(t *testing.T) {
	empty := ResolvedSet{BL: "", AP: "", CP: "", CSC: "", UMS: ""}
	if empty.Any() {
		t.Error("Any() = true for all-empty set, want false")
	}

	one := ResolvedSet{BL: "", AP: "/fw/AP_1.tar.md5", CP: "", CSC: "", UMS: ""}
	if !one.Any() {
		t.Error("Any() = false with one resolved part, want true")
	}
}
