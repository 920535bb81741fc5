package firmware

import (
	"os"
	"path/filepath"
)

// FindFirstMatch returns the path of the lexicographically first entry in
// dir whose name matches the glob pattern. The scan is non-recursive.
//
// Absence is not an error: an empty pattern, a missing or unreadable
// directory, a malformed pattern, and zero matches all return ("", false).
func FindFirstMatch(dir, pattern string) (string, bool) {
	if pattern == "" {
		return "", false
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	// ReadDir returns entries sorted by name, so the first match is the
	// lexicographically smallest one.
	for _, entry := range entries {
		ok, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return "", false
		}
		if ok {
			return filepath.Join(dir, entry.Name()), true
		}
	}

	return "", false
}

// Detect scans dir for firmware parts using the given patterns and returns
// a fresh ResolvedSet with all five flashable keys populated.
//
// BL, AP and CP resolve directly from their patterns. CSC resolves from both
// the CSC and HomeCSC patterns: when preferHomeCSC is set and a HOME_CSC
// file matches, it takes the CSC slot, otherwise the plain CSC match is used.
// UMS is never resolved by scanning and stays empty for manual selection.
//
// Detect is idempotent and side-effect-free: repeated calls on an unchanged
// directory produce identical results.
func Detect(dir string, patterns PatternSet, preferHomeCSC bool) ResolvedSet {
	resolved := make(ResolvedSet, len(PartOrder))
	for _, key := range PartOrder {
		resolved[key] = ""
	}

	for _, key := range []PartKey{BL, AP, CP} {
		if path, ok := FindFirstMatch(dir, patterns[key]); ok {
			resolved[key] = path
		}
	}

	csc, _ := FindFirstMatch(dir, patterns[CSC])
	homeCSC, hasHomeCSC := FindFirstMatch(dir, patterns[HomeCSC])
	if preferHomeCSC && hasHomeCSC {
		resolved[CSC] = homeCSC
	} else {
		resolved[CSC] = csc
	}

	return resolved
}
