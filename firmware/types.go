package firmware

// PartKey identifies one named component of a device flashing package.
type PartKey string

// Part keys recognized by the flashing tool.
const (
	BL  PartKey = "BL"
	AP  PartKey = "AP"
	CP  PartKey = "CP"
	CSC PartKey = "CSC"
	UMS PartKey = "UMS"

	// HomeCSC is a resolution-only key. Its pattern participates in CSC
	// resolution, but the key never appears in a ResolvedSet.
	HomeCSC PartKey = "HOME_CSC"
)

// PartOrder is the fixed order in which parts appear in a flash invocation.
var PartOrder = []PartKey{BL, AP, CP, CSC, UMS}

// PatternSet maps part keys (including HomeCSC) to glob-style file name
// patterns, e.g. "AP_*.tar.md5". A missing or empty pattern means the part
// is not resolved by scanning.
type PatternSet map[PartKey]string

// ResolvedSet maps each flashable part key to a file path. Detect always
// populates all five keys; an empty string means the part is unresolved.
type ResolvedSet map[PartKey]string

// Any reports whether at least one part has a resolved path.
func (s ResolvedSet) Any() bool {
	for _, key := range PartOrder {
		if s[key] != "" {
			return true
		}
	}
	return false
}

// DefaultPatterns returns the stock Samsung firmware naming patterns.
func DefaultPatterns() PatternSet {
	return PatternSet{
		BL:      "BL_*.tar.md5",
		AP:      "AP_*.tar.md5",
		CP:      "CP_*.tar.md5",
		CSC:     "CSC_*.tar.md5",
		HomeCSC: "HOME_CSC_*.tar.md5",
	}
}
