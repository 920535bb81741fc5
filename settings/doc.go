// Package settings persists the last-used flash configuration between runs.
//
// Settings are a flat JSON document read at startup and written at shutdown:
// tool paths, per-part firmware files, option flags, the manual device path,
// the HOME_CSC preference, and the last selected profile. Reading is best
// effort: a missing or corrupt file yields the defaults so a damaged
// settings file never blocks the tool.
package settings
