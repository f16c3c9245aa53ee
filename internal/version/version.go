// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Reading sessions in the TUI, ingress/station event log, wheel view
// 0.3.0 - Profiles file with live reload, cobra/viper CLI
// 0.2.0 - Keplerian planets, retrograde detection, aspects
// 0.1.0 - Initial release: Sun/Moon longitudes, Ascendant, equal houses
