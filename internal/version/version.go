package version

// Version is the application version, overridden at build time via
// -ldflags "-X github.com/iagocanalejas/richjet/internal/version.Version=...".
var Version = "dev"
