package version

// Version is the application version, overridden at build time via
// -ldflags "-X .../internal/version.Version=...".
var Version = "dev"
