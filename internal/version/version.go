package version

// Version is overridden at build time with -ldflags "-X napoop/internal/version.Version=...".
var Version = "dev"
