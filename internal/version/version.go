package version

// Version is overridden at release time via -ldflags "-X".
var Version = "dev"
