package version

// Set via -ldflags at build time.
var (
	AppName   = "Askbot"
	Version   = "dev"
	BuildDate = ""
)
