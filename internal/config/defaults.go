package config

const (
	defaultLogLevel         = "info"
	defaultLogFormat        = "console"
	defaultSidecarExtension = ".pdfpc"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Paths: Paths{
			SidecarExtension: defaultSidecarExtension,
		},
	}
}
