package config

const (
	defaultBackupSuffix = ""
	defaultPadding      = 4096
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Save: Save{
			BackupSuffix: defaultBackupSuffix,
			Padding:      defaultPadding,
		},
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}
