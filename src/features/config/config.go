package config

// Config holds the application configuration.
type Config struct {
	Rules   Rules   `yaml:"rules"`
	Logger  Logger  `yaml:"logger"`
	Metrics Metrics `yaml:"metrics"`
}

// Rules holds the naming grammar used to parse and format names.
type Rules struct {
	PartDigits PartDigits `yaml:"part_digits"`
	DateFormat string     `yaml:"date_format" validate:"oneof=yyyy yyyy-MM yyyy-MM-dd yyyy-MM-ddTHH yyyy-MM-ddTHH-mm yyyy-MM-ddTHH-mm-ss"`
	Delimiters Delimiters `yaml:"delimiters"`
}

// PartDigits is the zero-padded width of each part level.
type PartDigits struct {
	Top    int `yaml:"top" validate:"min=1,max=9"`
	Mid    int `yaml:"mid" validate:"min=1,max=9"`
	Bottom int `yaml:"bottom" validate:"min=1,max=9"`
}

// Delimiters are single printable ASCII characters.
type Delimiters struct {
	Part           string `yaml:"part" validate:"len=1,printascii"`
	TimeUnit       string `yaml:"time_unit" validate:"len=1,printascii"`
	DateTime       string `yaml:"date_time" validate:"len=1,printascii"`
	AttributeStart string `yaml:"attribute_start" validate:"len=1,printascii"`
	AttributeEnd   string `yaml:"attribute_end" validate:"len=1,printascii"`
	Attribute      string `yaml:"attribute" validate:"len=1,printascii"`
	Title          string `yaml:"title" validate:"len=1,printascii"`
	Suffix         string `yaml:"suffix" validate:"len=1,printascii"`
}

// Logger holds the configuration for the app logging
type Logger struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level" validate:"oneof=debug info warn error"`
	Format  string `yaml:"format" validate:"oneof=json text logfmt"`
}

// Metrics toggles the parse counters.
type Metrics struct {
	Enabled bool `yaml:"enabled"`
}
