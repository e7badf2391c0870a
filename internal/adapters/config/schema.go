package config

// File represents the structure of the relink.yaml configuration file.
type File struct {
	Version      string       `yaml:"version"`
	DataDir      string       `yaml:"dataDir"`
	FrameRate    int          `yaml:"frameRate"`
	PollInterval string       `yaml:"pollInterval"`
	Log          LogDTO       `yaml:"log"`
	Metrics      MetricsDTO   `yaml:"metrics"`
	Programs     []ProgramDTO `yaml:"programs"`
}

// LogDTO represents the logging section.
type LogDTO struct {
	Level      string `yaml:"level"`
	JSON       bool   `yaml:"json"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
}

// MetricsDTO represents the metrics section.
type MetricsDTO struct {
	Addr string `yaml:"addr"`
}

// ProgramDTO represents one shader program definition.
// Either Shader or the explicit stage paths are set, never both.
type ProgramDTO struct {
	Name                string `yaml:"name"`
	Shader              string `yaml:"shader"`
	Vertex              string `yaml:"vertex"`
	Fragment            string `yaml:"fragment"`
	Geometry            string `yaml:"geometry"`
	PollInterval        string `yaml:"pollInterval"`
	GeometryInput       string `yaml:"geometryInput"`
	GeometryOutput      string `yaml:"geometryOutput"`
	GeometryOutputCount int    `yaml:"geometryOutputCount"`
}
