// Package config provides the configuration loader for relink.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"go.trai.ch/relink/internal/core/domain"
	"go.trai.ch/relink/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

var validProgramNameRegex = regexp.MustCompile("^[a-zA-Z0-9_.-]+$")

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     ports.FileSystem
}

// NewLoader creates a new Loader with the given logger and file system.
func NewLoader(logger ports.Logger, fsys ports.FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load reads the configuration file at path and returns the validated configuration.
// When path is empty, the file is discovered from the current working directory.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to get working directory")
		}
		path, err = l.Discover(cwd)
		if err != nil {
			return nil, err
		}
	}

	var file File
	if err := l.readAndUnmarshalYAML(path, &file); err != nil {
		return nil, err
	}

	return l.build(path, &file)
}

// Discover walks up from cwd and returns the path of the nearest relink.yaml.
func (l *Loader) Discover(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := l.FS.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no "+domain.ConfigFileName+" in any parent directory"), "cwd", cwd)
}

func (l *Loader) readAndUnmarshalYAML(path string, dest any) error {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	if err := yaml.Unmarshal(data, dest); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	return nil
}

func (l *Loader) build(configPath string, file *File) (*domain.Config, error) {
	cfg := &domain.Config{
		DataDir:   resolveDataDir(configPath, file.DataDir),
		FrameRate: file.FrameRate,
		Metrics:   domain.MetricsConfig{Addr: file.Metrics.Addr},
	}

	if cfg.FrameRate == 0 {
		cfg.FrameRate = domain.DefaultFrameRate
	}
	if cfg.FrameRate < 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "frame rate must be positive"), "frame_rate", file.FrameRate)
	}

	interval, err := parseInterval(file.PollInterval, domain.DefaultPollInterval)
	if err != nil {
		return nil, err
	}
	cfg.PollInterval = interval

	logCfg, err := buildLogConfig(configPath, file.Log)
	if err != nil {
		return nil, err
	}
	cfg.Log = logCfg

	if len(file.Programs) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoPrograms, "nothing to watch"), "path", configPath)
	}

	seen := make(map[string]bool, len(file.Programs))
	for i := range file.Programs {
		program, err := l.buildProgram(cfg, &file.Programs[i])
		if err != nil {
			return nil, zerr.With(err, "program_index", i)
		}
		if seen[program.Name] {
			return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateProgram, "program names must be unique"), "program", program.Name)
		}
		seen[program.Name] = true
		cfg.Programs = append(cfg.Programs, program)
	}

	return cfg, nil
}

func (l *Loader) buildProgram(cfg *domain.Config, dto *ProgramDTO) (domain.ProgramConfig, error) {
	name := dto.Name
	if name == "" && dto.Shader != "" {
		name = filepath.Base(dto.Shader)
	}
	if err := validateProgramName(name); err != nil {
		return domain.ProgramConfig{}, err
	}

	files, err := l.resolveFiles(cfg.DataDir, name, dto)
	if err != nil {
		return domain.ProgramConfig{}, err
	}

	interval, err := parseInterval(dto.PollInterval, cfg.PollInterval)
	if err != nil {
		return domain.ProgramConfig{}, zerr.With(err, "program", name)
	}

	geometry, err := buildGeometry(dto)
	if err != nil {
		return domain.ProgramConfig{}, zerr.With(err, "program", name)
	}

	return domain.ProgramConfig{
		Name:         name,
		Files:        files,
		Geometry:     geometry,
		PollInterval: interval,
	}, nil
}

// resolveFiles turns the configured stage paths into paths resolved against the data directory.
// A "shader" base name only includes the geometry stage when <base>.geom exists.
func (l *Loader) resolveFiles(dataDir, name string, dto *ProgramDTO) (domain.ShaderFiles, error) {
	explicit := dto.Vertex != "" || dto.Fragment != "" || dto.Geometry != ""

	switch {
	case dto.Shader != "" && explicit:
		return domain.ShaderFiles{}, zerr.With(
			zerr.Wrap(domain.ErrInvalidConfig, "'shader' cannot be combined with explicit stage paths"),
			"program", name,
		)
	case dto.Shader != "":
		files := domain.ShaderFilesFromName(resolvePath(dataDir, dto.Shader))
		if _, err := l.FS.Stat(files.Geometry); err != nil {
			l.Logger.Debug(fmt.Sprintf("program %s: no geometry stage at %s", name, files.Geometry))
			files.Geometry = ""
		}
		return files, nil
	case dto.Vertex == "" || dto.Fragment == "":
		return domain.ShaderFiles{}, zerr.With(
			zerr.Wrap(domain.ErrInvalidConfig, "vertex and fragment paths are required"),
			"program", name,
		)
	default:
		files := domain.ShaderFiles{
			Vertex:   resolvePath(dataDir, dto.Vertex),
			Fragment: resolvePath(dataDir, dto.Fragment),
		}
		if dto.Geometry != "" {
			files.Geometry = resolvePath(dataDir, dto.Geometry)
		}
		return files, nil
	}
}

func buildGeometry(dto *ProgramDTO) (domain.GeometryConfig, error) {
	geometry := domain.DefaultGeometryConfig()

	if dto.GeometryInput != "" {
		p, err := domain.ParsePrimitive(dto.GeometryInput)
		if err != nil {
			return geometry, err
		}
		geometry.InputType = p
	}

	if dto.GeometryOutput != "" {
		p, err := domain.ParsePrimitive(dto.GeometryOutput)
		if err != nil {
			return geometry, err
		}
		if !p.IsOutput() {
			return geometry, zerr.With(
				zerr.Wrap(domain.ErrInvalidConfig, "geometry output must be points, line_strip or triangle_strip"),
				"primitive", p,
			)
		}
		geometry.OutputType = p
	}

	switch {
	case dto.GeometryOutputCount < 0:
		return geometry, zerr.With(
			zerr.Wrap(domain.ErrInvalidConfig, "geometry output count must not be negative"),
			"geometry_output_count", dto.GeometryOutputCount,
		)
	case dto.GeometryOutputCount > 0:
		geometry.OutputCount = dto.GeometryOutputCount
	}

	return geometry, nil
}

func buildLogConfig(configPath string, dto LogDTO) (domain.LogConfig, error) {
	level, err := domain.ParseLogLevel(dto.Level)
	if err != nil {
		return domain.LogConfig{}, err
	}

	logCfg := domain.LogConfig{
		Level:      level,
		JSON:       dto.JSON,
		MaxSizeMB:  dto.MaxSizeMB,
		MaxBackups: dto.MaxBackups,
		MaxAgeDays: dto.MaxAgeDays,
	}
	if dto.File != "" {
		logCfg.File = resolvePath(filepath.Dir(configPath), dto.File)
	}

	return logCfg, nil
}

func parseInterval(value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "invalid poll interval"), "value", value)
	}
	if d <= 0 {
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidPollInterval, "invalid poll interval"), "value", value)
	}

	return d, nil
}

func validateProgramName(name string) error {
	if name == "" {
		return zerr.Wrap(domain.ErrInvalidConfig, "program name is required")
	}
	if !validProgramNameRegex.MatchString(name) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "invalid program name"), "program", name)
	}
	return nil
}

// resolveDataDir resolves the data directory relative to the directory containing the config file.
func resolveDataDir(configPath, dataDir string) string {
	return resolvePath(filepath.Dir(configPath), dataDir)
}

func resolvePath(base, path string) string {
	if path == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
