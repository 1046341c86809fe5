// internal/config/config.go
//
// This package handles configuration and the .technex directory structure.
// Every project that uses technex gets a .technex/ folder created in its
// root, holding the config file, session journals, and exported resumes.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Diveyam-Mishra/Resume-Technex/internal/render"
	"github.com/Diveyam-Mishra/Resume-Technex/internal/resume"
)

// TechnexDir is the name of the directory we create in each project.
const TechnexDir = ".technex"

const defaultProjectConfigYAML = `# technex project configuration
version: 1

# Template used when a session starts. One of: modern, classic, creative.
template:
  default: modern

# Optional wording overrides for the intake questions, keyed by section.
# intake:
#   prompts:
#     name: "First things first — what's your name?"
#     skills: "Which skills should we lead with?"
`

// TemplateConfig captures presentation preferences.
type TemplateConfig struct {
	Default string `yaml:"default"`
}

// IntakeConfig allows rewording the scripted questions without rebuilding.
type IntakeConfig struct {
	Prompts map[string]string `yaml:"prompts,omitempty"`
}

// ProjectConfig models .technex/config.yaml.
type ProjectConfig struct {
	Version  int            `yaml:"version"`
	Template TemplateConfig `yaml:"template"`
	Intake   IntakeConfig   `yaml:"intake,omitempty"`
}

// Config holds the runtime configuration for one project directory.
type Config struct {
	// ProjectDir is the directory the user ran `technex` from.
	ProjectDir string

	// TechnexProjectDir is ProjectDir/.technex.
	TechnexProjectDir string

	Project ProjectConfig
}

// InitTechnexDir creates the .technex directory structure in the given
// project directory. Called on startup before the TUI launches.
//
// Structure created:
// .technex/
// ├── logs/     <- session journals
// └── export/   <- exported plain-text resumes
func InitTechnexDir(projectDir string) error {
	technexDir := filepath.Join(projectDir, TechnexDir)
	dirs := []string{
		filepath.Join(technexDir, "logs"),
		filepath.Join(technexDir, "export"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return ensureProjectConfig(filepath.Join(technexDir, "config.yaml"))
}

// NewConfig creates a Config populated from the project's config file,
// falling back to defaults when the file is absent.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:        projectDir,
		TechnexProjectDir: filepath.Join(projectDir, TechnexDir),
		Project:           defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the journal directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.TechnexProjectDir, "logs")
}

// ExportDir returns the directory exported resumes are written to.
func (c *Config) ExportDir() string {
	return filepath.Join(c.TechnexProjectDir, "export")
}

// ProjectConfigPath returns the on-disk location for the config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.TechnexProjectDir, "config.yaml")
}

// DefaultTemplate returns the configured starting template.
func (c *Config) DefaultTemplate() render.Template {
	t, err := render.ParseTemplate(c.Project.Template.Default)
	if err != nil {
		// validate() rejects unknown ids on load, so this only covers a
		// zero-value Config.
		return render.TemplateModern
	}
	return t
}

// SetDefaultTemplate updates the starting template and persists the value
// back to .technex/config.yaml so the next session opens with it.
func (c *Config) SetDefaultTemplate(id string) error {
	t, err := render.ParseTemplate(id)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Project.Template.Default = t.String()
	return c.saveProjectConfig()
}

// PromptOverrides resolves the configured intake wording, keyed by record
// section.
func (c *Config) PromptOverrides() map[resume.Field]string {
	if len(c.Project.Intake.Prompts) == 0 {
		return nil
	}
	out := make(map[resume.Field]string, len(c.Project.Intake.Prompts))
	for id, text := range c.Project.Intake.Prompts {
		if f, ok := resume.ParseField(id); ok {
			out[f] = text
		}
	}
	return out
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		Template: TemplateConfig{
			Default: render.TemplateModern.String(),
		},
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if strings.TrimSpace(pc.Template.Default) == "" {
		pc.Template.Default = render.TemplateModern.String()
	}
}

func (pc *ProjectConfig) normalize() {
	pc.Template.Default = strings.ToLower(strings.TrimSpace(pc.Template.Default))
	if len(pc.Intake.Prompts) > 0 {
		cleaned := make(map[string]string, len(pc.Intake.Prompts))
		for id, text := range pc.Intake.Prompts {
			id = strings.ToLower(strings.TrimSpace(id))
			if id == "" {
				continue
			}
			cleaned[id] = strings.TrimSpace(text)
		}
		pc.Intake.Prompts = cleaned
	}
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if _, err := render.ParseTemplate(pc.Template.Default); err != nil {
		return fmt.Errorf("template.default: %w", err)
	}
	for id, text := range pc.Intake.Prompts {
		if _, ok := resume.ParseField(id); !ok {
			return fmt.Errorf("intake.prompts[%s]: unknown section", id)
		}
		if text == "" {
			return fmt.Errorf("intake.prompts[%s]: prompt text is required", id)
		}
	}
	return nil
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0o644)
}

func (c *Config) saveProjectConfig() error {
	if c == nil {
		return fmt.Errorf("config: nil receiver")
	}
	c.Project.applyDefaults()
	c.Project.normalize()
	if err := c.Project.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(c.TechnexProjectDir, 0o755); err != nil {
		return fmt.Errorf("config: ensure technex dir: %w", err)
	}
	data, err := yaml.Marshal(c.Project)
	if err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := os.WriteFile(c.ProjectConfigPath(), data, 0o644); err != nil {
		return fmt.Errorf("config: write project config: %w", err)
	}
	return nil
}
