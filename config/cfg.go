package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	CanvasConfig struct {
		Width      int  `yaml:"width" validate:"min=1,max=32768"`
		Height     int  `yaml:"height" validate:"min=1,max=32768"`
		Background RGBA `yaml:"background"`
	}

	FontConfig struct {
		Path  string `yaml:"path"`
		Color RGBA   `yaml:"color"`
	}

	SideConfig struct {
		Size    int      `yaml:"size" validate:"min=1"`
		X       int      `yaml:"x"`
		Y       int      `yaml:"y"`
		Spacing int      `yaml:"spacing" validate:"gte=0"`
		CSV     string   `yaml:"csv" sanitize:"assure_file_access"`
		Lines   []string `yaml:"lines"`
	}

	EndConfig struct {
		Size            int      `yaml:"size" validate:"min=1"`
		X               int      `yaml:"x"`
		Y               int      `yaml:"y"`
		Spacing         int      `yaml:"spacing" validate:"gte=0"`
		InnerGap        int      `yaml:"inner_gap" validate:"gte=0"`
		Inline          Flag     `yaml:"inline"`
		InlineGapFactor float64  `yaml:"inline_gap_factor" validate:"gte=0.0"`
		CSV             string   `yaml:"csv" sanitize:"assure_file_access"`
		Lines           EndLines `yaml:"lines"`
	}

	BBoxesConfig struct {
		Draw    Flag `yaml:"draw"`
		Log     Flag `yaml:"log"`
		Padding *int `yaml:"padding,omitempty" validate:"omitempty,gte=0"`
	}

	OutputConfig struct {
		Path        string `yaml:"path" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required"`
		JPEGQuality int    `yaml:"jpeg_quality" validate:"min=40,max=100"`
		DPI         int    `yaml:"dpi" validate:"gte=0,max=32767"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Canvas    CanvasConfig   `yaml:"canvas"`
		Font      FontConfig     `yaml:"font"`
		Side      SideConfig     `yaml:"side"`
		End       EndConfig      `yaml:"end"`
		BBoxes    BBoxesConfig   `yaml:"bboxes"`
		Output    OutputConfig   `yaml:"output"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
//
// NOTE: lists are replaced, not merged - specifying end lines in configuration
// file drops all default end lines, "lines: []" leaves none.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
