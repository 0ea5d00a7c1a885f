package juice

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlConfig mirrors Config with durations written as Go duration
// strings ("150ms", "1s").
type yamlConfig struct {
	X        *float64 `yaml:"x"`
	Y        *float64 `yaml:"y"`
	Alpha    *float64 `yaml:"alpha"`
	ScaleX   *float64 `yaml:"scaleX"`
	ScaleY   *float64 `yaml:"scaleY"`
	Angle    *float64 `yaml:"angle"`
	Duration *string  `yaml:"duration"`
	Yoyo     *bool    `yaml:"yoyo"`
	Repeat   *int     `yaml:"repeat"`
	Ease     *string  `yaml:"ease"`
	Delay    *string  `yaml:"delay"`
	Paused   *bool    `yaml:"paused"`
}

// Parses a YAML document mapping effect kind names to overrides:
//
//	shake:
//	  x: 0
//	  y: 8
//	  duration: 80ms
//	fadeOut:
//	  ease: Quad.easeOut
//
// Keys must be [Kind.String]() names. Unknown fields are ignored.
// Fields written explicitly are kept as present values even if they
// are zero, so [Merge]() treats them exactly like code overrides.
func LoadConfigs(data []byte) (map[Kind]*Config, error) {
	var raw map[string]yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal effect configs: %w", err)
	}

	configs := make(map[Kind]*Config, len(raw))
	for name, entry := range raw {
		kind, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		config, err := entry.toConfig()
		if err != nil {
			return nil, fmt.Errorf("effect %q: %w", name, err)
		}
		configs[kind] = config
	}
	return configs, nil
}

// Same as [LoadConfigs](), but reading the document from a file.
func LoadConfigFile(path string) (map[Kind]*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read effect configs: %w", err)
	}
	return LoadConfigs(data)
}

func (self *yamlConfig) toConfig() (*Config, error) {
	duration, err := parseOptDuration(self.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid duration: %w", err)
	}
	delay, err := parseOptDuration(self.Delay)
	if err != nil {
		return nil, fmt.Errorf("invalid delay: %w", err)
	}

	return &Config{
		X:        self.X,
		Y:        self.Y,
		Alpha:    self.Alpha,
		ScaleX:   self.ScaleX,
		ScaleY:   self.ScaleY,
		Angle:    self.Angle,
		Duration: duration,
		Yoyo:     self.Yoyo,
		Repeat:   self.Repeat,
		Ease:     self.Ease,
		Delay:    delay,
		Paused:   self.Paused,
	}, nil
}

func parseOptDuration(value *string) (*time.Duration, error) {
	if value == nil {
		return nil, nil
	}
	duration, err := time.ParseDuration(*value)
	if err != nil {
		return nil, err
	}
	return &duration, nil
}
