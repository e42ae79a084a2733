package swiftmt

import (
	"fmt"
	"os"

	"github.com/deltran/swiftmt/internal/telemetry"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Fixture is one corpus entry: a named wire message plus the validation
// codes it is expected to produce. Corpora drive the round-trip and
// NVR-batch tests and give integrators a declarative way to run their own
// regression payloads through the parser.
type Fixture struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	MessageType string   `yaml:"message_type"`
	Wire        string   `yaml:"wire"`
	WantCodes   []string `yaml:"want_codes,omitempty"`
}

// Corpus is a YAML manifest of fixtures.
type Corpus struct {
	Fixtures []Fixture `yaml:"fixtures"`
}

// LoadCorpus reads a YAML fixture manifest from path. A nil logger is
// replaced with a no-op one.
func LoadCorpus(path string, logger *zap.Logger) (*Corpus, error) {
	logger = telemetry.OrNoop(logger)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: read %s: %w", path, err)
	}
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("corpus: parse %s: %w", path, err)
	}
	for i, f := range c.Fixtures {
		if f.Name == "" {
			return nil, fmt.Errorf("corpus: fixture %d in %s has no name", i, path)
		}
		if f.Wire == "" {
			return nil, fmt.Errorf("corpus: fixture %q has no wire payload", f.Name)
		}
	}
	logger.Debug("corpus loaded",
		zap.String("path", path),
		zap.Int("fixtures", len(c.Fixtures)))
	return &c, nil
}
