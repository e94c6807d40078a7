package spellkit

import (
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk/host-supplied shape of an engine configuration
// (§6 Configuration), resolved to file paths rather than already-parsed
// tuples — the layer above the core Load contract. It can be loaded from a
// YAML file (LoadFileConfig) or decoded from a generic map a host config
// system already parsed (DecodeFileConfig).
type FileConfig struct {
	DictionaryPath     string            `yaml:"dictionary_path" mapstructure:"dictionary_path"`
	ProtectedTermsPath string            `yaml:"protected_terms_path" mapstructure:"protected_terms_path"`
	ManifestPath       string            `yaml:"manifest_path" mapstructure:"manifest_path"`
	EditDistance       int               `yaml:"edit_distance" mapstructure:"edit_distance"`
	FrequencyThreshold float64           `yaml:"frequency_threshold" mapstructure:"frequency_threshold"`
	ProtectedPatterns  []FilePatternSpec `yaml:"protected_patterns" mapstructure:"protected_patterns"`
}

// FilePatternSpec mirrors PatternSpec in a form that decodes cleanly from
// YAML or a generic map.
type FilePatternSpec struct {
	Source           string `yaml:"source" mapstructure:"source"`
	CaseInsensitive  bool   `yaml:"case_insensitive" mapstructure:"case_insensitive"`
	MultiLine        bool   `yaml:"multi_line" mapstructure:"multi_line"`
	IgnoreWhitespace bool   `yaml:"ignore_whitespace" mapstructure:"ignore_whitespace"`
}

// LoadFileConfig reads and parses a YAML engine-config file.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newLoadError(KindNotFound, path, err)
		}
		return nil, newLoadError(KindSourceUnavailable, path, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, newLoadError(KindParse, path, err)
	}

	return &cfg, nil
}

// DecodeFileConfig decodes a generic map (e.g. a fragment of a larger host
// application's already-parsed configuration) into a FileConfig using
// mapstructure, the decoding library the teacher package itself depends on.
func DecodeFileConfig(raw map[string]interface{}) (*FileConfig, error) {
	var cfg FileConfig
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return nil, newLoadError(KindParse, "", err)
	}
	return &cfg, nil
}

// toPatternSpecs converts the YAML/map-friendly pattern specs to the
// PatternSpec values ProtectedPatterns expects.
func (c *FileConfig) toPatternSpecs() []PatternSpec {
	specs := make([]PatternSpec, len(c.ProtectedPatterns))
	for i, p := range c.ProtectedPatterns {
		specs[i] = PatternSpec{
			Source:           p.Source,
			CaseInsensitive:  p.CaseInsensitive,
			MultiLine:        p.MultiLine,
			IgnoreWhitespace: p.IgnoreWhitespace,
		}
	}
	return specs
}

// LoadEngine reads the dictionary, optional protected-terms file, and
// optional manifest named by cfg, and loads them into e. This is the
// file-path convenience wrapper around Engine.Load; the core Load call
// itself only ever sees parsed tuples, matching §1's framing of dictionary
// file I/O as glue around the core.
func LoadEngine(e *Engine, cfg *FileConfig) error {
	entries, err := LoadDictionaryFile(cfg.DictionaryPath)
	if err != nil {
		return err
	}

	opts := []LoadOption{}

	if cfg.EditDistance != 0 {
		opts = append(opts, EditDistance(cfg.EditDistance))
	}
	if cfg.FrequencyThreshold != 0 {
		opts = append(opts, FrequencyThreshold(cfg.FrequencyThreshold))
	}
	if len(cfg.ProtectedPatterns) > 0 {
		opts = append(opts, ProtectedPatterns(cfg.toPatternSpecs()))
	}

	if cfg.ProtectedTermsPath != "" {
		lines, err := LoadProtectedTermsFile(cfg.ProtectedTermsPath)
		if err != nil {
			return err
		}
		opts = append(opts, ProtectedTerms(lines))
	}

	if cfg.ManifestPath != "" {
		data, err := os.ReadFile(cfg.ManifestPath)
		if err != nil {
			return newLoadError(KindSourceUnavailable, cfg.ManifestPath, err)
		}
		opts = append(opts, Manifest(data))
	}

	return e.Load(entries, opts...)
}
