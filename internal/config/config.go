// Package config loads pkg/settings.Settings overrides from a project-wide
// YAML file (a `.gdcstrc.yaml`) rather than only from command-line flags.
// This does not change the engine's "settings passed in, nothing global"
// discipline — it is purely a way for the CLI to materialize a
// settings.Option slice from a file before calling into pkg/gdparse.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/gdcst/pkg/settings"
)

// File is the on-disk shape of a `.gdcstrc.yaml`. All fields are pointers
// so that an absent key leaves the corresponding settings.Default() value
// untouched.
type File struct {
	MaxReadingStack           *int  `yaml:"max_reading_stack"`
	CancellationCheckInterval *int  `yaml:"cancellation_check_interval"`
	TabVisualWidth            *int  `yaml:"tab_visual_width"`
	InfiniteLoopGuard         *bool `yaml:"infinite_loop_guard"`
}

// Load reads and parses a YAML config file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &f, nil
}

// Options converts the loaded file into settings.Option values layered on
// top of settings.Default() by the caller.
func (f *File) Options() []settings.Option {
	if f == nil {
		return nil
	}
	var opts []settings.Option
	if f.MaxReadingStack != nil {
		opts = append(opts, settings.WithMaxReadingStack(*f.MaxReadingStack))
	}
	if f.CancellationCheckInterval != nil {
		opts = append(opts, settings.WithCancellationCheckInterval(*f.CancellationCheckInterval))
	}
	if f.TabVisualWidth != nil {
		opts = append(opts, settings.WithTabVisualWidth(*f.TabVisualWidth))
	}
	if f.InfiniteLoopGuard != nil {
		opts = append(opts, settings.WithInfiniteLoopGuard(*f.InfiniteLoopGuard))
	}
	return opts
}
