package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/fwojciec/urth"
	"github.com/goccy/go-yaml"
)

// Profile is a reusable set of convert settings loaded with --config.
//
//	sentinel: zoetic
//	mode: stream
//	delimiter: "@@@"
//	output_format: xdxf
//	plural: true
type Profile struct {
	urth.Config `yaml:",inline"`

	Mode         string `yaml:"mode"`
	Marker       string `yaml:"marker"`
	Container    string `yaml:"container"`
	OutputFormat string `yaml:"output_format"`
	Plural       bool   `yaml:"plural"`
	Readability  bool   `yaml:"readability"`

	Title       string `yaml:"title"`
	Author      string `yaml:"author"`
	Description string `yaml:"description"`
}

// LoadProfile reads a YAML profile from path.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, urth.Errorf(urth.ENOTFOUND, "config file not found: %s", path)
	} else if err != nil {
		return nil, err
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, urth.Errorf(urth.EINVALID, "invalid config file %s: %v", path, err)
	}
	if p.Format != "" {
		f, err := urth.ParseDefinitionFormat(string(p.Format))
		if err != nil {
			return nil, err
		}
		p.Format = f
	}
	if err := p.Config.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
