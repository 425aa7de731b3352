package application

import (
	"bytes"
	_ "embed"
	"io"
	"maps"

	"gopkg.in/yaml.v2"
)

//go:embed labels.yaml
var defaultLabels []byte

// Labels maps coded fields to the display labels of their codes.
type Labels map[string]map[string]string

type labelConfig struct {
	Labels Labels `yaml:"labels"`
}

func LoadLabels(r io.Reader) (Labels, error) {
	c := labelConfig{}
	err := yaml.NewDecoder(r).Decode(&c)
	if err != nil {
		return nil, err
	}

	if c.Labels == nil {
		return Labels{}, nil
	}

	return c.Labels, nil
}

func DefaultLabels() Labels {
	l, err := LoadLabels(bytes.NewReader(defaultLabels))
	if err != nil {
		panic(err)
	}
	return l
}

// For returns the labels of a field, never nil.
func (l Labels) For(field string) map[string]string {
	if m, ok := l[field]; ok && m != nil {
		return m
	}
	return map[string]string{}
}

// Merge returns a copy of l with the labels of other added on top.
func (l Labels) Merge(other Labels) Labels {
	merged := make(Labels, len(l))
	for field, codes := range l {
		merged[field] = maps.Clone(codes)
	}

	for field, codes := range other {
		if merged[field] == nil {
			merged[field] = map[string]string{}
		}
		maps.Copy(merged[field], codes)
	}

	return merged
}
