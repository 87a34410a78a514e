package config

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/emoti/internal/logging"
)

// document is the typed top level of the configuration file. Both blocks are
// kept as raw nodes so their shape can be checked explicitly.
type document struct {
	Mappings yaml.Node `yaml:"mappings"`
	Style    yaml.Node `yaml:"style"`
}

// LoadFile reads and loads the configuration file at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: ErrIO, Path: path, Err: err}
	}

	cfg, err := Load(data)
	if err != nil {
		if cfgErr, ok := err.(*Error); ok {
			cfgErr.Path = path
		}
		return nil, err
	}

	logging.Debug("Loaded config",
		zap.String("path", path),
		zap.Int("mappings", cfg.Len()),
		zap.String("fg_color", cfg.style.FgColor),
		zap.String("size", cfg.style.Size.Name()),
	)

	return cfg, nil
}

// Load parses source into a validated Config.
//
// The mappings and style blocks are required. Mapping entries whose key or
// value is not a string are dropped. An empty mappings block is accepted.
func Load(source []byte) (*Config, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(source, &root); err != nil {
		return nil, &Error{Kind: ErrParse, Err: err}
	}

	// An empty file has no document node at all.
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, &Error{Kind: ErrShape, Field: "mappings"}
	}
	if resolve(root.Content[0]).Kind != yaml.MappingNode {
		return nil, &Error{Kind: ErrShape, Field: "mappings"}
	}

	var doc document
	if err := root.Decode(&doc); err != nil {
		return nil, &Error{Kind: ErrParse, Err: err}
	}

	mappingsNode := resolve(&doc.Mappings)
	if mappingsNode.Kind != yaml.MappingNode {
		return nil, &Error{Kind: ErrShape, Field: "mappings"}
	}
	mappings := decodeMappings(mappingsNode)

	styleNode := resolve(&doc.Style)
	if styleNode.Kind != yaml.MappingNode {
		return nil, &Error{Kind: ErrShape, Field: "style"}
	}
	style, err := ResolveStyle(decodeStyleBlock(styleNode))
	if err != nil {
		return nil, err
	}

	return New(mappings, style), nil
}

// decodeMappings collects the string-to-string pairs of a mapping node in
// document order.
func decodeMappings(node *yaml.Node) []Mapping {
	mappings := make([]Mapping, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := resolve(node.Content[i]), resolve(node.Content[i+1])
		if !isString(k) || !isString(v) {
			logging.Debug("Dropping non-string mapping entry",
				zap.String("key_tag", k.ShortTag()),
				zap.String("value_tag", v.ShortTag()),
				zap.Int("line", k.Line),
			)
			continue
		}
		mappings = append(mappings, Mapping{Key: k.Value, Value: v.Value})
	}
	return mappings
}

// resolve follows alias nodes to their anchor.
func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node == nil {
		return &yaml.Node{}
	}
	return node
}

func isString(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!str"
}

