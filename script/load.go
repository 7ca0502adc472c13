package script

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScript wraps schema violations found while loading a script document
var ErrInvalidScript = errors.New("invalid script")

//go:embed schema.json
var schemaJSON []byte

var schemaLoader = gojsonschema.NewBytesLoader(schemaJSON)

// utteranceDoc is the mapping form of an utterance in a script file
type utteranceDoc struct {
	Text           string `yaml:"text"`
	ID             string `yaml:"id"`
	InputKind      string `yaml:"input_kind"`
	MaxInputLength *int   `yaml:"max_input_length"`
}

func (d utteranceDoc) utterance() Utterance {
	return Utterance{
		Text:           d.Text,
		ID:             d.ID,
		InputKind:      ParseInputKind(d.InputKind),
		MaxInputLength: d.MaxInputLength,
	}
}

// LoadFile reads and validates a YAML script file
func LoadFile(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script %s: %w", path, err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	return s, nil
}

// Load decodes a YAML script document
// A scalar or mapping yields a single Utterance, a sequence yields a *Story
func Load(r io.Reader) (Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	if err := Validate(data); err != nil {
		return nil, err
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidScript)
	}

	node := root.Content[0]
	if node.Kind == yaml.SequenceNode {
		steps := make([]Utterance, 0, len(node.Content))
		for i, item := range node.Content {
			u, err := decodeUtterance(item)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			steps = append(steps, u)
		}
		return NewStory(steps...), nil
	}

	return decodeUtterance(node)
}

// Validate checks a YAML script document against the embedded schema
func Validate(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode script: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("%w: empty document", ErrInvalidScript)
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s", ErrInvalidScript, strings.Join(msgs, "; "))
	}
	return nil
}

func decodeUtterance(node *yaml.Node) (Utterance, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return Text(node.Value), nil
	case yaml.MappingNode:
		var doc utteranceDoc
		if err := node.Decode(&doc); err != nil {
			return Utterance{}, fmt.Errorf("decode utterance: %w", err)
		}
		return doc.utterance(), nil
	default:
		return Utterance{}, fmt.Errorf("%w: utterance at line %d is neither text nor mapping", ErrInvalidScript, node.Line)
	}
}
