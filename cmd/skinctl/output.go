package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/unifiedui/docskin/internal/pkg/extjson"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// printer renders values as relaxed Extended JSON or as YAML converted from
// it, so ObjectIDs and dates look the same in both formats.
type printer struct {
	w      io.Writer
	format string
	yaml   *yaml.Encoder
}

func newPrinter(w io.Writer, format string) (*printer, error) {
	switch format {
	case formatJSON, formatYAML:
		return &printer{w: w, format: format}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (want json or yaml)", format)
	}
}

// print writes one value. Documents keep their field order.
func (p *printer) print(v interface{}) error {
	raw, err := extjson.MarshalValue(v)
	if err != nil {
		return err
	}
	return p.write(raw, true)
}

// printLine writes one value per line for streams: compact JSON lines, or
// YAML documents separated by "---".
func (p *printer) printLine(v interface{}) error {
	raw, err := extjson.MarshalValue(v)
	if err != nil {
		return err
	}
	return p.write(raw, false)
}

func (p *printer) write(raw json.RawMessage, indent bool) error {
	if p.format == formatYAML {
		if err := p.writeYAML(raw); err != nil {
			return err
		}
		if indent {
			return p.flush()
		}
		return nil
	}

	var buf bytes.Buffer
	if indent {
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return err
		}
	} else {
		buf.Write(raw)
	}
	buf.WriteByte('\n')
	_, err := p.w.Write(buf.Bytes())
	return err
}

// writeYAML parses the JSON as YAML (JSON is valid YAML), which keeps key
// order, and re-emits it in block style.
func (p *printer) writeYAML(raw json.RawMessage) error {
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return fmt.Errorf("failed to convert to yaml: %w", err)
	}
	blockStyle(&node)

	if p.yaml == nil {
		p.yaml = yaml.NewEncoder(p.w)
		p.yaml.SetIndent(2)
	}
	return p.yaml.Encode(&node)
}

// flush terminates a YAML stream. JSON output needs no flushing.
func (p *printer) flush() error {
	if p.yaml == nil {
		return nil
	}
	err := p.yaml.Close()
	p.yaml = nil
	return err
}

func blockStyle(n *yaml.Node) {
	switch n.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		n.Style = 0
	case yaml.ScalarNode:
		// the encoder re-quotes strings that would otherwise change type
		n.Style &^= yaml.DoubleQuotedStyle
	}
	for _, child := range n.Content {
		blockStyle(child)
	}
}
