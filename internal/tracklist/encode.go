package tracklist

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/saegey/pvr-tools/internal/jsonval"
)

// Format selects the export encoding.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// ParseFormat validates an output format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatCSV, FormatJSONL, FormatYAML, FormatTable:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want csv, jsonl, yaml, or table)", name)
}

// Write renders the export in the given format. yamlRoot is the root
// key of YAML output and is ignored by the other formats.
func (e Export) Write(w io.Writer, format Format, yamlRoot string) error {
	slog.Debug("writing export", "format", format, "rows", len(e.Rows), "fields", len(e.Fields))
	switch format {
	case FormatCSV:
		return e.WriteCSV(w)
	case FormatJSONL:
		return e.WriteJSONL(w)
	case FormatYAML:
		return e.WriteYAML(w, yamlRoot)
	case FormatTable:
		return e.WriteTable(w)
	default:
		return fmt.Errorf("unknown output format %q (want csv, jsonl, yaml, or table)", format)
	}
}

// WriteCSV renders the export as CSV with a header row. Composite
// values are JSON-encoded so each field stays one cell wide.
func (e Export) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(e.Fields); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range e.Rows {
		record := make([]string, len(row))
		for i, v := range row {
			cell, err := cellString(v)
			if err != nil {
				return err
			}
			record[i] = cell
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteJSONL renders one compact JSON object per record, members in
// field order.
func (e Export) WriteJSONL(w io.Writer) error {
	for _, row := range e.Rows {
		obj := &jsonval.Object{Members: make([]jsonval.Member, len(row))}
		for i, v := range row {
			obj.Members[i] = jsonval.Member{Key: e.Fields[i], Value: v}
		}
		data, err := jsonval.Marshal(obj)
		if err != nil {
			return fmt.Errorf("failed to encode JSONL record: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return err
		}
	}
	return nil
}

// WriteYAML renders the records as a sequence of mappings under
// rootName.
func (e Export) WriteYAML(w io.Writer, rootName string) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range e.Rows {
		entry := &yaml.Node{Kind: yaml.MappingNode}
		for i, v := range row {
			entry.Content = append(entry.Content, strNode(e.Fields[i]), yamlNode(v))
		}
		seq.Content = append(seq.Content, entry)
	}
	doc := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{strNode(rootName), seq},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// WriteTable renders an aligned table for terminal inspection.
func (e Export) WriteTable(w io.Writer) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(e.Fields))
	for i, f := range e.Fields {
		header[i] = f
	}
	tw.AppendHeader(header)

	for _, row := range e.Rows {
		r := make(table.Row, len(row))
		for i, v := range row {
			cell, err := cellString(v)
			if err != nil {
				return err
			}
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	tw.Render()
	return nil
}

// cellString renders one projected value for a CSV or table cell.
func cellString(v jsonval.Value) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case json.Number:
		return val.String(), nil
	case bool:
		return strconv.FormatBool(val), nil
	default:
		data, err := jsonval.Marshal(val)
		if err != nil {
			return "", fmt.Errorf("failed to encode cell value: %w", err)
		}
		return string(data), nil
	}
}

// yamlNode converts a decoded JSON value into a YAML node, keeping
// member order and scalar types.
func yamlNode(v jsonval.Value) *yaml.Node {
	switch val := v.(type) {
	case string:
		return strNode(val)
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(val.String(), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: val.String()}
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(val)}
	case jsonval.Array:
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, elem := range val {
			node.Content = append(node.Content, yamlNode(elem))
		}
		return node
	case *jsonval.Object:
		node := &yaml.Node{Kind: yaml.MappingNode}
		for _, m := range val.Members {
			node.Content = append(node.Content, strNode(m.Key), yamlNode(m.Value))
		}
		return node
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
