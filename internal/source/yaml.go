package source

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dshills/gridview/internal/config/loader"
)

func parseYAML(data []byte) ([][]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &loader.ParseError{Message: err.Error(), Err: err}
	}
	if doc.Kind == 0 {
		return nil, nil
	}

	node := &doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind == yaml.MappingNode {
		node = mappingValue(node, rowsKey)
		if node == nil {
			return nil, ErrBadShape
		}
	}
	if node.Kind != yaml.SequenceNode {
		return nil, ErrBadShape
	}

	rows := make([][]string, 0, len(node.Content))
	for i, row := range node.Content {
		if row.Kind != yaml.SequenceNode {
			return nil, &loader.ParseError{
				Line:    row.Line,
				Column:  row.Column,
				Message: fmt.Sprintf("row %d: %v", i, ErrBadShape),
				Err:     ErrBadShape,
			}
		}
		cells := make([]string, 0, len(row.Content))
		for _, cell := range row.Content {
			if cell.Kind != yaml.ScalarNode {
				return nil, &loader.ParseError{
					Line:    cell.Line,
					Column:  cell.Column,
					Message: fmt.Sprintf("row %d: cells must be scalars", i),
					Err:     ErrBadShape,
				}
			}
			if cell.Tag == "!!null" {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, cell.Value)
		}
		rows = append(rows, cells)
	}

	return rows, nil
}

// mappingValue returns the value node for key in a mapping node.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}
