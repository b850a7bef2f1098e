package source

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("invalid JSON")

func parseJSON(data []byte) ([][]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, errInvalidJSON
	}

	doc := gjson.ParseBytes(data)
	if doc.IsObject() {
		doc = doc.Get(rowsKey)
	}
	if !doc.IsArray() {
		return nil, ErrBadShape
	}

	var (
		rows [][]string
		err  error
	)
	doc.ForEach(func(_, row gjson.Result) bool {
		if !row.IsArray() {
			err = fmt.Errorf("row %d: %w", len(rows), ErrBadShape)
			return false
		}
		cells := make([]string, 0, len(row.Array()))
		for _, cell := range row.Array() {
			cells = append(cells, jsonScalar(cell))
		}
		rows = append(rows, cells)
		return true
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// jsonScalar renders a cell. Strings are unquoted, null is empty, and
// numbers and nested values keep their raw text.
func jsonScalar(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.String()
	case gjson.Null:
		return ""
	default:
		return v.Raw
	}
}
