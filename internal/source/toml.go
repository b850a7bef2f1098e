package source

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/gridview/internal/config/loader"
)

func parseTOML(data []byte) ([][]string, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, loader.NewTOMLParseError("", err)
	}

	raw, ok := doc[rowsKey]
	if !ok {
		return nil, ErrBadShape
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, ErrBadShape
	}

	rows := make([][]string, 0, len(list))
	for i, r := range list {
		cellsRaw, ok := r.([]any)
		if !ok {
			return nil, fmt.Errorf("row %d: %w", i, ErrBadShape)
		}
		cells := make([]string, 0, len(cellsRaw))
		for _, c := range cellsRaw {
			s, err := tomlScalar(c)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			cells = append(cells, s)
		}
		rows = append(rows, cells)
	}

	return rows, nil
}

// tomlScalar renders a decoded TOML value as cell text.
func tomlScalar(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	case time.Time:
		return x.Format(time.RFC3339), nil
	case toml.LocalDate, toml.LocalTime, toml.LocalDateTime:
		return fmt.Sprint(x), nil
	default:
		return "", fmt.Errorf("cells must be scalars, got %T", v)
	}
}
