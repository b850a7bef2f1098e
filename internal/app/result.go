package app

import (
	"os"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Result is the cell the user confirmed.
type Result struct {
	Row   int
	Col   int
	Value string
}

// JSON encodes the result as {"row":..,"col":..,"value":..}, indented.
func (r Result) JSON() ([]byte, error) {
	doc := []byte(`{}`)
	var err error
	for _, field := range []struct {
		path  string
		value any
	}{
		{"row", r.Row},
		{"col", r.Col},
		{"value", r.Value},
	} {
		doc, err = sjson.SetBytes(doc, field.path, field.value)
		if err != nil {
			return nil, err
		}
	}
	return pretty.Pretty(doc), nil
}

// writeResult writes the confirmed selection to Options.OutputPath.
func (app *Application) writeResult() error {
	if app.opts.OutputPath == "" || app.result == nil {
		return nil
	}

	data, err := app.result.JSON()
	if err != nil {
		return NewOperationError("encode result", app.opts.OutputPath, err)
	}
	if err := os.WriteFile(app.opts.OutputPath, data, 0o644); err != nil {
		return NewOperationError("write result", app.opts.OutputPath, err)
	}
	app.logger.Info("wrote result to %s", app.opts.OutputPath)
	return nil
}
