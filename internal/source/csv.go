package source

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"github.com/dshills/gridview/internal/config/loader"
)

func parseCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	// Shape is checked by table.NewGrid so ragged rows report a row index.
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			pe := &loader.ParseError{Message: err.Error(), Err: err}
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				pe.Line = csvErr.Line
				pe.Column = csvErr.Column
				pe.Message = csvErr.Err.Error()
			}
			return nil, pe
		}
		rows = append(rows, rec)
	}

	return rows, nil
}
