package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Carrelage-api/internal/application/dto"
)

const columns = 5 // stock_id;quality;available;reserved;threshold

// decodeReader envuelve r con el decodificador del encoding pedido ("latin1" o "utf8").
func decodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "latin1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "cp1252", "windows-1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	case "utf8", "utf-8":
		return r, nil
	default:
		return nil, fmt.Errorf("encoding no soportado: %s", encoding)
	}
}

// parseRows lee el CSV separado por ';'. Una primera línea que empiece por "stock_id" es cabecera.
// Las cantidades vacías quedan como nil; se acepta la coma como separador decimal.
func parseRows(r io.Reader) ([]dto.StockQualityImportRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	var rows []dto.StockQualityImportRow
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("leer CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "stock_id") {
			continue
		}
		if len(record) != columns {
			return nil, fmt.Errorf("línea %d: se esperaban %d columnas, hay %d", line, columns, len(record))
		}
		row := dto.StockQualityImportRow{
			Line:    line,
			StockID: strings.TrimSpace(record[0]),
			Quality: strings.TrimSpace(record[1]),
		}
		targets := []**decimal.Decimal{&row.Available, &row.Reserved, &row.Threshold}
		for i, target := range targets {
			d, err := parseQuantity(record[2+i])
			if err != nil {
				return nil, fmt.Errorf("línea %d columna %d: %w", line, 3+i, err)
			}
			*target = d
		}
		rows = append(rows, row)
	}
}

func parseQuantity(s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return nil, fmt.Errorf("cantidad inválida %q", s)
	}
	return &d, nil
}
