package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestParseRows_CabeceraYVacios(t *testing.T) {
	in := "stock_id;quality;available;reserved;threshold\n" +
		"stk-1;PREMIERE_QUALITE;10,5;;20\n" +
		"# comentario\n" +
		"stk-1; DEUXIEME_QUALITE ;0;2;\n"

	rows, err := parseRows(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "stk-1", rows[0].StockID)
	require.NotNil(t, rows[0].Available)
	assert.Equal(t, "10.5", rows[0].Available.String())
	assert.Nil(t, rows[0].Reserved, "campo vacío = ausente")

	assert.Equal(t, 4, rows[1].Line)
	assert.Equal(t, "DEUXIEME_QUALITE", rows[1].Quality)
	assert.Nil(t, rows[1].Threshold)
}

func TestParseRows_Errores(t *testing.T) {
	_, err := parseRows(strings.NewReader("stk-1;PREMIERE_QUALITE;10\n"))
	assert.ErrorContains(t, err, "columnas")

	_, err = parseRows(strings.NewReader("stk-1;PREMIERE_QUALITE;diez;;\n"))
	assert.ErrorContains(t, err, "línea 1")
}

func TestDecodeReader_Latin1(t *testing.T) {
	encoded, err := charmap.ISO8859_1.NewEncoder().String("stk-é;PREMIERE_QUALITE;1;;\n")
	require.NoError(t, err)

	r, err := decodeReader(bytes.NewReader([]byte(encoded)), "latin1")
	require.NoError(t, err)
	rows, err := parseRows(r)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "stk-é", rows[0].StockID)

	_, err = decodeReader(bytes.NewReader(nil), "ebcdic")
	assert.Error(t, err)
}
