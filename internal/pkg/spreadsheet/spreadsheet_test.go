package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	headers := []string{"employee_code", "first_name", "status"}
	rows := []Row{
		{"employee_code": "EMP00001", "first_name": "Asha", "status": "Active"},
		{"employee_code": "EMP00002", "first_name": "Ravi", "status": "On Notice"},
	}

	encoded, err := Encode(headers, rows)
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	decoded, err := Decode(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, "EMP00001", decoded[0]["employee_code"])
	assert.Equal(t, "Asha", decoded[0]["first_name"])
	assert.Equal(t, "On Notice", decoded[1]["status"])
}

func TestDecodeSkipsBlankRows(t *testing.T) {
	headers := []string{"name", "value"}
	rows := []Row{
		{"name": "first", "value": "1"},
		{"name": "", "value": ""},
		{"name": "second", "value": "2"},
	}

	encoded, err := Encode(headers, rows)
	require.NoError(t, err)

	decoded, err := Decode(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, "first", decoded[0]["name"])
	assert.Equal(t, "second", decoded[1]["name"])
}

func TestDecodeMissingTrailingCells(t *testing.T) {
	headers := []string{"a", "b", "c"}
	rows := []Row{{"a": "only-a"}}

	encoded, err := Encode(headers, rows)
	require.NoError(t, err)

	decoded, err := Decode(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, "only-a", decoded[0]["a"])
	assert.Equal(t, "", decoded[0]["b"])
	assert.Equal(t, "", decoded[0]["c"])
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an xlsx file")))
	assert.Error(t, err)
}
