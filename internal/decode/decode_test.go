package decode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCSV(t *testing.T) {
	data := " date ,employee,hours\n2025-01-15,Jan Novák,8\n2025-01-16,Marie,6\n"

	table, err := CSV(strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, []string{"date", "employee", "hours"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []any{"2025-01-15", "Jan Novák", "8"}, table.Rows[0])
}

func TestCSV_Empty(t *testing.T) {
	table, err := CSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, table.Headers)
	assert.Empty(t, table.Rows)
}

func TestCSV_RaggedRows(t *testing.T) {
	data := "date,employee,hours\n2025-01-15,Jan Novák\n"

	table, err := CSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Len(t, table.Rows[0], 2)
}

func TestCSV_Malformed(t *testing.T) {
	_, err := CSV(strings.NewReader("date,employee\n\"unterminated"))
	assert.Error(t, err)
}

func TestSpreadsheet_TypesNumericCells(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"employee", "hours", "note"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Radka", 7.5, "x"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"Marie", 0, ""}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	table, err := Spreadsheet(bytes.NewReader(buf.Bytes()), "shifts.xlsx")
	require.NoError(t, err)

	assert.Equal(t, []string{"employee", "hours", "note"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Radka", table.Rows[0][0])
	assert.Equal(t, 7.5, table.Rows[0][1])
	assert.Equal(t, "x", table.Rows[0][2])

	// A stored zero stays a typed number, not text.
	assert.Equal(t, 0.0, table.Rows[1][1])
}

func TestSpreadsheet_MalformedContainer(t *testing.T) {
	_, err := Spreadsheet(bytes.NewReader([]byte("not a workbook")), "shifts.xlsx")
	assert.Error(t, err)

	_, err = Spreadsheet(bytes.NewReader([]byte("not a workbook")), "shifts.xls")
	assert.Error(t, err)
}

func TestExcelDate(t *testing.T) {
	// Serial 25569 is the Unix epoch in the 1900 date system.
	d, err := ExcelDate(25569)
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01", d.Format("2006-01-02"))
}

func TestTypeCell(t *testing.T) {
	assert.Equal(t, 8.0, typeCell("8"))
	assert.Equal(t, 45672.0, typeCell("45672"))
	assert.Equal(t, "x", typeCell("x"))
	assert.Equal(t, "", typeCell("  "))
	assert.Equal(t, "4h", typeCell("4h"))
}
