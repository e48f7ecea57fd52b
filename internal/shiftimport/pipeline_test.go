package shiftimport

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestImport_UnsupportedExtension(t *testing.T) {
	imp := Importer{}

	result := imp.Import(context.Background(), "shifts.txt", strings.NewReader("date,employee,hours\n"))

	assert.False(t, result.IsValid)
	assert.Empty(t, result.Records)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Unsupported file format")
}

func TestImport_EmptyCSV(t *testing.T) {
	imp := Importer{}

	for _, content := range []string{"", "date,employee,hours\n"} {
		result := imp.Import(context.Background(), "shifts.csv", strings.NewReader(content))

		assert.False(t, result.IsValid)
		assert.Empty(t, result.Records)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "No data found in file", result.Errors[0])
	}
}

func TestImport_MalformedCSV(t *testing.T) {
	imp := Importer{}

	result := imp.Import(context.Background(), "shifts.csv", strings.NewReader("date,employee\n\"unterminated"))

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "CSV parsing error:")
}

func TestImport_MalformedSpreadsheet(t *testing.T) {
	imp := Importer{}

	result := imp.Import(context.Background(), "shifts.xlsx", bytes.NewReader([]byte("not a zip container")))

	assert.False(t, result.IsValid)
	assert.Empty(t, result.Records)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "XLSX parsing error:")
}

func TestImport_ColumnCSV(t *testing.T) {
	imp := Importer{}
	csvData := "date,employee,hours,tips,bonus\n" +
		"2025-01-15,Jan Novák,8,150,200\n" +
		"2025-01-16,Marie Svobodová,6,120,100\n"

	result := imp.Import(context.Background(), "shifts.csv", strings.NewReader(csvData))

	assert.True(t, result.IsValid)
	require.Len(t, result.Records, 2)
	assert.Equal(t, ShiftRecord{
		Date:     "2025-01-15",
		Employee: "Jan Novák",
		Hours:    8,
		Tips:     150,
		Bonus:    200,
	}, result.Records[0])
	assert.Equal(t, []string{"Jan Novák", "Marie Svobodová"}, result.UnknownEmployees)
}

func TestImport_MatrixCSV(t *testing.T) {
	imp := Importer{DefaultYear: 2025, DefaultMonth: 7}
	csvData := "Name,1,2,3\nRadka,,x,\n"

	result := imp.Import(context.Background(), "rozpis.csv", strings.NewReader(csvData))

	assert.True(t, result.IsValid)
	require.Len(t, result.Records, 1)
	assert.Equal(t, ShiftRecord{
		Date:     "2025-07-02",
		Employee: "Radka",
		Hours:    8,
	}, result.Records[0])
}

func TestImport_ColumnXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"date", "employee", "hours", "tips"}))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", "Jan Novák"))
	require.NoError(t, f.SetCellValue("Sheet1", "C2", 8))
	require.NoError(t, f.SetCellValue("Sheet1", "D2", 150))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	imp := Importer{}
	result := imp.Import(context.Background(), "shifts.xlsx", bytes.NewReader(buf.Bytes()))

	assert.True(t, result.IsValid, "errors: %v", result.Errors)
	require.Len(t, result.Records, 1)

	// The date cell arrives as a numeric serial and goes through the
	// spreadsheet date resolver.
	assert.Equal(t, ShiftRecord{
		Date:     "2025-01-15",
		Employee: "Jan Novák",
		Hours:    8,
		Tips:     150,
	}, result.Records[0])
}

func TestImport_MatrixXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Name", "1", "2", "3"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Radka", "", "x", 0}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"Marie", 6, "", ""}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	imp := Importer{DefaultYear: 2025, DefaultMonth: 7}
	result := imp.Import(context.Background(), "rozpis.xlsx", bytes.NewReader(buf.Bytes()))

	assert.True(t, result.IsValid, "errors: %v", result.Errors)
	require.Len(t, result.Records, 2)

	// The typed zero in C2 means "not scheduled"; Radka only works day 2.
	assert.Equal(t, ShiftRecord{Date: "2025-07-02", Employee: "Radka", Hours: 8}, result.Records[0])
	assert.Equal(t, ShiftRecord{Date: "2025-07-01", Employee: "Marie", Hours: 6}, result.Records[1])
	assert.Equal(t, []string{"Radka", "Marie"}, result.UnknownEmployees)
}

func TestImport_MissingColumnsXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"date", "employee", "tips"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"2025-01-15", "Jan Novák", 150}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	imp := Importer{}
	result := imp.Import(context.Background(), "shifts.xlsx", bytes.NewReader(buf.Bytes()))

	assert.False(t, result.IsValid)
	assert.Empty(t, result.Records)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Missing required columns: hours", result.Errors[0])
}

func TestDefaultPeriod(t *testing.T) {
	year, month := Importer{DefaultYear: 2025, DefaultMonth: 7}.defaultPeriod()
	assert.Equal(t, 2025, year)
	assert.Equal(t, 7, month)

	// Zero values fall back to the current system month.
	now := time.Now()
	year, month = Importer{}.defaultPeriod()
	assert.Equal(t, now.Year(), year)
	assert.Equal(t, int(now.Month()), month)
}
