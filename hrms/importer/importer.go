// Package importer loads employees in bulk from CSV or XLSX sheets.
package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"hrmslite.com/hrms/core"
	hrms "hrmslite.com/hrms/hrms/core"
	"hrmslite.com/hrms/infrastructure/filesystem"
	"hrmslite.com/hrms/utils"
	web "hrmslite.com/hrms/web/common"
)

var columns = []string{"employee_id", "full_name", "email", "department"}

// Row is one data line of a sheet. Line is 1-based and counts the header.
type Row struct {
	Line  int
	Input hrms.EmployeeInput
}

type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

type Result struct {
	Created int
	Skipped []RowError
}

// ReadFile parses path as CSV or XLSX depending on its extension.
func ReadFile(path string) ([]Row, []RowError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Read(path, f)
}

// ReadS3 downloads bucket/key and parses it like ReadFile.
func ReadS3(ctx context.Context, client filesystem.ObjectGetter, bucket, key string) ([]Row, []RowError, error) {
	var buf bytes.Buffer
	if err := filesystem.ReadFile(ctx, client, bucket, key, &buf); err != nil {
		return nil, nil, err
	}
	return Read(key, &buf)
}

// Read parses r as CSV or XLSX depending on the extension of name.
func Read(name string, r io.Reader) ([]Row, []RowError, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return ReadCSV(r)
	case ".xlsx":
		return ReadXLSX(r)
	}
	return nil, nil, fmt.Errorf("unsupported file type %q", filepath.Ext(name))
}

func ReadCSV(r io.Reader) ([]Row, []RowError, error) {
	records, err := utils.ParseCSV(r)
	if err != nil {
		return nil, nil, fmt.Errorf("parse csv: %w", err)
	}
	return fromRecords(records)
}

// ReadXLSX reads the first sheet of the workbook.
func ReadXLSX(r io.Reader) ([]Row, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New("workbook has no sheets")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return fromRecords(records)
}

func fromRecords(records [][]string) ([]Row, []RowError, error) {
	if len(records) == 0 {
		return nil, nil, errors.New("missing header row")
	}

	index := map[string]int{}
	for i, h := range records[0] {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		index[h] = i
	}
	missing := utils.Filter(columns, func(c string) bool {
		_, ok := index[c]
		return !ok
	})
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}

	v := web.NewValidator()
	var rows []Row
	var rejected []RowError
	for n, record := range records[1:] {
		line := n + 2
		cell := func(name string) string {
			if i := index[name]; i < len(record) {
				return strings.TrimSpace(record[i])
			}
			return ""
		}
		if isBlank(record) {
			continue
		}

		input := hrms.EmployeeInput{
			EmployeeID: cell("employee_id"),
			FullName:   cell("full_name"),
			Email:      cell("email"),
			Department: cell("department"),
		}
		if err := validate(v, input); err != nil {
			rejected = append(rejected, RowError{Line: line, Err: err})
			continue
		}
		rows = append(rows, Row{Line: line, Input: input})
	}
	return rows, rejected, nil
}

func validate(v *validator.Validate, input hrms.EmployeeInput) error {
	if err := v.Struct(input); err != nil {
		return errors.New(web.FormatBindingError(err))
	}
	return nil
}

func isBlank(record []string) bool {
	for _, s := range record {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

// Import creates each row in its own transaction. Rows rejected as duplicates
// are skipped; any other failure stops the import.
func Import(ctx context.Context, dm *core.DatabaseManager, rows []Row) (*Result, error) {
	result := &Result{}
	for _, row := range rows {
		err := dm.Exec(ctx, func(tx *gorm.DB) error {
			_, err := hrms.CreateEmployee(tx, row.Input)
			return err
		})
		switch {
		case err == nil:
			result.Created++
		case errors.Is(err, hrms.ErrConflict):
			result.Skipped = append(result.Skipped, RowError{Line: row.Line, Err: err})
		default:
			return result, fmt.Errorf("line %d: %w", row.Line, err)
		}
	}
	return result, nil
}
