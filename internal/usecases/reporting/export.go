package reporting

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/jszwec/csvutil"
	"github.com/xuri/excelize/v2"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultSheetName = "Sheet1"

// ExportRecords serializa uma fatia de entidades. As colunas seguem as tags
// csv dos structs de domínio; colunas JSON brutas ficam de fora de CSV e XLSX.
func ExportRecords(name string, records any, format domain.ExportFormat) (*domain.Export, error) {
	switch format {
	case domain.ExportFormatJSON, "":
		content, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar JSON de %s: %w", name, err)
		}
		return &domain.Export{
			Filename:    name + ".json",
			ContentType: "application/json",
			Content:     content,
		}, nil

	case domain.ExportFormatCSV:
		content, err := csvutil.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar CSV de %s: %w", name, err)
		}
		return &domain.Export{
			Filename:    name + ".csv",
			ContentType: "text/csv",
			Content:     content,
		}, nil

	case domain.ExportFormatXLSX:
		content, err := buildWorkbook(name, records)
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar planilha de %s: %w", name, err)
		}
		return &domain.Export{
			Filename:    name + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     content,
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

func buildWorkbook(sheet string, records any) ([]byte, error) {
	headers, rows, err := tabulate(records)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheetName, sheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"D9D9D9"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, err
	}

	headerRow := make([]any, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return nil, err
	}

	if len(headers) > 0 {
		lastHeader, err := excelize.CoordinatesToCellName(len(headers), 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// tabulate lê os campos com tag csv de uma fatia de structs
func tabulate(records any) ([]string, [][]any, error) {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Slice {
		return nil, nil, fmt.Errorf("esperado slice, recebido %s", v.Kind())
	}

	elem := v.Type().Elem()
	if elem.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("esperado slice de structs, recebido slice de %s", elem.Kind())
	}

	headers := make([]string, 0, elem.NumField())
	fields := make([]int, 0, elem.NumField())
	for i := 0; i < elem.NumField(); i++ {
		name := strings.Split(elem.Field(i).Tag.Get("csv"), ",")[0]
		if name == "" || name == "-" {
			continue
		}
		headers = append(headers, name)
		fields = append(fields, i)
	}

	rows := make([][]any, 0, v.Len())
	for r := 0; r < v.Len(); r++ {
		item := v.Index(r)
		row := make([]any, 0, len(fields))
		for _, i := range fields {
			row = append(row, cellValue(item.Field(i).Interface()))
		}
		rows = append(rows, row)
	}

	return headers, rows, nil
}

func cellValue(value any) any {
	if t, ok := value.(*time.Time); ok {
		if t == nil {
			return nil
		}
		return t.Format(time.RFC3339)
	}
	return value
}
