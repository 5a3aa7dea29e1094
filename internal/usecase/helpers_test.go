package usecase_test

import (
	"github.com/iho/bankledger/internal/adapter/source/memory"
	"github.com/iho/bankledger/internal/usecase"
)

func sourceFile(path string, sheets ...memory.Sheet) usecase.SourceFile {
	return usecase.SourceFile{
		Path:     path,
		Workbook: memory.NewWorkbook(sheets...),
	}
}

func row(cells ...string) []string {
	return cells
}
