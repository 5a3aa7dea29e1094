package usecase

import (
	"fmt"

	"github.com/iho/bankledger/internal/domain"
)

// Assembler merges adapter output into one table per institution.
type Assembler struct {
	profile *domain.Profile
}

// NewAssembler creates an Assembler for one institution.
func NewAssembler(p *domain.Profile) *Assembler {
	return &Assembler{profile: p}
}

// AssembleFile concatenates the sheets of one file, resolves the holder
// name, merges split amounts and drops rows without a date or an amount.
// It returns the table and the number of rows dropped.
func (a *Assembler) AssembleFile(file SourceFile, res *FileResult) (*domain.Table, int, error) {
	t := domain.Concat(res.Tables...)
	if len(t.Columns) == 0 {
		return nil, 0, fmt.Errorf("%w: %s", domain.ErrNoRows, file.Path)
	}

	if a.profile.HolderFromName() {
		name := file.Stem()
		if a.profile.HolderFromDir() {
			name = file.DirName()
		}
		t.FillBlank(domain.ColHolder, domain.StripDecorations(name, a.profile.Decorations()))
	}

	MergeSplitAmounts(t, a.profile.SecondAmountColumn())

	for _, col := range []string{domain.ColDate, domain.ColAmount} {
		if !t.Has(col) {
			return nil, 0, fmt.Errorf("%w: %s has no %s", domain.ErrColumnMissing, file.Path, col)
		}
	}
	kept := DropIncomplete(t)
	return kept, t.Len() - kept.Len(), nil
}

// AssembleInstitution concatenates the file tables and stamps the
// institution name.
func (a *Assembler) AssembleInstitution(tables []*domain.Table) *domain.Table {
	t := domain.Concat(tables...)
	t.SetConst(domain.ColBank, a.profile.Name())
	return t
}

// ExpectedLines returns the row count the institution should yield. Rows
// lost to footers account for exactly FooterRows per parsed sheet.
func (a *Assembler) ExpectedLines(lines, kept, parsedSheets int) int {
	if footer := a.profile.FooterRows(); footer > 0 && lines-kept == footer*parsedSheets {
		return kept
	}
	return lines
}

// DropIncomplete returns the rows carrying both a date and an amount.
func DropIncomplete(t *domain.Table) *domain.Table {
	return t.Filter(func(i int) bool {
		return !domain.IsBlank(t.Value(i, domain.ColDate)) && !domain.IsBlank(t.Value(i, domain.ColAmount))
	})
}
