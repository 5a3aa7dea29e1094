package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"

	"github.com/iho/bankledger/internal/usecase"
)

const reportWidth = 100

func resultLabel(rep *usecase.InstitutionReport) string {
	if rep.Verdict.HasMistakes {
		return "FAIL"
	}
	return "PASS"
}

func writeTextReport(w io.Writer, res *usecase.Result) {
	fmt.Fprintf(w, "run %s\n\n", res.RunID)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INSTITUTION\tRESULT\tFILES\tSHEETS\tPARSED\tSIGNS")
	for _, rep := range res.Reports {
		fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%d/%d\t%d/%d\t%s\n",
			rep.Institution,
			resultLabel(rep),
			rep.Files-len(rep.FailedFiles), rep.Files,
			rep.Sheets-len(rep.FailedSheets), rep.Sheets,
			rep.Parsed, rep.Expected,
			orDash(rep.SignStrategy),
		)
	}
	tw.Flush()

	for _, rep := range res.Reports {
		for _, reason := range rep.Verdict.Reasons {
			fmt.Fprintf(w, "  %s: %s\n", rep.Institution, reason)
		}
	}
	if len(res.Unsupported) > 0 {
		fmt.Fprintf(w, "\nunsupported: %s\n", strings.Join(res.Unsupported, ", "))
	}

	fmt.Fprintf(w, "\nledger: %d rows, %d/%d institutions passed\n",
		res.Ledger.Len(), len(res.Reports)-failedCount(res), len(res.Reports))
}

// markdownReport renders the run summary as a markdown document.
func markdownReport(res *usecase.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Run %s\n\n", res.RunID)

	if len(res.Reports) > 0 {
		b.WriteString("| Institution | Result | Files | Sheets | Parsed | Signs |\n")
		b.WriteString("|---|---|---|---|---|---|\n")
		for _, rep := range res.Reports {
			fmt.Fprintf(&b, "| %s | %s | %d/%d | %d/%d | %d/%d | %s |\n",
				escapeCell(rep.Institution),
				resultLabel(rep),
				rep.Files-len(rep.FailedFiles), rep.Files,
				rep.Sheets-len(rep.FailedSheets), rep.Sheets,
				rep.Parsed, rep.Expected,
				orDash(rep.SignStrategy),
			)
		}
		b.WriteString("\n")
	}

	var findings []string
	for _, rep := range res.Reports {
		for _, reason := range rep.Verdict.Reasons {
			findings = append(findings, fmt.Sprintf("- **%s**: %s", rep.Institution, reason))
		}
	}
	if len(findings) > 0 {
		b.WriteString("## Findings\n\n")
		b.WriteString(strings.Join(findings, "\n"))
		b.WriteString("\n\n")
	}

	if len(res.Unsupported) > 0 {
		b.WriteString("## Unsupported\n\n")
		for _, name := range res.Unsupported {
			fmt.Fprintf(&b, "- %s\n", name)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "**Ledger:** %d rows, %d/%d institutions passed\n",
		res.Ledger.Len(), len(res.Reports)-failedCount(res), len(res.Reports))
	return b.String()
}

func renderMarkdown(md, style string) (string, error) {
	styleOpt := glamour.WithStandardStyle(style)
	if style == "" || style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(reportWidth))
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return out, nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
