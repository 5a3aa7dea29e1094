package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/iho/bankledger/internal/adapter/source/spreadsheet"
	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

func newInspectCmd() *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show the sheets of a statement file and their detected header rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			var p *domain.Profile
			if profileName != "" {
				if p, err = e.profiles.FindByName(profileName); err != nil {
					return err
				}
			}
			return runInspect(cmd.Context(), cmd.OutOrStdout(), args[0], e.cfg.XLSCharset, e.cfg.HeaderProbes, p)
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "Show which columns this institution profile maps")
	return cmd
}

func runInspect(ctx context.Context, w io.Writer, path, charset string, probes int, p *domain.Profile) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	reader := spreadsheet.NewReader()
	reader.Charset = charset
	name := filepath.Base(path)
	wb, err := reader.Open(ctx, name, data)
	if err != nil {
		return err
	}
	defer wb.Close()

	fmt.Fprintf(w, "%s (%s)\n", name, spreadsheet.DetectFormat(name, data))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SHEET\tROWS\tHEADER\tSTATUS\tCOLUMNS")
	var mapped [][]string
	for _, sheet := range wb.SheetNames() {
		g, err := wb.Rows(sheet)
		if err != nil {
			fmt.Fprintf(tw, "%s\t-\t-\terror\t%v\n", sheet, err)
			continue
		}
		row, status := usecase.LocateHeader(g, probes)
		if status != usecase.HeaderFound {
			fmt.Fprintf(tw, "%s\t%d\t-\t%s\t\n", sheet, len(g), status)
			continue
		}
		cols := g.Header(row)
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n", sheet, len(g), row+1, status, strings.Join(cols, ", "))
		if p != nil {
			mapped = append(mapped, append([]string{sheet}, cols...))
		}
	}
	tw.Flush()

	if p == nil || p.IsSpecial() {
		if p != nil {
			fmt.Fprintf(w, "\n%s is parsed by the %s handler\n", p.Name(), p.Handler())
		}
		return nil
	}

	columnMap := p.ColumnMap()
	for _, m := range mapped {
		var known, unknown []string
		for _, c := range m[1:] {
			canon, ok := columnMap[c]
			switch {
			case ok:
				known = append(known, c+" -> "+canon)
			case domain.IsCanonical(c):
				known = append(known, c)
			case !domain.IsPlaceholder(c):
				unknown = append(unknown, c)
			}
		}
		fmt.Fprintf(w, "\n%s with %s:\n", m[0], p.Name())
		fmt.Fprintf(w, "  mapped:   %s\n", strings.Join(known, ", "))
		fmt.Fprintf(w, "  unmapped: %s\n", strings.Join(unknown, ", "))
	}
	return nil
}
