package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/iho/bankledger/internal/domain"
)

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the supported institutions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			writeProfiles(cmd.OutOrStdout(), e.profiles.List())
			return nil
		},
	}
}

func writeProfiles(w io.Writer, profiles []*domain.Profile) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INSTITUTION\tPARSER\tHOLDER\tSIGNED\tFOOTER\tCHECKS")
	for _, p := range profiles {
		parser := "generic"
		if p.IsSpecial() {
			parser = p.Handler()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%d\t%s\n",
			p.Name(),
			parser,
			holderSource(p),
			p.AmountsSigned(),
			p.FooterRows(),
			strings.Join(p.CheckColumns(), ","),
		)
	}
	tw.Flush()
}

func holderSource(p *domain.Profile) string {
	switch {
	case p.HolderFromDir():
		return "directory"
	case p.HolderFromName():
		return "file name"
	case p.SheetName() == domain.SheetNameHolder:
		return "sheet name"
	default:
		return "column"
	}
}
