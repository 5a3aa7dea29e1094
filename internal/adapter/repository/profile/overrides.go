package profile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iho/bankledger/internal/domain"
)

// File is the YAML document of profile overrides.
type File struct {
	Profiles []Override `yaml:"profiles"`
}

// Override describes a new profile or changes to an existing one. Unset
// fields keep the values of the profile it is applied to.
type Override struct {
	Name string `yaml:"name"`
	// Base names the profile to start from; defaults to Name.
	Base               string            `yaml:"base"`
	ColumnMap          map[string]string `yaml:"column_map"`
	SheetName          *string           `yaml:"sheet_name"`
	AmountsSigned      *bool             `yaml:"amounts_signed"`
	EmptySheets        *bool             `yaml:"empty_sheets"`
	NoDataSheets       *bool             `yaml:"no_data_sheets"`
	SecondAmountColumn *string           `yaml:"second_amount_column"`
	Decorations        []string          `yaml:"decorations"`
	HolderFromDir      bool              `yaml:"holder_from_dir"`
	Handler            *string           `yaml:"handler"`
	SkipFiles          *string           `yaml:"skip_files"`
	FooterRows         *int              `yaml:"footer_rows"`
	CheckColumns       []string          `yaml:"check_columns"`
	NeedColumns        []string          `yaml:"need_columns"`
}

// LoadFile applies the overrides in path to the repository.
func (r *Repository) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open profiles file: %w", err)
	}
	defer f.Close()
	return r.Load(f)
}

// Load applies the overrides read from src. Nothing is applied when any
// override is invalid.
func (r *Repository) Load(src io.Reader) error {
	var doc File
	dec := yaml.NewDecoder(src)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: decode profiles: %v", domain.ErrInvalidProfile, err)
	}

	built := make([]*domain.Profile, 0, len(doc.Profiles))
	for i, o := range doc.Profiles {
		p, err := r.build(o)
		if err != nil {
			return fmt.Errorf("profile %d (%s): %w", i+1, o.Name, err)
		}
		built = append(built, p)
	}
	for _, p := range built {
		r.Put(p)
	}
	return nil
}

func (r *Repository) build(o Override) (*domain.Profile, error) {
	opts, err := o.options()
	if err != nil {
		return nil, err
	}

	base := o.Base
	if base == "" {
		base = o.Name
	}
	existing, err := r.FindByName(base)
	if err != nil {
		if o.Base != "" {
			return nil, fmt.Errorf("%w: unknown base %q", domain.ErrInvalidProfile, o.Base)
		}
		if o.ColumnMap != nil {
			opts = append(opts, domain.WithColumnMap(o.ColumnMap))
		}
		return domain.NewProfile(o.Name, opts...)
	}

	if o.ColumnMap != nil {
		merged := existing.ColumnMap()
		for k, v := range o.ColumnMap {
			merged[k] = v
		}
		opts = append([]domain.ProfileOption{domain.WithColumnMap(merged)}, opts...)
	}
	return existing.Derive(append(opts, domain.WithName(o.Name))...)
}

func (o Override) options() ([]domain.ProfileOption, error) {
	var opts []domain.ProfileOption
	if o.SheetName != nil {
		k, err := domain.ParseSheetNameKind(*o.SheetName)
		if err != nil {
			return nil, err
		}
		opts = append(opts, domain.WithSheetName(k))
	}
	if o.AmountsSigned != nil {
		opts = append(opts, domain.WithSignedAmounts(*o.AmountsSigned))
	}
	if o.EmptySheets != nil {
		opts = append(opts, domain.WithEmptySheets(*o.EmptySheets))
	}
	if o.NoDataSheets != nil {
		opts = append(opts, domain.WithNoDataSheets(*o.NoDataSheets))
	}
	if o.SecondAmountColumn != nil {
		opts = append(opts, domain.WithSecondAmountColumn(*o.SecondAmountColumn))
	}
	if o.Decorations != nil {
		opts = append(opts, domain.WithDecorations(o.Decorations...))
	}
	if o.HolderFromDir {
		opts = append(opts, domain.WithHolderFromDir())
	}
	if o.Handler != nil {
		opts = append(opts, domain.WithHandler(*o.Handler))
	}
	if o.SkipFiles != nil {
		opts = append(opts, domain.WithSkipFiles(*o.SkipFiles))
	}
	if o.FooterRows != nil {
		opts = append(opts, domain.WithFooterRows(*o.FooterRows))
	}
	if o.CheckColumns != nil {
		opts = append(opts, domain.WithCheckColumns(o.CheckColumns...))
	}
	if o.NeedColumns != nil {
		opts = append(opts, domain.WithNeedColumns(o.NeedColumns...))
	}
	return opts, nil
}
