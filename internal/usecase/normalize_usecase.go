package usecase

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/iho/bankledger/internal/domain"
)

// NormalizeUseCase runs the whole pipeline over a root directory holding
// one subdirectory per institution.
type NormalizeUseCase struct {
	profiles  ProfileRepository
	reader    SourceReader
	adapters  *AdapterRegistry
	validator *Validator
	idGen     IDGenerator
	logger    zerolog.Logger
	opts      Options

	cache   ParseCache
	retrier Retrier
	metrics MetricsRecorder
}

// NormalizeOption configures optional collaborators.
type NormalizeOption func(*NormalizeUseCase)

// WithParseCache reuses adapter results of files seen before.
func WithParseCache(c ParseCache) NormalizeOption {
	return func(uc *NormalizeUseCase) { uc.cache = c }
}

// WithRetrier retries failed file reads.
func WithRetrier(r Retrier) NormalizeOption {
	return func(uc *NormalizeUseCase) { uc.retrier = r }
}

// WithMetrics records pipeline counters.
func WithMetrics(m MetricsRecorder) NormalizeOption {
	return func(uc *NormalizeUseCase) { uc.metrics = m }
}

// NewNormalizeUseCase creates a new NormalizeUseCase.
func NewNormalizeUseCase(
	profiles ProfileRepository,
	reader SourceReader,
	adapters *AdapterRegistry,
	idGen IDGenerator,
	logger zerolog.Logger,
	opts Options,
	options ...NormalizeOption,
) *NormalizeUseCase {
	opts = opts.withDefaults()
	uc := &NormalizeUseCase{
		profiles:  profiles,
		reader:    reader,
		adapters:  adapters,
		validator: NewValidator(opts.HolderBoilerplate),
		idGen:     idGen,
		logger:    logger,
		opts:      opts,
		metrics:   noopMetrics{},
	}
	for _, o := range options {
		o(uc)
	}
	return uc
}

// InstitutionReport summarizes one institution of a run.
type InstitutionReport struct {
	Institution  string
	Files        int
	FailedFiles  []string
	Sheets       int
	FailedSheets []string
	// Lines is the row count seen during adaptation; Expected is Lines
	// after footer reconciliation.
	Lines        int
	Expected     int
	Parsed       int
	SignStrategy string
	Verdict      *domain.Verdict
}

// Result is the outcome of a run.
type Result struct {
	RunID       string
	Ledger      *Ledger
	Reports     []*InstitutionReport
	Unsupported []string
}

// Verdicts returns the verdict of every processed institution.
func (r *Result) Verdicts() []*domain.Verdict {
	out := make([]*domain.Verdict, 0, len(r.Reports))
	for _, rep := range r.Reports {
		out = append(out, rep.Verdict)
	}
	return out
}

type institutionJob struct {
	dir     string
	profile *domain.Profile
}

// Run normalizes every supported institution under root. Sheet, file and
// institution failures end up in the verdicts; structural errors abort the run.
func (uc *NormalizeUseCase) Run(ctx context.Context, root fs.FS) (*Result, error) {
	res := &Result{RunID: uc.idGen.Generate()}
	log := uc.logger.With().Str("run_id", res.RunID).Logger()

	entries, err := fs.ReadDir(root, ".")
	if err != nil {
		return nil, fmt.Errorf("read root: %w", err)
	}

	var jobs []institutionJob
	for _, e := range entries {
		if uc.ignored(e.Name(), nil) {
			continue
		}
		if !e.IsDir() {
			log.Debug().Str("file", e.Name()).Msg("skipping file outside institution directories")
			continue
		}
		p, err := uc.profiles.FindByName(e.Name())
		if errors.Is(err, domain.ErrUnsupportedInstitution) {
			res.Unsupported = append(res.Unsupported, e.Name())
			uc.metrics.InstitutionProcessed(StatusUnsupported, 0)
			log.Warn().Str("institution", e.Name()).Msg("unsupported institution")
			continue
		}
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, institutionJob{dir: e.Name(), profile: p})
	}

	reports := make([]*InstitutionReport, len(jobs))
	records := make([][]domain.Record, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.opts.Workers)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			rep, recs, err := uc.runInstitution(gctx, log, root, job)
			if err != nil {
				return fmt.Errorf("%s: %w", job.dir, err)
			}
			reports[i], records[i] = rep, recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res.Reports = reports
	res.Ledger = NewLedger(records...)

	failed := 0
	for _, rep := range reports {
		if !rep.Verdict.Passed() {
			failed++
		}
	}
	log.Info().
		Int("institutions", len(reports)).
		Int("unsupported", len(res.Unsupported)).
		Int("with_mistakes", failed).
		Int("records", res.Ledger.Len()).
		Msg("run finished")
	return res, nil
}

func (uc *NormalizeUseCase) runInstitution(ctx context.Context, log zerolog.Logger, root fs.FS, job institutionJob) (*InstitutionReport, []domain.Record, error) {
	start := time.Now()
	p := job.profile
	log = log.With().Str("institution", p.Name()).Logger()
	rep := &InstitutionReport{Institution: p.Name()}

	adapter, err := uc.adapters.Resolve(p, uc.opts)
	if err != nil {
		return uc.abandon(log, rep, start, err), nil, nil
	}
	files, err := uc.listFiles(root, job.dir, p)
	if err != nil {
		return uc.abandon(log, rep, start, err), nil, nil
	}
	rep.Files = len(files)

	asm := NewAssembler(p)
	var tables []*domain.Table
	kept, parsedSheets := 0, 0
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		flog := log.With().Str("file", name).Logger()

		fr, err := uc.parseFile(ctx, flog, root, adapter, p, name)
		if err != nil {
			if errors.Is(err, domain.ErrStructural) || ctx.Err() != nil {
				return nil, nil, err
			}
			flog.Warn().Err(err).Msg("file failed")
			rep.FailedFiles = append(rep.FailedFiles, name)
			uc.metrics.FileProcessed(StatusFailed)
			continue
		}

		for _, w := range fr.Warnings {
			flog.Warn().Msg(w)
		}
		rep.Sheets += fr.Sheets
		for _, s := range fr.FailedSheets {
			rep.FailedSheets = append(rep.FailedSheets, name+"#"+s)
		}
		uc.metrics.SheetsProcessed(StatusOK, len(fr.ParsedSheets))
		uc.metrics.SheetsProcessed(StatusFailed, len(fr.FailedSheets))

		if len(fr.Tables) == 0 {
			flog.Info().Msgf("0 of %d sheets parsed, no rows", fr.Sheets)
			uc.metrics.FileProcessed(StatusOK)
			continue
		}

		t, dropped, err := asm.AssembleFile(SourceFile{Path: name, Institution: p.Name()}, fr)
		if err != nil {
			flog.Warn().Err(err).Msg("file failed")
			rep.FailedFiles = append(rep.FailedFiles, name)
			uc.metrics.FileProcessed(StatusFailed)
			continue
		}

		flog.Info().
			Int("dropped", dropped).
			Msgf("%d of %d sheets parsed, %d rows", len(fr.ParsedSheets), fr.Sheets, t.Len())
		rep.Lines += fr.Lines
		kept += t.Len()
		parsedSheets += len(fr.ParsedSheets)
		tables = append(tables, t)
		uc.metrics.FileProcessed(StatusOK)
	}

	rows := TypeRows(asm.AssembleInstitution(tables))
	rep.Expected = asm.ExpectedLines(rep.Lines, kept, parsedSheets)
	rep.Parsed = rows.Table.Len()

	var signErr error
	if !p.AmountsSigned() {
		rep.SignStrategy, signErr = DeriveSigns(SignInput{
			Rows:            rows,
			SecondaryColumn: p.SecondAmountColumn(),
			OutflowTokens:   uc.opts.OutflowTokens,
		})
		if signErr != nil {
			log.Warn().Err(signErr).Msg("amount signs not derived")
		}
	}

	rep.Verdict = uc.validator.Validate(ValidationInput{
		Profile:      p,
		Rows:         rows,
		Expected:     rep.Expected,
		FailedSheets: rep.FailedSheets,
		FailedFiles:  rep.FailedFiles,
		SignErr:      signErr,
	})
	uc.record(log, rep, start)

	uc.metrics.RowsProcessed(StageSeen, rep.Lines)
	uc.metrics.RowsProcessed(StageKept, rep.Parsed)
	if rep.Lines > rep.Parsed {
		uc.metrics.RowsProcessed(StageDropped, rep.Lines-rep.Parsed)
	}
	return rep, rows.Records(), nil
}

// abandon reports an institution that could not be processed at all.
func (uc *NormalizeUseCase) abandon(log zerolog.Logger, rep *InstitutionReport, start time.Time, err error) *InstitutionReport {
	log.Error().Err(err).Msg("institution failed")
	rep.Verdict = domain.NewVerdict(rep.Institution)
	rep.Verdict.Warn("institution failed: %v", err)
	uc.record(log, rep, start)
	return rep
}

func (uc *NormalizeUseCase) record(log zerolog.Logger, rep *InstitutionReport, start time.Time) {
	status := StatusOK
	if !rep.Verdict.Passed() {
		status = StatusFailed
	}
	uc.metrics.InstitutionProcessed(status, time.Since(start))
	uc.metrics.VerdictRecorded(rep.Verdict.Passed())

	ev := log.Info()
	if !rep.Verdict.Passed() {
		ev = log.Warn().Strs("reasons", rep.Verdict.Reasons)
	}
	ev.Str("sign", rep.SignStrategy).
		Bool("has_mistakes", rep.Verdict.HasMistakes).
		Msgf("parsed %d/%d rows", rep.Parsed, rep.Expected)
}

func (uc *NormalizeUseCase) parseFile(ctx context.Context, log zerolog.Logger, root fs.FS, adapter SourceAdapter, p *domain.Profile, name string) (*FileResult, error) {
	data, err := uc.readFile(ctx, root, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	key := uc.cacheKey(p, data)
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, key)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("parse cache lookup failed")
		case cached != nil:
			uc.metrics.CacheLookup(true)
			return cached, nil
		default:
			uc.metrics.CacheLookup(false)
		}
	}

	wb, err := uc.reader.Open(ctx, name, data)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer wb.Close()

	fr, err := adapter.Parse(ctx, SourceFile{Path: name, Institution: p.Name(), Workbook: wb})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, fr); err != nil {
			log.Warn().Err(err).Msg("parse cache store failed")
		}
	}
	return fr, nil
}

// cacheKey digests the profile, the parse settings and the file content.
func (uc *NormalizeUseCase) cacheKey(p *domain.Profile, data []byte) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%d\x00%q\x00%q\x00%q\x00",
		p.Fingerprint(), uc.opts.HeaderProbes, uc.opts.NoTransactionWords,
		uc.opts.NoResultsMarker, uc.opts.OutflowTokens)
	h.Write(data)
	return fmt.Sprintf("%s:%x", p.Name(), h.Sum(nil))
}

func (uc *NormalizeUseCase) readFile(ctx context.Context, root fs.FS, name string) ([]byte, error) {
	var data []byte
	read := func() error {
		var err error
		data, err = fs.ReadFile(root, name)
		return err
	}
	if uc.retrier == nil {
		return data, read()
	}
	err := uc.retrier.Retry(ctx, read)
	return data, err
}

// listFiles returns the statement files of an institution directory, one
// level of holder directories included, in lexical order.
func (uc *NormalizeUseCase) listFiles(root fs.FS, dir string, p *domain.Profile) ([]string, error) {
	entries, err := fs.ReadDir(root, dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if uc.ignored(e.Name(), p) {
			continue
		}
		full := path.Join(dir, e.Name())
		if !e.IsDir() {
			out = append(out, full)
			continue
		}
		nested, err := fs.ReadDir(root, full)
		if err != nil {
			return nil, err
		}
		for _, n := range nested {
			if n.IsDir() || uc.ignored(n.Name(), p) {
				continue
			}
			out = append(out, path.Join(full, n.Name()))
		}
	}
	return out, nil
}

func (uc *NormalizeUseCase) ignored(name string, p *domain.Profile) bool {
	globs := uc.opts.IgnoreGlobs
	if p != nil && p.SkipFiles() != "" {
		globs = append(globs[:len(globs):len(globs)], p.SkipFiles())
	}
	for _, g := range globs {
		if ok, _ := path.Match(g, name); ok {
			return true
		}
	}
	return false
}
