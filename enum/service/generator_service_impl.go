package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/mlewan/hyperenum/enum/config"
	"github.com/mlewan/hyperenum/enum/engine"
	"github.com/mlewan/hyperenum/enum/schema"
)

// generatorServiceImpl implements the GeneratorService interface
type generatorServiceImpl struct {
	schemas SchemaManager
}

// NewGeneratorService creates a new generator service instance
func NewGeneratorService(schemas SchemaManager) GeneratorService {
	return &generatorServiceImpl{schemas: schemas}
}

// ListGames returns all games with an available schema
func (s *generatorServiceImpl) ListGames(ctx context.Context) ([]*GameInfo, error) {
	infos, err := s.schemas.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list schemas: %w", err)
	}

	result := make([]*GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, &GameInfo{
			Game:        info.Game,
			SchemaID:    info.SchemaID,
			Description: info.Description,
			OptionCount: info.OptionCount,
		})
	}
	return result, nil
}

// DescribeGame returns the full declared schema for one game
func (s *generatorServiceImpl) DescribeGame(ctx context.Context, game string) (*schema.GameSchema, error) {
	gs, err := s.schemas.LoadByGame(game)
	if err != nil {
		if errors.Is(err, schema.ErrSchemaNotFound) {
			return nil, fmt.Errorf("no schema for game %q", game)
		}
		return nil, fmt.Errorf("failed to load schema for game %q: %w", game, err)
	}
	return gs, nil
}

// Estimate resolves every enumerated option of the request and reports the
// resulting document count against the size threshold.
func (s *generatorServiceImpl) Estimate(ctx context.Context, req config.GameRequest, opts GenerateOptions) (*Estimate, error) {
	job, err := s.buildJob(req, opts)
	if err != nil {
		return nil, err
	}
	return estimateJob(job, opts.Threshold)
}

// estimateJob computes the product of resolved-set sizes for a job.
func estimateJob(job *engine.GameJob, threshold int) (*Estimate, error) {
	names, sets, err := job.Resolve()
	if err != nil {
		return nil, err
	}

	if threshold <= 0 {
		threshold = engine.DefaultThreshold
	}

	setSizes := make([]OptionSetSize, len(names))
	sizes := make([]int, len(names))
	for i := range names {
		setSizes[i] = OptionSetSize{Name: names[i], Size: len(sets[i])}
		sizes[i] = len(sets[i])
	}

	total := engine.Product(sizes)
	return &Estimate{
		Game:            job.Game,
		Total:           total,
		Threshold:       threshold,
		ConfirmRequired: engine.CheckSize(total, threshold) == engine.ConfirmRequired,
		Sets:            setSizes,
	}, nil
}

// Generate produces every document for one game and hands the ordered
// stream to the sink. When the size guard trips and the confirmation is
// declined, the game is skipped without error and no file is opened.
func (s *generatorServiceImpl) Generate(ctx context.Context, req config.GameRequest, opts GenerateOptions) (*GameReport, error) {
	report := &GameReport{Game: req.Game}

	job, err := s.buildJob(req, opts)
	if err != nil {
		report.Err = err
		return report, err
	}

	names, sets, err := job.Resolve()
	if err != nil {
		report.Err = err
		return report, err
	}

	est, err := estimateJob(job, opts.Threshold)
	if err != nil {
		report.Err = err
		return report, err
	}
	if est.ConfirmRequired {
		if opts.Confirm == nil || !opts.Confirm(job.Game, est.Total, est.Threshold) {
			report.Skipped = true
			return report, nil
		}
	}

	if opts.Sink == nil {
		err := fmt.Errorf("no output sink configured")
		report.Err = err
		return report, err
	}

	writer, err := opts.Sink.OpenGame(job.Game)
	if err != nil {
		report.Err = err
		return report, err
	}

	enum := engine.NewEnumerator(names, sets)
	for i := 0; i < enum.Total(); i++ {
		doc := engine.BuildDocument(job, i+1, enum.At(i))
		if err := writer.Write(doc); err != nil {
			writer.Close()
			report.Err = err
			return report, err
		}
		report.Documents++
	}

	if err := writer.Close(); err != nil {
		report.Err = err
		return report, err
	}
	return report, nil
}

// GenerateAll processes every game of the run configuration in order.
// Failures are isolated at game granularity: a rejected game yields a
// report carrying its error while sibling games still generate.
func (s *generatorServiceImpl) GenerateAll(ctx context.Context, cfg *config.RunConfig, opts GenerateOptions) ([]*GameReport, error) {
	if cfg == nil || len(cfg.Games) == 0 {
		return nil, fmt.Errorf("run configuration declares no games")
	}

	reports := make([]*GameReport, 0, len(cfg.Games))
	for _, req := range cfg.Games {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		report, _ := s.Generate(ctx, req, opts)
		reports = append(reports, report)
	}
	return reports, nil
}

// buildJob assembles a GameJob from a request: it loads the game's schema,
// removes ignored options from the declared set (and their specs, ignore
// wins over enumeration), and stamps the run-wide defaults.
func (s *generatorServiceImpl) buildJob(req config.GameRequest, opts GenerateOptions) (*engine.GameJob, error) {
	gs, err := s.schemas.LoadByGame(req.Game)
	if err != nil {
		if errors.Is(err, schema.ErrSchemaNotFound) {
			return nil, fmt.Errorf("no schema for game %q", req.Game)
		}
		return nil, fmt.Errorf("failed to load schema for game %q: %w", req.Game, err)
	}

	options := make([]schema.OptionSchema, 0, len(gs.Options))
	for _, opt := range gs.Options {
		if slices.Contains(opts.Ignore, opt.Name) {
			continue
		}
		options = append(options, opt)
	}

	specs := make(map[string]engine.OptionSpec, len(req.Options))
	for name, spec := range req.Options {
		if slices.Contains(opts.Ignore, name) {
			continue
		}
		specs[name] = spec
	}

	return &engine.GameJob{
		Game:          gs.Game,
		Options:       options,
		Specs:         specs,
		Behavior:      req.Others,
		Fixed:         req.Fixed,
		DefaultSplits: opts.DefaultSplits,
	}, nil
}
