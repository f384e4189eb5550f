// Package pipeline runs the catalogue generator end to end:
// load → synthesize → emit → verify, for the Go region and the markdown table.
package pipeline

import (
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/teranos/smufl/config"
	"github.com/teranos/smufl/errors"
	"github.com/teranos/smufl/glyphgen"
	"github.com/teranos/smufl/glyphgen/golang"
	"github.com/teranos/smufl/glyphgen/markdown"
	"github.com/teranos/smufl/logger"
)

// Options configures one run.
type Options struct {
	config.GlyphgenConfig

	// Write corrects drifted files on disk; the run still reports the drift
	Write bool
}

// OptionsFromConfig builds run options from a loaded configuration.
func OptionsFromConfig(cfg *config.Config, write bool) Options {
	return Options{GlyphgenConfig: cfg.Glyphgen, Write: write}
}

// Report holds the outcome of a run.
type Report struct {
	// Glyphs is the number of catalogue entries generated
	Glyphs  int
	Results []*glyphgen.CheckResult
}

// UpToDate reports whether every generated file matched.
func (r *Report) UpToDate() bool {
	for _, res := range r.Results {
		if !res.UpToDate {
			return false
		}
	}
	return true
}

// Err returns an ErrDrift error naming every out-of-date file, or nil.
func (r *Report) Err() error {
	var err error
	for _, res := range r.Results {
		if driftErr := res.Err(); driftErr != nil {
			if err == nil {
				err = driftErr
			} else {
				err = errors.WithSecondaryError(err, driftErr)
			}
		}
	}
	return err
}

// Run generates the catalogue from opts.Metadata and verifies opts.Target
// and, if set, opts.Docs. Malformed metadata or an unreadable output aborts
// before anything is written. If a write fails, the report so far is
// returned with the error.
func Run(fs afero.Fs, opts Options) (*Report, error) {
	log := logger.ComponentLogger("glyphgen")
	start := time.Now()

	variants, err := build(fs, opts.Metadata)
	if err != nil {
		return nil, err
	}
	log.Debugw("Synthesized identifiers",
		logger.FieldMetadata, opts.Metadata,
		logger.FieldCount, len(variants))

	generators := []struct {
		gen     glyphgen.Generator
		path    string
		compare func(afero.Fs, string, string) (*glyphgen.Update, error)
	}{
		{golang.NewGenerator(opts.TypeName, opts.ConstPrefix), opts.Target, glyphgen.CompareRegion},
		{markdown.NewGenerator(filepath.Base(opts.Metadata), opts.ConstPrefix), opts.Docs, glyphgen.CompareFile},
	}

	// Render and compare everything first so a generator defect or an
	// unreadable output cannot leave a partial write
	outputs := make([]string, len(generators))
	for i, g := range generators {
		if g.path != "" {
			outputs[i] = g.gen.GenerateFile(variants)
		}
	}

	updates := make([]*glyphgen.Update, len(generators))
	for i, g := range generators {
		if g.path == "" {
			continue
		}
		update, err := g.compare(fs, g.path, outputs[i])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to verify %s output", g.gen.Language())
		}
		updates[i] = update
	}

	report := &Report{Glyphs: len(variants)}
	for i, g := range generators {
		update := updates[i]
		if update == nil {
			continue
		}
		report.Results = append(report.Results, update.CheckResult)

		if opts.Write {
			if err := update.Write(fs); err != nil {
				return report, errors.Wrapf(err, "failed to write %s output", g.gen.Language())
			}
		}

		log.Infow("Verified generated file",
			logger.FieldLanguage, g.gen.Language(),
			logger.FieldFile, g.path,
			logger.FieldStatus, status(update.CheckResult),
			logger.FieldSize, len(outputs[i]))
	}

	log.Debugw("Generation finished",
		logger.FieldCount, report.Glyphs,
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return report, nil
}

func build(fs afero.Fs, path string) ([]glyphgen.Variant, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open glyph metadata %s", path)
	}
	defer f.Close()

	variants, err := glyphgen.Build(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return variants, nil
}

func status(r *glyphgen.CheckResult) string {
	switch {
	case r.UpToDate:
		return "up to date"
	case r.Written:
		return "regenerated"
	default:
		return "out of date"
	}
}
