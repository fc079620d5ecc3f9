// Package app wires the pipeline together: config, discovery, scanning,
// batch assembly, per-size generation and file output.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"tyrepage/internal/config"
	"tyrepage/internal/content"
	"tyrepage/internal/discovery"
	"tyrepage/internal/export"
	"tyrepage/internal/logging"
	"tyrepage/internal/output"
	"tyrepage/internal/sanitise"
	"tyrepage/internal/scan"
	"tyrepage/internal/tyresize"
)

type Options struct {
	Inputs        []string
	ConfigPath    string
	OutputDir     string
	Zip           bool
	LocalBusiness bool
	NoJSONLD      bool
	LogFile       string
	CWD           string
	Stdout        io.Writer
	Stderr        io.Writer
}

type Result struct {
	Succeeded int
	Failed    int
	Skipped   int
}

type sizeOutcome struct {
	ok    bool
	files []string
}

func Run(opts Options) (Result, error) {
	cwd := strings.TrimSpace(opts.CWD)
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Result{}, fmt.Errorf("resolve working directory: %w", err)
		}
		cwd = wd
	}

	cfg, rules, paths, err := config.Load(opts.ConfigPath, cwd)
	if err != nil {
		return Result{}, err
	}
	overrideConfig(cfg, opts)

	logger, closer, err := logging.New(opts.Stdout, opts.LogFile)
	if err != nil {
		return Result{}, fmt.Errorf("init logging: %w", err)
	}
	if closer != nil {
		defer closer.Close()
	}
	logger.Emit(logging.Event{Event: "startup", Count: len(opts.Inputs)})
	logger.Emit(logging.Event{Event: "config_loaded", Input: paths.ConfigSource})

	result := Result{}
	sizes, pathInputs := splitInputs(opts.Inputs, cwd, logger, &result)

	if len(pathInputs) > 0 {
		scanned, err := scanFiles(pathInputs, rules.ColumnHints, logger)
		if err != nil {
			return result, err
		}
		sizes = append(sizes, scanned...)
	}

	batch, err := content.NewBatch(sizes, rules.ProofPoints, rules.PopularPool())
	if err != nil {
		if errors.Is(err, content.ErrEmptyBatch) && result.Skipped > 0 {
			return result, fmt.Errorf("%w (%d inputs skipped as unparseable)", err, result.Skipped)
		}
		return result, err
	}

	outDir := cfg.Output.Dir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(cwd, outDir)
	}
	if err := output.EnsureDir(outDir); err != nil {
		return result, fmt.Errorf("create output directory: %w", err)
	}

	san := sanitise.New(rules.Spellings)
	writer := export.PlainWriter{}

	// Concurrency 0 means one worker per size; otherwise the semaphore
	// caps how many sizes build at once.
	var sem chan struct{}
	if cfg.Concurrency > 0 {
		sem = make(chan struct{}, cfg.Concurrency)
	}

	outcomes := make(chan sizeOutcome, len(batch.Sizes))
	var wg sync.WaitGroup
	for _, size := range batch.Sizes {
		wg.Add(1)
		go func(size tyresize.TyreSize) {
			defer wg.Done()
			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}
			outcomes <- processSize(size, batch, san, writer, cfg, outDir, logger)
		}(size)
	}
	go func() {
		wg.Wait()
		close(outcomes)
	}()

	written := []string{}
	for outcome := range outcomes {
		if outcome.ok {
			result.Succeeded++
		} else {
			result.Failed++
		}
		written = append(written, outcome.files...)
	}

	if cfg.StructuredData.LocalBusiness {
		path, err := writeLocalBusiness(outDir, rules.Business)
		if err != nil {
			logger.Emit(logging.Event{Level: "error", Event: "write_failed", OutputFile: path, Error: err.Error()})
			result.Failed++
		} else {
			logger.Emit(logging.Event{Event: "write_ok", OutputFile: path})
			written = append(written, path)
		}
	}

	if cfg.Output.Zip && len(written) > 0 {
		archive, err := writeArchive(outDir, written)
		if err != nil {
			logger.Emit(logging.Event{Level: "error", Event: "archive_failed", OutputFile: archive, Error: err.Error()})
			result.Failed++
		} else {
			logger.Emit(logging.Event{Event: "archive_ok", OutputFile: archive, Count: len(written)})
		}
	}

	logger.Emit(logging.Event{
		Event: "finished",
		Count: result.Succeeded + result.Failed + result.Skipped,
		Error: fmt.Sprintf("success=%d failed=%d skipped=%d", result.Succeeded, result.Failed, result.Skipped),
	})
	return result, nil
}

// splitInputs sorts CLI arguments into inline sizes and filesystem
// paths. An argument that is neither is a recoverable per-item failure.
func splitInputs(inputs []string, cwd string, logger *logging.Logger, result *Result) ([]tyresize.TyreSize, []string) {
	sizes := []tyresize.TyreSize{}
	paths := []string{}
	for _, in := range inputs {
		abs := absPath(cwd, in)
		if _, err := os.Stat(abs); err == nil {
			paths = append(paths, abs)
			continue
		}
		size, err := tyresize.Parse(in)
		if err != nil {
			result.Skipped++
			logger.Emit(logging.Event{Level: "error", Event: "parse_failed", Input: in, Error: err.Error()})
			continue
		}
		sizes = append(sizes, size)
	}
	return sizes, paths
}

func scanFiles(inputs, columnHints []string, logger *logging.Logger) ([]tyresize.TyreSize, error) {
	discovered, err := discovery.Discover(inputs)
	if err != nil {
		return nil, err
	}
	for _, w := range discovered.Warnings {
		logger.Emit(logging.Event{Level: "warn", Event: "scan_warning", Error: w})
	}

	sizes := []tyresize.TyreSize{}
	for _, file := range discovered.Files {
		found, err := scan.File(file, columnHints)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			logger.Emit(logging.Event{Level: "warn", Event: "scan_empty", Input: file})
			continue
		}
		logger.Emit(logging.Event{Event: "scan_ok", Input: file, Count: len(found)})
		sizes = append(sizes, found...)
	}
	return sizes, nil
}

func processSize(size tyresize.TyreSize, batch *content.Batch, san *sanitise.Sanitizer, writer export.DocumentWriter, cfg *config.Config, outDir string, logger *logging.Logger) sizeOutcome {
	canonical := size.Canonical()
	bundle, err := batch.Build(size, san)
	if err != nil {
		logger.Emit(logging.Event{Level: "error", Event: "generate_failed", Size: canonical, Error: err.Error()})
		return sizeOutcome{}
	}
	logger.Emit(logging.Event{Event: "generate_ok", Size: canonical, Segment: string(bundle.Segment), Proof: bundle.ProofPoint})

	files, err := writeBundle(bundle, writer, cfg.StructuredData, outDir)
	if err != nil {
		logger.Emit(logging.Event{Level: "error", Event: "write_failed", Size: canonical, Error: err.Error()})
		return sizeOutcome{files: files}
	}
	for _, f := range files {
		logger.Emit(logging.Event{Event: "write_ok", Size: canonical, OutputFile: f})
	}
	return sizeOutcome{ok: true, files: files}
}

func writeBundle(bundle content.ContentBundle, writer export.DocumentWriter, sd config.StructuredDataConfig, outDir string) ([]string, error) {
	size := bundle.Size
	written := []string{}

	write := func(name string, data []byte) error {
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
		return nil
	}

	if err := write(output.MarkdownName(size), []byte(export.RenderMarkdown(bundle))); err != nil {
		return written, err
	}

	docBytes, err := writer.Write(export.BuildDocument(bundle))
	if err != nil {
		return written, fmt.Errorf("render document for %s: %w", size.Canonical(), err)
	}
	if err := write(output.DocumentName(size, writer.Ext()), docBytes); err != nil {
		return written, err
	}

	if sd.Product && bundle.Product != nil {
		data, err := export.MarshalJSONLD(bundle.Product)
		if err != nil {
			return written, err
		}
		if err := write(output.ProductName(size), data); err != nil {
			return written, err
		}
	}
	if sd.FAQ && bundle.FAQ != nil {
		data, err := export.MarshalJSONLD(bundle.FAQ)
		if err != nil {
			return written, err
		}
		if err := write(output.FAQName(size), data); err != nil {
			return written, err
		}
	}
	return written, nil
}

func writeLocalBusiness(outDir string, card config.BusinessCard) (string, error) {
	path := filepath.Join(outDir, output.LocalBusinessName)
	schema := content.BuildLocalBusiness(content.BusinessDetails{
		Name:       card.Name,
		URL:        card.URL,
		Telephone:  card.Telephone,
		PriceRange: card.PriceRange,
		Street:     card.Street,
		Locality:   card.Locality,
		Region:     card.Region,
		Postcode:   card.Postcode,
		Country:    card.Country,
		AreaServed: card.AreaServed,
	})
	data, err := export.MarshalJSONLD(schema)
	if err != nil {
		return path, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return path, fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func overrideConfig(cfg *config.Config, opts Options) {
	if strings.TrimSpace(opts.OutputDir) != "" {
		cfg.Output.Dir = opts.OutputDir
	}
	if opts.Zip {
		cfg.Output.Zip = true
	}
	if opts.LocalBusiness {
		cfg.StructuredData.LocalBusiness = true
	}
	if opts.NoJSONLD {
		cfg.StructuredData.Product = false
		cfg.StructuredData.FAQ = false
		cfg.StructuredData.LocalBusiness = false
	}
}

func absPath(cwd, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(cwd, p)
}
