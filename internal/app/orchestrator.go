// Package app wires the manifest pipeline together: one linear emission
// pass per build, attached at the host's "assets are about to be
// finalized" point.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/quantmind-br/swgen-go/internal/build"
	"github.com/quantmind-br/swgen-go/internal/config"
	"github.com/quantmind-br/swgen-go/internal/domain"
	"github.com/quantmind-br/swgen-go/internal/generate"
	"github.com/quantmind-br/swgen-go/internal/imports"
	"github.com/quantmind-br/swgen-go/internal/manifest"
	"github.com/quantmind-br/swgen-go/internal/precache"
	"github.com/quantmind-br/swgen-go/internal/utils"
)

// Orchestrator runs the emission pass: build manifest, hash, name, resolve
// imports, sanitize config, generate, and register both outputs.
type Orchestrator struct {
	config    *config.Config
	builder   *precache.Builder
	resolver  *imports.Resolver
	generator domain.Generator
	logger    *utils.Logger
}

// OrchestratorOptions contains options for creating an orchestrator.
type OrchestratorOptions struct {
	Config *config.Config

	// Generator overrides the built-in template generator. Hosts that own
	// their generation service inject it here.
	Generator domain.Generator

	// Transforms rewrite the entry list before serialization.
	Transforms []domain.ManifestTransform

	Logger  *utils.Logger
	Verbose bool
}

// NewOrchestrator creates a new orchestrator with the given configuration.
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		level := config.DefaultLogLevel
		if opts.Verbose {
			level = "debug"
		}
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   level,
			Format:  config.DefaultLogFormat,
			Verbose: opts.Verbose,
		})
	}

	generator := opts.Generator
	if generator == nil {
		generator = generate.NewTemplateGenerator(logger)
	}

	builder := precache.NewBuilder(precache.BuilderOptions{
		Exclude:                   cfg.Exclude,
		Chunks:                    cfg.Chunks,
		ExcludeChunks:             cfg.ExcludeChunks,
		DontCacheBustURLsMatching: cfg.DontCacheBustURLsMatching,
		Transforms:                opts.Transforms,
		Logger:                    logger,
	})

	return &Orchestrator{
		config:    cfg,
		builder:   builder,
		resolver:  imports.NewResolver(logger),
		generator: generator,
		logger:    logger.WithComponent("emit"),
	}, nil
}

// Emit runs one emission pass against the compilation. Validation findings
// are always non-fatal warnings; any later failure aborts the pass before
// further output is registered and is surfaced both on the compilation's
// error list and as the returned error. No retries: the host re-invokes on
// the next build.
func (o *Orchestrator) Emit(ctx context.Context, comp *build.Compilation) error {
	if comp == nil {
		return domain.ErrNilCompilation
	}

	startTime := time.Now()
	o.logger.Info().
		Str("sw_dest", o.config.SWDest).
		Str("import_mode", o.config.ImportWorkboxFrom).
		Int("assets", len(comp.AssetNames())).
		Msg("Starting worker emission")

	// Step 1: non-fatal configuration findings.
	for _, warning := range o.config.Validate() {
		comp.Warn(warning)
	}

	// The filename template is checked before anything is registered so a
	// bad template never leaves partial output behind.
	if err := manifest.CheckTemplate(o.config.PrecacheManifestFilename); err != nil {
		return o.fail(comp, err)
	}

	// Step 2: resolve the runtime import.
	resolution, err := o.resolver.Resolve(o.config, comp)
	if err != nil {
		return o.fail(comp, err)
	}

	// Step 3: build, serialize, hash, name, and register the manifest.
	entries, warnings, err := o.builder.Build(comp)
	if err != nil {
		return o.fail(comp, err)
	}
	for _, warning := range warnings {
		comp.Warn(warning)
	}

	artifact, err := manifest.New(entries, manifest.Options{
		FilenameTemplate: o.config.PrecacheManifestFilename,
		ImportsDirectory: o.config.ImportsDirectory,
		PublicPath:       comp.PublicPath,
		OutputPath:       comp.OutputPath,
	})
	if err != nil {
		return o.fail(comp, err)
	}
	comp.EmitAsset(artifact.Path, []byte(artifact.Text))

	// Step 4: assemble the final import order. Ambiguous bundle scripts
	// load first, then user imports, then the manifest itself.
	importScripts := make([]string, 0, len(resolution.Prepend)+len(o.config.ImportScripts)+1)
	importScripts = append(importScripts, resolution.Prepend...)
	importScripts = append(importScripts, o.config.ImportScripts...)
	importScripts = append(importScripts, artifact.URL)

	// Step 5: sanitize and generate.
	input := config.Sanitize(o.config, artifact.Entries, importScripts, resolution.SWImport)
	result, err := o.generator.Generate(ctx, input)
	if err != nil {
		return o.fail(comp, fmt.Errorf("generation service failed: %w", err))
	}
	for _, warning := range result.Warnings {
		comp.Warn(warning)
	}

	// Step 6: register the worker script, overwriting any existing asset.
	comp.EmitAsset(o.config.SWDest, []byte(result.Script))

	o.logger.Info().
		Str("manifest", artifact.Path).
		Str("hash", artifact.Hash).
		Int("entries", len(artifact.Entries)).
		Dur("duration", time.Since(startTime)).
		Msg("Worker emission completed")

	return nil
}

// fail records a fatal emission error on the compilation and returns it.
func (o *Orchestrator) fail(comp *build.Compilation, err error) error {
	comp.Fail(err.Error())
	o.logger.Error().Err(err).Msg("Worker emission failed")
	return err
}
