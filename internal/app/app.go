// Package app implements the application layer for oematch.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"go.trai.ch/oematch/internal/adapters/detector"
	"go.trai.ch/oematch/internal/core/domain"
	"go.trai.ch/oematch/internal/core/ports"
	"go.trai.ch/oematch/internal/engine/catalog"
	"go.trai.ch/oematch/internal/engine/matcher"
	"go.trai.ch/oematch/internal/engine/remediator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	inventory    ports.InventoryLoader
	source       ports.CatalogSource
	store        ports.SnapshotStore
	patched      ports.PatchedCVESource
	vulns        ports.VulnerabilityService
	sbom         ports.SBOMWriter
	renderer     ports.ReportRenderer
	metrics      ports.Metrics
	tracer       ports.Tracer
	remediator   *remediator.Remediator
	logger       ports.Logger
	out          io.Writer
	format       string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	inventory ports.InventoryLoader,
	source ports.CatalogSource,
	store ports.SnapshotStore,
	patched ports.PatchedCVESource,
	vulns ports.VulnerabilityService,
	sbom ports.SBOMWriter,
	renderer ports.ReportRenderer,
	metrics ports.Metrics,
	tracer ports.Tracer,
	rem *remediator.Remediator,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		inventory:    inventory,
		source:       source,
		store:        store,
		patched:      patched,
		vulns:        vulns,
		sbom:         sbom,
		renderer:     renderer,
		metrics:      metrics,
		tracer:       tracer,
		remediator:   rem,
		logger:       log,
		out:          os.Stdout,
	}
}

// WithOutput redirects reports to w instead of stdout.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithFormat forces a report format ("styled", "plain" or "json") instead of
// detecting one from the terminal.
func (a *App) WithFormat(format string) *App {
	a.format = format
	return a
}

// SetVerbose enables debug logging when the logger supports it.
func (a *App) SetVerbose(enable bool) {
	if v, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		v.SetVerbose(enable)
	}
}

// CatalogFlags overrides the catalog section of the configuration.
type CatalogFlags struct {
	URL      string
	CacheDir string
	Offline  bool
	Refresh  bool
}

func (f CatalogFlags) apply(opts *domain.CatalogOptions) {
	if f.URL != "" {
		opts.BaseURL = f.URL
	}
	if f.CacheDir != "" {
		opts.CacheDir = f.CacheDir
	}
	opts.Offline = opts.Offline || f.Offline
	opts.Refresh = opts.Refresh || f.Refresh
}

func applyInventory(cfg *domain.InventorySources, flags domain.InventorySources) {
	if flags.LicenseManifest != "" {
		cfg.LicenseManifest = flags.LicenseManifest
	}
	if flags.LayersReport != "" {
		cfg.LayersReport = flags.LayersReport
	}
	if flags.TaskDepends != "" {
		cfg.TaskDepends = flags.TaskDepends
	}
	if flags.Target != "" {
		cfg.Target = flags.Target
	}
	if flags.KernelRecipe != "" {
		cfg.KernelRecipe = flags.KernelRecipe
	}
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	Inventory          domain.InventorySources
	Catalog            CatalogFlags
	MaxVersionDistance string
	Workers            int
	SBOMPath           string
	Project            string
	ProjectVersion     string
	JSON               bool
	OutputMode         string
	ShowUnmatched      bool
	MetricsFile        string
}

// Resolve matches the local inventory against the layer index and prints a summary.
//
//nolint:cyclop,funlen // orchestration function
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) error {
	// 1. Load and merge configuration
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	applyInventory(&cfg.Inventory, opts.Inventory)
	opts.Catalog.apply(&cfg.Catalog)
	override(&cfg.Match.MaxVersionDistance, opts.MaxVersionDistance)
	if opts.Workers > 0 {
		cfg.Match.Workers = opts.Workers
	}
	override(&cfg.BlackDuck.Project, opts.Project)
	override(&cfg.BlackDuck.Version, opts.ProjectVersion)

	// 2. Validate before any I/O
	budget, err := domain.ParseDistanceBudget(cfg.Match.MaxVersionDistance)
	if err != nil {
		return err
	}
	if opts.SBOMPath != "" && cfg.BlackDuck.Project == "" {
		return zerr.With(domain.ErrInvalidConfig, "field", "project")
	}

	// 3. Load inputs
	var recipes []*domain.LocalRecipe
	err = a.phase(ctx, "inventory.load", func(ctx context.Context, span ports.Span) error {
		var loadErr error
		recipes, loadErr = a.inventory.Load(ctx, cfg.Inventory)
		span.SetAttribute("recipes", len(recipes))
		return loadErr
	})
	if err != nil {
		return err
	}

	var index *catalog.Index
	err = a.phase(ctx, "catalog.load", func(ctx context.Context, span ports.Span) error {
		cat, loadErr := a.source.Load(ctx, cfg.Catalog)
		if loadErr != nil {
			return loadErr
		}
		index = catalog.NewIndex(cat)
		span.SetAttribute("recipes", index.Stats().Recipes)
		return nil
	})
	if err != nil {
		return err
	}

	// 4. Resolve
	err = a.phase(ctx, "recipes.resolve", func(ctx context.Context, span ports.Span) error {
		span.SetAttribute("max_version_distance", budget.String())
		resolver := matcher.NewResolver(index, budget, a.logger)
		return resolver.ResolveAll(ctx, recipes, cfg.Match.Workers)
	})
	if err != nil {
		return err
	}
	for _, r := range recipes {
		a.metrics.ObserveMatch(r.Match)
	}

	// 5. Outputs
	if opts.SBOMPath != "" {
		err = a.phase(ctx, "sbom.write", func(_ context.Context, _ ports.Span) error {
			return a.writeSBOM(opts.SBOMPath, cfg.BlackDuck.Project, cfg.BlackDuck.Version, recipes)
		})
		if err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("wrote SBOM to %s", opts.SBOMPath))
	}

	reportOpts := a.reportOptions(opts.OutputMode, opts.JSON)
	if err := a.renderer.RenderSummary(a.out, domain.Summarize(recipes), reportOpts); err != nil {
		return err
	}
	if opts.ShowUnmatched {
		if err := a.renderer.RenderUnmatched(a.out, recipes, reportOpts); err != nil {
			return err
		}
	}

	return a.writeMetrics(opts.MetricsFile)
}

func (a *App) writeSBOM(path, project, version string, recipes []*domain.LocalRecipe) (err error) {
	//nolint:gosec // path is provided by the user on the command line
	f, err := os.Create(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSBOMWriteFailed.Error()), "path", path)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = zerr.With(zerr.Wrap(closeErr, domain.ErrSBOMWriteFailed.Error()), "path", path)
		}
	}()
	return a.sbom.Write(f, project, version, recipes)
}

// CatalogInfo prints the size of the cached layer index snapshot.
func (a *App) CatalogInfo(ctx context.Context, flags CatalogFlags, jsonOutput bool) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	flags.apply(&cfg.Catalog)
	cfg.Catalog.Offline = true
	cfg.Catalog.Refresh = false

	cat, err := a.source.Load(ctx, cfg.Catalog)
	if err != nil {
		return err
	}
	stats := catalog.NewIndex(cat).Stats()

	if a.reportOptions("", jsonOutput).Format == domain.FormatJSON {
		return writeJSON(a.out, stats)
	}
	_, err = fmt.Fprintf(a.out,
		"Layer index snapshot %s\n  %-24s %d\n  %-24s %d\n  %-24s %d\n  %-24s %d\n  %-24s %d\n",
		cfg.Catalog.CacheDir,
		"Layers", stats.Layers,
		"Branches", stats.Branches,
		"Layer branches", stats.LayerBranches,
		"Recipes", stats.Recipes,
		"Distinct recipe names", stats.RecipeNames,
	)
	return err
}

// FetchCatalog downloads a fresh layer index snapshot into the cache.
func (a *App) FetchCatalog(ctx context.Context, flags CatalogFlags) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	flags.apply(&cfg.Catalog)
	if cfg.Catalog.Offline {
		return zerr.With(domain.ErrInvalidConfig, "offline", true)
	}
	cfg.Catalog.Refresh = true

	return a.phase(ctx, "catalog.fetch", func(ctx context.Context, span ports.Span) error {
		cat, loadErr := a.source.Load(ctx, cfg.Catalog)
		if loadErr != nil {
			return loadErr
		}
		stats := catalog.NewIndex(cat).Stats()
		span.SetAttribute("recipes", stats.Recipes)
		a.logger.Info(fmt.Sprintf("fetched %d recipes across %d layers into %s",
			stats.Recipes, stats.Layers, cfg.Catalog.CacheDir))
		return nil
	})
}

// RemediateOptions configuration for the Remediate method.
type RemediateOptions struct {
	CVEFile        string
	Inventory      domain.InventorySources
	ServerURL      string
	TokenEnv       string
	TrustCert      bool
	Project        string
	ProjectVersion string
	Status         string
	BatchSize      int
	BatchDelay     string
	Comment        string
	JSON           bool
	OutputMode     string
	MetricsFile    string
}

// Remediate marks the vulnerabilities patched by the build as remediated on
// the Black Duck server. It returns domain.ErrRemediationFailed when any
// record could not be updated.
//
//nolint:cyclop,funlen // orchestration function
func (a *App) Remediate(ctx context.Context, opts RemediateOptions) error {
	// 1. Load and merge configuration
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	applyInventory(&cfg.Inventory, opts.Inventory)
	override(&cfg.BlackDuck.URL, opts.ServerURL)
	override(&cfg.BlackDuck.TokenEnv, opts.TokenEnv)
	cfg.BlackDuck.TrustCert = cfg.BlackDuck.TrustCert || opts.TrustCert
	override(&cfg.BlackDuck.Project, opts.Project)
	override(&cfg.BlackDuck.Version, opts.ProjectVersion)
	override(&cfg.Remediation.Status, opts.Status)
	override(&cfg.Remediation.Comment, opts.Comment)
	if opts.BatchSize > 0 {
		cfg.Remediation.BatchSize = opts.BatchSize
	}
	if opts.BatchDelay != "" {
		d, parseErr := parseDelay(opts.BatchDelay)
		if parseErr != nil {
			return parseErr
		}
		cfg.Remediation.BatchDelay = d
	}

	// 2. Validate before any I/O
	status, err := domain.ParseRemediationStatus(cfg.Remediation.Status)
	if err != nil {
		return err
	}
	if opts.CVEFile == "" {
		return zerr.With(domain.ErrInvalidConfig, "field", "cve_file")
	}
	if cfg.BlackDuck.Project == "" || cfg.BlackDuck.Version == "" {
		return zerr.With(domain.ErrInvalidConfig, "field", "project")
	}

	// 3. Patched CVEs, optionally restricted to recipes of the build
	known, err := a.knownRecipes(ctx, cfg.Inventory)
	if err != nil {
		return err
	}
	patched, err := a.patched.Load(opts.CVEFile, known)
	if err != nil {
		return err
	}

	// 4. Server side records
	var vulns []domain.Vulnerability
	var session ports.VulnerabilitySession
	err = a.phase(ctx, "vulnerabilities.fetch", func(ctx context.Context, span ports.Span) error {
		var phaseErr error
		session, phaseErr = a.vulns.Connect(ctx, cfg.BlackDuck)
		if phaseErr != nil {
			return phaseErr
		}
		href, phaseErr := session.ProjectVersion(ctx, cfg.BlackDuck.Project, cfg.BlackDuck.Version)
		if phaseErr != nil {
			return phaseErr
		}
		vulns, phaseErr = session.Vulnerabilities(ctx, href)
		span.SetAttribute("vulnerabilities", len(vulns))
		return phaseErr
	})
	if err != nil {
		return err
	}

	// 5. Remediate
	var report domain.RemediationReport
	err = a.phase(ctx, "vulnerabilities.remediate", func(ctx context.Context, span ports.Span) error {
		var runErr error
		report, runErr = a.remediator.Run(ctx, session, vulns, patched, remediator.Options{
			Status:     status,
			Comment:    cfg.Remediation.Comment,
			BatchSize:  cfg.Remediation.BatchSize,
			BatchDelay: cfg.Remediation.BatchDelay,
		})
		span.SetAttribute("remediated", report.Remediated)
		span.SetAttribute("failed", report.Failed())
		return runErr
	})
	a.metrics.ObserveRemediation(report)
	if err != nil {
		return err
	}

	if err := a.renderer.RenderRemediation(a.out, report, a.reportOptions(opts.OutputMode, opts.JSON)); err != nil {
		return err
	}
	if err := a.writeMetrics(opts.MetricsFile); err != nil {
		return err
	}
	if report.Failed() > 0 {
		return domain.ErrRemediationFailed
	}
	return nil
}

// knownRecipes returns a filter accepting the recipes of the build, or nil
// when no inventory source is configured.
func (a *App) knownRecipes(ctx context.Context, src domain.InventorySources) (func(string) bool, error) {
	if src.LicenseManifest == "" && src.TaskDepends == "" {
		return nil, nil
	}
	recipes, err := a.inventory.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	names := make(map[string]struct{}, len(recipes))
	for _, r := range recipes {
		names[r.Name] = struct{}{}
	}
	return func(name string) bool {
		_, ok := names[name]
		return ok
	}, nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	CacheDir string
}

// Clean removes the cached layer index snapshot.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	dir := options.CacheDir
	if dir == "" {
		cfg, err := a.configLoader.Load(".")
		if err != nil {
			return zerr.Wrap(err, "failed to load configuration")
		}
		dir = cfg.Catalog.CacheDir
	}

	a.logger.Info("removing layer index cache...")
	if err := a.store.Clear(dir); err != nil {
		return zerr.Wrap(err, "failed to remove layer index cache")
	}
	a.logger.Info("removed layer index cache")
	return nil
}

func (a *App) phase(ctx context.Context, name string, fn func(context.Context, ports.Span) error) error {
	ctx, span := a.tracer.Start(ctx, name)
	defer span.End()
	if err := fn(ctx, span); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (a *App) reportOptions(mode string, jsonOutput bool) domain.ReportOptions {
	if mode == "" {
		mode = a.format
	}
	return domain.ReportOptions{
		Format: detector.ResolveFormat(detector.DetectEnvironment(), mode, jsonOutput),
	}
}

func (a *App) writeMetrics(path string) error {
	if path == "" {
		return nil
	}
	if err := a.metrics.WriteFile(path); err != nil {
		return err
	}
	a.logger.Debug(fmt.Sprintf("wrote metrics to %s", path))
	return nil
}

func parseDelay(value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return 0, zerr.With(domain.ErrInvalidConfig, "remediation.batch_delay", value)
	}
	return d, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
