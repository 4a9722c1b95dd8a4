// Package report implements the diagnostic report generator: a fixed,
// ordered list of best-effort inspection steps, each producing one titled
// section written to the output as soon as it is ready.
//
// No step's failure aborts the run; a failing step degrades to a section
// that carries the error text. A complete run always succeeds.
package report

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/josephfleet/infodump/internal/sysinfo"
)

// Section titles, in report order.
const (
	TitleHeader    = "INFODUMP DIAGNOSTIC REPORT"
	TitleIdentity  = "SYSTEM INFO"
	TitleNetwork   = "NETWORK"
	TitleMemory    = "MEMORY"
	TitleDisks     = "DISK USAGE"
	TitleFiles     = "LARGEST FILES"
	TitleProcesses = "TOP CPU PROCESSES"
	TitleSensors   = "TEMPERATURES"
	TitleGPU       = "NVIDIA GPU"
	TitleFooter    = "END OF REPORT"
)

// Probe and scan defaults.
const (
	DefaultProbeTarget  = "1.1.1.1"
	DefaultProbeTimeout = 1 * time.Second
	DefaultScanRoot     = "/home"
	DefaultTopCount     = 3
)

// Status classifies a section's outcome.
type Status int

const (
	// StatusOK means the step produced its data.
	StatusOK Status = iota
	// StatusDegraded means the underlying query failed; the body carries
	// whatever could be shown instead.
	StatusDegraded
)

// String returns the string representation of a Status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// Section is one titled block of the report. Sections are produced
// transiently and written immediately; nothing retains them after printing.
type Section struct {
	Title  string
	Body   string
	Status Status
}

// Generator runs the inspection steps in order and renders each section.
type Generator struct {
	provider sysinfo.Provider
	prober   sysinfo.Prober
	renderer *Renderer
	logger   *slog.Logger

	probeTarget  string
	probeTimeout time.Duration
	scanRoot     string
	largestCount int
	topCPUCount  int
	sensors      bool
	gpu          bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithRenderer sets the section renderer.
func WithRenderer(r *Renderer) Option {
	return func(g *Generator) {
		g.renderer = r
	}
}

// WithLogger sets the logger for step timing and failures.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithProbeTarget overrides the reachability probe destination.
func WithProbeTarget(host string) Option {
	return func(g *Generator) {
		g.probeTarget = host
	}
}

// WithProbeTimeout overrides the reachability probe timeout.
func WithProbeTimeout(d time.Duration) Option {
	return func(g *Generator) {
		g.probeTimeout = d
	}
}

// WithScanRoot sets the root of the largest-files scan.
func WithScanRoot(root string) Option {
	return func(g *Generator) {
		g.scanRoot = root
	}
}

// WithLargestCount sets how many files the largest-files section lists.
func WithLargestCount(n int) Option {
	return func(g *Generator) {
		g.largestCount = n
	}
}

// WithTopCPUCount sets how many processes the top-CPU section lists.
func WithTopCPUCount(n int) Option {
	return func(g *Generator) {
		g.topCPUCount = n
	}
}

// WithSensors enables the temperature section.
func WithSensors(enabled bool) Option {
	return func(g *Generator) {
		g.sensors = enabled
	}
}

// WithGPU enables the Nvidia GPU temperature section.
func WithGPU(enabled bool) Option {
	return func(g *Generator) {
		g.gpu = enabled
	}
}

// New creates a Generator with the given capabilities and options.
func New(provider sysinfo.Provider, prober sysinfo.Prober, opts ...Option) *Generator {
	g := &Generator{
		provider:     provider,
		prober:       prober,
		renderer:     NewRenderer(os.Stdout, false),
		logger:       slog.Default(),
		probeTarget:  DefaultProbeTarget,
		probeTimeout: DefaultProbeTimeout,
		scanRoot:     DefaultScanRoot,
		largestCount: DefaultTopCount,
		topCPUCount:  DefaultTopCount,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// step is one inspection step: a fixed title plus the query that fills in
// the section body.
type step struct {
	title string
	run   func(ctx context.Context) Section
}

func (g *Generator) steps() []step {
	steps := []step{
		{TitleHeader, g.headerStep},
		{TitleIdentity, g.identityStep},
		{TitleNetwork, g.networkStep},
		{TitleMemory, g.memoryStep},
		{TitleDisks, g.diskStep},
		{TitleFiles, g.filesStep},
		{TitleProcesses, g.processStep},
	}
	if g.sensors {
		steps = append(steps, step{TitleSensors, g.sensorsStep})
	}
	if g.gpu {
		steps = append(steps, step{TitleGPU, g.gpuStep})
	}
	return append(steps, step{TitleFooter, g.footerStep})
}

// Run executes every step in order, rendering each section as it is
// produced. Run never fails: a degraded report is still a report.
func (g *Generator) Run(ctx context.Context) error {
	for _, section := range g.Sections(ctx) {
		g.renderer.Section(section)
	}
	return nil
}

// Sections executes every step in order and returns the produced sections.
// Exposed so callers and tests can inspect the report without rendering.
func (g *Generator) Sections(ctx context.Context) []Section {
	steps := g.steps()
	sections := make([]Section, 0, len(steps))

	for _, s := range steps {
		if ctx.Err() != nil {
			g.logger.Debug("run interrupted",
				slog.String("next_section", s.title))
			break
		}

		start := time.Now()
		section := s.run(ctx)
		section.Title = s.title

		g.logger.Debug("step complete",
			slog.String("section", s.title),
			slog.String("status", section.Status.String()),
			slog.Duration("elapsed", time.Since(start)))

		sections = append(sections, section)
	}

	return sections
}
