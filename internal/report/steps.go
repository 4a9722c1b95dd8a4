package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/josephfleet/infodump/internal/ui"
)

const unavailable = "unavailable"

func (g *Generator) headerStep(_ context.Context) Section {
	return Section{Status: StatusOK}
}

func (g *Generator) footerStep(_ context.Context) Section {
	return Section{Status: StatusOK}
}

// identityStep reports working directory, user, hostname, kernel, time,
// and language. Each value is independent; a missing one renders as
// unavailable without affecting the rest.
func (g *Generator) identityStep(_ context.Context) Section {
	styles := g.renderer.Styles()
	id := g.provider.Identity()

	localTime := id.LocalTime
	if id.Timezone != "" {
		localTime += " (" + id.Timezone + ")"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Current Directory: %s\n", orUnavailable(id.WorkingDir))
	fmt.Fprintf(&b, "Username:          %s\n", styles.Render(ui.TagWarn, orUnavailable(id.Username)))
	fmt.Fprintf(&b, "Hostname:          %s\n", styles.Render(ui.TagIdentity, orUnavailable(id.Hostname)))
	fmt.Fprintf(&b, "Kernel:            %s\n", orUnavailable(id.Kernel))
	fmt.Fprintf(&b, "Time:              %s\n", styles.Render(ui.TagInfo, orUnavailable(localTime)))
	fmt.Fprintf(&b, "Language:          %s", styles.Render(ui.TagInfo, orUnavailable(id.Language)))

	return Section{Body: b.String(), Status: StatusOK}
}

// networkStep probes outbound reachability with a single echo request,
// then lists wired-interface addressing. An unreachable network is a
// result, not a step failure.
func (g *Generator) networkStep(ctx context.Context) Section {
	styles := g.renderer.Styles()

	var b strings.Builder
	if err := g.prober.Probe(ctx, g.probeTarget, g.probeTimeout); err != nil {
		g.logger.Debug("reachability probe failed",
			slog.String("target", g.probeTarget),
			slog.String("error", err.Error()))
		b.WriteString(styles.Render(ui.TagWarn, "Outbound connection FAILED."))
	} else {
		b.WriteString(styles.Render(ui.TagSuccess, "Outbound connection successful."))
	}
	b.WriteString("\n\nInterfaces:")

	ifaces, err := g.provider.WiredInterfaces()
	if err != nil {
		b.WriteString("\n  " + unavailable + ": " + err.Error())
		return Section{Body: b.String(), Status: StatusDegraded}
	}
	if len(ifaces) == 0 {
		// The eno/enp name filter is a heuristic; no match is common on
		// wireless-only or legacy-named hosts.
		b.WriteString("\n  " + styles.Dim.Render("none matching eno*/enp*"))
		return Section{Body: b.String(), Status: StatusOK}
	}

	for _, iface := range ifaces {
		addrs := strings.Join(iface.Addrs, ", ")
		if addrs == "" {
			addrs = "no address"
		}
		fmt.Fprintf(&b, "\n  - %s: %s", iface.Name, styles.Render(ui.TagInfo, addrs))
	}

	return Section{Body: b.String(), Status: StatusOK}
}

func (g *Generator) memoryStep(_ context.Context) Section {
	m, err := g.provider.Memory()
	if err != nil {
		return g.degraded(err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "RAM:  total %s, used %s (%.1f%%), free %s, available %s\n",
		humanize.IBytes(m.Total), humanize.IBytes(m.Used), m.UsedPercent,
		humanize.IBytes(m.Free), humanize.IBytes(m.Available))
	fmt.Fprintf(&b, "Swap: total %s, used %s (%.1f%%), free %s",
		humanize.IBytes(m.SwapTotal), humanize.IBytes(m.SwapUsed), m.SwapPercent,
		humanize.IBytes(m.SwapFree))

	return Section{Body: b.String(), Status: StatusOK}
}

func (g *Generator) diskStep(_ context.Context) Section {
	disks, err := g.provider.Disks()
	if err != nil {
		return g.degraded(err)
	}
	if len(disks) == 0 {
		return Section{Body: "no mounted filesystems found", Status: StatusOK}
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DEVICE\tMOUNT\tTYPE\tSIZE\tUSED\tAVAIL\tUSE%")
	for _, d := range disks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%.1f%%\n",
			d.Device, d.Mountpoint, d.Fstype,
			humanize.IBytes(d.Total), humanize.IBytes(d.Used),
			humanize.IBytes(d.Free), d.UsedPercent)
	}
	_ = w.Flush()

	return Section{Body: strings.TrimRight(b.String(), "\n"), Status: StatusOK}
}

func (g *Generator) filesStep(ctx context.Context) Section {
	styles := g.renderer.Styles()

	files, err := g.provider.LargestFiles(ctx, g.scanRoot, g.largestCount)
	if err != nil {
		return g.degraded(err)
	}
	if len(files) == 0 {
		return Section{
			Body:   fmt.Sprintf("no files found under %s", g.scanRoot),
			Status: StatusOK,
		}
	}

	lines := make([]string, 0, len(files))
	for _, f := range files {
		lines = append(lines, styles.Render(ui.TagInfo,
			fmt.Sprintf("%s - %s", humanize.IBytes(uint64(f.Size)), f.Path)))
	}

	return Section{Body: strings.Join(lines, "\n"), Status: StatusOK}
}

// maxCommandWidth keeps long command lines from wrecking the table layout.
const maxCommandWidth = 64

func (g *Generator) processStep(_ context.Context) Section {
	procs, err := g.provider.Processes()
	if err != nil {
		return g.degraded(err)
	}

	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].CPUPercent > procs[j].CPUPercent
	})

	// A non-positive count renders the header row only.
	limit := g.topCPUCount
	if limit < 0 {
		limit = 0
	}
	if len(procs) > limit {
		procs = procs[:limit]
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PID\tPPID\tCOMMAND\tMEM%\tCPU%")
	for _, p := range procs {
		fmt.Fprintf(w, "%d\t%d\t%s\t%.1f\t%.1f\n",
			p.PID, p.PPID, truncate(p.Command, maxCommandWidth), p.MemPercent, p.CPUPercent)
	}
	_ = w.Flush()

	return Section{Body: strings.TrimRight(b.String(), "\n"), Status: StatusOK}
}

func (g *Generator) sensorsStep(_ context.Context) Section {
	temps, err := g.provider.Temperatures()
	if err != nil {
		return g.degraded(err)
	}
	if len(temps) == 0 {
		return Section{Body: "no temperature sensors detected", Status: StatusOK}
	}

	lines := make([]string, 0, len(temps))
	for _, t := range temps {
		lines = append(lines, fmt.Sprintf("%s: %.1f°C", t.Sensor, t.Celsius))
	}

	return Section{Body: strings.Join(lines, "\n"), Status: StatusOK}
}

func (g *Generator) gpuStep(ctx context.Context) Section {
	temps, err := g.provider.GPUTemperatures(ctx)
	if err != nil {
		return g.degraded(err)
	}
	if len(temps) == 0 {
		return Section{Body: "no Nvidia GPU detected", Status: StatusOK}
	}

	lines := make([]string, 0, len(temps))
	for _, t := range temps {
		lines = append(lines, fmt.Sprintf("GPU %d: %.0f°C", t.Index, t.Celsius))
	}

	return Section{Body: strings.Join(lines, "\n"), Status: StatusOK}
}

// degraded wraps a step error into a renderable section body.
func (g *Generator) degraded(err error) Section {
	styles := g.renderer.Styles()
	return Section{
		Body:   styles.Render(ui.TagWarn, unavailable+": "+err.Error()),
		Status: StatusDegraded,
	}
}

func orUnavailable(s string) string {
	if s == "" {
		return unavailable
	}
	return s
}

// truncate shortens s to max runes, never splitting a multi-byte rune.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max-3]) + "..."
}
