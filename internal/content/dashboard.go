package content

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
)

// cpuHistoryLen is how many CPU samples the dashboard graph keeps.
const cpuHistoryLen = 30

// Dashboard shows live host statistics. Sampling is throttled to
// config.StatsUpdateInterval; Render between samples reuses the last
// reading, so a 60fps desktop does not hammer /proc.
type Dashboard struct {
	lastSample time.Time

	cpuHistory []float64
	memPercent float64
	memUsed    uint64
	memTotal   uint64
	load1      float64
	load5      float64
	load15     float64

	hostname string
	platform string
	bootTime time.Time
}

// NewDashboard returns a dashboard with no samples yet; the first Render
// takes the first reading.
func NewDashboard() *Dashboard {
	return &Dashboard{}
}

func (d *Dashboard) sample() {
	now := time.Now()
	if !d.lastSample.IsZero() && now.Sub(d.lastSample) < config.StatsUpdateInterval {
		return
	}
	d.lastSample = now

	// Interval 0 measures since the previous call, non-blocking.
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		if len(d.cpuHistory) >= cpuHistoryLen {
			d.cpuHistory = d.cpuHistory[1:]
		}
		d.cpuHistory = append(d.cpuHistory, percents[0])
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		d.memPercent = vm.UsedPercent
		d.memUsed = vm.Used
		d.memTotal = vm.Total
	}

	if avg, err := load.Avg(); err == nil {
		d.load1 = avg.Load1
		d.load5 = avg.Load5
		d.load15 = avg.Load15
	}

	if d.hostname == "" {
		if info, err := host.Info(); err == nil {
			d.hostname = info.Hostname
			d.platform = info.Platform
			d.bootTime = time.Unix(int64(info.BootTime), 0)
		}
	}
}

// Render implements wm.Renderer.
func (d *Dashboard) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	d.sample()

	label := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	cpuNow := 0.0
	if len(d.cpuHistory) > 0 {
		cpuNow = d.cpuHistory[len(d.cpuHistory)-1]
	}

	graphWidth := min(width-12, cpuHistoryLen)
	if graphWidth < 4 {
		graphWidth = 4
	}
	gaugeWidth := max(width-20, 4)

	lines := []string{
		label.Render(" host ") + value.Render(d.hostname) + dim.Render(" "+d.platform),
		"",
		label.Render(" cpu  ") + value.Render(Sparkline(d.cpuHistory, graphWidth)) + value.Render(fmt.Sprintf(" %3.0f%%", cpuNow)),
		label.Render(" mem  ") + value.Render(Gauge(d.memPercent, gaugeWidth)) +
			dim.Render(fmt.Sprintf(" %s / %s", humanBytes(d.memUsed), humanBytes(d.memTotal))),
		label.Render(" load ") + value.Render(fmt.Sprintf("%.2f %.2f %.2f", d.load1, d.load5, d.load15)),
	}
	if !d.bootTime.IsZero() {
		lines = append(lines, label.Render(" up   ")+value.Render(formatUptime(time.Since(d.bootTime))))
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}

// Sparkline renders samples (0-100) as a fixed-width block graph, padded
// on the left when there are fewer samples than columns.
func Sparkline(samples []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if config.UseASCIIOnly {
		return asciiSparkline(samples, width)
	}

	blocks := []rune("▁▂▃▄▅▆▇█")
	var sb strings.Builder
	if pad := width - len(samples); pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	start := 0
	if len(samples) > width {
		start = len(samples) - width
	}
	for _, usage := range samples[start:] {
		idx := min(int(usage/12.5), len(blocks)-1)
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(blocks[idx])
	}
	return sb.String()
}

func asciiSparkline(samples []float64, width int) string {
	marks := []byte("_.-=^")
	var sb strings.Builder
	if pad := width - len(samples); pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	start := 0
	if len(samples) > width {
		start = len(samples) - width
	}
	for _, usage := range samples[start:] {
		idx := min(int(usage/20), len(marks)-1)
		if idx < 0 {
			idx = 0
		}
		sb.WriteByte(marks[idx])
	}
	return sb.String()
}

// Gauge renders a percentage as a horizontal bar.
func Gauge(percent float64, width int) string {
	if width <= 2 {
		return ""
	}
	inner := width - 2
	filled := int(percent / 100 * float64(inner))
	if filled < 0 {
		filled = 0
	}
	if filled > inner {
		filled = inner
	}
	fill, rest := "█", "░"
	if config.UseASCIIOnly {
		fill, rest = "#", "-"
	}
	return "[" + strings.Repeat(fill, filled) + strings.Repeat(rest, inner-filled) + "]"
}

func humanBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
