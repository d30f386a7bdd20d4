package app

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/content"
)

const cpuGraphWidth = 10

// UpdateCPUHistory samples CPU usage for the taskbar graph, at most once
// per StatsUpdateInterval.
func (d *Desktop) UpdateCPUHistory() {
	now := time.Now()
	if now.Sub(d.LastCPUUpdate) < config.StatsUpdateInterval {
		return
	}
	d.LastCPUUpdate = now

	// Interval 0 measures since the previous call, non-blocking
	percents, err := cpu.Percent(0, false)
	if err != nil || len(percents) == 0 {
		return
	}

	if len(d.CPUHistory) >= cpuGraphWidth {
		d.CPUHistory = d.CPUHistory[1:]
	}
	d.CPUHistory = append(d.CPUHistory, percents[0])
}

// UpdateRAMUsage refreshes the cached memory usage percentage.
func (d *Desktop) UpdateRAMUsage() {
	now := time.Now()
	if now.Sub(d.LastRAMUpdate) < config.StatsUpdateInterval {
		return
	}
	d.LastRAMUpdate = now

	vm, err := mem.VirtualMemory()
	if err != nil {
		return
	}
	d.RAMUsage = vm.UsedPercent
}

// GetCPUGraph returns the CPU sparkline and percentage. Always a fixed
// width string so the taskbar never shifts.
func (d *Desktop) GetCPUGraph() string {
	current := 0.0
	if len(d.CPUHistory) > 0 {
		current = d.CPUHistory[len(d.CPUHistory)-1]
	}
	return fmt.Sprintf("CPU:%s %3.0f%%", content.Sparkline(d.CPUHistory, cpuGraphWidth), current)
}

// GetRAMUsage returns the cached memory usage as a fixed-width string.
func (d *Desktop) GetRAMUsage() string {
	return fmt.Sprintf("RAM:%3.0f%%", d.RAMUsage)
}
