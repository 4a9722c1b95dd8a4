package sysinfo

import (
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// Temperatures reads hardware temperature sensors.
func (p *SystemProvider) Temperatures() ([]Temperature, error) {
	stats, err := host.SensorsTemperatures()
	if err != nil {
		return nil, err
	}

	out := make([]Temperature, 0, len(stats))
	for _, s := range stats {
		if s.SensorKey == "" {
			continue
		}
		out = append(out, Temperature{
			Sensor:  s.SensorKey,
			Celsius: s.Temperature,
		})
	}
	return out, nil
}

// GPUTemperatures queries Nvidia GPU temperatures through nvidia-smi, the
// only stable interface the vendor exposes. Absence of the tool is an
// ordinary error for the caller to render, not a failure.
func (p *SystemProvider) GPUTemperatures(ctx context.Context) ([]GPUTemperature, error) {
	out, err := exec.CommandContext(ctx, "nvidia-smi",
		"--query-gpu=temperature.gpu", "--format=csv,noheader,nounits").Output()
	if err != nil {
		return nil, err
	}

	var temps []GPUTemperature
	for i, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		celsius, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			continue
		}
		temps = append(temps, GPUTemperature{Index: i, Celsius: celsius})
	}
	return temps, nil
}
