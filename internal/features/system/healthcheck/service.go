package system_healthcheck

import (
	"fmt"

	"fieldtrack/internal/storage"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

type HealthcheckService struct{}

type HealthStatus struct {
	Status            string  `json:"status"`
	MemoryUsedPercent float64 `json:"memory_used_percent"`
	DiskUsedPercent   float64 `json:"disk_used_percent"`
}

func (s *HealthcheckService) CheckHealth() (*HealthStatus, error) {
	if err := storage.GetDb().Exec("SELECT 1").Error; err != nil {
		return nil, fmt.Errorf("database check failed: %w", err)
	}

	status := &HealthStatus{Status: "ok"}

	if memory, err := mem.VirtualMemory(); err == nil {
		status.MemoryUsedPercent = memory.UsedPercent
	}

	if usage, err := disk.Usage("/"); err == nil {
		status.DiskUsedPercent = usage.UsedPercent
	}

	return status, nil
}
