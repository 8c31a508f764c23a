package pprof

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"runtime/trace"
	"sync"
)

// Config names the files a profiled ttok run writes. Empty paths are skipped.
type Config struct {
	CPUProfile   string // sampled for the whole run
	HeapProfile  string // written once, when the run stops
	TraceProfile string // execution trace of the whole run
}

// Enabled reports whether any profile is requested.
func (c Config) Enabled() bool {
	return c.CPUProfile != "" || c.HeapProfile != "" || c.TraceProfile != ""
}

// Handler owns the profile files of one run
type Handler struct {
	config    Config
	cpuFile   *os.File
	traceFile *os.File

	mu      sync.Mutex
	stopped bool
}

func NewHandler(config Config) *Handler {
	return &Handler{config: config}
}

// Start begins CPU sampling and tracing. On failure nothing is left running.
func (h *Handler) Start() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.config.CPUProfile != "" {
		f, err := createProfileFile(h.config.CPUProfile)
		if err != nil {
			return fmt.Errorf("failed to create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return fmt.Errorf("failed to start CPU profiling: %w", err)
		}
		h.cpuFile = f
	}

	if h.config.TraceProfile != "" {
		f, err := createProfileFile(h.config.TraceProfile)
		if err != nil {
			h.stopCPU()
			return fmt.Errorf("failed to create trace profile: %w", err)
		}
		if err := trace.Start(f); err != nil {
			f.Close()
			h.stopCPU()
			return fmt.Errorf("failed to start execution tracing: %w", err)
		}
		h.traceFile = f
	}

	return nil
}

// Stop finishes every running profile and writes the heap profile. It is
// safe to call more than once.
func (h *Handler) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopped {
		return nil
	}
	h.stopped = true

	var errs []error
	if err := h.stopCPU(); err != nil {
		errs = append(errs, err)
	}

	if h.traceFile != nil {
		trace.Stop()
		if err := h.traceFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close trace profile: %w", err))
		}
		h.traceFile = nil
	}

	if h.config.HeapProfile != "" {
		if err := writeHeapProfile(h.config.HeapProfile); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (h *Handler) stopCPU() error {
	if h.cpuFile == nil {
		return nil
	}
	pprof.StopCPUProfile()
	err := h.cpuFile.Close()
	h.cpuFile = nil
	if err != nil {
		return fmt.Errorf("failed to close CPU profile: %w", err)
	}
	return nil
}

func writeHeapProfile(path string) error {
	f, err := createProfileFile(path)
	if err != nil {
		return fmt.Errorf("failed to create heap profile: %w", err)
	}
	defer f.Close()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("failed to write heap profile: %w", err)
	}
	return nil
}

func createProfileFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.Create(path)
}
