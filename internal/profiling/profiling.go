// Package profiling writes pprof CPU and heap profiles for a single command
// run, driven by --profile-cpu and --profile-mem.
package profiling

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Session is an active profiling run.
type Session struct {
	cpuFile  *os.File
	heapPath string
}

// Start begins CPU profiling into cpuPath, if set, and remembers heapPath
// for Stop. Both paths may be empty, giving a no-op session.
func Start(cpuPath, heapPath string) (*Session, error) {
	s := &Session{heapPath: heapPath}
	if cpuPath == "" {
		return s, nil
	}

	f, err := os.Create(cpuPath)
	if err != nil {
		return nil, fmt.Errorf("create CPU profile file: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("start CPU profile: %w", err)
	}
	s.cpuFile = f
	return s, nil
}

// Stop flushes the CPU profile and writes the heap profile. It is safe to
// call more than once.
func (s *Session) Stop() error {
	var errs []error

	if s.cpuFile != nil {
		pprof.StopCPUProfile()
		if err := s.cpuFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close CPU profile: %w", err))
		}
		s.cpuFile = nil
	}

	if s.heapPath != "" {
		if err := writeHeap(s.heapPath); err != nil {
			errs = append(errs, err)
		}
		s.heapPath = ""
	}
	return errors.Join(errs...)
}

func writeHeap(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create heap profile file: %w", err)
	}
	defer func() { _ = f.Close() }()

	// Up-to-date allocation statistics.
	runtime.GC()

	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("write heap profile: %w", err)
	}
	return nil
}
