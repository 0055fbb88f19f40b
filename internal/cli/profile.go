package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"
)

// MemorySampleRate How often to dump the memory to a file in HZ. Values of less than 1 are recommended to avoid
// having to sort through too many dump files
var MemorySampleRate = 0.5

// Profiler samples the CPU into one file and the heap into a series of dumps, both written when it stops
type Profiler struct {
	cpuOutput *os.File

	memDumpPath string
	heapDumps   [][]byte
	stopMemory  chan struct{}
	memoryDone  chan struct{}
}

func (p *Profiler) StartCPUProfiler(outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("error creating CPU profile: %w", err)
	}
	runtime.SetCPUProfileRate(500)
	if err = pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("error starting CPU profiler: %w", err)
	}
	p.cpuOutput = f
	return nil
}

func (p *Profiler) StartMemoryProfiler(dumpPath string) {
	if MemorySampleRate <= 0 {
		return
	}
	p.memDumpPath = dumpPath
	p.stopMemory = make(chan struct{})
	p.memoryDone = make(chan struct{})

	go func() {
		defer close(p.memoryDone)
		ticker := time.NewTicker(time.Duration((1/MemorySampleRate)*1000) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-p.stopMemory:
				return
			case <-ticker.C:
				p.dumpMemoryProfile()
			}
		}
	}()
}

func (p *Profiler) dumpMemoryProfile() {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err == nil {
		p.heapDumps = append(p.heapDumps, w.Bytes())
	}
}

// Stop finishes both profilers, if running, and writes their output. It is safe to call more than once
func (p *Profiler) Stop() error {
	var errs []error
	if p.cpuOutput != nil {
		pprof.StopCPUProfile()
		if err := p.cpuOutput.Close(); err != nil {
			errs = append(errs, err)
		}
		p.cpuOutput = nil
	}

	if p.stopMemory != nil {
		close(p.stopMemory)
		<-p.memoryDone
		p.stopMemory = nil
		p.dumpMemoryProfile()
		if err := os.MkdirAll(p.memDumpPath, 0o755); err != nil {
			errs = append(errs, err)
		}
		for dIdx, dump := range p.heapDumps {
			path := filepath.Join(p.memDumpPath, fmt.Sprintf("mem-%d.mprof", dIdx))
			if err := os.WriteFile(path, dump, 0o644); err != nil {
				errs = append(errs, fmt.Errorf("error writing memory profile: %w", err))
			}
		}
		p.heapDumps = nil
	}

	if len(errs) > 0 {
		return fmt.Errorf("error stopping profilers: %v", errs)
	}
	return nil
}
