package sgd

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// DenseStrategy selects how O(d) passes over the coefficient buffer run.
// Sparse O(nnz) paths never consult it.
type DenseStrategy int

const (
	// StrategyLoop uses plain Go loops; cheapest for short vectors
	StrategyLoop DenseStrategy = iota
	// StrategyBLAS routes dense passes through gonum blas64 (Scal/Axpy)
	StrategyBLAS
)

func (s DenseStrategy) String() string {
	switch s {
	case StrategyLoop:
		return "loop"
	case StrategyBLAS:
		return "blas"
	default:
		return "unknown"
	}
}

// AdaptiveConfig holds configuration for dense strategy selection
type AdaptiveConfig struct {
	// Vectors with at least this many coefficients use StrategyBLAS.
	// Lowered when the CPU has wide SIMD units.
	BLASThreshold int

	// Architecture-specific settings
	HasAVX2   bool
	HasAVX512 bool
	NumCores  int
}

// DefaultAdaptiveConfig returns defaults for the current system
func DefaultAdaptiveConfig() AdaptiveConfig {
	cfg := AdaptiveConfig{
		BLASThreshold: 1024,
		HasAVX2:       cpuid.CPU.Supports(cpuid.AVX2),
		HasAVX512:     cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512DQ),
		NumCores:      runtime.NumCPU(),
	}
	switch {
	case cfg.HasAVX512:
		cfg.BLASThreshold = 256
	case cfg.HasAVX2:
		cfg.BLASThreshold = 512
	}
	return cfg
}

// SelectDenseStrategy chooses the dense kernel for a vector of the given size
func SelectDenseStrategy(vectorSize int, config AdaptiveConfig) DenseStrategy {
	if config.BLASThreshold <= 0 || vectorSize < config.BLASThreshold {
		return StrategyLoop
	}
	return StrategyBLAS
}
