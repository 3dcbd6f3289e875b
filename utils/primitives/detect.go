package primitives

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// Capabilities describes what the host offers for word arithmetic.
type Capabilities struct {
	Arch  string
	Brand string

	// WideMultiply is true if the target has a native 64x64 -> 128 multiply.
	WideMultiply bool

	// CarryChain is true if the CPU exposes dedicated carry-chain instructions (ADX and BMI2 on x86).
	CarryChain bool

	// Purego is true if the binary was built with the purego tag.
	Purego bool
}

var (
	capabilities = detect()
	selected     = choose(capabilities)
)

// Detect returns the capabilities read once at package initialization.
func Detect() Capabilities {
	return capabilities
}

// Default returns the [Arithmetic] selected for the host at package initialization.
func Default() Arithmetic {
	return selected
}

func detect() (c Capabilities) {

	c.Arch = runtime.GOARCH
	c.Brand = cpuid.CPU.BrandName
	c.Purego = purego

	switch c.Arch {
	case "amd64":
		c.WideMultiply = true
		c.CarryChain = cpuid.CPU.Supports(cpuid.ADX, cpuid.BMI2)
	case "arm64", "ppc64", "ppc64le", "s390x", "mips64", "mips64le", "riscv64", "loong64":
		c.WideMultiply = true
	}

	return
}

func choose(c Capabilities) Arithmetic {
	if c.Purego || !c.WideMultiply {
		return Portable{}
	}
	return Intrinsic{}
}
