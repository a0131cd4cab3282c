//go:build arm64 && !purego

package nnet

import "golang.org/x/sys/cpu"

func selectKernel() kernel {
	if cpu.ARM64.HasASIMD {
		return kernel{name: "blocked16-asimd", sgemv: sgemvBlocked16}
	}
	return kernel{name: "generic", sgemv: sgemvGeneric}
}
