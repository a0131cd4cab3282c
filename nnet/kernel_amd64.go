//go:build amd64 && !purego

package nnet

import "golang.org/x/sys/cpu"

func selectKernel() kernel {
	if cpu.X86.HasAVX2 {
		return kernel{name: "blocked16-avx2", sgemv: sgemvBlocked16}
	}
	return kernel{name: "generic", sgemv: sgemvGeneric}
}
