//go:build (!amd64 && !arm64) || purego

package nnet

func selectKernel() kernel {
	return kernel{name: "generic", sgemv: sgemvGeneric}
}
