//go:build amd64 || arm64 || ppc64 || ppc64le || s390x || mips64 || mips64le || riscv64 || loong64
// +build amd64 arm64 ppc64 ppc64le s390x mips64 mips64le riscv64 loong64

package int128

// nativeMul64 selects mulNative for Mul: bits.Mul64 compiles to a single
// widening multiply on these architectures.
const nativeMul64 = true
