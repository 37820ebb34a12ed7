package matrix

import "slices"

// knownArchs lists the GOARCH values the go tool recognizes, as in
// go/build's syslist.
var knownArchs = []string{
	"386", "amd64", "amd64p32", "arm", "arm64", "arm64be", "armbe",
	"loong64", "mips", "mips64", "mips64le", "mips64p32", "mips64p32le", "mipsle",
	"ppc", "ppc64", "ppc64le", "riscv", "riscv64", "s390", "s390x",
	"sparc", "sparc64", "wasm",
}

// IsArch reports whether tag is a GOARCH value. A build sets exactly one.
func IsArch(tag string) bool {
	_, ok := slices.BinarySearch(knownArchs, tag)
	return ok
}
