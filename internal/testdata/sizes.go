package testdata

type Size struct {
	Name string
	N    int
}

// Sizes covers message lengths below, at, and well past the 64-byte SHA-1 block.
var Sizes []Size = []Size{
	{"1B", 1},
	{"64B", 64},
	{"256B", 256},
	{"1KiB", 1024},
	{"8KiB", 8 * 1024},
	{"64KiB", 64 * 1024},
	{"1MiB", 1024 * 1024},
}
