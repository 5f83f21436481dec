package fuzztests

import (
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

var inlineSeeds = []string{
	"",
	"type Foo { x: Int }",
	"fnc add(a: int, b: int) -> int { add(a, b) }",
	"hello.world = \"str \\\" esc\" * 3px",
	"x = \"unterminated",
	"\"\\",
	"\xEF\xBB\xBFa\r\nb\rc",
	"界 = 😀 -> - - >",
	"\xff\xfe",
}

// addSeeds feeds inline snippets plus any *.pineapple files under
// testdata/ next to the package.
func addSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	paths, _ := filepath.Glob(filepath.Join("testdata", "*.pineapple"))
	for _, p := range paths {
		// #nosec G304 -- fixed testdata location
		src, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		f.Add(clampSeed(src))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}
