package convert_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/mdhtml/pkg/convert"
)

func benchmarkDocument(sections int) []byte {
	var buf strings.Builder
	for i := range sections {
		buf.WriteString("## Section heading\n\nSome paragraph text.\nSecond line.\n---\n\n")
		buf.WriteString("Name|Role|Team\n---|---|---\n")
		for range i%8 + 1 {
			buf.WriteString("Ada|Engineer|Core\n")
		}
		buf.WriteString("\n")
	}
	return []byte(buf.String())
}

func BenchmarkBytes(b *testing.B) {
	content := benchmarkDocument(500)
	opts := convert.DefaultOptions()

	b.SetBytes(int64(len(content)))
	b.ReportAllocs()

	for b.Loop() {
		convert.Bytes(content, opts)
	}
}
