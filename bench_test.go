package padded

import (
	"io"
	"testing"
)

func BenchmarkRender_String(b *testing.B) {
	item := Item{String("foo"), Rune(' '), 10, After, ForbidExcess}
	for i := 0; i < b.N; i++ {
		_ = item.Render(io.Discard)
	}
}

func BenchmarkRender_WideString(b *testing.B) {
	item := Item{String("f☃☃日本"), Rune(' '), 20, Before, ForbidExcess}
	for i := 0; i < b.N; i++ {
		_ = item.Render(io.Discard)
	}
}

func BenchmarkRender_Styled(b *testing.B) {
	item := Item{Styled("\x1b[1;31mfoo\x1b[0m"), Rune(' '), 10, After, ForbidExcess}
	for i := 0; i < b.N; i++ {
		_ = item.Render(io.Discard)
	}
}

func BenchmarkRender_LargeFill(b *testing.B) {
	item := Item{String("foo"), Rune('-'), 10000, Before, ForbidExcess}
	for i := 0; i < b.N; i++ {
		_ = item.Render(io.Discard)
	}
}

func BenchmarkRender_Truncate(b *testing.B) {
	item := Item{String("foobarbazqux"), Rune(' '), 6, After, TruncateExcess}
	for i := 0; i < b.N; i++ {
		_ = item.Render(io.Discard)
	}
}

func BenchmarkPad_Int(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Pad(42, "10,right,0")
	}
}

func BenchmarkPad_Float64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Pad(4.2, "10,right")
	}
}
