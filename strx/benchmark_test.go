// File: benchmark_test.go
// Title: Performance Benchmarks for strx
// Description: Benchmarks for the hot View and Buffer operations: search,
//              hashing, appending under growth, replacement, and splitting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-29
// Modified: 2026-07-29
//
// Change History:
// - 2026-07-29 v0.1.0: Initial benchmark implementation

package strx

import (
	"testing"
)

func BenchmarkHash(b *testing.B) {
	testViews := []View{
		OfString("short"),
		OfString("a medium sized line of configuration text"),
		OfString("a considerably longer line of text that spans enough bytes to exercise the hash loop properly"),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = testViews[i%len(testViews)].Hash()
	}
}

func BenchmarkIndex(b *testing.B) {
	v := OfString("the quick brown fox jumps over the lazy dog near the river bank")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Index("river", 0)
	}
}

func BenchmarkLastIndex(b *testing.B) {
	v := OfString("the quick brown fox jumps over the lazy dog near the river bank")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.LastIndex("the")
	}
}

func BenchmarkCount(b *testing.B) {
	v := OfString("one,two,three,four,five,six,seven,eight,nine,ten")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Count(",")
	}
}

func BenchmarkAppendGrowth(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buf := New()
		for j := 0; j < 64; j++ {
			buf.Append("segment ")
		}
	}
}

func BenchmarkAppendPreallocated(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buf := NewCapacity(64 * 8)
		for j := 0; j < 64; j++ {
			buf.Append("segment ")
		}
	}
}

func BenchmarkAppendf(b *testing.B) {
	buf := NewCapacity(64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Clear()
		buf.Appendf("%s=%d", "status", i)
	}
}

func BenchmarkReplace(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buf := NewString("a,b,c,d,e,f,g,h")
		_ = buf.Replace(",", "; ")
	}
}

func BenchmarkTrim(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buf := NewString("  \t padded content \r\n")
		buf.Trim()
	}
}

func BenchmarkSplit(b *testing.B) {
	v := OfString("alpha,beta,gamma,delta,epsilon")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Split(",")
	}
}

func BenchmarkJoin(b *testing.B) {
	parts := OfString("alpha,beta,gamma,delta,epsilon").Split(",")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Join(parts, ", ", 0)
	}
}

func BenchmarkInt(b *testing.B) {
	testViews := []View{
		OfString("42"),
		OfString("  -1234 trailing"),
		OfString("987654321"),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = testViews[i%len(testViews)].Int()
	}
}
