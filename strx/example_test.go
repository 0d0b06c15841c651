// File: example_test.go
// Title: Example Tests for strx Package Documentation
// Description: Executable examples that serve as both documentation and
//              tests, demonstrating typical view and buffer usage patterns.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-29
// Modified: 2026-07-29
//
// Change History:
// - 2026-07-29 v0.1.0: Initial example implementation

package strx_test

import (
	"fmt"

	tcstrx "github.com/msto63/textcore/strx"
)

func ExampleView_Index() {
	v := tcstrx.OfString("one two three two one")

	fmt.Println(v.Index("two", 0))
	fmt.Println(v.Index("two", 5))
	fmt.Println(v.Index("missing", 0))
	// Output:
	// 4
	// 14
	// -1
}

func ExampleView_Substr() {
	v := tcstrx.OfString("hello, world")

	fmt.Println(v.Substr(7, 5).String())
	fmt.Println(v.Substr(7, 100).String())
	fmt.Println(v.Substr(2, -1).String())
	// Output:
	// world
	// world
	// llo, world
}

func ExampleView_Split() {
	parts := tcstrx.OfString("a,b,").Split(",")

	for _, p := range parts {
		fmt.Printf("%q\n", p.String())
	}
	// Output:
	// "a"
	// "b"
	// ""
}

func ExampleView_Int() {
	fmt.Println(tcstrx.OfString("  42 items").Int())
	fmt.Println(tcstrx.OfString("12abc").Int())
	fmt.Println(tcstrx.OfString("none").Int())
	// Output:
	// 42
	// 12
	// 0
}

func ExampleBuffer_Trim() {
	b := tcstrx.NewString("  pad \r\n")
	b.Trim()

	fmt.Printf("%q\n", b.String())
	// Output:
	// "pad"
}

func ExampleBuffer_Replace() {
	b := tcstrx.NewString("aaa")
	count := b.Replace("a", "bb")

	fmt.Println(b.String(), count)
	// Output:
	// bbbbbb 3
}

func ExampleBuffer_Appendf() {
	b := tcstrx.NewString("result")
	b.Appendf(": %d of %d", 7, 10)

	fmt.Println(b.String())
	// Output:
	// result: 7 of 10
}

func ExampleJoin() {
	parts := tcstrx.OfString("usr/local/bin").Split("/")

	fmt.Println(tcstrx.Join(parts, " -> ", 0).String())
	fmt.Println(tcstrx.Join(parts, " -> ", 1).String())
	// Output:
	// usr -> local -> bin
	// local -> bin
}
