package strsearch_test

import (
	"fmt"

	"github.com/coregx/strsearch"
)

// ExampleSearchString demonstrates overlapping matches.
func ExampleSearchString() {
	pos, err := strsearch.SearchString("ABABABA", "ABA", strsearch.KMP)
	if err != nil {
		panic(err)
	}
	fmt.Println(strsearch.FormatPositions(pos))
	// Output: 0,2,4
}

// ExampleSearchByName demonstrates resolving an algorithm by name.
func ExampleSearchByName() {
	pos, err := strsearch.SearchByName([]byte("aaaa"), []byte("aa"), "BoyerMoore")
	if err != nil {
		panic(err)
	}
	fmt.Println(pos)
	// Output: [0 1 2]
}

// ExampleSearchAuto demonstrates letting the selector pick the algorithm.
func ExampleSearchAuto() {
	pos, algo, err := strsearch.SearchAuto([]byte("hello world, world"), []byte("world"))
	if err != nil {
		panic(err)
	}
	fmt.Println(algo, pos)
	// Output: Naive [6 13]
}

// ExampleParsePositions demonstrates reading a position list back.
func ExampleParsePositions() {
	pos, err := strsearch.ParsePositions("3,9,27")
	if err != nil {
		panic(err)
	}
	fmt.Println(len(pos), pos[2])
	// Output: 3 27
}
