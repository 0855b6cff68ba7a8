package miniregex_test

import (
	"fmt"

	"github.com/coregx/miniregex"
)

// ExampleCompile demonstrates basic pattern compilation and matching.
func ExampleCompile() {
	re, err := miniregex.Compile("a(b|c)*")
	if err != nil {
		panic(err)
	}

	fmt.Println(re.Matches("abcbc"))
	// Output: true
}

// ExampleMustCompile demonstrates panic-on-error compilation for patterns
// known to be valid at compile time.
func ExampleMustCompile() {
	re := miniregex.MustCompile("hello|goodbye")
	fmt.Println(re.Matches("hello"))
	// Output: true
}

// Example demonstrates that matching requires consuming the entire input,
// not merely a prefix of it.
func Example() {
	re := miniregex.MustCompile("a*")
	fmt.Println(re.Matches("aaaa"))
	fmt.Println(re.Matches("aaab"))
	// Output:
	// true
	// false
}
