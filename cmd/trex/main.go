// Command trex is the command-line front end for the trex regex engine:
// mode selection, reading a pattern and test lines from standard input,
// and writing results to standard output. It is the sole place in this
// module allowed to do I/O; the core (package trex and its
// sub-packages) is pure and synchronous.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/tnfa/trex"
)

func main() {
	if len(os.Args) != 2 {
		usage()
	}

	switch os.Args[1] {
	case "-r":
		runRender()
	case "-t":
		runTest()
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: trex -r | -t")
	os.Exit(1)
}

// runRender reads one line (the pattern), compiles it, and prints its
// postfix rendering.
func runRender() {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	pattern := ""
	if scanner.Scan() {
		pattern = scanner.Text()
	}

	prog := trex.Compile(pattern)
	fmt.Println(prog.PostfixString())
}

// runTest reads the pattern on the first line, compiles it once, then for
// every subsequent line prints "1" or "0" according to Match, with no
// separator between them. The run ends with a single trailing newline.
func runTest() {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	pattern := ""
	if scanner.Scan() {
		pattern = scanner.Text()
	}

	prog := trex.Compile(pattern)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for scanner.Scan() {
		if prog.MatchString(scanner.Text()) {
			out.WriteByte('1')
		} else {
			out.WriteByte('0')
		}
	}
	out.WriteByte('\n')
}
