// Command extkit exposes the extkit utilities on the command line.
package main

import "os"

func main() {
	a := newApp()
	os.Exit(a.execute(a.rootCmd()))
}
