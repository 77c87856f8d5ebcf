// Command skinctl inspects and edits document collections through the
// docskin collection facade.
//
// Usage: skinctl <command> [options]
package main

import (
	"os"
)

func main() {
	a := newApp()
	err := newRootCmd(a).Execute()
	a.close()
	if err != nil {
		os.Exit(1)
	}
}
