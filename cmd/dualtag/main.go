// dualtag rebuilds forests from dual-tag level-order encodings and shows the
// result.
//
//	dualtag show [--input FILE] [--strict]
//	dualtag export --output FILE
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
