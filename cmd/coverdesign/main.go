// Command coverdesign builds greedy covering designs and manages the stored runs.
//
//	coverdesign generate --m 45 --n 7 --k 6 --j 5 --s 5
//	coverdesign generate --n 5 --k 3 --j 2 --s 2 --samples 1,2,3,4,5
//	coverdesign list --k 6
//	coverdesign show 45-7-6-5-5-1-6
//	coverdesign delete 45-7-6-5-5-1-6
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "coverdesign: %v\n", err)
		os.Exit(1)
	}
}
