// Command ieee754 decodes and encodes IEEE-754 binary floating-point values.
//
//	ieee754 decode C0490FDB
//	ieee754 decode --flip-sign --flip-mantissa 0,1 3FF0000000000000
//	ieee754 encode -- -0.1
//	ieee754 step --down --count 3 00000003
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
