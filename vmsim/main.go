// The vmsim command simulates the address-translation path of a demand-paged
// virtual memory manager over an address trace.
package main

import (
	"github.com/tebeka/atexit"

	"github.com/sarchlab/vmsim/vmsim/cmd"
)

func main() {
	cmd.Execute()
	atexit.Exit(0)
}
