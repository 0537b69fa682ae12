/*
main.go - Interactive console entry point

PURPOSE:
  Runs the payroll menu loop on stdin/stdout over an in-memory store.
  Records live only for the session.

COMMAND-LINE FLAGS:
  -seed   Start with the sample roster instead of an empty one

SEE ALSO:
  - console/console.go: The menu loop
  - cmd/server/main.go: The HTTP surface over the same engine
*/
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/warp/payroll-engine/console"
	"github.com/warp/payroll-engine/employee"
	"github.com/warp/payroll-engine/payroll"
	memstore "github.com/warp/payroll-engine/payroll/store"
)

func main() {
	seed := flag.Bool("seed", false, "seed the sample roster")
	flag.Parse()

	roster := payroll.NewRoster()
	if *seed {
		seeded, err := employee.SampleRoster()
		if err != nil {
			log.Fatalf("Failed to build sample roster: %v", err)
		}
		roster = seeded
	}

	ledger := payroll.NewLedger(memstore.NewMemory())

	c := console.New(os.Stdin, os.Stdout, roster, ledger)
	if err := c.Run(context.Background()); err != nil {
		log.Fatalf("Console failed: %v", err)
	}
}
