// Command print-zone reads a bind.txt-style local zone file and prints
// every A/IN record it contains for a given name, one per line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/tugunchinov/cacheresolver/internal/zone"
)

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: print-zone path/to/bind.txt name\n")
		os.Exit(2)
	}
	path, name := flag.Arg(0), flag.Arg(1)

	recs, err := zone.Lookup(path, name)
	if err != nil {
		if errors.Is(err, zone.ErrBrokenBindFile) {
			fmt.Fprintf(os.Stderr, "broken zone file: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "failed to read zone file: %v\n", err)
		}
		os.Exit(1)
	}

	sort.Slice(recs, func(i, j int) bool {
		return recs[i].IP.String() < recs[j].IP.String()
	})

	for _, rr := range recs {
		fmt.Printf("%s %d IN A %s\n", rr.Name, zone.RecordTTL, rr.IP.String())
	}
}
