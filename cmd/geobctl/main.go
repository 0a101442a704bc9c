// Command geobctl parses a WKT-with-SRID literal from argv and prints its
// binary encoding's size, kind, and envelope -- a small smoke test for the
// geob package.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/geob/geob"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s 'SRID=4326;POINT(-71.05 42.36)'", os.Args[0])
	}

	v, err := geob.FromText(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("srid: %d\n", v.SRID())
	fmt.Printf("kind: %s\n", v.Kind())
	fmt.Printf("bytes: %d\n", len(v.Bytes()))
	fmt.Printf("wkt: %s\n", v.String())

	if env, ok := v.Envelope(); ok {
		fmt.Printf("envelope: %s\n", env.String())
	}

	if c, ok := v.Centroid(); ok {
		fmt.Printf("centroid: %s\n", c.String())
	}
}
