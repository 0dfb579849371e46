// Command qctable prints the syndrome correction table of the (16, 8) code
// as a Go array literal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/pd0mz/go-qc16"
	"github.com/pd0mz/go-qc16/fec"
)

var log = logging.MustGetLogger("qctable")

func main() {
	weight := flag.Int("weight", 2, "largest error pattern weight to correct")
	verbose := flag.Bool("verbose", false, "be verbose")
	flag.Parse()
	qc16.SetupLogging(os.Stderr, *verbose)

	h := fec.QC16_8_H()
	table := fec.BuildCorrectionTable(h, *weight)
	if err := fec.CheckCode(fec.QC16_8_ParityMatrix(), h, &table); err != nil {
		log.Fatalf("derived table is inconsistent: %v", err)
	}

	var entries int
	for _, e := range table {
		if e != 0 {
			entries++
		}
	}
	log.Infof("%d of 255 nonzero syndromes corrected with up to %d bit(s)", entries, *weight)

	fmt.Println("[256]uint16{")
	for k, v := range table {
		switch k & 7 {
		case 0:
			fmt.Printf("\t0x%04x,", v)
		case 7:
			fmt.Printf(" 0x%04x,\n", v)
		default:
			fmt.Printf(" 0x%04x,", v)
		}
	}
	fmt.Println("}")
}
