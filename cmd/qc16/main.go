package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/op/go-logging"
	"github.com/pd0mz/go-qc16"
	"github.com/pd0mz/go-qc16/bit"
	"github.com/pd0mz/go-qc16/fec"
)

var log = logging.MustGetLogger("qc16")

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] encode|decode|syndrome <hex>...\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s [flags] matrix\n", os.Args[0])
	flag.PrintDefaults()
}

// parse reads a hex value, with or without a 0x prefix.
func parse(arg string, bits int) (uint64, error) {
	arg = strings.TrimPrefix(strings.TrimPrefix(arg, "0x"), "0X")
	return strconv.ParseUint(arg, 16, bits)
}

// flip applies an error pattern to codeword bit by bit and returns the
// result with the flipped bit numbers, highest first.
func flip(codeword, pattern uint16) (bit.Bits, []int) {
	var (
		bits    = bit.FromUint16(codeword)
		flipped []int
	)
	for i := range bits {
		if pattern&(1<<uint(15-i)) != 0 {
			bits[i].Flip()
			flipped = append(flipped, 15-i)
		}
	}
	return bits, flipped
}

func encode(arg string) error {
	v, err := parse(arg, 8)
	if err != nil {
		return err
	}
	data := uint8(v)
	codeword := fec.QC16_8_Encode(data)
	fmt.Printf("data = %02x (%s), codeword = %04x (%s)\n",
		data, bit.FromUint8(data), codeword, bit.FromUint16(codeword))
	return nil
}

func decode(arg string) error {
	v, err := parse(arg, 16)
	if err != nil {
		return err
	}
	codeword := uint16(v)
	syndrome := fec.QC16_8_Syndrome(codeword)
	pattern := fec.QC16_8_CorrectionTable()[syndrome]
	corrected, flipped := flip(codeword, pattern)
	fmt.Printf("codeword = %04x (%s), syndrome = %02x, corrected = %04x (%s), data = %02x",
		codeword, bit.FromUint16(codeword), syndrome, corrected.Uint16(), corrected, fec.QC16_8_Decode(codeword))
	switch {
	case syndrome != 0 && pattern == 0:
		fmt.Println(" (declined)")
	case len(flipped) > 0:
		fmt.Printf(" (flipped bit(s) %v)\n", flipped)
	default:
		fmt.Println()
	}
	return nil
}

func syndrome(arg string) error {
	v, err := parse(arg, 16)
	if err != nil {
		return err
	}
	s := fec.QC16_8_Syndrome(uint16(v))
	fmt.Printf("%04x: syndrome %02x (%s)\n", v, s, bit.FromUint8(s))
	return nil
}

func matrix() {
	p, h := fec.QC16_8_ParityMatrix(), fec.QC16_8_H()
	fmt.Println("parity matrix / check matrix:")
	for i := 0; i < 8; i++ {
		fmt.Printf("\t%d: %s  %s\n", i, bit.FromUint8(p[i]), bit.FromUint16(h[i]))
	}
	fmt.Printf("minimum distance: %d\n", fec.MinimumDistance(fec.QC16_8_Encode))
}

func main() {
	verbose := flag.Bool("verbose", false, "be verbose")
	version := flag.Bool("version", false, "print version and exit")
	flag.Usage = usage
	flag.Parse()
	qc16.SetupLogging(os.Stderr, *verbose)

	if *version {
		fmt.Println(qc16.PackageID)
		return
	}
	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	var fn func(string) error
	switch flag.Arg(0) {
	case "encode":
		fn = encode
	case "decode":
		fn = decode
	case "syndrome":
		fn = syndrome
	case "matrix":
		matrix()
		return
	default:
		usage()
		os.Exit(2)
	}

	for _, arg := range flag.Args()[1:] {
		log.Debugf("%s %s", flag.Arg(0), arg)
		if err := fn(arg); err != nil {
			log.Fatalf("%s %q: %v", flag.Arg(0), arg, err)
		}
	}
}
