// Command qcpipe protects stdin with the (16, 8) code and writes the result
// to stdout, or the reverse with -d. With -framed the data is cut into
// marker delimited, CRC checked frames instead of a bare codeword stream.
package main

import (
	"bufio"
	"flag"
	"io"
	"net/http"
	"os"

	"github.com/op/go-logging"
	"github.com/pd0mz/go-qc16"
	"github.com/pd0mz/go-qc16/frame"
	"github.com/pd0mz/go-qc16/stream"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var log = logging.MustGetLogger("qcpipe")

func encode(in io.Reader, out io.Writer, framed bool) error {
	var w io.Writer = stream.NewWriter(out)
	if framed {
		w = frame.NewWriter(out)
	}
	_, err := io.Copy(w, in)
	return err
}

func decode(in io.Reader, out io.Writer, framed bool, metrics *stream.Metrics) error {
	if !framed {
		r := stream.NewReader(in)
		r.Metrics = metrics
		_, err := io.Copy(out, r)
		s := r.Stats()
		log.Infof("%d codewords, %d corrected, %d uncorrectable", s.Codewords, s.Corrected, s.Uncorrectable)
		return err
	}

	s := frame.NewScanner(in)
	s.Metrics = metrics
	for s.Scan() {
		if _, err := out.Write(s.Payload()); err != nil {
			return err
		}
	}
	stats := s.Stats()
	log.Infof("%d frames, %d checksum errors, %d oversized, %d truncated; %d codewords, %d corrected, %d uncorrectable",
		stats.Frames, stats.Checksum, stats.Oversized, stats.Truncated,
		stats.Codewords.Codewords, stats.Codewords.Corrected, stats.Codewords.Uncorrectable)
	return s.Err()
}

func main() {
	decodeMode := flag.Bool("d", false, "decode instead of encode")
	framed := flag.Bool("framed", false, "use sync marker framing")
	metricsAddr := flag.String("metrics", "", "serve Prometheus metrics on this address while decoding")
	verbose := flag.Bool("verbose", false, "be verbose")
	flag.Parse()
	qc16.SetupLogging(os.Stderr, *verbose)

	in := bufio.NewReader(os.Stdin)
	out := bufio.NewWriter(os.Stdout)

	var err error
	if *decodeMode {
		var metrics *stream.Metrics
		if *metricsAddr != "" {
			metrics = stream.NewMetrics(prometheus.DefaultRegisterer)
			go func() {
				log.Infof("serving metrics on %s", *metricsAddr)
				if err := http.ListenAndServe(*metricsAddr, promhttp.Handler()); err != nil {
					log.Errorf("metrics listener: %v", err)
				}
			}()
		}
		err = decode(in, out, *framed, metrics)
	} else {
		err = encode(in, out, *framed)
	}
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}
