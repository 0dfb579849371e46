// Command qceval measures the correction rate of the (16, 8) code, both
// exhaustively per error weight and over a simulated binary symmetric
// channel, and prints a YAML report.
package main

import (
	"context"
	"flag"
	"io/ioutil"
	"os"
	"os/signal"
	"time"

	"github.com/op/go-logging"
	"github.com/pd0mz/go-qc16"
	"github.com/pd0mz/go-qc16/channel"
	"gopkg.in/yaml.v2"
)

var log = logging.MustGetLogger("qceval")

type Config struct {
	Exhaustive []int                  `yaml:"exhaustive"`
	Random     []channel.RandomConfig `yaml:"random"`
}

type ExhaustiveReport struct {
	Weight int            `yaml:"weight"`
	Result channel.Result `yaml:"result"`
	Rate   float64        `yaml:"rate"`
}

type RandomReport struct {
	Config  channel.RandomConfig `yaml:"config"`
	Result  channel.Result       `yaml:"result"`
	Rate    float64              `yaml:"rate"`
	Elapsed string               `yaml:"elapsed"`
}

type Report struct {
	Software   string             `yaml:"software"`
	Exhaustive []ExhaustiveReport `yaml:"exhaustive,omitempty"`
	Random     []RandomReport     `yaml:"random,omitempty"`
}

func loadConfig(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(d, config); err != nil {
		return nil, err
	}
	return config, nil
}

func main() {
	configFile := flag.String("config", "qceval.yaml", "configuration file")
	verbose := flag.Bool("verbose", false, "be verbose")
	flag.Parse()
	qc16.SetupLogging(os.Stderr, *verbose)

	log.Infof("using configuration file %q", *configFile)
	config, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("failed to load %q: %v", *configFile, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report := Report{Software: qc16.PackageID}
	for _, w := range config.Exhaustive {
		if w < 0 || w > 16 {
			log.Warningf("skipping exhaustive weight %d", w)
			continue
		}
		r := channel.Exhaustive(w)
		log.Debugf("weight %d: %d/%d", w, r.Successes, r.Trials)
		report.Exhaustive = append(report.Exhaustive, ExhaustiveReport{Weight: w, Result: r, Rate: r.Rate()})
	}
	for _, cfg := range config.Random {
		start := time.Now()
		r, err := channel.Random(ctx, cfg)
		if err != nil {
			log.Fatalf("random run at ber %g: %v", cfg.BER, err)
		}
		log.Debugf("ber %g: %d/%d", cfg.BER, r.Successes, r.Trials)
		report.Random = append(report.Random, RandomReport{
			Config:  cfg,
			Result:  r,
			Rate:    r.Rate(),
			Elapsed: time.Since(start).String(),
		})
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		log.Fatalf("failed to encode report: %v", err)
	}
	os.Stdout.Write(out)
}
