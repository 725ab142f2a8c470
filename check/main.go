package main

import (
	"flag"
	"fmt"
	"math/bits"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/zeebo/errs"
	"github.com/zeebo/mon"
	"github.com/zeebo/mon/monhandler"
	"github.com/zeebo/pcg"
	"gopkg.in/yaml.v2"

	"github.com/zeebo/quadboard"
)

var (
	boards     = flag.Int("boards", 1000, "number of boards to audit")
	ops        = flag.Int("ops", 10000, "number of random writes per board")
	verbose    = flag.Bool("verbose", false, "log every audited board")
	debugAddr  = flag.String("debug_addr", "", "address to serve timing stats on")
	configPath = flag.String("config", "", "yaml file with settings; flags override it")

	rng pcg.T
)

type config struct {
	Boards    int    `yaml:"boards"`
	Ops       int    `yaml:"ops"`
	Verbose   bool   `yaml:"verbose"`
	DebugAddr string `yaml:"debug_addr"`
}

func loadConfig() (cfg config, err error) {
	cfg = config{
		Boards:    *boards,
		Ops:       *ops,
		Verbose:   *verbose,
		DebugAddr: *debugAddr,
	}

	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return cfg, errs.Wrap(err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errs.Wrap(err)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "boards":
			cfg.Boards = *boards
		case "ops":
			cfg.Ops = *ops
		case "verbose":
			cfg.Verbose = *verbose
		case "debug_addr":
			cfg.DebugAddr = *debugAddr
		}
	})

	if cfg.Boards < 0 || cfg.Ops < 0 {
		return cfg, errs.New("boards and ops must not be negative")
	}
	return cfg, nil
}

func stats() {
	defer fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	mon.Times(func(name string, state *mon.State) bool {
		sum, avg := state.Average()
		fmt.Fprintf(tw, "%s\t%v\t%v\t%v\n",
			name, state.Total(), time.Duration(sum), time.Duration(avg))
		return true
	})
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if cfg.DebugAddr != "" {
		go func() {
			err := http.ListenAndServe(cfg.DebugAddr, monhandler.Handler{})
			log.WithError(err).Warn("debug server stopped")
		}()
	}

	if err := run(cfg); err != nil {
		log.Fatalf("%+v", err)
	}
	stats()

	if cfg.DebugAddr != "" {
		log.WithField("addr", cfg.DebugAddr).Info("done. waiting for ctrl+c...")
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT)
		<-ch
	}
}

func run(cfg config) (err error) {
	defer mon.Start().Stop(&err)

	if err := checkChannels(); err != nil {
		return errs.Wrap(err)
	}
	if err := checkSplat(); err != nil {
		return errs.Wrap(err)
	}

	start := time.Now()
	for i := 0; i < cfg.Boards; i++ {
		if err := checkBoard(cfg.Ops); err != nil {
			return errs.Wrap(err)
		}
		log.WithField("board", i).Debug("audited")

		if cfg.Boards >= 10 && i > 0 && i%(cfg.Boards/10) == 0 {
			log.WithField("progress", fmt.Sprintf("%0.2f%%", 100*float64(i)/float64(cfg.Boards))).
				Info("auditing")
		}
	}

	writes := int64(cfg.Boards) * int64(cfg.Ops)
	log.WithFields(log.Fields{
		"boards":   humanize.Comma(int64(cfg.Boards)),
		"writes":   humanize.Comma(writes),
		"duration": time.Since(start),
	}).Info("audit passed")

	return nil
}

// checkChannels writes a fixed set of slots and compares the channel words
// bit for bit.
func checkChannels() (err error) {
	defer mon.Start().Stop(&err)

	var r quadboard.Raw
	r.SetUnchecked(0, quadboard.NibbleUnchecked(0b1111))
	r.SetUnchecked(5, quadboard.NibbleUnchecked(0b1101))
	r.SetUnchecked(32, quadboard.NibbleUnchecked(0b1111))
	r.SetUnchecked(63, quadboard.NibbleUnchecked(0b0111))

	exp := [4]uint64{
		0x8000000100000021,
		0x8000000100000001,
		0x8000000100000021,
		0x0000000100000021,
	}
	if got := r.Channels(); got != exp {
		return errs.New("channels: got %016x, want %016x", got, exp)
	}
	return nil
}

func checkSplat() (err error) {
	defer mon.Start().Stop(&err)

	for _, v := range quadboard.AllNibbles() {
		r := quadboard.Splat(v)
		if got := bits.OnesCount64(r.Match(v)); got != 64 {
			return errs.New("splat %d: only %d slots match", v.Uint8(), got)
		}
		if r.Linear().Transpose() != r {
			return errs.New("splat %d: does not survive a transpose", v.Uint8())
		}
	}
	return nil
}

var setThunk mon.Thunk

// checkBoard performs random writes against both layouts and compares every
// slot after each one.
func checkBoard(n int) (err error) {
	defer mon.Start().Stop(&err)

	var r quadboard.Raw
	var l quadboard.Linear

	for j := 0; j < n; j++ {
		idx := quadboard.IndexUnchecked(uint8(rng.Uint32n(64)))
		v := quadboard.NibbleUnchecked(uint8(rng.Uint32n(16)))

		timer := setThunk.Start()
		r.Set(idx, v)
		timer.Stop(&err)
		l.Set(idx, v)

		for _, i := range quadboard.AllIndexes() {
			if got, want := r.Get(i), l.Get(i); got != want {
				return errs.New("write %d: slot %d: got %d, want %d",
					j, i.Int(), got.Uint8(), want.Uint8())
			}
		}
	}

	if r.Linear() != l {
		return errs.New("linear layout diverged")
	}

	total := 0
	for _, v := range quadboard.AllNibbles() {
		total += bits.OnesCount64(r.Match(v))
	}
	if total != 64 {
		return errs.New("matches cover %d slots", total)
	}
	return nil
}
