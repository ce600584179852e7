package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"roomforge/pkg/engine/terminal"
	"roomforge/pkg/game/campaign"
	"roomforge/pkg/game/config"
	"roomforge/pkg/game/descriptor"
	"roomforge/pkg/game/devtools"
	"roomforge/pkg/game/dialogue"
	"roomforge/pkg/game/generator"
	"roomforge/pkg/game/renderer"
	"roomforge/pkg/game/renderer/tui"
	"roomforge/pkg/game/setup"
)

var (
	colorTitle   = color.Style{color.FgMagenta, color.OpBold}
	colorSubtle  = color.Style{color.FgGray}
	colorDenied  = color.Style{color.FgRed, color.OpBold}
	colorSuccess = color.Style{color.FgGreen}
)

// options are the command line flags
type options struct {
	configPath  string
	levelsPath  string
	bucket      string
	index       int
	seed        int64
	dumpDir     string
	pressSwitch bool
	collect     bool
	assemble    bool
	showcase    bool
	campaign    bool
	generate    int
	quiet       bool
}

func main() {
	var o options
	flag.StringVar(&o.configPath, "config", "", "path to the TOML configuration file")
	flag.StringVar(&o.levelsPath, "levels", "", "level book to load, overrides the config")
	flag.StringVar(&o.bucket, "bucket", "training", "level bucket: training or normal")
	flag.IntVar(&o.index, "index", 0, "level index inside the bucket")
	flag.Int64Var(&o.seed, "seed", 0, "seed for floor and item slot choices (0 uses the config)")
	flag.StringVar(&o.dumpDir, "dump", "", "write a map.txt level dump into this directory")
	flag.BoolVar(&o.pressSwitch, "press-switch", false, "press the wall switch after loading")
	flag.BoolVar(&o.collect, "collect", false, "collect every part after loading")
	flag.BoolVar(&o.assemble, "assemble", false, "insert the collected parts into the pedestal")
	flag.BoolVar(&o.showcase, "showcase", false, "load the built-in developer level instead of the book")
	flag.BoolVar(&o.campaign, "campaign", false, "load every level of the book in play order")
	flag.IntVar(&o.generate, "generate", 0, "generate this many levels into -bucket instead of reading the book")
	flag.BoolVar(&o.quiet, "quiet", false, "record level dialogue instead of printing it")
	flag.Parse()

	if !terminal.IsTerminal() {
		color.Enable = false
	}

	if err := run(o, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, colorDenied.Sprint(err.Error()))
		os.Exit(1)
	}
}

func run(o options, out io.Writer) error {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
	}
	if o.levelsPath != "" {
		cfg.Levels.Book = o.levelsPath
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	initGettext(cfg.Levels)

	seed := cfg.Seed(time.Now())
	if o.seed != 0 {
		seed = o.seed
	}

	book, err := loadBook(o, cfg, seed)
	if err != nil {
		return err
	}
	log.Debug("starting", zap.Int64("seed", seed), zap.String("book", cfg.Levels.Book))

	view := tui.New()
	var talk renderer.Dialogue = dialogue.NewConsole(out)
	transcript := &dialogue.Transcript{}
	if o.quiet {
		talk = transcript
	}
	loader := setup.NewLoader(cfg.LoaderOptions(seed), view, talk, book, log)
	c := campaign.New(book)

	var refs []campaign.Ref
	if o.campaign {
		for ref, ok := c.First(); ok; ref, ok = c.Next(ref) {
			refs = append(refs, ref)
		}
	} else {
		bucket, err := descriptor.ParseBucket(o.bucket)
		if err != nil {
			return err
		}
		refs = append(refs, campaign.Ref{Bucket: bucket, Index: o.index})
	}

	for _, ref := range refs {
		fmt.Fprintln(out, colorTitle.Sprintf("%s (%d/%d)", campaign.Title(ref), c.Number(ref), c.Total()))
		if err := loader.LoadFromBook(ref.Bucket, ref.Index); err != nil {
			return err
		}
		if o.quiet {
			fmt.Fprintln(out, colorSubtle.Sprintf("(%d dialogue lines hidden)", len(transcript.Current())))
		}
		playScript(loader, o, out)

		lo, hi := loader.Grid().Bounds()
		frame := tui.Frame{
			Lo:         lo,
			Hi:         hi,
			Player:     loader.StartingPosition(),
			ShowPlayer: loader.Level().HasStart,
		}
		fmt.Fprintln(out)
		if err := view.Render(out, frame); err != nil {
			return err
		}
		if err := view.Legend(out); err != nil {
			return err
		}
		fmt.Fprintln(out)

		if o.dumpDir != "" {
			path, err := devtools.DumpLevelToFile(o.dumpDir, loader.Level())
			if err != nil {
				return fmt.Errorf("dump level: %w", err)
			}
			log.Info("level dumped", zap.String("path", path))
		}
	}
	return nil
}

func loadBook(o options, cfg *config.Config, seed int64) (*descriptor.Book, error) {
	switch {
	case o.showcase:
		return &descriptor.Book{Training: []descriptor.Raw{devtools.Showcase()}}, nil
	case o.generate > 0:
		bucket := descriptor.BucketNormal
		if o.bucket != "" {
			var err error
			if bucket, err = descriptor.ParseBucket(o.bucket); err != nil {
				return nil, err
			}
		}
		rng := rand.New(rand.NewSource(seed))
		book := &descriptor.Book{}
		for i := 0; i < o.generate; i++ {
			raw, err := generator.DefaultGenerator.Generate(rng, cfg.Grid.Width, cfg.Grid.Height)
			if err != nil {
				return nil, fmt.Errorf("generate level %d: %w", i, err)
			}
			if bucket == descriptor.BucketTraining {
				book.Training = append(book.Training, raw)
			} else {
				book.Normal = append(book.Normal, raw)
			}
		}
		return book, nil
	}
	return descriptor.LoadBook(cfg.Levels.Book)
}

// playScript fires the events requested on the command line, in the order
// a player would trigger them
func playScript(l *setup.Loader, o options, out io.Writer) {
	lvl := l.Level()

	if o.pressSwitch {
		if len(lvl.Switches) == 0 {
			fmt.Fprintln(out, colorSubtle.Sprint("No wall switch on this level."))
		}
		for _, sw := range lvl.Switches {
			if sw.Press() {
				fmt.Fprintln(out, colorSuccess.Sprintf("Switch at %v pressed.", sw.Cell))
			}
		}
	}

	if o.collect {
		for _, p := range lvl.Parts {
			p.Collect()
		}
		fmt.Fprintln(out, colorSuccess.Sprintf("Parts collected: %d", l.Puzzle().PartsCollected()))
	}

	if o.assemble {
		if len(lvl.Pedestals) == 0 {
			fmt.Fprintln(out, colorSubtle.Sprint("No pedestal on this level."))
		}
		available := l.Puzzle().PartsCollected()
		for _, ped := range lvl.Pedestals {
			available -= ped.Insert(available)
			if !ped.Complete {
				fmt.Fprintln(out, colorDenied.Sprintf("Pedestal at %v needs %d more parts.", ped.Cell, ped.PartsNeeded()))
			}
		}
		if l.Puzzle().IsExitUnlocked() {
			fmt.Fprintln(out, colorSuccess.Sprint("The exit is open."))
		}
	}
}

func initGettext(cfg config.LevelsConfig) {
	if cfg.LocaleDir == "" {
		return
	}
	gotext.Configure(cfg.LocaleDir, cfg.Language, "default")
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
