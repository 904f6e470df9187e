package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ataraskov/wordsort/internal/emit"
	"github.com/ataraskov/wordsort/internal/engine"
	"github.com/ataraskov/wordsort/internal/filter"
	sortpkg "github.com/ataraskov/wordsort/internal/sort"
	"github.com/ataraskov/wordsort/internal/tokenize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// Version information (injected at build time via ldflags)
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// envPrefix namespaces environment overrides, e.g. WORDSORT_UNIQ=true
const envPrefix = "WORDSORT"

// settings is the resolved configuration after flags, env and config file
type settings struct {
	file       string
	algorithm  sortpkg.Algorithm
	unique     bool
	descending bool
	randomize  bool
	seed       uint64
	match      []string
	exclude    []string
	verbose    bool
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	v := viper.New()
	v.SetFs(fs)
	var configFile string

	cmd := &cobra.Command{
		Use:   "wordsort <file> [quick|merge|heap|radix]",
		Short: "Sort the words of a text file",
		Long: `Extract every run of ASCII letters from a text file and print them sorted,
one per line. Uppercase letters sort before lowercase ones.
Use "-" as the file name to read standard input.

Every flag can also be set through a WORDSORT_<FLAG> environment variable
or the config file. WORDSORT_MATCH and WORDSORT_EXCLUDE hold whitespace
separated patterns; write a literal space inside a pattern as \x20.`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		// main prints the error itself
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(v, args)
			if err != nil {
				return err
			}
			return run(cmd, fs, s)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "Config file (yaml, toml or json)")

	// Sort flags
	flags.StringP("algorithm", "a", string(sortpkg.Quick), "Sort method when not given as an argument: quick, merge, heap or radix")
	flags.BoolP("uniq", "u", false, "Sort unique words")
	flags.BoolP("desc", "d", false, "Sort in descending order")
	flags.BoolP("random-sort", "R", false, "Sort by synthetic keys instead of the words themselves")
	flags.Uint64("seed", 0, "Shuffle key assignment with this seed in --random-sort mode (0 keeps first-seen order)")

	// Filtering flags
	flags.StringArray("match", nil, "Regex pattern for words to include (repeatable, commas are part of the pattern)")
	flags.StringArray("exclude", nil, "Regex pattern for words to exclude (repeatable, commas are part of the pattern)")

	// Execution flags
	flags.BoolP("verbose", "v", false, "Verbose output on stderr")

	bindFlags(v, flags)
	return cmd
}

// bindFlags makes every flag except --config resolvable through viper
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		_ = v.BindPFlag(f.Name, f)
	})

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

func loadConfig(v *viper.Viper, configFile string) error {
	if configFile == "" {
		return nil
	}
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", configFile, err)
	}
	return nil
}

func resolveSettings(v *viper.Viper, args []string) (*settings, error) {
	name := v.GetString("algorithm")
	if len(args) > 1 {
		name = args[1]
	}
	alg, err := sortpkg.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}

	return &settings{
		file:       args[0],
		algorithm:  alg,
		unique:     v.GetBool("uniq"),
		descending: v.GetBool("desc"),
		randomize:  v.GetBool("random-sort"),
		seed:       v.GetUint64("seed"),
		match:      v.GetStringSlice("match"),
		exclude:    v.GetStringSlice("exclude"),
		verbose:    v.GetBool("verbose"),
	}, nil
}

func run(cmd *cobra.Command, fs afero.Fs, s *settings) error {
	// Setup logger; stdout is reserved for the sorted words
	logLevel := slog.LevelWarn
	if s.verbose {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Setup filter
	tokenFilter, err := filter.Compile(s.match, s.exclude)
	if err != nil {
		return fmt.Errorf("invalid filter pattern: %w", err)
	}
	if tokenFilter != nil {
		logger.Info("Token filter enabled", "match", s.match, "exclude", s.exclude)
	}

	// Read input
	src := tokenize.Source{Fs: fs, Stdin: cmd.InOrStdin()}
	bag, err := src.Read(s.file)
	if err != nil {
		return err
	}
	logger.Info("Read input", "file", s.file, "lines", bag.Lines, "tokens", len(bag.Tokens), "max_length", bag.MaxLength)

	// Sort
	e := engine.NewEngine(engine.Config{
		Algorithm:  s.algorithm,
		Unique:     s.unique,
		Randomize:  s.randomize,
		Descending: s.descending,
		Seed:       s.seed,
		Filter:     tokenFilter,
		Logger:     logger,
	})

	result, err := e.Sort(bag.Tokens)
	if err != nil {
		return fmt.Errorf("sorting failed: %w", err)
	}

	n, err := emit.Lines(cmd.OutOrStdout(), result.Tokens)
	if err != nil {
		return err
	}
	if n < len(result.Tokens) {
		logger.Debug("Output closed early", "written", n, "total", len(result.Tokens))
	}

	logger.Info("Done",
		"algorithm", result.Algorithm,
		"total", result.TotalTokens,
		"filtered", result.FilteredTokens,
		"distinct", result.DistinctTokens,
		"emitted", len(result.Tokens))

	return nil
}

func main() {
	// Receive SIGPIPE as an error on write instead of dying, so a closed
	// pipe (e.g. `wordsort words.txt | head`) ends output quietly
	signal.Notify(make(chan os.Signal, 1), syscall.SIGPIPE)

	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
