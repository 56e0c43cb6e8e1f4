package startup

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"time"

	"playlist-gen/internal/logging"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// VersionString returns a single-line description of this build.
func VersionString() string {
	return fmt.Sprintf("playlist-gen %s (commit %s, built %s, %s)", Version, Commit, BuildTime, GoVersion)
}

// Config holds the parsed command line for a playlist-gen run.
type Config struct {
	// OutputPath is the playlist file to write.
	OutputPath string
	// SourceDirs are the audio directory trees to scan, in order.
	SourceDirs []string
	// Watch keeps the process running, regenerating on source changes.
	Watch bool
	// Debounce is the quiet period before a watch-mode regeneration.
	Debounce time.Duration
	// ShowVersion prints build information and exits.
	ShowVersion bool
}

// ParseArgs parses command line arguments (excluding the program name) into a
// Config. Usage and flag errors are written to errOut. flag.ErrHelp is
// returned when -h/-help is requested.
func ParseArgs(args []string, errOut io.Writer) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("playlist-gen", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.BoolVar(&cfg.Watch, "watch", false, "stay running and regenerate when a source tree changes")
	fs.DurationVar(&cfg.Debounce, "debounce", 2*time.Second, "quiet period before a watch-mode regeneration")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version information and exit")
	fs.Usage = func() {
		fmt.Fprintf(errOut, "Usage: playlist-gen [flags] OUTPUT_FILE SOURCE_DIR [SOURCE_DIR...]\n\n")
		fmt.Fprintf(errOut, "Scans each SOURCE_DIR for audio files and writes a playlist to OUTPUT_FILE.\n")
		fmt.Fprintf(errOut, "The output extension selects the format: .pls, .m3u or .m3u8.\n\n")
		fmt.Fprintf(errOut, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}

	rest := fs.Args()
	if len(rest) < 2 {
		fs.Usage()
		return nil, fmt.Errorf("expected an output file and at least one source directory, got %d argument(s)", len(rest))
	}
	cfg.OutputPath = rest[0]
	cfg.SourceDirs = rest[1:]

	logging.Debug("Parsed config: output=%s sources=%v watch=%v", cfg.OutputPath, cfg.SourceDirs, cfg.Watch)
	return cfg, nil
}
