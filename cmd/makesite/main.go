package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ancientlore/makesite/config"
	"github.com/ancientlore/makesite/markdown"
	"github.com/ancientlore/makesite/site"
	"github.com/facebookgo/flagenv"
	"github.com/golang/groupcache"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// main builds the site found in the root folder.
func main() {
	// Setup flags
	var (
		fRoot     = flag.String("root", ".", "Root of web site.")
		fConfig   = flag.String("config", config.SettingsFile, "Settings file, relative to root.")
		fMarkdown = flag.String("markdown", "", "Markdown engine (blackfriday, goldmark or none); overrides the settings file.")
		fVerbose  = flag.Bool("verbose", false, "Log debug messages.")
	)
	flag.Parse()
	flagenv.Prefix = "MAKESITE_"
	flagenv.Parse()

	logger := newLogger(*fVerbose)
	defer logger.Sync()

	// Layouts are cached locally only
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })

	if err := run(*fRoot, *fConfig, *fMarkdown, logger); err != nil {
		logger.Error("cannot make site", zap.String("root", *fRoot), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		os.Stderr,
		level,
	))
}

func run(root, settingsFile, engine string, logger *zap.Logger) error {
	src := os.DirFS(root)
	settings, err := config.LoadSettings(src, settingsFile)
	if err != nil {
		return err
	}
	if engine != "" {
		settings.Markdown = engine
	}
	params, err := config.LoadParams(src, config.DefaultParams(time.Now()))
	if err != nil {
		return err
	}

	md, err := markdown.New(settings.Markdown, settings.CodeStyle)
	if err != nil {
		return err
	}
	if md == nil {
		logger.Warn("Markdown support disabled", zap.String("engine", settings.Markdown))
	}

	out, err := outputDir(root, settings.Output)
	if err != nil {
		return err
	}
	logger.Debug("settings loaded",
		zap.String("output", out),
		zap.String("markdown", settings.Markdown),
		zap.Strings("text_dirs", settings.TextDirs))

	gen, err := site.New(src, out, settings, md, logger)
	if err != nil {
		return err
	}
	if err = gen.Check(); err != nil {
		return err
	}
	start := time.Now()
	if err = gen.Run(params); err != nil {
		return err
	}
	logger.Info("site generated", zap.String("output", out), zap.Duration("elapsed", time.Since(start)))
	return nil
}

// outputDir returns the absolute output folder for output, which is relative to
// root unless absolute. The output folder is deleted on every run, so it must not
// hold the site root.
func outputDir(root, output string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("outputDir: %w", err)
	}
	out := output
	if !filepath.IsAbs(out) {
		out = filepath.Join(absRoot, out)
	}
	out = filepath.Clean(out)
	rel, err := filepath.Rel(resolve(out), resolve(absRoot))
	if err != nil {
		return "", fmt.Errorf("outputDir: %w", err)
	}
	if rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w %q: it contains the site root %q", site.ErrUnsafeOutput, out, absRoot)
	}
	return out, nil
}

// resolve evaluates the symbolic links of the longest existing prefix of the
// absolute path p.
func resolve(p string) string {
	var rest []string
	for dir := p; ; dir = filepath.Dir(dir) {
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			return filepath.Join(append([]string{resolved}, rest...)...)
		}
		if filepath.Dir(dir) == dir {
			return p
		}
		rest = append([]string{filepath.Base(dir)}, rest...)
	}
}
