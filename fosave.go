package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fosave/sav"

	"github.com/segmentio/encoding/json"
	"golang.org/x/sync/errgroup"
)

var (
	configFile = flag.String("config", "", "TOML config file")
	format     = flag.String("format", DefaultFormat, "Output format, text or json")
	workers    = flag.Int("workers", 0, "Map files decoded in parallel (default GOMAXPROCS)")
	pattern    = flag.String("pattern", DefaultPattern, "Map save file pattern inside a slot directory")
	verbose    = flag.Bool("v", false, "Debug logging")
)

const headerFile = "SAVE.DAT"

type result struct {
	Path   string          `json:"path"`
	Header *sav.SaveHeader `json:"header,omitempty"`
	Map    *sav.Map        `json:"map,omitempty"`
	Error  string          `json:"error,omitempty"`
}

func main() {
	flag.Parse()
	if err := run(flag.Args(), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("usage: fosave [-config FILE] [-format text|json] [-workers N] [-pattern GLOB] [-v] PATH...")
	}

	conf, err := LoadConfig(*configFile)
	if err != nil {
		return err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			conf.Format = *format
		case "workers":
			conf.Workers = *workers
		case "pattern":
			conf.Pattern = *pattern
		}
	})
	if err := conf.Validate(); err != nil {
		return err
	}
	level, _ := conf.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	paths, err := expand(args, conf.Pattern)
	if err != nil {
		return err
	}
	results := decodeAll(logger, paths, conf)

	if conf.Format == "json" {
		err = writeJSON(out, results)
	} else {
		err = writeText(out, results)
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to decode", failed, len(results))
	}
	return nil
}

func matchPattern(pattern, name string) bool {
	ok, err := filepath.Match(strings.ToUpper(pattern), strings.ToUpper(name))
	return err == nil && ok
}

// expand turns slot directories into SAVE.DAT followed by the map saves in
// them. Plain files are kept as given.
func expand(args []string, pattern string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		var maps []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			switch {
			case strings.EqualFold(e.Name(), headerFile):
				paths = append(paths, filepath.Join(arg, e.Name()))
			case matchPattern(pattern, e.Name()):
				maps = append(maps, filepath.Join(arg, e.Name()))
			}
		}
		paths = append(paths, maps...)
	}
	return paths, nil
}

func decodeAll(logger *slog.Logger, paths []string, conf Config) []result {
	results := make([]result, len(paths))
	var g errgroup.Group
	g.SetLimit(conf.Workers)
	for i, path := range paths {
		g.Go(func() error {
			start := time.Now()
			r := decodeFile(path, conf)
			if r.Error != "" {
				logger.Error("decode failed", "path", path, "error", r.Error)
			} else {
				logger.Debug("decoded", "path", path, "elapsed", time.Since(start))
			}
			results[i] = r
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func decodeFile(path string, conf Config) result {
	r := result{Path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	if strings.EqualFold(filepath.Base(path), headerFile) {
		_, h, err := sav.Header(data)
		if err != nil {
			r.Error = err.Error()
			return r
		}
		if conf.SkipThumbnail {
			h.Thumbnail = nil
		}
		r.Header = h
		return r
	}
	m, err := sav.DecodeMap(data)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Map = m
	return r
}

func writeJSON(out io.Writer, results []result) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func writeText(out io.Writer, results []result) error {
	for _, r := range results {
		var err error
		switch {
		case r.Error != "":
			_, err = fmt.Fprintf(out, "%s: error: %s\n", r.Path, r.Error)
		case r.Header != nil:
			h := r.Header
			_, err = fmt.Fprintf(out, "%s: %q by %s, v%d.%d%c, map %d (%s) elevation %d, game date %04d-%02d-%02d, played %v\n",
				r.Path, h.SaveName, h.PlayerName, h.VersionMajor(), h.VersionMinor(), h.ReleaseType,
				h.CurrentMap, h.CurrentMapFilename, h.CurrentElevation,
				h.GameYear, h.GameMonth, h.GameDay, h.GameElapsed())
		case r.Map != nil:
			h := r.Map.Header
			var groups []string
			for _, tag := range sav.ScriptTagTypes {
				groups = append(groups, fmt.Sprintf("%v %d", tag, len(r.Map.ScriptsOf(tag))))
			}
			_, err = fmt.Fprintf(out, "%s: %v %s id %d, flags %v, locals %d, globals %d, scripts %d (%s)\n",
				r.Path, h.Version, h.Filename, h.MapID, h.Flags,
				len(r.Map.Variables.LocalVariables), len(r.Map.Variables.GlobalVariables),
				len(r.Map.Scripts), strings.Join(groups, ", "))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
