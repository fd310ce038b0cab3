// Command league prints a double round-robin schedule for the given teams,
// then reads result lines ("Ajax 2-1 PSV") and prints the leaderboard after
// each accepted one.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/utakatalp/fixture-generator/internal/config"
	"github.com/utakatalp/fixture-generator/internal/league"
	"github.com/utakatalp/fixture-generator/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	logger.SetOutput(os.Stderr)

	if err := run(os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.WithError(err).Error("league failed")
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, logger logrus.FieldLogger) error {
	fs := flag.NewFlagSet("league", flag.ContinueOnError)
	teams := fs.String("teams", "", "comma separated team names, e.g. \"Ajax,PSV,Feyenoord,AZ\"")
	count := fs.Int("count", 0, "expected number of teams; checked against -teams when set")
	resultsPath := fs.String("results", "", "file with one result per line; stdin when empty or -")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var names []string
	if strings.TrimSpace(*teams) != "" {
		names = strings.Split(*teams, ",")
	}
	if *count != 0 {
		if *count < 2 || *count%2 != 0 {
			return &league.RosterError{Size: *count}
		}
		if *count != len(names) {
			return fmt.Errorf("please enter exactly %d team names, got %d", *count, len(names))
		}
	}

	rounds, err := league.GenerateSchedule(names)
	if err != nil {
		return fmt.Errorf("generating fixtures: %w", err)
	}
	tracker, err := league.NewTracker(names)
	if err != nil {
		return fmt.Errorf("building leaderboard: %w", err)
	}
	if err := league.WriteSchedule(stdout, rounds); err != nil {
		return fmt.Errorf("writing fixtures: %w", err)
	}

	in := stdin
	if *resultsPath != "" && *resultsPath != "-" {
		f, err := os.Open(*resultsPath)
		if err != nil {
			return fmt.Errorf("opening results: %w", err)
		}
		defer f.Close()
		in = f
	}

	reader := bufio.NewReader(in)
	lineNo := 0
	for {
		raw, tooLong, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading results: %w", err)
		}
		lineNo++
		line := strings.TrimSpace(raw)
		if line == "" && !tooLong {
			continue
		}
		entry := logger.WithField("line", lineNo)

		var result league.MatchResult
		if tooLong {
			err = &league.ScoreError{Reason: fmt.Sprintf("line longer than %d bytes", maxLineBytes)}
		} else {
			result, err = league.ParseResult(line)
		}
		if err == nil {
			err = tracker.RecordResult(result)
		}
		if err != nil {
			entry.WithError(err).Warn("result rejected")
			continue
		}
		entry.WithField("result", result.String()).Debug("result recorded")

		fmt.Fprintln(stdout)
		if err := league.WriteTable(stdout, tracker.Rank()); err != nil {
			return fmt.Errorf("writing leaderboard: %w", err)
		}
	}
	return nil
}

const maxLineBytes = 4096

// readLine returns the next line without its terminator. A line longer than
// maxLineBytes is consumed in full but returned empty with tooLong set.
func readLine(r *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && (len(buf) > 0 || tooLong) {
				return string(buf), tooLong, nil
			}
			return "", false, err
		}
		if !tooLong {
			if len(buf)+len(chunk) > maxLineBytes {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}
