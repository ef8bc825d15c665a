// SPDX-License-Identifier: EPL-2.0

// Command mpainfo prints the MPEG audio frame headers found in a file as a
// fixed-width table, one row per frame.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/WickedA/mpaframes/id3"
	"github.com/WickedA/mpaframes/mpeg"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

	cfg, err := loadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "failed to load config", "err", err)
		os.Exit(1)
	}

	if cfg.File == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -file <audio file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	buf, err := readFileIntoMemory(cfg.File)
	if err != nil {
		level.Error(logger).Log("msg", "failed to load file", "file", cfg.File, "err", err)
		os.Exit(1)
	}

	start := id3.TagSize(buf)
	if tag, ok := id3.ParseTagHeader(buf); ok {
		level.Info(logger).Log("msg", "ID3v2 tag found",
			"version", fmt.Sprintf("2.%d.%d", tag.Version, tag.Revision),
			"length", start)
	}
	end := len(buf) - 1

	fmt.Printf("Starting MPEG header search at %08x...\n", start)

	first, err := mpeg.FirstHeader(buf, start, end)
	if err != nil {
		fmt.Println("No valid MPEG audio headers found.")
		return
	}

	fmt.Printf("First valid header at %08x:\n", first.Offset)
	fmt.Printf("  MPEG%s Layer %d\n", first.Version, first.Layer)
	fmt.Printf("  Bit rate:    %d kbps\n", first.Bitrate)
	fmt.Printf("  Sample rate: %d Hz\n", first.SampleRate)
	fmt.Printf("  Copyright: %s\n", yesNo(first.Copyright))
	fmt.Printf("  Original:  %s\n", yesNo(first.Original))
	fmt.Println()

	if cfg.All {
		fmt.Printf("Printing first %d MPEG headers found.\n\n", cfg.Headers)
	} else {
		fmt.Printf("Printing first %d MPEG%s Layer %d headers found.\n\n",
			cfg.Headers, first.Version, first.Layer)
	}

	fmt.Println(" Location | MPEG | L | Kbps | Hz    | E | C | O | Frame ")
	fmt.Println("----------|------|---|------|-------|---|---|---|-------")

	remaining := cfg.Headers
	for h, err := first, error(nil); err == nil && remaining > 0; h, err = mpeg.NextHeader(buf, h, end) {
		if !cfg.All && (h.Version != first.Version || h.Layer != first.Layer) {
			continue
		}

		fmt.Printf(" %08x | V%-3s | %d | %4d | %5d | %s | %s | %s | %5d \n",
			h.Offset, h.Version, h.Layer, h.Bitrate, h.SampleRate,
			flagMark(h.CRCEnabled), flagMark(h.Copyright), flagMark(h.Original),
			h.FrameSize)
		remaining--
	}
}

// readFileIntoMemory loads the whole file into an owned buffer and
// releases the handle; the scan itself never touches the filesystem.
func readFileIntoMemory(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read file")
	}
	return buf, nil
}

func loadConfig() (*Config, error) {
	const configFileOption = "config.file"

	var configFile string

	args := os.Args[1:]
	config := &Config{}

	// first get the config file
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&configFile, configFileOption, "", "")

	// Parsing stops on the first unknown flag, so retry with the remaining
	// parameters until the config flag is found or none are left.
	for len(args) > 0 {
		_ = fs.Parse(args)
		args = args[1:]
	}

	// load config defaults and register flags
	config.RegisterFlagsAndApplyDefaults("", flag.CommandLine)

	// overlay with config file if provided
	if configFile != "" {
		buff, err := os.ReadFile(configFile)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read configFile %s", configFile)
		}

		if err := yaml.UnmarshalStrict(buff, config); err != nil {
			return nil, errors.Wrapf(err, "failed to parse configFile %s", configFile)
		}
	}

	// overlay with cli
	flag.CommandLine.String(configFileOption, "", "Configuration file to load")
	flag.Parse()

	return config, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func flagMark(b bool) string {
	if b {
		return "Y"
	}
	return " "
}
