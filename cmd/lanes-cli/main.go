package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"laneinfer/pkg/corpus"
	"laneinfer/pkg/lanes"
	"laneinfer/pkg/locale"
	"laneinfer/pkg/tags"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "infer":
		runInfer(os.Args[2:])
	case "demo":
		runDemo(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: lanes-cli <infer|demo> [flags]")
	fmt.Fprintln(os.Stderr, "  infer  --tags <file.json|-> [--left] [--error-on-warnings] [--separators]")
	fmt.Fprintln(os.Stderr, "  demo   --lat <f> --lon <f> [--left]")
}

func runInfer(args []string) {
	fs := flag.NewFlagSet("infer", flag.ExitOnError)
	tagsPath := fs.String("tags", "-", "Path to a JSON tag map, or - for stdin")
	left := fs.Bool("left", false, "Left-hand-traffic locale (default is right)")
	errorOnWarnings := fs.Bool("error-on-warnings", false, "Fail if the inference produces any warnings")
	separators := fs.Bool("separators", false, "Synthesize separator lanes in the output")
	fs.Parse(args)

	var r io.Reader = os.Stdin
	if *tagsPath != "-" {
		f, err := os.Open(*tagsPath)
		if err != nil {
			log.Fatalf("Failed to open %s: %v", *tagsPath, err)
		}
		defer f.Close()
		r = f
	}

	var raw map[string]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		log.Fatalf("Failed to decode tags JSON: %v", err)
	}

	loc := localeFor(*left)
	cfg := lanes.Config{ErrorOnWarnings: *errorOnWarnings, IncludeSeparators: *separators}

	rd, warnings, err := lanes.TagsToLanes(tags.New(raw), loc, cfg)
	for _, msg := range warnings.List() {
		log.Printf("warning: %s: %s", msg.Kind, msg.Description)
	}
	if err != nil {
		log.Fatalf("Inference failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rd); err != nil {
		log.Fatalf("Failed to encode road: %v", err)
	}
}

func runDemo(args []string) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	lat := fs.Float64("lat", 37.7749, "Query latitude")
	lon := fs.Float64("lon", -122.4194, "Query longitude")
	left := fs.Bool("left", false, "Left-hand-traffic locale (default is right)")
	fs.Parse(args)

	loc := localeFor(*left)

	c, err := corpus.New(loc)
	if err != nil {
		log.Fatalf("Failed to build demo corpus: %v", err)
	}
	log.Printf("Loaded demo corpus: %d ways", c.Len())

	way, ok := c.Nearest(*lat, *lon)
	if !ok {
		log.Fatal("Demo corpus is empty")
	}
	log.Printf("Nearest way %d at (%.4f, %.4f)", way.ID, way.Location[1], way.Location[0])

	rd, warnings, err := lanes.TagsToLanes(way.Tags, loc, lanes.Config{IncludeSeparators: true})
	for _, msg := range warnings.List() {
		log.Printf("warning: %s: %s", msg.Kind, msg.Description)
	}
	if err != nil {
		log.Fatalf("Inference failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rd); err != nil {
		log.Fatalf("Failed to encode road: %v", err)
	}
}

func localeFor(left bool) locale.Locale {
	if left {
		return locale.NewDefault(locale.Left)
	}
	return locale.NewDefault(locale.Right)
}
