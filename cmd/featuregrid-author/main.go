package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/goliatone/go-featuregrid/internal/prompt"
	"github.com/goliatone/go-featuregrid/pkg/feature"
)

func main() {
	seed := flag.String("seed", "", "features document to start from; reference list if empty")
	empty := flag.Bool("empty", false, "start from an empty list")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	list := feature.Reference()
	switch {
	case *empty:
		list = feature.NewList()
	case *seed != "":
		loaded, err := feature.LoadFS(os.DirFS(filepath.Dir(*seed)), filepath.Base(*seed))
		if err != nil {
			log.Fatalf("Failed to load seed: %v", err)
		}
		list = loaded
	}

	author := prompt.NewAuthor(
		prompt.NewSurveyDriver(os.Stderr),
		feature.IconPerformance, feature.IconDeveloper, feature.IconSecurity,
	)
	edited, err := author.Run(context.Background(), list)
	if errors.Is(err, prompt.ErrAborted) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		os.Exit(130)
	}
	if err != nil {
		log.Fatalf("Failed to author features: %v", err)
	}

	data, err := feature.EncodeYAML(edited)
	if err != nil {
		log.Fatalf("Failed to encode features: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, data, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Features written to %s\n", *output)
	} else {
		fmt.Print(string(data))
	}
}
