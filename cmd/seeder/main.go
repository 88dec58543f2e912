package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Sanjay1766/OptiSearch-AI/corpus"
)

var outFileName = flag.String("out", "data/sample_internships.csv", "destination CSV file")

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	records := corpus.Sample()

	if dir := filepath.Dir(*outFileName); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			panic(err)
		}
	}

	f, err := os.Create(*outFileName)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	if err := corpus.WriteRecords(f, records); err != nil {
		panic(err)
	}

	slog.Info("wrote sample internships", "path", *outFileName, "records", len(records))
}
