package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/adapters/repository"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/config"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/core/domain"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/logging"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/ports"
)

const usage = "expected 'export' or 'import' subcommands"

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	importFile := importCmd.String("file", "", "JSON file to import")

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	ctx := context.Background()
	logger := logging.New(os.Stderr, logging.LevelInfo, "text")

	cfg, err := config.Load()
	if err != nil {
		logger.Error(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	repo, err := repository.Open(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "failed to connect to db", "error", err)
		os.Exit(1)
	}
	defer repo.Close()

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		err = doExport(ctx, repo, os.Stdout)
	case "import":
		importCmd.Parse(os.Args[2:])
		if *importFile == "" {
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		var f *os.File
		if f, err = os.Open(*importFile); err == nil {
			var count int
			count, err = doImport(ctx, repo, f, logger)
			f.Close()
			logger.Info(ctx, "import finished", "imported", count)
		}
	default:
		fmt.Println(usage)
		os.Exit(1)
	}

	if err != nil {
		logger.Error(ctx, os.Args[1]+" failed", "error", err)
		repo.Close()
		os.Exit(1)
	}
}

// doExport writes every link, newest first, as indented JSON.
func doExport(ctx context.Context, repo ports.LinkRepository, w io.Writer) error {
	links, err := repo.List(ctx)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(links)
}

// doImport creates each link read from r. Ids in the file are ignored and
// the store assigns new ones; links are inserted oldest first so the
// relative order survives.
func doImport(ctx context.Context, repo ports.LinkRepository, r io.Reader, logger *logging.Logger) (int, error) {
	var links []domain.Link
	if err := json.NewDecoder(r).Decode(&links); err != nil {
		return 0, fmt.Errorf("decode: %w", err)
	}

	count := 0
	for i := len(links) - 1; i >= 0; i-- {
		l := domain.Link{Title: links[i].Title, URL: links[i].URL}
		if err := repo.Create(ctx, &l); err != nil {
			return count, err
		}
		logger.Debug(ctx, "imported link", "old_id", links[i].ID, "id", l.ID)
		count++
	}
	return count, nil
}
