package main

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ruralpay/txengine/internal/config"
	"github.com/ruralpay/txengine/internal/ledger"
	"github.com/ruralpay/txengine/internal/services"
	"github.com/ruralpay/txengine/internal/stream"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <transactions.csv>", filepath.Base(os.Args[0]))
	}

	// Input paths are resolved relative to the executable's directory, not
	// the working directory.
	exe, err := os.Executable()
	if err != nil {
		log.Fatalf("Failed to locate executable: %v", err)
	}
	exeDir := filepath.Dir(exe)

	cfg := config.Load(exeDir)

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	inputPath := os.Args[1]
	if !filepath.IsAbs(inputPath) {
		inputPath = filepath.Join(exeDir, inputPath)
	}

	f, err := os.Open(inputPath)
	if err != nil {
		log.Fatalf("Could not open input file %s: %v", inputPath, err)
	}
	defer f.Close()

	book := ledger.NewAccountBook()
	service := services.NewTransactionService(ledger.NewLedger(), book, logger)

	reader := stream.NewReader(f)
	for {
		tx, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Malformed input aborts the whole run; nothing is emitted.
			log.Fatalf("Error while parsing input: %v", err)
		}

		// Rejections are logged inside Apply and the run continues.
		service.Apply(tx)
	}

	if err := stream.WriteSummary(os.Stdout, book.Accounts(), cfg.Precision); err != nil {
		log.Fatalf("Failed to write summary: %v", err)
	}

	stats := service.Stats()
	logger.Info("replay complete",
		zap.Int("applied", stats.Applied),
		zap.Int("rejected", stats.Rejected),
	)
}

// newLogger builds the diagnostic logger. Diagnostics go to stderr so stdout
// stays a clean CSV.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
