package main

import (
	"fmt"
	"os"

	"github.com/phambaophuc/image-trim/internal/cli"
	"github.com/phambaophuc/image-trim/internal/config"
	"github.com/phambaophuc/image-trim/internal/logger"
	"github.com/phambaophuc/image-trim/internal/services/processor"
	"go.uber.org/zap"
)

// go run ./cmd/crop_image logo.png logo_trimmed.png

func main() {
	// Reject bad usage before touching .env or the input file.
	if len(os.Args) != 3 {
		fmt.Println(cli.Usage)
		return
	}

	// Only warnings reach stderr unless LOG_LEVEL says otherwise.
	cfg, err := config.Load("warn")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		// A bad LOG_LEVEL must not stop the crop.
		log = zap.NewNop()
	}
	defer log.Sync()

	proc := processor.NewImageProcessor(
		processor.WithCompression(cfg.Image.Compression),
		processor.WithAutoOrientation(cfg.Image.AutoOrientation),
	)

	cli.NewCropper(proc, log, os.Stdout).Run(os.Args[1:])
}
