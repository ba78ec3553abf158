// Command boundgen emits the build-tagged candidate tables consumed by
// the boundtable package, once per supported word width.
//
// Usage:
//
//	boundgen [-width N] [-out DIR] [-check]
//
//	-width N   generate only the N-bit table (default: both 32 and 64)
//	-out DIR   directory to write into (default ".", i.e. the boundtable
//	           package directory when run via go generate)
//	-check     verify the files on disk are current instead of writing;
//	           exits non-zero when any is stale or missing
//
// The emitted files are deterministic: the same width always produces
// byte-identical output, so -check doubles as a CI staleness gate for
// targets whose word width changed since the last generation.
package main

import (
	"flag"
	"log/slog"
	"os"
)

func main() {
	var (
		width = flag.Uint("width", 0, "word width to generate (0 = both 32 and 64)")
		out   = flag.String("out", ".", "output directory")
		check = flag.Bool("check", false, "verify generated files are current instead of writing")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	widths := []uint{32, 64}
	if *width != 0 {
		widths = []uint{*width}
	}

	stale := false
	for _, w := range widths {
		src, err := render(w)
		if err != nil {
			log.Error("render failed", "width", w, "err", err)
			os.Exit(1)
		}
		name := fileName(w)

		if *check {
			ok, err := checkCurrent(*out, name, src)
			if err != nil {
				log.Error("check failed", "file", name, "err", err)
				os.Exit(1)
			}
			if !ok {
				log.Warn("generated table is stale", "file", name, "width", w)
				stale = true

				continue
			}
			log.Info("generated table is current", "file", name, "width", w)

			continue
		}

		if err := writeAtomic(*out, name, src); err != nil {
			log.Error("write failed", "file", name, "err", err)
			os.Exit(1)
		}
		log.Info("wrote candidate table", "file", name, "width", w, "bytes", len(src))
	}

	if stale {
		os.Exit(1)
	}
}
