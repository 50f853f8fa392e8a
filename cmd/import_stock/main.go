// import_stock carga en stock_qualities el fichero exportado por la herramienta anterior.
//
// Uso: go run ./cmd/import_stock [-encoding latin1|cp1252|utf8] [-dry-run] fichero.csv
// Formato: stock_id;quality;available;reserved;threshold (una fila por grado y stock).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/Carrelage-api/internal/application/inventory"
	"github.com/jhoicas/Carrelage-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Carrelage-api/pkg/config"
	"github.com/jhoicas/Carrelage-api/pkg/logger"
)

func main() {
	encoding := flag.String("encoding", "latin1", "encoding del fichero (latin1, cp1252, utf8)")
	dryRun := flag.Bool("dry-run", false, "solo leer y validar el formato, sin escribir")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: import_stock [-encoding latin1] [-dry-run] fichero.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, AppName: "import_stock"})

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir fichero")
	}
	defer f.Close()

	r, err := decodeReader(f, *encoding)
	if err != nil {
		log.Fatal().Err(err).Msg("encoding")
	}
	rows, err := parseRows(r)
	if err != nil {
		log.Fatal().Err(err).Msg("formato del fichero")
	}
	if *dryRun {
		log.Info().Int("rows", len(rows)).Msg("dry-run: fichero leído, no se escribe nada")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	uc := inventory.NewImportUseCase(postgres.NewTxRunner(pool), log.Component("import"))
	res, err := uc.ImportStockQualities(ctx, rows)
	if err != nil {
		log.Error().Err(err).Msg("importación rechazada")
		pool.Close()
		os.Exit(1)
	}
	log.Info().Int("stocks", res.Stocks).Int("rows", res.Rows).Msg("importación completada")
}
