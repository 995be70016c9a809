// seed_consumption importa el historial de consumo mensual de un CSV heredado al
// almacén de documentos de un tenant.
//
// Formato: item;YYYY-MM;cantidad (la primera fila puede ser cabecera). Acepta UTF-8 o ISO-8859-1.
// Las cantidades se suman a las existentes: volver a importar el mismo archivo las duplica.
//
// Uso: go run ./cmd/seed_consumption -tenant <ownerID> [-file consumo.csv] [-dry-run]
package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/inventory"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/firestoredb"
	"github.com/jhoicas/Farmacia-api/pkg/config"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

func main() {
	tenantID := flag.String("tenant", "", "ID del dueño (tenant) destino")
	path := flag.String("file", "consumo.csv", "ruta del CSV")
	dryRun := flag.Bool("dry-run", false, "solo muestra lo que se importaría")
	flag.Parse()

	if strings.TrimSpace(*tenantID) == "" {
		fmt.Fprintln(os.Stderr, "Falta -tenant")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	records, skipped, err := parseConsumption(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%d ítems, %d filas descartadas\n", len(records), skipped)

	if *dryRun {
		for _, r := range records {
			fmt.Printf("  %s: %v\n", r.ItemName, r.Months)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, App: "seed_consumption"})

	ctx := context.Background()
	client, err := firestoredb.NewClient(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Firestore")
	}
	defer client.Close()

	repo := firestoredb.NewConsumptionRepository(client)
	failed := 0
	for _, r := range records {
		if err := repo.MergeMonths(ctx, *tenantID, r); err != nil {
			failed++
			log.Error().Err(err).Str("item", r.ItemName).Msg("no se pudo importar")
			continue
		}
		log.Debug().Str("item", r.ItemName).Int("months", len(r.Months)).Msg("importado")
	}
	log.Info().Int("items", len(records)-failed).Int("failed", failed).Msg("importación terminada")
	if failed > 0 {
		os.Exit(1)
	}
}

// parseConsumption agrupa las filas por ítem, sumando cantidades repetidas del mismo mes.
// Filas con ítem vacío, mes inválido o menos de tres columnas se descartan.
func parseConsumption(raw []byte) ([]entity.MonthlyConsumptionRecord, int, error) {
	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}
	r := csv.NewReader(src)
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	byItem := make(map[string]map[string]float64)
	skipped := 0
	for line := 1; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("línea %d: %w", line, err)
		}
		if len(row) < 3 {
			skipped++
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(row[0], "\ufeff"))
		month := strings.TrimSpace(row[1])
		if name == "" || !entity.ValidMonth(month) {
			// Cabecera o fila corrupta.
			skipped++
			continue
		}
		qty := inventory.ToNonNegativeNumber(strings.ReplaceAll(strings.TrimSpace(row[2]), ",", "."))
		if byItem[name] == nil {
			byItem[name] = make(map[string]float64)
		}
		byItem[name][month] += qty
	}

	names := make([]string, 0, len(byItem))
	for n := range byItem {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]entity.MonthlyConsumptionRecord, 0, len(names))
	for _, n := range names {
		out = append(out, entity.MonthlyConsumptionRecord{ItemName: n, Months: byItem[n]})
	}
	return out, skipped, nil
}
