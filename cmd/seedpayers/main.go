// Command seedpayers converts a payer directory Excel file into a SQL seed
// file for the payers table.
// Usage: go run ./cmd/seedpayers [payers.xlsx]
// Output: db/seeds/payers.sql
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

type payerEntry struct {
	name               string
	aliases            []string
	appealsAddress     string
	appealsPhone       string
	appealsFax         string
	appealsPortalURL   string
	deadlineDays       int
	expeditedAvailable bool
	medicalNecessity   []string
	stepTherapy        []string
	documentation      []string
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := "payers.xlsx"
	if len(os.Args) > 1 {
		xlsxPath = os.Args[1]
	}
	outPath := "db/seeds/payers.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := parsePayerSheet(f)
	if err != nil {
		return fmt.Errorf("parse payer sheet: %w", err)
	}
	log.Printf("payer sheet: %d entries", len(entries))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	fmt.Fprintln(out, "-- Payer directory seed data generated from Excel.")
	fmt.Fprintf(out, "-- %d payers.\n", len(entries))
	fmt.Fprintln(out, "-- Run: make seed-payers")
	fmt.Fprintln(out, "BEGIN;")
	fmt.Fprintln(out, "")

	for _, e := range entries {
		if err := writeInsert(out, e); err != nil {
			return fmt.Errorf("write insert for %q: %w", e.name, err)
		}
	}

	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "COMMIT;")

	log.Printf("Generated %d payers in %s", len(entries), outPath)
	return nil
}

// parsePayerSheet reads the first sheet. Columns: A=name, B=aliases
// (comma-separated), C=appeals address, D=phone, E=fax, F=portal URL,
// G=deadline days, H=expedited (yes/no), I=medical necessity requirements,
// J=step therapy requirements, K=documentation requirements (I-K are
// semicolon-separated lists). Row 0 is the header.
func parsePayerSheet(f *excelize.File) ([]payerEntry, error) {
	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var entries []payerEntry
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		name := strings.TrimSpace(cellVal(row, 0))
		if name == "" {
			continue
		}

		deadline := 180
		if v := strings.TrimSpace(cellVal(row, 6)); v != "" {
			if n, perr := strconv.Atoi(v); perr == nil && n > 0 {
				deadline = n
			}
		}

		expedited := false
		switch strings.ToLower(strings.TrimSpace(cellVal(row, 7))) {
		case "yes", "y", "true", "1":
			expedited = true
		}

		entries = append(entries, payerEntry{
			name:               name,
			aliases:            splitList(cellVal(row, 1), ","),
			appealsAddress:     strings.TrimSpace(cellVal(row, 2)),
			appealsPhone:       strings.TrimSpace(cellVal(row, 3)),
			appealsFax:         strings.TrimSpace(cellVal(row, 4)),
			appealsPortalURL:   strings.TrimSpace(cellVal(row, 5)),
			deadlineDays:       deadline,
			expeditedAvailable: expedited,
			medicalNecessity:   splitList(cellVal(row, 8), ";"),
			stepTherapy:        splitList(cellVal(row, 9), ";"),
			documentation:      splitList(cellVal(row, 10), ";"),
		})
	}
	return entries, nil
}

func writeInsert(out *os.File, e payerEntry) error {
	_, err := fmt.Fprintf(out,
		`INSERT INTO payers (id, name, aliases, appeals_address, appeals_phone, appeals_fax, appeals_portal_url, appeal_deadline_days, expedited_review_available, medical_necessity_reqs, step_therapy_reqs, documentation_reqs)
VALUES (gen_random_uuid(), '%s', '%s', %s, %s, %s, %s, %d, %t, '%s', '%s', '%s')
ON CONFLICT (name) DO NOTHING;
`,
		sqlEscape(e.name),
		sqlEscape(jsonList(e.aliases)),
		sqlString(e.appealsAddress),
		sqlString(e.appealsPhone),
		sqlString(e.appealsFax),
		sqlString(e.appealsPortalURL),
		e.deadlineDays,
		e.expeditedAvailable,
		sqlEscape(jsonList(e.medicalNecessity)),
		sqlEscape(jsonList(e.stepTherapy)),
		sqlEscape(jsonList(e.documentation)),
	)
	return err
}

func cellVal(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func splitList(raw, sep string) []string {
	var out []string
	for _, p := range strings.Split(raw, sep) {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func jsonList(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return string(b)
}

func sqlEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func sqlString(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + sqlEscape(s) + "'"
}
