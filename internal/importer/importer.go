// Package importer bulk-loads daily generation readings from the operator's
// xlsx spreadsheet. Rows map to plants by normalized name; column headers map
// to calendar dates; existing (plant, date) readings are left untouched.
package importer

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/gcsolar/usinas-backend/internal/pkg/logger"
	"github.com/gcsolar/usinas-backend/internal/pkg/store"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// spreadsheet layout: date headers on row 4 starting at column D, plant names
// in column C from row 5, energy values under each date column.
const (
	headerRowIdx = 3
	dataColIdx   = 3
	nameColIdx   = 2
)

var (
	monthSheetRe  = regexp.MustCompile(`(?i)^(janeiro|fevereiro|março|abril|maio|junho|julho|agosto|setembro|outubro|novembro|dezembro)\s?\d{2,4}$`)
	fallbackRe    = regexp.MustCompile(`^Geração - \d{2}_\d{4}$`)
	headerDateRe  = regexp.MustCompile(`(\d{2}/\d{2}/\d{4})`)
	zeroWidthRepl = strings.NewReplacer("​", "")
)

type Store interface {
	ListPlantNames(ctx context.Context) ([]store.PlantName, error)
	InsertReadingIgnoreConflict(ctx context.Context, opts store.CreateReadingOpts) (bool, error)
}

type Summary struct {
	Sheets          int
	Inserted        int
	SkippedExisting int
	SkippedUnmapped int
	SkippedInvalid  int
}

type Importer struct {
	store Store
}

func New(st Store) *Importer {
	return &Importer{store: st}
}

func (i *Importer) Run(ctx context.Context, path string) (Summary, error) {
	var summary Summary

	names, err := i.loadPlantNames(ctx)
	if err != nil {
		return summary, fmt.Errorf("load plant names: %w", err)
	}
	if len(names) == 0 {
		return summary, fmt.Errorf("no plants registered; import needs existing plants to map rows onto")
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return summary, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	for _, sheet := range f.GetSheetList() {
		if !monthSheetRe.MatchString(sheet) && !fallbackRe.MatchString(sheet) {
			logger.Infof(ctx, "skipping sheet %q: name does not match a generation sheet pattern", sheet)
			continue
		}
		summary.Sheets++
		if err := i.processSheet(ctx, f, sheet, names, &summary); err != nil {
			logger.Errorf(ctx, "sheet %q: %s", sheet, err.Error())
		}
	}

	return summary, nil
}

func (i *Importer) loadPlantNames(ctx context.Context) (map[string]int64, error) {
	plantNames, err := i.store.ListPlantNames(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]int64, len(plantNames))
	for _, p := range plantNames {
		names[NormalizeName(p.Nome)] = p.ID
	}
	return names, nil
}

func (i *Importer) processSheet(ctx context.Context, f *excelize.File, sheet string, names map[string]int64, summary *Summary) error {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= headerRowIdx {
		return fmt.Errorf("sheet has no header row")
	}

	header := rows[headerRowIdx]
	if len(header) <= dataColIdx {
		return fmt.Errorf("header row has no date columns")
	}
	dates := make([]*time.Time, 0, len(header)-dataColIdx)
	for _, cell := range header[dataColIdx:] {
		if d, ok := ParseHeaderDate(cell); ok {
			dates = append(dates, &d)
		} else {
			dates = append(dates, nil)
		}
	}

	// merged name cells read as empty; the last seen name carries down
	var lastName string
	for _, row := range rows[headerRowIdx+1:] {
		if len(row) > nameColIdx && strings.TrimSpace(row[nameColIdx]) != "" {
			lastName = row[nameColIdx]
		}
		if strings.TrimSpace(lastName) == "" || len(row) <= dataColIdx {
			continue
		}

		usinaID, ok := names[NormalizeName(lastName)]
		if !ok {
			logger.Warnf(ctx, "plant %q not found, skipping row", strings.TrimSpace(lastName))
			summary.SkippedUnmapped++
			continue
		}

		for idx, cell := range row[dataColIdx:] {
			if idx >= len(dates) || dates[idx] == nil {
				continue
			}
			if strings.TrimSpace(cell) == "" {
				continue
			}
			energia, err := ParseEnergia(cell)
			if err != nil {
				logger.Warnf(ctx, "unparsable energy value %q for %s on %s", cell, lastName, dates[idx].Format("2006-01-02"))
				summary.SkippedInvalid++
				continue
			}

			inserted, err := i.store.InsertReadingIgnoreConflict(ctx, store.CreateReadingOpts{
				UsinaID:    usinaID,
				Data:       *dates[idx],
				EnergiaKwh: energia,
			})
			if err != nil {
				return fmt.Errorf("insert reading: %w", err)
			}
			if inserted {
				summary.Inserted++
			} else {
				summary.SkippedExisting++
			}
		}
	}

	return nil
}

// ParseHeaderDate accepts the three header forms the spreadsheets use: a
// dd/mm/yyyy substring, an Excel date serial and an ISO date.
func ParseHeaderDate(cell string) (time.Time, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return time.Time{}, false
	}

	if m := headerDateRe.FindString(cell); m != "" {
		if t, err := time.Parse("02/01/2006", m); err == nil {
			return t, true
		}
	}
	if serial, err := strconv.ParseFloat(cell, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.Truncate(24 * time.Hour), true
		}
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", cell); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ParseEnergia reads a spreadsheet cell as kWh, accepting the comma decimal
// separator.
func ParseEnergia(cell string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(cell), ",", "."), 64)
}

var nameNormalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName strips zero-width characters and accents, trims and lowers,
// so spreadsheet names match database names case-insensitively.
func NormalizeName(name string) string {
	name = zeroWidthRepl.Replace(name)
	if folded, _, err := transform.String(nameNormalizer, name); err == nil {
		name = folded
	}
	return strings.ToLower(strings.TrimSpace(name))
}
