// Package csvlog reads and writes the workout log file.
//
// The file carries a header row followed by one row per set:
//
//	date,exercise,sets,reps,weight_kg
//	2024-05-01,Squat,3,10,20.00
package csvlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"volume-tracker/internal/models"
)

// DefaultFileName is used when no log path is configured.
const DefaultFileName = "workout_log.csv"

var Header = []string{"date", "exercise", "sets", "reps", "weight_kg"}

// legacyWeightColumn is the header spelling older logs were written with.
const legacyWeightColumn = "weight"

// SkippedRow records a line that could not be turned into a set.
type SkippedRow struct {
	Line   int
	Reason string
}

// LoadReport describes what Read kept and dropped.
type LoadReport struct {
	Loaded  int
	Skipped []SkippedRow
}

// Load reads the log at path. A missing file is an empty log.
func Load(path string) ([]models.WorkoutSet, LoadReport, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, LoadReport{}, nil
	}
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("opening log: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses log rows. Rows without exactly five columns or with values that
// fail validation are skipped and reported rather than failing the whole file.
func Read(r io.Reader) ([]models.WorkoutSet, LoadReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var (
		sets    []models.WorkoutSet
		report  LoadReport
		records int
	)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		records++
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				report.Skipped = append(report.Skipped, SkippedRow{Line: perr.StartLine, Reason: perr.Err.Error()})
				continue
			}
			return nil, report, fmt.Errorf("reading log: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if records == 1 && isHeader(record) {
			continue
		}
		if len(record) != len(Header) {
			report.Skipped = append(report.Skipped, SkippedRow{
				Line:   line,
				Reason: fmt.Sprintf("expected %d columns, got %d", len(Header), len(record)),
			})
			continue
		}

		set, err := models.ParseSetInput(models.SetInput{
			Date:     record[0],
			Exercise: record[1],
			Sets:     record[2],
			Reps:     record[3],
			Weight:   record[4],
		})
		if err != nil {
			report.Skipped = append(report.Skipped, SkippedRow{Line: line, Reason: err.Error()})
			continue
		}
		sets = append(sets, set)
	}

	report.Loaded = len(sets)
	return sets, report, nil
}

// defaultMode is used for a log that does not exist yet.
const defaultMode fs.FileMode = 0644

// Save writes the log to a temporary file next to path and renames it over
// the old log, so a failed write leaves the previous file intact.
func Save(path string, sets []models.WorkoutSet) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp log: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := Write(tmp, sets); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp log: %w", err)
	}
	if err := os.Chmod(tmpName, logMode(path)); err != nil {
		return fmt.Errorf("setting log permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing log: %w", err)
	}
	return nil
}

// logMode keeps the permissions of an existing log across saves.
func logMode(path string) fs.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return defaultMode
	}
	return info.Mode().Perm()
}

// Write emits the header and one row per set, weight with two decimals.
func Write(w io.Writer, sets []models.WorkoutSet) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, s := range sets {
		row := []string{
			s.DateString(),
			s.Exercise,
			strconv.Itoa(s.Sets),
			strconv.Itoa(s.Reps),
			strconv.FormatFloat(s.WeightKg, 'f', 2, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing log: %w", err)
	}
	return nil
}

func isHeader(record []string) bool {
	if len(record) != len(Header) {
		return false
	}
	for i, col := range record {
		col = strings.ToLower(strings.TrimSpace(col))
		if col == Header[i] {
			continue
		}
		if i == len(Header)-1 && col == legacyWeightColumn {
			continue
		}
		return false
	}
	return true
}
