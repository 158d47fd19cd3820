// Package storage keeps an on-disk archive of runs, one directory per run ID.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/pksim/internal/export"
	"github.com/san-kum/pksim/internal/sim"
)

const (
	recordFile = "record.json"
	seriesFile = "series.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata is the listing view of a saved run.
type RunMetadata struct {
	ID             string
	CreatedAt      time.Time
	Drug           string
	Intervention   string
	DoseMg         float64
	VitaminCDoseMg float64
	Outcome        string
	GainedH        *float64
}

// Save writes the record as JSON and its series as CSV under the run ID.
func (s *Store) Save(rec export.Record) (string, error) {
	runID := rec.RunID.String()
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	err := writeFile(filepath.Join(runDir, recordFile), func(w io.Writer) error {
		return export.WriteJSON(w, rec)
	})
	if err != nil {
		return "", fmt.Errorf("write record: %w", err)
	}

	res := &sim.Result{Ph: rec.Ph, Concentrations: rec.Concentrations}
	err = writeFile(filepath.Join(runDir, seriesFile), func(w io.Writer) error {
		return export.WriteCSV(w, res)
	})
	if err != nil {
		return "", fmt.Errorf("write series: %w", err)
	}

	return runID, nil
}

// writeFile creates path and reports the close error when write succeeds.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}

// List returns saved runs, newest first. Unreadable entries are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		rec, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		meta := RunMetadata{
			ID:        entry.Name(),
			CreatedAt: rec.CreatedAt,
			Outcome:   rec.Sleep.Outcome,
			GainedH:   rec.Sleep.GainedH,
		}
		if rec.Inputs != nil {
			meta.Drug = rec.Inputs.Drug
			meta.Intervention = rec.Inputs.Intervention
			meta.DoseMg = rec.Inputs.DoseMg
			meta.VitaminCDoseMg = rec.Inputs.VitaminC.DoseMg
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (export.Record, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, recordFile))
	if err != nil {
		return export.Record{}, err
	}
	defer f.Close()

	rec, err := export.ReadJSON(f)
	if err != nil {
		return export.Record{}, fmt.Errorf("read run %s: %w", runID, err)
	}
	return rec, nil
}
