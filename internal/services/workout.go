package services

import (
	"context"
	"fmt"
	"sync"

	"volume-tracker/internal/csvlog"
	"volume-tracker/internal/logger"
	"volume-tracker/internal/models"
)

// WorkoutService applies form submissions to the log and moves it to and from disk
type WorkoutService struct {
	path   string
	log    *models.WorkoutLog
	logger logger.Logger

	saveMu sync.Mutex
}

// NewWorkoutService creates a service over an in-memory log backed by the CSV at path
func NewWorkoutService(path string, log *models.WorkoutLog, lg logger.Logger) *WorkoutService {
	return &WorkoutService{
		path:   path,
		log:    log,
		logger: lg,
	}
}

func (ws *WorkoutService) Path() string {
	return ws.path
}

// Load replaces the in-memory log with the file contents
func (ws *WorkoutService) Load(ctx context.Context) (csvlog.LoadReport, error) {
	select {
	case <-ctx.Done():
		return csvlog.LoadReport{}, ctx.Err()
	default:
	}

	sets, report, err := csvlog.Load(ws.path)
	if err != nil {
		return report, fmt.Errorf("loading %s: %w", ws.path, err)
	}
	ws.log.Replace(sets)

	for _, skipped := range report.Skipped {
		ws.logger.Warning("WorkoutService", "skipped log row", map[string]interface{}{
			"path":   ws.path,
			"line":   skipped.Line,
			"reason": skipped.Reason,
		})
	}
	ws.logger.Info("WorkoutService", "log loaded", map[string]interface{}{
		"path":    ws.path,
		"sets":    report.Loaded,
		"skipped": len(report.Skipped),
	})
	return report, nil
}

// Save flushes the whole log to disk
func (ws *WorkoutService) Save(ctx context.Context) error {
	ws.saveMu.Lock()
	defer ws.saveMu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	sets := ws.log.List()
	if err := csvlog.Save(ws.path, sets); err != nil {
		ws.logger.Error("WorkoutService", err, map[string]interface{}{"path": ws.path})
		return fmt.Errorf("saving %s: %w", ws.path, err)
	}
	ws.log.MarkClean()

	ws.logger.Info("WorkoutService", "log saved", map[string]interface{}{
		"path": ws.path,
		"sets": len(sets),
	})
	return nil
}

// AddSet validates form input and appends it
func (ws *WorkoutService) AddSet(in models.SetInput) (models.WorkoutSet, error) {
	set, err := models.ParseSetInput(in)
	if err != nil {
		return models.WorkoutSet{}, err
	}
	set = ws.log.Add(set)

	ws.logger.Debug("WorkoutService", "set added", map[string]interface{}{
		"id":       set.ID,
		"exercise": set.Exercise,
		"volume":   set.Volume(),
	})
	return set, nil
}

// UpdateSet validates form input and overwrites the set with the given ID
func (ws *WorkoutService) UpdateSet(id string, in models.SetInput) (models.WorkoutSet, error) {
	set, err := models.ParseSetInput(in)
	if err != nil {
		return models.WorkoutSet{}, err
	}
	set, err = ws.log.Update(id, set)
	if err != nil {
		return models.WorkoutSet{}, fmt.Errorf("updating set %s: %w", id, err)
	}

	ws.logger.Debug("WorkoutService", "set updated", map[string]interface{}{
		"id":       id,
		"exercise": set.Exercise,
	})
	return set, nil
}

func (ws *WorkoutService) DeleteSet(id string) error {
	if err := ws.log.Delete(id); err != nil {
		return fmt.Errorf("deleting set %s: %w", id, err)
	}
	ws.logger.Debug("WorkoutService", "set deleted", map[string]interface{}{"id": id})
	return nil
}

func (ws *WorkoutService) Get(id string) (models.WorkoutSet, bool) {
	return ws.log.Get(id)
}

func (ws *WorkoutService) IndexOf(id string) int {
	return ws.log.IndexOf(id)
}

func (ws *WorkoutService) Sets() []models.WorkoutSet {
	return ws.log.List()
}

func (ws *WorkoutService) Summary() models.Summary {
	return models.Summarize(ws.log.List())
}

// HasUnsavedChanges reports mutations since the last load or save.
func (ws *WorkoutService) HasUnsavedChanges() bool {
	return ws.log.Dirty()
}

// Shutdown saves pending changes. A log already saved by the close dialog
// is left alone.
func (ws *WorkoutService) Shutdown() {
	if !ws.HasUnsavedChanges() {
		ws.logger.Debug("WorkoutService", "no unsaved changes at shutdown", nil)
		return
	}
	if err := ws.Save(context.Background()); err != nil {
		ws.logger.Warning("WorkoutService", "save during shutdown failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
