package csvlog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volume-tracker/internal/models"
)

func mustSet(t *testing.T, date, exercise, sets, reps, weight string) models.WorkoutSet {
	t.Helper()
	s, err := models.ParseSetInput(models.SetInput{Date: date, Exercise: exercise, Sets: sets, Reps: reps, Weight: weight})
	require.NoError(t, err)
	return s
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	sets, report, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	assert.Empty(t, sets)
	assert.Zero(t, report.Loaded)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	want := []models.WorkoutSet{
		mustSet(t, "2024-05-01", "Squat", "3", "10", "20"),
		mustSet(t, "2024-05-01", "Bench, close grip", "5", "5", "62.5"),
		mustSet(t, "2024-05-02", `Farmer "carry"`, "2", "1", "0"),
		mustSet(t, "2024-05-02", "Squat", "3", "10", "20"),
	}

	require.NoError(t, Save(path, want))

	got, report, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, report.Skipped)
	assert.Equal(t, len(want), report.Loaded)
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].SameFields(got[i]), "row %d: want %+v got %+v", i, want[i], got[i])
	}
}

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []models.WorkoutSet{mustSet(t, "2024-01-02", "Row", "4", "8", "57.25")}))

	assert.Equal(t, "date,exercise,sets,reps,weight_kg\n2024-01-02,Row,4,8,57.25\n", buf.String())
}

func TestReadAcceptsLegacyHeader(t *testing.T) {
	in := "date,exercise,sets,reps,weight\n2024-01-02,Row,4,8,57.25\n"
	sets, report, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Loaded)
	require.Len(t, sets, 1)
	assert.Equal(t, 57.25, sets[0].WeightKg)
}

func TestReadWithoutHeader(t *testing.T) {
	sets, _, err := Read(strings.NewReader("2024-01-02,Row,4,8,57.25\n"))
	require.NoError(t, err)
	assert.Len(t, sets, 1)
}

func TestReadSkipsBadRows(t *testing.T) {
	in := strings.Join([]string{
		"date,exercise,sets,reps,weight_kg",
		"2024-01-02,Row,4,8,57.25",
		"2024-01-02,Row,4,8",
		"2024-01-03,Bench,x,8,60",
		"2024-01-04,Press,3,5,40,extra",
		"2024-01-05,Curl,3,12,10",
	}, "\n")

	sets, report, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "Row", sets[0].Exercise)
	assert.Equal(t, "Curl", sets[1].Exercise)

	require.Len(t, report.Skipped, 3)
	assert.Equal(t, 3, report.Skipped[0].Line)
	assert.Equal(t, 4, report.Skipped[1].Line)
	assert.Contains(t, report.Skipped[1].Reason, "sets")
	assert.Equal(t, 5, report.Skipped[2].Line)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.csv")
	require.NoError(t, Save(path, nil))
	require.NoError(t, Save(path, []models.WorkoutSet{mustSet(t, "2024-01-02", "Row", "1", "1", "1")}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "log.csv", entries[0].Name())
}

func TestSaveIntoMissingDirectoryFails(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "missing", "log.csv"), nil)
	assert.Error(t, err)
}

func TestSaveKeepsFileMode(t *testing.T) {
	dir := t.TempDir()
	fresh := filepath.Join(dir, "fresh.csv")
	require.NoError(t, Save(fresh, nil))
	info, err := os.Stat(fresh)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	existing := filepath.Join(dir, "existing.csv")
	require.NoError(t, os.WriteFile(existing, []byte(""), 0640))
	require.NoError(t, os.Chmod(existing, 0640))
	require.NoError(t, Save(existing, []models.WorkoutSet{mustSet(t, "2024-05-01", "Squat", "3", "10", "20")}))
	info, err = os.Stat(existing)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), info.Mode().Perm())
}
