package materials

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydash/internal/models"
	"studydash/internal/storage"
)

func newTestManager(t *testing.T) (*Manager, *storage.SQLiteStorage) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewSQLiteStorage(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Seed())
	return NewManager(filepath.Join(dir, "materials"), store), store
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("inhalt"), 0644))
}

func TestSaveUploadPlacesFile(t *testing.T) {
	m, store := newTestManager(t)

	material, err := m.SaveUpload("nlp", "Slides", "lecture_slides", "week1.pdf", strings.NewReader("pdf-daten"))
	require.NoError(t, err)

	assert.Equal(t, "nlp", material.CourseID)
	assert.Equal(t, 10, material.XP)
	assert.Equal(t, "week1.pdf", material.FileName)
	assert.Equal(t, "nlp/"+material.ID+"_week1.pdf", material.FilePath)

	_, err = os.Stat(filepath.Join(m.Dir(), "nlp", material.ID+"_week1.pdf"))
	require.NoError(t, err)

	stored, err := store.GetMaterial(material.ID)
	require.NoError(t, err)
	assert.Equal(t, material.FilePath, stored.FilePath)
}

func TestScanRegistersNewFiles(t *testing.T) {
	m, store := newTestManager(t)
	writeFile(t, filepath.Join(m.Dir(), "nlp", "Lecture 1 Intro.pdf"))
	writeFile(t, filepath.Join(m.Dir(), "nlp", "lab01.ipynb"))
	writeFile(t, filepath.Join(m.Dir(), "cvpr", "notes.txt"))

	added, err := m.Scan()
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	byName := map[string]models.Material{}
	all, err := store.GetAllMaterials()
	require.NoError(t, err)
	for _, mat := range all {
		byName[mat.FileName] = mat
	}

	assert.Equal(t, "lecture_slides", byName["Lecture 1 Intro.pdf"].Type)
	assert.Equal(t, "lab_exercise", byName["lab01.ipynb"].Type)
	assert.Equal(t, "note", byName["notes.txt"].Type)
	assert.Equal(t, 0, byName["Lecture 1 Intro.pdf"].Week, "Scan legt alles in Woche 0 ab")
}

func TestScanIsIdempotent(t *testing.T) {
	m, _ := newTestManager(t)
	writeFile(t, filepath.Join(m.Dir(), "nlp", "Lecture 1 Intro.pdf"))

	added, err := m.Scan()
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	added, err = m.Scan()
	require.NoError(t, err)
	assert.Equal(t, 0, added, "zweiter Lauf findet nichts Neues")
}

func TestScanSkipsHiddenFilesAndDirs(t *testing.T) {
	m, _ := newTestManager(t)
	writeFile(t, filepath.Join(m.Dir(), "nlp", ".DS_Store"))
	writeFile(t, filepath.Join(m.Dir(), "nlp", ".versteckt", "datei.pdf"))
	writeFile(t, filepath.Join(m.Dir(), "nlp", "sichtbar.pdf"))

	added, err := m.Scan()
	require.NoError(t, err)
	assert.Equal(t, 1, added)
}

func TestScanIgnoresUnknownCourseDirs(t *testing.T) {
	m, _ := newTestManager(t)
	writeFile(t, filepath.Join(m.Dir(), "unbekannt", "datei.pdf"))

	added, err := m.Scan()
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}

func TestScanUnknownExtensionFallsBackToOther(t *testing.T) {
	m, store := newTestManager(t)
	writeFile(t, filepath.Join(m.Dir(), "nlp", "daten.xyz"))

	added, err := m.Scan()
	require.NoError(t, err)
	require.Equal(t, 1, added)

	all, err := store.GetAllMaterials()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "other", all[0].Type)
	assert.Equal(t, 10, all[0].XP)
}

func TestAutoMapWeeks(t *testing.T) {
	m, store := newTestManager(t)
	writeFile(t, filepath.Join(m.Dir(), "nlp", "Lecture 3 SLM.pdf"))
	writeFile(t, filepath.Join(m.Dir(), "nlp", "Lecture 13 Review.pdf"))
	writeFile(t, filepath.Join(m.Dir(), "nlp", "sonstiges.pdf"))

	_, err := m.Scan()
	require.NoError(t, err)

	mapped, err := m.AutoMapWeeks()
	require.NoError(t, err)
	assert.Equal(t, 2, mapped)

	all, err := store.GetAllMaterials()
	require.NoError(t, err)
	byName := map[string]models.Material{}
	for _, mat := range all {
		byName[mat.FileName] = mat
	}

	assert.Equal(t, 3, byName["Lecture 3 SLM.pdf"].Week)
	assert.Equal(t, 13, byName["Lecture 13 Review.pdf"].Week, "zweistellige Muster gewinnen")
	assert.Equal(t, 0, byName["sonstiges.pdf"].Week, "ohne Treffer bleibt Woche 0")
}

func TestAutoMapLeavesAssignedWeeksAlone(t *testing.T) {
	m, store := newTestManager(t)
	require.NoError(t, store.SaveMaterial(&models.Material{
		ID:       "m1",
		CourseID: "nlp",
		Week:     5,
		Title:    "Lecture 3 SLM.pdf",
		FileName: "Lecture 3 SLM.pdf",
		Type:     "lecture_slides",
		XP:       10,
	}))

	mapped, err := m.AutoMapWeeks()
	require.NoError(t, err)
	assert.Equal(t, 0, mapped)

	mat, err := store.GetMaterial("m1")
	require.NoError(t, err)
	assert.Equal(t, 5, mat.Week)
}

func TestResolveFileRejectsTraversal(t *testing.T) {
	m, _ := newTestManager(t)
	writeFile(t, filepath.Join(m.Dir(), "nlp", "ok.pdf"))

	full, err := m.ResolveFile("nlp/ok.pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(full, filepath.Join("nlp", "ok.pdf")))

	_, err = m.ResolveFile("../geheim.txt")
	assert.Error(t, err)

	_, err = m.ResolveFile("nlp/../../geheim.txt")
	assert.Error(t, err)

	_, err = m.ResolveFile("nlp/fehlt.pdf")
	assert.Error(t, err)
}
