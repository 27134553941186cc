// Package materials verwaltet die Material-Dateien auf der Festplatte:
// Ablage von Uploads, Verzeichnis-Scan und automatische Wochenzuordnung.
package materials

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"studydash/internal/models"
	"studydash/internal/seed"
	"studydash/internal/storage"
)

// Manager kapselt alle Dateioperationen unterhalb des Materials-Verzeichnisses.
type Manager struct {
	dir   string
	store storage.Storage
}

// NewManager erstellt einen Manager für das gegebene Basisverzeichnis.
func NewManager(dir string, store storage.Storage) *Manager {
	return &Manager{dir: dir, store: store}
}

// Dir liefert das Basisverzeichnis für Materialdateien.
func (m *Manager) Dir() string {
	return m.dir
}

// SaveUpload speichert eine hochgeladene Datei unter
// <dir>/<courseID>/<materialID>_<dateiname> und legt das Material in der
// Datenbank an. Der XP-Wert wird beim Anlegen aus dem Typ eingefroren.
func (m *Manager) SaveUpload(courseID, title, materialType, filename string, src io.Reader) (*models.Material, error) {
	id := uuid.New().String()

	courseDir := filepath.Join(m.dir, courseID)
	if err := os.MkdirAll(courseDir, 0755); err != nil {
		return nil, err
	}

	filename = filepath.Base(filename)
	dst := filepath.Join(courseDir, id+"_"+filename)
	out, err := os.Create(dst)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return nil, err
	}
	if err := out.Close(); err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(m.dir, dst)
	if err != nil {
		return nil, err
	}

	if title == "" {
		title = filename
	}
	material := &models.Material{
		ID:        id,
		CourseID:  courseID,
		Week:      0,
		Title:     title,
		Type:      materialType,
		XP:        seed.XPForType(materialType),
		FilePath:  filepath.ToSlash(rel),
		FileName:  filename,
		Completed: false,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := m.store.SaveMaterial(material); err != nil {
		os.Remove(dst)
		return nil, err
	}
	return material, nil
}

// RemoveFile löscht die zum Material gehörende Datei, falls vorhanden.
func (m *Manager) RemoveFile(material *models.Material) {
	if material.FilePath == "" {
		return
	}
	path := filepath.Join(m.dir, filepath.FromSlash(material.FilePath))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️ Datei konnte nicht gelöscht werden: %v", err)
	}
}

// ResolveFile prüft einen angefragten relativen Pfad gegen das
// Basisverzeichnis und liefert den absoluten Pfad. Pfade außerhalb des
// Verzeichnisses werden abgelehnt.
func (m *Manager) ResolveFile(relPath string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("unzulässiger Pfad: %s", relPath)
	}
	full := filepath.Join(m.dir, cleaned)

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("Datei nicht gefunden: %s", relPath)
	}
	return full, nil
}

// Scan durchsucht die Kursverzeichnisse nach neuen Dateien und legt fehlende
// Materialien an. Bereits registrierte Pfade und Dateinamen werden
// übersprungen, versteckte Dateien und Verzeichnisse ignoriert.
// Liefert die Anzahl neu angelegter Materialien.
func (m *Manager) Scan() (int, error) {
	courses, err := m.store.GetAllCourses()
	if err != nil {
		return 0, err
	}
	courseIDs := make(map[string]bool, len(courses))
	for _, c := range courses {
		courseIDs[c.ID] = true
	}

	existing, err := m.store.GetAllMaterials()
	if err != nil {
		return 0, err
	}
	knownPaths := make(map[string]bool, len(existing))
	knownNames := make(map[string]bool, len(existing))
	for _, mat := range existing {
		if mat.FilePath != "" {
			knownPaths[mat.FilePath] = true
		}
		if mat.FileName != "" {
			knownNames[mat.FileName] = true
		}
	}

	added := 0
	for courseID := range courseIDs {
		courseDir := filepath.Join(m.dir, courseID)
		if _, err := os.Stat(courseDir); os.IsNotExist(err) {
			continue
		}

		err := filepath.WalkDir(courseDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}

			rel, err := filepath.Rel(m.dir, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			if knownPaths[rel] || knownNames[name] {
				return nil
			}

			materialType := seed.TypeByExtension[strings.ToLower(filepath.Ext(name))]
			if materialType == "" {
				materialType = "other"
			}

			material := &models.Material{
				ID:        uuid.New().String(),
				CourseID:  courseID,
				Week:      0,
				Title:     name,
				Type:      materialType,
				XP:        seed.XPForType(materialType),
				FilePath:  rel,
				FileName:  name,
				Completed: false,
				CreatedAt: time.Now().UTC().Format(time.RFC3339),
			}
			if err := m.store.SaveMaterial(material); err != nil {
				return err
			}
			knownPaths[rel] = true
			knownNames[name] = true
			added++
			return nil
		})
		if err != nil {
			return added, err
		}
	}

	if added > 0 {
		log.Printf("📂 Scan: %d neue Materialien gefunden", added)
	}
	return added, nil
}

// AutoMapWeeks ordnet Materialien mit Woche 0 anhand der Mustertabellen
// einer Woche zu. Die erste passende Regel gewinnt; Materialien ohne Treffer
// bleiben unverändert. Liefert die Anzahl zugeordneter Materialien.
func (m *Manager) AutoMapWeeks() (int, error) {
	all, err := m.store.GetAllMaterials()
	if err != nil {
		return 0, err
	}

	mapped := 0
	for _, mat := range all {
		if mat.Week != 0 {
			continue
		}
		rules, ok := seed.WeekPatterns[mat.CourseID]
		if !ok {
			continue
		}

		haystack := strings.ToLower(mat.FileName)
		if haystack == "" {
			haystack = strings.ToLower(mat.Title)
		}

		for _, rule := range rules {
			if strings.Contains(haystack, rule.Pattern) {
				if err := m.store.SetMaterialWeek(mat.ID, rule.Week); err != nil {
					return mapped, err
				}
				mapped++
				break
			}
		}
	}

	if mapped > 0 {
		log.Printf("🗂 Auto-Mapping: %d Materialien zugeordnet", mapped)
	}
	return mapped, nil
}
