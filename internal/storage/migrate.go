package storage

import (
	"encoding/json"
	"log"
	"os"

	"studydash/internal/models"
	"studydash/internal/seed"
)

// legacyProgress ist das Format der alten progress.json-Datei.
type legacyProgress struct {
	Courses            []models.Course    `json:"courses"`
	Deadlines          []models.Deadline  `json:"deadlines"`
	StudyTasks         []models.StudyTask `json:"study_tasks"`
	Materials          []models.Material  `json:"materials"`
	CompletedMaterials []string           `json:"completed_materials"`
	ChatHistory        []models.ChatEntry `json:"chat_history"`
	XP                 int                `json:"xp"`
}

// MigrateFromJSON übernimmt eine vorhandene progress.json einmalig in die
// Datenbank und benennt die Datei danach in progress.json.bak um. Existieren
// bereits Kurse oder fehlt die Datei, passiert nichts.
func (s *SQLiteStorage) MigrateFromJSON(jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	n, err := s.countCourses()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("📦 Alte progress.json gefunden, Migration läuft...")

	var data legacyProgress
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}

	for i := range data.Courses {
		if err := s.saveCourse(&data.Courses[i]); err != nil {
			return err
		}
	}
	for i := range data.Deadlines {
		data.Deadlines[i].Urgency = ""
		if err := s.saveDeadline(&data.Deadlines[i]); err != nil {
			return err
		}
	}
	for i := range data.StudyTasks {
		if err := s.SaveStudyTask(&data.StudyTasks[i]); err != nil {
			return err
		}
	}

	completed := make(map[string]bool, len(data.CompletedMaterials))
	for _, id := range data.CompletedMaterials {
		completed[id] = true
	}
	for i := range data.Materials {
		m := data.Materials[i]
		if m.XP == 0 {
			m.XP = seed.DefaultXP
		}
		m.Completed = completed[m.ID]
		if err := s.SaveMaterial(&m); err != nil {
			return err
		}
	}

	for i := range data.ChatHistory {
		if err := s.SaveChatEntry(&data.ChatHistory[i]); err != nil {
			return err
		}
	}

	if err := s.insertStats(data.XP); err != nil {
		return err
	}

	if err := os.Rename(jsonPath, jsonPath+".bak"); err != nil {
		return err
	}

	log.Printf("✓ Migration abgeschlossen (%d Kurse, %d Materialien)", len(data.Courses), len(data.Materials))
	return nil
}
