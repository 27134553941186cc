package storage

import (
	"log"

	"studydash/internal/seed"
)

// Seed befüllt eine leere Datenbank mit den Stammdaten des Semesters.
// Existieren bereits Kurse, passiert nichts.
func (s *SQLiteStorage) Seed() error {
	n, err := s.countCourses()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("📚 Leere Datenbank, Stammdaten werden eingespielt...")

	for _, course := range seed.Courses() {
		c := course
		if err := s.saveCourse(&c); err != nil {
			return err
		}
	}
	for _, d := range seed.Deadlines() {
		dl := d
		if err := s.saveDeadline(&dl); err != nil {
			return err
		}
	}
	for _, t := range seed.StudyTasks() {
		task := t
		if err := s.SaveStudyTask(&task); err != nil {
			return err
		}
	}
	if err := s.insertStats(0); err != nil {
		return err
	}

	log.Println("✓ Stammdaten eingespielt")
	return nil
}
