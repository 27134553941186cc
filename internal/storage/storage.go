package storage

import (
	"database/sql"
	"encoding/json"

	"studydash/internal/models"
	"studydash/internal/seed"

	_ "modernc.org/sqlite"
)

// Storage definiert das Interface für Datenpersistenz
type Storage interface {
	// Kurse
	GetAllCourses() ([]models.Course, error)
	GetCourse(id string) (*models.Course, error)

	// Deadlines
	GetAllDeadlines() ([]models.Deadline, error)
	GetDeadline(id string) (*models.Deadline, error)
	SetDeadlineDone(id string, done bool) error

	// Lernaufgaben
	GetAllStudyTasks() ([]models.StudyTask, error)
	GetStudyTask(id string) (*models.StudyTask, error)
	SaveStudyTask(task *models.StudyTask) error
	DeleteStudyTask(id string) error

	// Materialien
	GetAllMaterials() ([]models.Material, error)
	GetMaterialsByCourse(courseID string) ([]models.Material, error)
	GetMaterial(id string) (*models.Material, error)
	SaveMaterial(m *models.Material) error
	SetMaterialWeek(id string, week int) error

	// ToggleMaterial kippt das Completed-Flag in einer Transaktion und
	// verrechnet die XP genau einmal pro Übergang (inkl. Wochenbonus).
	ToggleMaterial(id string) (completed bool, xp int, err error)

	// DeleteMaterial entfernt die Zeile und verrechnet die XP, falls das
	// Material abgeschlossen war. Liefert das gelöschte Material zurück,
	// damit der Aufrufer die Datei entfernen kann.
	DeleteMaterial(id string) (*models.Material, error)

	// Chat
	SaveChatEntry(entry *models.ChatEntry) error
	GetChatHistory() ([]models.ChatEntry, error)

	// Statistik (Singleton-Zeile id=1)
	GetXP() (int, error)
	SetXP(xp int) error

	Close() error
}

// SQLiteStorage implementiert Storage mit SQLite
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage erstellt eine neue SQLite-Storage-Instanz
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	storage := &SQLiteStorage{db: db}
	if err := storage.initSchema(); err != nil {
		return nil, err
	}

	return storage, nil
}

func (s *SQLiteStorage) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS courses (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		code TEXT NOT NULL,
		instructor TEXT,
		ta TEXT,
		schedule TEXT,
		venue TEXT,
		color TEXT,
		assessment_json TEXT
	);

	CREATE TABLE IF NOT EXISTS weeks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		course_id TEXT NOT NULL,
		week_num INTEGER NOT NULL,
		date TEXT,
		topic TEXT,
		details TEXT,
		has_lab INTEGER DEFAULT 0,
		lab_name TEXT,
		has_quiz INTEGER DEFAULT 0,
		quiz_name TEXT,
		status TEXT,
		FOREIGN KEY (course_id) REFERENCES courses(id)
	);

	CREATE TABLE IF NOT EXISTS deadlines (
		id TEXT PRIMARY KEY,
		course_id TEXT NOT NULL,
		title TEXT NOT NULL,
		date TEXT NOT NULL,
		weight TEXT,
		type TEXT,
		done INTEGER DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS study_tasks (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		course_id TEXT,
		title TEXT NOT NULL,
		hours REAL DEFAULT 1,
		category TEXT,
		done INTEGER DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS materials (
		id TEXT PRIMARY KEY,
		course_id TEXT NOT NULL,
		week INTEGER DEFAULT 0,
		title TEXT,
		type TEXT,
		xp INTEGER DEFAULT 10,
		file_path TEXT,
		file_name TEXT,
		url TEXT,
		completed INTEGER DEFAULT 0,
		created_at TEXT
	);

	CREATE TABLE IF NOT EXISTS chat_history (
		id TEXT PRIMARY KEY,
		course_id TEXT,
		user_message TEXT,
		ai_reply TEXT,
		timestamp TEXT
	);

	CREATE TABLE IF NOT EXISTS user_stats (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		xp INTEGER DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_weeks_course ON weeks(course_id);
	CREATE INDEX IF NOT EXISTS idx_deadlines_date ON deadlines(date);
	CREATE INDEX IF NOT EXISTS idx_materials_course ON materials(course_id);
	CREATE INDEX IF NOT EXISTS idx_tasks_date ON study_tasks(date);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Kurse

func (s *SQLiteStorage) saveCourse(course *models.Course) error {
	assessment, _ := json.Marshal(course.Assessment)
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO courses (id, name, code, instructor, ta, schedule, venue, color, assessment_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, course.ID, course.Name, course.Code, course.Instructor, course.TA, course.Schedule, course.Venue, course.Color, string(assessment))
	if err != nil {
		return err
	}

	for _, w := range course.Weeks {
		if _, err := s.db.Exec(`
			INSERT INTO weeks (course_id, week_num, date, topic, details, has_lab, lab_name, has_quiz, quiz_name, status)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, course.ID, w.Week, w.Date, w.Topic, w.Details, w.HasLab, w.LabName, w.HasQuiz, w.QuizName, w.Status); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStorage) GetAllCourses() ([]models.Course, error) {
	rows, err := s.db.Query(`SELECT id, name, code, instructor, ta, schedule, venue, color, assessment_json FROM courses`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		var assessment string
		if err := rows.Scan(&course.ID, &course.Name, &course.Code, &course.Instructor, &course.TA, &course.Schedule, &course.Venue, &course.Color, &assessment); err != nil {
			return nil, err
		}
		json.Unmarshal([]byte(assessment), &course.Assessment)
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range courses {
		weeks, err := s.getWeeksByCourse(courses[i].ID)
		if err != nil {
			return nil, err
		}
		courses[i].Weeks = weeks
	}
	return courses, nil
}

func (s *SQLiteStorage) GetCourse(id string) (*models.Course, error) {
	var course models.Course
	var assessment string
	err := s.db.QueryRow(`
		SELECT id, name, code, instructor, ta, schedule, venue, color, assessment_json
		FROM courses WHERE id = ?
	`, id).Scan(&course.ID, &course.Name, &course.Code, &course.Instructor, &course.TA, &course.Schedule, &course.Venue, &course.Color, &assessment)
	if err != nil {
		return nil, err
	}
	json.Unmarshal([]byte(assessment), &course.Assessment)

	course.Weeks, err = s.getWeeksByCourse(course.ID)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *SQLiteStorage) getWeeksByCourse(courseID string) ([]models.Week, error) {
	rows, err := s.db.Query(`
		SELECT week_num, date, topic, details, has_lab, lab_name, has_quiz, quiz_name, status
		FROM weeks WHERE course_id = ? ORDER BY week_num
	`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var weeks []models.Week
	for rows.Next() {
		var w models.Week
		var labName, quizName sql.NullString
		if err := rows.Scan(&w.Week, &w.Date, &w.Topic, &w.Details, &w.HasLab, &labName, &w.HasQuiz, &quizName, &w.Status); err != nil {
			return nil, err
		}
		w.LabName = labName.String
		w.QuizName = quizName.String
		weeks = append(weeks, w)
	}
	return weeks, rows.Err()
}

// Deadlines

func (s *SQLiteStorage) saveDeadline(d *models.Deadline) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO deadlines (id, course_id, title, date, weight, type, done)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, d.ID, d.CourseID, d.Title, d.Date, d.Weight, d.Type, d.Done)
	return err
}

func (s *SQLiteStorage) GetAllDeadlines() ([]models.Deadline, error) {
	rows, err := s.db.Query(`
		SELECT id, course_id, title, date, weight, type, done
		FROM deadlines ORDER BY date
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deadlines []models.Deadline
	for rows.Next() {
		var d models.Deadline
		if err := rows.Scan(&d.ID, &d.CourseID, &d.Title, &d.Date, &d.Weight, &d.Type, &d.Done); err != nil {
			return nil, err
		}
		deadlines = append(deadlines, d)
	}
	return deadlines, rows.Err()
}

func (s *SQLiteStorage) GetDeadline(id string) (*models.Deadline, error) {
	var d models.Deadline
	err := s.db.QueryRow(`
		SELECT id, course_id, title, date, weight, type, done
		FROM deadlines WHERE id = ?
	`, id).Scan(&d.ID, &d.CourseID, &d.Title, &d.Date, &d.Weight, &d.Type, &d.Done)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *SQLiteStorage) SetDeadlineDone(id string, done bool) error {
	res, err := s.db.Exec(`UPDATE deadlines SET done = ? WHERE id = ?`, done, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Lernaufgaben

func (s *SQLiteStorage) GetAllStudyTasks() ([]models.StudyTask, error) {
	rows, err := s.db.Query(`
		SELECT id, date, course_id, title, hours, category, done
		FROM study_tasks ORDER BY date, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.StudyTask
	for rows.Next() {
		var t models.StudyTask
		if err := rows.Scan(&t.ID, &t.Date, &t.CourseID, &t.Title, &t.Hours, &t.Category, &t.Done); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *SQLiteStorage) GetStudyTask(id string) (*models.StudyTask, error) {
	var t models.StudyTask
	err := s.db.QueryRow(`
		SELECT id, date, course_id, title, hours, category, done
		FROM study_tasks WHERE id = ?
	`, id).Scan(&t.ID, &t.Date, &t.CourseID, &t.Title, &t.Hours, &t.Category, &t.Done)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *SQLiteStorage) SaveStudyTask(task *models.StudyTask) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO study_tasks (id, date, course_id, title, hours, category, done)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, task.ID, task.Date, task.CourseID, task.Title, task.Hours, task.Category, task.Done)
	return err
}

func (s *SQLiteStorage) DeleteStudyTask(id string) error {
	_, err := s.db.Exec(`DELETE FROM study_tasks WHERE id = ?`, id)
	return err
}

// Materialien

func (s *SQLiteStorage) GetAllMaterials() ([]models.Material, error) {
	return s.queryMaterials(`SELECT id, course_id, week, title, type, xp, file_path, file_name, url, completed, created_at FROM materials ORDER BY created_at`)
}

func (s *SQLiteStorage) GetMaterialsByCourse(courseID string) ([]models.Material, error) {
	return s.queryMaterials(`SELECT id, course_id, week, title, type, xp, file_path, file_name, url, completed, created_at FROM materials WHERE course_id = ? ORDER BY week, created_at`, courseID)
}

func (s *SQLiteStorage) queryMaterials(query string, args ...any) ([]models.Material, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []models.Material
	for rows.Next() {
		m, err := scanMaterial(rows.Scan)
		if err != nil {
			return nil, err
		}
		materials = append(materials, *m)
	}
	return materials, rows.Err()
}

func scanMaterial(scan func(...any) error) (*models.Material, error) {
	var m models.Material
	var filePath, fileName, url sql.NullString
	if err := scan(&m.ID, &m.CourseID, &m.Week, &m.Title, &m.Type, &m.XP, &filePath, &fileName, &url, &m.Completed, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.FilePath = filePath.String
	m.FileName = fileName.String
	m.URL = url.String
	return &m, nil
}

func (s *SQLiteStorage) GetMaterial(id string) (*models.Material, error) {
	row := s.db.QueryRow(`
		SELECT id, course_id, week, title, type, xp, file_path, file_name, url, completed, created_at
		FROM materials WHERE id = ?
	`, id)
	return scanMaterial(row.Scan)
}

func (s *SQLiteStorage) SaveMaterial(m *models.Material) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO materials (id, course_id, week, title, type, xp, file_path, file_name, url, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.CourseID, m.Week, m.Title, m.Type, m.XP, m.FilePath, m.FileName, m.URL, m.Completed, m.CreatedAt)
	return err
}

func (s *SQLiteStorage) SetMaterialWeek(id string, week int) error {
	res, err := s.db.Exec(`UPDATE materials SET week = ? WHERE id = ?`, week, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ToggleMaterial kippt das Completed-Flag und verrechnet die XP in einer
// Transaktion. Beim Abschließen gibt es Bonus-XP, wenn damit alle Materialien
// der (Kurs, Woche)-Gruppe abgeschlossen sind. Beim Zurücknehmen wird der
// Bonus bewusst NICHT abgezogen (siehe DESIGN.md).
func (s *SQLiteStorage) ToggleMaterial(id string) (bool, int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, 0, err
	}
	defer tx.Rollback()

	var courseID string
	var week, materialXP int
	var completed bool
	err = tx.QueryRow(`SELECT course_id, week, xp, completed FROM materials WHERE id = ?`, id).
		Scan(&courseID, &week, &materialXP, &completed)
	if err != nil {
		return false, 0, err
	}

	var xp int
	if err := tx.QueryRow(`SELECT xp FROM user_stats WHERE id = 1`).Scan(&xp); err != nil {
		return false, 0, err
	}

	completed = !completed
	if _, err := tx.Exec(`UPDATE materials SET completed = ? WHERE id = ?`, completed, id); err != nil {
		return false, 0, err
	}

	if completed {
		xp += materialXP

		// Wochenbonus: Gruppe (Kurs, Woche) jetzt vollständig?
		var remaining int
		err = tx.QueryRow(`
			SELECT COUNT(*) FROM materials
			WHERE course_id = ? AND week = ? AND completed = 0
		`, courseID, week).Scan(&remaining)
		if err != nil {
			return false, 0, err
		}
		if remaining == 0 {
			xp += seed.WeekCompleteBonus
		}
	} else {
		xp -= materialXP
		if xp < 0 {
			xp = 0
		}
	}

	if _, err := tx.Exec(`UPDATE user_stats SET xp = ? WHERE id = 1`, xp); err != nil {
		return false, 0, err
	}
	if err := tx.Commit(); err != nil {
		return false, 0, err
	}
	return completed, xp, nil
}

// DeleteMaterial entfernt die Zeile und zieht bei abgeschlossenen Materialien
// die XP wieder ab (Untergrenze 0).
func (s *SQLiteStorage) DeleteMaterial(id string) (*models.Material, error) {
	m, err := s.GetMaterial(id)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if m.Completed {
		var xp int
		if err := tx.QueryRow(`SELECT xp FROM user_stats WHERE id = 1`).Scan(&xp); err != nil {
			return nil, err
		}
		xp -= m.XP
		if xp < 0 {
			xp = 0
		}
		if _, err := tx.Exec(`UPDATE user_stats SET xp = ? WHERE id = 1`, xp); err != nil {
			return nil, err
		}
	}

	if _, err := tx.Exec(`DELETE FROM materials WHERE id = ?`, id); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return m, nil
}

// Chat

func (s *SQLiteStorage) SaveChatEntry(entry *models.ChatEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO chat_history (id, course_id, user_message, ai_reply, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, entry.ID, entry.CourseID, entry.UserMessage, entry.AIReply, entry.Timestamp)
	return err
}

func (s *SQLiteStorage) GetChatHistory() ([]models.ChatEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, course_id, user_message, ai_reply, timestamp
		FROM chat_history ORDER BY timestamp
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ChatEntry
	for rows.Next() {
		var e models.ChatEntry
		if err := rows.Scan(&e.ID, &e.CourseID, &e.UserMessage, &e.AIReply, &e.Timestamp); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Statistik

func (s *SQLiteStorage) GetXP() (int, error) {
	var xp int
	err := s.db.QueryRow(`SELECT xp FROM user_stats WHERE id = 1`).Scan(&xp)
	if err != nil {
		return 0, err
	}
	return xp, nil
}

func (s *SQLiteStorage) SetXP(xp int) error {
	if xp < 0 {
		xp = 0
	}
	_, err := s.db.Exec(`UPDATE user_stats SET xp = ? WHERE id = 1`, xp)
	return err
}

func (s *SQLiteStorage) countCourses() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM courses`).Scan(&n)
	return n, err
}

func (s *SQLiteStorage) insertStats(xp int) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO user_stats (id, xp) VALUES (1, ?)`, xp)
	return err
}
