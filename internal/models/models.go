package models

// Course repräsentiert einen Universitätskurs mit Stundenplan und Bewertungsschema
type Course struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Code       string     `json:"code"`
	Instructor string     `json:"instructor"`
	TA         string     `json:"ta"`
	Schedule   string     `json:"schedule"`
	Venue      string     `json:"venue"`
	Color      string     `json:"color"`
	Assessment Assessment `json:"assessment"`
	Weeks      []Week     `json:"weeks,omitempty"`
}

// Assessment beschreibt das Bewertungsschema eines Kurses
type Assessment struct {
	Continuous *AssessmentPart `json:"continuous,omitempty"`
	Exam       *AssessmentPart `json:"exam,omitempty"`
}

// AssessmentPart ist ein gewichteter Bewertungsteil (laufende Bewertung oder Klausur)
type AssessmentPart struct {
	Weight     int                   `json:"weight"`
	Components []AssessmentComponent `json:"components,omitempty"`
	Note       string                `json:"note,omitempty"`
}

// AssessmentComponent ist eine einzelne Bewertungskomponente.
// Das Gewicht ist freier Text, da Kurse Angaben wie "TBD (part of 50%)" verwenden.
type AssessmentComponent struct {
	Name   string `json:"name"`
	Weight any    `json:"weight"`
}

// Week repräsentiert eine Vorlesungswoche innerhalb eines Kurses.
// Wochennummern sind pro Kurs eindeutig, nicht global.
type Week struct {
	Week     int    `json:"week"`
	Date     string `json:"date"`
	Topic    string `json:"topic"`
	Details  string `json:"details"`
	HasLab   bool   `json:"has_lab"`
	LabName  string `json:"lab_name,omitempty"`
	HasQuiz  bool   `json:"has_quiz"`
	QuizName string `json:"quiz_name,omitempty"`
	Status   string `json:"status"` // missed, upcoming, past, holiday
}

// Deadline repräsentiert eine datierte Abgabe oder Prüfung.
// Urgency wird nie gespeichert, sondern beim Lesen berechnet.
type Deadline struct {
	ID       string `json:"id"`
	CourseID string `json:"course_id"`
	Title    string `json:"title"`
	Date     string `json:"date"` // YYYY-MM-DD
	Weight   string `json:"weight"`
	Type     string `json:"type"` // quiz, lab, project, exam, talk, admin
	Done     bool   `json:"done"`
	Urgency  string `json:"urgency,omitempty"` // overdue, today, this_week, next_week, future
}

// StudyTask repräsentiert eine selbst geplante Lernaufgabe
type StudyTask struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"` // YYYY-MM-DD
	CourseID string  `json:"course_id"`
	Title    string  `json:"title"`
	Hours    float64 `json:"hours"`
	Category string  `json:"category"`
	Done     bool    `json:"done"`
}

// TaskCategory beschreibt eine Aufgabenkategorie fürs Frontend
type TaskCategory struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Material repräsentiert eine Lernressource (Datei oder Link) eines Kurses.
// Der XP-Wert wird beim Anlegen aus dem Typ abgeleitet und danach nicht mehr verändert.
type Material struct {
	ID        string `json:"id"`
	CourseID  string `json:"course_id"`
	Week      int    `json:"week"` // 0 = noch keiner Woche zugeordnet
	Title     string `json:"title"`
	Type      string `json:"type"`
	XP        int    `json:"xp"`
	FilePath  string `json:"file_path,omitempty"`
	FileName  string `json:"file_name,omitempty"`
	URL       string `json:"url,omitempty"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
}

// ChatEntry repräsentiert einen Eintrag im Chat-Verlauf (append-only)
type ChatEntry struct {
	ID          string `json:"id"`
	CourseID    string `json:"course_id"`
	UserMessage string `json:"user_message"`
	AIReply     string `json:"ai_reply"`
	Timestamp   string `json:"timestamp"`
}

// Level ist eine benannte Stufe mit XP-Schwelle
type Level struct {
	Level      int    `json:"level"`
	Name       string `json:"name"`
	XPRequired int    `json:"xp_required"`
}

// LevelProgress beschreibt die aktuelle Stufe relativ zum XP-Stand
type LevelProgress struct {
	Current  Level  `json:"current"`
	Next     *Level `json:"next"` // nil auf der höchsten Stufe
	XP       int    `json:"xp"`
	XPToNext int    `json:"xp_to_next"` // 0 auf der höchsten Stufe
}

// CourseSummary ist ein Kurs mit berechneten Zählern für die Übersicht
type CourseSummary struct {
	Course
	TotalMaterials     int `json:"total_materials"`
	CompletedMaterials int `json:"completed_materials"`
	TotalWeeks         int `json:"total_weeks"` // ohne Feiertagswochen
}

// CourseDetail ist ein Kurs mit eingebetteten Materialien
type CourseDetail struct {
	Course
	Materials      []Material `json:"materials"`
	TotalMaterials int        `json:"total_materials"`
	CompletedCount int        `json:"completed_count"`
}

// CourseProgress ist der Fortschritt eines einzelnen Kurses in der Statistik
type CourseProgress struct {
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Progress  int    `json:"progress"` // gerundete Prozent, 0 bei leerem Kurs
}

// Stats ist der aggregierte Statistik-Schnappschuss
type Stats struct {
	XP                 int                       `json:"xp"`
	Level              LevelProgress             `json:"level"`
	TotalMaterials     int                       `json:"total_materials"`
	CompletedMaterials int                       `json:"completed_materials"`
	MaterialProgress   int                       `json:"material_progress"`
	TotalDeadlines     int                       `json:"total_deadlines"`
	CompletedDeadlines int                       `json:"completed_deadlines"`
	PerCourse          map[string]CourseProgress `json:"per_course"`
	XPValues           map[string]int            `json:"xp_values"`
	Levels             []Level                   `json:"levels"`
}
