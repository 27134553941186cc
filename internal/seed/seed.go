package seed

import "studydash/internal/models"

// XPValues legt fest, wie viele XP ein Material je nach Typ einbringt.
// Der Wert wird beim Anlegen eines Materials eingefroren; spätere Änderungen
// an dieser Tabelle wirken nicht rückwirkend.
var XPValues = map[string]int{
	"lecture_slides":      10,
	"textbook_chapter":    20,
	"video":               15,
	"lab_exercise":        25,
	"quiz_prep":           20,
	"paper":               15,
	"note":                5,
	"other":               10,
	"week_complete_bonus": 10,
}

// WeekCompleteBonus sind die Bonus-XP, wenn alle Materialien einer
// (Kurs, Woche)-Gruppe abgeschlossen sind.
const WeekCompleteBonus = 10

// DefaultXP gilt für unbekannte Materialtypen
const DefaultXP = 10

// XPForType liefert den XP-Wert für einen Materialtyp
func XPForType(materialType string) int {
	if xp, ok := XPValues[materialType]; ok {
		return xp
	}
	return DefaultXP
}

// Levels sind die Stufen aufsteigend nach XP-Schwelle.
// Stufe 1 beginnt bei 0 XP, damit GetLevel immer ein Ergebnis hat.
var Levels = []models.Level{
	{Level: 1, Name: "Beginner", XPRequired: 0},
	{Level: 2, Name: "Learner", XPRequired: 50},
	{Level: 3, Name: "Student", XPRequired: 150},
	{Level: 4, Name: "Scholar", XPRequired: 300},
	{Level: 5, Name: "Expert", XPRequired: 500},
	{Level: 6, Name: "Master", XPRequired: 750},
	{Level: 7, Name: "Grandmaster", XPRequired: 1000},
}

// TaskCategories sind die Kategorien für Lernaufgaben samt Anzeigefarbe
var TaskCategories = map[string]models.TaskCategory{
	"attend":     {Label: "Attend Class", Color: "#6366f1"},
	"catch-up":   {Label: "Catch Up", Color: "#f43f5e"},
	"review":     {Label: "Review", Color: "#38bdf8"},
	"reading":    {Label: "Reading", Color: "#a855f7"},
	"lab":        {Label: "Lab Work", Color: "#10b981"},
	"quiz-prep":  {Label: "Quiz Prep", Color: "#f59e0b"},
	"exam-prep":  {Label: "Exam Prep", Color: "#ef4444"},
	"project":    {Label: "Project", Color: "#8b5cf6"},
	"assignment": {Label: "Assignment", Color: "#14b8a6"},
	"admin":      {Label: "Admin", Color: "#6b7280"},
	"deadline":   {Label: "Deadline", Color: "#f43f5e"},
}
