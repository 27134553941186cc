package seed

// TypeByExtension ordnet Dateiendungen einem Materialtyp zu.
// Unbekannte Endungen fallen auf "other" zurück.
var TypeByExtension = map[string]string{
	".pdf":   "lecture_slides",
	".ppt":   "lecture_slides",
	".pptx":  "lecture_slides",
	".doc":   "note",
	".docx":  "note",
	".txt":   "note",
	".md":    "note",
	".ipynb": "lab_exercise",
	".py":    "lab_exercise",
	".zip":   "lab_exercise",
	".mp4":   "video",
	".mp3":   "video",
	".csv":   "other",
	".json":  "other",
	".png":   "other",
	".jpg":   "other",
	".jpeg":  "other",
}

// WeekRule ordnet einem Dateinamens-Muster eine Wochennummer zu.
// Muster werden case-insensitiv als Teilstring gegen Dateiname bzw. Titel
// geprüft; die erste passende Regel gewinnt.
type WeekRule struct {
	Pattern string
	Week    int
}

// WeekPatterns enthält die Zuordnungsregeln pro Kurs.
// Zweistellige Wochen stehen vor den einstelligen, damit "lecture 1" nicht
// versehentlich "lecture 13" abfängt.
var WeekPatterns = map[string][]WeekRule{
	"nlp": {
		{Pattern: "lecture 13", Week: 13}, {Pattern: "lecture 12", Week: 12},
		{Pattern: "lecture 11", Week: 11}, {Pattern: "lecture 10", Week: 10},
		{Pattern: "lecture 9", Week: 9}, {Pattern: "lecture 8", Week: 8},
		{Pattern: "lecture 7", Week: 7}, {Pattern: "lecture 6", Week: 6},
		{Pattern: "lecture 5", Week: 5}, {Pattern: "lecture 4", Week: 4},
		{Pattern: "lecture 3", Week: 3}, {Pattern: "lecture 2", Week: 2},
		{Pattern: "lecture 1", Week: 1},
		{Pattern: "lab 3", Week: 11}, {Pattern: "lab 2", Week: 9},
		{Pattern: "lab 1", Week: 5},
		{Pattern: "word embedding", Week: 6},
		{Pattern: "transformer", Week: 7},
		{Pattern: "slm", Week: 3},
	},
	"cvpr": {
		{Pattern: "week 15", Week: 15}, {Pattern: "week 14", Week: 14},
		{Pattern: "week 13", Week: 13}, {Pattern: "week 12", Week: 12},
		{Pattern: "week 11", Week: 11}, {Pattern: "week 10", Week: 10},
		{Pattern: "week 9", Week: 9}, {Pattern: "week 8", Week: 8},
		{Pattern: "week 7", Week: 7}, {Pattern: "week 6", Week: 6},
		{Pattern: "week 5", Week: 5}, {Pattern: "week 4", Week: 4},
		{Pattern: "week 3", Week: 3}, {Pattern: "week 2", Week: 2},
		{Pattern: "week 1", Week: 1},
		{Pattern: "lab 7", Week: 10}, {Pattern: "lab 6", Week: 9},
		{Pattern: "lab 5", Week: 8}, {Pattern: "lab 4", Week: 7},
		{Pattern: "lab 3", Week: 4}, {Pattern: "lab 2", Week: 3},
		{Pattern: "lab 1", Week: 2},
		{Pattern: "segmentation", Week: 7},
		{Pattern: "object detection", Week: 8},
	},
	"it-forum": {
		{Pattern: "forum 5", Week: 5}, {Pattern: "forum 4", Week: 4},
		{Pattern: "forum 3", Week: 3}, {Pattern: "forum 2", Week: 2},
		{Pattern: "forum 1", Week: 1},
		{Pattern: "robotics", Week: 5},
		{Pattern: "generative ai", Week: 4},
	},
}
