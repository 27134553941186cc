package seed

import "studydash/internal/models"

// Deadlines liefert die initialen Abgabetermine aller Kurse.
func Deadlines() []models.Deadline {
	return []models.Deadline{
		{ID: "nlp-quiz1", CourseID: "nlp", Title: "NLP Quiz 1", Date: "2026-02-23", Weight: "Part of 50% CA", Type: "quiz"},
		{ID: "cvpr-lab4", CourseID: "cvpr", Title: "CVPR Lab 4 Submission", Date: "2026-02-28", Weight: "~1.4%", Type: "lab"},
		{ID: "it-forum-4", CourseID: "it-forum", Title: "IT Forum: Keith Li Talk + Report", Date: "2026-02-28", Weight: "Attendance", Type: "talk"},
		{ID: "cvpr-labs-overdue", CourseID: "cvpr", Title: "CVPR Labs 1-3 (OVERDUE)", Date: "2026-02-21", Weight: "~4.3%", Type: "lab"},
		{ID: "cvpr-group", CourseID: "cvpr", Title: "CVPR Project Group Formation (OVERDUE)", Date: "2026-02-19", Weight: "Required", Type: "admin"},
		{ID: "cvpr-lab5", CourseID: "cvpr", Title: "CVPR Lab 5 Submission", Date: "2026-03-07", Weight: "~1.4%", Type: "lab"},
		{ID: "cvpr-lab6", CourseID: "cvpr", Title: "CVPR Lab 6 Submission", Date: "2026-03-14", Weight: "~1.4%", Type: "lab"},
		{ID: "cvpr-lab7", CourseID: "cvpr", Title: "CVPR Lab 7 Submission", Date: "2026-03-21", Weight: "~1.4%", Type: "lab"},
		{ID: "cvpr-proposal", CourseID: "cvpr", Title: "CVPR Project Proposal", Date: "2026-03-20", Weight: "7% (20% of 35%)", Type: "project"},
		{ID: "it-forum-5", CourseID: "it-forum", Title: "IT Forum: Albert LAM Talk + Report", Date: "2026-03-21", Weight: "Attendance", Type: "talk"},
		{ID: "cvpr-quiz2", CourseID: "cvpr", Title: "CVPR Quiz 2 (DL-based)", Date: "2026-03-26", Weight: "2.5%", Type: "quiz"},
		{ID: "nlp-quiz2", CourseID: "nlp", Title: "NLP Quiz 2", Date: "2026-03-30", Weight: "Part of 50% CA", Type: "quiz"},
		{ID: "nlp-report", CourseID: "nlp", Title: "NLP Mini-Project Report", Date: "2026-04-20", Weight: "Part of 50% CA", Type: "project"},
		{ID: "nlp-presentation", CourseID: "nlp", Title: "NLP Mini-Project Presentation", Date: "2026-04-20", Weight: "Part of 50% CA", Type: "project"},
		{ID: "cvpr-presentation", CourseID: "cvpr", Title: "CVPR Project Presentation", Date: "2026-04-16", Weight: "14% (40% of 35%)", Type: "project"},
		{ID: "cvpr-report", CourseID: "cvpr", Title: "CVPR Final Report + Code", Date: "2026-04-30", Weight: "14% (40% of 35%)", Type: "project"},
		{ID: "nlp-exam", CourseID: "nlp", Title: "NLP Final Exam", Date: "2026-05-15", Weight: "50%", Type: "exam"},
		{ID: "cvpr-exam", CourseID: "cvpr", Title: "CVPR Final Exam", Date: "2026-05-15", Weight: "50%", Type: "exam"},
	}
}
