package seed

import "studydash/internal/models"

// Courses liefert die drei fest hinterlegten Kurse des Semesters.
func Courses() []models.Course {
	return []models.Course{
		{
			ID:         "nlp",
			Name:       "COMP7045 NLP & Large Language Model",
			Code:       "COMP7045",
			Instructor: "Dr. Jing MA",
			TA:         "Fu Rao (csraofu@comp.hkbu.edu.hk)",
			Schedule:   "Mon 18:30-21:20",
			Venue:      "SCT502 (HSH Campus)",
			Color:      "#6366f1",
			Assessment: models.Assessment{
				Continuous: &models.AssessmentPart{
					Weight: 50,
					Components: []models.AssessmentComponent{
						{Name: "Assignments & Quizzes", Weight: "TBD (part of 50%)"},
						{Name: "Mini-Project (Presentation + Report)", Weight: "TBD (part of 50%)"},
					},
				},
				Exam: &models.AssessmentPart{
					Weight: 50,
					Note: "Must score at least 30% to pass",
				},
			},
			Weeks: []models.Week{
				{Week: 1, Date: "2026-01-12", Topic: "Course Information & Introduction to NLP", Details: "What is NLP, NLU vs NLG, why NLP is hard, ambiguity types, history of NLP", Status: "missed"},
				{Week: 2, Date: "2026-01-19", Topic: "Text Preprocessing", Details: "Tokenization, stemming, lemmatization, stopword removal, regular expressions", Status: "missed"},
				{Week: 3, Date: "2026-01-26", Topic: "Statistical Language Models", Details: "N-grams, probability estimation, smoothing techniques, perplexity", Status: "missed"},
				{Week: 4, Date: "2026-02-02", Topic: "Syntactic Analysis", Details: "POS tagging, parsing (CFG, CKY algorithm), dependency parsing", Status: "missed"},
				{Week: 5, Date: "2026-02-09", Topic: "Lab 1: Hugging Face & Colab", Details: "Text Preprocessing, Train a Language Model for Text Generation", HasLab: true, Status: "missed"},
				{Week: 6, Date: "2026-02-23", Topic: "Quiz + Word Embedding", Details: "Quiz/In-class Exercise, Word2Vec, GloVe, ELMo", HasQuiz: true, Status: "upcoming"},
				{Week: 7, Date: "2026-03-02", Topic: "Deep Neural Networks, Attention & Transformer", Details: "RNN, CNN, Attention mechanism, Transformer architecture", Status: "upcoming"},
				{Week: 8, Date: "2026-03-09", Topic: "Neural Language Models", Details: "Neural language models, pre-training, fine-tuning", Status: "upcoming"},
				{Week: 9, Date: "2026-03-16", Topic: "Lab 2: Text Classification & BERT", Details: "Train Text Classification Model, Word Embedding Visualization, BERT Model", HasLab: true, Status: "upcoming"},
				{Week: 10, Date: "2026-03-23", Topic: "Large Language Model", Details: "LLM architecture, training, capabilities, limitations", Status: "upcoming"},
				{Week: 11, Date: "2026-03-30", Topic: "Quiz + Lab 3: Prompt Engineering & Toy LLM", Details: "Quiz 2, Prompt Engineering techniques, Train a toy LLM", HasLab: true, HasQuiz: true, Status: "upcoming"},
				{Week: 12, Date: "2026-04-13", Topic: "NLP Applications & Course Review", Details: "Real-world NLP applications, course summary and review", Status: "upcoming"},
				{Week: 13, Date: "2026-04-20", Topic: "Mini-Project Presentation", Details: "~10 min presentation, graded by instructor, TA, and students", Status: "upcoming"},
			},
		},
		{
			ID:         "cvpr",
			Name:       "Computer Vision & Pattern Recognition",
			Code:       "CVPR",
			Instructor: "Prof. Xiaoqing GUO",
			TA:         "Zhenshun LIU (cszsliu@comp.hkbu.edu.hk)",
			Schedule:   "Thu 18:30-21:20 (Lecture 18:30-20:20, Lab 20:30-21:20)",
			Venue:      "FSC801C, FSC801D",
			Color:      "#f59e0b",
			Assessment: models.Assessment{
				Continuous: &models.AssessmentPart{
					Weight: 50,
					Components: []models.AssessmentComponent{
						{Name: "2 In-class Quizzes", Weight: 5},
						{Name: "7 Lab Exercises", Weight: 10},
						{Name: "Group Project (Proposal 20% + Presentation 40% + Report 40%)", Weight: 35},
					},
				},
				Exam: &models.AssessmentPart{
					Weight: 50,
					Note: "Must score at least 30% on exam AND 35% total to pass",
				},
			},
			Weeks: []models.Week{
				{Week: 1, Date: "2026-01-15", Topic: "Introduction + Image Acquisition", Details: "CV applications, image acquisition, color models/spaces, sampling, quantization", Status: "missed"},
				{Week: 2, Date: "2026-01-22", Topic: "Image Enhancement", Details: "Image enhancement techniques", HasLab: true, LabName: "Lab 1", Status: "missed"},
				{Week: 3, Date: "2026-01-29", Topic: "Feature Extractor", Details: "Feature extraction methods", HasLab: true, LabName: "Lab 2", Status: "missed"},
				{Week: 4, Date: "2026-02-05", Topic: "Image Classification & Segmentation", Details: "Classification and segmentation techniques", HasLab: true, LabName: "Lab 3", Status: "missed"},
				{Week: 5, Date: "2026-02-12", Topic: "Deep Learning for CVPR + Project Briefing", Details: "Deep learning approaches for CV, course project introduction. Quiz on Conventional CVPR.", HasQuiz: true, QuizName: "Quiz 1 (Conventional CVPR)", Status: "missed"},
				{Week: 6, Date: "2026-02-19", Topic: "Holiday (Chinese New Year)", Details: "No class", Status: "holiday"},
				{Week: 7, Date: "2026-02-26", Topic: "Segmentation", Details: "Advanced segmentation methods with deep learning", HasLab: true, LabName: "Lab 4", Status: "upcoming"},
				{Week: 8, Date: "2026-03-05", Topic: "Object Detection", Details: "Object detection algorithms and frameworks", HasLab: true, LabName: "Lab 5", Status: "upcoming"},
				{Week: 9, Date: "2026-03-12", Topic: "Temporal Processing", Details: "Video and temporal data processing", HasLab: true, LabName: "Lab 6", Status: "upcoming"},
				{Week: 10, Date: "2026-03-19", Topic: "Data Generation", Details: "Data augmentation and generation techniques", HasLab: true, LabName: "Lab 7", Status: "upcoming"},
				{Week: 11, Date: "2026-03-26", Topic: "CVPR Review + Quiz 2", Details: "Course review, Quiz on DL-based CVPR. Optional project consultation.", HasQuiz: true, QuizName: "Quiz 2 (DL-based CVPR)", Status: "upcoming"},
				{Week: 12, Date: "2026-04-02", Topic: "Holiday (Easter)", Details: "No class", Status: "holiday"},
				{Week: 13, Date: "2026-04-09", Topic: "Holiday (Easter)", Details: "No class", Status: "holiday"},
				{Week: 14, Date: "2026-04-16", Topic: "Group Project Presentation", Details: "10 min/person + 5 min Q&A per group", Status: "upcoming"},
				{Week: 15, Date: "2026-04-23", Topic: "Group Project Presentation", Details: "10 min/person + 5 min Q&A per group", Status: "upcoming"},
			},
		},
		{
			ID:         "it-forum",
			Name:       "IT Forum",
			Code:       "IT Forum",
			Instructor: "Various Speakers",
			TA:         "",
			Schedule:   "Sat 9:30-11:30 (selected dates)",
			Venue:      "SCT503, HKBU",
			Color:      "#10b981",
			Assessment: models.Assessment{
				Continuous: &models.AssessmentPart{
					Weight: 100,
					Components: []models.AssessmentComponent{
						{Name: "Attendance + Report Submission", Weight: 100},
					},
				},
				Exam: &models.AssessmentPart{
					Weight: 0,
					Note: "No exam",
				},
			},
			Weeks: []models.Week{
				{Week: 1, Date: "2026-01-17", Topic: "AI Agents in Action: Your Path to Cloud Innovation", Details: "Speakers: Diane Long & Lok Yeung (AWS). AWS Intro, GenAI in AWS, AgentCore, AI Use Cases, Kiro, AWS Certificates.", Status: "past"},
				{Week: 2, Date: "2026-01-24", Topic: "IT Professional's Career Development in the AI Era", Details: "Speaker: Raymond Tsang (Alibaba Cloud Global Training Advisor in AI).", Status: "past"},
				{Week: 3, Date: "2026-02-07", Topic: "Cyber Security Operations Trend in 2026", Details: "Speakers: Wilfred CW Leung & Yoga Yujia Tian (HKT). MDR, Next-Gen SOC.", Status: "past"},
				{Week: 4, Date: "2026-02-28", Topic: "Generative AI and Business (Title TBD)", Details: "Speaker: Keith Li (Chairman, WTIA - HK Wireless Technology Industry Association).", Status: "upcoming"},
				{Week: 5, Date: "2026-03-21", Topic: "Robotics and AI (Title TBD)", Details: "Speaker: Albert LAM (Co-Founder, Novelte Robotics).", Status: "upcoming"},
			},
		},
	}
}
