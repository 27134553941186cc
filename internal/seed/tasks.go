package seed

import "studydash/internal/models"

// StudyTasks liefert den vorgeplanten Lernkalender vom 21.02. bis zu den Klausuren.
func StudyTasks() []models.StudyTask {
	return []models.StudyTask{
		{ID: "s001", Date: "2026-02-21", CourseID: "nlp", Title: "Crash study NLP Week 1: Intro to NLP, NLU vs NLG, ambiguity types", Hours: 3, Category: "catch-up"},
		{ID: "s002", Date: "2026-02-21", CourseID: "nlp", Title: "Crash study NLP Week 2: Tokenization, stemming, lemmatization, regex", Hours: 3, Category: "catch-up"},
		{ID: "s003", Date: "2026-02-21", CourseID: "cvpr", Title: "Email Prof. GUO about missed Quiz 1 & late labs", Hours: 0.5, Category: "admin"},
		{ID: "s004", Date: "2026-02-22", CourseID: "nlp", Title: "Crash study NLP Week 3: N-grams, probability estimation, smoothing, perplexity", Hours: 3, Category: "catch-up"},
		{ID: "s005", Date: "2026-02-22", CourseID: "nlp", Title: "Crash study NLP Week 4: POS tagging, CFG, CKY parsing, dependency parsing", Hours: 3, Category: "catch-up"},
		{ID: "s006", Date: "2026-02-22", CourseID: "nlp", Title: "Practice N-gram probability calculations for quiz", Hours: 1, Category: "quiz-prep"},
		{ID: "s007", Date: "2026-02-23", CourseID: "nlp", Title: "Attend NLP Week 6: Quiz + Word Embedding lecture (18:30)", Hours: 3, Category: "attend"},
		{ID: "s008", Date: "2026-02-23", CourseID: "nlp", Title: "Review quiz results and note weak areas", Hours: 1, Category: "review"},
		{ID: "s009", Date: "2026-02-24", CourseID: "cvpr", Title: "Study CVPR Week 1: Image acquisition, color models, sampling, quantization", Hours: 2, Category: "catch-up"},
		{ID: "s010", Date: "2026-02-24", CourseID: "cvpr", Title: "Study CVPR Week 2: Image enhancement techniques", Hours: 2, Category: "catch-up"},
		{ID: "s011", Date: "2026-02-24", CourseID: "cvpr", Title: "Work on CVPR Lab 1 (submit ASAP)", Hours: 2, Category: "lab"},
		{ID: "s012", Date: "2026-02-25", CourseID: "cvpr", Title: "Study CVPR Week 3: Feature extraction methods", Hours: 2, Category: "catch-up"},
		{ID: "s013", Date: "2026-02-25", CourseID: "cvpr", Title: "Complete & submit CVPR Labs 2 and 3", Hours: 3, Category: "lab"},
		{ID: "s014", Date: "2026-02-26", CourseID: "cvpr", Title: "Attend CVPR Week 7: Segmentation + Lab 4 (18:30)", Hours: 3, Category: "attend"},
		{ID: "s015", Date: "2026-02-26", CourseID: "nlp", Title: "Review NLP Word Embedding notes (Word2Vec, GloVe)", Hours: 1.5, Category: "review"},
		{ID: "s016", Date: "2026-02-27", CourseID: "cvpr", Title: "Study CVPR Week 4: Image classification & segmentation", Hours: 2, Category: "catch-up"},
		{ID: "s017", Date: "2026-02-27", CourseID: "cvpr", Title: "Study CVPR Week 5: Deep learning for CVPR", Hours: 2, Category: "catch-up"},
		{ID: "s018", Date: "2026-02-27", CourseID: "cvpr", Title: "Submit CVPR Lab 4 (48h deadline)", Hours: 1, Category: "lab"},
		{ID: "s019", Date: "2026-02-28", CourseID: "it-forum", Title: "Attend IT Forum: Keith Li - Generative AI & Business (9:30)", Hours: 2, Category: "attend"},
		{ID: "s020", Date: "2026-02-28", CourseID: "it-forum", Title: "Write & submit IT Forum report", Hours: 1.5, Category: "assignment"},
		{ID: "s021", Date: "2026-02-28", CourseID: "cvpr", Title: "Contact classmates to form CVPR project group", Hours: 0.5, Category: "admin"},
		{ID: "s022", Date: "2026-03-01", CourseID: "nlp", Title: "Deep review NLP Weeks 1-6 material, fill knowledge gaps", Hours: 3, Category: "review"},
		{ID: "s023", Date: "2026-03-01", CourseID: "nlp", Title: "Read Jurafsky Ch.6: Word Embeddings (Word2Vec, GloVe)", Hours: 1.5, Category: "reading"},
		{ID: "s024", Date: "2026-03-02", CourseID: "nlp", Title: "Attend NLP Week 7: DNN, Attention, Transformer (18:30)", Hours: 3, Category: "attend"},
		{ID: "s025", Date: "2026-03-03", CourseID: "nlp", Title: "Review Transformer architecture & self-attention in depth", Hours: 2.5, Category: "review"},
		{ID: "s026", Date: "2026-03-03", CourseID: "cvpr", Title: "Study CVPR segmentation methods (catch up Week 7)", Hours: 2, Category: "review"},
		{ID: "s027", Date: "2026-03-04", CourseID: "nlp", Title: "Read Jurafsky Ch.9-10: RNN, Attention, Transformers", Hours: 2, Category: "reading"},
		{ID: "s028", Date: "2026-03-04", CourseID: "cvpr", Title: "Pre-read Object Detection concepts for Thursday", Hours: 2, Category: "reading"},
		{ID: "s029", Date: "2026-03-05", CourseID: "cvpr", Title: "Attend CVPR Week 8: Object Detection + Lab 5 (18:30)", Hours: 3, Category: "attend"},
		{ID: "s030", Date: "2026-03-06", CourseID: "cvpr", Title: "Submit CVPR Lab 5 (48h deadline)", Hours: 1.5, Category: "lab"},
		{ID: "s031", Date: "2026-03-06", CourseID: "cvpr", Title: "Review Object Detection notes (YOLO, R-CNN, SSD)", Hours: 2, Category: "review"},
		{ID: "s032", Date: "2026-03-07", CourseID: "nlp", Title: "NLP comprehensive review: Weeks 5-7 concepts", Hours: 3, Category: "review"},
		{ID: "s033", Date: "2026-03-07", CourseID: "cvpr", Title: "Brainstorm CVPR project topic ideas with group", Hours: 1, Category: "project"},
		{ID: "s034", Date: "2026-03-08", CourseID: "cvpr", Title: "CVPR cumulative review: Weeks 1-8 key concepts", Hours: 3, Category: "review"},
		{ID: "s035", Date: "2026-03-08", CourseID: "nlp", Title: "Practice Transformer concepts with examples", Hours: 1.5, Category: "review"},
		{ID: "s036", Date: "2026-03-09", CourseID: "nlp", Title: "Attend NLP Week 8: Neural Language Models (18:30)", Hours: 3, Category: "attend"},
		{ID: "s037", Date: "2026-03-10", CourseID: "nlp", Title: "Review Neural LM notes: pre-training, fine-tuning", Hours: 2, Category: "review"},
		{ID: "s038", Date: "2026-03-10", CourseID: "cvpr", Title: "CVPR project: research related papers and approaches", Hours: 2, Category: "project"},
		{ID: "s039", Date: "2026-03-11", CourseID: "cvpr", Title: "CVPR project: draft proposal outline with group", Hours: 2, Category: "project"},
		{ID: "s040", Date: "2026-03-11", CourseID: "cvpr", Title: "Pre-read Temporal Processing concepts for Thursday", Hours: 1.5, Category: "reading"},
		{ID: "s041", Date: "2026-03-12", CourseID: "cvpr", Title: "Attend CVPR Week 9: Temporal Processing + Lab 6 (18:30)", Hours: 3, Category: "attend"},
		{ID: "s042", Date: "2026-03-13", CourseID: "cvpr", Title: "Submit CVPR Lab 6 (48h deadline)", Hours: 1.5, Category: "lab"},
		{ID: "s043", Date: "2026-03-13", CourseID: "cvpr", Title: "CVPR project: write proposal preliminary studies section", Hours: 2, Category: "project"},
		{ID: "s044", Date: "2026-03-14", CourseID: "cvpr", Title: "CVPR project: write methodology & design sections", Hours: 3, Category: "project"},
		{ID: "s045", Date: "2026-03-14", CourseID: "nlp", Title: "NLP review: Weeks 7-8 (Transformer, Neural LMs)", Hours: 2, Category: "review"},
		{ID: "s046", Date: "2026-03-15", CourseID: "nlp", Title: "Read about BERT, GPT architecture and pre-training", Hours: 2, Category: "reading"},
		{ID: "s047", Date: "2026-03-15", CourseID: "cvpr", Title: "CVPR project: polish proposal draft", Hours: 2, Category: "project"},
		{ID: "s048", Date: "2026-03-16", CourseID: "nlp", Title: "Attend NLP Week 9: Lab 2 - Text Classification, BERT (18:30)", Hours: 3, Category: "attend"},
		{ID: "s049", Date: "2026-03-17", CourseID: "cvpr", Title: "CVPR project: refine proposal based on feedback", Hours: 2.5, Category: "project"},
		{ID: "s050", Date: "2026-03-17", CourseID: "nlp", Title: "Review NLP Lab 2: BERT model training", Hours: 2, Category: "review"},
		{ID: "s051", Date: "2026-03-18", CourseID: "cvpr", Title: "Finalize CVPR project proposal for submission", Hours: 2.5, Category: "project"},
		{ID: "s052", Date: "2026-03-18", CourseID: "cvpr", Title: "Pre-read Data Generation concepts for Thursday", Hours: 1.5, Category: "reading"},
		{ID: "s053", Date: "2026-03-19", CourseID: "cvpr", Title: "Attend CVPR Week 10: Data Generation + Lab 7 (18:30)", Hours: 3, Category: "attend"},
		{ID: "s054", Date: "2026-03-20", CourseID: "cvpr", Title: "SUBMIT: CVPR Project Proposal via Moodle (DEADLINE)", Hours: 1, Category: "deadline"},
		{ID: "s055", Date: "2026-03-20", CourseID: "cvpr", Title: "Submit CVPR Lab 7 (48h deadline)", Hours: 1.5, Category: "lab"},
		{ID: "s056", Date: "2026-03-21", CourseID: "it-forum", Title: "Attend IT Forum: Albert LAM - Robotics & AI (9:30)", Hours: 2, Category: "attend"},
		{ID: "s057", Date: "2026-03-21", CourseID: "it-forum", Title: "Write & submit IT Forum report", Hours: 1.5, Category: "assignment"},
		{ID: "s058", Date: "2026-03-21", CourseID: "cvpr", Title: "Begin CVPR Quiz 2 prep: review DL for CVPR concepts", Hours: 2, Category: "quiz-prep"},
		{ID: "s059", Date: "2026-03-22", CourseID: "cvpr", Title: "CVPR Quiz 2 prep: Segmentation methods & architectures", Hours: 3, Category: "quiz-prep"},
		{ID: "s060", Date: "2026-03-22", CourseID: "nlp", Title: "Read about Large Language Models (prep for Monday)", Hours: 1.5, Category: "reading"},
		{ID: "s061", Date: "2026-03-23", CourseID: "nlp", Title: "Attend NLP Week 10: Large Language Model (18:30)", Hours: 3, Category: "attend"},
		{ID: "s062", Date: "2026-03-24", CourseID: "cvpr", Title: "CVPR Quiz 2 prep: Object Detection (YOLO, R-CNN, SSD)", Hours: 3, Category: "quiz-prep"},
		{ID: "s063", Date: "2026-03-25", CourseID: "cvpr", Title: "CVPR Quiz 2 prep: Temporal Processing & Data Generation", Hours: 2.5, Category: "quiz-prep"},
		{ID: "s064", Date: "2026-03-25", CourseID: "cvpr", Title: "Prepare A4 cheat sheet for CVPR Quiz 2", Hours: 1.5, Category: "quiz-prep"},
		{ID: "s065", Date: "2026-03-26", CourseID: "cvpr", Title: "CVPR Quiz 2 + Review lecture (18:30)", Hours: 3, Category: "attend"},
		{ID: "s066", Date: "2026-03-27", CourseID: "nlp", Title: "NLP Quiz 2 prep: Word Embedding (Word2Vec, GloVe, ELMo)", Hours: 3, Category: "quiz-prep"},
		{ID: "s067", Date: "2026-03-28", CourseID: "nlp", Title: "NLP Quiz 2 prep: Attention, Transformer, Neural LMs", Hours: 3, Category: "quiz-prep"},
		{ID: "s068", Date: "2026-03-29", CourseID: "nlp", Title: "NLP Quiz 2 prep: LLMs, full review of all topics", Hours: 3, Category: "quiz-prep"},
		{ID: "s069", Date: "2026-03-30", CourseID: "nlp", Title: "Attend NLP Week 11: Quiz 2 + Lab 3 (18:30)", Hours: 3, Category: "attend"},
		{ID: "s070", Date: "2026-03-31", CourseID: "cvpr", Title: "CVPR project: begin implementation / coding", Hours: 3, Category: "project"},
		{ID: "s071", Date: "2026-03-31", CourseID: "nlp", Title: "NLP mini-project: select topic & start literature review", Hours: 2, Category: "project"},
		{ID: "s072", Date: "2026-04-01", CourseID: "cvpr", Title: "CVPR project: core implementation (4h focused session)", Hours: 4, Category: "project"},
		{ID: "s073", Date: "2026-04-02", CourseID: "cvpr", Title: "CVPR project: implementation continued (Easter holiday)", Hours: 4, Category: "project"},
		{ID: "s074", Date: "2026-04-03", CourseID: "nlp", Title: "NLP mini-project: literature review & design approach", Hours: 3, Category: "project"},
		{ID: "s075", Date: "2026-04-03", CourseID: "cvpr", Title: "CVPR project: run experiments & collect results", Hours: 2, Category: "project"},
		{ID: "s076", Date: "2026-04-04", CourseID: "cvpr", Title: "CVPR project: experiments & result analysis", Hours: 4, Category: "project"},
		{ID: "s077", Date: "2026-04-05", CourseID: "nlp", Title: "NLP mini-project: start implementation / coding", Hours: 3, Category: "project"},
		{ID: "s078", Date: "2026-04-05", CourseID: "cvpr", Title: "CVPR project: additional experiments", Hours: 2, Category: "project"},
		{ID: "s079", Date: "2026-04-06", CourseID: "nlp", Title: "NLP mini-project: implementation continued (holiday)", Hours: 4, Category: "project"},
		{ID: "s080", Date: "2026-04-07", CourseID: "cvpr", Title: "CVPR project: finalize results & start slide deck", Hours: 3, Category: "project"},
		{ID: "s081", Date: "2026-04-07", CourseID: "nlp", Title: "NLP mini-project: run experiments", Hours: 2, Category: "project"},
		{ID: "s082", Date: "2026-04-08", CourseID: "cvpr", Title: "CVPR project: create presentation slides", Hours: 3, Category: "project"},
		{ID: "s083", Date: "2026-04-08", CourseID: "nlp", Title: "NLP mini-project: result analysis & write-up", Hours: 2, Category: "project"},
		{ID: "s084", Date: "2026-04-09", CourseID: "cvpr", Title: "CVPR project: rehearse presentation with group", Hours: 2, Category: "project"},
		{ID: "s085", Date: "2026-04-10", CourseID: "nlp", Title: "NLP mini-project: finalize implementation & results", Hours: 3, Category: "project"},
		{ID: "s086", Date: "2026-04-11", CourseID: "nlp", Title: "NLP mini-project: draft report", Hours: 3, Category: "project"},
		{ID: "s087", Date: "2026-04-11", CourseID: "cvpr", Title: "CVPR project: final presentation polish", Hours: 2, Category: "project"},
		{ID: "s088", Date: "2026-04-12", CourseID: "nlp", Title: "NLP mini-project: prepare presentation slides", Hours: 2, Category: "project"},
		{ID: "s089", Date: "2026-04-12", CourseID: "cvpr", Title: "CVPR project: dry-run presentation", Hours: 1, Category: "project"},
		{ID: "s090", Date: "2026-04-13", CourseID: "nlp", Title: "Attend NLP Week 12: Applications + Course Review (18:30)", Hours: 3, Category: "attend"},
		{ID: "s091", Date: "2026-04-13", CourseID: "nlp", Title: "NLP mini-project: finalize report", Hours: 2, Category: "project"},
		{ID: "s092", Date: "2026-04-14", CourseID: "cvpr", Title: "CVPR project: final presentation rehearsal", Hours: 2, Category: "project"},
		{ID: "s093", Date: "2026-04-14", CourseID: "nlp", Title: "Start NLP exam revision notes", Hours: 2, Category: "exam-prep"},
		{ID: "s094", Date: "2026-04-15", CourseID: "cvpr", Title: "CVPR: last-minute presentation fixes", Hours: 1.5, Category: "project"},
		{ID: "s095", Date: "2026-04-15", CourseID: "nlp", Title: "NLP mini-project: polish presentation slides", Hours: 2, Category: "project"},
		{ID: "s096", Date: "2026-04-16", CourseID: "cvpr", Title: "CVPR Project Presentation (18:30) - present & demo", Hours: 3, Category: "attend"},
		{ID: "s097", Date: "2026-04-17", CourseID: "nlp", Title: "NLP mini-project: finalize everything for Monday", Hours: 3, Category: "project"},
		{ID: "s098", Date: "2026-04-18", CourseID: "nlp", Title: "NLP: rehearse presentation", Hours: 1.5, Category: "project"},
		{ID: "s099", Date: "2026-04-18", CourseID: "cvpr", Title: "Start CVPR final report writing", Hours: 2, Category: "project"},
		{ID: "s100", Date: "2026-04-19", CourseID: "nlp", Title: "NLP: final presentation dry run", Hours: 1, Category: "project"},
		{ID: "s101", Date: "2026-04-19", CourseID: "cvpr", Title: "CVPR final report: methodology & results sections", Hours: 3, Category: "project"},
		{ID: "s102", Date: "2026-04-20", CourseID: "nlp", Title: "NLP Mini-Project Presentation (18:30) + Submit Report", Hours: 3, Category: "attend"},
		{ID: "s103", Date: "2026-04-21", CourseID: "cvpr", Title: "CVPR final report: introduction & conclusion", Hours: 3, Category: "project"},
		{ID: "s104", Date: "2026-04-22", CourseID: "cvpr", Title: "CVPR final report: polish & proofread", Hours: 2, Category: "project"},
		{ID: "s105", Date: "2026-04-22", CourseID: "nlp", Title: "NLP exam prep: Weeks 1-4 review", Hours: 2, Category: "exam-prep"},
		{ID: "s106", Date: "2026-04-23", CourseID: "cvpr", Title: "CVPR Presentation continued if needed (18:30)", Hours: 3, Category: "attend"},
		{ID: "s107", Date: "2026-04-24", CourseID: "cvpr", Title: "CVPR: clean up code for submission", Hours: 2, Category: "project"},
		{ID: "s108", Date: "2026-04-24", CourseID: "nlp", Title: "NLP exam prep: Weeks 5-8 review", Hours: 2, Category: "exam-prep"},
		{ID: "s109", Date: "2026-04-25", CourseID: "cvpr", Title: "CVPR: finalize report + PPT + code package", Hours: 3, Category: "project"},
		{ID: "s110", Date: "2026-04-26", CourseID: "nlp", Title: "NLP exam prep: Weeks 9-12 review (LLM focus)", Hours: 3, Category: "exam-prep"},
		{ID: "s111", Date: "2026-04-26", CourseID: "cvpr", Title: "CVPR: final report review with group", Hours: 1.5, Category: "project"},
		{ID: "s112", Date: "2026-04-27", CourseID: "cvpr", Title: "CVPR exam prep: Weeks 1-5 (Conventional CVPR)", Hours: 3, Category: "exam-prep"},
		{ID: "s113", Date: "2026-04-27", CourseID: "nlp", Title: "NLP exam prep: practice problems", Hours: 2, Category: "exam-prep"},
		{ID: "s114", Date: "2026-04-28", CourseID: "cvpr", Title: "CVPR: absolute final report touches", Hours: 1.5, Category: "project"},
		{ID: "s115", Date: "2026-04-28", CourseID: "cvpr", Title: "CVPR exam prep: Weeks 7-11 (DL-based CVPR)", Hours: 2.5, Category: "exam-prep"},
		{ID: "s116", Date: "2026-04-29", CourseID: "cvpr", Title: "CVPR: prepare final submission package on Moodle", Hours: 1, Category: "deadline"},
		{ID: "s117", Date: "2026-04-29", CourseID: "nlp", Title: "NLP exam prep: comprehensive review", Hours: 3, Category: "exam-prep"},
		{ID: "s118", Date: "2026-04-30", CourseID: "cvpr", Title: "SUBMIT: CVPR Final Report + Code via Moodle (DEADLINE)", Hours: 1, Category: "deadline"},
		{ID: "s119", Date: "2026-04-30", CourseID: "cvpr", Title: "CVPR exam prep: full review session", Hours: 3, Category: "exam-prep"},
		{ID: "s120", Date: "2026-05-01", CourseID: "nlp", Title: "NLP exam prep: text preprocessing & language models", Hours: 3, Category: "exam-prep"},
		{ID: "s121", Date: "2026-05-01", CourseID: "cvpr", Title: "CVPR exam prep: image processing fundamentals", Hours: 2, Category: "exam-prep"},
		{ID: "s122", Date: "2026-05-02", CourseID: "nlp", Title: "NLP exam prep: syntactic analysis & word embeddings", Hours: 3, Category: "exam-prep"},
		{ID: "s123", Date: "2026-05-02", CourseID: "cvpr", Title: "CVPR exam prep: feature extraction & classification", Hours: 2, Category: "exam-prep"},
		{ID: "s124", Date: "2026-05-03", CourseID: "nlp", Title: "NLP exam prep: Transformer, BERT, Neural LMs", Hours: 3, Category: "exam-prep"},
		{ID: "s125", Date: "2026-05-03", CourseID: "cvpr", Title: "CVPR exam prep: DL, segmentation, detection", Hours: 3, Category: "exam-prep"},
		{ID: "s126", Date: "2026-05-04", CourseID: "nlp", Title: "NLP exam prep: LLMs & applications, mock exam", Hours: 3, Category: "exam-prep"},
		{ID: "s127", Date: "2026-05-04", CourseID: "cvpr", Title: "CVPR exam prep: temporal, generation, full mock exam", Hours: 3, Category: "exam-prep"},
	}
}
