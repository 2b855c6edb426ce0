package model

// QuestionResult is one row of the performance dataset: a single question
// answered by a single student. The dataset is consumed read-only from CSV
// and never persisted to the database.
type QuestionResult struct {
	RA             int    `json:"ra"`
	StudentName    string `json:"studentName"`
	SubjectCode    string `json:"subjectCode"` // PORT or MAT
	QuestionNumber int    `json:"questionNumber"`
	Correct        bool   `json:"correct"`
	Wrong          bool   `json:"wrong"`
	Content        string `json:"content"`    // content tag, e.g. "Funções de 2º grau"
	Descriptor     string `json:"descriptor"` // skill descriptor text
	LessonURL      string `json:"lessonUrl"`  // recommended lesson link
	QuestionURL    string `json:"questionUrl"` // Drive share link of the commented-answer PDF
}
