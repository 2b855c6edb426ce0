package service

import (
	"aluno_ai_backend/internal/model"
	"aluno_ai_backend/internal/repository"
	"aluno_ai_backend/internal/util"
)

// QuestionReview is one wrongly answered question, with the links a student
// needs to study it.
type QuestionReview struct {
	QuestionNumber int    `json:"questionNumber"`
	SubjectCode    string `json:"subjectCode"`
	Subject        string `json:"subject"`
	Content        string `json:"content"`
	Descriptor     string `json:"descriptor"`
	LessonURL      string `json:"lessonUrl"`
	QuestionURL    string `json:"questionUrl"`
}

// StudentSummary aggregates a student's assessment results.
type StudentSummary struct {
	RA                 int              `json:"ra"`
	Name               string           `json:"name"`
	CorrectPortuguese  int              `json:"correctPortuguese"`
	CorrectMathematics int              `json:"correctMathematics"`
	WrongPortuguese    int              `json:"wrongPortuguese"`
	WrongMathematics   int              `json:"wrongMathematics"`
	TotalPerSubject    int              `json:"totalPerSubject"`
	PortugueseErrors   []QuestionReview `json:"portugueseErrors"`
	MathematicsErrors  []QuestionReview `json:"mathematicsErrors"`
}

type StudentService struct {
	DatasetRepo *repository.DatasetRepository
}

func NewStudentService(datasetRepo *repository.DatasetRepository) *StudentService {
	return &StudentService{DatasetRepo: datasetRepo}
}

func subjectName(code string) string {
	switch code {
	case util.SubjectCodePortuguese:
		return util.SubjectPortuguese
	case util.SubjectCodeMathematics:
		return util.SubjectMathematics
	}
	return code
}

func toReview(row model.QuestionResult) QuestionReview {
	return QuestionReview{
		QuestionNumber: row.QuestionNumber,
		SubjectCode:    row.SubjectCode,
		Subject:        subjectName(row.SubjectCode),
		Content:        row.Content,
		Descriptor:     row.Descriptor,
		LessonURL:      row.LessonURL,
		QuestionURL:    row.QuestionURL,
	}
}

// Summary builds the per-subject aggregate for one student.
func (s *StudentService) Summary(ra int) (*StudentSummary, error) {
	rows, err := s.DatasetRepo.FindByRA(ra)
	if err != nil {
		return nil, err
	}

	summary := &StudentSummary{RA: ra, TotalPerSubject: util.QuestionsPerSubject}
	for _, row := range rows {
		if summary.Name == "" {
			summary.Name = row.StudentName
		}
		switch row.SubjectCode {
		case util.SubjectCodePortuguese:
			if row.Correct {
				summary.CorrectPortuguese++
			}
			if row.Wrong {
				summary.WrongPortuguese++
				summary.PortugueseErrors = append(summary.PortugueseErrors, toReview(row))
			}
		case util.SubjectCodeMathematics:
			if row.Correct {
				summary.CorrectMathematics++
			}
			if row.Wrong {
				summary.WrongMathematics++
				summary.MathematicsErrors = append(summary.MathematicsErrors, toReview(row))
			}
		}
	}
	return summary, nil
}

// Question returns one reviewable question row for the student.
func (s *StudentService) Question(ra int, subjectCode string, questionNumber int) (*QuestionReview, error) {
	row, err := s.DatasetRepo.FindQuestion(ra, subjectCode, questionNumber)
	if err != nil {
		return nil, err
	}
	review := toReview(*row)
	return &review, nil
}
