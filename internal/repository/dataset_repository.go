package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"aluno_ai_backend/internal/model"
	"aluno_ai_backend/internal/util"
)

// DatasetRepository holds the assessment results CSV in memory. The file is
// read once at startup and can be reloaded by an admin after a new export is
// dropped in place. All reads go through the lock so a reload never exposes
// a half-built slice.
type DatasetRepository struct {
	path string

	mu       sync.RWMutex
	rows     []model.QuestionResult
	loadedAt time.Time
}

func NewDatasetRepository(path string) *DatasetRepository {
	return &DatasetRepository{path: path}
}

// expected CSV header names, as produced by the assessment export
const (
	colRA         = "RA"
	colName       = "Nome"
	colSubject    = "Disciplina"
	colCorrect    = "acerto"
	colWrong      = "erro"
	colQuestion   = "questao_numero"
	colContent    = "Conteúdo"
	colDescriptor = "Descritor"
	colLesson     = "Aula"
	colQuestionPD = "Questão"
)

// Load reads and parses the CSV, replacing the in-memory rows on success.
// Rows with a malformed RA or question number are skipped rather than
// failing the whole load.
func (r *DatasetRepository) Load() error {
	f, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("parse dataset: %w", err)
	}
	if len(records) < 1 {
		return util.ErrDatasetNotLoaded
	}

	idx := map[string]int{}
	for i, h := range records[0] {
		idx[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{colRA, colName, colSubject, colCorrect, colWrong, colQuestion} {
		if _, ok := idx[required]; !ok {
			return fmt.Errorf("dataset missing column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	rows := make([]model.QuestionResult, 0, len(records)-1)
	for _, record := range records[1:] {
		ra, err := strconv.Atoi(field(record, colRA))
		if err != nil {
			continue
		}
		number, err := strconv.Atoi(field(record, colQuestion))
		if err != nil {
			continue
		}

		rows = append(rows, model.QuestionResult{
			RA:             ra,
			StudentName:    field(record, colName),
			SubjectCode:    strings.ToUpper(field(record, colSubject)),
			QuestionNumber: number,
			Correct:        field(record, colCorrect) == "1",
			Wrong:          field(record, colWrong) == "1",
			Content:        field(record, colContent),
			Descriptor:     field(record, colDescriptor),
			LessonURL:      field(record, colLesson),
			QuestionURL:    field(record, colQuestionPD),
		})
	}

	r.mu.Lock()
	r.rows = rows
	r.loadedAt = time.Now()
	r.mu.Unlock()
	return nil
}

// Loaded reports whether a dataset is currently in memory.
func (r *DatasetRepository) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows) > 0
}

// LoadedAt returns the time of the last successful load.
func (r *DatasetRepository) LoadedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loadedAt
}

// Count returns the number of rows in memory.
func (r *DatasetRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows)
}

// Rows returns a copy of every loaded row.
func (r *DatasetRepository) Rows() []model.QuestionResult {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := make([]model.QuestionResult, len(r.rows))
	copy(rows, r.rows)
	return rows
}

// FindByRA returns all question rows belonging to a student, or
// ErrStudentNotFound when the RA does not appear in the dataset.
func (r *DatasetRepository) FindByRA(ra int) ([]model.QuestionResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.rows) == 0 {
		return nil, util.ErrDatasetNotLoaded
	}

	var out []model.QuestionResult
	for _, row := range r.rows {
		if row.RA == ra {
			out = append(out, row)
		}
	}
	if len(out) == 0 {
		return nil, util.ErrStudentNotFound
	}
	return out, nil
}

// FindQuestion returns a single student's row for one question of a subject.
func (r *DatasetRepository) FindQuestion(ra int, subjectCode string, questionNumber int) (*model.QuestionResult, error) {
	rows, err := r.FindByRA(ra)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].SubjectCode == subjectCode && rows[i].QuestionNumber == questionNumber {
			return &rows[i], nil
		}
	}
	return nil, util.ErrQuestionNotFound
}
