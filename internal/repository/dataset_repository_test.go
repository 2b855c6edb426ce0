package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aluno_ai_backend/internal/util"
)

const sampleCSV = `RA,Nome,Disciplina,acerto,erro,questao_numero,Conteúdo,Descritor,Aula,Questão
123456,Maria Silva,PORT,1,0,1,Interpretação de texto,D01,https://example.com/aula1,https://drive.google.com/file/d/1AbcDEFghiJKLmnoPQRstuVWxyz0123456/view
123456,Maria Silva,PORT,0,1,2,Coesão textual,D02,https://example.com/aula2,https://drive.google.com/file/d/1AbcDEFghiJKLmnoPQRstuVWxyz0123457/view
123456,Maria Silva,MAT,0,1,1,Funções de 2º grau,D10,https://example.com/aula3,https://drive.google.com/file/d/1AbcDEFghiJKLmnoPQRstuVWxyz0123458/view
789012,João Santos,MAT,1,0,1,Geometria plana,D11,https://example.com/aula4,https://drive.google.com/file/d/1AbcDEFghiJKLmnoPQRstuVWxyz0123459/view
not-a-ra,Broken Row,MAT,1,0,2,Estatística,D12,,
`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDatasetLoadAndLookup(t *testing.T) {
	repo := NewDatasetRepository(writeDataset(t, sampleCSV))

	assert.False(t, repo.Loaded())
	require.NoError(t, repo.Load())
	assert.True(t, repo.Loaded())
	assert.Equal(t, 4, repo.Count(), "malformed RA row is skipped")

	rows, err := repo.FindByRA(123456)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Maria Silva", rows[0].StudentName)
	assert.Equal(t, "PORT", rows[0].SubjectCode)
	assert.True(t, rows[0].Correct)
	assert.True(t, rows[1].Wrong)
	assert.Equal(t, "Funções de 2º grau", rows[2].Content)
}

func TestDatasetUnknownStudent(t *testing.T) {
	repo := NewDatasetRepository(writeDataset(t, sampleCSV))
	require.NoError(t, repo.Load())

	_, err := repo.FindByRA(999999)
	assert.ErrorIs(t, err, util.ErrStudentNotFound)
}

func TestDatasetFindQuestion(t *testing.T) {
	repo := NewDatasetRepository(writeDataset(t, sampleCSV))
	require.NoError(t, repo.Load())

	q, err := repo.FindQuestion(123456, "MAT", 1)
	require.NoError(t, err)
	assert.Equal(t, "Funções de 2º grau", q.Content)

	_, err = repo.FindQuestion(123456, "MAT", 7)
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}

func TestDatasetNotLoaded(t *testing.T) {
	repo := NewDatasetRepository(writeDataset(t, sampleCSV))

	_, err := repo.FindByRA(123456)
	assert.ErrorIs(t, err, util.ErrDatasetNotLoaded)
}

func TestDatasetMissingColumn(t *testing.T) {
	repo := NewDatasetRepository(writeDataset(t, "RA,Nome\n1,Maria\n"))
	err := repo.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Disciplina")
}

func TestDatasetMissingFile(t *testing.T) {
	repo := NewDatasetRepository(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, repo.Load())
}
