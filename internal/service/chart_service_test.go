package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chartSummary(t *testing.T) *StudentSummary {
	t.Helper()
	students := NewStudentService(newTestDataset(t))
	summary, err := students.Summary(123456)
	require.NoError(t, err)
	return summary
}

func TestSubjectGauges(t *testing.T) {
	charts := NewChartService()
	gauges := charts.SubjectGauges(chartSummary(t))

	require.Len(t, gauges, 2)

	port := gauges[0]
	assert.Equal(t, "Portuguese", port.Subject)
	assert.Equal(t, 1, port.Value)
	assert.Equal(t, 18, port.Max)
	assert.Equal(t, 9, port.DeltaRef)
	assert.Equal(t, 14, port.Threshold)
	assert.Equal(t, "#10b981", port.BarColor)
	require.Len(t, port.Bands, 3)
	assert.Equal(t, GaugeBand{0, 6, "lightcoral"}, port.Bands[0])
	assert.Equal(t, GaugeBand{12, 18, "lightgreen"}, port.Bands[2])

	mat := gauges[1]
	assert.Equal(t, "Mathematics", mat.Subject)
	assert.Equal(t, "#3b82f6", mat.BarColor)
}

func TestPriorityContentsOrdering(t *testing.T) {
	charts := NewChartService()
	bars := charts.PriorityContents(chartSummary(t))

	require.Len(t, bars, 2)
	assert.Equal(t, "Funções de 2º grau", bars[0].Content)
	assert.Equal(t, 2, bars[0].Errors)
	assert.Equal(t, "Mathematics", bars[0].Subject)
	assert.Equal(t, "Coesão textual", bars[1].Content)
	assert.Equal(t, 1, bars[1].Errors)
}

func TestPriorityContentsEmpty(t *testing.T) {
	charts := NewChartService()
	assert.Empty(t, charts.PriorityContents(&StudentSummary{}))
}
