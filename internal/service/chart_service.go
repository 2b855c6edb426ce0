package service

import (
	"sort"

	"aluno_ai_backend/internal/util"
)

// Gauge band and threshold values match the frontend speedometer widget:
// red up to 6 correct, yellow to 12, green to 18, goal line at 14, delta
// against the midpoint of 9.
const (
	gaugeMax       = 18
	gaugeThreshold = 14
	gaugeDeltaRef  = 9
)

const (
	portugueseBarColor  = "#10b981"
	mathematicsBarColor = "#3b82f6"
)

type GaugeBand struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Color string `json:"color"`
}

// GaugeChart is a render-ready speedometer spec for one subject.
type GaugeChart struct {
	Subject   string      `json:"subject"`
	Value     int         `json:"value"`
	Max       int         `json:"max"`
	DeltaRef  int         `json:"deltaRef"`
	Threshold int         `json:"threshold"`
	BarColor  string      `json:"barColor"`
	Bands     []GaugeBand `json:"bands"`
}

// ContentErrors is one bar of the priority contents chart: a content tag and
// how many questions of it the student missed.
type ContentErrors struct {
	Content string `json:"content"`
	Subject string `json:"subject"`
	Errors  int    `json:"errors"`
	Color   string `json:"color"`
}

type ChartService struct{}

func NewChartService() *ChartService {
	return &ChartService{}
}

func gauge(subject string, value int, color string) GaugeChart {
	return GaugeChart{
		Subject:   subject,
		Value:     value,
		Max:       gaugeMax,
		DeltaRef:  gaugeDeltaRef,
		Threshold: gaugeThreshold,
		BarColor:  color,
		Bands: []GaugeBand{
			{0, 6, "lightcoral"},
			{6, 12, "yellow"},
			{12, 18, "lightgreen"},
		},
	}
}

// SubjectGauges builds the two per-subject speedometers.
func (s *ChartService) SubjectGauges(summary *StudentSummary) []GaugeChart {
	return []GaugeChart{
		gauge(util.SubjectPortuguese, summary.CorrectPortuguese, portugueseBarColor),
		gauge(util.SubjectMathematics, summary.CorrectMathematics, mathematicsBarColor),
	}
}

// PriorityContents aggregates the student's errors by content tag, most
// missed first. Ties keep Portuguese before Mathematics, then name order,
// so the chart is stable between reloads.
func (s *ChartService) PriorityContents(summary *StudentSummary) []ContentErrors {
	count := func(reviews []QuestionReview, subject, color string) []ContentErrors {
		byContent := map[string]int{}
		for _, r := range reviews {
			byContent[r.Content]++
		}
		out := make([]ContentErrors, 0, len(byContent))
		for content, errors := range byContent {
			out = append(out, ContentErrors{Content: content, Subject: subject, Errors: errors, Color: color})
		}
		return out
	}

	bars := count(summary.PortugueseErrors, util.SubjectPortuguese, portugueseBarColor)
	bars = append(bars, count(summary.MathematicsErrors, util.SubjectMathematics, mathematicsBarColor)...)

	sort.SliceStable(bars, func(i, j int) bool {
		if bars[i].Errors != bars[j].Errors {
			return bars[i].Errors > bars[j].Errors
		}
		if bars[i].Subject != bars[j].Subject {
			return bars[i].Subject == util.SubjectPortuguese
		}
		return bars[i].Content < bars[j].Content
	})
	return bars
}
