// Validates an assessment results CSV before it is deployed.
//
// Loads the file through the same parser the server uses and prints a
// per-student summary, so a malformed export is caught before students hit
// the login screen.
//
// Usage: go run scripts/validate_dataset.go [path/to/resultados.csv]
package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"aluno_ai_backend/internal/config"
	"aluno_ai_backend/internal/repository"
	"aluno_ai_backend/internal/util"
)

func main() {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	} else {
		cfg, err := config.LoadConfig("configs")
		if err != nil {
			log.Fatalf("no path argument and config load failed: %v", err)
		}
		path = cfg.Dataset.Path
	}

	repo := repository.NewDatasetRepository(path)
	if err := repo.Load(); err != nil {
		log.Fatalf("dataset is invalid: %v", err)
	}

	fmt.Printf("OK: %s (%d rows)\n", path, repo.Count())

	type studentStats struct {
		ra   int
		name string
		port int
		mat  int
	}

	stats := map[int]*studentStats{}
	for _, row := range repo.Rows() {
		s, ok := stats[row.RA]
		if !ok {
			s = &studentStats{ra: row.RA, name: row.StudentName}
			stats[row.RA] = s
		}
		switch row.SubjectCode {
		case util.SubjectCodePortuguese:
			s.port++
		case util.SubjectCodeMathematics:
			s.mat++
		}
	}

	ordered := make([]*studentStats, 0, len(stats))
	for _, s := range stats {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ra < ordered[j].ra })

	fmt.Printf("%d students:\n", len(ordered))
	for _, s := range ordered {
		warn := ""
		if s.port != util.QuestionsPerSubject || s.mat != util.QuestionsPerSubject {
			warn = "  <- incomplete"
		}
		fmt.Printf("  RA %d  %-30s PORT %2d  MAT %2d%s\n", s.ra, s.name, s.port, s.mat, warn)
	}
}
