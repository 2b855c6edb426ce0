package util

const (
	DateFormat  = "2006-01-02"
	TimeFormat  = "2006-01-02 15:04:05"
	ClockFormat = "15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// Dataset subject codes as they appear in the performance CSV.
const (
	SubjectCodePortuguese  = "PORT"
	SubjectCodeMathematics = "MAT"
)

// Display names used by the AI personas and dashboard payloads.
const (
	SubjectPortuguese  = "Portuguese"
	SubjectMathematics = "Mathematics"
)

// QuestionsPerSubject is the fixed size of each subject's question block.
const QuestionsPerSubject = 18
