package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"aluno_ai_backend/pkg/logger"
	"aluno_ai_backend/pkg/monitoring"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	redis "github.com/go-redis/redis/v8"
)

const (
	driveDownloadURL = "https://drive.google.com/uc?export=download&id=%s"
	documentTimeout  = 45 * time.Second
	documentCacheTTL = 24 * time.Hour
)

// file-id patterns for the Drive share link formats that appear in the
// dataset exports
var driveFileIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/d/([a-zA-Z0-9_-]{33,44})`),
	regexp.MustCompile(`id=([a-zA-Z0-9_-]{33,44})`),
	regexp.MustCompile(`open\?id=([a-zA-Z0-9_-]{33,44})`),
	regexp.MustCompile(`file/d/([a-zA-Z0-9_-]+)`),
}

var driveConfirmPattern = regexp.MustCompile(`confirm=([^&]+)`)

// DocumentService downloads commented-answer PDFs from Google Drive and
// extracts their text. Extracted text is cached in Redis and the raw PDF is
// mirrored to storage, both best-effort.
type DocumentService struct {
	Redis   *redis.Client
	Storage *StorageService

	client *http.Client
}

func NewDocumentService(redisClient *redis.Client, storage *StorageService) *DocumentService {
	return &DocumentService{
		Redis:   redisClient,
		Storage: storage,
		client:  &http.Client{Timeout: documentTimeout},
	}
}

// DriveFileID extracts the file id from a Drive share URL.
func DriveFileID(url string) (string, bool) {
	for _, p := range driveFileIDPatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// FetchQuestionText returns the text of the question's commented-answer PDF.
func (s *DocumentService) FetchQuestionText(ctx context.Context, url string) (string, error) {
	fileID, ok := DriveFileID(url)
	if !ok {
		return "", fmt.Errorf("no file id in url %q", url)
	}

	cacheKey := "pdftext:" + fileID
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			monitoring.DocumentFetchCounter.WithLabelValues("cache_hit").Inc()
			return cached, nil
		}
	}

	raw, err := s.download(ctx, fileID)
	if err != nil {
		monitoring.DocumentFetchCounter.WithLabelValues("error").Inc()
		return "", err
	}

	text, err := extractPDFText(raw)
	if err != nil {
		monitoring.DocumentFetchCounter.WithLabelValues("error").Inc()
		return "", err
	}
	monitoring.DocumentFetchCounter.WithLabelValues("success").Inc()

	if s.Redis != nil {
		if err := s.Redis.Set(ctx, cacheKey, text, documentCacheTTL).Err(); err != nil {
			logger.Log.Warn("failed to cache document text", zap.String("fileId", fileID), zap.Error(err))
		}
	}
	if s.Storage != nil {
		if _, err := s.Storage.Upload(ctx, "questions/"+fileID+".pdf", bytes.NewReader(raw), int64(len(raw)), "application/pdf"); err != nil {
			logger.Log.Warn("failed to mirror question pdf", zap.String("fileId", fileID), zap.Error(err))
		}
	}

	return text, nil
}

// download fetches the PDF bytes, following Drive's virus-scan confirmation
// page when it appears instead of the file.
func (s *DocumentService) download(ctx context.Context, fileID string) ([]byte, error) {
	body, contentType, err := s.get(ctx, fmt.Sprintf(driveDownloadURL, fileID))
	if err != nil {
		return nil, err
	}

	if isPDF(body, contentType) {
		return body, nil
	}

	if strings.Contains(contentType, "text/html") && strings.Contains(strings.ToLower(string(body)), "google") {
		if m := driveConfirmPattern.FindSubmatch(body); m != nil {
			confirmURL := fmt.Sprintf(driveDownloadURL+"&confirm=%s", fileID, string(m[1]))
			body, contentType, err = s.get(ctx, confirmURL)
			if err != nil {
				return nil, err
			}
			if isPDF(body, contentType) {
				return body, nil
			}
		}
	}

	return nil, fmt.Errorf("drive returned non-pdf content for file %s", fileID)
}

func (s *DocumentService) get(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/pdf, text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("drive download failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return body, strings.ToLower(resp.Header.Get("Content-Type")), nil
}

func isPDF(body []byte, contentType string) bool {
	return strings.Contains(contentType, "pdf") || bytes.HasPrefix(body, []byte("%PDF"))
}

// extractPDFText concatenates the plain text of every page with page
// separators, the format the pedagogical extractors expect.
func extractPDFText(raw []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}
		fmt.Fprintf(&sb, "--- Page %d ---\n%s\n\n", i, text)
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", fmt.Errorf("pdf contains no extractable text")
	}
	return sb.String(), nil
}
