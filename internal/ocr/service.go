// Package ocr turns uploaded menu photos into raw text.
// It is an external collaborator of the pipeline: per-file failures
// degrade to empty text, never to a request failure.
package ocr

import (
	"context"
	"io"
	"log"
	"mime/multipart"
	"os"

	"golang.org/x/sync/errgroup"
)

type Service struct{}

func NewService() *Service { return &Service{} }

// ExtractAll OCRs every uploaded file concurrently and returns the
// texts in upload order. A file that fails OCR yields an empty string.
func (s *Service) ExtractAll(ctx context.Context, files []*multipart.FileHeader, requestID string) []string {
	texts := make([]string, len(files))

	g, _ := errgroup.WithContext(ctx)
	for i, fh := range files {
		i, fh := i, fh
		g.Go(func() error {
			text, err := s.extractOne(fh)
			if err != nil {
				log.Printf("[%s] ocr failed for %s: %v", requestID, fh.Filename, err)
				return nil
			}
			log.Printf("[%s] ocr completed for %s (%d bytes)", requestID, fh.Filename, len(text))
			texts[i] = text
			return nil
		})
	}
	_ = g.Wait()

	return texts
}

func (s *Service) extractOne(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	tmp, err := os.CreateTemp("", "menu-*.jpg")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, f); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	return ExtractText(tmp.Name())
}
