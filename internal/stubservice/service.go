// Package stubservice is a reference implementation of the OCR service
// contract the harness checks against: multipart uploads on /ocr, JSON
// bodies with extractedText, and FileValidationError rejections for
// payloads that look malicious. The harness's own end-to-end tests run
// against it, and it can be served standalone for local work.
package stubservice

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

const maxUploadBytes = 32 << 20

// payloads carrying any of these are rejected through the security contract
var maliciousMarkers = [][]byte{
	[]byte("<script"),
	[]byte("<?php"),
	[]byte("/JavaScript"),
	[]byte("X5O!P%@AP"), // eicar test string prefix
}

type Engine interface {
	Extract(fileName string, data []byte) (string, error)
}

type Service struct {
	engine Engine
	rpm    int

	log *slog.Logger
}

func New(engine Engine, rpm int, log *slog.Logger) *Service {
	return &Service{engine: engine, rpm: rpm, log: log.WithGroup("STUB")}
}

func (s *Service) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(httprate.LimitByIP(s.rpm, time.Minute))

	r.Get("/", s.statusHandler)
	r.Post("/ocr", s.ocrHandler)

	return r
}

func (s *Service) statusHandler(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Service) ocrHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		s.respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "BadRequest",
			"message": "image file is required",
		})

		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "BadRequest",
			"message": "cannot read image part",
		})

		return
	}

	if marker := findMaliciousMarker(data); marker != "" {
		s.log.Info("rejecting upload",
			slog.String("file", header.Filename),
			slog.String("marker", marker),
		)
		s.respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "FileValidationError",
			"message": fmt.Sprintf("detected malicious content in %s", header.Filename),
		})

		return
	}

	text, err := s.engine.Extract(header.Filename, data)
	if err != nil {
		s.log.Error("extraction failed",
			slog.String("file", header.Filename),
			slog.String("err", err.Error()),
		)
		s.respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "InternalServerError",
			"message": "extraction failed",
		})

		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"extractedText": text})
}

func (s *Service) respondJSON(w http.ResponseWriter, status int, resp any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Error("writing response", slog.String("err", err.Error()))
	}
}

func findMaliciousMarker(data []byte) string {
	for _, marker := range maliciousMarkers {
		if bytes.Contains(data, marker) {
			return string(marker)
		}
	}

	return ""
}
