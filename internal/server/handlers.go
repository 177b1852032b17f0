// internal/server/handlers.go
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"dnascan/internal/fasta"
	"dnascan/internal/history"
	"dnascan/internal/report"
	"dnascan/internal/version"
)

type analyzeRequest struct {
	FastaText string `json:"fasta_text"`
}

type compareRequest struct {
	FastaText1 string `json:"fasta_text1"`
	FastaText2 string `json:"fasta_text2"`
}

type uploadResponse struct {
	Success   bool   `json:"success"`
	Filename  string `json:"filename"`
	Header    string `json:"header"`
	Sequence  string `json:"sequence"`
	FastaText string `json:"fasta_text"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "dnascan DNA analysis API",
		"version": version.Version,
		"endpoints": map[string]string{
			"POST /analyze": "Analyze single DNA sequence",
			"POST /compare": "Compare two DNA sequences",
			"POST /upload":  "Upload FASTA file",
			"GET /history":  "Recent runs (when history is enabled)",
		},
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	rec, err := fasta.ParseValidated(req.FastaText)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rep, err := report.Analyze(rec.Header, rec.Sequence)
	if err != nil {
		s.log.Error("analyze failed", "err", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("internal error: %v", err))
		return
	}
	s.recordRun(r, history.KindAnalyze, rec.Header, len(rec.Sequence), rep)
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	rec1, err := fasta.ParseValidated(req.FastaText1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec2, err := fasta.ParseValidated(req.FastaText2)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rep := report.Compare(rec1.Header, rec1.Sequence, rec2.Header, rec2.Sequence)
	s.recordRun(r, history.KindCompare, rec1.Header, len(rec1.Sequence), rep)
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("bad multipart form: %v", err))
		return
	}
	file, hdr, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing form file 'file'")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("read upload: %v", err))
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
		return
	}
	rec, err := fasta.ParseValidated(string(data))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, uploadResponse{
		Success:   true,
		Filename:  hdr.Filename,
		Header:    rec.Header,
		Sequence:  rec.Sequence,
		FastaText: string(data),
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.hist == nil {
		writeError(w, http.StatusNotFound, "run history is disabled")
		return
	}
	limit := 20
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	runs, err := s.hist.Recent(r.Context(), limit)
	if err != nil {
		s.log.Error("history query failed", "err", err)
		writeError(w, http.StatusInternalServerError, "history unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

// decodeBody reads a JSON request body into v, replying 400 on failure.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "empty request body")
			return false
		}
		writeError(w, http.StatusBadRequest, fmt.Sprintf("bad request body: %v", err))
		return false
	}
	return true
}

// recordRun persists the response payload when history is enabled. Failures
// are logged, never surfaced to the client.
func (s *Server) recordRun(r *http.Request, kind, header string, length int, payload any) {
	if s.hist == nil {
		return
	}
	if err := s.hist.Record(r.Context(), kind, header, length, payload); err != nil {
		s.log.Error("record run", "kind", kind, "err", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
