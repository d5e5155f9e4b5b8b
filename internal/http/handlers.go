package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/petanque-ratings/internal/parser"
	"github.com/mauv0809/petanque-ratings/internal/processor"
	"github.com/mauv0809/petanque-ratings/internal/results"
	"github.com/mauv0809/petanque-ratings/internal/tournament"
	"github.com/mauv0809/petanque-ratings/internal/workbook"
	"github.com/slack-go/slack"
)

// multipartMemory is how much of an upload is held in memory before the
// multipart reader spills to temporary files.
const multipartMemory = 8 << 20

// HealthCheckHandler returns a handler that responds with 200 OK.
func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK!"))
	}
}

// ListPlayersHandler returns a handler that lists the roster.
func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Roster.GetAllPlayers(r.Context())
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			log.Error("Failed to get players from store", "error", err)
			return
		}
		if players == nil {
			players = []tournament.Player{}
		}
		respondWithJSON(w, http.StatusOK, players)
	}
}

// AddPlayerHandler returns a handler that adds a roster entry from a JSON body.
func (s *Server) AddPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addPlayerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithErrors(w, http.StatusBadRequest, "request body must be JSON")
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			respondWithErrors(w, http.StatusBadRequest, "name is required")
			return
		}
		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would add player", "name", req.Name, "gender", req.Gender)
			respondWithJSON(w, http.StatusOK, tournament.Player{Name: req.Name, Gender: req.Gender})
			return
		}

		player, err := s.Roster.AddPlayer(r.Context(), req.Name, strings.TrimSpace(req.Gender))
		if err != nil {
			http.Error(w, "Failed to add player", http.StatusInternalServerError)
			log.Error("Failed to add player", "error", err, "name", req.Name)
			return
		}
		log.Info("Player added", "id", player.ID, "name", player.Name)
		respondWithJSON(w, http.StatusCreated, player)
	}
}

// UploadResultsHandler returns a handler that imports a results workbook
// posted as multipart form data.
func (s *Server) UploadResultsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := s.Cfg.MaxUploadBytes()
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				s.rejectUpload(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds %d bytes", limit))
				return
			}
			s.rejectUpload(w, http.StatusBadRequest, "request must be multipart form data")
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			s.rejectUpload(w, http.StatusBadRequest, "file is required")
			return
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			s.rejectUpload(w, http.StatusBadRequest, "failed to read uploaded file")
			return
		}

		category, err := strconv.Atoi(strings.TrimSpace(r.FormValue("category")))
		if err != nil {
			s.rejectUpload(w, http.StatusBadRequest, "category must be 1 or 2")
			return
		}

		summary, err := s.Processor.ImportResults(r.Context(), processor.ImportRequest{
			TournamentID: strings.TrimSpace(r.FormValue("tournament_id")),
			Name:         strings.TrimSpace(r.FormValue("name")),
			Category:     tournament.Category(category),
			Workbook:     data,
			DryRun:       isDryRunFromContext(r),
		})
		if err != nil {
			status := importErrorStatus(err)
			if status == http.StatusInternalServerError {
				log.Error("Failed to import results", "error", err)
				respondWithErrors(w, status, "failed to import results")
				return
			}
			respondWithErrors(w, status, parser.Messages(err)...)
			return
		}
		respondWithJSON(w, http.StatusOK, summary)
	}
}

// rejectUpload answers an upload that never reached the processor and counts
// it as a failed upload.
func (s *Server) rejectUpload(w http.ResponseWriter, status int, message string) {
	s.Metrics.IncUploadsFailed()
	respondWithErrors(w, status, message)
}

// importErrorStatus maps an import failure to the status reported to the uploader.
func importErrorStatus(err error) int {
	var validation *parser.ValidationError
	switch {
	case errors.Is(err, processor.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.As(err, &validation),
		errors.Is(err, parser.ErrStructural),
		errors.Is(err, parser.ErrNoQualifyingData),
		errors.Is(err, parser.ErrUnsupportedGridSize),
		errors.Is(err, workbook.ErrInvalidWorkbook):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// GetResultsHandler returns a handler that serves the stored results of one tournament.
func (s *Server) GetResultsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.URL.Query().Get("tournament_id"))
		if id == "" {
			respondWithErrors(w, http.StatusBadRequest, "tournament_id is required")
			return
		}

		t, res, err := s.loadResults(r, id)
		if errors.Is(err, results.ErrTournamentNotFound) {
			respondWithErrors(w, http.StatusNotFound, fmt.Sprintf("tournament %s not found", id))
			return
		}
		if err != nil {
			http.Error(w, "Failed to get results", http.StatusInternalServerError)
			log.Error("Failed to get results from store", "error", err, "tournament", id)
			return
		}
		respondWithJSON(w, http.StatusOK, resultsResponse{Tournament: t, Results: res})
	}
}

func (s *Server) loadResults(r *http.Request, id string) (tournament.Tournament, []tournament.TournamentResult, error) {
	t, err := s.Results.GetTournament(r.Context(), id)
	if err != nil {
		return tournament.Tournament{}, nil, err
	}
	res, err := s.Results.GetResults(r.Context(), id)
	if err != nil {
		return tournament.Tournament{}, nil, err
	}
	if res == nil {
		res = []tournament.TournamentResult{}
	}
	return t, res, nil
}

// ResultsCommandHandler returns a handler for the /results Slack command.
func (s *Server) ResultsCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		id := strings.TrimSpace(r.FormValue("text"))
		if id == "" {
			http.Error(w, "Tournament id is required.", http.StatusBadRequest)
			return
		}

		log.Info("Received results command", "tournament", id)
		var msg any
		t, res, err := s.loadResults(r, id)
		switch {
		case errors.Is(err, results.ErrTournamentNotFound):
			msg, err = s.Notifier.FormatTournamentNotFoundResponse(id)
		case err != nil:
			http.Error(w, "Failed to get results", http.StatusInternalServerError)
			log.Error("Failed to get results from store", "error", err, "tournament", id)
			return
		default:
			msg, err = s.Notifier.FormatResultsResponse(t, res)
		}
		if err != nil {
			http.Error(w, "Failed to format results", http.StatusInternalServerError)
			log.Error("Failed to format results", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}

func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	respondWithJSON(w, http.StatusOK, msg)
}

func respondWithErrors(w http.ResponseWriter, status int, messages ...string) {
	respondWithJSON(w, status, errorResponse{Errors: messages})
}

func respondWithJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response to JSON", "error", err)
	}
}
