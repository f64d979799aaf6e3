package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// handleGetMovie serves the detail view for a single movie, with its
// episodes, actors and reviews, and bumps the view counter.
func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	movie, err := s.store.GetMovieByID(movieID)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "Movie not found")
		return
	}

	// View counting must not fail the page; the increment is a single
	// atomic update in the store.
	if err := s.store.IncrementViewCount(movieID); err != nil {
		log.Printf("Failed to increment view count for movie %d: %v", movieID, err)
	} else {
		movie.TotalView++
	}

	RespondWithJSON(w, http.StatusOK, movie)
}

func (s *Server) handleAddReview(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	var payload struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if strings.TrimSpace(payload.Content) == "" {
		RespondWithError(w, http.StatusBadRequest, "Review content cannot be empty")
		return
	}

	review, err := s.store.AddReview(movieID, user.ID, payload.Content)
	if err != nil {
		log.Printf("Failed to add review to movie %d: %v", movieID, err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to add review")
		return
	}
	RespondWithJSON(w, http.StatusCreated, review)
}

func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	if err := s.store.AddFavorite(movieID, user.ID); err != nil {
		log.Printf("Failed to favorite movie %d: %v", movieID, err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to add favorite")
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	if err := s.store.RemoveFavorite(movieID, user.ID); err != nil {
		log.Printf("Failed to unfavorite movie %d: %v", movieID, err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRecordWatch(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}
	episodeNumber, err := strconv.Atoi(chi.URLParam(r, "episodeNumber"))
	if err != nil || episodeNumber < 0 {
		RespondWithError(w, http.StatusBadRequest, "Invalid episode number")
		return
	}

	if err := s.store.RecordWatch(movieID, user.ID, episodeNumber); err != nil {
		log.Printf("Failed to record watch for movie %d: %v", movieID, err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to record watch history")
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
