package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"voicecoach/models"
	"voicecoach/services/quiz"

	"github.com/gorilla/mux"
)

type QuizHandler struct {
	service *quiz.Service
}

func NewQuizHandler(service *quiz.Service) *QuizHandler {
	return &QuizHandler{service: service}
}

func (h *QuizHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/quiz/conduct", h.ConductQuiz).Methods("POST")
}

func (h *QuizHandler) ConductQuiz(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received quiz conduct request")

	var req models.QuizConductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode quiz request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if req.ConceptID == "" {
		h.writeErrorResponse(w, http.StatusBadRequest, "concept_id is required")
		return
	}

	result, err := h.service.ConductConceptQuiz(req.ConceptID, req.Messages)
	if err != nil {
		log.Printf("[ERROR] Quiz conduct failed: %v", err)
		h.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, result)
}

func (h *QuizHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *QuizHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
