package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"voicecoach/models"
	"voicecoach/services"

	"github.com/gorilla/mux"
)

// TutorHandler exposes the content catalog and the mode router.
type TutorHandler struct {
	contentService *services.ContentService
	router         *services.ModeRouter
}

func NewTutorHandler(contentService *services.ContentService, router *services.ModeRouter) *TutorHandler {
	return &TutorHandler{contentService: contentService, router: router}
}

func (h *TutorHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/concepts", h.ListConcepts).Methods("GET")
	router.HandleFunc("/concepts/{id}", h.GetConcept).Methods("GET")
	router.HandleFunc("/mode", h.GetMode).Methods("GET")
	router.HandleFunc("/mode", h.SwitchMode).Methods("POST")
}

func (h *TutorHandler) ListConcepts(w http.ResponseWriter, r *http.Request) {
	concepts, err := h.contentService.List()
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSONResponse(w, http.StatusOK, concepts)
}

func (h *TutorHandler) GetConcept(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	concept, err := h.contentService.Lookup(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.writeErrorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		h.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, concept)
}

func (h *TutorHandler) GetMode(w http.ResponseWriter, r *http.Request) {
	mode, concept := h.router.Current()
	h.writeJSONResponse(w, http.StatusOK, map[string]string{
		"mode":    string(mode),
		"concept": concept,
		"voice":   models.VoiceForMode(mode),
	})
}

func (h *TutorHandler) SwitchMode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode    string `json:"mode"`
		Concept string `json:"concept"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode mode switch request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := h.router.Switch(req.Mode, req.Concept)
	if err != nil {
		if errors.Is(err, models.ErrInvalidMode) {
			h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		h.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, result)
}

func (h *TutorHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *TutorHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
