package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"voicecoach/models"
	"voicecoach/services"

	"github.com/gorilla/mux"
)

// WellnessHandler exposes the check-in, task, and reminder services over
// HTTP for dashboards and debugging; the voice session reaches the same
// services through the agent tools.
type WellnessHandler struct {
	checkinService  *services.CheckinService
	taskService     *services.TaskService
	reminderService *services.ReminderService
}

func NewWellnessHandler(checkinService *services.CheckinService, taskService *services.TaskService, reminderService *services.ReminderService) *WellnessHandler {
	return &WellnessHandler{
		checkinService:  checkinService,
		taskService:     taskService,
		reminderService: reminderService,
	}
}

func (h *WellnessHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/checkins", h.LogCheckin).Methods("POST")
	router.HandleFunc("/checkins", h.GetCheckins).Methods("GET")
	router.HandleFunc("/checkins/reflection", h.GetReflection).Methods("GET")
	router.HandleFunc("/tasks", h.CreateTask).Methods("POST")
	router.HandleFunc("/tasks", h.GetTasks).Methods("GET")
	router.HandleFunc("/tasks/complete", h.CompleteTask).Methods("POST")
	router.HandleFunc("/reminders", h.CreateReminder).Methods("POST")
	router.HandleFunc("/reminders", h.GetReminders).Methods("GET")
}

func (h *WellnessHandler) LogCheckin(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCheckinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode check-in request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	entry, err := h.checkinService.LogCheckin(&req)
	if err != nil {
		log.Printf("[ERROR] Check-in logging failed: %v", err)
		h.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusCreated, entry)
}

func (h *WellnessHandler) GetCheckins(w http.ResponseWriter, r *http.Request) {
	entries, err := h.checkinService.History()
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSONResponse(w, http.StatusOK, entries)
}

func (h *WellnessHandler) GetReflection(w http.ResponseWriter, r *http.Request) {
	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.writeErrorResponse(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = parsed
	}

	summary, err := h.checkinService.WeeklyReflection(days)
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]string{"reflection": summary})
}

func (h *WellnessHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode task request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	task, err := h.taskService.CreateTask(&req)
	if err != nil {
		log.Printf("[ERROR] Task creation failed: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusCreated, task)
}

func (h *WellnessHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.GetTasks(r.URL.Query().Get("status"))
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSONResponse(w, http.StatusOK, tasks)
}

func (h *WellnessHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TaskTitle string `json:"task_title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode complete task request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	task, err := h.taskService.CompleteTask(req.TaskTitle)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.writeErrorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("[ERROR] Task completion failed: %v", err)
		h.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, task)
}

func (h *WellnessHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode reminder request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	reminder, err := h.reminderService.CreateReminder(&req)
	if err != nil {
		log.Printf("[ERROR] Reminder creation failed: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusCreated, reminder)
}

func (h *WellnessHandler) GetReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.reminderService.GetReminders()
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSONResponse(w, http.StatusOK, reminders)
}

func (h *WellnessHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *WellnessHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
