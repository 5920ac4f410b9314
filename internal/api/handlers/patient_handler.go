package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dentalflow/backend/internal/domain/entities"
)

// PatientService is the part of the patient service the handler needs
type PatientService interface {
	Register(ctx context.Context, patient *entities.Patient) error
	Get(ctx context.Context, id string) (*entities.Patient, error)
	List(ctx context.Context) ([]entities.Patient, error)
	Search(ctx context.Context, query string) ([]entities.Patient, error)
	Update(ctx context.Context, patient *entities.Patient) error
}

// PatientLedgerService is the per-patient slice of the ledger service
type PatientLedgerService interface {
	ComputeBalance(ctx context.Context, patientID string) (entities.PatientBalance, error)
	ListTreatmentsByPatient(ctx context.Context, patientID string) ([]entities.Treatment, error)
	ListPaymentsByPatient(ctx context.Context, patientID string) ([]entities.Payment, error)
}

// PatientHandler handles patient-related HTTP requests
type PatientHandler struct {
	patients PatientService
	ledger   PatientLedgerService
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(patients PatientService, ledger PatientLedgerService) *PatientHandler {
	return &PatientHandler{
		patients: patients,
		ledger:   ledger,
	}
}

// ListPatients handles GET /api/patients
func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	// A query parameter switches the listing into search mode
	if query := r.URL.Query().Get("q"); query != "" {
		patients, err := h.patients.Search(r.Context(), query)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"patients": patients,
			"count":    len(patients),
		})
		return
	}

	patients, err := h.patients.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"patients": patients,
		"count":    len(patients),
	})
}

// GetPatient handles GET /api/patients/{id}
func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID := r.PathValue("id")
	if patientID == "" {
		respondWithError(w, http.StatusBadRequest, "patient ID is required")
		return
	}

	patient, err := h.patients.Get(r.Context(), patientID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, patient)
}

// CreatePatient handles POST /api/patients
func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var patient entities.Patient
	if err := json.NewDecoder(r.Body).Decode(&patient); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.patients.Register(r.Context(), &patient); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, patient)
}

// UpdatePatient handles PATCH /api/patients/{id}. Fields absent from the
// body keep their stored value; decoding over the fetched record gives the
// merge for free.
func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID := r.PathValue("id")
	if patientID == "" {
		respondWithError(w, http.StatusBadRequest, "patient ID is required")
		return
	}

	patient, err := h.patients.Get(r.Context(), patientID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(patient); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	patient.ID = patientID

	if err := h.patients.Update(r.Context(), patient); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, patient)
}

// GetPatientBalance handles GET /api/patients/{id}/balance
func (h *PatientHandler) GetPatientBalance(w http.ResponseWriter, r *http.Request) {
	patientID := r.PathValue("id")
	if patientID == "" {
		respondWithError(w, http.StatusBadRequest, "patient ID is required")
		return
	}

	balance, err := h.ledger.ComputeBalance(r.Context(), patientID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, balance)
}

// GetPatientTreatments handles GET /api/patients/{id}/treatments
func (h *PatientHandler) GetPatientTreatments(w http.ResponseWriter, r *http.Request) {
	patientID := r.PathValue("id")
	if patientID == "" {
		respondWithError(w, http.StatusBadRequest, "patient ID is required")
		return
	}

	treatments, err := h.ledger.ListTreatmentsByPatient(r.Context(), patientID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"treatments": treatments,
		"count":      len(treatments),
	})
}

// GetPatientPayments handles GET /api/patients/{id}/payments
func (h *PatientHandler) GetPatientPayments(w http.ResponseWriter, r *http.Request) {
	patientID := r.PathValue("id")
	if patientID == "" {
		respondWithError(w, http.StatusBadRequest, "patient ID is required")
		return
	}

	payments, err := h.ledger.ListPaymentsByPatient(r.Context(), patientID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"payments": payments,
		"count":    len(payments),
	})
}
