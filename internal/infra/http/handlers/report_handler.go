package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/nazorathub/nazorat-hub/internal/entity"
	"github.com/nazorathub/nazorat-hub/internal/infra/http/middleware"
	"github.com/nazorathub/nazorat-hub/internal/infra/spreadsheet"
	"github.com/nazorathub/nazorat-hub/internal/usecase"
)

type ReportHandler struct {
	reports usecase.ReportRepositoryInterface
	users   usecase.UserRepositoryInterface
	submit  *usecase.SubmitReportUseCase
	analyze *usecase.AnalyzeReportsUseCase
	log     *zap.Logger
}

func NewReportHandler(
	reports usecase.ReportRepositoryInterface,
	users usecase.UserRepositoryInterface,
	submit *usecase.SubmitReportUseCase,
	analyze *usecase.AnalyzeReportsUseCase,
	log *zap.Logger,
) *ReportHandler {
	return &ReportHandler{reports: reports, users: users, submit: submit, analyze: analyze, log: log}
}

// HandleList serves GET /reports, newest first. Optional filters: ?branch=,
// ?operator=, ?date=YYYY-MM-DD.
func (h *ReportHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	all, err := h.reports.All(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	branch := r.URL.Query().Get("branch")
	operator := r.URL.Query().Get("operator")
	date := r.URL.Query().Get("date")

	out := make([]entity.Report, 0, len(all))
	for _, rep := range all {
		if branch != "" && rep.BranchID != branch {
			continue
		}
		if operator != "" && rep.OperatorID != operator {
			continue
		}
		if date != "" && !strings.HasPrefix(rep.Timestamp, date) {
			continue
		}
		out = append(out, rep)
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleSubmit serves POST /reports.
func (h *ReportHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var report entity.Report
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Message: "Invalid JSON"})
		return
	}
	if report.OperatorID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Message: "operatorId is required"})
		return
	}

	stored, err := h.submit.Execute(r.Context(), report)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordReportSubmitted(string(stored.VisitStatus))
	writeJSON(w, http.StatusCreated, stored)
}

// HandleAnalyze serves POST /reports/analyze: AI commentary over the posted
// report set. Always answers 200; collaborator failure yields the fixed
// fallback text.
func (h *ReportHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var reports []entity.Report
	if err := json.NewDecoder(r.Body).Decode(&reports); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Message: "Invalid JSON"})
		return
	}
	writeJSON(w, http.StatusOK, h.analyze.Execute(r.Context(), reports))
}

// HandleArchiveExport serves GET /reports/archive/{date}/export as an xlsx
// download of that day's reports.
func (h *ReportHandler) HandleArchiveExport(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	all, err := h.reports.All(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	users, err := h.users.All(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	var rows []spreadsheet.ArchiveRow
	for _, rep := range all {
		if !strings.HasPrefix(rep.Timestamp, date) {
			continue
		}
		staff := names[rep.OperatorID]
		if staff == "" {
			staff = rep.OperatorName
		}
		rows = append(rows, spreadsheet.ArchiveRow{
			Date:   date,
			Staff:  staff,
			Client: rep.ClientName,
			Result: string(rep.VisitStatus),
			Notes:  rep.TasksCompleted,
		})
	}

	data, err := spreadsheet.WriteDayArchive(rows)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="Hisobot_%s.xlsx"`, date))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
