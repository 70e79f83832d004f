package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/nazorathub/nazorat-hub/internal/entity"
	"github.com/nazorathub/nazorat-hub/internal/infra/http/middleware"
	"github.com/nazorathub/nazorat-hub/internal/infra/spreadsheet"
	"github.com/nazorathub/nazorat-hub/internal/usecase"
)

type LeadHandler struct {
	leads      usecase.LeadRepositoryInterface
	distribute *usecase.DistributeLeadsUseCase
	importer   *usecase.ImportLeadsUseCase
	log        *zap.Logger
}

func NewLeadHandler(
	leads usecase.LeadRepositoryInterface,
	distribute *usecase.DistributeLeadsUseCase,
	importer *usecase.ImportLeadsUseCase,
	log *zap.Logger,
) *LeadHandler {
	return &LeadHandler{leads: leads, distribute: distribute, importer: importer, log: log}
}

// HandleList serves GET /leads. ?pool=unassigned selects the general pool,
// ?operator=<id> an operator's queue, no filter the full set.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		leads []entity.Lead
		err   error
	)
	switch {
	case r.URL.Query().Get("pool") == "unassigned":
		leads, err = h.leads.UnassignedPool(ctx)
	case r.URL.Query().Get("operator") != "":
		leads, err = h.leads.PoolForOperator(ctx, r.URL.Query().Get("operator"))
	default:
		leads, err = h.leads.All(ctx)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

type createLeadRequest struct {
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Phone      string `json:"phone"`
	AssignedTo string `json:"assignedTo,omitempty"`
}

// HandleCreate serves POST /leads (manual entry).
func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Message: "Invalid JSON"})
		return
	}
	if req.Name == "" || req.Phone == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Message: "name and phone are required"})
		return
	}

	lead := entity.Lead{Name: req.Name, Surname: req.Surname, Phone: req.Phone}
	if err := h.leads.BulkAdd(r.Context(), []entity.Lead{lead}, req.AssignedTo); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, errorResponse{Success: true})
}

// HandleDistribute serves POST /leads/distribute.
func (h *LeadHandler) HandleDistribute(w http.ResponseWriter, r *http.Request) {
	var input usecase.DistributeLeadsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	out, err := h.distribute.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadsDistributed(out.Assigned)
	h.log.Info("leads distributed",
		zap.String("operator", input.OperatorID), zap.Int("count", out.Assigned))
	writeJSON(w, http.StatusOK, out)
}

// HandleImport serves POST /leads/import: multipart upload of an .xlsx or
// .csv file, optional "operatorId" form field to assign on import.
func (h *LeadHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(16 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Message: "invalid multipart form"})
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Message: "file field is required"})
		return
	}
	defer file.Close()

	rows, err := spreadsheet.ReadLeadRows(header.Filename, file)
	if err != nil {
		// Whole-file failure: nothing was imported.
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Success: false, Message: err.Error()})
		return
	}

	out, err := h.importer.Execute(r.Context(), usecase.ImportLeadsInput{
		Rows:       rows,
		OperatorID: r.FormValue("operatorId"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	h.log.Info("leads imported", zap.Int("count", out.Imported), zap.String("file", header.Filename))
	writeJSON(w, http.StatusOK, out)
}

// HandlePurge serves DELETE /leads. ?operator=<id> clears that operator's
// queue, ?pool=unassigned clears the general pool.
func (h *LeadHandler) HandlePurge(w http.ResponseWriter, r *http.Request) {
	operator := r.URL.Query().Get("operator")
	pool := r.URL.Query().Get("pool")

	var match func(entity.Lead) bool
	switch {
	case operator != "":
		match = func(l entity.Lead) bool { return l.AssignedTo == operator }
	case pool == "unassigned":
		match = func(l entity.Lead) bool { return l.AssignedTo == "" }
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Message: "operator or pool=unassigned is required"})
		return
	}

	if err := h.leads.Purge(r.Context(), match); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, errorResponse{Success: true})
}
