package handlers

import (
	"net/http"
)

type TablesResponse struct {
	CountTables int `json:"countTables"`
}

func (h *Handlers) TablesHandler(w http.ResponseWriter, r *http.Request) {
	count, err := h.TablesService.GetCountTablesDB(r.Context())
	if err != nil {
		h.respondWithError(w, r, err, "failed to count tables")
		return
	}

	writeSuccess(w, TablesResponse{CountTables: count}, http.StatusOK)
}
