package handlers

import (
	"encoding/json"
	"net/http"
)

type TablesResponse struct {
	CountTables int `json:"countTables"`
}

func (h *Handlers) TablesHandler(w http.ResponseWriter, r *http.Request) {
	count, err := h.TablesService.CountTables()
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(TablesResponse{count})
}
