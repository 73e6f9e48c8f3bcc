package mux

import (
	"net/http"
)

func (m *Mux) getHands() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := parseRowsOption(r, m.config.maxRows)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		records, err := m.recorder.Recent(r.Context(), rows)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, records)
	}
}
