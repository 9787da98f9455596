/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package api

import (
	"encoding/json"
	"net/http"

	"github.com/friendsincode/brandpage/internal/assist"
)

// handleAssist forwards one editor chat turn to the assist service. The
// response always carries a message; a missing or failing upstream shows
// up as canned advice, not as an HTTP error.
func (a *API) handleAssist(w http.ResponseWriter, r *http.Request) {
	var req assist.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message_required")
		return
	}

	writeJSON(w, http.StatusOK, a.assist.Suggest(r.Context(), req))
}
