// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/service"
	"github.com/MKhiriev/go-finance-keeper/models"
)

var exportContentTypes = map[models.ExportFormat]string{
	models.ExportJSON: "application/json",
	models.ExportCSV:  "text/csv; charset=utf-8",
}

func (h *Handler) exportJSON(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, models.ExportJSON)
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, models.ExportCSV)
}

// export renders the whole document before answering so that a failure
// still yields a proper error status. CSV never includes passwords here.
func (h *Handler) export(w http.ResponseWriter, r *http.Request, format models.ExportFormat) {
	log := logger.FromRequest(r)

	var buf bytes.Buffer
	if err := h.services.TransferService.Export(r.Context(), &buf, format, false); err != nil {
		log.Err(err).Str("func", "*Handler.export").Str("format", string(format)).Msg("error exporting accounts")
		writeError(w, err)
		return
	}

	fileName := service.ExportFileName(format, time.Now())
	w.Header().Set("Content-Type", exportContentTypes[format])
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Err(err).Str("func", "*Handler.export").Msg("error writing response")
	}
}
