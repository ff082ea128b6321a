package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/commerce-insights-api/internal/report"
)

// ExportReport gera a planilha em memória antes de escrever os headers, para que falhas ainda virem JSON de erro
func ExportReport(exporter report.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := exporter.Write(&buf); err != nil {
			writeServiceError(w, r, err)
			return
		}

		filename := fmt.Sprintf("commerce-report-%s.xlsx", time.Now().UTC().Format("20060102"))
		w.Header().Set("Content-Type", report.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}
