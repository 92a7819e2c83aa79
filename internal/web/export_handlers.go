package web

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/lokascout/lokascout/internal/export"
)

// handleAPIExport writes the full catalog to a timestamped CSV file under
// the server's export directory.
func (s *Server) handleAPIExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	props, err := s.props.List()
	if err != nil {
		apiError(w, fmt.Sprintf("listing properties: %v", err), http.StatusInternalServerError)
		return
	}

	name := fmt.Sprintf("catalog-%s.csv", time.Now().Format("20060102-150405"))
	writer := export.NewCSVWriter(filepath.Join(s.exportDir, name))

	rows, err := writer.Write(props)
	if err != nil {
		apiError(w, fmt.Sprintf("exporting catalog: %v", err), http.StatusInternalServerError)
		return
	}

	apiJSON(w, map[string]interface{}{"path": writer.Path(), "rows": rows}, http.StatusOK)
}
