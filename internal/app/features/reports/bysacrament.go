// internal/app/features/reports/bysacrament.go
package reports

import (
	"context"
	"net/http"

	"github.com/pablutus/catequesis/internal/app/system/respond"
	"github.com/pablutus/catequesis/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type sacramentDetail struct {
	Grupo        int    `json:"grupo"`
	Estudiantes  int    `json:"estudiantes"`
	CatequistaID string `json:"catequista_id"`
}

type sacramentBucket struct {
	Grupos      int               `json:"grupos"`
	Estudiantes int               `json:"estudiantes"`
	Detalles    []sacramentDetail `json:"detalles"`
}

// HandleBySacrament handles GET /api/reportes/por-sacramento. Groups
// with no sacramento fall into the "Sin especificar" bucket. Student
// totals come from the denormalized numero_estudiantes counters.
func (h *Handler) HandleBySacrament(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	groups, err := h.Groups.List(ctx, nil)
	if err != nil {
		h.Log.Error("sacrament report failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	report := map[string]*sacramentBucket{}
	for _, g := range groups {
		sacramento := g.Sacramento
		if sacramento == "" {
			sacramento = "Sin especificar"
		}
		b, ok := report[sacramento]
		if !ok {
			b = &sacramentBucket{Detalles: []sacramentDetail{}}
			report[sacramento] = b
		}
		b.Grupos++
		b.Estudiantes += g.NumeroEstudiantes
		b.Detalles = append(b.Detalles, sacramentDetail{
			Grupo:        g.NumeroGrupo,
			Estudiantes:  g.NumeroEstudiantes,
			CatequistaID: g.CatequistaID,
		})
	}
	respond.Data(w, report)
}
