// internal/app/features/stats/stats.go
package stats

import (
	"context"
	"net/http"

	catechiststore "github.com/pablutus/catequesis/internal/app/store/catechists"
	groupstore "github.com/pablutus/catequesis/internal/app/store/groups"
	parishstore "github.com/pablutus/catequesis/internal/app/store/parishes"
	studentstore "github.com/pablutus/catequesis/internal/app/store/students"
	"github.com/pablutus/catequesis/internal/app/system/respond"
	"github.com/pablutus/catequesis/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type statsResponse struct {
	TotalParroquias      int64 `json:"total_parroquias"`
	TotalCatequistas     int64 `json:"total_catequistas"`
	TotalGrupos          int64 `json:"total_grupos"`
	TotalCatequizandos   int64 `json:"total_catequizandos"`
	CatequistasActivos   int64 `json:"catequistas_activos"`
	GruposActivos        int64 `json:"grupos_activos"`
	CatequizandosActivos int64 `json:"catequizandos_activos"`
}

// HandleStats handles GET /api/estadisticas. The counts are independent
// reads, not a snapshot; writes landing mid-request can skew them
// against each other.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	active := bson.M{"activo": true}
	var resp statsResponse
	var err error

	counts := []struct {
		dst        *int64
		collection string
		filter     bson.M
	}{
		{&resp.TotalParroquias, parishstore.Collection, nil},
		{&resp.TotalCatequistas, catechiststore.Collection, nil},
		{&resp.TotalGrupos, groupstore.Collection, nil},
		{&resp.TotalCatequizandos, studentstore.Collection, nil},
		{&resp.CatequistasActivos, catechiststore.Collection, active},
		{&resp.GruposActivos, groupstore.Collection, active},
		{&resp.CatequizandosActivos, studentstore.Collection, active},
	}
	for _, c := range counts {
		*c.dst, err = h.Docs.Count(ctx, c.collection, c.filter)
		if err != nil {
			h.Log.Error("stats count failed",
				zap.String("collection", c.collection), zap.Error(err))
			respond.Internal(w)
			return
		}
	}
	respond.Data(w, resp)
}
