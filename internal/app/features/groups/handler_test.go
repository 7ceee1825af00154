package groups_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pablutus/catequesis/internal/app/features/groups"
	groupstore "github.com/pablutus/catequesis/internal/app/store/groups"
	"github.com/pablutus/catequesis/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*groups.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return groups.NewHandler(db, zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestHandleCreate_DerivesNameAndOccupancy(t *testing.T) {
	h, fix := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewJSONRequest(t, "POST", "/api/grupos", map[string]any{
		"numero_grupo":  7,
		"parroquia_id":  primitive.NewObjectID().Hex(),
		"catequista_id": primitive.NewObjectID().Hex(),
		"sacramento":    "Bautismo",
	})
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d (body %s)", rec.Code, rec.Body.String())
	}
	env := testutil.DecodeEnvelope(t, rec)

	g, err := groupstore.New(fix.DB()).GetByID(ctx, env.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if g.NombreGrupo != "Grupo 7 - Bautismo" {
		t.Errorf("nombre_grupo: got %q", g.NombreGrupo)
	}
	if g.CupoMaximo != 30 || g.CuposDisponibles != 30 || g.NumeroEstudiantes != 0 {
		t.Errorf("occupancy: cupo=%d disponibles=%d estudiantes=%d",
			g.CupoMaximo, g.CuposDisponibles, g.NumeroEstudiantes)
	}
}

func TestHandleCreate_MissingSacramento(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/api/grupos", map[string]any{
		"numero_grupo":  7,
		"parroquia_id":  primitive.NewObjectID().Hex(),
		"catequista_id": primitive.NewObjectID().Hex(),
	})
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
	env := testutil.DecodeEnvelope(t, rec)
	if env.Error != "Campo requerido faltante: sacramento" {
		t.Errorf("error: got %q", env.Error)
	}
}

func TestHandleUpdate_CounterRecomputesAvailability(t *testing.T) {
	h, fix := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g := fix.CreateGroup(ctx, primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), 1, 40)
	id := g.ID.Hex()

	// Supplied cupos_disponibles must be ignored and rederived from the
	// stored cupo_maximo.
	req := testutil.NewJSONRequest(t, "PUT", "/api/grupos/"+id, map[string]any{
		"numero_estudiantes": 15,
		"cupos_disponibles":  999,
	})
	req = testutil.WithChiURLParam(req, "id", id)
	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d (body %s)", rec.Code, rec.Body.String())
	}

	got, err := groupstore.New(fix.DB()).GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.NumeroEstudiantes != 15 {
		t.Errorf("numero_estudiantes: got %d, want 15", got.NumeroEstudiantes)
	}
	if got.CuposDisponibles != 25 {
		t.Errorf("cupos_disponibles: got %d, want 25", got.CuposDisponibles)
	}
}

func TestHandleUpdate_Missing(t *testing.T) {
	h, _ := newTestHandler(t)

	id := primitive.NewObjectID().Hex()
	req := testutil.NewJSONRequest(t, "PUT", "/api/grupos/"+id, map[string]any{"aula": "B-2"})
	req = testutil.WithChiURLParam(req, "id", id)
	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}
}

func TestHandleList_ParishFilter(t *testing.T) {
	h, fix := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	parroquiaID := primitive.NewObjectID().Hex()
	fix.CreateGroup(ctx, parroquiaID, primitive.NewObjectID().Hex(), 1, 30)
	fix.CreateGroup(ctx, parroquiaID, primitive.NewObjectID().Hex(), 2, 30)
	fix.CreateGroup(ctx, primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), 3, 30)

	req := httptest.NewRequest("GET", "/api/grupos?parroquia_id="+parroquiaID, nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	env := testutil.DecodeEnvelope(t, rec)
	if env.Total == nil || *env.Total != 2 {
		t.Errorf("total: got %v, want 2", env.Total)
	}
}
