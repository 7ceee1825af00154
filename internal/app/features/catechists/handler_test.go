package catechists_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pablutus/catequesis/internal/app/features/catechists"
	catechiststore "github.com/pablutus/catequesis/internal/app/store/catechists"
	"github.com/pablutus/catequesis/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*catechists.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return catechists.NewHandler(db, zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestHandleCreate(t *testing.T) {
	h, fix := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewJSONRequest(t, "POST", "/api/catequistas", map[string]any{
		"nombre":       "  Carmen ",
		"apellido":     "Vega",
		"correo":       "Carmen.Vega@Test.EC",
		"edad":         42,
		"telefono":     "0991234567",
		"parroquia_id": primitive.NewObjectID().Hex(),
	})
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d (body %s)", rec.Code, rec.Body.String())
	}
	env := testutil.DecodeEnvelope(t, rec)

	c, err := catechiststore.New(fix.DB()).GetByID(ctx, env.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if c.NombreCompleto != "Carmen Vega" {
		t.Errorf("nombre_completo: got %q", c.NombreCompleto)
	}
	if c.Correo != "carmen.vega@test.ec" {
		t.Errorf("correo: got %q", c.Correo)
	}
	if c.FechaInicio.IsZero() {
		t.Error("fecha_inicio not defaulted")
	}
}

func TestHandleCreate_MissingParish(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/api/catequistas", map[string]any{
		"nombre":   "Carmen",
		"apellido": "Vega",
		"correo":   "carmen@test.ec",
		"edad":     42,
		"telefono": "0991234567",
	})
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
	env := testutil.DecodeEnvelope(t, rec)
	if env.Error != "Campo requerido faltante: parroquia_id" {
		t.Errorf("error: got %q", env.Error)
	}
}

func TestHandleList_ParishFilterEmpty(t *testing.T) {
	h, fix := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fix.CreateCatechist(ctx, primitive.NewObjectID().Hex(), "Carmen", "Vega")

	// A filter that matches nothing is a success with total 0.
	req := httptest.NewRequest("GET", "/api/catequistas?parroquia_id="+primitive.NewObjectID().Hex(), nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	env := testutil.DecodeEnvelope(t, rec)
	if !env.Success {
		t.Error("success: want true")
	}
	if env.Total == nil || *env.Total != 0 {
		t.Errorf("total: got %v, want 0", env.Total)
	}
}
