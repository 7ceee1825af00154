package reports_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pablutus/catequesis/internal/app/features/reports"
	groupstore "github.com/pablutus/catequesis/internal/app/store/groups"
	"github.com/pablutus/catequesis/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type bucket struct {
	Grupos      int `json:"grupos"`
	Estudiantes int `json:"estudiantes"`
	Detalles    []struct {
		Grupo        int    `json:"grupo"`
		Estudiantes  int    `json:"estudiantes"`
		CatequistaID string `json:"catequista_id"`
	} `json:"detalles"`
}

func TestHandleBySacrament(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := reports.NewHandler(db, zap.NewNop())
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	parroquiaID := primitive.NewObjectID().Hex()
	a := fix.CreateGroup(ctx, parroquiaID, primitive.NewObjectID().Hex(), 1, 30)
	b := fix.CreateGroup(ctx, parroquiaID, primitive.NewObjectID().Hex(), 2, 30)
	fix.CreateGroup(ctx, parroquiaID, primitive.NewObjectID().Hex(), 3, 30)

	// Give the first two groups enrollments and move the third to another
	// sacrament.
	store := groupstore.New(db)
	if _, err := store.Update(ctx, a.ID.Hex(), bson.M{"numero_estudiantes": 10}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, err := store.Update(ctx, b.ID.Hex(), bson.M{"numero_estudiantes": 5}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/reportes/por-sacramento", nil)
	rec := httptest.NewRecorder()
	h.HandleBySacrament(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d (body %s)", rec.Code, rec.Body.String())
	}
	env := testutil.DecodeEnvelope(t, rec)

	var report map[string]bucket
	if err := json.Unmarshal(env.Data, &report); err != nil {
		t.Fatalf("decode data: %v", err)
	}

	pc, ok := report["Primera Comunión"]
	if !ok {
		t.Fatalf("missing sacrament bucket, got %v", report)
	}
	if pc.Grupos != 3 {
		t.Errorf("grupos: got %d, want 3", pc.Grupos)
	}
	if pc.Estudiantes != 15 {
		t.Errorf("estudiantes: got %d, want 15", pc.Estudiantes)
	}
	if len(pc.Detalles) != 3 {
		t.Errorf("detalles: got %d entries", len(pc.Detalles))
	}
}

func TestHandleBySacrament_UnsetSacramentBucket(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := reports.NewHandler(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// A group written without sacramento lands in the fallback bucket.
	if _, err := db.Collection(groupstore.Collection).InsertOne(ctx, bson.M{
		"numero_grupo": 9, "numero_estudiantes": 4,
	}); err != nil {
		t.Fatalf("insert group: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/reportes/por-sacramento", nil)
	rec := httptest.NewRecorder()
	h.HandleBySacrament(rec, req)

	env := testutil.DecodeEnvelope(t, rec)
	var report map[string]bucket
	if err := json.Unmarshal(env.Data, &report); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if report["Sin especificar"].Estudiantes != 4 {
		t.Errorf("fallback bucket: got %+v", report)
	}
}
