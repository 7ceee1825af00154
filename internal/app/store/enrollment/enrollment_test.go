package enrollment_test

import (
	"testing"
	"time"

	"github.com/pablutus/catequesis/internal/app/store/enrollment"
	groupstore "github.com/pablutus/catequesis/internal/app/store/groups"
	"github.com/pablutus/catequesis/internal/domain/models"
	"github.com/pablutus/catequesis/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newStudent(parroquiaID, grupoID, nombre string) models.Student {
	return models.Student{
		Nombre:          nombre,
		Apellido:        "Prueba",
		FechaNacimiento: time.Date(2015, 6, 10, 0, 0, 0, 0, time.UTC),
		Telefono:        "0987654321",
		Correo:          nombre + "@Test.EC",
		ParroquiaID:     parroquiaID,
		GrupoID:         grupoID,
		Nivel:           "Nivel 1",
	}
}

func TestEnrollThenUnenroll_CountersFollowMembership(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := enrollment.New(db, zap.NewNop())
	groups := groupstore.New(db)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	parroquiaID := primitive.NewObjectID().Hex()
	g := fix.CreateGroup(ctx, parroquiaID, primitive.NewObjectID().Hex(), 1, 25)

	st1, err := svc.Enroll(ctx, newStudent(parroquiaID, g.ID.Hex(), "ana"))
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	if _, err := svc.Enroll(ctx, newStudent(parroquiaID, g.ID.Hex(), "luis")); err != nil {
		t.Fatalf("Enroll: %v", err)
	}

	got, err := groups.GetByID(ctx, g.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.NumeroEstudiantes != 2 || got.CuposDisponibles != 23 {
		t.Errorf("after enrolls: estudiantes=%d disponibles=%d, want 2/23",
			got.NumeroEstudiantes, got.CuposDisponibles)
	}

	deleted, err := svc.Unenroll(ctx, st1.ID.Hex())
	if err != nil {
		t.Fatalf("Unenroll: %v", err)
	}
	if !deleted {
		t.Fatal("Unenroll: student not found")
	}

	got, err = groups.GetByID(ctx, g.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.NumeroEstudiantes != 1 || got.CuposDisponibles != 24 {
		t.Errorf("after unenroll: estudiantes=%d disponibles=%d, want 1/24",
			got.NumeroEstudiantes, got.CuposDisponibles)
	}
}

func TestEnroll_MissingGroupStillInsertsStudent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := enrollment.New(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	st, err := svc.Enroll(ctx, newStudent(
		primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), "maria"))
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}

	got, err := svc.Students().GetByID(ctx, st.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Correo != "maria@test.ec" {
		t.Errorf("correo not normalized: got %q", got.Correo)
	}
	if got.Edad != models.AgeAt(got.FechaNacimiento, time.Now().UTC()) {
		t.Errorf("edad not derived: got %d", got.Edad)
	}
}

func TestEnrollBatch_SumsPerGroup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := enrollment.New(db, zap.NewNop())
	groups := groupstore.New(db)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	parroquiaID := primitive.NewObjectID().Hex()
	a := fix.CreateGroup(ctx, parroquiaID, primitive.NewObjectID().Hex(), 1, 30)
	b := fix.CreateGroup(ctx, parroquiaID, primitive.NewObjectID().Hex(), 2, 30)

	created, err := svc.EnrollBatch(ctx, []models.Student{
		newStudent(parroquiaID, a.ID.Hex(), "ana"),
		newStudent(parroquiaID, a.ID.Hex(), "luis"),
		newStudent(parroquiaID, b.ID.Hex(), "maria"),
	})
	if err != nil {
		t.Fatalf("EnrollBatch: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("EnrollBatch: got %d students, want 3", len(created))
	}

	gotA, err := groups.GetByID(ctx, a.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if gotA.NumeroEstudiantes != 2 || gotA.CuposDisponibles != 28 {
		t.Errorf("group a: estudiantes=%d disponibles=%d, want 2/28",
			gotA.NumeroEstudiantes, gotA.CuposDisponibles)
	}
	gotB, err := groups.GetByID(ctx, b.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if gotB.NumeroEstudiantes != 1 || gotB.CuposDisponibles != 29 {
		t.Errorf("group b: estudiantes=%d disponibles=%d, want 1/29",
			gotB.NumeroEstudiantes, gotB.CuposDisponibles)
	}
}

func TestUnenroll_MissingStudent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := enrollment.New(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deleted, err := svc.Unenroll(ctx, primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("Unenroll: %v", err)
	}
	if deleted {
		t.Error("Unenroll: reported success for a missing student")
	}

	deleted, err = svc.Unenroll(ctx, "not-a-hex-id")
	if err != nil {
		t.Fatalf("Unenroll malformed id: %v", err)
	}
	if deleted {
		t.Error("Unenroll: reported success for a malformed id")
	}
}
