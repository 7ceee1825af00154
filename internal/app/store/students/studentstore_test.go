package studentstore_test

import (
	"errors"
	"testing"
	"time"

	studentstore "github.com/pablutus/catequesis/internal/app/store/students"
	"github.com/pablutus/catequesis/internal/domain/models"
	"github.com/pablutus/catequesis/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestInsert_DerivesFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := studentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	birth := time.Date(2016, 3, 20, 0, 0, 0, 0, time.UTC)
	st, err := store.Insert(ctx, models.Student{
		Nombre:          "  Ana ",
		Apellido:        " Pérez",
		Correo:          "Ana.Perez@Mail.COM",
		FechaNacimiento: birth,
		ParroquiaID:     primitive.NewObjectID().Hex(),
		GrupoID:         primitive.NewObjectID().Hex(),
		Nivel:           "Nivel 1",
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if st.NombreCompleto != "Ana Pérez" {
		t.Errorf("nombre_completo: got %q", st.NombreCompleto)
	}
	if st.Correo != "ana.perez@mail.com" {
		t.Errorf("correo: got %q", st.Correo)
	}
	if want := models.AgeAt(birth, time.Now().UTC()); st.Edad != want {
		t.Errorf("edad: got %d, want %d", st.Edad, want)
	}
	if !st.Activo {
		t.Error("activo: want true")
	}
	if st.FechaInscripcion.IsZero() {
		t.Error("fecha_inscripcion not defaulted")
	}
	if st.Certificados == nil || st.SacramentosRecibidos == nil {
		t.Error("list fields not defaulted to empty")
	}
}

func TestUpdate_BirthDateRederivesAge(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := studentstore.New(db)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	st := fix.CreateStudent(ctx, primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), "ana")

	matched, err := store.Update(ctx, st.ID.Hex(), bson.M{"fecha_nacimiento": "2010-01-05"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !matched {
		t.Fatal("Update: student not matched")
	}

	got, err := store.GetByID(ctx, st.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if want := time.Now().UTC().Year() - 2010; got.Edad != want {
		t.Errorf("edad: got %d, want %d", got.Edad, want)
	}
	if got.FechaNacimiento.Year() != 2010 {
		t.Errorf("fecha_nacimiento: got %v", got.FechaNacimiento)
	}
}

func TestUpdate_BadBirthDate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := studentstore.New(db)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	st := fix.CreateStudent(ctx, primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), "ana")

	for _, bad := range []any{"05/01/2010", 2010} {
		if _, err := store.Update(ctx, st.ID.Hex(), bson.M{"fecha_nacimiento": bad}); !errors.Is(err, studentstore.ErrBadBirthDate) {
			t.Errorf("Update(%v): got %v, want ErrBadBirthDate", bad, err)
		}
	}
}

func TestList_Filters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := studentstore.New(db)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	parroquiaID := primitive.NewObjectID().Hex()
	grupoA := primitive.NewObjectID().Hex()
	grupoB := primitive.NewObjectID().Hex()
	fix.CreateStudent(ctx, parroquiaID, grupoA, "ana")
	fix.CreateStudent(ctx, parroquiaID, grupoA, "luis")
	fix.CreateStudent(ctx, parroquiaID, grupoB, "maria")

	byGroup, err := store.List(ctx, bson.M{"grupo_id": grupoA})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(byGroup) != 2 {
		t.Errorf("grupo filter: got %d students, want 2", len(byGroup))
	}

	byParish, err := store.List(ctx, bson.M{"parroquia_id": parroquiaID})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(byParish) != 3 {
		t.Errorf("parroquia filter: got %d students, want 3", len(byParish))
	}

	none, err := store.List(ctx, bson.M{"grupo_id": primitive.NewObjectID().Hex()})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("unmatched filter: got %d students, want 0", len(none))
	}
}
