// internal/app/store/enrollment/enrollment.go

// Package enrollment is the consistency layer between the catequizandos
// and grupos collections. Student membership (each student's grupo_id)
// is the source of truth; the group's numero_estudiantes,
// cupos_disponibles, and catequizandos_ids are a cached projection this
// service keeps in sync.
//
// The two collections are not written in one transaction. The student
// write happens first; if the group counter write then fails (for
// example the group was deleted in between), the student stands and the
// miss is logged. That inconsistency window is a documented property of
// the system, not an error surfaced to the caller.
package enrollment

import (
	"context"

	"github.com/pablutus/catequesis/internal/app/store/docstore"
	groupstore "github.com/pablutus/catequesis/internal/app/store/groups"
	studentstore "github.com/pablutus/catequesis/internal/app/store/students"
	"github.com/pablutus/catequesis/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Service struct {
	students *studentstore.Store
	groups   *groupstore.Store
	log      *zap.Logger
}

func New(db *mongo.Database, logger *zap.Logger) *Service {
	return &Service{
		students: studentstore.New(db),
		groups:   groupstore.New(db),
		log:      logger,
	}
}

// Students exposes the underlying student store for plain reads/updates
// that do not change membership.
func (s *Service) Students() *studentstore.Store {
	return s.students
}

// Enroll inserts the student and moves the target group's occupancy
// counters up by one. The counter write is atomic on the group document,
// so two simultaneous enrollments cannot lose an increment. A missing
// group is non-fatal: the student keeps its grupo_id reference and the
// miss is logged.
func (s *Service) Enroll(ctx context.Context, st models.Student) (models.Student, error) {
	created, err := s.students.Insert(ctx, st)
	if err != nil {
		return models.Student{}, err
	}

	matched, err := s.groups.EnrollStudent(ctx, created.GrupoID, created.ID.Hex())
	if err != nil {
		s.log.Error("enroll: group counter update failed",
			zap.String("grupo_id", created.GrupoID),
			zap.String("catequizando_id", created.ID.Hex()),
			zap.Error(err))
	} else if !matched {
		s.log.Warn("enroll: group not found, counters not updated",
			zap.String("grupo_id", created.GrupoID),
			zap.String("catequizando_id", created.ID.Hex()))
	}
	return created, nil
}

// EnrollBatch inserts a batch of students, then applies one summed
// counter delta per distinct group. Returns the created students.
func (s *Service) EnrollBatch(ctx context.Context, sts []models.Student) ([]models.Student, error) {
	created, err := s.students.InsertBatch(ctx, sts)
	if err != nil {
		return nil, err
	}

	byGroup := map[string][]string{}
	for _, st := range created {
		byGroup[st.GrupoID] = append(byGroup[st.GrupoID], st.ID.Hex())
	}
	for grupoID, ids := range byGroup {
		matched, err := s.groups.ApplyEnrollmentDelta(ctx, grupoID, len(ids), ids)
		if err != nil {
			s.log.Error("bulk enroll: group counter update failed",
				zap.String("grupo_id", grupoID), zap.Int("count", len(ids)), zap.Error(err))
		} else if !matched {
			s.log.Warn("bulk enroll: group not found, counters not updated",
				zap.String("grupo_id", grupoID), zap.Int("count", len(ids)))
		}
	}
	return created, nil
}

// Unenroll captures the student's grupo_id, deletes the student, and
// moves the group's counters down by one, floored at zero. Returns
// whether the student existed. A counter miss after a successful delete
// is logged, not surfaced.
func (s *Service) Unenroll(ctx context.Context, studentID string) (bool, error) {
	st, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if err == mongo.ErrNoDocuments || err == docstore.ErrInvalidID {
			return false, nil
		}
		return false, err
	}

	deleted, err := s.students.Delete(ctx, studentID)
	if err != nil || !deleted {
		return deleted, err
	}

	if st.GrupoID == "" {
		return true, nil
	}
	matched, err := s.groups.UnenrollStudent(ctx, st.GrupoID, studentID)
	if err != nil {
		s.log.Error("unenroll: group counter update failed",
			zap.String("grupo_id", st.GrupoID),
			zap.String("catequizando_id", studentID),
			zap.Error(err))
	} else if !matched {
		s.log.Warn("unenroll: group not found, counters not updated",
			zap.String("grupo_id", st.GrupoID),
			zap.String("catequizando_id", studentID))
	}
	return true, nil
}
