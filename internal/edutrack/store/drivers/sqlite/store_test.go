package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/opencampus/edutrack/internal/edutrack/domain"
	"github.com/opencampus/edutrack/internal/edutrack/store"
	"github.com/opencampus/edutrack/internal/edutrack/store/drivers/sqlite"
	"github.com/opencampus/edutrack/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	// A file-backed database: a :memory: DSN would give every pooled
	// connection its own empty database.
	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "edutrack-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestUsersRepo(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	user := domain.User{
		ID:           idx.New().String(),
		Name:         "Ada Lovelace",
		Email:        "ada@example.edu",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		Role:         domain.RoleStudent,
	}

	require.NoError(t, st.Users().CreateUser(ctx, user))

	t.Run("lookup by email", func(t *testing.T) {
		got, err := st.Users().GetUserByEmail(ctx, "ada@example.edu")
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)
		require.Equal(t, user.Name, got.Name)
		require.Equal(t, user.PasswordHash, got.PasswordHash)
		require.Equal(t, domain.RoleStudent, got.Role)
		require.False(t, got.CreatedAt.IsZero())
	})

	t.Run("lookup by id", func(t *testing.T) {
		got, err := st.Users().GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, user.Email, got.Email)
	})

	t.Run("unknown email is ErrNotFound", func(t *testing.T) {
		_, err := st.Users().GetUserByEmail(ctx, "nobody@example.edu")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate email is ErrAlreadyExists", func(t *testing.T) {
		dup := user
		dup.ID = idx.New().String()
		err := st.Users().CreateUser(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestCoursesRepo(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	created, err := st.Courses().CreateCourse(ctx, domain.Course{Code: "CS101", Title: "Intro to CS"})
	require.NoError(t, err)
	require.NotZero(t, created.ID, "id should be store-assigned")

	got, err := st.Courses().GetCourseByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "CS101", got.Code)

	_, err = st.Courses().CreateCourse(ctx, domain.Course{Code: "MA201", Title: "Linear Algebra"})
	require.NoError(t, err)

	all, err := st.Courses().ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	t.Run("duplicate code is ErrAlreadyExists", func(t *testing.T) {
		_, err := st.Courses().CreateCourse(ctx, domain.Course{Code: "CS101", Title: "Again"})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestEnrollmentsAndGrades(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	student := domain.User{
		ID:           idx.New().String(),
		Name:         "Student",
		Email:        "student@example.edu",
		PasswordHash: "x",
		Role:         domain.RoleStudent,
	}
	faculty := domain.User{
		ID:           idx.New().String(),
		Name:         "Faculty",
		Email:        "faculty@example.edu",
		PasswordHash: "x",
		Role:         domain.RoleFaculty,
	}
	require.NoError(t, st.Users().CreateUser(ctx, student))
	require.NoError(t, st.Users().CreateUser(ctx, faculty))

	enrollment := domain.Enrollment{
		ID:        idx.New().String(),
		StudentID: student.ID,
		CourseID:  7,
	}
	require.NoError(t, st.Enrollments().CreateEnrollment(ctx, enrollment))

	t.Run("get and list enrollments", func(t *testing.T) {
		got, err := st.Enrollments().GetEnrollmentByID(ctx, enrollment.ID)
		require.NoError(t, err)
		require.Equal(t, student.ID, got.StudentID)
		require.EqualValues(t, 7, got.CourseID)

		list, err := st.Enrollments().ListEnrollmentsByStudent(ctx, student.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("grade insert and list", func(t *testing.T) {
		grade := domain.Grade{
			ID:           idx.New().String(),
			EnrollmentID: enrollment.ID,
			Grade:        "A",
			EnteredBy:    faculty.ID,
		}
		require.NoError(t, st.Grades().CreateGrade(ctx, grade))

		list, err := st.Grades().ListGradesByEnrollment(ctx, enrollment.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "A", list[0].Grade)
		require.Equal(t, faculty.ID, list[0].EnteredBy)
	})

	t.Run("grade for missing enrollment violates FK", func(t *testing.T) {
		err := st.Grades().CreateGrade(ctx, domain.Grade{
			ID:           idx.New().String(),
			EnrollmentID: "no-such-enrollment",
			Grade:        "B",
			EnteredBy:    faculty.ID,
		})
		require.Error(t, err)
	})
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	student := domain.User{
		ID:           idx.New().String(),
		Name:         "Student",
		Email:        "tx@example.edu",
		PasswordHash: "x",
		Role:         domain.RoleStudent,
	}
	require.NoError(t, st.Users().CreateUser(ctx, student))

	enrollmentID := idx.New().String()
	errBoom := store.ErrNotFound // any sentinel will do

	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Enrollments().CreateEnrollment(ctx, domain.Enrollment{
			ID:        enrollmentID,
			StudentID: student.ID,
			CourseID:  1,
		}); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	// The enrollment must not have been committed.
	_, err = st.Enrollments().GetEnrollmentByID(ctx, enrollmentID)
	require.ErrorIs(t, err, store.ErrNotFound)
}
