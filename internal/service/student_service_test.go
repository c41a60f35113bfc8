package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository"
)

func newStudentService(t *testing.T) *StudentService {
	t.Helper()
	store := kvstore.NewMemoryStore()
	return NewStudentService(repository.NewStudentRepository(store), zap.NewNop())
}

func TestCreateStudent(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t)

	created, err := svc.Create(ctx, model.Student{
		ID:    "202604",
		Name:  "Sara Nabil",
		Grade: "KG1 A",
		Fee:   1000,
		Paid:  999, // игнорируется, оплата начинается с нуля
	})
	require.NoError(t, err)
	require.Zero(t, created.Paid)
	require.Equal(t, "123456", created.Password)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
}

func TestCreateStudentDuplicateID(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t)

	_, err := svc.Create(ctx, model.Student{ID: "202601", Name: "Clone", Grade: "KG1 A"})
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestCreateStudentMissingFields(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t)

	_, err := svc.Create(ctx, model.Student{Name: "No ID", Grade: "KG1 A"})
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestUpdateStudentKeepsPassword(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t)

	updated, err := svc.Update(ctx, model.Student{
		ID:    "202601",
		Name:  "Kareem M.",
		Grade: "KG1 B",
		Fee:   1200,
	})
	require.NoError(t, err)
	require.Equal(t, "Kareem M.", updated.Name)
	require.Equal(t, "123456", updated.Password)
}

func TestDeleteStudent(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t)

	require.NoError(t, svc.Delete(ctx, "202602"))
	_, err := svc.Get(ctx, "202602")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, "202602"), ErrNotFound)
}

// Удаление последнего ученика сохраняет пустой список: демо-набор
// не воскресает при следующем чтении
func TestDeleteAllStudentsLeavesRosterEmpty(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t)

	for _, id := range []string{"202601", "202602", "202603"} {
		require.NoError(t, svc.Delete(ctx, id))
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	// и повторное чтение тоже пустое
	list, err = svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestWalletAndPayments(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t)

	student, err := svc.TopUpWallet(ctx, "202601", 100)
	require.NoError(t, err)
	require.InDelta(t, 600, student.Credit, 1e-9)

	student, err = svc.RecordPayment(ctx, "202601", 250)
	require.NoError(t, err)
	require.InDelta(t, 750, student.Paid, 1e-9)
	require.InDelta(t, 250, student.Due(), 1e-9)

	_, err = svc.TopUpWallet(ctx, "202601", -5)
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestSearchStudents(t *testing.T) {
	ctx := context.Background()
	svc := newStudentService(t)

	byName, err := svc.Search(ctx, "layla")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	require.Equal(t, "202602", byName[0].ID)

	byID, err := svc.Search(ctx, "2026")
	require.NoError(t, err)
	require.Len(t, byID, 3)
}
