package faculty

import (
	"context"
	"errors"
	"testing"

	"anoa.com/schoolregistry/internal/entity"
	"anoa.com/schoolregistry/internal/modules/faculty/dto"
	"anoa.com/schoolregistry/internal/modules/faculty/repository"
	"anoa.com/schoolregistry/internal/testutil"
	"anoa.com/schoolregistry/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeIndex struct {
	indexed []uint
	deleted []uint
	hits    []uint
	err     error
}

func (f *fakeIndex) IndexFaculty(faculty *entity.Faculty) error {
	f.indexed = append(f.indexed, faculty.ID)
	return f.err
}

func (f *fakeIndex) DeleteFaculty(id uint) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeIndex) SearchFaculties(query string, limit int64) ([]uint, error) {
	return f.hits, f.err
}

func strPtr(s string) *string { return &s }

func newService(t *testing.T, index *fakeIndex) (FacultyService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	if index == nil {
		return NewFacultyService(repository.NewFacultyRepository(db), nil), db
	}
	return NewFacultyService(repository.NewFacultyRepository(db), index), db
}

func TestCreateFacultyIgnoresMissingFields(t *testing.T) {
	svc, _ := newService(t, nil)

	f, err := svc.CreateFaculty(context.Background(), dto.FacultyRequest{Name: strPtr("Gryffindor")})
	require.NoError(t, err)
	assert.NotZero(t, f.ID)
	assert.Equal(t, "Gryffindor", f.Name)
	assert.Equal(t, "", f.Color)
}

func TestUpdateFacultyPartial(t *testing.T) {
	svc, _ := newService(t, nil)
	ctx := context.Background()

	f, err := svc.CreateFaculty(ctx, dto.FacultyRequest{Name: strPtr("Gryffindor"), Color: strPtr("red")})
	require.NoError(t, err)

	updated, err := svc.UpdateFaculty(ctx, f.ID, dto.FacultyRequest{Color: strPtr("scarlet")})
	require.NoError(t, err)
	assert.Equal(t, "Gryffindor", updated.Name)
	assert.Equal(t, "scarlet", updated.Color)

	updated, err = svc.UpdateFaculty(ctx, f.ID, dto.FacultyRequest{Name: strPtr("Lions")})
	require.NoError(t, err)
	assert.Equal(t, "Lions", updated.Name)
	assert.Equal(t, "scarlet", updated.Color)

	stored, err := svc.GetFaculty(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lions", stored.Name)
	assert.Equal(t, "scarlet", stored.Color)
}

func TestUpdateMissingFaculty(t *testing.T) {
	svc, _ := newService(t, nil)

	_, err := svc.UpdateFaculty(context.Background(), 42, dto.FacultyRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteMissingFacultyIsNoop(t *testing.T) {
	svc, _ := newService(t, nil)
	assert.NoError(t, svc.DeleteFaculty(context.Background(), 42))
}

func TestDeleteFacultyKeepsStudents(t *testing.T) {
	svc, db := newService(t, nil)
	ctx := context.Background()

	f, err := svc.CreateFaculty(ctx, dto.FacultyRequest{Name: strPtr("Hufflepuff"), Color: strPtr("yellow")})
	require.NoError(t, err)
	student := &entity.Student{Name: "Cedric", Age: 17, FacultyID: &f.ID}
	require.NoError(t, db.Create(student).Error)

	require.NoError(t, svc.DeleteFaculty(ctx, f.ID))

	var count int64
	require.NoError(t, db.Model(&entity.Student{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFindStudentsByFacultyID(t *testing.T) {
	svc, db := newService(t, nil)
	ctx := context.Background()

	f, err := svc.CreateFaculty(ctx, dto.FacultyRequest{Name: strPtr("Ravenclaw"), Color: strPtr("blue")})
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.Student{Name: "Luna", Age: 16, FacultyID: &f.ID}).Error)

	students, err := svc.FindStudentsByFacultyID(ctx, f.ID)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Luna", students[0].Name)

	_, err = svc.FindStudentsByFacultyID(ctx, 999)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestIndexIsKeptInSync(t *testing.T) {
	index := &fakeIndex{}
	svc, _ := newService(t, index)
	ctx := context.Background()

	f, err := svc.CreateFaculty(ctx, dto.FacultyRequest{Name: strPtr("Slytherin")})
	require.NoError(t, err)
	_, err = svc.UpdateFaculty(ctx, f.ID, dto.FacultyRequest{Color: strPtr("green")})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteFaculty(ctx, f.ID))

	assert.Equal(t, []uint{f.ID, f.ID}, index.indexed)
	assert.Equal(t, []uint{f.ID}, index.deleted)
}

func TestIndexFailureDoesNotFailWrites(t *testing.T) {
	svc, _ := newService(t, &fakeIndex{err: errors.New("meili down")})

	_, err := svc.CreateFaculty(context.Background(), dto.FacultyRequest{Name: strPtr("Slytherin")})
	assert.NoError(t, err)
}

func TestSearchUsesIndexOrder(t *testing.T) {
	index := &fakeIndex{}
	svc, _ := newService(t, index)
	ctx := context.Background()

	a, err := svc.CreateFaculty(ctx, dto.FacultyRequest{Name: strPtr("Gryffindor")})
	require.NoError(t, err)
	b, err := svc.CreateFaculty(ctx, dto.FacultyRequest{Name: strPtr("Griffins")})
	require.NoError(t, err)

	index.hits = []uint{b.ID, 999, a.ID}
	found, err := svc.SearchFaculties(ctx, "grif", 0)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, b.ID, found[0].ID)
	assert.Equal(t, a.ID, found[1].ID)
}

func TestSearchFallsBackToDatabase(t *testing.T) {
	svc, _ := newService(t, nil)
	ctx := context.Background()

	_, err := svc.CreateFaculty(ctx, dto.FacultyRequest{Name: strPtr("Gryffindor"), Color: strPtr("red")})
	require.NoError(t, err)
	_, err = svc.CreateFaculty(ctx, dto.FacultyRequest{Name: strPtr("Slytherin"), Color: strPtr("green")})
	require.NoError(t, err)

	found, err := svc.SearchFaculties(ctx, "GREEN", 5)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Slytherin", found[0].Name)
}
