package clinicstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliniccare/clinic-api/internal/model"
	"github.com/cliniccare/clinic-api/internal/repository"
	"github.com/cliniccare/clinic-api/internal/repository/clinicstore"
)

func TestPatientRepositoryCRUD(t *testing.T) {
	store, log, m := testDeps()
	repo := clinicstore.NewPatientRepository(store, log, m)

	assert.Empty(t, repo.List(), "fresh store should list no patients")

	p := model.Patient{
		ID:        model.PatientID(model.NewID()),
		HN:        "HN-00001",
		FirstName: "สมชาย",
		LastName:  "ใจดี",
		Phone:     "081-111-2222",
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(p))

	got, err := repo.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "HN-00001", got.HN)
	assert.Equal(t, "สมชาย", got.FirstName)

	got.Phone = "081-999-0000"
	require.NoError(t, repo.Update(*got))
	got, err = repo.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "081-999-0000", got.Phone)

	require.NoError(t, repo.Delete(p.ID))
	_, err = repo.Get(p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, repo.List())
}

func TestPatientRepositoryUpdateMissing(t *testing.T) {
	store, log, m := testDeps()
	repo := clinicstore.NewPatientRepository(store, log, m)

	existing := model.Patient{ID: model.PatientID(model.NewID()), HN: "HN-00001", FirstName: "A"}
	require.NoError(t, repo.Create(existing))

	ghost := model.Patient{ID: model.PatientID(model.NewID()), HN: "HN-99999", FirstName: "B"}
	err := repo.Update(ghost)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// The failed update must not have touched the collection.
	patients := repo.List()
	require.Len(t, patients, 1)
	assert.Equal(t, "HN-00001", patients[0].HN)
}

func TestPatientRepositoryDeleteMissingIsNoop(t *testing.T) {
	store, log, m := testDeps()
	repo := clinicstore.NewPatientRepository(store, log, m)

	p := model.Patient{ID: model.PatientID(model.NewID()), HN: "HN-00001"}
	require.NoError(t, repo.Create(p))

	require.NoError(t, repo.Delete(model.PatientID("no-such-id")))
	assert.Len(t, repo.List(), 1)
}

func TestPatientRepositoryCorruptReadFailsOpen(t *testing.T) {
	store, log, m := testDeps()
	repo := clinicstore.NewPatientRepository(store, log, m)

	p := model.Patient{ID: model.PatientID(model.NewID()), HN: "HN-00001"}
	require.NoError(t, repo.Create(p))

	store.Corrupt("clinic_patients")
	assert.Empty(t, repo.List(), "unreadable collection reads as empty")

	// A create after a corrupt read starts over from the empty state.
	q := model.Patient{ID: model.PatientID(model.NewID()), HN: "HN-00002"}
	require.NoError(t, repo.Create(q))
	patients := repo.List()
	require.Len(t, patients, 1)
	assert.Equal(t, "HN-00002", patients[0].HN)
}
