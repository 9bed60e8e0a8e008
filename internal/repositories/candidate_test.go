package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var candidateColumns = []string{
	"id", "name", "role", "experience", "skills", "location", "avatar", "status", "match_score", "bio",
}

func newMockRepository(t *testing.T) (CandidateRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewCandidateRepository(db), mock
}

func TestCandidateRepository_FindByID(t *testing.T) {
	repo, mock := newMockRepository(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "candidates" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(candidateColumns).AddRow(
			id.String(), "Ada", "Engineer", 5, `["Rust","C++"]`, "Remote", "", "New", 90, "Systems programmer.",
		))

	candidate, err := repo.FindByID(id)
	require.NoError(t, err)

	assert.Equal(t, id, candidate.ID)
	assert.Equal(t, "Ada", candidate.Name)
	assert.Equal(t, 5, candidate.Experience)
	assert.Equal(t, []string{"Rust", "C++"}, candidate.Skills)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT \* FROM "candidates" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(candidateColumns))

	candidate, err := repo.FindByID(uuid.New())
	assert.Nil(t, candidate)
	assert.ErrorIs(t, err, ErrCandidateNotFound)
}

func TestCandidateRepository_List(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT \* FROM "candidates" ORDER BY match_score DESC`).
		WillReturnRows(sqlmock.NewRows(candidateColumns).
			AddRow(uuid.NewString(), "Michael Chang", "DevOps Engineer", 9, `["Kubernetes"]`, "Remote", "", "Offer", 96, "bio").
			AddRow(uuid.NewString(), "Elena Rodriguez", "Senior UX Designer", 7, `["Figma"]`, "San Francisco, CA", "", "Screening", 92, "bio"))

	candidates, err := repo.List()
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "Michael Chang", candidates[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateRepository_Seed_SkipsPopulatedTable(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "candidates"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	inserted, err := repo.Seed(DefaultCandidates())
	require.NoError(t, err)
	assert.Zero(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDefaultCandidates_AreAnalyzable(t *testing.T) {
	for _, c := range DefaultCandidates() {
		profile := c.Profile()
		assert.NotEmpty(t, profile.Name)
		assert.NotEmpty(t, profile.Role)
		assert.Positive(t, profile.Experience)
		assert.NotEmpty(t, profile.Skills)
		assert.NotEmpty(t, profile.Bio)
	}
}
