package repositories

import (
	"testing"
	"time"

	"github.com/rohits-web03/plotwise/internal/config"
	"github.com/rohits-web03/plotwise/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	return store
}

func newUser(t *testing.T, store *Store, name, email string) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Name: name, Email: email, Password: string(hashed), Role: models.RoleUser}
	require.NoError(t, store.CreateUser(&user))
	return user
}

func TestEnsureAdminIdempotent(t *testing.T) {
	store := openTestStore(t)
	seed := config.AdminSeed{Name: "Admin User", Email: "admin@landprice.com", Password: "admin123"}

	require.NoError(t, store.EnsureAdmin(seed))
	require.NoError(t, store.EnsureAdmin(seed))

	n, err := store.CountUsersByRole(models.RoleAdmin)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	admin, err := store.UserByEmailAndRole(seed.Email, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))
}

func TestCreateUserEmailConflict(t *testing.T) {
	store := openTestStore(t)
	newUser(t, store, "Asha", "asha@example.com")

	// The second writer is rejected by the unique index itself and must
	// come back as the conflict error, not a raw driver error.
	dup := models.User{Name: "Other", Email: "asha@example.com", Password: "x", Role: models.RoleUser}
	assert.ErrorIs(t, store.CreateUser(&dup), ErrEmailTaken)

	// Email uniqueness holds across roles too.
	dupAdmin := models.User{Name: "Other", Email: "asha@example.com", Password: "x", Role: models.RoleAdmin}
	assert.ErrorIs(t, store.CreateUser(&dupAdmin), ErrEmailTaken)

	n, err := store.CountUsersByRole(models.RoleUser)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestUserLookupIsRoleKeyed(t *testing.T) {
	store := openTestStore(t)
	user := newUser(t, store, "Asha", "asha@example.com")

	_, err := store.UserByEmailAndRole("asha@example.com", models.RoleUser)
	assert.NoError(t, err)

	_, err = store.UserByEmailAndRole("asha@example.com", models.RoleAdmin)
	assert.ErrorIs(t, err, ErrNotFound)

	byID, err := store.UserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", byID.Email)
}

func TestUpdateUserProfile(t *testing.T) {
	store := openTestStore(t)
	newUser(t, store, "Asha", "asha@example.com")
	newUser(t, store, "Binu", "binu@example.com")

	assert.ErrorIs(t, store.UpdateUserProfile("missing@example.com", "X", "x@example.com"), ErrNotFound)
	assert.ErrorIs(t, store.UpdateUserProfile("asha@example.com", "Asha", "binu@example.com"), ErrEmailTaken)

	require.NoError(t, store.UpdateUserProfile("asha@example.com", "Asha K", "asha.k@example.com"))
	updated, err := store.UserByEmail("asha.k@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Asha K", updated.Name)
	assert.Equal(t, models.RoleUser, updated.Role)

	// Renaming without an email change must not trip the uniqueness check.
	require.NoError(t, store.UpdateUserProfile("binu@example.com", "Binu R", "binu@example.com"))
}

func TestDeleteUserCascades(t *testing.T) {
	store := openTestStore(t)
	user := newUser(t, store, "Asha", "asha@example.com")

	for i := 0; i < 3; i++ {
		require.NoError(t, store.CreateSearch(&models.Search{
			UserID: user.ID, State: "Kerala", City: "Kochi",
			Sqft: 1000, PricePerSqft: 4000, PredictedPrice: 4000000,
		}))
	}

	require.NoError(t, store.DeleteUserByEmail("asha@example.com"))

	_, err := store.UserByEmail("asha@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	searches, err := store.SearchesByOwner(user.ID)
	require.NoError(t, err)
	assert.Empty(t, searches)

	n, err := store.CountSearches()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDeleteUserProtectsAdmin(t *testing.T) {
	store := openTestStore(t)
	seed := config.AdminSeed{Name: "Admin User", Email: "admin@landprice.com", Password: "admin123"}
	require.NoError(t, store.EnsureAdmin(seed))

	assert.ErrorIs(t, store.DeleteUserByEmail(seed.Email), ErrAdminProtected)
	assert.ErrorIs(t, store.DeleteUserByEmail("missing@example.com"), ErrNotFound)

	n, err := store.CountUsersByRole(models.RoleAdmin)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestRecentSearchesOrderAndLimit(t *testing.T) {
	store := openTestStore(t)
	user := newUser(t, store, "Asha", "asha@example.com")

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.CreateSearch(&models.Search{
			UserID: user.ID, State: "Kerala", City: "Kochi",
			Sqft: float64(i + 1), PricePerSqft: 4000,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	recent, err := store.RecentSearches(3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, 5.0, recent[0].Sqft)
	assert.Equal(t, 4.0, recent[1].Sqft)
	assert.Equal(t, 3.0, recent[2].Sqft)
	assert.Equal(t, "Asha", recent[0].User.Name)
}

func TestAveragePricePerSqft(t *testing.T) {
	store := openTestStore(t)
	user := newUser(t, store, "Asha", "asha@example.com")

	_, ok, err := store.AveragePricePerSqft()
	require.NoError(t, err)
	assert.False(t, ok)

	for _, pps := range []int{3000, 5000} {
		require.NoError(t, store.CreateSearch(&models.Search{
			UserID: user.ID, State: "Kerala", City: "Kochi", Sqft: 1, PricePerSqft: pps,
		}))
	}

	avg, ok, err := store.AveragePricePerSqft()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4000.0, avg)
}
