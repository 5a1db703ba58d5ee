package catalog

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proraahi-core/server/internal/agent/model"
	errx "github.com/proraahi-core/server/internal/core/error"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStore(db), mock
}

func TestPostgresStore_QueryGuides(t *testing.T) {
	store, mock := newMockStore(t)

	query := "SELECT id, name, location, specialties, languages, experience_years, availability_status, total_reviews, description, price, rating " +
		"FROM guides WHERE lower(location) = lower($1) AND specialties ILIKE $2 ORDER BY rating DESC, id LIMIT 3"
	rows := sqlmock.NewRows([]string{
		"id", "name", "location", "specialties", "languages", "experience_years",
		"availability_status", "total_reviews", "description", "price", "rating",
	}).
		AddRow(int64(1), "Ravi Munda", "Ranchi", "Tribal culture, Dokra craft", "Hindi,English,Mundari", int64(12), "available", int64(87), "Village walks", 2500.0, 4.9).
		AddRow(int64(2), "Anita Oraon", "Ranchi", "Tribal festivals", nil, nil, nil, nil, nil, 2000.0, 4.6)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("Ranchi", "%tribal%").
		WillReturnRows(rows)

	got, err := store.Query(context.Background(), model.KindGuide, Filter{Location: "Ranchi", Specialty: "tribal", Limit: 3})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, model.KindGuide, got[0].Kind)
	assert.Equal(t, "Ravi Munda", got[0].Name)
	assert.Equal(t, []string{"Tribal culture", "Dokra craft"}, got[0].Specialties)
	assert.Equal(t, []string{"Hindi", "English", "Mundari"}, got[0].Languages)
	assert.Equal(t, 12, got[0].ExperienceYears)
	assert.Equal(t, 87, got[0].TotalReviews)
	assert.Equal(t, 4.9, got[0].Rating)

	assert.Nil(t, got[1].Languages)
	assert.Zero(t, got[1].ExperienceYears)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_QueryTransport(t *testing.T) {
	store, mock := newMockStore(t)

	query := "SELECT id, transport_type, name, from_location, to_location, departure_time, arrival_time, class_type, price, rating " +
		"FROM transportation WHERE lower(from_location) = lower($1) AND lower(to_location) = lower($2) ORDER BY rating DESC, id LIMIT 20"
	rows := sqlmock.NewRows([]string{
		"id", "transport_type", "name", "from_location", "to_location",
		"departure_time", "arrival_time", "class_type", "price", "rating",
	}).AddRow(int64(7), "train", "Rajdhani Express", "Delhi", "Ranchi", "16:55", "10:30", "3A", 2100.0, 4.5)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("Delhi", "Ranchi").
		WillReturnRows(rows)

	got, err := store.Query(context.Background(), model.KindTransport, Filter{FromLocation: "Delhi", ToLocation: "Ranchi"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Rajdhani Express", got[0].Name)
	assert.Equal(t, "16:55", got[0].Departure)
	assert.Equal(t, "Ranchi", got[0].To)
	assert.Equal(t, "3A", got[0].ClassType)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SpecialtyWildcardsAreLiteral(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM guides WHERE specialties ILIKE $1")).
		WithArgs(`%100\% eco\_tour%`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "location", "specialties", "languages", "experience_years",
			"availability_status", "total_reviews", "description", "price", "rating",
		}))

	got, err := store.Query(context.Background(), model.KindGuide, Filter{Specialty: "100% eco_tour"})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_NoFilters(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM hotels ORDER BY rating DESC, id LIMIT 20")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "category", "amenities", "description", "price", "rating"}))

	got, err := store.Query(context.Background(), model.KindLodging, Filter{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Errors(t *testing.T) {
	t.Run("query error maps to 500", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery("FROM activities").WillReturnError(errors.New("connection reset"))

		_, err := store.Query(context.Background(), model.KindActivity, Filter{Category: "cultural"})
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, errx.StatusOf(err))
	})

	t.Run("unknown kind is a bad request", func(t *testing.T) {
		store, _ := newMockStore(t)
		_, err := store.Query(context.Background(), model.CatalogKind("weather"), Filter{})
		assert.Equal(t, http.StatusBadRequest, errx.StatusOf(err))
	})
}

func TestLookup_Search(t *testing.T) {
	t.Run("store failure yields empty list", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery("FROM guides").WillReturnError(errors.New("db down"))

		got := NewLookup(store, 20).Search(context.Background(), model.KindGuide, model.Entities{model.SlotLocation: "Ranchi"})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("nil store", func(t *testing.T) {
		got := NewLookup(nil, 20).Search(context.Background(), model.KindActivity, nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("memory store keeps rating order", func(t *testing.T) {
		store := NewMemoryStore(
			model.Record{ID: 1, Kind: model.KindActivity, Name: "Sohrai workshop", Location: "Hazaribagh", Category: "cultural", Rating: 4.2},
			model.Record{ID: 2, Kind: model.KindActivity, Name: "Dassam falls trek", Location: "Ranchi", Category: "adventure", Rating: 4.7},
			model.Record{ID: 3, Kind: model.KindActivity, Name: "Dokra casting", Location: "Ranchi", Category: "cultural", Rating: 4.8},
		)
		got := NewLookup(store, 20).Search(context.Background(), model.KindActivity, model.Entities{model.SlotLocation: "ranchi"})
		require.Len(t, got, 2)
		assert.Equal(t, "Dokra casting", got[0].Name)
		assert.Equal(t, "Dassam falls trek", got[1].Name)
	})
}

func TestFilterFor(t *testing.T) {
	e := model.Entities{
		model.SlotFromLocation: "Delhi",
		model.SlotToLocation:   "Ranchi",
		model.SlotSpecialty:    "wildlife",
		model.SlotCategory:     "adventure",
	}

	assert.Equal(t, Filter{FromLocation: "Delhi", ToLocation: "Ranchi"}, FilterFor(model.KindTransport, e))
	assert.Equal(t, Filter{Location: "Ranchi"}, FilterFor(model.KindLodging, e))
	assert.Equal(t, Filter{Specialty: "wildlife"}, FilterFor(model.KindGuide, e))
	assert.Equal(t, Filter{Category: "adventure"}, FilterFor(model.KindActivity, e))
}
