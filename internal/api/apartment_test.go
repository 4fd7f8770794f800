package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apartmentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "apartment_no", "block", "floor", "rent", "image", "availability",
	})
}

func TestListApartmentsSecondPage(t *testing.T) {
	db, mock := newMockDB(t)
	// 10 matching apartments: page 1 with limit 6 holds the last 4
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `apartments`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(10))
	mock.ExpectQuery("SELECT (.+) FROM `apartments`").
		WillReturnRows(apartmentRows().
			AddRow(7, "B-101", "B", 1, 850, "", "available").
			AddRow(8, "B-201", "B", 2, 900, "", "available").
			AddRow(9, "B-301", "B", 3, 950, "", "available").
			AddRow(10, "B-401", "B", 4, 1000, "", "available"))

	r := gin.New()
	r.GET("/apartments", ListApartmentsHandler(db, newTestRedis()))
	w := doJSON(r, http.MethodGet, "/apartments?page=1&limit=6", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Total      int64            `json:"total"`
		Apartments []map[string]any `json:"apartments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(10), got.Total)
	assert.Len(t, got.Apartments, 4)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListApartmentsRentFilter(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `apartments`").
		WithArgs(900.0, 1000.0).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(2))
	mock.ExpectQuery("SELECT (.+) FROM `apartments`").
		WillReturnRows(apartmentRows().
			AddRow(3, "A-301", "A", 3, 950, "", "available").
			AddRow(4, "A-401", "A", 4, 1000, "", "available"))

	r := gin.New()
	r.GET("/apartments", ListApartmentsHandler(db, newTestRedis()))
	w := doJSON(r, http.MethodGet, "/apartments?minRent=900&maxRent=1000", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Total      int64            `json:"total"`
		Apartments []map[string]any `json:"apartments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(2), got.Total)
	assert.Len(t, got.Apartments, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateApartment(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("UPDATE `apartments`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := gin.New()
	r.PATCH("/updateApartment/:id", UpdateApartmentHandler(db, newTestRedis()))
	w := doJSON(r, http.MethodPatch, "/updateApartment/3", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateApartmentAlreadyUnavailable(t *testing.T) {
	db, mock := newMockDB(t)
	// Missing and already-unavailable rows look the same: zero rows modified
	mock.ExpectExec("UPDATE `apartments`").
		WillReturnResult(sqlmock.NewResult(0, 0))

	r := gin.New()
	r.PATCH("/updateApartment/:id", UpdateApartmentHandler(db, newTestRedis()))
	w := doJSON(r, http.MethodPatch, "/updateApartment/3", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
