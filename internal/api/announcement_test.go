package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAnnouncements(t *testing.T) {
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows([]string{"id", "title", "description", "created_at"}).
		AddRow(2, "Elevator maintenance", "Block B elevator down Friday", time.Now()).
		AddRow(1, "Welcome", "Welcome to LivingNest", time.Now().Add(-time.Hour))
	mock.ExpectQuery("SELECT (.+) FROM `announcements`").WillReturnRows(rows)

	r := gin.New()
	r.GET("/announcements", ListAnnouncementsHandler(db))
	w := doJSON(r, http.MethodGet, "/announcements", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAnnouncement(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO `announcements`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	r := gin.New()
	r.POST("/announcements", CreateAnnouncementHandler(db))
	w := doJSON(r, http.MethodPost, "/announcements", `{"title":"Pool opening","description":"Rooftop pool opens Saturday"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAnnouncementMissingTitle(t *testing.T) {
	db, mock := newMockDB(t)

	r := gin.New()
	r.POST("/announcements", CreateAnnouncementHandler(db))
	w := doJSON(r, http.MethodPost, "/announcements", `{"description":"no title"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
