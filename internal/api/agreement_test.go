package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const applyBody = `{"userEmail":"resident@example.com","apartmentNo":"A-301","block":"A","floor":3,"rent":950}`

func agreementRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_email", "apartment_no", "block", "floor", "rent", "status", "decision", "date",
	})
}

func TestApplyAgreement(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO `agreements`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	r := gin.New()
	r.POST("/agreements", ApplyAgreementHandler(db))
	w := doJSON(r, http.MethodPost, "/agreements", applyBody)

	assert.Equal(t, http.StatusCreated, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "pending", got["status"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyAgreementDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	// The unique (user_email, apartment_no) index rejects the second insert;
	// this is also what a losing concurrent apply sees, so no check-then-act
	// window exists
	mock.ExpectExec("INSERT INTO `agreements`").
		WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	r := gin.New()
	r.POST("/agreements", ApplyAgreementHandler(db))
	w := doJSON(r, http.MethodPost, "/agreements", applyBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already applied")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAgreementRequests(t *testing.T) {
	db, mock := newMockDB(t)
	rows := agreementRows().
		AddRow(1, "a@example.com", "A-301", "A", 3, 950, "pending", "", time.Now()).
		AddRow(2, "b@example.com", "B-101", "B", 1, 850, "pending", "", time.Now())
	mock.ExpectQuery("SELECT (.+) FROM `agreements`").WillReturnRows(rows)

	r := gin.New()
	r.GET("/agreementRequests", ListAgreementRequestsHandler(db))
	w := doJSON(r, http.MethodGet, "/agreementRequests", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptAgreement(t *testing.T) {
	db, mock := newMockDB(t)
	// Status flip and role promotion commit or roll back together
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `agreements`").
		WillReturnRows(agreementRows().
			AddRow(5, "resident@example.com", "A-301", "A", 3, 950, "pending", "", time.Now()))
	mock.ExpectExec("UPDATE `agreements`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := gin.New()
	r.PATCH("/acceptUser/:id", AcceptAgreementHandler(db))
	w := doJSON(r, http.MethodPatch, "/acceptUser/5", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptAgreementUnknown(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `agreements`").
		WillReturnRows(agreementRows())
	mock.ExpectRollback()

	r := gin.New()
	r.PATCH("/acceptUser/:id", AcceptAgreementHandler(db))
	w := doJSON(r, http.MethodPatch, "/acceptUser/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectAgreement(t *testing.T) {
	db, mock := newMockDB(t)
	// Rejection only marks the agreement; no user write happens
	mock.ExpectExec("UPDATE `agreements`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := gin.New()
	r.PATCH("/rejectedUser/:id", RejectAgreementHandler(db))
	w := doJSON(r, http.MethodPatch, "/rejectedUser/5", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectAgreementUnknown(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("UPDATE `agreements`").
		WillReturnResult(sqlmock.NewResult(0, 0))

	r := gin.New()
	r.PATCH("/rejectedUser/:id", RejectAgreementHandler(db))
	w := doJSON(r, http.MethodPatch, "/rejectedUser/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAgreement(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT (.+) FROM `agreements`").
		WillReturnRows(agreementRows().
			AddRow(5, "resident@example.com", "A-301", "A", 3, 950, "pending", "", time.Now()))

	r := gin.New()
	r.GET("/agreement/:email", GetAgreementHandler(db))
	w := doJSON(r, http.MethodGet, "/agreement/resident@example.com", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "A-301")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAgreementMissing(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT (.+) FROM `agreements`").
		WillReturnRows(agreementRows())

	r := gin.New()
	r.GET("/agreement/:email", GetAgreementHandler(db))
	w := doJSON(r, http.MethodGet, "/agreement/ghost@example.com", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
