package ratings

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/SurajDXC/crime-report/middleware"
	"github.com/SurajDXC/crime-report/models"
	"github.com/SurajDXC/crime-report/services"
	"github.com/SurajDXC/crime-report/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func asUser(user models.User, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, user.ID)
		c.Set(middleware.CurrentUserKey, user)
		handler(c)
	}
}

func ratePayload(rating int) *bytes.Buffer {
	jsonData, _ := json.Marshal(map[string]int{"rating": rating})
	return bytes.NewBuffer(jsonData)
}

func TestRate_Success(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "crime_reports" WHERE id = (.+) AND is_blocked = (.+) ORDER BY "crime_reports"."id" LIMIT (.+)`).
		WithArgs("report-uuid", false, 1).
		WillReturnRows(mock.NewRows([]string{"id", "is_blocked"}).AddRow("report-uuid", false))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "credibility_ratings" (.+) ON CONFLICT (.+) DO UPDATE SET (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("rating-uuid"))
	mock.ExpectCommit()

	mock.ExpectExec(`UPDATE crime_reports SET`).
		WithArgs("report-uuid", "report-uuid", "report-uuid", "report-uuid").
		WillReturnResult(sqlmock.NewResult(0, 1))

	user := models.User{ID: "user-uuid", Name: "John Doe"}

	r := testutils.SetupTestRouter()
	h := New(gormDB, services.NewStatsService(gormDB))
	r.POST("/crime-reports/:id/rating", asUser(user, h.Rate))

	req, _ := http.NewRequest(http.MethodPost, "/crime-reports/report-uuid/rating", ratePayload(8))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Rating saved successfully", respBody["message"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Zero is a valid rating, the binding must not reject it
func TestRate_ZeroValue(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "crime_reports" WHERE id = (.+) AND is_blocked = (.+) ORDER BY "crime_reports"."id" LIMIT (.+)`).
		WithArgs("report-uuid", false, 1).
		WillReturnRows(mock.NewRows([]string{"id", "is_blocked"}).AddRow("report-uuid", false))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "credibility_ratings" (.+) ON CONFLICT (.+) DO UPDATE SET (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("rating-uuid"))
	mock.ExpectCommit()

	mock.ExpectExec(`UPDATE crime_reports SET`).
		WithArgs("report-uuid", "report-uuid", "report-uuid", "report-uuid").
		WillReturnResult(sqlmock.NewResult(0, 1))

	user := models.User{ID: "user-uuid"}

	r := testutils.SetupTestRouter()
	h := New(gormDB, services.NewStatsService(gormDB))
	r.POST("/crime-reports/:id/rating", asUser(user, h.Rate))

	req, _ := http.NewRequest(http.MethodPost, "/crime-reports/report-uuid/rating", ratePayload(0))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestRate_OutOfRange(t *testing.T) {
	testCases := []struct {
		name   string
		rating int
	}{
		{"TooHigh", 11},
		{"Negative", -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gormDB, _, cleanup := testutils.SetupTestDB(t)
			defer cleanup()

			user := models.User{ID: "user-uuid"}

			r := testutils.SetupTestRouter()
			h := New(gormDB, services.NewStatsService(gormDB))
			r.POST("/crime-reports/:id/rating", asUser(user, h.Rate))

			req, _ := http.NewRequest(http.MethodPost, "/crime-reports/report-uuid/rating", ratePayload(tc.rating))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()

			r.ServeHTTP(resp, req)

			assert.Equal(t, http.StatusBadRequest, resp.Code)

			var respBody map[string]string
			json.Unmarshal(resp.Body.Bytes(), &respBody)
			assert.Contains(t, respBody["error"], "between 0 and 10")
		})
	}
}

func TestRate_MissingRating(t *testing.T) {
	gormDB, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	user := models.User{ID: "user-uuid"}

	r := testutils.SetupTestRouter()
	h := New(gormDB, services.NewStatsService(gormDB))
	r.POST("/crime-reports/:id/rating", asUser(user, h.Rate))

	req, _ := http.NewRequest(http.MethodPost, "/crime-reports/report-uuid/rating", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRate_ReportBlocked(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "crime_reports" WHERE id = (.+) AND is_blocked = (.+) ORDER BY "crime_reports"."id" LIMIT (.+)`).
		WithArgs("blocked-uuid", false, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	user := models.User{ID: "user-uuid"}

	r := testutils.SetupTestRouter()
	h := New(gormDB, services.NewStatsService(gormDB))
	r.POST("/crime-reports/:id/rating", asUser(user, h.Rate))

	req, _ := http.NewRequest(http.MethodPost, "/crime-reports/blocked-uuid/rating", ratePayload(5))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetOwn_Found(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "credibility_ratings" WHERE report_id = (.+) AND user_id = (.+) ORDER BY "credibility_ratings"."id" LIMIT (.+)`).
		WithArgs("report-uuid", "user-uuid", 1).
		WillReturnRows(mock.NewRows([]string{"id", "report_id", "user_id", "rating"}).
			AddRow("rating-uuid", "report-uuid", "user-uuid", 7))

	user := models.User{ID: "user-uuid"}

	r := testutils.SetupTestRouter()
	h := New(gormDB, services.NewStatsService(gormDB))
	r.GET("/crime-reports/:id/rating", asUser(user, h.GetOwn))

	req, _ := http.NewRequest(http.MethodGet, "/crime-reports/report-uuid/rating", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, float64(7), respBody["rating"])
}

func TestGetOwn_NotRatedYet(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "credibility_ratings" WHERE report_id = (.+) AND user_id = (.+) ORDER BY "credibility_ratings"."id" LIMIT (.+)`).
		WithArgs("report-uuid", "user-uuid", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	user := models.User{ID: "user-uuid"}

	r := testutils.SetupTestRouter()
	h := New(gormDB, services.NewStatsService(gormDB))
	r.GET("/crime-reports/:id/rating", asUser(user, h.GetOwn))

	req, _ := http.NewRequest(http.MethodGet, "/crime-reports/report-uuid/rating", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	rating, present := respBody["rating"]
	assert.True(t, present)
	assert.Nil(t, rating)
}
