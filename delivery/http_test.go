package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnsphere/domain"
	"learnsphere/utils"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func init() {
	// main registers these at boot; handler tests need them too
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.RegisterCustomValidations(v)
	}
}

type stubAuthUC struct {
	jwt         *utils.JWTManager
	gotEmail    string
	registerErr error
	loginToken  string
	loginErr    error
	changeErr   error
	resetErr    error
}

func (s *stubAuthUC) GetAccessTokenManager() *utils.JWTManager { return s.jwt }

func (s *stubAuthUC) Register(_ context.Context, email, _, _ string) error {
	s.gotEmail = email
	return s.registerErr
}

func (s *stubAuthUC) Login(_ context.Context, email, _ string) (string, error) {
	s.gotEmail = email
	return s.loginToken, s.loginErr
}

func (s *stubAuthUC) ChangePassword(context.Context, uint, string, string) error {
	return s.changeErr
}

func (s *stubAuthUC) ResetPassword(context.Context, string, string) error { return s.resetErr }

type stubEnrollmentUC struct {
	addResult  *domain.AddCourseResult
	addErr     error
	removeErr  error
	courses    []domain.Course
	details    *domain.CourseDetails
	detailsErr error
}

func (s *stubEnrollmentUC) AddCourse(context.Context, uint, uint) (*domain.AddCourseResult, error) {
	return s.addResult, s.addErr
}

func (s *stubEnrollmentUC) RemoveCourse(context.Context, uint, uint) error { return s.removeErr }

func (s *stubEnrollmentUC) ListCourses(context.Context) ([]domain.Course, error) {
	return s.courses, nil
}

func (s *stubEnrollmentUC) GetCourseDetails(context.Context, uint) (*domain.CourseDetails, error) {
	return s.details, s.detailsErr
}

type stubProfileUC struct {
	student *domain.Student
	getErr  error
	editErr error
}

func (s *stubProfileUC) GetProfile(context.Context, uint) (*domain.Student, error) {
	return s.student, s.getErr
}

func (s *stubProfileUC) EditProfile(context.Context, uint, domain.Student) error {
	return s.editErr
}

type stubFeedbackUC struct {
	submitErr error
}

func (s *stubFeedbackUC) SubmitFeedback(context.Context, uint, uint, string) error {
	return s.submitErr
}

func newTestRouter(auth *stubAuthUC, enrollment *stubEnrollmentUC, profile *stubProfileUC, feedback *stubFeedbackUC) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewAuthHandler(r, auth)
	NewStudentHandler(r, profile, enrollment, feedback, auth.jwt)
	return r
}

func bearerToken(t *testing.T, jwt *utils.JWTManager) string {
	t.Helper()
	token, err := jwt.GenerateToken(1, "a@x.com")
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(r *gin.Engine, method, path, body, auth string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	auth := &stubAuthUC{jwt: utils.NewJWTManager(testSecret, domain.TokenDuration)}
	r := newTestRouter(auth, &stubEnrollmentUC{}, &stubProfileUC{}, &stubFeedbackUC{})

	w := doJSON(r, http.MethodPost, "/student/register",
		`{"name":"Alice","email":"Alice@X.com","password":"password123"}`, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	// the email reaches the service exactly as submitted
	assert.Equal(t, "Alice@X.com", auth.gotEmail)

	// malformed body never reaches the service
	w = doJSON(r, http.MethodPost, "/student/register", `{"email":"a@x.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// duplicate email surfaces as 409
	auth.registerErr = domain.E(domain.ErrConflict, "Email already exists")
	w = doJSON(r, http.MethodPost, "/student/register",
		`{"name":"Alice","email":"a@x.com","password":"password123"}`, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	auth := &stubAuthUC{
		jwt:        utils.NewJWTManager(testSecret, domain.TokenDuration),
		loginToken: "signed-token",
	}
	r := newTestRouter(auth, &stubEnrollmentUC{}, &stubProfileUC{}, &stubFeedbackUC{})

	w := doJSON(r, http.MethodPost, "/student/login",
		`{"email":"a@x.com","password":"password123"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "signed-token", body["token"])

	auth.loginErr = domain.E(domain.ErrAuth, "Invalid credentials")
	w = doJSON(r, http.MethodPost, "/student/login",
		`{"email":"a@x.com","password":"wrong-pass"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	auth := &stubAuthUC{jwt: utils.NewJWTManager(testSecret, domain.TokenDuration)}
	r := newTestRouter(auth, &stubEnrollmentUC{}, &stubProfileUC{}, &stubFeedbackUC{})

	w := doJSON(r, http.MethodGet, "/student/profile", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/student/profile", "", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddCourseEndpoint(t *testing.T) {
	auth := &stubAuthUC{jwt: utils.NewJWTManager(testSecret, domain.TokenDuration)}
	enrollment := &stubEnrollmentUC{
		addResult: &domain.AddCourseResult{
			Message:      "Course added successfully",
			Course:       domain.CourseSummary{ID: 3, Title: "C1", Price: 50.00},
			TotalPayable: 50.00,
		},
	}
	r := newTestRouter(auth, enrollment, &stubProfileUC{}, &stubFeedbackUC{})
	token := bearerToken(t, auth.jwt)

	w := doJSON(r, http.MethodPost, "/student/courses/3", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 50.00, body["total_payable"])

	// non-numeric course id is a validation failure
	w = doJSON(r, http.MethodPost, "/student/courses/abc", "", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	enrollment.addResult = nil
	enrollment.addErr = domain.E(domain.ErrConflict, "Course already added to your account")
	w = doJSON(r, http.MethodPost, "/student/courses/3", "", token)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRemoveCourseEndpoint(t *testing.T) {
	auth := &stubAuthUC{jwt: utils.NewJWTManager(testSecret, domain.TokenDuration)}
	enrollment := &stubEnrollmentUC{}
	r := newTestRouter(auth, enrollment, &stubProfileUC{}, &stubFeedbackUC{})
	token := bearerToken(t, auth.jwt)

	w := doJSON(r, http.MethodDelete, "/student/courses/3", "", token)
	assert.Equal(t, http.StatusOK, w.Code)

	enrollment.removeErr = domain.E(domain.ErrValidation, "Course not found in student selection")
	w = doJSON(r, http.MethodDelete, "/student/courses/3", "", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitFeedbackEndpoint(t *testing.T) {
	auth := &stubAuthUC{jwt: utils.NewJWTManager(testSecret, domain.TokenDuration)}
	r := newTestRouter(auth, &stubEnrollmentUC{}, &stubProfileUC{}, &stubFeedbackUC{})
	token := bearerToken(t, auth.jwt)

	w := doJSON(r, http.MethodPost, "/student/courses/3/feedback",
		`{"feedback":"great course"}`, token)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/student/courses/3/feedback", `{}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCourseDetailsEndpoint(t *testing.T) {
	auth := &stubAuthUC{jwt: utils.NewJWTManager(testSecret, domain.TokenDuration)}
	enrollment := &stubEnrollmentUC{
		details: &domain.CourseDetails{
			Course:    domain.CourseSummary{ID: 3, Title: "C1", Price: 50.00},
			Feedbacks: []string{"great course"},
		},
	}
	r := newTestRouter(auth, enrollment, &stubProfileUC{}, &stubFeedbackUC{})
	token := bearerToken(t, auth.jwt)

	w := doJSON(r, http.MethodGet, "/student/courses/3", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	enrollment.details = nil
	enrollment.detailsErr = domain.E(domain.ErrNotFound, "Course not found")
	w = doJSON(r, http.MethodGet, "/student/courses/3", "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
