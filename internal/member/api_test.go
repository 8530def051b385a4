package member_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/changhyeonkim/member-portal/go-api-server/internal/member"
	sharedError "github.com/changhyeonkim/member-portal/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/pagination"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/password"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/testutil"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// setupTestRouter wires the member routes. The bearer token "valid-<username>" authenticates as username.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	memberService := member.NewMemberService(db, member.NewMemberRepository(), password.NewBcryptHasher(bcrypt.MinCost), nil)
	memberHandler := member.NewMemberHandler(memberService, 5)

	tokenManager := testutil.NewMockTokenManager()
	tokenManager.ValidateTokenFunc = func(tokenString string) (*token.Claims, error) {
		username, ok := strings.CutPrefix(tokenString, "valid-")
		if !ok {
			return nil, token.ErrInvalidToken
		}
		return &token.Claims{Username: username, TokenType: token.ACCESS}, nil
	}

	router := testutil.SetupTestRouter()
	members := router.Group("/api/v1/members")
	members.POST("", memberHandler.Signup)
	members.GET("/check-username", memberHandler.CheckUsername)
	members.GET("/check-email", memberHandler.CheckEmail)

	authorized := members.Group("", middleware.JWT(tokenManager))
	authorized.GET("", memberHandler.List)
	authorized.GET("/me", memberHandler.GetProfile)
	authorized.PUT("/me", memberHandler.UpdateProfile)

	return router
}

func signupBody(username, email string) member.SignupRequest {
	return member.SignupRequest{
		Username:        username,
		Password:        "password123",
		PasswordConfirm: "password123",
		Name:            "홍길동",
		Email:           email,
		Phone1:          "010",
		Phone2:          "1234",
		Phone3:          "5678",
	}
}

func signup(t *testing.T, router *gin.Engine, username, email string) {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/members",
		Body:   signupBody(username, email),
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
}

func TestSignup_Success(t *testing.T) {
	router := setupTestRouter(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/members",
		Body:   signupBody("hong1234", "hong@example.com"),
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var response member.SignupResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.NotZero(t, response.ID)
}

func TestSignup_PasswordMismatch(t *testing.T) {
	router := setupTestRouter(t)

	body := signupBody("hong1234", "hong@example.com")
	body.PasswordConfirm = "password999"

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/members",
		Body:   body,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-003", errorResponse.Code)
}

func TestSignup_Duplicates(t *testing.T) {
	router := setupTestRouter(t)
	signup(t, router, "hong1234", "hong@example.com")

	testCases := []struct {
		name     string
		body     member.SignupRequest
		wantCode string
	}{
		{name: "same username", body: signupBody("hong1234", "other@example.com"), wantCode: "MEMBER-002"},
		{name: "same email", body: signupBody("kim5678", "hong@example.com"), wantCode: "MEMBER-006"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/members",
				Body:   tc.body,
			})

			assert.Equal(t, http.StatusConflict, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, tc.wantCode, errorResponse.Code)
			assert.NotEmpty(t, errorResponse.Message)
		})
	}
}

func TestSignup_ValidationError(t *testing.T) {
	router := setupTestRouter(t)

	testCases := []struct {
		name   string
		mutate func(*member.SignupRequest)
	}{
		{name: "missing username", mutate: func(r *member.SignupRequest) { r.Username = "" }},
		{name: "short username", mutate: func(r *member.SignupRequest) { r.Username = "abc" }},
		{name: "username with symbols", mutate: func(r *member.SignupRequest) { r.Username = "hong_1234" }},
		{name: "short password", mutate: func(r *member.SignupRequest) { r.Password = "short" }},
		{name: "invalid email", mutate: func(r *member.SignupRequest) { r.Email = "invalid-email-format" }},
		{name: "missing name", mutate: func(r *member.SignupRequest) { r.Name = "" }},
		{name: "letters in phone", mutate: func(r *member.SignupRequest) { r.Phone2 = "12a4" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body := signupBody("hong1234", "hong@example.com")
			tc.mutate(&body)

			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/members",
				Body:   body,
			})

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.NotEmpty(t, errorResponse.Code)
			assert.NotEmpty(t, errorResponse.Message)
		})
	}
}

func TestCheckUsernameAndEmail(t *testing.T) {
	router := setupTestRouter(t)
	signup(t, router, "hong1234", "hong@example.com")

	testCases := []struct {
		name          string
		url           string
		wantDuplicate bool
	}{
		{name: "taken username", url: "/api/v1/members/check-username?username=hong1234", wantDuplicate: true},
		{name: "free username", url: "/api/v1/members/check-username?username=kim5678", wantDuplicate: false},
		{name: "taken email", url: "/api/v1/members/check-email?email=hong@example.com", wantDuplicate: true},
		{name: "free email", url: "/api/v1/members/check-email?email=kim@example.com", wantDuplicate: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodGet,
				URL:    tc.url,
			})

			require.Equal(t, http.StatusOK, recorder.Code)

			var response member.DuplicateCheckResponse
			testutil.ParseResponse(t, recorder, &response)
			assert.Equal(t, tc.wantDuplicate, response.Duplicate)
		})
	}
}

func TestCheckUsername_MissingQuery(t *testing.T) {
	router := setupTestRouter(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/check-username",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestList_RequiresToken(t *testing.T) {
	router := setupTestRouter(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members",
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestList_Paginated(t *testing.T) {
	router := setupTestRouter(t)
	for _, username := range []string{"user0001", "user0002", "user0003", "user0004", "user0005", "user0006", "user0007"} {
		signup(t, router, username, username+"@example.com")
	}

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:      http.MethodGet,
		URL:         "/api/v1/members?page=1",
		BearerToken: "valid-user0001",
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response pagination.Page[member.MemberSummary]
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, 1, response.Page)
	assert.Equal(t, 5, response.Size)
	assert.Equal(t, int64(7), response.TotalElements)
	assert.Equal(t, 2, response.TotalPages)
	assert.True(t, response.HasPrev)
	assert.False(t, response.HasNext)
	require.Len(t, response.Content, 2)
	assert.Equal(t, "user0006", response.Content[0].Username)
	assert.NotContains(t, recorder.Body.String(), "password")
}

func TestList_NegativePage(t *testing.T) {
	router := setupTestRouter(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:      http.MethodGet,
		URL:         "/api/v1/members?page=-1",
		BearerToken: "valid-hong1234",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-005", errorResponse.Code)
}

func TestGetProfile_Success(t *testing.T) {
	router := setupTestRouter(t)
	signup(t, router, "hong1234", "hong@example.com")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:      http.MethodGet,
		URL:         "/api/v1/members/me",
		BearerToken: "valid-hong1234",
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response member.ProfileResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "hong1234", response.Username)
	assert.Equal(t, "010", response.Phone1)
	assert.Equal(t, "1234", response.Phone2)
	assert.Equal(t, "5678", response.Phone3)
}

func TestGetProfile_UnknownMember(t *testing.T) {
	router := setupTestRouter(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:      http.MethodGet,
		URL:         "/api/v1/members/me",
		BearerToken: "valid-ghost",
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-001", errorResponse.Code)
}

func TestUpdateProfile_Success(t *testing.T) {
	router := setupTestRouter(t)
	signup(t, router, "hong1234", "hong@example.com")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/members/me",
		Body: member.UpdateProfileRequest{
			Name:    "김철수",
			Email:   "changed@example.com",
			Zipcode: "04524",
		},
		BearerToken: "valid-hong1234",
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:      http.MethodGet,
		URL:         "/api/v1/members/me",
		BearerToken: "valid-hong1234",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response member.ProfileResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "김철수", response.Name)
	assert.Equal(t, "changed@example.com", response.Email)
	assert.Empty(t, response.PhoneNumber)
}

func TestUpdateProfile_PasswordMismatch(t *testing.T) {
	router := setupTestRouter(t)
	signup(t, router, "hong1234", "hong@example.com")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/members/me",
		Body: member.UpdateProfileRequest{
			Password:        "newpassword1",
			PasswordConfirm: "newpassword2",
			Name:            "홍길동",
			Email:           "hong@example.com",
		},
		BearerToken: "valid-hong1234",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-003", errorResponse.Code)
}

func TestUpdateProfile_RequiresToken(t *testing.T) {
	router := setupTestRouter(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:      http.MethodPut,
		URL:         "/api/v1/members/me",
		Body:        member.UpdateProfileRequest{Name: "홍길동", Email: "hong@example.com"},
		BearerToken: "forged",
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
