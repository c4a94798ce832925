package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avGenie/go-order-admin/internal/app/controller/http/auth/mock"
	"github.com/avGenie/go-order-admin/internal/app/entity"
	err_storage "github.com/avGenie/go-order-admin/internal/app/storage/api/errors"
	usecase "github.com/avGenie/go-order-admin/internal/app/usecase/converter"
	"github.com/avGenie/go-order-admin/internal/app/usecase/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	inputCorrect = strings.TrimSpace(`
	{
		"login": "login",
		"password": "password"
	}`)

	inputEmptyLogin = strings.TrimSpace(`
	{
		"login": "",
		"password": "password"
	}`)

	inputEmptyPassword = strings.TrimSpace(`
	{
		"login": "login",
		"password": ""
	}`)

	inputEmptyLoginPassword = strings.TrimSpace(`
	{
		"login": "",
		"password": ""
	}`)

	inputInvalid = `<invalid json>`

	testUser = entity.User{
		ID:    "ac2a4811-4f10-487f-bde3-e39a14af7cd8",
		Login: "login",
	}
)

type authTestCase struct {
	name            string
	body            string
	callErr         error
	isCall          bool
	authHeaderEmpty bool

	statusCode int
}

func credentialsTestCases(successStatus int, knownErr error, knownErrStatus int) []authTestCase {
	return []authTestCase{
		{
			name:       "correct input data",
			body:       inputCorrect,
			isCall:     true,
			statusCode: successStatus,
		},
		{
			name:            "known storage error",
			body:            inputCorrect,
			callErr:         knownErr,
			isCall:          true,
			authHeaderEmpty: true,
			statusCode:      knownErrStatus,
		},
		{
			name:            "storage error",
			body:            inputCorrect,
			callErr:         errors.New(""),
			isCall:          true,
			authHeaderEmpty: true,
			statusCode:      http.StatusInternalServerError,
		},
		{
			name:            "invalid user credentials",
			body:            inputInvalid,
			authHeaderEmpty: true,
			statusCode:      http.StatusBadRequest,
		},
		{
			name:            "empty login in user credentials",
			body:            inputEmptyLogin,
			authHeaderEmpty: true,
			statusCode:      http.StatusBadRequest,
		},
		{
			name:            "empty password in user credentials",
			body:            inputEmptyPassword,
			authHeaderEmpty: true,
			statusCode:      http.StatusBadRequest,
		},
		{
			name:            "empty login and password in user credentials",
			body:            inputEmptyLoginPassword,
			authHeaderEmpty: true,
			statusCode:      http.StatusBadRequest,
		},
	}
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockUserAuthenticator(ctrl)
	tokens := crypto.NewTokens("secret", time.Hour)

	for _, test := range credentialsTestCases(http.StatusCreated, err_storage.ErrLoginExists, http.StatusConflict) {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(test.body))
			writer := httptest.NewRecorder()

			if test.isCall {
				s.EXPECT().CreateUser(gomock.Any(), "login", "password").Return(testUser, test.callErr)
			} else {
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			authUser := New(s, tokens, time.Second)
			handler := authUser.CreateUser()
			handler(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			assert.Equal(t, test.statusCode, res.StatusCode)
			checkAuthResponse(t, tokens, res, test.authHeaderEmpty)
		})
	}
}

func TestAuthenticateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockUserAuthenticator(ctrl)
	tokens := crypto.NewTokens("secret", time.Hour)

	for _, test := range credentialsTestCases(http.StatusOK, crypto.ErrWrongPassword, http.StatusUnauthorized) {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(test.body))
			writer := httptest.NewRecorder()

			if test.isCall {
				s.EXPECT().AuthUser(gomock.Any(), "login", "password").Return(testUser, test.callErr)
			} else {
				s.EXPECT().AuthUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			authUser := New(s, tokens, time.Second)
			handler := authUser.AuthenticateUser()
			handler(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			assert.Equal(t, test.statusCode, res.StatusCode)
			checkAuthResponse(t, tokens, res, test.authHeaderEmpty)
		})
	}
}

func TestLogout(t *testing.T) {
	authUser := New(nil, crypto.NewTokens("secret", time.Hour), 0)

	request := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	writer := httptest.NewRecorder()
	authUser.Logout()(writer, request)

	res := writer.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Len(t, res.Cookies(), 1)
	assert.Equal(t, usecase.AuthCookie, res.Cookies()[0].Name)
	assert.Less(t, res.Cookies()[0].MaxAge, 0)
}

func checkAuthResponse(t *testing.T, tokens *crypto.Tokens, res *http.Response, authHeaderEmpty bool) {
	t.Helper()

	authContent := res.Header.Get(usecase.AuthHeader)
	if authHeaderEmpty {
		assert.Empty(t, authContent)
		return
	}

	require.NotEmpty(t, authContent)
	userID, err := usecase.GetUserIDFromAuthHeader(tokens, authContent)
	require.NoError(t, err)
	assert.Equal(t, testUser.ID, userID)

	var jwtCookie *http.Cookie
	for _, cookie := range res.Cookies() {
		if cookie.Name == usecase.AuthCookie {
			jwtCookie = cookie
		}
	}
	require.NotNil(t, jwtCookie)
	assert.True(t, jwtCookie.HttpOnly)
}
