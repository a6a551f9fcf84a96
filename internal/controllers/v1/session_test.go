package v1_test

import (
	"net/http"

	v1 "github.com/ldk-ekonomi/kas-backend/internal/controllers/v1"
	"github.com/ldk-ekonomi/kas-backend/internal/models"
	"github.com/ldk-ekonomi/kas-backend/test"
)

func (suite *TestSuiteStandard) TestSessionOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/session", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET, POST, DELETE", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestLogin() {
	user := suite.createTestUser(models.User{
		Name:     "Siti Aminah",
		Email:    "bendahara@ldk-ubb.com",
		Password: "rahasia123",
		Role:     models.RoleBendahara,
	})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/session", v1.SessionEditable{
		Email:    user.Email,
		Password: "rahasia123",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(user.ID, response.Data.UserID)
	suite.Assert().Equal("Siti Aminah", response.Data.Name)
	suite.Assert().NotEmpty(response.Data.Token)
}

func (suite *TestSuiteStandard) TestLoginFailure() {
	suite.createTestUser(models.User{
		Name:     "Budi",
		Email:    "budi@ldk-ubb.com",
		Password: "rahasia123",
	})

	for _, credentials := range []v1.SessionEditable{
		{Email: "nobody@ldk-ubb.com", Password: "rahasia123"},
		{Email: "budi@ldk-ubb.com", Password: "wrong"},
	} {
		recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/session", credentials)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)

		// Unknown email and wrong password return the same message
		var response v1.SessionResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Require().NotNil(response.Error)
		suite.Assert().Equal("login failed, check your email address and password", *response.Error)
	}

	// Failed logins must not leave session records behind
	var count int64
	suite.Require().NoError(models.DB.Model(&models.Session{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestLoginEmptyBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/session", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetSession() {
	_, token := suite.loginAs(models.RoleAnggota)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/session", nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.IdentityResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(models.RoleAnggota, response.Data.Role)
}

func (suite *TestSuiteStandard) TestGetSessionWithoutToken() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/session", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestLogout() {
	_, token := suite.loginAs(models.RoleAnggota)

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/session", nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// The token is invalid after logout
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/session", nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestSessionSurvivesUserDeletion() {
	user, token := suite.loginAs(models.RoleBendahara)

	suite.Require().NoError(models.DB.Delete(&models.User{}, user.ID).Error)

	// The snapshot carries the identity while the user record is gone
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/session", nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.IdentityResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(user.ID, response.Data.UserID)
	suite.Assert().Equal(user.Name, response.Data.Name)
}
