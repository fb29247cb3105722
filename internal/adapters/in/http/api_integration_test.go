package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"logistics/cmd"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminEmail    = "admin@logisoft.io"
	adminPassword = "admin-pass"
)

// APIIntegrationTestSuite drives the full HTTP stack against a migrated
// PostgreSQL schema.
type APIIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	app      *cmd.CompositionRoot
	router   *echo.Echo
}

func (suite *APIIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	app, err := cmd.NewCompositionRoot(cmd.Config{
		JWTSecret:  "integration-secret",
		TokenTTL:   time.Minute,
		BcryptCost: bcrypt.MinCost,
	}, database.DB, nil)
	suite.Require().NoError(err)
	suite.app = app

	router, err := app.CreateRouter()
	suite.Require().NoError(err)
	suite.router = router
}

func (suite *APIIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *APIIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	command, err := commands.NewEnsureAdminCommand(adminEmail, adminPassword, commands.DefaultAdminCompany)
	suite.Require().NoError(err)
	_, err = suite.app.CreateEnsureAdminCommandHandler().Handle(context.Background(), command)
	suite.Require().NoError(err)
}

func (suite *APIIntegrationTestSuite) do(method, target, token string, body any) *httptest.ResponseRecorder {
	var payload string
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		payload = string(raw)
	}
	return serve(suite.router, method, target, token, payload)
}

func (suite *APIIntegrationTestSuite) decode(rec *httptest.ResponseRecorder, status int, out any) {
	suite.Require().Equal(status, rec.Code, rec.Body.String())
	if out != nil {
		suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out))
	}
}

func (suite *APIIntegrationTestSuite) login(email, password string) string {
	form := url.Values{"username": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	var token servers.Token
	suite.decode(rec, http.StatusOK, &token)
	suite.Require().Equal("bearer", token.TokenType)
	return token.AccessToken
}

func (suite *APIIntegrationTestSuite) signup(email string) servers.User {
	var created servers.User
	suite.decode(suite.do(http.MethodPost, "/signup/msme", "", servers.SignupRequest{
		UserDetails:    servers.SignupUserDetails{Email: email, Password: "shipper-pass"},
		CompanyDetails: servers.SignupCompanyDetails{Name: "Acme Traders", GstNumber: "GST-" + email, Address: "Pune"},
	}), http.StatusCreated, &created)
	return created
}

func (suite *APIIntegrationTestSuite) shipperToken(email string) string {
	suite.signup(email)
	return suite.login(email, "shipper-pass")
}

func (suite *APIIntegrationTestSuite) createZoneA(adminToken string) servers.Zone {
	var z servers.Zone
	suite.decode(suite.do(http.MethodPost, "/zones", adminToken, servers.NewZone{
		Name:        "A",
		Coordinates: [][]float64{{10, 10}, {10, 20}, {20, 20}, {20, 10}},
	}), http.StatusCreated, &z)
	return z
}

func (suite *APIIntegrationTestSuite) createVehicle(adminToken, number string, z *servers.Zone) servers.Vehicle {
	body := servers.NewVehicle{VehicleNumber: number, MaxWeightKg: 500, MaxVolumeM3: 5}
	if z != nil {
		id := z.Id
		body.ZoneId = &id
	}
	var v servers.Vehicle
	suite.decode(suite.do(http.MethodPost, "/vehicles", adminToken, body), http.StatusCreated, &v)
	return v
}

func (suite *APIIntegrationTestSuite) createOrder(token string, lat, lng float64) servers.Order {
	var o servers.Order
	suite.decode(suite.do(http.MethodPost, "/orders", token, servers.NewOrder{
		LengthCm: 100, WidthCm: 100, HeightCm: 100, WeightKg: 50, Latitude: lat, Longitude: lng,
	}), http.StatusCreated, &o)
	return o
}

func (suite *APIIntegrationTestSuite) TestSignupLoginAndProfile() {
	// Given
	created := suite.signup("Shipper@Example.com")
	token := suite.login("shipper@example.com", "shipper-pass")

	// When
	var me servers.User
	suite.decode(suite.do(http.MethodGet, "/users/me", token, nil), http.StatusOK, &me)

	// Then
	suite.Equal(servers.MSME, created.Role)
	suite.Equal("shipper@example.com", me.Email)
	suite.Equal(created.Id, me.Id)
	suite.Require().NotNil(me.Company)
	suite.Equal("Acme Traders", me.Company.Name)
}

func (suite *APIIntegrationTestSuite) TestDuplicateSignupIsConflict() {
	// Given
	suite.signup("shipper@example.com")

	// When
	rec := suite.do(http.MethodPost, "/signup/msme", "", servers.SignupRequest{
		UserDetails:    servers.SignupUserDetails{Email: "shipper@example.com", Password: "other-pass"},
		CompanyDetails: servers.SignupCompanyDetails{Name: "Other", GstNumber: "GST-2", Address: "Goa"},
	})

	// Then
	var body servers.Error
	suite.decode(rec, http.StatusConflict, &body)
	suite.Equal(servers.Conflict, body.Kind)
}

func (suite *APIIntegrationTestSuite) TestWrongPasswordIsUnauthenticated() {
	// Given
	suite.signup("shipper@example.com")
	form := url.Values{"username": {"shipper@example.com"}, "password": {"wrong-pass"}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	// When
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	// Then
	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.Equal("Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
}

func (suite *APIIntegrationTestSuite) TestOrderInsideZoneIsAutoAssigned() {
	// Given
	adminToken := suite.login(adminEmail, adminPassword)
	zoneA := suite.createZoneA(adminToken)
	v1 := suite.createVehicle(adminToken, "V1", &zoneA)
	token := suite.shipperToken("shipper@example.com")

	// When
	created := suite.createOrder(token, 15, 15)

	// Then
	suite.Equal(servers.ASSIGNED, created.Status)
	suite.InDelta(1.0, created.VolumeM3, 1e-9)
	suite.Require().NotNil(created.AssignedVehicleId)
	suite.Equal(v1.Id, *created.AssignedVehicleId)
	suite.Require().NotNil(created.AssignedVehicleNumber)
	suite.Equal("V1", *created.AssignedVehicleNumber)

	var vehicles []servers.Vehicle
	suite.decode(suite.do(http.MethodGet, "/vehicles", adminToken, nil), http.StatusOK, &vehicles)
	suite.Require().Len(vehicles, 1)
	suite.InDelta(1.0, vehicles[0].CurrentVolumeM3, 1e-9)
	suite.InDelta(20.0, vehicles[0].UtilizationPercentage, 1e-9)
}

func (suite *APIIntegrationTestSuite) TestOrderInZoneWithoutVehiclesStaysPending() {
	// Given
	adminToken := suite.login(adminEmail, adminPassword)
	suite.createZoneA(adminToken)
	token := suite.shipperToken("shipper@example.com")

	// When
	created := suite.createOrder(token, 15, 15)

	// Then
	suite.Equal(servers.PENDING, created.Status)
	suite.Nil(created.AssignedVehicleId)
}

func (suite *APIIntegrationTestSuite) TestOrderOutsideZonesStaysPending() {
	// Given
	adminToken := suite.login(adminEmail, adminPassword)
	zoneA := suite.createZoneA(adminToken)
	suite.createVehicle(adminToken, "V1", &zoneA)
	token := suite.shipperToken("shipper@example.com")

	// When
	created := suite.createOrder(token, 1, 1)

	// Then
	suite.Equal(servers.PENDING, created.Status)
	suite.Nil(created.AssignedVehicleId)
}

func (suite *APIIntegrationTestSuite) TestZoneWithVehicleCannotBeDeleted() {
	// Given
	adminToken := suite.login(adminEmail, adminPassword)
	zoneA := suite.createZoneA(adminToken)
	v1 := suite.createVehicle(adminToken, "V1", &zoneA)

	// When
	rec := suite.do(http.MethodDelete, "/zones/"+zoneA.Id.String(), adminToken, nil)

	// Then
	var body servers.Error
	suite.decode(rec, http.StatusConflict, &body)
	suite.Equal(servers.Conflict, body.Kind)

	var zones []servers.Zone
	suite.decode(suite.do(http.MethodGet, "/zones", adminToken, nil), http.StatusOK, &zones)
	suite.Require().Len(zones, 1)

	var msg servers.Message
	suite.decode(suite.do(http.MethodDelete, "/vehicles/"+v1.Id.String(), adminToken, nil), http.StatusOK, &msg)
	suite.Equal("Vehicle deleted successfully", msg.Message)
	suite.decode(suite.do(http.MethodDelete, "/zones/"+zoneA.Id.String(), adminToken, nil), http.StatusOK, &msg)
	suite.Equal("Zone deleted successfully", msg.Message)
}

func (suite *APIIntegrationTestSuite) TestShipperCannotManageRegistry() {
	// Given
	token := suite.shipperToken("shipper@example.com")

	// When
	rec := suite.do(http.MethodPost, "/zones", token, servers.NewZone{
		Name:        "B",
		Coordinates: [][]float64{{0, 0}, {0, 1}, {1, 1}},
	})

	// Then
	var body servers.Error
	suite.decode(rec, http.StatusForbidden, &body)
	suite.Equal(servers.Forbidden, body.Kind)
}

func (suite *APIIntegrationTestSuite) TestManualTransitions() {
	// Given
	adminToken := suite.login(adminEmail, adminPassword)
	zoneA := suite.createZoneA(adminToken)
	v1 := suite.createVehicle(adminToken, "V1", &zoneA)
	token := suite.shipperToken("shipper@example.com")
	created := suite.createOrder(token, 15, 15)
	orderPath := "/orders/" + created.Id.String()

	// When
	var unassigned, reassigned, shipped servers.Order
	suite.decode(suite.do(http.MethodPost, orderPath+"/unassign", adminToken, nil), http.StatusOK, &unassigned)
	suite.decode(suite.do(http.MethodPost, orderPath+"/assign", adminToken,
		servers.AssignOrderRequest{VehicleId: v1.Id}), http.StatusOK, &reassigned)
	suite.decode(suite.do(http.MethodPost, orderPath+"/ship", adminToken, nil), http.StatusOK, &shipped)
	cancelRec := suite.do(http.MethodPost, orderPath+"/cancel", token, nil)

	// Then
	suite.Equal(servers.PENDING, unassigned.Status)
	suite.Nil(unassigned.AssignedVehicleId)
	suite.Equal(servers.ASSIGNED, reassigned.Status)
	suite.Equal(servers.SHIPPED, shipped.Status)
	suite.Require().NotNil(shipped.AssignedVehicleNumber)
	suite.Equal("V1", *shipped.AssignedVehicleNumber)

	var body servers.Error
	suite.decode(cancelRec, http.StatusConflict, &body)
	suite.Equal(servers.InvalidState, body.Kind)
}

func (suite *APIIntegrationTestSuite) TestShipperCancelsPendingOrder() {
	// Given
	token := suite.shipperToken("shipper@example.com")
	other := suite.shipperToken("other@example.com")
	created := suite.createOrder(token, 1, 1)
	orderPath := "/orders/" + created.Id.String()

	// When
	foreignRec := suite.do(http.MethodPost, orderPath+"/cancel", other, nil)
	var cancelled servers.Order
	suite.decode(suite.do(http.MethodPost, orderPath+"/cancel", token, nil), http.StatusOK, &cancelled)

	// Then
	suite.Equal(http.StatusForbidden, foreignRec.Code)
	suite.Equal(servers.CANCELLED, cancelled.Status)
}

func (suite *APIIntegrationTestSuite) TestOrdersAreScopedToOwner() {
	// Given
	adminToken := suite.login(adminEmail, adminPassword)
	token := suite.shipperToken("shipper@example.com")
	other := suite.shipperToken("other@example.com")
	first := suite.createOrder(token, 1, 1)
	second := suite.createOrder(token, 2, 2)
	suite.createOrder(other, 3, 3)

	// When
	var own, all []servers.Order
	suite.decode(suite.do(http.MethodGet, "/orders", token, nil), http.StatusOK, &own)
	suite.decode(suite.do(http.MethodGet, "/orders", adminToken, nil), http.StatusOK, &all)

	// Then
	suite.Require().Len(own, 2)
	suite.Equal(second.Id, own[0].Id)
	suite.Equal(first.Id, own[1].Id)
	suite.Len(all, 3)
}

func (suite *APIIntegrationTestSuite) TestCompatibleVehicles() {
	// Given
	adminToken := suite.login(adminEmail, adminPassword)
	zoneA := suite.createZoneA(adminToken)
	v1 := suite.createVehicle(adminToken, "V1", &zoneA)
	v2 := suite.createVehicle(adminToken, "V2", &zoneA)
	suite.createVehicle(adminToken, "V3", nil)
	token := suite.shipperToken("shipper@example.com")
	created := suite.createOrder(token, 15, 15)

	// When
	var vehicles []servers.Vehicle
	suite.decode(suite.do(http.MethodGet, "/orders/"+created.Id.String()+"/compatible-vehicles", token, nil),
		http.StatusOK, &vehicles)

	// Then
	suite.Require().Len(vehicles, 2)
	suite.Equal(v1.Id, vehicles[0].Id)
	suite.Equal(v2.Id, vehicles[1].Id)
}

func (suite *APIIntegrationTestSuite) TestSettings() {
	// Given
	token := suite.shipperToken("shipper@example.com")
	current := "shipper-pass"
	next := "brand-new-pass"
	name := "Acme Logistics"

	// When
	wrongRec := suite.do(http.MethodPut, "/settings/user", token, servers.UserSettingsUpdate{
		CurrentPassword: &next, NewPassword: &next,
	})
	var profile servers.User
	suite.decode(suite.do(http.MethodPut, "/settings/user", token, servers.UserSettingsUpdate{
		CurrentPassword: &current, NewPassword: &next,
	}), http.StatusOK, &profile)
	var updated servers.Company
	suite.decode(suite.do(http.MethodPut, "/settings/company", token, servers.CompanySettingsUpdate{
		Name: &name,
	}), http.StatusOK, &updated)

	// Then
	suite.Equal(http.StatusForbidden, wrongRec.Code)
	suite.Equal("Acme Logistics", updated.Name)
	suite.NotEmpty(suite.login("shipper@example.com", next))
}

func TestAPIIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(APIIntegrationTestSuite))
}
