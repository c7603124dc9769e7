package handlers

import (
	"net/http"
	"testing"
	"time"

	"tracklytic/internal/dto"
	apperrors "tracklytic/internal/errors"
	"tracklytic/internal/models"
	"tracklytic/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestBudgetHandler(t *testing.T) {
	suite.Run(t, new(BudgetHandlerSuite))
}

type BudgetHandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *service_mocks.MockBudgetServiceInterface
	handler *BudgetHandler
	e       *echo.Echo
	userID  uuid.UUID
	now     time.Time
}

func (s *BudgetHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = service_mocks.NewMockBudgetServiceInterface(s.ctrl)
	s.handler = NewBudgetHandler(s.service, nil)
	s.now = time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	s.handler.now = func() time.Time { return s.now }
	s.e = newTestEcho()
	s.userID = uuid.New()
}

func (s *BudgetHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BudgetHandlerSuite) TestCreateGeneral() {
	amount := decimal.RequireFromString("500")
	s.service.EXPECT().
		CreateGeneral(s.userID, &dto.GeneralBudgetRequest{BudgetPlan: "Weekly", BudgetAmount: &amount}).
		Return(&models.GeneralSpendingLimit{ID: uuid.New(), UserID: s.userID, BudgetPlan: models.BudgetPlanWeekly, BudgetAmount: amount}, nil)

	c, rec := newUserContext(s.e, newJSONRequest(http.MethodPost, "/tracker/add/general/budget",
		map[string]interface{}{"budget_plan": "Weekly", "budget_amount": 500}), s.userID)

	s.NoError(s.handler.CreateGeneral(c))
	s.Equal(http.StatusCreated, rec.Code)
	s.Equal("General Budget Added", decodeEnvelope(rec).Message)
}

func (s *BudgetHandlerSuite) TestCreateGeneral_AlreadyExists() {
	s.service.EXPECT().CreateGeneral(s.userID, gomock.Any()).
		Return(nil, apperrors.NewDomainError(apperrors.BudgetGeneralExists))

	c, rec := newUserContext(s.e, newJSONRequest(http.MethodPost, "/tracker/add/general/budget",
		map[string]interface{}{"budget_plan": "Daily", "budget_amount": "20.00"}), s.userID)

	s.NoError(s.handler.CreateGeneral(c))
	s.Equal(http.StatusOK, rec.Code)
	env := decodeEnvelope(rec)
	s.Equal("error", env.Status)
	s.Equal(string(apperrors.BudgetGeneralExists), env.Code)
}

func (s *BudgetHandlerSuite) TestCreateGeneral_InvalidPlan() {
	c, _ := newUserContext(s.e, newJSONRequest(http.MethodPost, "/tracker/add/general/budget",
		map[string]interface{}{"budget_plan": "Hourly", "budget_amount": "20.00"}), s.userID)

	var verrs validator.ValidationErrors
	s.Require().ErrorAs(s.handler.CreateGeneral(c), &verrs)
	s.Equal("budget_plan", verrs[0].Field())
}

func (s *BudgetHandlerSuite) TestCreateForCategory_UsesCategoryName() {
	categoryID := uuid.New()
	s.service.EXPECT().CreateForCategory(s.userID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *dto.CategoryBudgetRequest) (*models.CategorySpendingLimit, error) {
			s.Equal(categoryID, *req.Category)
			return &models.CategorySpendingLimit{
				ID:         uuid.New(),
				CategoryID: categoryID,
				BudgetPlan: models.BudgetPlanMonthly,
				Category:   &models.Category{ID: categoryID, Name: "eating  out"},
			}, nil
		})

	c, rec := newUserContext(s.e, newJSONRequest(http.MethodPost, "/tracker/add/category/budget",
		map[string]interface{}{"category": categoryID, "budget_plan": "Monthly", "budget_amount": "150.00"}), s.userID)

	s.NoError(s.handler.CreateForCategory(c))
	s.Equal(http.StatusCreated, rec.Code)
	s.Equal("Eating Out Budget Added", decodeEnvelope(rec).Message)
}

func (s *BudgetHandlerSuite) TestEditGeneral() {
	limitID := uuid.New()
	s.service.EXPECT().EditGeneral(s.userID, limitID, &dto.GeneralBudgetRequest{BudgetPlan: "Daily"}).
		Return(&models.GeneralSpendingLimit{ID: limitID, BudgetPlan: models.BudgetPlanDaily}, nil)

	c, rec := newUserContext(s.e, newJSONRequest(http.MethodPut, "/",
		map[string]interface{}{"budget_plan": "Daily"}), s.userID)
	c.SetParamNames("id")
	c.SetParamValues(limitID.String())

	s.NoError(s.handler.EditGeneral(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("General Budget Updated", decodeEnvelope(rec).Message)
}

func (s *BudgetHandlerSuite) TestEditCategory_WithoutPreloadedCategory() {
	limitID := uuid.New()
	s.service.EXPECT().EditCategory(s.userID, limitID, gomock.Any()).
		Return(&models.CategorySpendingLimit{ID: limitID}, nil)

	c, rec := newUserContext(s.e, newJSONRequest(http.MethodPut, "/",
		map[string]interface{}{"budget_amount": "75.25"}), s.userID)
	c.SetParamNames("id")
	c.SetParamValues(limitID.String())

	s.NoError(s.handler.EditCategory(c))
	s.Equal("Category Budget Updated", decodeEnvelope(rec).Message)
}

func (s *BudgetHandlerSuite) TestEditCategory_NotFound() {
	limitID := uuid.New()
	s.service.EXPECT().EditCategory(s.userID, limitID, gomock.Any()).
		Return(nil, apperrors.NewDomainError(apperrors.BudgetCategoryNotFound))

	c, rec := newUserContext(s.e, newJSONRequest(http.MethodPut, "/",
		map[string]interface{}{"budget_plan": "Weekly"}), s.userID)
	c.SetParamNames("id")
	c.SetParamValues(limitID.String())

	s.NoError(s.handler.EditCategory(c))
	s.Equal(string(apperrors.BudgetCategoryNotFound), decodeEnvelope(rec).Code)
}

func (s *BudgetHandlerSuite) TestList() {
	s.service.EXPECT().List(s.userID).Return(&dto.BudgetListResponse{
		General:    &models.GeneralSpendingLimit{ID: uuid.New(), BudgetPlan: models.BudgetPlanMonthly},
		Categories: []models.CategorySpendingLimit{},
	}, nil)

	c, rec := newUserContext(s.e, newJSONRequest(http.MethodGet, "/tracker/budgets", nil), s.userID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Budgets retrieved successfully", decodeEnvelope(rec).Message)
}

func (s *BudgetHandlerSuite) TestStatus_UsesGeneralMessage() {
	msg := "You have 12.00 left of your Weekly budget"
	s.service.EXPECT().Status(s.userID, s.now).Return(&dto.BudgetStatusResponse{
		General: &models.LimitStatus{BudgetPlan: models.BudgetPlanWeekly, Remaining: decimal.RequireFromString("12")},
		Message: msg,
	}, nil)

	c, rec := newUserContext(s.e, newJSONRequest(http.MethodGet, "/tracker/budget/status", nil), s.userID)

	s.NoError(s.handler.Status(c))
	s.Equal(http.StatusOK, rec.Code)
	env := decodeEnvelope(rec)
	s.Equal(msg, env.Message)
	s.Contains(string(env.Data), `"budget_plan":"Weekly"`)
}
