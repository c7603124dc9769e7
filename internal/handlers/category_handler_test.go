package handlers

import (
	"errors"
	"net/http"
	"testing"

	"tracklytic/internal/dto"
	apperrors "tracklytic/internal/errors"
	"tracklytic/internal/models"
	"tracklytic/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestCategoryHandler(t *testing.T) {
	suite.Run(t, new(CategoryHandlerSuite))
}

type CategoryHandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *service_mocks.MockCategoryServiceInterface
	handler *CategoryHandler
	e       *echo.Echo
	userID  uuid.UUID
}

func (s *CategoryHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.service)
	s.e = newTestEcho()
	s.userID = uuid.New()
}

func (s *CategoryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CategoryHandlerSuite) TestCreate() {
	category := &models.Category{ID: uuid.New(), UserID: s.userID, Name: "Groceries", Type: models.CategoryTypeExpense}
	s.service.EXPECT().
		Create(s.userID, &dto.CreateCategoryRequest{Name: "Groceries", Type: "Expense"}).
		Return(category, nil)

	c, rec := newUserContext(s.e, newJSONRequest(http.MethodPost, "/tracker/add/category",
		map[string]string{"name": "Groceries", "type": "Expense"}), s.userID)

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusCreated, rec.Code)
	env := decodeEnvelope(rec)
	s.Equal("success", env.Status)
	s.Equal("Category Added", env.Message)
	s.Contains(string(env.Data), category.ID.String())
}

func (s *CategoryHandlerSuite) TestCreate_BlankName() {
	c, _ := newUserContext(s.e, newJSONRequest(http.MethodPost, "/tracker/add/category",
		map[string]string{"name": "   ", "type": "Expense"}), s.userID)

	var verrs validator.ValidationErrors
	s.Require().ErrorAs(s.handler.Create(c), &verrs)
	s.Equal("name", verrs[0].Field())
	s.Equal("not_blank", verrs[0].Tag())
}

func (s *CategoryHandlerSuite) TestCreate_Duplicate() {
	s.service.EXPECT().Create(s.userID, gomock.Any()).
		Return(nil, apperrors.Domainf(apperrors.CategoryAlreadyExists, "Category Groceries already exists"))

	c, rec := newUserContext(s.e, newJSONRequest(http.MethodPost, "/tracker/add/category",
		map[string]string{"name": "groceries", "type": "Expense"}), s.userID)

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusOK, rec.Code)
	env := decodeEnvelope(rec)
	s.Equal("error", env.Status)
	s.Equal(string(apperrors.CategoryAlreadyExists), env.Code)
	s.Equal("Category Groceries already exists", env.Message)
}

func (s *CategoryHandlerSuite) TestList() {
	s.service.EXPECT().List(s.userID).Return([]models.Category{
		{ID: uuid.New(), Name: "Salary", Type: models.CategoryTypeIncome},
		{ID: uuid.New(), Name: "Rent", Type: models.CategoryTypeExpense},
	}, nil)

	c, rec := newUserContext(s.e, newJSONRequest(http.MethodGet, "/tracker/get/categories", nil), s.userID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)
	env := decodeEnvelope(rec)
	s.Contains(string(env.Data), "Salary")
	s.Contains(string(env.Data), "Rent")
}

func (s *CategoryHandlerSuite) TestDelete() {
	categoryID := uuid.New()
	s.service.EXPECT().Delete(s.userID, categoryID).Return(nil)

	c, rec := newUserContext(s.e, newJSONRequest(http.MethodDelete, "/", nil), s.userID)
	c.SetParamNames("id")
	c.SetParamValues(categoryID.String())

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Category Deleted", decodeEnvelope(rec).Message)
}

func (s *CategoryHandlerSuite) TestDelete_InvalidID() {
	c, rec := newUserContext(s.e, newJSONRequest(http.MethodDelete, "/", nil), s.userID)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(rec)
	s.Equal(string(apperrors.ValidationInvalidFormat), env.Code)
	s.Equal("must be a valid UUID", env.Details["id"])
}

func (s *CategoryHandlerSuite) TestDelete_UnexpectedError() {
	categoryID := uuid.New()
	s.service.EXPECT().Delete(s.userID, categoryID).Return(errors.New("disk full"))

	c, rec := newUserContext(s.e, newJSONRequest(http.MethodDelete, "/", nil), s.userID)
	c.SetParamNames("id")
	c.SetParamValues(categoryID.String())

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(rec)
	s.Equal("test-trace-id", env.TraceID)
	s.NotContains(rec.Body.String(), "disk full")
}
