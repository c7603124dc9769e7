package errors

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	resp := NewErrorResponse(CategoryNotFound, "trace-1")

	s.Equal(StatusError, resp.Status)
	s.Equal("CATEGORY_001", resp.Code)
	s.Equal("Category does not exist", resp.Message)
	s.Equal("trace-1", resp.TraceID)
	s.Nil(resp.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_Options() {
	resp := NewErrorResponse(BudgetCategoryExists, "t",
		WithMessage("Food Category already has a budget"),
		WithDetails(map[string]string{"category_id": "taken"}))

	s.Equal("Food Category already has a budget", resp.Message)
	s.Equal("taken", resp.Details["category_id"])
}

func (s *ResponseTestSuite) TestNewValidationError() {
	resp := NewValidationError(map[string]string{"amount": "amount is required"}, "t")

	s.Equal(string(ValidationGeneral), resp.Code)
	s.Equal(400, resp.GetHTTPStatus())
	s.True(resp.IsClientError())
	s.False(resp.IsServerError())
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternals() {
	internal := fmt.Errorf("pq: connection refused")
	resp, err := WrapSystemError(internal, "t")

	s.Equal(internal, err)
	s.NotContains(resp.Message, "pq")
	s.True(resp.IsServerError())

	dbResp, _ := WrapDatabaseError(internal, "t")
	s.Equal(string(SystemDatabaseError), dbResp.Code)
}

func (s *ResponseTestSuite) TestToJSON_Envelope() {
	resp := NewErrorResponse(SavingPlanNotFound, "abc")
	data, err := resp.ToJSON()
	s.Require().NoError(err)

	var decoded map[string]interface{}
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("error", decoded["status"])
	s.Equal("Saving Plan does not exist", decoded["message"])
	s.NotContains(decoded, "details")
	s.Contains(resp.String(), "SAVING_001")
}

func (s *ResponseTestSuite) TestDomainError() {
	err := Domainf(BudgetGeneralExists, "User already has a %s General Budget", "Monthly")
	wrapped := fmt.Errorf("create: %w", err)

	de, ok := AsDomainError(wrapped)
	s.Require().True(ok)
	s.Equal("User already has a Monthly General Budget", de.Error())
	s.ErrorIs(wrapped, NewDomainError(BudgetGeneralExists))
	s.NotErrorIs(wrapped, NewDomainError(BudgetCategoryExists))

	_, ok = AsDomainError(fmt.Errorf("plain"))
	s.False(ok)
}
