package handlers_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/retailpulse/bi_backend/internal/apperrors"
	portssvc "github.com/retailpulse/bi_backend/internal/core/ports/services"
	"github.com/retailpulse/bi_backend/internal/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock IngestionService ---
type MockIngestionService struct {
	mock.Mock
}

func (m *MockIngestionService) IngestBatch(ctx context.Context, files []portssvc.UploadedFile, month, year int) (int64, error) {
	args := m.Called(ctx, files, month, year)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type UploadHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockIngestionService
}

func (suite *UploadHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockService = new(MockIngestionService)
	handlers.RegisterUploadRoutes(suite.router.Group(""), suite.mockService)
}

// multipartBody builds a form with month, year and the named files.
func (suite *UploadHandlerTestSuite) multipartBody(month, year string, filenames ...string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if month != "" {
		suite.Require().NoError(writer.WriteField("month", month))
	}
	if year != "" {
		suite.Require().NoError(writer.WriteField("year", year))
	}
	for i, name := range filenames {
		part, err := writer.CreateFormFile("files", name)
		suite.Require().NoError(err)
		_, err = fmt.Fprintf(part, "file-content-%d", i)
		suite.Require().NoError(err)
	}
	suite.Require().NoError(writer.Close())
	return body, writer.FormDataContentType()
}

func (suite *UploadHandlerTestSuite) post(body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *UploadHandlerTestSuite) TestUploadReports_Success() {
	body, contentType := suite.multipartBody("7", "2025", "sales_day_book.xlsx", "stock_ageing_analysis.xlsx")

	suite.mockService.On("IngestBatch", mock.Anything, mock.MatchedBy(func(files []portssvc.UploadedFile) bool {
		return len(files) == 2 &&
			files[0].Filename == "sales_day_book.xlsx" &&
			string(files[0].Content) == "file-content-0" &&
			files[1].Filename == "stock_ageing_analysis.xlsx"
	}), 7, 2025).Return(int64(42), nil).Once()

	w := suite.post(body, contentType)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"rowsInserted": 42}`, w.Body.String())
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *UploadHandlerTestSuite) TestUploadReports_MissingMonth() {
	body, contentType := suite.multipartBody("", "2025", "sales_day_book.xlsx")

	w := suite.post(body, contentType)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "month")
	suite.mockService.AssertNotCalled(suite.T(), "IngestBatch")
}

func (suite *UploadHandlerTestSuite) TestUploadReports_NonIntegerYear() {
	body, contentType := suite.multipartBody("7", "twenty-five", "sales_day_book.xlsx")

	w := suite.post(body, contentType)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "IngestBatch")
}

func (suite *UploadHandlerTestSuite) TestUploadReports_ValidationFailure() {
	body, contentType := suite.multipartBody("13", "2025", "sales_day_book.xlsx")

	suite.mockService.On("IngestBatch", mock.Anything, mock.AnythingOfType("[]services.UploadedFile"), 13, 2025).
		Return(int64(0), fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)).Once()

	w := suite.post(body, contentType)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "month must be between 1 and 12")
}

func (suite *UploadHandlerTestSuite) TestUploadReports_IngestionFailure() {
	body, contentType := suite.multipartBody("7", "2025", "sales_day_book.xlsx")

	suite.mockService.On("IngestBatch", mock.Anything, mock.AnythingOfType("[]services.UploadedFile"), 7, 2025).
		Return(int64(0), fmt.Errorf("failed to decode spreadsheet sales_day_book.xlsx: bad zip")).Once()

	w := suite.post(body, contentType)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "sales_day_book.xlsx")
}

// --- Run Test Suite ---
func TestUploadHandler(t *testing.T) {
	suite.Run(t, new(UploadHandlerTestSuite))
}
