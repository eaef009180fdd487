package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"equipment-system/pkg/config"
	"equipment-system/pkg/database/postgresql"
	"equipment-system/pkg/eventbus"
	"equipment-system/pkg/service"
	"equipment-system/pkg/utils"
)

// WorkflowTestSuite гоняет полный жизненный цикл через HTTP:
// заявка -> согласование -> выдача -> возврат.
// Нужна чистая тестовая БД: задайте TEST_DATABASE_URL, иначе тесты пропускаются.
type WorkflowTestSuite struct {
	suite.Suite
	Echo  *echo.Echo
	DB    *pgxpool.Pool
	Token string

	EquipmentID       uint64
	SecondEquipmentID uint64
	EmployeeID        uint64
	RequestID         uint64
	TransactionID     uint64
}

func (s *WorkflowTestSuite) SetupSuite() {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		s.T().Skip("TEST_DATABASE_URL не задан, пропускаем интеграционные тесты")
	}

	ctx := context.Background()

	dbConn := postgresql.ConnectDB(dsn)
	s.DB = dbConn

	s.Require().NoError(postgresql.RunMigrations(dbConn, "../../migrations"))

	_, err := dbConn.Exec(ctx, `
		TRUNCATE activity_logs, transactions, requests, equipments, employees, users, categories
		RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
	_, err = dbConn.Exec(ctx, `UPDATE counters SET value = 0`)
	s.Require().NoError(err)

	s.Require().NoError(dbConn.QueryRow(ctx,
		`INSERT INTO users (fio, email, password) VALUES ('Тестовый админ', 'admin@test.local', 'x') RETURNING id`,
	).Scan(new(uint64)))

	s.Require().NoError(dbConn.QueryRow(ctx,
		`INSERT INTO employees (fio, email, department) VALUES ('Иванов И.И.', 'ivanov@test.local', 'ИТ') RETURNING id`,
	).Scan(&s.EmployeeID))

	s.Require().NoError(dbConn.QueryRow(ctx,
		`INSERT INTO equipments (name, brand, model, serial_number, status, condition)
		 VALUES ('Ноутбук', 'Dell', 'Latitude', 'SN-TEST-1', 'available', 'good') RETURNING id`,
	).Scan(&s.EquipmentID))

	s.Require().NoError(dbConn.QueryRow(ctx,
		`INSERT INTO equipments (name, brand, model, serial_number, status, condition)
		 VALUES ('Монитор', 'LG', '27UL500', 'SN-TEST-2', 'available', 'good') RETURNING id`,
	).Scan(&s.SecondEquipmentID))

	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())

	logger := zap.NewNop()
	cfg := config.New()
	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, time.Hour, time.Hour, logger)
	bus := eventbus.New(logger)
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Address, DB: 1})

	InitRouter(e, dbConn, redisClient, jwtSvc, bus, logger, cfg)
	s.Echo = e

	access, _, err := jwtSvc.GenerateTokens(1, 0, 0)
	s.Require().NoError(err)
	s.Token = access
}

func (s *WorkflowTestSuite) TearDownSuite() {
	if s.DB != nil {
		s.DB.Close()
	}
}

func (s *WorkflowTestSuite) doJSON(method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		s.Require().NoError(json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.Token)

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func (s *WorkflowTestSuite) decodeBody(rec *httptest.ResponseRecorder) map[string]interface{} {
	var envelope struct {
		Status  bool                   `json:"status"`
		Body    map[string]interface{} `json:"body"`
		Message string                 `json:"message"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Body
}

func (s *WorkflowTestSuite) equipmentStatus(id uint64) string {
	var status string
	s.Require().NoError(s.DB.QueryRow(context.Background(),
		`SELECT status FROM equipments WHERE id = $1`, id).Scan(&status))
	return status
}

func (s *WorkflowTestSuite) Test01_CreateRequest() {
	rec := s.doJSON(http.MethodPost, "/api/requests", map[string]interface{}{
		"employee_id":  s.EmployeeID,
		"equipment_id": s.EquipmentID,
		"request_type": "new_assignment",
		"request_mode": "on_site",
		"reason":       "Новый сотрудник",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	body := s.decodeBody(rec)
	s.Equal("pending", body["status"])
	s.Equal("REQ-000001", body["request_number"])

	s.RequestID = uint64(body["id"].(float64))
}

func (s *WorkflowTestSuite) Test02_DuplicatePendingRequestRejected() {
	rec := s.doJSON(http.MethodPost, "/api/requests", map[string]interface{}{
		"employee_id":  s.EmployeeID,
		"equipment_id": s.EquipmentID,
		"request_type": "new_assignment",
		"request_mode": "on_site",
	})
	s.Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
}

func (s *WorkflowTestSuite) Test03_ApproveRequestCreatesTransaction() {
	rec := s.doJSON(http.MethodPost, fmt.Sprintf("/api/requests/%d/approve", s.RequestID), map[string]interface{}{
		"approval_notes": "Согласовано",
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	body := s.decodeBody(rec)
	request := body["request"].(map[string]interface{})
	transaction := body["transaction"].(map[string]interface{})

	s.Equal("approved", request["status"])
	s.Equal("pending", transaction["status"])
	s.Equal("TXN-000001", transaction["transaction_number"])

	s.TransactionID = uint64(transaction["id"].(float64))

	s.Equal("in_use", s.equipmentStatus(s.EquipmentID))
}

func (s *WorkflowTestSuite) Test04_RequestForBusyEquipmentRejected() {
	rec := s.doJSON(http.MethodPost, "/api/requests", map[string]interface{}{
		"employee_id":  s.EmployeeID,
		"equipment_id": s.EquipmentID,
		"request_type": "additional",
		"request_mode": "on_site",
	})
	s.Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
}

func (s *WorkflowTestSuite) Test05_ApproveTwiceRejected() {
	rec := s.doJSON(http.MethodPost, fmt.Sprintf("/api/requests/%d/approve", s.RequestID), map[string]interface{}{})
	s.Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
}

func (s *WorkflowTestSuite) Test06_ReleaseTransaction() {
	rec := s.doJSON(http.MethodPost, fmt.Sprintf("/api/transactions/%d/release", s.TransactionID), map[string]interface{}{
		"condition_on_issue": "excellent, still in box",
		"release_notes":      "Выдано со склада",
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	body := s.decodeBody(rec)
	s.Equal("released", body["status"])
	s.Equal("brand_new", body["release_condition"])
}

func (s *WorkflowTestSuite) Test07_SecondReleaseRejected() {
	rec := s.doJSON(http.MethodPost, fmt.Sprintf("/api/transactions/%d/release", s.TransactionID), map[string]interface{}{
		"condition_on_issue": "good",
	})
	s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
}

func (s *WorkflowTestSuite) Test08_ReturnFreesEquipment() {
	rec := s.doJSON(http.MethodPatch, fmt.Sprintf("/api/transactions/%d/status", s.TransactionID), map[string]interface{}{
		"status":           "returned",
		"return_condition": "good_condition",
		"return_notes":     "Возвращено без замечаний",
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	body := s.decodeBody(rec)
	s.Equal("returned", body["status"])

	s.Equal("available", s.equipmentStatus(s.EquipmentID))
}

func (s *WorkflowTestSuite) Test09_ReturnTwiceRejected() {
	rec := s.doJSON(http.MethodPatch, fmt.Sprintf("/api/transactions/%d/status", s.TransactionID), map[string]interface{}{
		"status": "returned",
	})
	s.Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
}

func (s *WorkflowTestSuite) Test10_RejectFlow() {
	rec := s.doJSON(http.MethodPost, "/api/requests", map[string]interface{}{
		"employee_id":  s.EmployeeID,
		"equipment_id": s.SecondEquipmentID,
		"request_type": "new_assignment",
		"request_mode": "work_from_home",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	requestID := uint64(s.decodeBody(rec)["id"].(float64))

	rec = s.doJSON(http.MethodPost, fmt.Sprintf("/api/requests/%d/reject", requestID), map[string]interface{}{
		"rejection_reason": "Нет потребности",
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal("rejected", s.decodeBody(rec)["status"])

	// Отклонённая заявка больше не редактируется.
	reason := "новая причина"
	rec = s.doJSON(http.MethodPut, fmt.Sprintf("/api/requests/%d", requestID), map[string]interface{}{
		"reason": reason,
	})
	s.Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	// Оборудование никто не закреплял.
	s.Equal("available", s.equipmentStatus(s.SecondEquipmentID))
}

func (s *WorkflowTestSuite) Test11_UnauthorizedWithoutToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/requests", nil)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func TestWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(WorkflowTestSuite))
}
