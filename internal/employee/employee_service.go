package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/indocarisinternational/admin-caris/internal/attachment"
	employeeerrors "github.com/indocarisinternational/admin-caris/internal/employee/errors"
	"github.com/indocarisinternational/admin-caris/internal/shared/cachekey"
	"github.com/indocarisinternational/admin-caris/internal/shared/contextutil"
	"github.com/indocarisinternational/admin-caris/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	dateLayout = "2006-01-02"
	optionsTTL = time.Hour
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest, photo *attachment.File) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest, photo *attachment.File) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	ProfilePDF(ctx context.Context, id string) ([]byte, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	photos  *attachment.Manager
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	photos *attachment.Manager,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		photos:  photos,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
	photo *attachment.File,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("full_name", req.FullName),
		zap.Bool("with_photo", photo != nil),
	)

	empl, err := buildEmployee(req)
	if err != nil {
		s.logger.Warn("create employee invalid input", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	empl.ID = uuid.New()

	_, err = s.photos.Store(ctx, photo, false, func(path string) error {
		empl.ProfilePhotoPath = path

		if empl.EmployeeCode == "" {
			next, err := s.counter.GetNextValue(ctx, counter.EmployeeCode)
			if err != nil {
				s.logger.Error("create employee generate code failed", zap.String("request_id", rid), zap.Error(err))
				return err
			}
			empl.EmployeeCode = fmt.Sprintf("EMP-%06d", next)
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}
		defer tx.Rollback()

		if err := s.repo.WithTx(tx).Create(ctx, empl); err != nil {
			s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}

		if err := tx.Commit(); err != nil {
			s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateCaches(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_code", empl.EmployeeCode),
	)

	return s.toResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")

	employees, err := s.repo.FindAll(ctx, ListLimit)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = s.toResponse(e)
	}
	return res, nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error) {
	cacheKey := cachekey.EmployeeOptions

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Assignment forms open in bursts; share one query between them.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		employees, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOptionResponse, len(employees))
		for i, e := range employees {
			resp[i] = EmployeeOptionResponse{ID: e.ID.String(), FullName: e.FullName, Position: e.Position}
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, data, optionsTTL).Err(); err != nil {
					s.logger.Warn("cache employee options failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("get employee options failed", zap.Error(err))
		return nil, err
	}

	return v.([]EmployeeOptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return s.toResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateEmployeeRequest,
	photo *attachment.File,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
		zap.Bool("with_photo", photo != nil),
	)

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	next, err := buildEmployee(req)
	if err != nil {
		s.logger.Warn("update employee invalid input", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	var (
		updated  Employee
		oldPhoto string
	)
	stored, err := s.photos.Store(ctx, photo, true, func(path string) error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			s.logger.Error("update employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}
		defer tx.Rollback()

		qtx := s.repo.WithTx(tx)
		current, err := qtx.FindByID(ctx, id)
		if err != nil {
			s.logger.Warn("update employee fetch existing failed", zap.String("employee_id", id), zap.Error(err))
			return mapRepositoryError(err)
		}

		oldPhoto = current.ProfilePhotoPath
		next.ID = current.ID
		next.CreatedAt = current.CreatedAt
		next.ProfilePhotoPath = current.ProfilePhotoPath
		if path != "" {
			next.ProfilePhotoPath = path
		}
		if next.EmployeeCode == "" {
			next.EmployeeCode = current.EmployeeCode
		}

		if err := qtx.Update(ctx, next); err != nil {
			s.logger.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
			return mapRepositoryError(err)
		}

		if err := tx.Commit(); err != nil {
			s.logger.Error("update employee commit failed", zap.String("employee_id", id), zap.Error(err))
			return err
		}
		updated = *next
		return nil
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	if stored != "" && oldPhoto != "" && oldPhoto != stored {
		s.photos.Release(ctx, oldPhoto)
	}
	s.invalidateCaches(ctx)
	s.logger.Info("update employee success", zap.String("request_id", rid), zap.String("employee_id", id))

	return s.toResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested", zap.String("request_id", rid), zap.String("employee_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrEmployeeNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("delete employee fetch failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.photos.Release(ctx, empl.ProfilePhotoPath)
	s.invalidateCaches(ctx)
	s.logger.Info("delete employee success", zap.String("request_id", rid), zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateCaches(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cachekey.EmployeeOptions, cachekey.DashboardSummary).Err(); err != nil {
		s.logger.Error("failed to invalidate employee caches", zap.Error(err))
	}
}

func buildEmployee(req EmployeeRequest) (*Employee, error) {
	joinDate, err := parseOptionalDate(req.JoinDate)
	if err != nil {
		return nil, employeeerrors.ErrInvalidJoinDate
	}
	validUntil, err := parseOptionalDate(req.IDCardValidUntil)
	if err != nil {
		return nil, employeeerrors.ErrInvalidIDCardValidUntil
	}

	companyName := strings.TrimSpace(req.CompanyName)
	if companyName == "" {
		companyName = DefaultCompanyName
	}

	return &Employee{
		EmployeeCode:        strings.TrimSpace(req.EmployeeCode),
		FullName:            strings.TrimSpace(req.FullName),
		CompanyName:         companyName,
		Position:            strings.TrimSpace(req.Position),
		Department:          strings.TrimSpace(req.Department),
		NIKInternal:         strings.TrimSpace(req.NIKInternal),
		JoinDate:            joinDate,
		JobLevel:            strings.TrimSpace(req.JobLevel),
		Specialization:      strings.TrimSpace(req.Specialization),
		WorkExperience:      strings.TrimSpace(req.WorkExperience),
		Education:           strings.TrimSpace(req.Education),
		EmailOffice:         strings.TrimSpace(req.EmailOffice),
		PhoneNumber:         strings.TrimSpace(req.PhoneNumber),
		LinkedinURL:         strings.TrimSpace(req.LinkedinURL),
		PortfolioURL:        strings.TrimSpace(req.PortfolioURL),
		InstagramURL:        strings.TrimSpace(req.InstagramURL),
		IDCardNumber:        strings.TrimSpace(req.IDCardNumber),
		IDCardValidUntil:    validUntil,
		BloodType:           strings.TrimSpace(req.BloodType),
		Address:             strings.TrimSpace(req.Address),
		DigitalSignatureURL: strings.TrimSpace(req.DigitalSignatureURL),
		QRCodeURL:           strings.TrimSpace(req.QRCodeURL),
		CVURL:               strings.TrimSpace(req.CVURL),
		Badges:              ParseBadges(string(req.Badges)),
	}, nil
}

func parseOptionalDate(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func (s *service) toResponse(e Employee) EmployeeResponse {
	badges := []string(e.Badges)
	if badges == nil {
		badges = []string{}
	}
	return EmployeeResponse{
		ID:                  e.ID.String(),
		EmployeeCode:        e.EmployeeCode,
		FullName:            e.FullName,
		CompanyName:         e.CompanyName,
		Position:            e.Position,
		Department:          e.Department,
		NIKInternal:         e.NIKInternal,
		JoinDate:            formatOptionalDate(e.JoinDate),
		JobLevel:            e.JobLevel,
		Specialization:      e.Specialization,
		WorkExperience:      e.WorkExperience,
		Education:           e.Education,
		EmailOffice:         e.EmailOffice,
		PhoneNumber:         e.PhoneNumber,
		LinkedinURL:         e.LinkedinURL,
		PortfolioURL:        e.PortfolioURL,
		InstagramURL:        e.InstagramURL,
		IDCardNumber:        e.IDCardNumber,
		IDCardValidUntil:    formatOptionalDate(e.IDCardValidUntil),
		BloodType:           e.BloodType,
		Address:             e.Address,
		DigitalSignatureURL: e.DigitalSignatureURL,
		QRCodeURL:           e.QRCodeURL,
		CVURL:               e.CVURL,
		Badges:              badges,
		ProfilePhotoPath:    e.ProfilePhotoPath,
		ProfilePhotoURL:     s.photos.URL(e.ProfilePhotoPath),
	}
}
