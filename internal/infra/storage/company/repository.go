package company

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/agendafacil/booking-service/internal/domain"
	"github.com/agendafacil/booking-service/pkg/dbmetrics"
	"github.com/agendafacil/booking-service/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов к БД
type DBExecutor = dbmetrics.DBExecutor

// companyColumns колонки таблицы companies, нужные booking-сервису
var companyColumns = []string{
	"id",
	"user_id",
	"name",
	"slug",
	"working_start_time",
	"working_end_time",
	"booking_interval_minutes",
	"booking_advance_days",
	"cancellation_hours",
	"timezone",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с компаниями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория компаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает компанию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(companyColumns...).
		From("companies").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanCompany(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetBySlug получает компанию по slug (публичная страница бронирования)
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(companyColumns...).
		From("companies").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanCompany(executor.QueryRowContext(ctx, query, args...), "GetBySlug")
}

// UpdateBookingSettings обновляет настройки бронирования компании
func (r *Repository) UpdateBookingSettings(ctx context.Context, id int64, company *domain.Company) (*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("companies").
		Set("working_start_time", company.WorkingStartTime).
		Set("working_end_time", company.WorkingEndTime).
		Set("booking_interval_minutes", company.BookingIntervalMinutes).
		Set("booking_advance_days", company.BookingAdvanceDays).
		Set("cancellation_hours", company.CancellationHours).
		Set("timezone", company.Timezone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateBookingSettings - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateBookingSettings - execute update: %v", ErrExecQuery, err)
	}

	company.ID = id
	company.CreatedAt = createdAt.Time
	company.UpdatedAt = updatedAt.Time

	return company, nil
}

// scanCompany сканирует одну строку в компанию
func (r *Repository) scanCompany(row *sql.Row, op string) (*domain.Company, error) {
	var company domain.Company
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&company.ID,
		&company.OwnerID,
		&company.Name,
		&company.Slug,
		&company.WorkingStartTime,
		&company.WorkingEndTime,
		&company.BookingIntervalMinutes,
		&company.BookingAdvanceDays,
		&company.CancellationHours,
		&company.Timezone,
		&company.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan company: %v", ErrScanRow, op, err)
	}

	company.CreatedAt = createdAt.Time
	company.UpdatedAt = updatedAt.Time

	return &company, nil
}
