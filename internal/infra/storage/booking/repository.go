package booking

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GHM-BookingService/internal/domain"
	"github.com/m04kA/GHM-BookingService/pkg/txmanager"
)

var bookingColumns = []string{
	"id",
	"guest_name",
	"guest_contact",
	"employee_id",
	"department",
	"designation",
	"cost_center",
	"employee_level",
	"purpose",
	"mode_of_travel",
	"coming_from",
	"going_back",
	"check_in",
	"check_out",
	"guest_house_name",
	"room_number",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование. ID присваивается базой и стабилен
// на все время жизни записи.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := squirrel.Insert("bookings").
		Columns(
			"guest_name",
			"guest_contact",
			"employee_id",
			"department",
			"designation",
			"cost_center",
			"employee_level",
			"purpose",
			"mode_of_travel",
			"coming_from",
			"going_back",
			"check_in",
			"check_out",
			"guest_house_name",
			"room_number",
		).
		Values(
			b.GuestName,
			b.GuestContact,
			b.EmployeeID,
			b.Department,
			b.Designation,
			b.CostCenter,
			b.EmployeeLevel,
			b.Purpose,
			b.ModeOfTravel,
			b.ComingFrom,
			b.GoingBack,
			b.CheckIn.Format(domain.DateFormat),
			b.CheckOut.Format(domain.DateFormat),
			b.GuestHouseName,
			b.RoomNumber,
		).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - last insert id: %v", ErrExecQuery, err)
	}

	return r.GetByID(ctx, id)
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := squirrel.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	b, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return b, nil
}

// Update целиком заменяет бронирование с указанным ID.
// Сам ID неизменяем и в обновлении не участвует.
func (r *Repository) Update(ctx context.Context, id int64, b *domain.Booking) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := squirrel.Update("bookings").
		Set("guest_name", b.GuestName).
		Set("guest_contact", b.GuestContact).
		Set("employee_id", b.EmployeeID).
		Set("department", b.Department).
		Set("designation", b.Designation).
		Set("cost_center", b.CostCenter).
		Set("employee_level", b.EmployeeLevel).
		Set("purpose", b.Purpose).
		Set("mode_of_travel", b.ModeOfTravel).
		Set("coming_from", b.ComingFrom).
		Set("going_back", b.GoingBack).
		Set("check_in", b.CheckIn.Format(domain.DateFormat)).
		Set("check_out", b.CheckOut.Format(domain.DateFormat)).
		Set("guest_house_name", b.GuestHouseName).
		Set("room_number", b.RoomNumber).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование. Побочных эффектов на другие записи нет.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := squirrel.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// List возвращает бронирования в порядке создания.
// Непустой filterTerm оставляет только записи, у которых имя гостя,
// контакт или название гостевого дома содержит подстроку (без учета регистра).
func (r *Repository) List(ctx context.Context, filterTerm string) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := squirrel.Select(bookingColumns...).
		From("bookings").
		OrderBy("id ASC")

	if filterTerm != "" {
		pattern := "%" + strings.ToLower(filterTerm) + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Like{"LOWER(guest_name)": pattern},
			squirrel.Like{"LOWER(guest_contact)": pattern},
			squirrel.Like{"LOWER(guest_house_name)": pattern},
		})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListByGuestHouse возвращает все бронирования, ссылающиеся на указанный
// гостевой дом. Используется калькулятором доступности.
func (r *Repository) ListByGuestHouse(ctx context.Context, guestHouseName string) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := squirrel.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"guest_house_name": guestHouseName}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByGuestHouse - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByGuestHouse - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// scanBooking сканирует одну строку в доменную модель
func scanBooking(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var b domain.Booking
	var checkIn, checkOut string
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&b.ID,
		&b.GuestName,
		&b.GuestContact,
		&b.EmployeeID,
		&b.Department,
		&b.Designation,
		&b.CostCenter,
		&b.EmployeeLevel,
		&b.Purpose,
		&b.ModeOfTravel,
		&b.ComingFrom,
		&b.GoingBack,
		&checkIn,
		&checkOut,
		&b.GuestHouseName,
		&b.RoomNumber,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanBooking - scan row: %v", ErrScanRow, err)
	}

	b.CheckIn, err = time.Parse(domain.DateFormat, checkIn)
	if err != nil {
		return nil, fmt.Errorf("%w: scanBooking - parse check_in %q: %v", ErrInvalidDate, checkIn, err)
	}
	b.CheckOut, err = time.Parse(domain.DateFormat, checkOut)
	if err != nil {
		return nil, fmt.Errorf("%w: scanBooking - parse check_out %q: %v", ErrInvalidDate, checkOut, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
