package guesthouse

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GHM-BookingService/internal/domain"
	"github.com/m04kA/GHM-BookingService/pkg/txmanager"
)

// facilitySeparator формат хранения facilities: одна TEXT колонка со
// значениями через запятую, как в исходных данных реестра
const facilitySeparator = ", "

var guestHouseColumns = []string{
	"id",
	"name",
	"address",
	"caretaker",
	"mobile",
	"facilities",
	"created_at",
	"updated_at",
}

// Repository репозиторий реестра гостевых домов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория гостевых домов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет гостевой дом вместе со списком комнат.
// Уникальность имени не проверяется: дубликаты допустимы, суррогатный ID
// остается единственным ключом записи. Вызывается внутри транзакции.
func (r *Repository) Create(ctx context.Context, gh *domain.GuestHouse) (*domain.GuestHouse, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := squirrel.Insert("guest_houses").
		Columns("name", "address", "caretaker", "mobile", "facilities").
		Values(gh.Name, gh.Address, gh.Caretaker, gh.Mobile, joinFacilities(gh.Facilities)).
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

	if err := r.insertRooms(ctx, executor, id, gh.Rooms); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// GetByID получает гостевой дом по ID вместе с комнатами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.GuestHouse, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := squirrel.Select(guestHouseColumns...).
		From("guest_houses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	gh, err := scanGuestHouse(executor.QueryRowContext(ctx, query, args...).Scan)
	if err == sql.ErrNoRows {
		return nil, ErrGuestHouseNotFound
	}
	if err != nil {
		return nil, err
	}

	rooms, err := r.loadRooms(ctx, executor, []int64{gh.ID})
	if err != nil {
		return nil, err
	}
	gh.Rooms = rooms[gh.ID]

	return gh, nil
}

// GetByName получает гостевой дом по имени. При дубликатах имен
// возвращается самая ранняя запись (порядок добавления).
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.GuestHouse, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := squirrel.Select(guestHouseColumns...).
		From("guest_houses").
		Where(squirrel.Eq{"name": name}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - build select query: %v", ErrBuildQuery, err)
	}

	gh, err := scanGuestHouse(executor.QueryRowContext(ctx, query, args...).Scan)
	if err == sql.ErrNoRows {
		return nil, ErrGuestHouseNotFound
	}
	if err != nil {
		return nil, err
	}

	rooms, err := r.loadRooms(ctx, executor, []int64{gh.ID})
	if err != nil {
		return nil, err
	}
	gh.Rooms = rooms[gh.ID]

	return gh, nil
}

// Update целиком заменяет запись гостевого дома, включая список комнат.
// Вызывается внутри транзакции: старые комнаты удаляются и вставляются заново.
func (r *Repository) Update(ctx context.Context, id int64, gh *domain.GuestHouse) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := squirrel.Update("guest_houses").
		Set("name", gh.Name).
		Set("address", gh.Address).
		Set("caretaker", gh.Caretaker).
		Set("mobile", gh.Mobile).
		Set("facilities", joinFacilities(gh.Facilities)).
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
		return ErrGuestHouseNotFound
	}

	deleteQuery, deleteArgs, err := squirrel.Delete("guest_house_rooms").
		Where(squirrel.Eq{"guest_house_id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build rooms delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: Update - delete old rooms: %v", ErrExecQuery, err)
	}

	return r.insertRooms(ctx, executor, id, gh.Rooms)
}

// Delete удаляет гостевой дом вместе с комнатами.
// Бронирования, ссылающиеся на него по имени, не затрагиваются.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := squirrel.Delete("guest_houses").
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
		return ErrGuestHouseNotFound
	}

	// ON DELETE CASCADE не включен по умолчанию в SQLite, удаляем явно
	roomsQuery, roomsArgs, err := squirrel.Delete("guest_house_rooms").
		Where(squirrel.Eq{"guest_house_id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build rooms delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, roomsQuery, roomsArgs...); err != nil {
		return fmt.Errorf("%w: Delete - delete rooms: %v", ErrExecQuery, err)
	}

	return nil
}

// List возвращает гостевые дома в порядке добавления.
// Непустой filterTerm оставляет записи, у которых имя, адрес или
// смотритель содержит подстроку без учета регистра.
func (r *Repository) List(ctx context.Context, filterTerm string) ([]*domain.GuestHouse, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := squirrel.Select(guestHouseColumns...).
		From("guest_houses").
		OrderBy("id ASC")

	if filterTerm != "" {
		pattern := "%" + strings.ToLower(filterTerm) + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Like{"LOWER(name)": pattern},
			squirrel.Like{"LOWER(address)": pattern},
			squirrel.Like{"LOWER(caretaker)": pattern},
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

	houses := make([]*domain.GuestHouse, 0)
	ids := make([]int64, 0)

	for rows.Next() {
		gh, err := scanGuestHouse(rows.Scan)
		if err != nil {
			return nil, err
		}
		houses = append(houses, gh)
		ids = append(ids, gh.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	if len(ids) == 0 {
		return houses, nil
	}

	roomsByHouse, err := r.loadRooms(ctx, executor, ids)
	if err != nil {
		return nil, err
	}
	for _, gh := range houses {
		gh.Rooms = roomsByHouse[gh.ID]
	}

	return houses, nil
}

// insertRooms вставляет комнаты гостевого дома, сохраняя порядок списка
func (r *Repository) insertRooms(ctx context.Context, executor DBExecutor, houseID int64, rooms []domain.Room) error {
	for i, room := range rooms {
		query, args, err := squirrel.Insert("guest_house_rooms").
			Columns("guest_house_id", "position", "room_number", "occupancy").
			Values(houseID, i, room.RoomNumber, room.Occupancy).
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: insertRooms - build insert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: insertRooms - execute insert: %v", ErrExecQuery, err)
		}
	}

	return nil
}

// loadRooms загружает комнаты для набора гостевых домов одним запросом
func (r *Repository) loadRooms(ctx context.Context, executor DBExecutor, houseIDs []int64) (map[int64][]domain.Room, error) {
	query, args, err := squirrel.Select("guest_house_id", "room_number", "occupancy").
		From("guest_house_rooms").
		Where(squirrel.Eq{"guest_house_id": houseIDs}).
		OrderBy("guest_house_id ASC", "position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadRooms - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadRooms - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[int64][]domain.Room)
	for rows.Next() {
		var houseID int64
		var room domain.Room
		if err := rows.Scan(&houseID, &room.RoomNumber, &room.Occupancy); err != nil {
			return nil, fmt.Errorf("%w: loadRooms - scan row: %v", ErrScanRow, err)
		}
		result[houseID] = append(result[houseID], room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadRooms - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// scanGuestHouse сканирует строку guest_houses без комнат
func scanGuestHouse(scan func(dest ...interface{}) error) (*domain.GuestHouse, error) {
	var gh domain.GuestHouse
	var facilities string
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&gh.ID,
		&gh.Name,
		&gh.Address,
		&gh.Caretaker,
		&gh.Mobile,
		&facilities,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanGuestHouse - scan row: %v", ErrScanRow, err)
	}

	gh.Facilities = splitFacilities(facilities)
	gh.CreatedAt = createdAt.Time
	gh.UpdatedAt = updatedAt.Time

	return &gh, nil
}

func joinFacilities(facilities []string) string {
	return strings.Join(facilities, facilitySeparator)
}

func splitFacilities(s string) []string {
	if s == "" {
		return []string{}
	}

	parts := strings.Split(s, ",")
	facilities := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			facilities = append(facilities, trimmed)
		}
	}
	return facilities
}
