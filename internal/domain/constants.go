package domain

// Business validation constants
const (
	MobileNumberLength    = 10
	MaxRoomsPerGuestHouse = 100
)

// Occupancy options offered on the booking form.
// Room-level occupancy stays free text, these apply to availability requests.
const (
	OccupancySingle = "Single"
	OccupancyDouble = "Double"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultRoomsRequested количество комнат по умолчанию при проверке доступности
const DefaultRoomsRequested = 1

// FacilityOptions подсказки для поля facilities на форме гостевого дома.
// Список не закрытый, пользователь может ввести произвольное значение.
var FacilityOptions = []string{
	"Wi-Fi",
	"AC",
	"TV",
	"Refrigerator",
	"Laundry",
	"Parking",
	"Kettle",
	"Hairdryer",
	"Iron",
}
