package get_house_stats

// HouseStats сводка занятости по одному гостевому дому
type HouseStats struct {
	GuestHouseName string `json:"guestHouseName"`
	TotalRooms     int    `json:"totalRooms"`
	Booked         int    `json:"booked"`
	Available      int    `json:"available"` // может быть отрицательным при овербукинге
}

// Response модель ответа со сводкой по всем зарегистрированным домам
type Response struct {
	Stats []HouseStats `json:"stats"`
}
