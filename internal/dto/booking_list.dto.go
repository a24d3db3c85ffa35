package dto

type BookingListDTO struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	DurationMin int    `json:"duration_min"`
	Status      string `json:"status"`
	ClientName  string `json:"client_name"`
	ServiceName string `json:"service_name"`
}
