package dto

type BookingNotifyRequest struct {
	BookingID    string `json:"booking_id"`
	Email        string `json:"email"`
	CustomerName string `json:"customer_name"`
	Company      string `json:"company"`
	Slot         string `json:"slot"`
}

type BookingNotifyResponse struct {
	BookingID        string `json:"booking_id"`
	Duplicate        bool   `json:"duplicate"`
	OperatorNotified bool   `json:"operator_notified"`
	CustomerNotified bool   `json:"customer_notified"`
}
