package entities

// AppointmentEmailData feeds the notification templates.
type AppointmentEmailData struct {
	ClientName    string
	ServiceName   string
	DateFormatted string
	TimeFormatted string
	Duration      int
	Price         float64
	Status        string
	CurrentYear   int
}
