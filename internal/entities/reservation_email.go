package entities

type ReservationEmailData struct {
	UserName      string
	VehicleName   string
	StartDate     string
	EndDate       string
	CostFormatted string
	Status        string
	CurrentYear   int
}
