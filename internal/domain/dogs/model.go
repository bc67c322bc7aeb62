package dogs

import "time"

// Dog pertenece a exactamente un Customer; customer_id es inmutable.
// Age y Weight son texto libre ("ca. 3 år", "12 kg") como los captura
// la práctica; no se normalizan.
type Dog struct {
	ID         string
	CustomerID string

	Name   string
	Breed  string
	Age    string
	Weight string
	Notes  string

	CreatedAt time.Time
}
