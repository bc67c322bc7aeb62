package journals

import "time"

// Journal es el registro clínico de un tratamiento puntual.
// Los cuatro campos de contenido son texto libre; NextTime es la
// recomendación de próxima visita tal como la escribe la clínica.
type Journal struct {
	ID    string
	DogID string

	BeforeStatus string
	Treatment    string
	AfterStatus  string
	NextTime     string

	CreatedAt time.Time
}

// Media referencia un objeto subido al bucket; Path es la llave
// dentro del bucket, nunca una URL.
type Media struct {
	ID        string
	JournalID string

	Path string
	MIME string

	CreatedAt time.Time
}
