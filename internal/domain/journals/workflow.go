package journals

import "context"

// Workflow modela la sesión de edición de journals del lado cliente:
// sin selección no hay guardado ni subida posible. No es seguro para
// uso concurrente; cada sesión de edición usa su propia instancia.
type Workflow struct {
	svc      *Service
	vault    *MediaVault
	selected string
}

func NewWorkflow(svc *Service, vault *MediaVault) *Workflow {
	return &Workflow{svc: svc, vault: vault}
}

// Selected devuelve el journal en edición, vacío si no hay ninguno.
func (w *Workflow) Selected() string {
	return w.selected
}

// CreateJournal crea un borrador, lo deja seleccionado y devuelve sus
// adjuntos (vacíos para un borrador nuevo) listos para la vista de
// edición.
func (w *Workflow) CreateJournal(ctx context.Context, dogID string, in Input) (Journal, []Media, error) {
	j, err := w.svc.Create(ctx, dogID, in)
	if err != nil {
		return Journal{}, nil, err
	}
	w.selected = j.ID
	items, err := w.vault.ListMedia(ctx, j.ID, false)
	if err != nil {
		return Journal{}, nil, err
	}
	return j, items, nil
}

// Select retoma la edición de un journal existente y carga sus
// adjuntos en el mismo paso, lo más nuevo primero.
func (w *Workflow) Select(ctx context.Context, journalID string) (Journal, []Media, error) {
	j, err := w.svc.GetByID(ctx, journalID)
	if err != nil {
		return Journal{}, nil, err
	}
	w.selected = j.ID
	items, err := w.vault.ListMedia(ctx, j.ID, false)
	if err != nil {
		return Journal{}, nil, err
	}
	return j, items, nil
}

// Deselect vuelve al estado sin selección; la siguiente subida o
// guardado fallará hasta seleccionar de nuevo.
func (w *Workflow) Deselect() {
	w.selected = ""
}

// Save guarda sobre el journal seleccionado.
func (w *Workflow) Save(ctx context.Context, in Input) (Journal, error) {
	if w.selected == "" {
		return Journal{}, ErrNoJournalSelected
	}
	return w.svc.Update(ctx, w.selected, in)
}

// Upload adjunta al journal seleccionado. Sin selección no se toca
// ni el bucket ni la metadata.
func (w *Workflow) Upload(ctx context.Context, filename, mime string, content []byte) (Media, error) {
	if w.selected == "" {
		return Media{}, ErrNoJournalSelected
	}
	return w.vault.Attach(ctx, w.selected, filename, mime, content)
}
