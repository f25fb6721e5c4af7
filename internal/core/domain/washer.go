package domain

// Washer is a person performing washes, credited on ledger records.
// Washers are soft-deleted via Active so historical records keep their
// reference.
type Washer struct {
	WasherID string `json:"lavadorID"`
	Name     string `json:"nombre"`
	LastName string `json:"apellido"`
	Active   bool   `json:"activo"`
	AuditFields
}

// FullName returns the display name used in reports.
func (w Washer) FullName() string {
	if w.LastName == "" {
		return w.Name
	}
	return w.Name + " " + w.LastName
}
