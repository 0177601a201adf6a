package entity

// DoctorFilter is a domain-level filter for the doctor directory.
// Used by repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Specialty string  // exact specialization match
	MinRating float64 // minimum average rating
	Search    string  // name search (ILIKE on first/last name)
	Limit     int
	Offset    int
}
