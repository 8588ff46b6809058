package entity

// DoctorFilter is a domain-level filter for querying doctors.
// Used by repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Specialization string // substring match (case-insensitive)
	Location       string // substring match (case-insensitive)
	Limit          int    // max rows returned, 0 means no cap
}
